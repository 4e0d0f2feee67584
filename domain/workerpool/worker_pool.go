package workerpool

import "sync"

// Job represents the job to be run
type Job[T any] struct {
	Task func() (T, error)
}

// JobResult represents the result of a job
type JobResult[T any] struct {
	Result T
	Err    error
}

// Pool fans a queue of jobs out over a fixed number of workers and
// funnels their results into a single channel.
type Pool[T any] struct {
	numWorkers  int
	JobQueue    chan Job[T]
	ResultQueue chan JobResult[T]
}

// New creates a pool with the given number of workers.
func New[T any](numWorkers int) *Pool[T] {
	return &Pool[T]{
		numWorkers:  numWorkers,
		JobQueue:    make(chan Job[T]),
		ResultQueue: make(chan JobResult[T]),
	}
}

// Run starts the workers. The result queue is closed once the job queue is
// closed and all outstanding jobs have finished.
func (p *Pool[T]) Run() {
	var wg sync.WaitGroup
	for i := 0; i < p.numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range p.JobQueue {
				result, err := job.Task()
				p.ResultQueue <- JobResult[T]{Result: result, Err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(p.ResultQueue)
	}()
}
