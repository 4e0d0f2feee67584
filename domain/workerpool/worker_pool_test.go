package workerpool_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirador-labs/swapd/domain/workerpool"
)

func TestPool_RunsAllJobs(t *testing.T) {
	const numJobs = 20

	pool := workerpool.New[int](4)
	pool.Run()

	go func() {
		for i := 0; i < numJobs; i++ {
			i := i
			pool.JobQueue <- workerpool.Job[int]{Task: func() (int, error) {
				return i * 2, nil
			}}
		}
		close(pool.JobQueue)
	}()

	seen := make(map[int]struct{})
	for result := range pool.ResultQueue {
		require.NoError(t, result.Err)
		seen[result.Result] = struct{}{}
	}

	require.Len(t, seen, numJobs)
}

func TestPool_PropagatesErrors(t *testing.T) {
	jobErr := errors.New("job failed")

	pool := workerpool.New[int](2)
	pool.Run()

	go func() {
		pool.JobQueue <- workerpool.Job[int]{Task: func() (int, error) {
			return 0, jobErr
		}}
		close(pool.JobQueue)
	}()

	result := <-pool.ResultQueue
	require.ErrorIs(t, result.Err, jobErr)

	_, open := <-pool.ResultQueue
	require.False(t, open)
}
