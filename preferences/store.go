package preferences

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/mirador-labs/swapd/domain"
	"github.com/mirador-labs/swapd/util"
)

var _ domain.PreferenceStore = &FileStore{}

// FileStore persists the last-used asset pair as a JSON file.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store writing to the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get implements domain.PreferenceStore. A missing file yields the zero
// preference without an error.
func (s *FileStore) Get() (domain.SwapPreference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.SwapPreference{}, nil
		}
		return domain.SwapPreference{}, err
	}

	var preference domain.SwapPreference
	if err := json.Unmarshal(data, &preference); err != nil {
		return domain.SwapPreference{}, err
	}

	return preference, nil
}

// Set implements domain.PreferenceStore.
func (s *FileStore) Set(preference domain.SwapPreference) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(preference)
	if err != nil {
		return err
	}

	return util.WriteBytes(filepath.Dir(s.path), filepath.Base(s.path), data)
}
