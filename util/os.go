package util

import (
	"os"
	"path/filepath"
)

// WriteBytes writes the given bytes to the given file in the given
// directory, creating the directory if needed and overwriting an existing
// file.
func WriteBytes(directory, fileName string, bz []byte) error {
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(directory, fileName), bz, 0o644)
}
