package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
)

// File persists the snapshot to a single file on disk. Writes go through a
// temp file in the same directory followed by a rename, so a crash mid-write
// leaves the previous snapshot intact.
type File struct {
	path string
}

func NewFile(path string) (*File, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create snapshot directory %s: %w", dir, err)
	}
	return &File{path: path}, nil
}

func (f *File) Load() ([]byte, bool, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not read snapshot %s: %w", f.path, err)
	}
	return data, true, nil
}

func (f *File) Save(data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".leads-*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("could not write temp snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("could not sync temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("could not close temp snapshot: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("could not replace snapshot %s: %w", f.path, err)
	}
	return nil
}
