package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type UploadStore interface {
	// Save writes data under a fresh random name built from prefix and ext and returns the name.
	Save(prefix, ext string, data []byte) (string, error)
}

// DirUploadStore - writes uploads into one directory, no index is kept.
type DirUploadStore struct {
	Dir string
}

// NewDirUploadStore creates the directory when missing.
func NewDirUploadStore(dir string) (*DirUploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &DirUploadStore{Dir: dir}, nil
}

func (s *DirUploadStore) Save(prefix, ext string, data []byte) (string, error) {
	name := fmt.Sprintf("%s_%s.%s", prefix, uuid.NewString(), ext)
	if err := os.WriteFile(filepath.Join(s.Dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload %s: %w", name, err)
	}
	return name, nil
}
