package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileStore keeps uploaded blobs on the local filesystem and hands out
// path/URL pairs. A stored blob stays resolvable for the lifetime of the
// process; nothing is ever deleted.
type FileStore struct {
	basePath string
	baseURL  string
}

func NewFileStore(basePath, baseURL string) (*FileStore, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir failed: %w", err)
	}
	return &FileStore{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *FileStore) BasePath() string {
	return s.basePath
}

// Save writes the blob under a fresh name and returns its relative path and
// public URL.
func (s *FileStore) Save(originalName string, r io.Reader) (path string, url string, err error) {
	name := uuid.NewString() + filepath.Ext(originalName)
	fullPath := filepath.Join(s.basePath, name)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", "", fmt.Errorf("create upload file failed: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", "", fmt.Errorf("write upload file failed: %w", err)
	}

	return name, s.baseURL + "/" + name, nil
}

// Healthy reports whether the backing directory is still usable.
func (s *FileStore) Healthy() error {
	info, err := os.Stat(s.basePath)
	if err != nil {
		return fmt.Errorf("stat upload dir failed: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("upload path %s is not a directory", s.basePath)
	}
	return nil
}
