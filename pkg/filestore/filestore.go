package filestore

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileStore keeps uploaded vouchers on local disk under a single
// directory. Stored names carry a timestamp prefix so repeated uploads
// of the same file never collide.
type FileStore struct {
	dir string
}

func New(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("can't create upload directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Save writes data under a sanitized, timestamp-prefixed name and
// returns the name it was stored as.
func (s *FileStore) Save(name string, data []byte) (string, error) {
	stored := time.Now().Format("20060102_150405") + "_" + sanitize(name)
	if err := os.WriteFile(filepath.Join(s.dir, stored), data, 0o644); err != nil {
		return "", fmt.Errorf("can't save file: %w", err)
	}
	return stored, nil
}

// Open returns the stored file contents.
func (s *FileStore) Open(stored string) ([]byte, error) {
	if stored != sanitize(stored) {
		return nil, fmt.Errorf("invalid stored name %q", stored)
	}
	data, err := os.ReadFile(filepath.Join(s.dir, stored))
	if err != nil {
		return nil, fmt.Errorf("can't read file: %w", err)
	}
	return data, nil
}

func sanitize(name string) string {
	name = filepath.Base(name)
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, "._")
	if name == "" {
		name = "file"
	}
	return name
}
