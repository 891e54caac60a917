package uploads

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// Storage persists uploaded blobs on local disk and hands back an opaque
// reference (the generated filename). Nothing else in the system
// interprets the blob content.
type Storage struct {
	dir string
}

func NewStorage(dir string) (*Storage, error) {
	if dir == "" {
		dir = "./uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create upload directory: %w", err)
	}
	return &Storage{dir: dir}, nil
}

func (s *Storage) Dir() string {
	return s.dir
}

// Store writes the file under "<prefix>_<unixnano><ext>" and returns the
// generated name as the retrievable reference.
func (s *Storage) Store(file *multipart.FileHeader, prefix string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("could not open uploaded file: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%s_%d%s", prefix, time.Now().UnixNano(), filepath.Ext(file.Filename))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("could not create blob file: %w", err)
	}
	defer dst.Close()

	if _, err := dst.ReadFrom(src); err != nil {
		return "", fmt.Errorf("could not write blob file: %w", err)
	}

	return name, nil
}
