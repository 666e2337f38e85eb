package upload

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"
)

type Storage interface {
	Save(ext string, src io.Reader) (name string, size int64, err error)
	Remove(name string) error
}

// DiskStorage writes files into a single directory, created on first use.
type DiskStorage struct {
	dir string
	now func() time.Time
}

func NewDiskStorage(dir string) *DiskStorage {
	return &DiskStorage{dir: dir, now: time.Now}
}

func (s *DiskStorage) Save(ext string, src io.Reader) (string, int64, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", 0, fmt.Errorf("create upload dir: %w", err)
	}

	for attempt := 0; attempt < 3; attempt++ {
		name := GenerateName(s.now(), ext)
		f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", 0, fmt.Errorf("create upload file: %w", err)
		}

		n, err := io.Copy(f, src)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(f.Name())
			return "", 0, fmt.Errorf("write upload file: %w", err)
		}
		return name, n, nil
	}
	return "", 0, errors.New("could not allocate a unique upload name")
}

func (s *DiskStorage) Remove(name string) error {
	return os.Remove(filepath.Join(s.dir, filepath.Base(name)))
}

// GenerateName builds "<unix-millis>-<random 0..1e9><ext>".
func GenerateName(now time.Time, ext string) string {
	return fmt.Sprintf("%d-%d%s", now.UnixMilli(), rand.IntN(1_000_000_001), ext)
}
