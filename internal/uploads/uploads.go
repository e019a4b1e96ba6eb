// Package uploads persists multipart file uploads into the public content
// directory and hands back the web path they are served from.
package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/cesargomez89/songbox/internal/constants"
	"github.com/cesargomez89/songbox/internal/filesystem"
)

type Store struct {
	Dir       string
	URLPrefix string
}

func NewStore(dir string) (*Store, error) {
	if err := filesystem.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir: %w", err)
	}
	return &Store{Dir: dir, URLPrefix: constants.CoverURLPrefix}, nil
}

// SaveFile writes the uploaded file under a fresh UUID-derived name keeping
// the original extension, and returns the web path of the stored file.
func (s *Store) SaveFile(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	name := newName(filepath.Ext(fh.Filename))
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to close upload file: %w", err)
	}

	return path.Join(s.URLPrefix, name), nil
}

// SaveBytes stores already-extracted file content, e.g. cover art pulled out
// of an audio upload.
func (s *Store) SaveBytes(data []byte, ext string) (string, error) {
	name := newName(ext)
	if err := filesystem.WriteFile(filepath.Join(s.Dir, name), data); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	return path.Join(s.URLPrefix, name), nil
}

// newName generates a collision-resistant file name. UUIDs replace the
// original timestamp+random scheme, which left a same-millisecond collision
// window.
func newName(ext string) string {
	ext = strings.ToLower(filesystem.Sanitize(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return uuid.New().String() + ext
}
