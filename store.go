package booknav

import (
	"fmt"
	"os"
	"path/filepath"
)

// ContentStore supplies the raw outline document of a book. The site tooling
// may substitute its own implementation, the compiler only ever reads.
type ContentStore interface {
	ReadOutline(book Book) (string, error)
}

const outlineFileName = "TOC.md"

// DirStore reads outlines from <root>/<book name>/TOC.md.
type DirStore struct {
	root string //absolute, system-native path
}

func NewDirStore(root string) (DirStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return DirStore{}, err
	}
	return DirStore{root: abs}, nil
}

func (s DirStore) ReadOutline(book Book) (string, error) {
	raw, err := os.ReadFile(filepath.Join(s.root, book.Name, outlineFileName))
	if err != nil {
		return "", fmt.Errorf("outline of book %q not readable: %w", book.Name, err)
	}
	return string(raw), nil
}
