// Package content loads static shape tables from embedded or on-disk files
package content

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed shapes.yaml
var embedded embed.FS

// Source reads named content files
type Source interface {
	ReadFile(name string) ([]byte, error)
}

// Embedded returns the content compiled into the binary
func Embedded() Source {
	return fsSource{fsys: embedded}
}

// Dir serves files from a directory, for overriding shapes without rebuilding
func Dir(path string) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("content dir %s: %w", path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content dir %s: not a directory", path)
	}
	return fsSource{fsys: os.DirFS(path)}, nil
}

type fsSource struct {
	fsys fs.FS
}

func (s fsSource) ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(s.fsys, name)
}
