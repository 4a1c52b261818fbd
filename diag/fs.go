// Package diag holds diagnostic tooling that sits outside the pure core
// (ordinate through bridge): dumping a TemporalTree as Graphviz dot source
// and as a JSON debug snapshot. It is the home for the teacher's absfs and
// sonic dependencies, since spec.md's Non-goals keep the core packages
// free of I/O and serialization concerns but never forbid an ambient
// diagnostics layer from using them (SPEC_FULL.md §10).
package diag

import (
	"io"
	"os"
	"path/filepath"

	"github.com/absfs/absfs"
)

// FileSystem abstracts the handful of operations DumpDot/DumpSnapshot need,
// over the absfs.FileSystem interface so a caller can substitute memfs (or
// any other absfs backend) in tests. Grounded on bundle/fs.go's FileSystem
// interface and memFSAdapter, generalised from a bundle-file mirror to a
// plain read/write abstraction.
type FileSystem interface {
	WriteFile(name string, data []byte, perm os.FileMode) error
	ReadFile(name string) ([]byte, error)
}

// osFS implements FileSystem directly over the os package.
type osFS struct{}

// DefaultFS writes through the real filesystem.
var DefaultFS FileSystem = osFS{}

func (osFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// absFSAdapter adapts an absfs.FileSystem (e.g. memfs, for hermetic tests)
// to FileSystem.
type absFSAdapter struct {
	fs absfs.FileSystem
}

// NewAbsFSAdapter wraps an absfs.FileSystem (such as memfs.NewFS()'s
// result) as a diag.FileSystem.
func NewAbsFSAdapter(afs absfs.FileSystem) FileSystem {
	return &absFSAdapter{fs: afs}
}

func (a *absFSAdapter) WriteFile(name string, data []byte, perm os.FileMode) error {
	if dir := filepath.Dir(name); dir != "" && dir != "." {
		_ = a.fs.MkdirAll(dir, 0o755)
	}
	f, err := a.fs.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(data)
	return err
}

func (a *absFSAdapter) ReadFile(name string) ([]byte, error) {
	f, err := a.fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
