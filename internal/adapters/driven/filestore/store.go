// Package filestore stores documents as files in a single flat directory
// through a go-billy filesystem, so the same code runs against the OS or
// an in-memory filesystem.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/custodia-labs/textscan/internal/core/domain"
	"github.com/custodia-labs/textscan/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.DocumentStore = (*Store)(nil)

const (
	rootDir  = "/"
	filePerm = 0o644
	dirPerm  = 0o755
)

// Store implements driven.DocumentStore on a go-billy filesystem.
// One file per document, filename = document name, no sidecar files.
type Store struct {
	fs billy.Filesystem
}

// New creates a Store rooted at the given filesystem.
func New(fsys billy.Filesystem) *Store {
	return &Store{fs: fsys}
}

// NewOSStore creates a Store backed by dir on the local disk.
// The directory is created if it does not exist.
func NewOSStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("filestore: create %q: %w", dir, err)
	}
	return New(osfs.New(dir)), nil
}

// NewMemoryStore creates a Store backed by an in-memory filesystem.
func NewMemoryStore() *Store {
	return New(memfs.New())
}

// Raw returns the underlying go-billy filesystem.
//
//nolint:ireturn // exposes the adapter target.
func (s *Store) Raw() billy.Filesystem {
	return s.fs
}

// Save writes data under name, replacing any previous content
func (s *Store) Save(ctx context.Context, name string, data []byte) error {
	if err := domain.ValidateName(name); err != nil {
		return err
	}
	if err := util.WriteFile(s.fs, name, data, filePerm); err != nil {
		return fmt.Errorf("filestore: write %q: %w", name, err)
	}
	return nil
}

// Get reads the exact bytes stored under name
func (s *Store) Get(ctx context.Context, name string) ([]byte, error) {
	if err := s.checkFile(name); err != nil {
		return nil, err
	}
	data, err := util.ReadFile(s.fs, name)
	if errors.Is(err, os.ErrNotExist) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("filestore: read %q: %w", name, err)
	}
	return data, nil
}

// List returns document names in directory enumeration order.
// Directories and files without the document extension are ignored.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := s.fs.ReadDir(rootDir)
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("filestore: readdir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !domain.IsDocumentName(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// Delete removes the file stored under name
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := s.checkFile(name); err != nil {
		return err
	}
	err := s.fs.Remove(name)
	if errors.Is(err, os.ErrNotExist) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("filestore: remove %q: %w", name, err)
	}
	return nil
}

// Ping checks the directory can be enumerated
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.List(ctx)
	return err
}

// checkFile returns domain.ErrNotFound unless name is a document name
// that refers to an existing regular file.
func (s *Store) checkFile(name string) error {
	if !domain.IsDocumentName(name) {
		return domain.ErrNotFound
	}
	info, err := s.fs.Stat(name)
	if errors.Is(err, os.ErrNotExist) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("filestore: stat %q: %w", name, err)
	}
	if info.IsDir() {
		return domain.ErrNotFound
	}
	return nil
}
