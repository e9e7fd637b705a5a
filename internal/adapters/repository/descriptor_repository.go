package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/kamal-hamza/mx-cli/internal/core/domain"
	"github.com/kamal-hamza/mx-cli/internal/core/ports"
)

// DescriptorRepository stores transfer descriptors as indented JSON files
// on a go-billy filesystem
type DescriptorRepository struct {
	fs billy.Filesystem
	mu sync.RWMutex
}

// NewDescriptorRepository creates a repository on top of fs
func NewDescriptorRepository(fs billy.Filesystem) *DescriptorRepository {
	return &DescriptorRepository{
		fs: fs,
	}
}

// NewOSDescriptorRepository creates a repository on the native filesystem.
// Relative paths are resolved against the working directory.
func NewOSDescriptorRepository() *DescriptorRepository {
	return NewDescriptorRepository(osfs.New("/"))
}

// NewInMemoryDescriptorRepository creates a repository backed by memory
func NewInMemoryDescriptorRepository() *DescriptorRepository {
	return NewDescriptorRepository(memfs.New())
}

// Ensure it implements the interface
var _ ports.DescriptorStore = (*DescriptorRepository)(nil)

// Read loads and decodes the descriptor at path
func (r *DescriptorRepository) Read(ctx context.Context, path string) (*domain.TransferObject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := absPath(path)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := util.ReadFile(r.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read descriptor %s: %w", path, err)
	}

	t := domain.NewTransferObject()
	if err := json.Unmarshal(data, t); err != nil {
		if errors.Is(err, domain.ErrMalformedData) {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrMalformedData, path, err)
	}
	t.SetPath(path)

	return t, nil
}

// Write encodes t to path, creating parent directories and replacing any existing file
func (r *DescriptorRepository) Write(ctx context.Context, path string, t *domain.TransferObject) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode descriptor: %w", err)
	}
	data = append(data, '\n')

	path, err = absPath(path)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create descriptor directory: %w", err)
	}

	if err := util.WriteFile(r.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write descriptor %s: %w", path, err)
	}

	t.SetPath(path)
	return nil
}

// Exists checks if a regular file exists at path
func (r *DescriptorRepository) Exists(ctx context.Context, path string) bool {
	path, err := absPath(path)
	if err != nil {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	info, err := r.fs.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Walk calls fn for root and every directory below it.
// fn may return filepath.SkipDir to skip a directory's contents.
// A missing root is not an error. No lock is held while fn runs, so fn may
// read descriptors.
func (r *DescriptorRepository) Walk(ctx context.Context, root string, fn func(dir string) error) error {
	root, err := absPath(root)
	if err != nil {
		return err
	}
	if _, err := r.fs.Stat(root); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to stat %s: %w", root, err)
	}

	return util.Walk(r.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !info.IsDir() {
			return nil
		}
		return fn(path)
	})
}

// absPath makes path absolute. The OS filesystem is rooted at "/", so a
// relative path would otherwise resolve from there instead of the working directory.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return abs, nil
}

// Raw returns the underlying go-billy filesystem
func (r *DescriptorRepository) Raw() billy.Filesystem {
	return r.fs
}
