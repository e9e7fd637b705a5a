package mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/kamal-hamza/mx-cli/internal/core/domain"
	"github.com/kamal-hamza/mx-cli/internal/core/ports"
)

// MockDescriptorStore is an in-memory DescriptorStore. Descriptors are kept as
// JSON bytes so reads go through the same encoding as the file repository.
type MockDescriptorStore struct {
	mu         sync.RWMutex
	files      map[string][]byte
	reads      []string
	writes     []string
	shouldFail bool
	failError  error
}

// NewMockDescriptorStore creates an empty store
func NewMockDescriptorStore() *MockDescriptorStore {
	return &MockDescriptorStore{
		files: make(map[string][]byte),
	}
}

var _ ports.DescriptorStore = (*MockDescriptorStore)(nil)

// Read decodes the descriptor stored at path
func (m *MockDescriptorStore) Read(ctx context.Context, path string) (*domain.TransferObject, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.Clean(path)
	m.reads = append(m.reads, path)

	data, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
	}

	t := domain.NewTransferObject()
	if err := json.Unmarshal(data, t); err != nil {
		if errors.Is(err, domain.ErrMalformedData) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedData, err)
	}
	t.SetPath(path)
	return t, nil
}

// Write encodes t and stores it under path
func (m *MockDescriptorStore) Write(ctx context.Context, path string, t *domain.TransferObject) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.shouldFail {
		if m.failError != nil {
			return m.failError
		}
		return fmt.Errorf("write failed for %s", path)
	}

	data, err := json.Marshal(t)
	if err != nil {
		return err
	}

	path = filepath.Clean(path)
	m.files[path] = data
	m.writes = append(m.writes, path)
	t.SetPath(path)
	return nil
}

// Exists checks if a descriptor is stored at path
func (m *MockDescriptorStore) Exists(ctx context.Context, path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.files[filepath.Clean(path)]
	return ok
}

// Walk visits every directory that holds a stored descriptor, plus its parents below root
func (m *MockDescriptorStore) Walk(ctx context.Context, root string, fn func(dir string) error) error {
	m.mu.RLock()
	dirs := make(map[string]bool)
	root = filepath.Clean(root)
	for path := range m.files {
		for dir := filepath.Dir(path); dir == root || underAny(dir, []string{root}); dir = filepath.Dir(dir) {
			dirs[dir] = true
			if dir == root {
				break
			}
		}
	}
	m.mu.RUnlock()

	sorted := make([]string, 0, len(dirs))
	for d := range dirs {
		sorted = append(sorted, d)
	}
	sort.Strings(sorted)

	var skipped []string
	for _, dir := range sorted {
		if underAny(dir, skipped) {
			continue
		}
		if err := fn(dir); err != nil {
			if errors.Is(err, filepath.SkipDir) {
				skipped = append(skipped, dir)
				continue
			}
			return err
		}
	}
	return nil
}

func underAny(dir string, parents []string) bool {
	for _, p := range parents {
		if strings.HasPrefix(dir, p+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// PutRaw stores raw bytes at path, bypassing encoding
func (m *MockDescriptorStore) PutRaw(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[filepath.Clean(path)] = data
}

// Raw returns the stored bytes at path
func (m *MockDescriptorStore) Raw(path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[filepath.Clean(path)]
	return data, ok
}

// SetShouldFail makes Write fail with err
func (m *MockDescriptorStore) SetShouldFail(fail bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shouldFail = fail
	m.failError = err
}

// GetReads returns the paths passed to Read
func (m *MockDescriptorStore) GetReads() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	reads := make([]string, len(m.reads))
	copy(reads, m.reads)
	return reads
}

// GetWrites returns the paths passed to Write
func (m *MockDescriptorStore) GetWrites() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	writes := make([]string, len(m.writes))
	copy(writes, m.writes)
	return writes
}
