package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kamal-hamza/mx-cli/internal/core/domain"
)

// ItemService manages library items: directories named <name><ext> holding a
// descriptor and the scene file it points to.
type ItemService struct {
	session *Session
}

// NewItemService creates a new item service
func NewItemService(session *Session) *ItemService {
	return &ItemService{
		session: session,
	}
}

// SaveItemRequest represents a request to save a library item
type SaveItemRequest struct {
	Folder   string
	Name     string
	Kind     domain.AssetKind
	FileType string
	Comment  string
	Objects  []string
}

// Save creates or overwrites an item and returns its summary
func (s *ItemService) Save(ctx context.Context, req SaveItemRequest) (*domain.Item, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("item name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("item name %q contains a path separator", name)
	}
	if len(req.Objects) == 0 {
		return nil, fmt.Errorf("no objects to save")
	}

	kind := req.Kind
	if kind.Name == "" {
		kind = domain.ModelKind
	}

	dir := kind.ItemDir(req.Folder, name)
	path := kind.TransferPath(dir)

	t, err := s.session.Save(ctx, kind, path, req.Objects, req.FileType, map[string]any{
		domain.MetaDescription: req.Comment,
	})
	if err != nil {
		return nil, err
	}

	item := domain.ItemFromTransfer(kind, t)
	return &item, nil
}

// LoadItemOptions are the user choices for loading an item
type LoadItemOptions struct {
	// Filename overrides the scene file named in the descriptor
	Filename    string
	LoadType    string
	Grouping    *bool
	Namespace   *bool
	HostOptions map[string]any
}

// Load brings the item's scene file into the host
func (s *ItemService) Load(ctx context.Context, itemPath string, opts LoadItemOptions) (*LoadResult, error) {
	kind, path, err := s.resolve(itemPath)
	if err != nil {
		return nil, err
	}

	_, result, err := s.session.Load(ctx, kind, path, LoadRequest{
		Filename:    opts.Filename,
		LoadType:    opts.LoadType,
		Grouping:    opts.Grouping,
		Namespace:   opts.Namespace,
		HostOptions: opts.HostOptions,
	})
	return result, err
}

// Select selects the item's objects in the host, optionally inside namespaces
func (s *ItemService) Select(ctx context.Context, itemPath string, namespaces []string) error {
	kind, path, err := s.resolve(itemPath)
	if err != nil {
		return err
	}

	t, err := s.session.Read(ctx, path)
	if err != nil {
		return err
	}

	return s.session.Transfer(kind).Select(ctx, t, nil, namespaces)
}

// Info reads an item's descriptor and summarizes it
func (s *ItemService) Info(ctx context.Context, itemPath string) (*domain.Item, *domain.TransferObject, error) {
	kind, path, err := s.resolve(itemPath)
	if err != nil {
		return nil, nil, err
	}

	t, err := s.session.Read(ctx, path)
	if err != nil {
		return nil, nil, err
	}

	item := domain.ItemFromTransfer(kind, t)
	return &item, t, nil
}

// List finds every item under folder, sorted by directory.
// Item directories without a readable descriptor are skipped.
func (s *ItemService) List(ctx context.Context, folder string) ([]domain.Item, error) {
	var items []domain.Item

	err := s.session.store.Walk(ctx, folder, func(dir string) error {
		kind, err := domain.KindForPath(dir)
		if err != nil {
			return nil
		}

		t, err := s.session.Read(ctx, kind.TransferPath(dir))
		if err == nil {
			items = append(items, domain.ItemFromTransfer(kind, t))
		}
		// items never contain other items
		return filepath.SkipDir
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Dir < items[j].Dir
	})
	return items, nil
}

// resolve accepts an item directory or a descriptor path
func (s *ItemService) resolve(itemPath string) (domain.AssetKind, string, error) {
	abs, err := filepath.Abs(itemPath)
	if err != nil {
		return domain.AssetKind{}, "", err
	}

	kind, err := domain.KindForPath(abs)
	if err != nil {
		return domain.AssetKind{}, "", err
	}

	if filepath.Base(abs) == kind.TransferBasename {
		return kind, abs, nil
	}
	return kind, kind.TransferPath(abs), nil
}

// IsNotFound reports whether err means a missing descriptor or scene file
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
