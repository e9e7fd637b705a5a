package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/kamal-hamza/mx-cli/internal/core/domain"
	"github.com/kamal-hamza/mx-cli/internal/core/ports"
	"github.com/kamal-hamza/mx-cli/internal/log"
)

// Session owns the transfer engines for one live host session and the
// per-kind "last loaded" caches used by LoadModel and LoadMayaFile.
type Session struct {
	host       ports.SceneHost
	store      ports.DescriptorStore
	logger     *log.Logger
	sceneAttrs []string
	caches     map[string]*TransferCache
}

// NewSession creates a session. sceneAttrs is the globally configured
// attribute list captured for every saved object.
func NewSession(host ports.SceneHost, store ports.DescriptorStore, logger *log.Logger, sceneAttrs []string) *Session {
	if logger == nil {
		logger = log.Nop()
	}
	caches := make(map[string]*TransferCache)
	for _, k := range domain.Kinds() {
		caches[k.Name] = NewTransferCache()
	}
	return &Session{
		host:       host,
		store:      store,
		logger:     logger,
		sceneAttrs: sceneAttrs,
		caches:     caches,
	}
}

// Transfer returns a transfer engine for kind
func (s *Session) Transfer(kind domain.AssetKind) *SceneFileTransfer {
	return NewSceneFileTransfer(s.host, s.store, kind, s.logger, s.sceneAttrs...)
}

// Cache returns the cache used for kind
func (s *Session) Cache(kind domain.AssetKind) *TransferCache {
	c, ok := s.caches[kind.Name]
	if !ok {
		c = NewTransferCache()
		s.caches[kind.Name] = c
	}
	return c
}

// Read loads the descriptor at path without touching any cache
func (s *Session) Read(ctx context.Context, path string) (*domain.TransferObject, error) {
	return s.store.Read(ctx, path)
}

// Save exports objects and writes a descriptor of the given kind at path.
// The kind's cache entry for path is invalidated so the next load rereads it.
func (s *Session) Save(ctx context.Context, kind domain.AssetKind, path string, objects []string, fileType string, metadata map[string]any) (*domain.TransferObject, error) {
	s.logger.Debugw("save", "kind", kind.Name, "path", path, "format", fileType)

	t, err := s.Transfer(kind).Save(ctx, SaveRequest{
		Path:     path,
		FileType: fileType,
		Objects:  objects,
		Metadata: metadata,
	})
	if err != nil {
		return nil, err
	}

	s.Cache(kind).Invalidate(path)
	return t, nil
}

// Load reads the descriptor at path, reusing the cached object when the path
// matches the last one loaded, and always runs the host load.
func (s *Session) Load(ctx context.Context, kind domain.AssetKind, path string, req LoadRequest) (*domain.TransferObject, *LoadResult, error) {
	cache := s.Cache(kind)

	t, ok := cache.Get(path)
	if !ok {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve descriptor path: %w", err)
		}
		t, err = s.store.Read(ctx, abs)
		if err != nil {
			return nil, nil, err
		}
		cache.Put(t)
	}

	result, err := s.Transfer(kind).Load(ctx, t, req)
	if err != nil {
		return t, nil, err
	}
	return t, result, nil
}

// SaveModel saves a Model asset descriptor at path
func (s *Session) SaveModel(ctx context.Context, path string, objects []string, fileType string, metadata map[string]any) (*domain.TransferObject, error) {
	return s.Save(ctx, domain.ModelKind, path, objects, fileType, metadata)
}

// LoadModel loads the Model asset described at path
func (s *Session) LoadModel(ctx context.Context, path string, req LoadRequest) (*domain.TransferObject, *LoadResult, error) {
	return s.Load(ctx, domain.ModelKind, path, req)
}

// SaveMayaFile saves a MayaFile asset descriptor at path
func (s *Session) SaveMayaFile(ctx context.Context, path string, objects []string, fileType string, metadata map[string]any) (*domain.TransferObject, error) {
	return s.Save(ctx, domain.MayaFileKind, path, objects, fileType, metadata)
}

// LoadMayaFile loads the MayaFile asset described at path
func (s *Session) LoadMayaFile(ctx context.Context, path string, req LoadRequest) (*domain.TransferObject, *LoadResult, error) {
	return s.Load(ctx, domain.MayaFileKind, path, req)
}
