package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/kamal-hamza/mx-cli/internal/core/domain"
	"github.com/kamal-hamza/mx-cli/internal/core/ports"
	"github.com/kamal-hamza/mx-cli/internal/log"
)

// SceneFileTransfer saves and loads scene-file backed assets.
// The host exports and imports the scene payload; the descriptor store keeps
// the side-car JSON. One engine serves every asset kind.
type SceneFileTransfer struct {
	host       ports.SceneHost
	store      ports.DescriptorStore
	kind       domain.AssetKind
	extraAttrs []string
	logger     *log.Logger
}

// NewSceneFileTransfer creates a transfer engine for kind.
// extraAttrs are captured on top of kind.SceneAttrs for every saved object.
func NewSceneFileTransfer(host ports.SceneHost, store ports.DescriptorStore, kind domain.AssetKind, logger *log.Logger, extraAttrs ...string) *SceneFileTransfer {
	if logger == nil {
		logger = log.Nop()
	}
	return &SceneFileTransfer{
		host:       host,
		store:      store,
		kind:       kind,
		extraAttrs: extraAttrs,
		logger:     logger,
	}
}

// Kind returns the asset kind this engine serves
func (s *SceneFileTransfer) Kind() domain.AssetKind {
	return s.kind
}

// SaveRequest holds the inputs of a save
type SaveRequest struct {
	// Path is the descriptor location; the scene file is written next to it
	Path string
	// FileType is a FileFormat name; empty selects the default format
	FileType string
	Objects  []string
	Metadata map[string]any
}

// Save exports the requested objects to a native scene file and then writes
// the descriptor. The descriptor is written only when the export succeeded.
func (s *SceneFileTransfer) Save(ctx context.Context, req SaveRequest) (*domain.TransferObject, error) {
	format, err := domain.ParseFileFormat(req.FileType)
	if err != nil {
		return nil, err
	}

	path, err := filepath.Abs(req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve descriptor path: %w", err)
	}

	t := domain.FromObjects(req.Objects)
	objects := t.Objects()

	sceneName := domain.SceneFilename(path, format)
	scenePath := filepath.Join(filepath.Dir(path), sceneName)

	s.logger.Infow("saving scene file",
		"kind", s.kind.Name,
		"descriptor", path,
		"scene", scenePath,
		"format", format,
		"objects", len(objects),
	)

	if err := s.host.SelectObjects(ctx, objects, true); err != nil {
		return nil, domain.NewHostError("select", err)
	}

	err = s.host.ExportSelection(ctx, ports.ExportRequest{
		Path:           scenePath,
		Format:         format,
		ForceOverwrite: true,
		StripUIConfig:  true,
	})
	if err != nil {
		return nil, domain.NewHostError("export", err)
	}

	t.SetMetadata(domain.MetaMayaFilename, sceneName)
	t.SetMetadata(domain.MetaFileType, format.String())
	if len(req.Metadata) > 0 {
		t.UpdateMetadata(req.Metadata)
	}

	if err := s.capture(ctx, t); err != nil {
		return nil, err
	}

	if err := s.store.Write(ctx, path, t); err != nil {
		return nil, fmt.Errorf("failed to write descriptor: %w", err)
	}
	t.SetPath(path)

	s.logger.Infow("saved scene file", "descriptor", path, "scene", sceneName)
	return t, nil
}

// capture records the configured attributes of every object in t.
// Attributes that are missing are skipped; null values are dropped with a warning.
func (s *SceneFileTransfer) capture(ctx context.Context, t *domain.TransferObject) error {
	attrs := s.kind.CaptureAttrs(s.extraAttrs...)
	if len(attrs) == 0 {
		return nil
	}

	for _, name := range t.Objects() {
		for _, attr := range attrs {
			ref := NewAttributeRef(s.host, name, attr)
			ok, err := ref.IsValid(ctx)
			if err != nil {
				return domain.NewHostError("attributeExists", err)
			}
			if !ok {
				continue
			}

			value, err := ref.Value(ctx)
			if err != nil {
				return domain.NewHostError("getAttr", err)
			}
			if value == nil {
				s.logger.Warnw("cannot save attribute with null value", "attr", ref.FullName())
				continue
			}

			typ, err := ref.Type(ctx)
			if err != nil {
				return domain.NewHostError("getAttr", err)
			}

			t.SetAttr(name, attr, domain.AttrData{Type: typ, Value: value})
		}
	}
	return nil
}

// LoadRequest holds the inputs of a load.
// Nil Grouping or Namespace fall back to domain.DefaultGrouping and domain.DefaultNamespace.
type LoadRequest struct {
	// Filename is resolved against the descriptor's directory.
	// Empty means the scene file recorded in the descriptor.
	Filename string
	// Objects names the objects the caller expects, nil meaning all objects in
	// the descriptor. The whole file is loaded either way.
	Objects   []string
	LoadType  string
	Grouping  *bool
	Namespace *bool
	// HostOptions are passed through to the host untouched
	HostOptions map[string]any
}

// LoadResult reports what was asked of the host
type LoadResult struct {
	Path      string
	LoadType  domain.LoadType
	Namespace string
	GroupName string
	// NamespaceApplied is false when the host used its own namespacing
	NamespaceApplied bool
}

// Load imports or references the scene file that belongs to descriptor t.
// An invalid load type fails before any host call. Host failures are returned
// as *domain.HostOperationError without retry.
func (s *SceneFileTransfer) Load(ctx context.Context, t *domain.TransferObject, req LoadRequest) (*LoadResult, error) {
	start := time.Now()

	loadType, err := domain.ParseLoadType(req.LoadType)
	if err != nil {
		return nil, err
	}

	filename := req.Filename
	if filename == "" {
		filename = t.MetadataString(domain.MetaMayaFilename)
	}
	if filename == "" {
		return nil, fmt.Errorf("%w: descriptor %s names no scene file", domain.ErrNotFound, t.Path())
	}

	path := filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(t.Path()), filename)
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	// unknown extensions are left for the host to reject
	formatHint, _ := domain.FormatFromFilename(filename)

	objects := req.Objects
	if objects == nil {
		objects = t.Objects()
	}

	grouping := boolOr(req.Grouping, domain.DefaultGrouping)
	useNamespace := boolOr(req.Namespace, domain.DefaultNamespace)

	s.logger.Debugw("loading scene file",
		"descriptor", t.Path(),
		"scene", path,
		"loadType", loadType,
		"grouping", grouping,
		"namespace", useNamespace,
		"objects", len(objects),
	)

	namespace, err := AllocateNamespace(ctx, s.host, filename)
	if err != nil {
		return nil, err
	}

	result := &LoadResult{
		Path:             path,
		LoadType:         loadType,
		Namespace:        namespace,
		NamespaceApplied: useNamespace,
	}

	importReq := ports.ImportRequest{
		Path:       path,
		Mode:       loadType,
		FormatHint: formatHint,
		Options:    req.HostOptions,
	}
	if useNamespace {
		importReq.Namespace = namespace
	}
	if grouping {
		result.GroupName = domain.GroupName(namespace)
		importReq.GroupName = result.GroupName
	}

	s.logger.Infow("loading scene", "mode", loadType, "path", path, "namespace", importReq.Namespace)

	if err := s.host.ImportOrReference(ctx, importReq); err != nil {
		return nil, domain.NewHostError(loadType.String(), err)
	}

	if err := s.host.RestoreMainWindowFocus(ctx); err != nil {
		s.logger.Warnw("failed to restore main window focus", "error", err)
	}

	s.logger.Debugw("loaded scene file", "path", path, "elapsed", time.Since(start))
	return result, nil
}

// Select selects the objects of descriptor t in the host, clearing the current
// selection. With namespaces, every object is selected once per namespace as
// "ns:name". A nil objects slice means every object in t.
func (s *SceneFileTransfer) Select(ctx context.Context, t *domain.TransferObject, objects []string, namespaces []string) error {
	if objects == nil {
		objects = t.Objects()
	}

	names := objects
	if len(namespaces) > 0 {
		names = make([]string, 0, len(objects)*len(namespaces))
		for _, ns := range namespaces {
			ns = strings.TrimSuffix(ns, ":")
			for _, obj := range objects {
				names = append(names, ns+":"+obj)
			}
		}
	}

	s.logger.Debugw("selecting objects", "descriptor", t.Path(), "count", len(names))
	if err := s.host.SelectObjects(ctx, names, true); err != nil {
		return domain.NewHostError("select", err)
	}
	return nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
