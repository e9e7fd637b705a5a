package ports

import (
	"context"

	"github.com/kamal-hamza/mx-cli/internal/core/domain"
)

// ExportRequest describes an "export selection" call on the scene host
type ExportRequest struct {
	Path           string
	Format         domain.FileFormat
	ForceOverwrite bool
	StripUIConfig  bool
}

// ImportRequest describes an import or reference call on the scene host
type ImportRequest struct {
	Path string
	Mode domain.LoadType
	// Namespace is empty when the host should apply its own namespacing
	Namespace string
	// GroupName is empty when no wrapping group should be created
	GroupName string
	// FormatHint is the detected file format, or "" for unknown extensions
	FormatHint domain.FileFormat
	// Options are passed to the host untouched
	Options map[string]any
}

// SceneHost defines the port to the live 3D authoring application.
// Every scene read and mutation goes through it.
type SceneHost interface {
	// SelectObjects selects names, optionally clearing the current selection first
	SelectObjects(ctx context.Context, names []string, clearFirst bool) error

	// ExportSelection writes the current selection to a typed scene file
	ExportSelection(ctx context.Context, req ExportRequest) error

	// ImportOrReference brings a scene file into the live scene
	ImportOrReference(ctx context.Context, req ImportRequest) error

	// NamespaceExists reports whether a namespace is registered in the session
	NamespaceExists(ctx context.Context, name string) (bool, error)

	// RestoreMainWindowFocus gives keyboard focus back to the main window
	RestoreMainWindowFocus(ctx context.Context) error

	// AttributeExists reports whether object.attr exists and can be queried
	AttributeExists(ctx context.Context, object, attr string) (bool, error)

	// AttributeValue returns the scalar value of object.attr, nil when unset
	AttributeValue(ctx context.Context, object, attr string) (any, error)

	// AttributeType returns the host's type classifier for object.attr
	AttributeType(ctx context.Context, object, attr string) (string, error)
}

// DescriptorStore defines the port for transfer descriptor persistence
type DescriptorStore interface {
	// Read loads the descriptor at path.
	// Returns domain.ErrNotFound or domain.ErrMalformedData.
	Read(ctx context.Context, path string) (*domain.TransferObject, error)

	// Write serializes t to path, creating parent directories and overwriting
	Write(ctx context.Context, path string, t *domain.TransferObject) error

	// Exists checks whether a descriptor exists at path
	Exists(ctx context.Context, path string) bool

	// Walk calls fn for every directory under root, depth first
	Walk(ctx context.Context, root string, fn func(dir string) error) error
}
