package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// LoadType selects how a scene file is brought into the host scene
type LoadType string

const (
	// LoadImport copies the file contents into the scene
	LoadImport LoadType = "import"
	// LoadReference keeps a live link to the source file
	LoadReference LoadType = "reference"
)

// DefaultLoadType matches the item layer's radio default
const DefaultLoadType = LoadReference

// Defaults for the grouping and namespace load options
const (
	DefaultGrouping  = true
	DefaultNamespace = true
)

// ParseLoadType accepts "import" or "reference" in any letter case
func ParseLoadType(s string) (LoadType, error) {
	switch LoadType(strings.ToLower(strings.TrimSpace(s))) {
	case LoadImport:
		return LoadImport, nil
	case LoadReference:
		return LoadReference, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLoadType, s)
}

func (t LoadType) String() string {
	return string(t)
}

// NamespaceStem returns the part of a scene filename used as namespace prefix:
// the base name up to its first dot ("chair_v001.mb" -> "chair_v001").
func NamespaceStem(filename string) string {
	base := filepath.Base(filename)
	if i := strings.Index(base, "."); i >= 0 {
		return base[:i]
	}
	return base
}

// NamespaceCandidate formats the idx-th namespace candidate for a stem
func NamespaceCandidate(stem string, idx int) string {
	return fmt.Sprintf("%s%03d", stem, idx)
}

// GroupName returns the name of the group wrapping a loaded hierarchy
func GroupName(namespace string) string {
	return namespace + "_grp"
}
