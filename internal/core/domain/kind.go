package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// AssetKind describes one kind of library item backed by a scene file.
// Kinds differ only in configuration, so one transfer engine serves all of them.
type AssetKind struct {
	// Name is the display and lookup name ("Model")
	Name string
	// Extension is the item directory suffix (".model")
	Extension string
	// TransferBasename is the descriptor file inside the item directory ("model.json")
	TransferBasename string
	// SceneAttrs lists the attributes captured for every saved object
	SceneAttrs []string
}

var (
	// ModelKind is a model asset: <name>.model/model.json
	ModelKind = AssetKind{
		Name:             "Model",
		Extension:        ".model",
		TransferBasename: "model.json",
	}

	// MayaFileKind is a plain scene file asset: <name>.mayafile/mayafile.json
	MayaFileKind = AssetKind{
		Name:             "MayaFile",
		Extension:        ".mayafile",
		TransferBasename: "mayafile.json",
	}
)

// Kinds returns the built-in asset kinds
func Kinds() []AssetKind {
	return []AssetKind{ModelKind, MayaFileKind}
}

// KindByName looks up a built-in kind, ignoring case
func KindByName(name string) (AssetKind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(k.Name, name) {
			return k, nil
		}
	}
	return AssetKind{}, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// KindForPath resolves the kind of an item directory or of a descriptor inside one
func KindForPath(path string) (AssetKind, error) {
	clean := filepath.Clean(path)
	for _, k := range Kinds() {
		if strings.EqualFold(filepath.Ext(clean), k.Extension) {
			return k, nil
		}
		if filepath.Base(clean) == k.TransferBasename &&
			strings.EqualFold(filepath.Ext(filepath.Dir(clean)), k.Extension) {
			return k, nil
		}
	}
	return AssetKind{}, fmt.Errorf("%w: %s", ErrUnknownKind, path)
}

// ItemDir returns the item directory for name inside folder
func (k AssetKind) ItemDir(folder, name string) string {
	return filepath.Join(folder, name+k.Extension)
}

// TransferPath returns the descriptor path for an item directory
func (k AssetKind) TransferPath(itemDir string) string {
	return filepath.Join(itemDir, k.TransferBasename)
}

// CaptureAttrs merges the kind's attributes with extra ones, dropping duplicates
// and keeping first-seen order.
func (k AssetKind) CaptureAttrs(extra ...string) []string {
	seen := make(map[string]bool)
	var attrs []string
	for _, list := range [][]string{k.SceneAttrs, extra} {
		for _, a := range list {
			if a == "" || seen[a] {
				continue
			}
			seen[a] = true
			attrs = append(attrs, a)
		}
	}
	return attrs
}
