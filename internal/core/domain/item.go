package domain

import "path/filepath"

// Item is a library entry: a directory holding a descriptor and its scene file
type Item struct {
	Name         string
	Kind         AssetKind
	Dir          string
	MayaFilename string
	FileType     string
	Description  string
	ObjectCount  int
}

// TransferPath returns the descriptor path of the item
func (i Item) TransferPath() string {
	return i.Kind.TransferPath(i.Dir)
}

// ScenePath returns the scene file path, or "" when the descriptor names none
func (i Item) ScenePath() string {
	if i.MayaFilename == "" {
		return ""
	}
	return filepath.Join(i.Dir, i.MayaFilename)
}

// ItemFromTransfer builds an Item summary from a loaded descriptor
func ItemFromTransfer(kind AssetKind, t *TransferObject) Item {
	dir := filepath.Dir(t.Path())
	base := filepath.Base(dir)
	return Item{
		Name:         base[:len(base)-len(filepath.Ext(base))],
		Kind:         kind,
		Dir:          dir,
		MayaFilename: t.MetadataString(MetaMayaFilename),
		FileType:     t.MetadataString(MetaFileType),
		Description:  t.MetadataString(MetaDescription),
		ObjectCount:  len(t.Objects()),
	}
}
