package domain

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// FileFormat is the symbolic name of a native scene file format
type FileFormat string

const (
	MayaASCII  FileFormat = "mayaAscii"
	MayaBinary FileFormat = "mayaBinary"

	// DefaultFileFormat is used when a save does not name a format
	DefaultFileFormat = MayaBinary
)

// fileFormats maps each supported format to its file extension.
// The set is closed; nothing registers formats at runtime.
var fileFormats = map[FileFormat]string{
	MayaASCII:  ".ma",
	MayaBinary: ".mb",
}

// FileFormats returns the supported format names in a stable order
func FileFormats() []FileFormat {
	formats := make([]FileFormat, 0, len(fileFormats))
	for f := range fileFormats {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}

// Extension returns the file extension for the format, including the dot
func (f FileFormat) Extension() string {
	return fileFormats[f]
}

// IsValid reports whether the format is one of FileFormats
func (f FileFormat) IsValid() bool {
	_, ok := fileFormats[f]
	return ok
}

func (f FileFormat) String() string {
	return string(f)
}

// ParseFileFormat validates a format name. An empty name yields DefaultFileFormat.
func ParseFileFormat(name string) (FileFormat, error) {
	if name == "" {
		return DefaultFileFormat, nil
	}
	f := FileFormat(name)
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	return f, nil
}

// FormatFromFilename classifies a scene file by extension, case-insensitively.
// Unrecognized extensions return "" and false; callers pass them through to the host.
func FormatFromFilename(filename string) (FileFormat, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	for f, e := range fileFormats {
		if e == ext {
			return f, true
		}
	}
	return "", false
}

// SceneFilename derives the exported scene file name for a descriptor.
// The name comes from the descriptor's parent directory, cut at its first dot,
// so "lib/chair_v001.model/model.json" exports "chair_v001.mb" for MayaBinary.
func SceneFilename(descriptorPath string, f FileFormat) string {
	dir := filepath.Base(filepath.Dir(descriptorPath))
	if i := strings.Index(dir, "."); i >= 0 {
		dir = dir[:i]
	}
	return dir + f.Extension()
}
