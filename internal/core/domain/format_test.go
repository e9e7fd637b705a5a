package domain

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestParseFileFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    FileFormat
		wantErr bool
	}{
		{"", MayaBinary, false},
		{"mayaBinary", MayaBinary, false},
		{"mayaAscii", MayaASCII, false},
		{"xml", "", true},
		{"MAYABINARY", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFileFormat(tt.name)
		if tt.wantErr {
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("ParseFileFormat(%q) error = %v, want ErrUnsupportedFormat", tt.name, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseFileFormat(%q) = %q, %v; want %q", tt.name, got, err, tt.want)
		}
	}
}

func TestFormatFromFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     FileFormat
		ok       bool
	}{
		{"chair.mb", MayaBinary, true},
		{"chair.MA", MayaASCII, true},
		{"/lib/chair.model/chair.ma", MayaASCII, true},
		{"chair.fbx", "", false},
		{"chair", "", false},
	}

	for _, tt := range tests {
		got, ok := FormatFromFilename(tt.filename)
		if got != tt.want || ok != tt.ok {
			t.Errorf("FormatFromFilename(%q) = %q, %v; want %q, %v", tt.filename, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSceneFilename(t *testing.T) {
	tests := []struct {
		path   string
		format FileFormat
		want   string
	}{
		{filepath.Join("lib", "chair_v001", "transfer.json"), MayaBinary, "chair_v001.mb"},
		{filepath.Join("lib", "chair_v001.model", "model.json"), MayaBinary, "chair_v001.mb"},
		{filepath.Join("lib", "chair_v001.model", "model.json"), MayaASCII, "chair_v001.ma"},
		{filepath.Join("lib", "a.b.mayafile", "mayafile.json"), MayaASCII, "a.ma"},
	}

	for _, tt := range tests {
		if got := SceneFilename(tt.path, tt.format); got != tt.want {
			t.Errorf("SceneFilename(%q, %q) = %q, want %q", tt.path, tt.format, got, tt.want)
		}
	}
}

func TestFileFormatsSorted(t *testing.T) {
	formats := FileFormats()
	if len(formats) != 2 || formats[0] != MayaASCII || formats[1] != MayaBinary {
		t.Errorf("FileFormats() = %v", formats)
	}
	if MayaBinary.Extension() != ".mb" || MayaASCII.Extension() != ".ma" {
		t.Error("unexpected extensions")
	}
}

func TestParseLoadType(t *testing.T) {
	tests := []struct {
		in      string
		want    LoadType
		wantErr bool
	}{
		{"import", LoadImport, false},
		{"Import", LoadImport, false},
		{" REFERENCE ", LoadReference, false},
		{"merge", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseLoadType(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidLoadType) {
				t.Errorf("ParseLoadType(%q) error = %v, want ErrInvalidLoadType", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseLoadType(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestNamespaceHelpers(t *testing.T) {
	if got := NamespaceStem("/lib/chair_v001.model/chair_v001.mb"); got != "chair_v001" {
		t.Errorf("NamespaceStem = %q", got)
	}
	if got := NamespaceStem("shot.v2.ma"); got != "shot" {
		t.Errorf("NamespaceStem = %q", got)
	}
	if got := NamespaceCandidate("shot", 3); got != "shot003" {
		t.Errorf("NamespaceCandidate = %q", got)
	}
	if got := NamespaceCandidate("shot", 1234); got != "shot1234" {
		t.Errorf("NamespaceCandidate = %q", got)
	}
	if got := GroupName("propA003"); got != "propA003_grp" {
		t.Errorf("GroupName = %q", got)
	}
}
