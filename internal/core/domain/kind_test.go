package domain

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func TestKindForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{filepath.Join("lib", "chair.model"), "Model"},
		{filepath.Join("lib", "chair.model", "model.json"), "Model"},
		{filepath.Join("lib", "shot.mayafile"), "MayaFile"},
		{filepath.Join("lib", "shot.MAYAFILE", "mayafile.json"), "MayaFile"},
	}

	for _, tt := range tests {
		k, err := KindForPath(tt.path)
		if err != nil {
			t.Errorf("KindForPath(%q) error: %v", tt.path, err)
			continue
		}
		if k.Name != tt.want {
			t.Errorf("KindForPath(%q) = %s, want %s", tt.path, k.Name, tt.want)
		}
	}

	for _, p := range []string{"lib", filepath.Join("lib", "chair.model", "mayafile.json"), "a.json"} {
		if _, err := KindForPath(p); !errors.Is(err, ErrUnknownKind) {
			t.Errorf("KindForPath(%q) error = %v, want ErrUnknownKind", p, err)
		}
	}
}

func TestKindByName(t *testing.T) {
	k, err := KindByName("model")
	if err != nil || k.Name != ModelKind.Name {
		t.Errorf("KindByName(model) = %v, %v", k, err)
	}
	if _, err := KindByName("anim"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("KindByName(anim) error = %v", err)
	}
}

func TestItemLayout(t *testing.T) {
	dir := ModelKind.ItemDir("lib", "chair")
	if dir != filepath.Join("lib", "chair.model") {
		t.Errorf("ItemDir = %q", dir)
	}
	if got := ModelKind.TransferPath(dir); got != filepath.Join("lib", "chair.model", "model.json") {
		t.Errorf("TransferPath = %q", got)
	}
	if got := MayaFileKind.TransferPath(MayaFileKind.ItemDir("lib", "shot")); got != filepath.Join("lib", "shot.mayafile", "mayafile.json") {
		t.Errorf("TransferPath = %q", got)
	}
}

func TestCaptureAttrs(t *testing.T) {
	k := AssetKind{Name: "Test", SceneAttrs: []string{"visibility", "tx"}}

	got := k.CaptureAttrs("tx", "", "ty")
	want := []string{"visibility", "tx", "ty"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CaptureAttrs = %v, want %v", got, want)
	}

	if ModelKind.CaptureAttrs() != nil {
		t.Error("ModelKind captures nothing by default")
	}
}

func TestItemFromTransfer(t *testing.T) {
	to := FromObjects([]string{"a", "b"})
	to.SetMetadata(MetaMayaFilename, "chair.mb")
	to.SetMetadata(MetaFileType, "mayaBinary")
	to.SetMetadata(MetaDescription, "hero chair")
	to.SetPath(filepath.Join("lib", "chair.model", "model.json"))

	item := ItemFromTransfer(ModelKind, to)
	if item.Name != "chair" || item.ObjectCount != 2 || item.Description != "hero chair" {
		t.Errorf("unexpected item: %+v", item)
	}
	if item.ScenePath() != filepath.Join("lib", "chair.model", "chair.mb") {
		t.Errorf("ScenePath = %q", item.ScenePath())
	}
	if item.TransferPath() != to.Path() {
		t.Errorf("TransferPath = %q", item.TransferPath())
	}
}
