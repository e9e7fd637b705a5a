package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/kamal-hamza/mx-cli/internal/core/domain"
	"github.com/kamal-hamza/mx-cli/internal/core/ports/mocks"
)

func newTestSession(t *testing.T) (*Session, *mocks.MockSceneHost, *mocks.MockDescriptorStore) {
	t.Helper()
	host := mocks.NewMockSceneHost()
	store := mocks.NewMockDescriptorStore()
	return NewSession(host, store, nil, nil), host, store
}

func TestSession_LoadReusesCachedDescriptor(t *testing.T) {
	session, host, store := newTestSession(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "chair.model", "model.json")
	if _, err := session.SaveModel(ctx, path, []string{"chair"}, "", nil); err != nil {
		t.Fatalf("SaveModel failed: %v", err)
	}

	first, _, err := session.LoadModel(ctx, path, LoadRequest{LoadType: "import"})
	if err != nil {
		t.Fatalf("first load failed: %v", err)
	}
	second, result, err := session.LoadModel(ctx, path, LoadRequest{LoadType: "import"})
	if err != nil {
		t.Fatalf("second load failed: %v", err)
	}

	if first != second {
		t.Error("repeated loads of one path should reuse the descriptor object")
	}
	if n := len(store.GetReads()); n != 1 {
		t.Errorf("expected 1 descriptor read, got %d", n)
	}
	if n := host.CountCalls("ImportOrReference"); n != 2 {
		t.Errorf("expected 2 host loads, got %d", n)
	}
	if result.Namespace != "chair001" {
		t.Errorf("second namespace = %q, want chair001", result.Namespace)
	}
}

func TestSession_CacheMissOnOtherPath(t *testing.T) {
	session, _, store := newTestSession(t)
	ctx := context.Background()
	dir := t.TempDir()

	a := filepath.Join(dir, "a.model", "model.json")
	b := filepath.Join(dir, "b.model", "model.json")
	for _, p := range []string{a, b} {
		if _, err := session.SaveModel(ctx, p, []string{"x"}, "", nil); err != nil {
			t.Fatalf("SaveModel failed: %v", err)
		}
	}

	for _, p := range []string{a, b, a} {
		if _, _, err := session.LoadModel(ctx, p, LoadRequest{LoadType: "reference"}); err != nil {
			t.Fatalf("LoadModel(%s) failed: %v", p, err)
		}
	}

	if n := len(store.GetReads()); n != 3 {
		t.Errorf("expected 3 descriptor reads, got %d", n)
	}
}

func TestSession_SaveInvalidatesCache(t *testing.T) {
	session, _, store := newTestSession(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "chair.model", "model.json")

	if _, err := session.SaveModel(ctx, path, []string{"chair"}, "", nil); err != nil {
		t.Fatalf("SaveModel failed: %v", err)
	}
	if _, _, err := session.LoadModel(ctx, path, LoadRequest{LoadType: "import"}); err != nil {
		t.Fatalf("LoadModel failed: %v", err)
	}

	if _, err := session.SaveModel(ctx, path, []string{"chair", "leg"}, "mayaAscii", nil); err != nil {
		t.Fatalf("second SaveModel failed: %v", err)
	}
	to, _, err := session.LoadModel(ctx, path, LoadRequest{LoadType: "import"})
	if err != nil {
		t.Fatalf("LoadModel failed: %v", err)
	}

	if len(to.Objects()) != 2 {
		t.Errorf("expected the re-saved descriptor, got objects %v", to.Objects())
	}
	if n := len(store.GetReads()); n != 2 {
		t.Errorf("expected 2 descriptor reads, got %d", n)
	}
}

func TestSession_CachesArePerKind(t *testing.T) {
	session, _, _ := newTestSession(t)
	ctx := context.Background()
	dir := t.TempDir()

	model := filepath.Join(dir, "a.model", "model.json")
	scene := filepath.Join(dir, "s.mayafile", "mayafile.json")
	if _, err := session.SaveModel(ctx, model, []string{"a"}, "", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := session.SaveMayaFile(ctx, scene, []string{"s"}, "", nil); err != nil {
		t.Fatal(err)
	}

	m, _, err := session.LoadModel(ctx, model, LoadRequest{LoadType: "import"})
	if err != nil {
		t.Fatal(err)
	}
	s, _, err := session.LoadMayaFile(ctx, scene, LoadRequest{LoadType: "import"})
	if err != nil {
		t.Fatal(err)
	}

	if cached, ok := session.Cache(domain.ModelKind).Get(model); !ok || cached != m {
		t.Error("model cache should hold the model descriptor")
	}
	if cached, ok := session.Cache(domain.MayaFileKind).Get(scene); !ok || cached != s {
		t.Error("mayafile cache should hold the mayafile descriptor")
	}
}

func TestSession_LoadMissingDescriptor(t *testing.T) {
	session, host, _ := newTestSession(t)

	_, _, err := session.LoadModel(context.Background(), filepath.Join(t.TempDir(), "nope.model", "model.json"), LoadRequest{LoadType: "import"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(host.GetCalls()) != 0 {
		t.Error("no host calls expected")
	}
}

func TestTransferCache(t *testing.T) {
	c := NewTransferCache()
	to := domain.NewTransferObject()
	to.SetPath(filepath.Join(t.TempDir(), "a.model", "model.json"))

	if _, ok := c.Get(to.Path()); ok {
		t.Error("empty cache should miss")
	}

	c.Put(to)
	if got, ok := c.Get(to.Path()); !ok || got != to {
		t.Error("expected hit after Put")
	}
	if _, ok := c.Get(to.Path() + ".bak"); ok {
		t.Error("other paths should miss")
	}

	c.Invalidate("/elsewhere/model.json")
	if _, ok := c.Get(to.Path()); !ok {
		t.Error("invalidating another path should keep the entry")
	}

	c.Invalidate(to.Path())
	if _, ok := c.Get(to.Path()); ok {
		t.Error("expected miss after Invalidate")
	}

	c.Put(to)
	c.Clear()
	if _, ok := c.Get(to.Path()); ok {
		t.Error("expected miss after Clear")
	}
}
