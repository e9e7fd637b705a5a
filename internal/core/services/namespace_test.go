package services

import (
	"context"
	"errors"
	"testing"

	"github.com/kamal-hamza/mx-cli/internal/core/domain"
	"github.com/kamal-hamza/mx-cli/internal/core/ports/mocks"
)

func TestAllocateNamespace(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		filename string
		want     string
	}{
		{"empty registry", nil, "shot.ma", "shot000"},
		{"gap at zero", []string{"shot001", "shot002"}, "shot.ma", "shot000"},
		{"skip occupied", []string{"shot000", "shot001", "shot002"}, "shot.mb", "shot003"},
		{"stem stops at first dot", []string{"chair000"}, "/lib/chair.v2.mb", "chair001"},
		{"other stems ignored", []string{"table000"}, "chair.mb", "chair000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := mocks.NewMockSceneHost()
			host.AddNamespace(tt.existing...)

			got, err := AllocateNamespace(context.Background(), host, tt.filename)
			if err != nil {
				t.Fatalf("AllocateNamespace failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("AllocateNamespace(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestAllocateNamespace_RepeatedLoads(t *testing.T) {
	host, engine, to := newLoadFixture(t, "shot.ma")
	host.AddNamespace("shot001", "shot002")

	want := []string{"shot000", "shot003", "shot004"}
	for i, w := range want {
		result, err := engine.Load(context.Background(), to, LoadRequest{LoadType: "reference"})
		if err != nil {
			t.Fatalf("load %d failed: %v", i, err)
		}
		if result.Namespace != w {
			t.Errorf("load %d namespace = %q, want %q", i, result.Namespace, w)
		}
	}
}

func TestAllocateNamespace_HostError(t *testing.T) {
	host := mocks.NewMockSceneHost()
	host.SetShouldFail("NamespaceExists", errors.New("port closed"))

	_, err := AllocateNamespace(context.Background(), host, "a.mb")

	var hostErr *domain.HostOperationError
	if !errors.As(err, &hostErr) || hostErr.Op != "namespace" {
		t.Fatalf("expected namespace HostOperationError, got %v", err)
	}
}

func TestAllocateNamespace_Cancelled(t *testing.T) {
	host := mocks.NewMockSceneHost()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := AllocateNamespace(ctx, host, "a.mb"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(host.GetCalls()) != 0 {
		t.Error("no probes expected after cancellation")
	}
}

func TestAttributeRef(t *testing.T) {
	host := mocks.NewMockSceneHost()
	host.SetAttribute("pCube1", "tx", "doubleLinear", 2.5)

	ref := NewAttributeRef(host, "pCube1", "tx")
	ctx := context.Background()

	if ref.FullName() != "pCube1.tx" || ref.Object() != "pCube1" || ref.Attr() != "tx" {
		t.Errorf("unexpected names: %s", ref.FullName())
	}
	if ok, err := ref.IsValid(ctx); err != nil || !ok {
		t.Errorf("pCube1.tx should be valid, got %v, %v", ok, err)
	}
	if v, err := ref.Value(ctx); err != nil || v != 2.5 {
		t.Errorf("Value = %v, %v", v, err)
	}
	if typ, err := ref.Type(ctx); err != nil || typ != "doubleLinear" {
		t.Errorf("Type = %q, %v", typ, err)
	}

	if ok, err := NewAttributeRef(host, "pCube1", "ty").IsValid(ctx); err != nil || ok {
		t.Errorf("pCube1.ty does not exist, got %v, %v", ok, err)
	}

	host.SetShouldFail("AttributeExists", errors.New("boom"))
	if _, err := ref.IsValid(ctx); err == nil {
		t.Error("expected host error from IsValid")
	}
}
