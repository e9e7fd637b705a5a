package services

import (
	"context"

	"github.com/kamal-hamza/mx-cli/internal/core/domain"
	"github.com/kamal-hamza/mx-cli/internal/core/ports"
)

// AllocateNamespace returns the first "<stem>NNN" namespace that the host does
// not know yet, probing suffixes 000, 001, ... in order. The registry belongs to
// the live session and can change between loads, so nothing is cached.
func AllocateNamespace(ctx context.Context, host ports.SceneHost, filename string) (string, error) {
	stem := domain.NamespaceStem(filename)
	for idx := 0; ; idx++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		candidate := domain.NamespaceCandidate(stem, idx)
		exists, err := host.NamespaceExists(ctx, candidate)
		if err != nil {
			return "", domain.NewHostError("namespace", err)
		}
		if !exists {
			return candidate, nil
		}
	}
}
