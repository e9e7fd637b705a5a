package services

import (
	"context"

	"github.com/kamal-hamza/mx-cli/internal/core/ports"
)

// AttributeRef addresses one attribute on one named object in the host scene.
// It only reads from the host.
type AttributeRef struct {
	host   ports.SceneHost
	object string
	attr   string
}

// NewAttributeRef creates a reference to object.attr
func NewAttributeRef(host ports.SceneHost, object, attr string) *AttributeRef {
	return &AttributeRef{
		host:   host,
		object: object,
		attr:   attr,
	}
}

// Object returns the object name
func (a *AttributeRef) Object() string {
	return a.object
}

// Attr returns the attribute name
func (a *AttributeRef) Attr() string {
	return a.attr
}

// FullName returns "object.attr"
func (a *AttributeRef) FullName() string {
	return a.object + "." + a.attr
}

// IsValid reports whether the attribute currently exists and can be queried.
// A host failure is returned as an error, never as false.
func (a *AttributeRef) IsValid(ctx context.Context) (bool, error) {
	return a.host.AttributeExists(ctx, a.object, a.attr)
}

// Value returns the current value, nil when unset
func (a *AttributeRef) Value(ctx context.Context) (any, error) {
	return a.host.AttributeValue(ctx, a.object, a.attr)
}

// Type returns the host type classifier
func (a *AttributeRef) Type(ctx context.Context) (string, error) {
	return a.host.AttributeType(ctx, a.object, a.attr)
}
