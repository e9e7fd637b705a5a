package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/kamal-hamza/mx-cli/internal/core/ports"
)

// HostCall records one method invocation on MockSceneHost
type HostCall struct {
	Method string
	Args   []any
}

// MockSceneHost is a recording SceneHost that keeps a tiny fake scene:
// a namespace registry, a selection and per-object attributes.
type MockSceneHost struct {
	mu         sync.Mutex
	calls      []HostCall
	namespaces map[string]bool
	attrs      map[string]map[string]mockAttr
	selection  []string
	exports    []ports.ExportRequest
	imports    []ports.ImportRequest
	failures   map[string]error
}

type mockAttr struct {
	typ   string
	value any
}

// NewMockSceneHost creates an empty fake scene
func NewMockSceneHost() *MockSceneHost {
	return &MockSceneHost{
		namespaces: make(map[string]bool),
		attrs:      make(map[string]map[string]mockAttr),
		failures:   make(map[string]error),
	}
}

var _ ports.SceneHost = (*MockSceneHost)(nil)

// AddNamespace registers an existing namespace
func (m *MockSceneHost) AddNamespace(names ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range names {
		m.namespaces[n] = true
	}
}

// SetAttribute defines object.attr with a type and value (value may be nil)
func (m *MockSceneHost) SetAttribute(object, attr, typ string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.attrs[object] == nil {
		m.attrs[object] = make(map[string]mockAttr)
	}
	m.attrs[object][attr] = mockAttr{typ: typ, value: value}
}

// SetShouldFail makes method return err; a nil err clears the failure
func (m *MockSceneHost) SetShouldFail(method string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.failures, method)
		return
	}
	m.failures[method] = err
}

func (m *MockSceneHost) record(method string, args ...any) error {
	m.calls = append(m.calls, HostCall{Method: method, Args: args})
	return m.failures[method]
}

// SelectObjects records the selection
func (m *MockSceneHost) SelectObjects(ctx context.Context, names []string, clearFirst bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("SelectObjects", names, clearFirst); err != nil {
		return err
	}
	if clearFirst {
		m.selection = nil
	}
	m.selection = append(m.selection, names...)
	return nil
}

// ExportSelection records the export request
func (m *MockSceneHost) ExportSelection(ctx context.Context, req ports.ExportRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("ExportSelection", req); err != nil {
		return err
	}
	m.exports = append(m.exports, req)
	return nil
}

// ImportOrReference records the request and registers its namespace
func (m *MockSceneHost) ImportOrReference(ctx context.Context, req ports.ImportRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("ImportOrReference", req); err != nil {
		return err
	}
	m.imports = append(m.imports, req)
	if req.Namespace != "" {
		m.namespaces[req.Namespace] = true
	}
	return nil
}

// NamespaceExists checks the fake registry
func (m *MockSceneHost) NamespaceExists(ctx context.Context, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("NamespaceExists", name); err != nil {
		return false, err
	}
	return m.namespaces[name], nil
}

// RestoreMainWindowFocus records the call
func (m *MockSceneHost) RestoreMainWindowFocus(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.record("RestoreMainWindowFocus")
}

// AttributeExists checks the fake attribute table
func (m *MockSceneHost) AttributeExists(ctx context.Context, object, attr string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("AttributeExists", object, attr); err != nil {
		return false, err
	}
	_, ok := m.attrs[object][attr]
	return ok, nil
}

// AttributeValue returns the fake value
func (m *MockSceneHost) AttributeValue(ctx context.Context, object, attr string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("AttributeValue", object, attr); err != nil {
		return nil, err
	}
	a, ok := m.attrs[object][attr]
	if !ok {
		return nil, fmt.Errorf("no attribute %s.%s", object, attr)
	}
	return a.value, nil
}

// AttributeType returns the fake type
func (m *MockSceneHost) AttributeType(ctx context.Context, object, attr string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("AttributeType", object, attr); err != nil {
		return "", err
	}
	a, ok := m.attrs[object][attr]
	if !ok {
		return "", fmt.Errorf("no attribute %s.%s", object, attr)
	}
	return a.typ, nil
}

// GetCalls returns a copy of all recorded calls
func (m *MockSceneHost) GetCalls() []HostCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]HostCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// CountCalls returns how many times method was invoked
func (m *MockSceneHost) CountCalls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

// Exports returns the recorded export requests
func (m *MockSceneHost) Exports() []ports.ExportRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ports.ExportRequest, len(m.exports))
	copy(out, m.exports)
	return out
}

// Imports returns the recorded import/reference requests
func (m *MockSceneHost) Imports() []ports.ImportRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ports.ImportRequest, len(m.imports))
	copy(out, m.imports)
	return out
}

// Selection returns the current fake selection
func (m *MockSceneHost) Selection() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.selection))
	copy(out, m.selection)
	return out
}

// Reset clears recorded calls and failures but keeps the fake scene
func (m *MockSceneHost) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
	m.exports = nil
	m.imports = nil
	m.failures = make(map[string]error)
}
