package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Metadata keys written by a scene file save
const (
	MetaMayaFilename = "mayafilename"
	MetaFileType     = "fileType"
	MetaDescription  = "description"
)

// AttrData is one captured attribute: the host type classifier and its scalar value
type AttrData struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// ObjectData holds what was captured for one scene object.
// Keys other than "attrs" found in a descriptor are kept in Extra and written back.
type ObjectData struct {
	Attrs OrderedMap[AttrData]
	Extra OrderedMap[json.RawMessage]
}

func (o ObjectData) MarshalJSON() ([]byte, error) {
	var out OrderedMap[json.RawMessage]

	attrs, err := json.Marshal(o.Attrs)
	if err != nil {
		return nil, err
	}
	out.Set("attrs", attrs)

	for _, key := range o.Extra.Keys() {
		if key == "attrs" {
			continue
		}
		raw, _ := o.Extra.Get(key)
		out.Set(key, raw)
	}

	return json.Marshal(out)
}

func (o *ObjectData) UnmarshalJSON(data []byte) error {
	var fields OrderedMap[json.RawMessage]
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*o = ObjectData{}
	for _, key := range fields.Keys() {
		raw, _ := fields.Get(key)
		if key == "attrs" {
			if err := json.Unmarshal(raw, &o.Attrs); err != nil {
				return fmt.Errorf("attrs: %w", err)
			}
			continue
		}
		o.Extra.Set(key, raw)
	}
	return nil
}

// TransferObject maps scene object names to captured attribute data and
// carries free-form metadata. It is persisted as a JSON descriptor.
type TransferObject struct {
	objects  OrderedMap[ObjectData]
	metadata OrderedMap[any]
	extra    OrderedMap[json.RawMessage]
	path     string
}

// NewTransferObject returns an empty transfer object
func NewTransferObject() *TransferObject {
	return &TransferObject{}
}

// FromObjects returns a transfer object whose object set is exactly names,
// each with empty captured data. Repeated names collapse to one entry.
func FromObjects(names []string) *TransferObject {
	t := NewTransferObject()
	for _, name := range names {
		if t.objects.Has(name) {
			continue
		}
		t.objects.Set(name, ObjectData{})
	}
	return t
}

// Path returns the descriptor location, empty for an unsaved object
func (t *TransferObject) Path() string {
	return t.path
}

// SetPath records where the descriptor lives
func (t *TransferObject) SetPath(path string) {
	t.path = path
}

// Objects returns the object names in insertion order
func (t *TransferObject) Objects() []string {
	return t.objects.Keys()
}

// Object returns the captured data for name
func (t *TransferObject) Object(name string) (ObjectData, bool) {
	return t.objects.Get(name)
}

// SetObject adds or replaces the data for name
func (t *TransferObject) SetObject(name string, data ObjectData) {
	t.objects.Set(name, data)
}

// Attrs returns the captured attributes for name; empty when name is unknown
func (t *TransferObject) Attrs(name string) OrderedMap[AttrData] {
	obj, _ := t.objects.Get(name)
	return obj.Attrs
}

// Attr returns one captured attribute and whether it was present
func (t *TransferObject) Attr(name, attr string) (AttrData, bool) {
	return t.Attrs(name).Get(attr)
}

// AttrType returns the captured type of an attribute, or ""
func (t *TransferObject) AttrType(name, attr string) string {
	a, _ := t.Attr(name, attr)
	return a.Type
}

// AttrValue returns the captured value of an attribute, or nil
func (t *TransferObject) AttrValue(name, attr string) any {
	a, _ := t.Attr(name, attr)
	return a.Value
}

// SetAttr records an attribute for name, adding the object if needed
func (t *TransferObject) SetAttr(name, attr string, data AttrData) {
	obj, _ := t.objects.Get(name)
	obj.Attrs.Set(attr, data)
	t.objects.Set(name, obj)
}

// Metadata returns the value stored under key
func (t *TransferObject) Metadata(key string) (any, bool) {
	return t.metadata.Get(key)
}

// MetadataString returns the value under key when it is a string, otherwise ""
func (t *TransferObject) MetadataString(key string) string {
	v, _ := t.metadata.Get(key)
	s, _ := v.(string)
	return s
}

// MetadataKeys returns metadata keys in insertion order
func (t *TransferObject) MetadataKeys() []string {
	return t.metadata.Keys()
}

// SetMetadata stores a metadata value in memory
func (t *TransferObject) SetMetadata(key string, value any) {
	t.metadata.Set(key, value)
}

// UpdateMetadata merges values into the metadata; new keys are added in sorted order
func (t *TransferObject) UpdateMetadata(values map[string]any) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		t.metadata.Set(k, values[k])
	}
}

type transferFields struct {
	Metadata OrderedMap[any]        `json:"metadata"`
	Objects  OrderedMap[ObjectData] `json:"objects"`
}

func (t *TransferObject) MarshalJSON() ([]byte, error) {
	var out OrderedMap[json.RawMessage]

	metadata, err := json.Marshal(t.metadata)
	if err != nil {
		return nil, fmt.Errorf("metadata: %w", err)
	}
	out.Set("metadata", metadata)

	objects, err := json.Marshal(t.objects)
	if err != nil {
		return nil, fmt.Errorf("objects: %w", err)
	}
	out.Set("objects", objects)

	for _, key := range t.extra.Keys() {
		if key == "metadata" || key == "objects" {
			continue
		}
		raw, _ := t.extra.Get(key)
		out.Set(key, raw)
	}

	return json.Marshal(out)
}

// UnmarshalJSON reads a descriptor. Shape errors are reported as ErrMalformedData.
func (t *TransferObject) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return fmt.Errorf("%w: descriptor is null", ErrMalformedData)
	}

	var fields OrderedMap[json.RawMessage]
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedData, err)
	}

	var known transferFields
	var extra OrderedMap[json.RawMessage]
	for _, key := range fields.Keys() {
		raw, _ := fields.Get(key)
		switch key {
		case "metadata":
			if err := json.Unmarshal(raw, &known.Metadata); err != nil {
				return fmt.Errorf("%w: metadata: %v", ErrMalformedData, err)
			}
		case "objects":
			if err := json.Unmarshal(raw, &known.Objects); err != nil {
				return fmt.Errorf("%w: objects: %v", ErrMalformedData, err)
			}
		default:
			extra.Set(key, raw)
		}
	}

	t.metadata = known.Metadata
	t.objects = known.Objects
	t.extra = extra
	return nil
}
