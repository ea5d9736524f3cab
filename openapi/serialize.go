package openapi

import (
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// JSON renders the document as indented JSON. The output is a snapshot of
// the document state at call time and is deterministic: rendering the same
// state twice produces identical bytes. Every field that was set is
// present, including explicit empty collections such as "security": [].
//
// See: https://spec.openapis.org/oas/v3.1.0#openapi-document
func (d *Document) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// YAML renders the document as YAML. The value is derived from the JSON
// encoding, so both encodings always describe the identical structure:
// parsing the YAML yields the same tree as parsing the JSON, key for key,
// with the specification's camelCase field names intact.
//
// See: https://spec.openapis.org/oas/v3.1.0#openapi-document
func (d *Document) YAML() ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return yaml.Marshal(tree)
}

// MarshalJSON encodes the document with its vendor extensions merged next
// to the fixed fields and its present-but-empty collections emitted as
// explicit "[]" or "{}" values.
func (d *Document) MarshalJSON() ([]byte, error) {
	type documentAlias Document
	base, err := json.Marshal((*documentAlias)(d))
	if err != nil {
		return nil, err
	}
	return mergeExtras(base, d.Extensions, d.emptyCollections())
}

// emptyCollections reports the document collections that are non-nil but
// hold no entries. The alias encoding drops them through omitempty, yet a
// collection a caller emptied out is not the same as one never set, so
// they return to the output as explicit empties. The important case is
// "security": [], which disables authentication rather than declaring
// nothing.
func (d *Document) emptyCollections() map[string]json.RawMessage {
	var empties map[string]json.RawMessage
	force := func(name, value string) {
		if empties == nil {
			empties = make(map[string]json.RawMessage)
		}
		empties[name] = json.RawMessage(value)
	}
	if d.Servers != nil && len(d.Servers) == 0 {
		force("servers", "[]")
	}
	if d.Tags != nil && len(d.Tags) == 0 {
		force("tags", "[]")
	}
	if d.Paths != nil && len(d.Paths) == 0 {
		force("paths", "{}")
	}
	if d.Webhooks != nil && len(d.Webhooks) == 0 {
		force("webhooks", "{}")
	}
	if d.Security != nil && len(d.Security) == 0 {
		force("security", "[]")
	}
	return empties
}

// UnmarshalJSON decodes the document and collects "x-" keys back into the
// extension side-map, so a rendered document parses into an equivalent one.
func (d *Document) UnmarshalJSON(data []byte) error {
	type documentAlias Document
	if err := json.Unmarshal(data, (*documentAlias)(d)); err != nil {
		return err
	}
	ext, err := extractExtensions(data)
	if err != nil {
		return err
	}
	d.Extensions = ext
	return nil
}

// MarshalJSON encodes the operation with its vendor extensions merged in
// and an explicit "security": [] emitted when the operation opted out of
// authentication rather than inheriting the document requirements.
func (o *Operation) MarshalJSON() ([]byte, error) {
	type operationAlias Operation
	base, err := json.Marshal((*operationAlias)(o))
	if err != nil {
		return nil, err
	}
	var empties map[string]json.RawMessage
	if o.Security != nil && len(o.Security) == 0 {
		empties = map[string]json.RawMessage{"security": json.RawMessage("[]")}
	}
	return mergeExtras(base, o.Extensions, empties)
}

// UnmarshalJSON decodes the operation and collects "x-" keys back into the
// extension side-map.
func (o *Operation) UnmarshalJSON(data []byte) error {
	type operationAlias Operation
	if err := json.Unmarshal(data, (*operationAlias)(o)); err != nil {
		return err
	}
	ext, err := extractExtensions(data)
	if err != nil {
		return err
	}
	o.Extensions = ext
	return nil
}

// MarshalJSON encodes the schema with its vendor extensions merged next to
// the schema keywords.
func (s *Schema) MarshalJSON() ([]byte, error) {
	type schemaAlias Schema
	base, err := json.Marshal((*schemaAlias)(s))
	if err != nil {
		return nil, err
	}
	return mergeExtras(base, s.Extensions, nil)
}

// UnmarshalJSON decodes the schema and collects "x-" keys back into the
// extension side-map. Nested schemas recover their own extensions.
func (s *Schema) UnmarshalJSON(data []byte) error {
	type schemaAlias Schema
	if err := json.Unmarshal(data, (*schemaAlias)(s)); err != nil {
		return err
	}
	ext, err := extractExtensions(data)
	if err != nil {
		return err
	}
	s.Extensions = ext
	return nil
}

// mergeExtras merges vendor extensions and explicit empty collections into
// an encoded object. Objects with neither come back unchanged in struct
// field order; the merge path re-encodes through a map, which sorts keys.
// Both forms are deterministic for a given document state.
func mergeExtras(base []byte, extensions map[string]any, empties map[string]json.RawMessage) ([]byte, error) {
	if len(extensions) == 0 && len(empties) == 0 {
		return base, nil
	}

	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(base, &fields); err != nil {
		return nil, err
	}
	for name, raw := range empties {
		fields[name] = raw
	}
	for name, value := range extensions {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		fields[name] = raw
	}
	return json.Marshal(fields)
}

// extractExtensions pulls the "x-" keys out of an encoded object. Returns
// nil when the object carries none, keeping absent distinct from empty.
func extractExtensions(data []byte) (map[string]any, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	var ext map[string]any
	for name, raw := range fields {
		if !strings.HasPrefix(name, extensionPrefix) {
			continue
		}
		var value any
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, err
		}
		if ext == nil {
			ext = make(map[string]any)
		}
		ext[name] = value
	}
	return ext, nil
}
