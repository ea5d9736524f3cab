package openapi

import (
	"fmt"
	"strings"
)

// extensionPrefix is the reserved prefix every vendor extension key must
// carry.
//
// See: https://spec.openapis.org/oas/v3.1.0#specification-extensions
const extensionPrefix = "x-"

// checkExtensionName panics when name lacks the reserved prefix. A bad
// extension name is a caller-side contract violation, the only condition
// in this package that aborts instead of degrading; every other collision
// or miss is a warning or a no-op. The check runs at insertion time, so a
// document that serialized once cannot start failing later.
func checkExtensionName(name string) {
	if !strings.HasPrefix(name, extensionPrefix) {
		panic(fmt.Sprintf("openapi: vendor extension name %q must begin with %q", name, extensionPrefix))
	}
}

// SetExtension stores a document-level vendor extension. The key is merged
// into the serialized root object next to the fixed fields. Panics when
// name does not begin with "x-".
//
// See: https://spec.openapis.org/oas/v3.1.0#specification-extensions
func (d *Document) SetExtension(name string, value any) *Document {
	checkExtensionName(name)
	if d.Extensions == nil {
		d.Extensions = make(map[string]any)
	}
	d.Extensions[name] = value
	return d
}

// SetExtension stores a schema-level vendor extension. The key is merged
// into the serialized schema object next to its keywords. Panics when name
// does not begin with "x-".
//
// See: https://spec.openapis.org/oas/v3.1.0#specification-extensions
func (s *Schema) SetExtension(name string, value any) *Schema {
	checkExtensionName(name)
	if s.Extensions == nil {
		s.Extensions = make(map[string]any)
	}
	s.Extensions[name] = value
	return s
}

// SetExtension stores an operation-level vendor extension. Operations
// assembled through OperationBuilder can use its Extension method instead.
// Panics when name does not begin with "x-".
//
// See: https://spec.openapis.org/oas/v3.1.0#specification-extensions
func (o *Operation) SetExtension(name string, value any) *Operation {
	checkExtensionName(name)
	if o.Extensions == nil {
		o.Extensions = make(map[string]any)
	}
	o.Extensions[name] = value
	return o
}
