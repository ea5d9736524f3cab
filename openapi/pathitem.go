package openapi

import (
	"net/http"
	"regexp"
	"strings"
)

// macroTypeMap maps path template macros to OpenAPI type and format.
var macroTypeMap = map[string][2]string{
	"uuid":     {"string", "uuid"},
	"int":      {"integer", ""},
	"float":    {"number", ""},
	"slug":     {"string", ""},
	"alpha":    {"string", ""},
	"alphanum": {"string", ""},
	"date":     {"string", "date"},
	"hex":      {"string", ""},
	"domain":   {"string", "hostname"},
}

// pathVarRegexp matches template variables in the form {name} or {name:macro}.
var pathVarRegexp = regexp.MustCompile(`\{([^}]+)\}`)

// ParsePathTemplate extracts variables from a path template, normalizes it
// to OpenAPI form, and generates typed path parameters. Template variables
// are written {name} or {name:macro}; recognized macros (uuid, int, float,
// slug, alpha, alphanum, date, hex, domain) select the parameter's schema
// type and format, unknown macros fall back to a plain string. The macro
// suffix is stripped from the returned path.
//
//	path, params := openapi.ParsePathTemplate("/users/{id:uuid}/files/{name}")
//	// path   == "/users/{id}/files/{name}"
//	// params == [{id, path, required, string/uuid}, {name, path, required, string}]
//
// Feed the parameters to PathItemBuilder.Parameters so every operation under
// the path carries them.
//
// See: https://spec.openapis.org/oas/v3.1.0#paths-object
// See: https://spec.openapis.org/oas/v3.1.0#parameter-object
func ParsePathTemplate(tpl string) (string, []*Parameter) {
	var params []*Parameter

	path := pathVarRegexp.ReplaceAllStringFunc(tpl, func(match string) string {
		inner := match[1 : len(match)-1]
		varName, macroName, _ := strings.Cut(inner, ":")

		param := &Parameter{
			Name:     varName,
			In:       "path",
			Required: true,
			Schema:   &Schema{Type: TypeString("string")},
		}

		if macroName != "" {
			if typeInfo, ok := macroTypeMap[macroName]; ok {
				param.Schema = &Schema{Type: TypeString(typeInfo[0])}
				if typeInfo[1] != "" {
					param.Schema.Format = typeInfo[1]
				}
			}
		}

		params = append(params, param)
		return "{" + varName + "}"
	})

	return path, params
}

// Operations returns the operations defined on the path item, keyed by
// lowercase HTTP method name as serialized. Methods without an operation
// are absent from the result.
//
// See: https://spec.openapis.org/oas/v3.1.0#path-item-object
func (p *PathItem) Operations() map[string]*Operation {
	ops := make(map[string]*Operation)
	for method, op := range map[string]*Operation{
		"get":     p.Get,
		"put":     p.Put,
		"post":    p.Post,
		"delete":  p.Delete,
		"options": p.Options,
		"head":    p.Head,
		"patch":   p.Patch,
		"trace":   p.Trace,
	} {
		if op != nil {
			ops[method] = op
		}
	}
	return ops
}

// methodOrder fixes the finalization order of operations so schema name
// assignment does not depend on map iteration.
var methodOrder = []string{
	http.MethodGet,
	http.MethodPut,
	http.MethodPost,
	http.MethodDelete,
	http.MethodOptions,
	http.MethodHead,
	http.MethodPatch,
	http.MethodTrace,
}

// PathItemBuilder provides a fluent API for assembling a Path Item Object
// from operation builders. The builder itself is document-free; Item
// finalizes the collected operations against a document so that
// reflection-generated schemas register into that document's components:
//
//	path, params := openapi.ParsePathTemplate("/pets/{petId:uuid}")
//	doc.MergePath(path, openapi.NewPathItem().
//	    Parameters(params...).
//	    Get(openapi.NewOperation("getPet").Response(200, Pet{})).
//	    Item(doc))
//
// See: https://spec.openapis.org/oas/v3.1.0#path-item-object
type PathItemBuilder struct {
	summary     string
	description string
	ref         string
	servers     []Server
	parameters  []*Parameter
	operations  map[string]*OperationBuilder
}

// NewPathItem creates an empty path item builder.
//
// See: https://spec.openapis.org/oas/v3.1.0#path-item-object
func NewPathItem() *PathItemBuilder {
	return &PathItemBuilder{
		operations: make(map[string]*OperationBuilder),
	}
}

// Summary sets a brief summary applying to all operations under the path.
//
// See: https://spec.openapis.org/oas/v3.1.0#path-item-object (summary)
func (b *PathItemBuilder) Summary(s string) *PathItemBuilder {
	b.summary = s
	return b
}

// Description sets a detailed description applying to all operations under
// the path. Supports Markdown.
//
// See: https://spec.openapis.org/oas/v3.1.0#path-item-object (description)
func (b *PathItemBuilder) Description(d string) *PathItemBuilder {
	b.description = d
	return b
}

// Ref makes the path item a reference to a component path item. Pass the
// Ref field of the Reference minted by AddPathItem or AddWebhook:
//
//	ref := doc.AddWebhook("newPetAlert", alertItem)
//	doc.MergeWebhook("newPet", openapi.NewPathItem().Ref(ref.Ref).Item(doc))
//
// See: https://spec.openapis.org/oas/v3.1.0#path-item-object ($ref)
func (b *PathItemBuilder) Ref(ref string) *PathItemBuilder {
	b.ref = ref
	return b
}

// Parameters adds shared parameters, typically minted by ParsePathTemplate.
// At Item time they are merged into every operation; an operation parameter
// with the same name and location overrides the shared one.
//
// See: https://spec.openapis.org/oas/v3.1.0#parameter-object
func (b *PathItemBuilder) Parameters(params ...*Parameter) *PathItemBuilder {
	b.parameters = append(b.parameters, params...)
	return b
}

// Server adds a server override applying to all operations under the path.
//
// See: https://spec.openapis.org/oas/v3.1.0#path-item-object (servers)
func (b *PathItemBuilder) Server(server Server) *PathItemBuilder {
	b.servers = append(b.servers, server)
	return b
}

// Get attaches the operation builder to the GET method.
func (b *PathItemBuilder) Get(op *OperationBuilder) *PathItemBuilder {
	return b.Operation(http.MethodGet, op)
}

// Put attaches the operation builder to the PUT method.
func (b *PathItemBuilder) Put(op *OperationBuilder) *PathItemBuilder {
	return b.Operation(http.MethodPut, op)
}

// Post attaches the operation builder to the POST method.
func (b *PathItemBuilder) Post(op *OperationBuilder) *PathItemBuilder {
	return b.Operation(http.MethodPost, op)
}

// Delete attaches the operation builder to the DELETE method.
func (b *PathItemBuilder) Delete(op *OperationBuilder) *PathItemBuilder {
	return b.Operation(http.MethodDelete, op)
}

// Options attaches the operation builder to the OPTIONS method.
func (b *PathItemBuilder) Options(op *OperationBuilder) *PathItemBuilder {
	return b.Operation(http.MethodOptions, op)
}

// Head attaches the operation builder to the HEAD method.
func (b *PathItemBuilder) Head(op *OperationBuilder) *PathItemBuilder {
	return b.Operation(http.MethodHead, op)
}

// Patch attaches the operation builder to the PATCH method.
func (b *PathItemBuilder) Patch(op *OperationBuilder) *PathItemBuilder {
	return b.Operation(http.MethodPatch, op)
}

// Trace attaches the operation builder to the TRACE method.
func (b *PathItemBuilder) Trace(op *OperationBuilder) *PathItemBuilder {
	return b.Operation(http.MethodTrace, op)
}

// Operation attaches the operation builder to the given HTTP method. The
// method is matched case-insensitively against the standard verbs; an
// unknown method is silently ignored.
//
// See: https://spec.openapis.org/oas/v3.1.0#path-item-object
func (b *PathItemBuilder) Operation(method string, op *OperationBuilder) *PathItemBuilder {
	method = strings.ToUpper(method)
	for _, known := range methodOrder {
		if method == known {
			b.operations[method] = op
			break
		}
	}
	return b
}

// Item finalizes the builder into a Path Item Object. Every attached
// operation is built against doc: Go-typed request and response bodies go
// through doc's reflection generator, registering named struct types into
// the document's schema components. Operations finalize in a fixed method
// order so repeated builds assign identical schema names.
//
// See: https://spec.openapis.org/oas/v3.1.0#path-item-object
func (b *PathItemBuilder) Item(doc *Document) *PathItem {
	item := &PathItem{
		Ref:         b.ref,
		Summary:     b.summary,
		Description: b.description,
		Servers:     b.servers,
	}

	for _, method := range methodOrder {
		builder, ok := b.operations[method]
		if !ok || builder == nil {
			continue
		}
		assignOperation(item, method, builder.build(doc, b.parameters))
	}

	return item
}

// assignOperation assigns an operation to the correct HTTP method field
// on the path item.
func assignOperation(pathItem *PathItem, method string, op *Operation) {
	switch method {
	case http.MethodGet:
		pathItem.Get = op
	case http.MethodPost:
		pathItem.Post = op
	case http.MethodPut:
		pathItem.Put = op
	case http.MethodDelete:
		pathItem.Delete = op
	case http.MethodPatch:
		pathItem.Patch = op
	case http.MethodHead:
		pathItem.Head = op
	case http.MethodOptions:
		pathItem.Options = op
	case http.MethodTrace:
		pathItem.Trace = op
	}
}
