// Package openapi assembles OpenAPI v3.1.0 documents programmatically:
// a mutable document tree, a component registry with "#/components/..."
// references, security requirement composition, JSON Schema dialect
// stamping, and deterministic JSON and YAML serialization.
//
// The package targets the OpenAPI Specification v3.1.0 and JSON Schema
// Draft 2020-12. It builds complete documents in memory with zero external
// schema files and never validates or dereferences what it stores: fragments
// are opaque values, references are opaque strings until resolved.
//
// See: https://spec.openapis.org/oas/v3.1.0
// See: https://json-schema.org/draft/2020-12/json-schema-core
// See: https://json-schema.org/draft/2020-12/json-schema-validation
//
// # Document Assembly
//
// Create a document and chain assembler calls; every mutator returns the
// document:
//
//	doc := openapi.NewDocument("Pet Store", "1.0.0").
//	    SetDescription("A sample pet store API").
//	    SetContact("API Team", "https://example.com", "api@example.com").
//	    SetLicense("Apache 2.0", "Apache-2.0", "").
//	    AddServer(openapi.Server{URL: "https://api.example.com/v1"})
//
// The document is a plain mutable tree owned by the caller: there is no
// global registry, no singleton, and no concurrency control. Two documents
// never share state.
//
// # Paths and Webhooks
//
// MergePath and MergeWebhook store path items wholesale. Re-merging a key
// replaces the previous item entirely and logs a warning naming the
// operations that vanished:
//
//	doc.MergePath("/pets", petsItem)
//	doc.MergePath("/pets", otherItem) // replaces, warns about lost operations
//
// Warnings go through the document's slog logger; inject one with SetLogger.
//
// # Tags
//
// AddTag keeps the first registration of a name and silently ignores
// duplicates, the opposite of the merge policy for paths. Use UpdateTag to
// modify an existing tag, RemoveTag to delete, TagByName to look up:
//
//	doc.AddTag(openapi.Tag{Name: "pets", Description: "Pet operations"})
//	doc.AddTag(openapi.Tag{Name: "pets", Description: "ignored"}) // no-op
//	doc.UpdateTag(openapi.Tag{Name: "pets", Description: "replaced"})
//
// # Components and References
//
// Registration methods store a fragment in the appropriate components
// collection and return a Reference whose Ref field is the canonical
// "#/components/<collection>/<name>" string:
//
//	ref := doc.AddSchema("Pet", petSchema)
//	// ref.Ref == "#/components/schemas/Pet"
//
//	doc.AddResponse("NotFound", &openapi.Response{Description: "Not found"})
//	doc.AddParameter("pageParam", &openapi.Parameter{Name: "page", In: "query"})
//	doc.AddExample("sample", &openapi.Example{Summary: "A sample", Value: "test"})
//	doc.AddRequestBody("CreatePet", &openapi.RequestBody{Description: "Pet to create"})
//	doc.AddHeader("X-Rate-Limit", &openapi.Header{Schema: &openapi.Schema{Type: openapi.TypeString("integer")}})
//	doc.AddLink("GetPet", &openapi.Link{OperationID: "getPet"})
//
// Registering a name twice overwrites silently, so rebuilding a document is
// idempotent. Resolve looks a reference string back up without ever failing
// hard:
//
//	if v, ok := doc.Resolve("#/components/schemas/Pet"); ok {
//	    schema := v.(*openapi.Schema)
//	    _ = schema
//	}
//
// Malformed strings, unknown collections, and missing names all return
// (nil, false). References are never chased into the stored fragments and
// nothing checks that a minted reference still resolves after manual edits.
//
// # Security
//
// A SecurityRequirement maps scheme names to scope lists. Within one
// requirement every scheme must be satisfied (AND); across a requirement
// list any single entry suffices (OR):
//
//	doc.AddAPIKeyAuth("apiKey", "X-API-Key", "header")
//	doc.AddBearerAuth("bearerAuth", "JWT")
//
//	// apiKey OR bearer
//	doc.SetGlobalSecurity(
//	    openapi.NewRequirement("apiKey"),
//	    openapi.NewRequirement("bearerAuth"),
//	)
//
// Present-but-empty differs from absent: SetGlobalSecurity() with no
// arguments stores the explicit empty list ("security": [], no
// authentication required), while a document that never touches security
// omits the field so consumers inherit their own defaults. Both states
// survive JSON and YAML round trips. The same distinction exists per
// operation via OperationBuilder.Security.
//
// Security scheme constructors cover the five scheme types:
//
//	doc.AddAPIKeyAuth("apiKey", "X-API-Key", "header")
//	doc.AddHTTPAuth("basicAuth", "basic")
//	doc.AddBearerAuth("bearerAuth", "JWT")
//	doc.AddOAuth2Auth("oauth", &openapi.OAuthFlows{...})
//	doc.AddOpenIDConnectAuth("oidc", "https://example.com/.well-known/openid-configuration")
//	doc.AddMutualTLSAuth("mtls")
//
// # Schema Dialects and Vocabularies
//
// New documents declare JSON Schema Draft 2020-12 as the default dialect
// via the jsonSchemaDialect field. Change it with SetDefaultDialect, or
// stamp individual schemas:
//
//	legacy := openapi.StampSchema(schema, openapi.DialectDraft07)
//	// legacy.SchemaURI == "http://json-schema.org/draft-07/schema#"
//	// schema is untouched; legacy shares everything else
//
//	doc.AddSchemaWithDialect("LegacyPet", schema, openapi.DialectDraft07)
//
// Stamping copies shallowly and never cascades into subschemas. Schemas are
// never stamped implicitly: an unstamped schema stays dialect-free and is
// governed by the document default. StampVocabularies sets $vocabulary the
// same way; RegisterVocabulary maintains a documentation-only side table
// that serialization never consults.
//
// # Vendor Extensions
//
// Documents, operations, and schemas carry "x-" extension keys in a side
// map that is merged into the serialized object at render time:
//
//	doc.SetExtension("x-api-id", "pets-v1")
//	schema.SetExtension("x-internal", true)
//
// Extension names must begin with "x-"; any other name panics, because the
// fluent signatures leave no room for an error return and a bad name is a
// caller bug, not runtime input. Unmarshaling recovers "x-" keys back into
// the side map, so round trips keep extensions.
//
// # Serialization
//
// JSON returns the indented JSON encoding, YAML the YAML encoding of the
// same structural value:
//
//	data, err := doc.JSON()
//	yml, err := doc.YAML()
//
// Both are deterministic: structs serialize in declaration order, maps in
// sorted key order, so two calls on the same state produce identical bytes.
// The document also works directly with json.Marshal and json.Unmarshal.
// Serialization preserves empty-but-present collections ({} and []) and
// never invents or drops fields.
//
// # Operation Builders
//
// NewOperation starts a fluent builder for a single operation:
//
//	op := openapi.NewOperation("createPet").
//	    Summary("Create a pet").
//	    Tags("pets").
//	    Request(CreatePetInput{}).
//	    Response(http.StatusCreated, Pet{}).
//	    Response(http.StatusNoContent, nil).
//	    DefaultResponse(ErrorResponse{})
//
// Request and Response are application/json shortcuts; RequestContent and
// ResponseContent take any content type. Bodies are either a *Schema (used
// as-is) or any other Go value (schema generated via reflection). Response
// descriptions default to http.StatusText and can be overridden per status
// code with ResponseDescription.
//
// # Path Items and Path Templates
//
// PathItemBuilder collects operation builders per HTTP method and finalizes
// them against a document. ParsePathTemplate converts {name:macro} templates
// into an OpenAPI path plus typed parameters:
//
//	path, params := openapi.ParsePathTemplate("/pets/{petId:uuid}")
//	doc.MergePath(path, openapi.NewPathItem().
//	    Parameters(params...).
//	    Get(openapi.NewOperation("getPet").Response(http.StatusOK, Pet{})).
//	    Delete(openapi.NewOperation("deletePet").Response(http.StatusNoContent, nil)).
//	    Item(doc))
//
// Supported macros: uuid, int, float, slug, alpha, alphanum, date, hex,
// domain. Shared parameters merge into every operation; an operation
// parameter with the same name and location wins.
//
// Webhooks use the same builder, keyed by event name:
//
//	doc.MergeWebhook("newPet", openapi.NewPathItem().
//	    Post(openapi.NewOperation("newPetAlert").Request(Pet{}).Response(http.StatusOK, nil)).
//	    Item(doc))
//
// # Operation Groups
//
// Groups carry shared defaults for a family of operations. Builders created
// through a group inherit its tags, security, servers, parameters, shared
// responses, and external docs:
//
//	admin := openapi.NewGroup().
//	    Tags("admin").
//	    Security(openapi.NewRequirement("adminKey")).
//	    Response(http.StatusForbidden, ErrorResponse{})
//
//	doc.MergePath("/admin/stats", openapi.NewPathItem().
//	    Get(admin.Operation("getStats").Response(http.StatusOK, Stats{})).
//	    Item(doc))
//
// Override/merge semantics per field:
//
//   - Tags: append (group tags + operation tags combined)
//   - Security: replace (operation-level Security call overrides group value)
//   - Deprecated: one-way latch (group deprecation cannot be undone per-operation)
//   - Servers: append (group servers + operation servers combined)
//   - Parameters: append (group parameters + operation parameters combined)
//   - Responses: merge (group responses + operation responses; operation overrides per status code)
//   - ExternalDocs: replace (operation-level ExternalDocs call overrides group value)
//
// # JSON Schema Generation
//
// SchemaOf converts Go types to JSON Schema via reflection:
//
//   - bool -> {type: "boolean"}
//   - int/uint variants -> {type: "integer"}
//   - float32/float64 -> {type: "number"}
//   - string -> {type: "string"}
//   - []byte -> {type: "string", format: "byte"}
//   - time.Time -> {type: "string", format: "date-time"}
//   - uuid.UUID -> {type: "string", format: "uuid"}
//   - *T -> nullable type using type arrays (e.g., ["string", "null"])
//   - []T -> {type: "array", items: schema(T)}
//   - map[string]V -> {type: "object", additionalProperties: schema(V)}
//   - struct -> {type: "object", properties: {...}, required: [...]}
//
// Named struct types register into #/components/schemas/{TypeName} and are
// referenced via $ref. Simple-name collisions across packages get a package
// prefix, generic instantiations get sanitized names (ResponseData[User]
// becomes ResponseDataUser).
//
// Use the "openapi" struct tag to enrich the generated schema:
//
//	type CreatePetInput struct {
//	    Name string `json:"name" openapi:"description=Pet name,minLength=1,maxLength=100"`
//	    Tag  string `json:"tag,omitempty" openapi:"enum=dog|cat|bird"`
//	    Age  int    `json:"age,omitempty" openapi:"minimum=0"`
//	}
//
// Supported tag keys: description, example, format, title, minimum, maximum,
// exclusiveMinimum, exclusiveMaximum, minLength, maxLength, pattern,
// multipleOf, minItems, maxItems, uniqueItems, minProperties, maxProperties,
// const, enum (pipe-separated), deprecated, readOnly, writeOnly.
//
// Implement the Exampler interface to provide a complete example value for
// a type's component schema:
//
//	func (Pet) OpenAPIExample() any {
//	    return Pet{Name: "Rex", Tag: "dog"}
//	}
//
// # Serving the Document
//
// Handle registers GET endpoints on a standard *http.ServeMux. The config
// parameter is optional; pass nil for defaults:
//
//	mux := http.NewServeMux()
//	doc.Handle(mux, "/swagger", nil)
//
// This registers three routes:
//
//	/swagger/            - interactive HTML docs
//	/swagger/schema.json - document as JSON
//	/swagger/schema.yaml - document as YAML
//
// Both /swagger and /swagger/ serve the docs UI. All handlers render the
// document once on first request using sync.Once. Choose the docs UI via
// HandleConfig:
//
//	openapi.DocsSwaggerUI (default)
//	openapi.DocsRapiDoc
//	openapi.DocsRedoc
package openapi
