package openapi

// JSON Schema dialect URIs. Draft 2020-12 is the dialect OpenAPI 3.1.0 is
// defined against and the default dialect of every new document. Drafts
// before 2019-09 use the historical "http" scheme with a trailing "#".
//
// See: https://json-schema.org/draft/2020-12/json-schema-core#section-8.1.1
// See: https://spec.openapis.org/oas/v3.1.0#schema-object
const (
	DialectDraft202012 = "https://json-schema.org/draft/2020-12/schema"
	DialectDraft201909 = "https://json-schema.org/draft/2019-09/schema"
	DialectDraft07     = "http://json-schema.org/draft-07/schema#"
	DialectDraft06     = "http://json-schema.org/draft-06/schema#"
	DialectDraft04     = "http://json-schema.org/draft-04/schema#"
)

// SetDefaultDialect overwrites the document-wide jsonSchemaDialect URI.
// The URI is stored as given; nothing checks that it is reachable or names
// a real dialect. Setting it to "" removes the key from serialized output.
//
// The default dialect is metadata about the document's schemas; it is
// never written into individual schema fragments. Stamp fragments
// explicitly with StampSchema or AddSchemaWithDialect when a $schema key
// is wanted.
//
// See: https://spec.openapis.org/oas/v3.1.0#openapi-object (jsonSchemaDialect)
func (d *Document) SetDefaultDialect(uri string) *Document {
	d.JSONSchemaDialect = uri
	return d
}

// DefaultDialect returns the document-wide jsonSchemaDialect URI.
//
// See: https://spec.openapis.org/oas/v3.1.0#openapi-object (jsonSchemaDialect)
func (d *Document) DefaultDialect() string {
	return d.JSONSchemaDialect
}

// StampSchema returns a shallow copy of the schema with $schema set to the
// given dialect URI. An empty dialect leaves the copy's $schema untouched.
// The input schema is never modified; nested schemas are shared between
// input and copy.
//
// See: https://json-schema.org/draft/2020-12/json-schema-core#section-8.1.1
func StampSchema(s *Schema, dialect string) *Schema {
	if s == nil {
		return nil
	}
	stamped := *s
	if dialect != "" {
		stamped.SchemaURI = dialect
	}
	return &stamped
}

// StampVocabularies returns a shallow copy of the schema with $vocabulary
// set to the given mapping from vocabulary URI to required flag. The URIs
// are not checked against registered vocabularies; RegisterVocabulary
// maintains documentation only.
//
// See: https://json-schema.org/draft/2020-12/json-schema-core#section-8.1.2
func StampVocabularies(s *Schema, vocab map[string]bool) *Schema {
	if s == nil {
		return nil
	}
	stamped := *s
	stamped.Vocabulary = vocab
	return &stamped
}

// RegisterVocabulary records a vocabulary URI with a human-readable
// description. The table is documentation for consumers of the build
// session; neither stamping nor serialization consults it.
//
// See: https://json-schema.org/draft/2020-12/json-schema-core#section-8.1.2
func (d *Document) RegisterVocabulary(uri, description string) *Document {
	if d.vocabularies == nil {
		d.vocabularies = make(map[string]string)
	}
	d.vocabularies[uri] = description
	return d
}

// Vocabularies returns the registered vocabulary descriptions by URI.
//
// See: https://json-schema.org/draft/2020-12/json-schema-core#section-8.1.2
func (d *Document) Vocabularies() map[string]string {
	return d.vocabularies
}
