package openapi

import "strings"

// refPrefix starts every reference this engine mints or resolves.
const refPrefix = "#/components/"

// componentRef mints the canonical reference for a registered component.
//
// See: https://spec.openapis.org/oas/v3.1.0#reference-object
func componentRef(collection, name string) Reference {
	return Reference{Ref: refPrefix + collection + "/" + name}
}

// components returns the document's components object, creating it on the
// first registration so that untouched documents serialize without an
// empty "components" key.
func (d *Document) components() *Components {
	if d.Components == nil {
		d.Components = &Components{}
	}
	return d.Components
}

// Resolve looks up the component a reference string points to. It returns
// the stored fragment and true, or nil and false when the string does not
// start with "#/components/", does not split into exactly a collection and
// a name, names an unknown collection, or names an entry that was never
// registered. Lookups are case-sensitive and perform no unescaping; a name
// containing "/" can be stored but never resolved, so avoid "/" in names.
//
// Resolve never modifies the registry, so a failed lookup leaves no trace.
//
// See: https://spec.openapis.org/oas/v3.1.0#reference-object
func (d *Document) Resolve(ref string) (any, bool) {
	rest, ok := strings.CutPrefix(ref, refPrefix)
	if !ok {
		return nil, false
	}
	collection, name, ok := strings.Cut(rest, "/")
	if !ok || collection == "" || name == "" || strings.Contains(name, "/") {
		return nil, false
	}

	c := d.Components
	if c == nil {
		return nil, false
	}

	switch collection {
	case "schemas":
		if v, ok := c.Schemas[name]; ok {
			return v, true
		}
	case "responses":
		if v, ok := c.Responses[name]; ok {
			return v, true
		}
	case "parameters":
		if v, ok := c.Parameters[name]; ok {
			return v, true
		}
	case "examples":
		if v, ok := c.Examples[name]; ok {
			return v, true
		}
	case "requestBodies":
		if v, ok := c.RequestBodies[name]; ok {
			return v, true
		}
	case "headers":
		if v, ok := c.Headers[name]; ok {
			return v, true
		}
	case "securitySchemes":
		if v, ok := c.SecuritySchemes[name]; ok {
			return v, true
		}
	case "links":
		if v, ok := c.Links[name]; ok {
			return v, true
		}
	case "callbacks":
		if v, ok := c.Callbacks[name]; ok {
			return v, true
		}
	case "pathItems":
		if v, ok := c.PathItems[name]; ok {
			return v, true
		}
	case "webhooks":
		if v, ok := c.Webhooks[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// AddSchema registers a reusable schema and returns its reference.
// Registering under an existing name overwrites the previous fragment
// silently; rebuilding a document is idempotent by design.
//
// See: https://spec.openapis.org/oas/v3.1.0#components-object (schemas)
func (d *Document) AddSchema(name string, schema *Schema) Reference {
	c := d.components()
	if c.Schemas == nil {
		c.Schemas = make(map[string]*Schema)
	}
	c.Schemas[name] = schema
	return componentRef("schemas", name)
}

// AddSchemaWithDialect stamps the schema with the given dialect URI and
// registers the stamped copy. The original schema value is not modified.
// An empty dialect registers the schema without a $schema key, same as
// AddSchema.
//
// See: https://json-schema.org/draft/2020-12/json-schema-core#section-8.1.1
func (d *Document) AddSchemaWithDialect(name string, schema *Schema, dialect string) Reference {
	return d.AddSchema(name, StampSchema(schema, dialect))
}

// AddResponse registers a reusable response and returns its reference.
//
// See: https://spec.openapis.org/oas/v3.1.0#components-object (responses)
func (d *Document) AddResponse(name string, resp *Response) Reference {
	c := d.components()
	if c.Responses == nil {
		c.Responses = make(map[string]*Response)
	}
	c.Responses[name] = resp
	return componentRef("responses", name)
}

// AddParameter registers a reusable parameter and returns its reference.
//
// See: https://spec.openapis.org/oas/v3.1.0#components-object (parameters)
func (d *Document) AddParameter(name string, param *Parameter) Reference {
	c := d.components()
	if c.Parameters == nil {
		c.Parameters = make(map[string]*Parameter)
	}
	c.Parameters[name] = param
	return componentRef("parameters", name)
}

// AddExample registers a reusable example and returns its reference.
//
// See: https://spec.openapis.org/oas/v3.1.0#components-object (examples)
func (d *Document) AddExample(name string, ex *Example) Reference {
	c := d.components()
	if c.Examples == nil {
		c.Examples = make(map[string]*Example)
	}
	c.Examples[name] = ex
	return componentRef("examples", name)
}

// AddRequestBody registers a reusable request body and returns its reference.
//
// See: https://spec.openapis.org/oas/v3.1.0#components-object (requestBodies)
func (d *Document) AddRequestBody(name string, rb *RequestBody) Reference {
	c := d.components()
	if c.RequestBodies == nil {
		c.RequestBodies = make(map[string]*RequestBody)
	}
	c.RequestBodies[name] = rb
	return componentRef("requestBodies", name)
}

// AddHeader registers a reusable header and returns its reference.
//
// See: https://spec.openapis.org/oas/v3.1.0#components-object (headers)
func (d *Document) AddHeader(name string, h *Header) Reference {
	c := d.components()
	if c.Headers == nil {
		c.Headers = make(map[string]*Header)
	}
	c.Headers[name] = h
	return componentRef("headers", name)
}

// AddSecurityScheme registers a reusable security scheme and returns its
// reference. The scheme name is also the key used in SecurityRequirement
// values, so the name chosen here is what NewRequirement refers to.
//
// See: https://spec.openapis.org/oas/v3.1.0#security-scheme-object
func (d *Document) AddSecurityScheme(name string, scheme *SecurityScheme) Reference {
	c := d.components()
	if c.SecuritySchemes == nil {
		c.SecuritySchemes = make(map[string]*SecurityScheme)
	}
	c.SecuritySchemes[name] = scheme
	return componentRef("securitySchemes", name)
}

// AddLink registers a reusable link and returns its reference.
//
// See: https://spec.openapis.org/oas/v3.1.0#components-object (links)
func (d *Document) AddLink(name string, l *Link) Reference {
	c := d.components()
	if c.Links == nil {
		c.Links = make(map[string]*Link)
	}
	c.Links[name] = l
	return componentRef("links", name)
}

// AddCallback registers a reusable callback and returns its reference.
//
// See: https://spec.openapis.org/oas/v3.1.0#components-object (callbacks)
func (d *Document) AddCallback(name string, cb *Callback) Reference {
	c := d.components()
	if c.Callbacks == nil {
		c.Callbacks = make(map[string]*Callback)
	}
	c.Callbacks[name] = cb
	return componentRef("callbacks", name)
}

// AddPathItem registers a reusable path item and returns its reference.
// Reusable path items live in components; MergePath attaches items to
// concrete URL templates instead.
//
// See: https://spec.openapis.org/oas/v3.1.0#components-object (pathItems)
func (d *Document) AddPathItem(name string, item *PathItem) Reference {
	c := d.components()
	if c.PathItems == nil {
		c.PathItems = make(map[string]*PathItem)
	}
	c.PathItems[name] = item
	return componentRef("pathItems", name)
}

// AddWebhook registers a reusable webhook path item and returns its
// reference. Document-level webhooks are attached with MergeWebhook; this
// collection holds webhook fragments meant to be referenced.
//
// See: https://spec.openapis.org/oas/v3.1.0#components-object
func (d *Document) AddWebhook(name string, item *PathItem) Reference {
	c := d.components()
	if c.Webhooks == nil {
		c.Webhooks = make(map[string]*PathItem)
	}
	c.Webhooks[name] = item
	return componentRef("webhooks", name)
}

// AddAPIKeyAuth registers an apiKey security scheme. paramName is the name
// of the header, query parameter, or cookie carrying the key; in is one of
// "header", "query", or "cookie".
//
// See: https://spec.openapis.org/oas/v3.1.0#security-scheme-object
func (d *Document) AddAPIKeyAuth(name, paramName, in string) Reference {
	return d.AddSecurityScheme(name, &SecurityScheme{
		Type: "apiKey",
		Name: paramName,
		In:   in,
	})
}

// AddHTTPAuth registers an http security scheme with the given
// authorization scheme name from the IANA registry (e.g., "basic",
// "digest").
//
// See: https://spec.openapis.org/oas/v3.1.0#security-scheme-object
func (d *Document) AddHTTPAuth(name, scheme string) Reference {
	return d.AddSecurityScheme(name, &SecurityScheme{
		Type:   "http",
		Scheme: scheme,
	})
}

// AddBearerAuth registers an http bearer security scheme. bearerFormat is
// a hint such as "JWT" and may be empty.
//
// See: https://spec.openapis.org/oas/v3.1.0#security-scheme-object
func (d *Document) AddBearerAuth(name, bearerFormat string) Reference {
	return d.AddSecurityScheme(name, &SecurityScheme{
		Type:         "http",
		Scheme:       "bearer",
		BearerFormat: bearerFormat,
	})
}

// AddOAuth2Auth registers an oauth2 security scheme. flows must configure
// at least one of implicit, password, clientCredentials, or
// authorizationCode, each carrying the authorizationUrl/tokenUrl/scopes
// its flow type requires.
//
// See: https://spec.openapis.org/oas/v3.1.0#oauth-flows-object
func (d *Document) AddOAuth2Auth(name string, flows *OAuthFlows) Reference {
	return d.AddSecurityScheme(name, &SecurityScheme{
		Type:  "oauth2",
		Flows: flows,
	})
}

// AddOpenIDConnectAuth registers an openIdConnect security scheme with its
// discovery URL.
//
// See: https://spec.openapis.org/oas/v3.1.0#security-scheme-object
func (d *Document) AddOpenIDConnectAuth(name, url string) Reference {
	return d.AddSecurityScheme(name, &SecurityScheme{
		Type:             "openIdConnect",
		OpenIDConnectURL: url,
	})
}

// AddMutualTLSAuth registers a mutualTLS security scheme.
//
// See: https://spec.openapis.org/oas/v3.1.0#security-scheme-object
func (d *Document) AddMutualTLSAuth(name string) Reference {
	return d.AddSecurityScheme(name, &SecurityScheme{
		Type: "mutualTLS",
	})
}
