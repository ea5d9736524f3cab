package openapi

// NewRequirement builds a single-scheme security requirement. The scheme
// name must match a key registered via AddSecurityScheme (or one of the
// auth constructors). The stored scope list is never nil, so a requirement
// without scopes serializes as an empty array:
//
//	openapi.NewRequirement("bearerAuth")            // {"bearerAuth": []}
//	openapi.NewRequirement("oauth", "read", "write") // {"oauth": ["read", "write"]}
//
// Schemes that must be satisfied together (AND) are combined by the caller
// into one requirement with multiple keys:
//
//	req := openapi.NewRequirement("apiKey")
//	req["signature"] = []string{}
//
// Alternatives (OR) are separate requirements passed together to
// SetGlobalSecurity, AddGlobalSecurity, or an operation's Security call.
//
// See: https://spec.openapis.org/oas/v3.1.0#security-requirement-object
func NewRequirement(scheme string, scopes ...string) SecurityRequirement {
	if scopes == nil {
		scopes = []string{}
	}
	return SecurityRequirement{scheme: scopes}
}

// SetGlobalSecurity replaces the document-level security requirements.
// Calling with no arguments stores an explicit empty list, which means
// "no authentication" and is serialized as "security": []. That is
// different from never calling SetGlobalSecurity, which leaves the
// security key out entirely.
//
// See: https://spec.openapis.org/oas/v3.1.0#security-requirement-object
func (d *Document) SetGlobalSecurity(reqs ...SecurityRequirement) *Document {
	if reqs == nil {
		reqs = []SecurityRequirement{}
	}
	d.Security = reqs
	return d
}

// AddGlobalSecurity appends one more alternative (OR branch) to the
// document-level security requirements, creating the list when absent.
//
// See: https://spec.openapis.org/oas/v3.1.0#security-requirement-object
func (d *Document) AddGlobalSecurity(req SecurityRequirement) *Document {
	d.Security = append(d.Security, req)
	return d
}
