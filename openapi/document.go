package openapi

import (
	"log/slog"
	"sort"
)

// Version is the OpenAPI specification version written to every document.
//
// See: https://spec.openapis.org/oas/v3.1.0#versions
const Version = "3.1.0"

// NewDocument creates a document with the required info fields and the
// JSON Schema dialect set to Draft 2020-12. Every assembler method mutates
// the document in place and returns it, so calls chain:
//
//	doc := openapi.NewDocument("Files API", "1.2.0").
//	    SetDescription("Internal file storage API").
//	    AddServer(openapi.Server{URL: "https://api.example.com"})
//
// The document is a plain mutable tree owned by the caller. It is not safe
// for concurrent mutation; build it from a single goroutine.
//
// See: https://spec.openapis.org/oas/v3.1.0#openapi-object
func NewDocument(title, version string) *Document {
	return &Document{
		OpenAPI:           Version,
		Info:              Info{Title: title, Version: version},
		JSONSchemaDialect: DialectDraft202012,
		log:               slog.Default(),
	}
}

// SetTitle overwrites the API title.
//
// See: https://spec.openapis.org/oas/v3.1.0#info-object
func (d *Document) SetTitle(title string) *Document {
	d.Info.Title = title
	return d
}

// SetVersion overwrites the API version (the version of the described API,
// not the OpenAPI specification version).
//
// See: https://spec.openapis.org/oas/v3.1.0#info-object
func (d *Document) SetVersion(version string) *Document {
	d.Info.Version = version
	return d
}

// SetSummary overwrites the short summary of the API.
//
// See: https://spec.openapis.org/oas/v3.1.0#info-object
func (d *Document) SetSummary(summary string) *Document {
	d.Info.Summary = summary
	return d
}

// SetDescription overwrites the API description. Supports Markdown.
//
// See: https://spec.openapis.org/oas/v3.1.0#info-object
func (d *Document) SetDescription(description string) *Document {
	d.Info.Description = description
	return d
}

// SetTermsOfService overwrites the terms-of-service URL.
//
// See: https://spec.openapis.org/oas/v3.1.0#info-object
func (d *Document) SetTermsOfService(url string) *Document {
	d.Info.TermsOfService = url
	return d
}

// SetContact overwrites the API contact information.
//
// See: https://spec.openapis.org/oas/v3.1.0#contact-object
func (d *Document) SetContact(name, url, email string) *Document {
	d.Info.Contact = &Contact{Name: name, URL: url, Email: email}
	return d
}

// SetLicense overwrites the API license. Identifier (an SPDX expression)
// and url are mutually exclusive per the specification; this is not
// enforced here.
//
// See: https://spec.openapis.org/oas/v3.1.0#license-object
func (d *Document) SetLicense(name, identifier, url string) *Document {
	d.Info.License = &License{Name: name, Identifier: identifier, URL: url}
	return d
}

// SetExternalDocs overwrites the document-level external documentation link.
//
// See: https://spec.openapis.org/oas/v3.1.0#external-documentation-object
func (d *Document) SetExternalDocs(url, description string) *Document {
	d.ExternalDocs = &ExternalDocs{URL: url, Description: description}
	return d
}

// AddServer appends a server to the document's server list.
//
// See: https://spec.openapis.org/oas/v3.1.0#server-object
func (d *Document) AddServer(server Server) *Document {
	d.Servers = append(d.Servers, server)
	return d
}

// MergePath stores a path item under the given URL template. An existing
// entry is replaced wholesale, not deep-merged: every operation of the
// previous item that the new item does not redefine is discarded, and a
// warning naming the path and the lost operation keys is logged. Callers
// who want additive behavior must combine the fragments before merging.
//
// See: https://spec.openapis.org/oas/v3.1.0#paths-object
func (d *Document) MergePath(path string, item *PathItem) *Document {
	if d.Paths == nil {
		d.Paths = make(map[string]*PathItem)
	}
	if prev, ok := d.Paths[path]; ok {
		d.logger().Warn("openapi: replacing existing path item",
			"path", path,
			"lostOperations", lostOperations(prev, item))
	}
	d.Paths[path] = item
	return d
}

// MergeWebhook stores a path item under the given webhook name. The
// replacement policy is identical to MergePath: wholesale replace with a
// logged warning on collision.
//
// See: https://spec.openapis.org/oas/v3.1.0#oasWebhooks
func (d *Document) MergeWebhook(name string, item *PathItem) *Document {
	if d.Webhooks == nil {
		d.Webhooks = make(map[string]*PathItem)
	}
	if prev, ok := d.Webhooks[name]; ok {
		d.logger().Warn("openapi: replacing existing webhook",
			"webhook", name,
			"lostOperations", lostOperations(prev, item))
	}
	d.Webhooks[name] = item
	return d
}

// lostOperations returns the sorted method keys defined on prev that next
// does not carry. Those operations vanish from the document on merge.
func lostOperations(prev, next *PathItem) []string {
	kept := next.Operations()
	lost := make([]string, 0, len(prev.Operations()))
	for method := range prev.Operations() {
		if _, ok := kept[method]; !ok {
			lost = append(lost, method)
		}
	}
	sort.Strings(lost)
	return lost
}

// AddTag registers a tag. The first registration of a name wins: adding a
// tag whose name already exists is a silent no-op, unlike the
// replace-with-warning policy of MergePath. Use UpdateTag to modify an
// existing tag.
//
// See: https://spec.openapis.org/oas/v3.1.0#tag-object
func (d *Document) AddTag(tag Tag) *Document {
	for _, existing := range d.Tags {
		if existing.Name == tag.Name {
			return d
		}
	}
	d.Tags = append(d.Tags, tag)
	return d
}

// UpdateTag replaces the stored tag with the same name and reports whether
// a tag with that name existed.
//
// See: https://spec.openapis.org/oas/v3.1.0#tag-object
func (d *Document) UpdateTag(tag Tag) bool {
	for i, existing := range d.Tags {
		if existing.Name == tag.Name {
			d.Tags[i] = tag
			return true
		}
	}
	return false
}

// RemoveTag deletes the tag with the given name and reports whether it
// existed.
//
// See: https://spec.openapis.org/oas/v3.1.0#tag-object
func (d *Document) RemoveTag(name string) bool {
	for i, existing := range d.Tags {
		if existing.Name == name {
			d.Tags = append(d.Tags[:i], d.Tags[i+1:]...)
			return true
		}
	}
	return false
}

// TagByName returns the tag with the given name.
//
// See: https://spec.openapis.org/oas/v3.1.0#tag-object
func (d *Document) TagByName(name string) (Tag, bool) {
	for _, tag := range d.Tags {
		if tag.Name == name {
			return tag, true
		}
	}
	return Tag{}, false
}

// SetLogger replaces the logger used for merge-collision warnings.
// Passing nil restores slog.Default. To silence warnings entirely, pass
// slog.New(slog.DiscardHandler).
func (d *Document) SetLogger(l *slog.Logger) *Document {
	if l == nil {
		l = slog.Default()
	}
	d.log = l
	return d
}

// logger tolerates zero-value documents built without NewDocument.
func (d *Document) logger() *slog.Logger {
	if d.log == nil {
		return slog.Default()
	}
	return d.log
}
