package parser

import (
	"github.com/erraggy/oasfidelity/node"
	"github.com/erraggy/oasfidelity/value"
)

// Document represents an OpenAPI 3.0 document.
// References:
// - OAS 3.0.3: https://spec.openapis.org/oas/v3.0.3.html
type Document struct {
	// OpenAPI is the specification version; kept raw when it is not a
	// semantic version.
	OpenAPI      node.Lenient[Version]
	Info         *Info
	Servers      []*Server
	Paths        *Paths
	Components   *Components
	Security     []SecurityRequirement
	Tags         []*Tag
	ExternalDocs *ExternalDocs
	// Extra holds every field not listed above, in source order
	Extra *value.Map
}

// DecodeDocument builds a Document from a decoded tree.
// Events for every value kept verbatim are sent to d's observer.
func DecodeDocument(d *node.Decoder, v value.Value) (*Document, error) {
	f, err := d.Object(v)
	if err != nil {
		return nil, err
	}
	doc := &Document{
		OpenAPI:      node.Required(f, "openapi", decodeVersion),
		Info:         node.Required(f, "info", decodeInfo),
		Servers:      node.Optional(f, "servers", node.DecodeSlice(decodeServer)),
		Paths:        node.Required(f, "paths", decodePaths),
		Components:   node.Optional(f, "components", decodeComponents),
		Security:     node.Optional(f, "security", node.DecodeSlice(decodeSecurityRequirement)),
		Tags:         node.Optional(f, "tags", node.DecodeSlice(decodeTag)),
		ExternalDocs: node.Optional(f, "externalDocs", decodeExternalDocs),
	}
	return finish(f, doc, &doc.Extra)
}

// EncodeNode implements node.Encoder.
func (doc *Document) EncodeNode() value.Value {
	o := node.NewObject()
	o.Set("openapi", doc.OpenAPI.EncodeNode())
	if doc.Info != nil {
		o.Set("info", doc.Info.EncodeNode())
	}
	setSlice(o, "servers", doc.Servers)
	if doc.Paths != nil {
		o.Set("paths", doc.Paths.EncodeNode())
	}
	if doc.Components != nil {
		o.Set("components", doc.Components.EncodeNode())
	}
	setSlice(o, "security", doc.Security)
	setSlice(o, "tags", doc.Tags)
	if doc.ExternalDocs != nil {
		o.Set("externalDocs", doc.ExternalDocs.EncodeNode())
	}
	o.AddExtras(doc.Extra)
	return o.Build()
}

// Components holds reusable objects for different aspects of the document
type Components struct {
	Schemas         map[string]node.Slot[Schema]
	Responses       map[string]node.Slot[Response]
	Parameters      map[string]node.Slot[Parameter]
	Examples        map[string]node.Slot[Example]
	RequestBodies   map[string]node.Slot[RequestBody]
	Headers         map[string]node.Slot[Header]
	SecuritySchemes map[string]node.Slot[SecurityScheme]
	Links           map[string]node.Slot[Link]
	Callbacks       map[string]node.Slot[Callback]
	Extra           *value.Map
}

func decodeComponents(d *node.Decoder, v value.Value) (*Components, error) {
	f, err := d.Object(v)
	if err != nil {
		return nil, err
	}
	c := &Components{
		Schemas:         node.Optional(f, "schemas", node.DecodeMap(node.DecodeSlot(decodeSchema))),
		Responses:       node.Optional(f, "responses", node.DecodeMap(node.DecodeSlot(decodeResponse))),
		Parameters:      node.Optional(f, "parameters", node.DecodeMap(node.DecodeSlot(decodeParameter))),
		Examples:        node.Optional(f, "examples", node.DecodeMap(node.DecodeSlot(decodeExample))),
		RequestBodies:   node.Optional(f, "requestBodies", node.DecodeMap(node.DecodeSlot(decodeRequestBody))),
		Headers:         node.Optional(f, "headers", node.DecodeMap(node.DecodeSlot(decodeHeader))),
		SecuritySchemes: node.Optional(f, "securitySchemes", node.DecodeMap(node.DecodeSlot(decodeSecurityScheme))),
		Links:           node.Optional(f, "links", node.DecodeMap(node.DecodeSlot(decodeLink))),
		Callbacks:       node.Optional(f, "callbacks", node.DecodeMap(node.DecodeSlot(decodeCallback))),
	}
	return finish(f, c, &c.Extra)
}

// EncodeNode implements node.Encoder.
func (c *Components) EncodeNode() value.Value {
	o := node.NewObject()
	setMap(o, "schemas", c.Schemas)
	setMap(o, "responses", c.Responses)
	setMap(o, "parameters", c.Parameters)
	setMap(o, "examples", c.Examples)
	setMap(o, "requestBodies", c.RequestBodies)
	setMap(o, "headers", c.Headers)
	setMap(o, "securitySchemes", c.SecuritySchemes)
	setMap(o, "links", c.Links)
	setMap(o, "callbacks", c.Callbacks)
	o.AddExtras(c.Extra)
	return o.Build()
}
