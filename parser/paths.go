package parser

import (
	"iter"
	"strings"

	"github.com/erraggy/oasfidelity/internal/httputil"
	"github.com/erraggy/oasfidelity/node"
	"github.com/erraggy/oasfidelity/value"
)

// Paths holds the relative paths to the individual endpoints.
// Keys starting with "x-" are extensions and are kept in Extra.
type Paths struct {
	Items map[string]*PathItem
	Extra *value.Map
}

func decodePaths(d *node.Decoder, v value.Value) (*Paths, error) {
	f, err := d.Object(v)
	if err != nil {
		return nil, err
	}
	p := &Paths{Items: decodePathItemKeys(f)}
	return finish(f, p, &p.Extra)
}

// decodePathItemKeys decodes every remaining key that is not an extension
// as a PathItem.
func decodePathItemKeys(f *node.Fields) map[string]*PathItem {
	var items map[string]*PathItem
	for _, key := range f.Rest() {
		if strings.HasPrefix(key, "x-") {
			continue
		}
		if items == nil {
			items = make(map[string]*PathItem)
		}
		items[key] = node.Required(f, key, decodePathItem)
	}
	return items
}

// EncodeNode implements node.Encoder.
func (p *Paths) EncodeNode() value.Value {
	o := node.NewObject()
	for k, item := range node.EncodeMap(p.Items, node.Encode[*PathItem]).All() {
		o.Set(k, item)
	}
	o.AddExtras(p.Extra)
	return o.Build()
}

// PathItem describes the operations available on a single path
type PathItem struct {
	Ref         *string
	Summary     *string
	Description *string
	Get         *Operation
	Put         *Operation
	Post        *Operation
	Delete      *Operation
	Options     *Operation
	Head        *Operation
	Patch       *Operation
	Trace       *Operation
	Servers     []*Server
	Parameters  []node.Slot[Parameter]
	Extra       *value.Map
}

func decodePathItem(d *node.Decoder, v value.Value) (*PathItem, error) {
	f, err := d.Object(v)
	if err != nil {
		return nil, err
	}
	p := &PathItem{
		Ref:         node.OptionalPtr(f, node.RefKey, node.DecodeString),
		Summary:     node.OptionalPtr(f, "summary", node.DecodeString),
		Description: node.OptionalPtr(f, "description", node.DecodeString),
	}
	for _, method := range httputil.Methods {
		*p.operation(method) = node.Optional(f, method, decodeOperation)
	}
	p.Servers = node.Optional(f, "servers", node.DecodeSlice(decodeServer))
	p.Parameters = node.Optional(f, "parameters", node.DecodeSlice(node.DecodeSlot(decodeParameter)))
	return finish(f, p, &p.Extra)
}

func (p *PathItem) operation(method string) **Operation {
	switch method {
	case httputil.MethodGet:
		return &p.Get
	case httputil.MethodPut:
		return &p.Put
	case httputil.MethodPost:
		return &p.Post
	case httputil.MethodDelete:
		return &p.Delete
	case httputil.MethodOptions:
		return &p.Options
	case httputil.MethodHead:
		return &p.Head
	case httputil.MethodPatch:
		return &p.Patch
	case httputil.MethodTrace:
		return &p.Trace
	}
	return nil
}

// Operations iterates over the operations defined on the path, keyed by
// lowercase HTTP method, in the order get, put, post, delete, options,
// head, patch, trace.
func (p *PathItem) Operations() iter.Seq2[string, *Operation] {
	return func(yield func(string, *Operation) bool) {
		for _, method := range httputil.Methods {
			op := *p.operation(method)
			if op == nil {
				continue
			}
			if !yield(method, op) {
				return
			}
		}
	}
}

// EncodeNode implements node.Encoder.
func (p *PathItem) EncodeNode() value.Value {
	o := node.NewObject()
	o.String(node.RefKey, p.Ref)
	o.String("summary", p.Summary)
	o.String("description", p.Description)
	for method, op := range p.Operations() {
		o.Set(method, op.EncodeNode())
	}
	setSlice(o, "servers", p.Servers)
	setSlice(o, "parameters", p.Parameters)
	o.AddExtras(p.Extra)
	return o.Build()
}

// Operation describes a single API operation on a path
type Operation struct {
	Tags         []string
	Summary      *string
	Description  *string
	ExternalDocs *ExternalDocs
	OperationID  *string
	Parameters   []node.Slot[Parameter]
	RequestBody  *node.Slot[RequestBody]
	Responses    *Responses
	Callbacks    map[string]node.Slot[Callback]
	Deprecated   *bool
	Security     []SecurityRequirement
	Servers      []*Server
	Extra        *value.Map
}

func decodeOperation(d *node.Decoder, v value.Value) (*Operation, error) {
	f, err := d.Object(v)
	if err != nil {
		return nil, err
	}
	op := &Operation{
		Tags:         node.Optional(f, "tags", node.DecodeStringSlice),
		Summary:      node.OptionalPtr(f, "summary", node.DecodeString),
		Description:  node.OptionalPtr(f, "description", node.DecodeString),
		ExternalDocs: node.Optional(f, "externalDocs", decodeExternalDocs),
		OperationID:  node.OptionalPtr(f, "operationId", node.DecodeString),
		Parameters:   node.Optional(f, "parameters", node.DecodeSlice(node.DecodeSlot(decodeParameter))),
		RequestBody:  node.OptionalPtr(f, "requestBody", node.DecodeSlot(decodeRequestBody)),
		Responses:    node.Required(f, "responses", decodeResponses),
		Callbacks:    node.Optional(f, "callbacks", node.DecodeMap(node.DecodeSlot(decodeCallback))),
		Deprecated:   node.OptionalPtr(f, "deprecated", node.DecodeBool),
		Security:     node.Optional(f, "security", node.DecodeSlice(decodeSecurityRequirement)),
		Servers:      node.Optional(f, "servers", node.DecodeSlice(decodeServer)),
	}
	return finish(f, op, &op.Extra)
}

// EncodeNode implements node.Encoder.
func (op *Operation) EncodeNode() value.Value {
	o := node.NewObject()
	o.Strings("tags", op.Tags)
	o.String("summary", op.Summary)
	o.String("description", op.Description)
	if op.ExternalDocs != nil {
		o.Set("externalDocs", op.ExternalDocs.EncodeNode())
	}
	o.String("operationId", op.OperationID)
	setSlice(o, "parameters", op.Parameters)
	if op.RequestBody != nil {
		o.Set("requestBody", op.RequestBody.EncodeNode())
	}
	if op.Responses != nil {
		o.Set("responses", op.Responses.EncodeNode())
	}
	setMap(o, "callbacks", op.Callbacks)
	o.Bool("deprecated", op.Deprecated)
	setSlice(o, "security", op.Security)
	setSlice(o, "servers", op.Servers)
	o.AddExtras(op.Extra)
	return o.Build()
}

// Responses maps HTTP status codes to expected responses.
// Keys that are neither "default" nor a status code (such as "200" or
// "4XX") are kept in Extra.
type Responses struct {
	Default *node.Slot[Response]
	Codes   map[string]node.Slot[Response]
	Extra   *value.Map
}

func decodeResponses(d *node.Decoder, v value.Value) (*Responses, error) {
	f, err := d.Object(v)
	if err != nil {
		return nil, err
	}
	r := &Responses{
		Default: node.OptionalPtr(f, "default", node.DecodeSlot(decodeResponse)),
	}
	for _, key := range f.Rest() {
		if !httputil.IsStatusCode(key) {
			continue
		}
		if r.Codes == nil {
			r.Codes = make(map[string]node.Slot[Response])
		}
		r.Codes[key] = node.Required(f, key, node.DecodeSlot(decodeResponse))
	}
	return finish(f, r, &r.Extra)
}

// EncodeNode implements node.Encoder.
func (r *Responses) EncodeNode() value.Value {
	o := node.NewObject()
	if r.Default != nil {
		o.Set("default", r.Default.EncodeNode())
	}
	for code, resp := range node.EncodeMap(r.Codes, node.Encode[node.Slot[Response]]).All() {
		o.Set(code, resp)
	}
	o.AddExtras(r.Extra)
	return o.Build()
}

// Response describes a single response from an API operation
type Response struct {
	Description string
	Headers     map[string]node.Slot[Header]
	Content     map[string]*MediaType
	Links       map[string]node.Slot[Link]
	Extra       *value.Map
}

func decodeResponse(d *node.Decoder, v value.Value) (*Response, error) {
	f, err := d.Object(v)
	if err != nil {
		return nil, err
	}
	r := &Response{
		Description: node.Required(f, "description", node.DecodeString),
		Headers:     node.Optional(f, "headers", node.DecodeMap(node.DecodeSlot(decodeHeader))),
		Content:     node.Optional(f, "content", node.DecodeMap(decodeMediaType)),
		Links:       node.Optional(f, "links", node.DecodeMap(node.DecodeSlot(decodeLink))),
	}
	return finish(f, r, &r.Extra)
}

// EncodeNode implements node.Encoder.
func (r *Response) EncodeNode() value.Value {
	o := node.NewObject()
	o.Set("description", value.String(r.Description))
	setMap(o, "headers", r.Headers)
	setMap(o, "content", r.Content)
	setMap(o, "links", r.Links)
	o.AddExtras(r.Extra)
	return o.Build()
}

// Callback maps runtime expressions to the path items they call back.
// Keys starting with "x-" are extensions and are kept in Extra.
type Callback struct {
	Expressions map[string]*PathItem
	Extra       *value.Map
}

func decodeCallback(d *node.Decoder, v value.Value) (*Callback, error) {
	f, err := d.Object(v)
	if err != nil {
		return nil, err
	}
	c := &Callback{Expressions: decodePathItemKeys(f)}
	return finish(f, c, &c.Extra)
}

// EncodeNode implements node.Encoder.
func (c *Callback) EncodeNode() value.Value {
	o := node.NewObject()
	for k, item := range node.EncodeMap(c.Expressions, node.Encode[*PathItem]).All() {
		o.Set(k, item)
	}
	o.AddExtras(c.Extra)
	return o.Build()
}

// Link represents a possible design-time link for a response.
// Server is decoded leniently: a server object that cannot be decoded is
// kept as written.
type Link struct {
	OperationRef *string
	OperationID  *string
	Parameters   map[string]value.Value
	RequestBody  value.Value
	Description  *string
	Server       *node.LenientNode[Server]
	Extra        *value.Map
}

func decodeLink(d *node.Decoder, v value.Value) (*Link, error) {
	f, err := d.Object(v)
	if err != nil {
		return nil, err
	}
	l := &Link{
		OperationRef: node.OptionalPtr(f, "operationRef", node.DecodeString),
		OperationID:  node.OptionalPtr(f, "operationId", node.DecodeString),
		Parameters:   node.Optional(f, "parameters", node.DecodeMap(node.DecodeAny)),
		RequestBody:  takeAny(f, "requestBody"),
		Description:  node.OptionalPtr(f, "description", node.DecodeString),
		Server:       node.OptionalPtr(f, "server", node.DecodeLenientNode(decodeServer)),
	}
	return finish(f, l, &l.Extra)
}

// EncodeNode implements node.Encoder.
func (l *Link) EncodeNode() value.Value {
	o := node.NewObject()
	o.String("operationRef", l.OperationRef)
	o.String("operationId", l.OperationID)
	if l.Parameters != nil {
		o.Set("parameters", node.EncodeMap(l.Parameters, value.Clone))
	}
	setAny(o, "requestBody", l.RequestBody)
	o.String("description", l.Description)
	if l.Server != nil {
		o.Set("server", l.Server.EncodeNode())
	}
	o.AddExtras(l.Extra)
	return o.Build()
}
