package parser

import (
	"github.com/erraggy/oasfidelity/node"
	"github.com/erraggy/oasfidelity/value"
)

// ParameterFields holds the fields shared by Parameter and Header.
type ParameterFields struct {
	Description     *string
	Required        *bool
	Deprecated      *bool
	AllowEmptyValue *bool
	Style           *node.Enum[Style]
	Explode         *bool
	AllowReserved   *bool
	Schema          *node.Slot[Schema]
	Example         value.Value
	Examples        map[string]node.Slot[Example]
	Content         map[string]*MediaType
}

func decodeParameterFields(f *node.Fields) ParameterFields {
	return ParameterFields{
		Description:     node.OptionalPtr(f, "description", node.DecodeString),
		Required:        node.OptionalPtr(f, "required", node.DecodeBool),
		Deprecated:      node.OptionalPtr(f, "deprecated", node.DecodeBool),
		AllowEmptyValue: node.OptionalPtr(f, "allowEmptyValue", node.DecodeBool),
		Style:           node.OptionalPtr(f, "style", node.DecodeEnum[Style]),
		Explode:         node.OptionalPtr(f, "explode", node.DecodeBool),
		AllowReserved:   node.OptionalPtr(f, "allowReserved", node.DecodeBool),
		Schema:          node.OptionalPtr(f, "schema", node.DecodeSlot(decodeSchema)),
		Example:         takeAny(f, "example"),
		Examples:        node.Optional(f, "examples", node.DecodeMap(node.DecodeSlot(decodeExample))),
		Content:         node.Optional(f, "content", node.DecodeMap(decodeMediaType)),
	}
}

func (p *ParameterFields) encode(o *node.Object) {
	o.String("description", p.Description)
	o.Bool("required", p.Required)
	o.Bool("deprecated", p.Deprecated)
	o.Bool("allowEmptyValue", p.AllowEmptyValue)
	if p.Style != nil {
		o.Set("style", p.Style.EncodeNode())
	}
	o.Bool("explode", p.Explode)
	o.Bool("allowReserved", p.AllowReserved)
	if p.Schema != nil {
		o.Set("schema", p.Schema.EncodeNode())
	}
	setAny(o, "example", p.Example)
	setMap(o, "examples", p.Examples)
	setMap(o, "content", p.Content)
}

// Parameter describes a single operation parameter
type Parameter struct {
	Name string
	In   node.Enum[ParameterLocation]
	ParameterFields
	Extra *value.Map
}

func decodeParameter(d *node.Decoder, v value.Value) (*Parameter, error) {
	f, err := d.Object(v)
	if err != nil {
		return nil, err
	}
	p := &Parameter{
		Name:            node.Required(f, "name", node.DecodeString),
		In:              node.Required(f, "in", node.DecodeEnum[ParameterLocation]),
		ParameterFields: decodeParameterFields(f),
	}
	return finish(f, p, &p.Extra)
}

// EncodeNode implements node.Encoder.
func (p *Parameter) EncodeNode() value.Value {
	o := node.NewObject()
	o.Set("name", value.String(p.Name))
	o.Set("in", p.In.EncodeNode())
	p.ParameterFields.encode(o)
	o.AddExtras(p.Extra)
	return o.Build()
}

// Header represents a header. It has every Parameter field except name
// and in, which come from the surrounding map key.
type Header struct {
	ParameterFields
	Extra *value.Map
}

func decodeHeader(d *node.Decoder, v value.Value) (*Header, error) {
	f, err := d.Object(v)
	if err != nil {
		return nil, err
	}
	h := &Header{ParameterFields: decodeParameterFields(f)}
	return finish(f, h, &h.Extra)
}

// EncodeNode implements node.Encoder.
func (h *Header) EncodeNode() value.Value {
	o := node.NewObject()
	h.ParameterFields.encode(o)
	o.AddExtras(h.Extra)
	return o.Build()
}

// RequestBody describes a single request body
type RequestBody struct {
	Description *string
	Content     map[string]*MediaType
	Required    *bool
	Extra       *value.Map
}

func decodeRequestBody(d *node.Decoder, v value.Value) (*RequestBody, error) {
	f, err := d.Object(v)
	if err != nil {
		return nil, err
	}
	rb := &RequestBody{
		Description: node.OptionalPtr(f, "description", node.DecodeString),
		Content:     node.Required(f, "content", node.DecodeMap(decodeMediaType)),
		Required:    node.OptionalPtr(f, "required", node.DecodeBool),
	}
	return finish(f, rb, &rb.Extra)
}

// EncodeNode implements node.Encoder.
func (rb *RequestBody) EncodeNode() value.Value {
	o := node.NewObject()
	o.String("description", rb.Description)
	o.Set("content", node.EncodeMap(rb.Content, node.Encode[*MediaType]))
	o.Bool("required", rb.Required)
	o.AddExtras(rb.Extra)
	return o.Build()
}

// MediaType provides schema and examples for the media type identified by its key
type MediaType struct {
	Schema   *node.Slot[Schema]
	Example  value.Value
	Examples map[string]node.Slot[Example]
	Encoding map[string]*Encoding
	Extra    *value.Map
}

func decodeMediaType(d *node.Decoder, v value.Value) (*MediaType, error) {
	f, err := d.Object(v)
	if err != nil {
		return nil, err
	}
	mt := &MediaType{
		Schema:   node.OptionalPtr(f, "schema", node.DecodeSlot(decodeSchema)),
		Example:  takeAny(f, "example"),
		Examples: node.Optional(f, "examples", node.DecodeMap(node.DecodeSlot(decodeExample))),
		Encoding: node.Optional(f, "encoding", node.DecodeMap(decodeEncoding)),
	}
	return finish(f, mt, &mt.Extra)
}

// EncodeNode implements node.Encoder.
func (mt *MediaType) EncodeNode() value.Value {
	o := node.NewObject()
	if mt.Schema != nil {
		o.Set("schema", mt.Schema.EncodeNode())
	}
	setAny(o, "example", mt.Example)
	setMap(o, "examples", mt.Examples)
	setMap(o, "encoding", mt.Encoding)
	o.AddExtras(mt.Extra)
	return o.Build()
}

// Encoding describes how a single property of a request body is serialized
type Encoding struct {
	ContentType   *node.Lenient[MediaRange]
	Headers       map[string]node.Slot[Header]
	Style         *node.Enum[Style]
	Explode       *bool
	AllowReserved *bool
	Extra         *value.Map
}

func decodeEncoding(d *node.Decoder, v value.Value) (*Encoding, error) {
	f, err := d.Object(v)
	if err != nil {
		return nil, err
	}
	e := &Encoding{
		ContentType:   node.OptionalPtr(f, "contentType", decodeMediaRange),
		Headers:       node.Optional(f, "headers", node.DecodeMap(node.DecodeSlot(decodeHeader))),
		Style:         node.OptionalPtr(f, "style", node.DecodeEnum[Style]),
		Explode:       node.OptionalPtr(f, "explode", node.DecodeBool),
		AllowReserved: node.OptionalPtr(f, "allowReserved", node.DecodeBool),
	}
	return finish(f, e, &e.Extra)
}

// EncodeNode implements node.Encoder.
func (e *Encoding) EncodeNode() value.Value {
	o := node.NewObject()
	if e.ContentType != nil {
		o.Set("contentType", e.ContentType.EncodeNode())
	}
	setMap(o, "headers", e.Headers)
	if e.Style != nil {
		o.Set("style", e.Style.EncodeNode())
	}
	o.Bool("explode", e.Explode)
	o.Bool("allowReserved", e.AllowReserved)
	o.AddExtras(e.Extra)
	return o.Build()
}
