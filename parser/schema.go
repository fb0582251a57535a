package parser

import (
	"slices"

	"github.com/erraggy/oasfidelity/node"
	"github.com/erraggy/oasfidelity/value"
)

// Schema represents a Schema Object. Keywords without a field here are
// kept in Extra, and so is any listed keyword whose value does not have
// the expected shape: a schema never fails to decode once it is a mapping.
type Schema struct {
	Title                *string
	Description          *string
	Type                 *SchemaTypes
	Format               *node.Enum[SchemaFormat]
	Nullable             *bool
	Properties           map[string]node.Slot[Schema]
	Items                *node.Slot[Schema]
	Required             []string
	Enum                 []value.Value
	Default              value.Value
	Example              value.Value
	AllOf                []node.Slot[Schema]
	OneOf                []node.Slot[Schema]
	AnyOf                []node.Slot[Schema]
	Not                  *node.Slot[Schema]
	AdditionalProperties *AdditionalProperties
	Discriminator        *Discriminator
	ReadOnly             *bool
	WriteOnly            *bool
	Deprecated           *bool
	ExternalDocs         *ExternalDocs
	Extra                *value.Map
}

func decodeSchema(d *node.Decoder, v value.Value) (*Schema, error) {
	f, err := d.Object(v)
	if err != nil {
		return nil, err
	}
	slot := node.DecodeSlot(decodeSchema)
	s := &Schema{
		Title:                node.LoosePtr(f, "title", node.DecodeString),
		Description:          node.LoosePtr(f, "description", node.DecodeString),
		Type:                 node.Loose(f, "type", decodeSchemaTypes),
		Format:               node.LoosePtr(f, "format", node.DecodeEnum[SchemaFormat]),
		Nullable:             node.LoosePtr(f, "nullable", node.DecodeBool),
		Properties:           node.Loose(f, "properties", node.DecodeMap(slot)),
		Items:                node.LoosePtr(f, "items", slot),
		Required:             node.Loose(f, "required", node.DecodeStringSlice),
		Enum:                 node.Loose(f, "enum", node.DecodeSlice(node.DecodeAny)),
		Default:              takeAny(f, "default"),
		Example:              takeAny(f, "example"),
		AllOf:                node.Loose(f, "allOf", node.DecodeSlice(slot)),
		OneOf:                node.Loose(f, "oneOf", node.DecodeSlice(slot)),
		AnyOf:                node.Loose(f, "anyOf", node.DecodeSlice(slot)),
		Not:                  node.LoosePtr(f, "not", slot),
		AdditionalProperties: node.Loose(f, "additionalProperties", decodeAdditionalProperties),
		Discriminator:        node.Loose(f, "discriminator", decodeDiscriminator),
		ReadOnly:             node.LoosePtr(f, "readOnly", node.DecodeBool),
		WriteOnly:            node.LoosePtr(f, "writeOnly", node.DecodeBool),
		Deprecated:           node.LoosePtr(f, "deprecated", node.DecodeBool),
		ExternalDocs:         node.Loose(f, "externalDocs", decodeExternalDocs),
	}
	return finish(f, s, &s.Extra)
}

// EncodeNode implements node.Encoder.
func (s *Schema) EncodeNode() value.Value {
	o := node.NewObject()
	o.String("title", s.Title)
	o.String("description", s.Description)
	if s.Type != nil {
		o.Set("type", s.Type.EncodeNode())
	}
	if s.Format != nil {
		o.Set("format", s.Format.EncodeNode())
	}
	o.Bool("nullable", s.Nullable)
	setMap(o, "properties", s.Properties)
	if s.Items != nil {
		o.Set("items", s.Items.EncodeNode())
	}
	o.Strings("required", s.Required)
	if s.Enum != nil {
		o.Set("enum", node.EncodeSlice(s.Enum, value.Clone))
	}
	setAny(o, "default", s.Default)
	setAny(o, "example", s.Example)
	setSlice(o, "allOf", s.AllOf)
	setSlice(o, "oneOf", s.OneOf)
	setSlice(o, "anyOf", s.AnyOf)
	if s.Not != nil {
		o.Set("not", s.Not.EncodeNode())
	}
	if s.AdditionalProperties != nil {
		o.Set("additionalProperties", s.AdditionalProperties.EncodeNode())
	}
	if s.Discriminator != nil {
		o.Set("discriminator", s.Discriminator.EncodeNode())
	}
	o.Bool("readOnly", s.ReadOnly)
	o.Bool("writeOnly", s.WriteOnly)
	o.Bool("deprecated", s.Deprecated)
	if s.ExternalDocs != nil {
		o.Set("externalDocs", s.ExternalDocs.EncodeNode())
	}
	o.AddExtras(s.Extra)
	return o.Build()
}

// SchemaTypes is the value of the "type" keyword: a single type name, or a
// list of them as JSON Schema allows.
type SchemaTypes struct {
	Types  []node.Enum[SchemaType]
	IsList bool
}

// SingleType returns the type of a single-name "type" keyword.
func (st *SchemaTypes) SingleType() (node.Enum[SchemaType], bool) {
	if st.IsList || len(st.Types) != 1 {
		return node.Enum[SchemaType]{}, false
	}
	return st.Types[0], true
}

// Contains reports whether t is one of the listed types.
func (st *SchemaTypes) Contains(t SchemaType) bool {
	return slices.ContainsFunc(st.Types, func(e node.Enum[SchemaType]) bool { return e.Is(t) })
}

func decodeSchemaTypes(d *node.Decoder, v value.Value) (*SchemaTypes, error) {
	if _, ok := v.(value.String); ok {
		e, err := node.DecodeEnum[SchemaType](d, v)
		if err != nil {
			return nil, err
		}
		return &SchemaTypes{Types: []node.Enum[SchemaType]{e}}, nil
	}
	types, err := node.DecodeSlice(node.DecodeEnum[SchemaType])(d, v)
	if err != nil {
		return nil, err
	}
	return &SchemaTypes{Types: types, IsList: true}, nil
}

// EncodeNode implements node.Encoder.
func (st *SchemaTypes) EncodeNode() value.Value {
	if !st.IsList && len(st.Types) == 1 {
		return st.Types[0].EncodeNode()
	}
	return node.EncodeSlice(st.Types, node.Encode[node.Enum[SchemaType]])
}

// AdditionalProperties is either a boolean or a schema.
type AdditionalProperties struct {
	Allowed *bool
	Schema  *node.Slot[Schema]
}

func decodeAdditionalProperties(d *node.Decoder, v value.Value) (*AdditionalProperties, error) {
	if b, ok := value.AsBool(v); ok {
		return &AdditionalProperties{Allowed: &b}, nil
	}
	s, err := node.DecodeSlot(decodeSchema)(d, v)
	if err != nil {
		return nil, err
	}
	return &AdditionalProperties{Schema: &s}, nil
}

// EncodeNode implements node.Encoder.
func (ap *AdditionalProperties) EncodeNode() value.Value {
	if ap.Schema != nil {
		return ap.Schema.EncodeNode()
	}
	if ap.Allowed != nil {
		return value.Bool(*ap.Allowed)
	}
	return value.Bool(true)
}

// Discriminator helps select a schema among alternatives
type Discriminator struct {
	PropertyName string
	Mapping      map[string]string
	Extra        *value.Map
}

func decodeDiscriminator(d *node.Decoder, v value.Value) (*Discriminator, error) {
	f, err := d.Object(v)
	if err != nil {
		return nil, err
	}
	disc := &Discriminator{
		PropertyName: node.Required(f, "propertyName", node.DecodeString),
		Mapping:      node.Optional(f, "mapping", node.DecodeMap(node.DecodeString)),
	}
	return finish(f, disc, &disc.Extra)
}

// EncodeNode implements node.Encoder.
func (disc *Discriminator) EncodeNode() value.Value {
	o := node.NewObject()
	o.Set("propertyName", value.String(disc.PropertyName))
	if disc.Mapping != nil {
		o.Set("mapping", node.EncodeMap(disc.Mapping, func(s string) value.Value { return value.String(s) }))
	}
	o.AddExtras(disc.Extra)
	return o.Build()
}
