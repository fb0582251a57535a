package parser

import (
	"github.com/erraggy/oasfidelity/node"
	"github.com/erraggy/oasfidelity/value"
)

// Info provides metadata about the API
type Info struct {
	Title          string
	Description    *string
	TermsOfService *string
	Contact        *Contact
	License        *License
	Version        string
	// Extra holds every field not listed above, in source order
	Extra *value.Map
}

func decodeInfo(d *node.Decoder, v value.Value) (*Info, error) {
	f, err := d.Object(v)
	if err != nil {
		return nil, err
	}
	info := &Info{
		Title:          node.Required(f, "title", node.DecodeString),
		Description:    node.OptionalPtr(f, "description", node.DecodeString),
		TermsOfService: node.OptionalPtr(f, "termsOfService", node.DecodeString),
		Contact:        node.Optional(f, "contact", decodeContact),
		License:        node.Optional(f, "license", decodeLicense),
		Version:        node.Required(f, "version", node.DecodeString),
	}
	return finish(f, info, &info.Extra)
}

// EncodeNode implements node.Encoder.
func (i *Info) EncodeNode() value.Value {
	o := node.NewObject()
	o.Set("title", value.String(i.Title))
	o.String("description", i.Description)
	o.String("termsOfService", i.TermsOfService)
	if i.Contact != nil {
		o.Set("contact", i.Contact.EncodeNode())
	}
	if i.License != nil {
		o.Set("license", i.License.EncodeNode())
	}
	o.Set("version", value.String(i.Version))
	o.AddExtras(i.Extra)
	return o.Build()
}

// Contact information for the exposed API
type Contact struct {
	Name  *string
	URL   *node.Lenient[URL]
	Email *node.Lenient[Email]
	Extra *value.Map
}

func decodeContact(d *node.Decoder, v value.Value) (*Contact, error) {
	f, err := d.Object(v)
	if err != nil {
		return nil, err
	}
	c := &Contact{
		Name:  node.OptionalPtr(f, "name", node.DecodeString),
		URL:   node.OptionalPtr(f, "url", decodeURL),
		Email: node.OptionalPtr(f, "email", decodeEmail),
	}
	return finish(f, c, &c.Extra)
}

// EncodeNode implements node.Encoder.
func (c *Contact) EncodeNode() value.Value {
	o := node.NewObject()
	o.String("name", c.Name)
	if c.URL != nil {
		o.Set("url", c.URL.EncodeNode())
	}
	if c.Email != nil {
		o.Set("email", c.Email.EncodeNode())
	}
	o.AddExtras(c.Extra)
	return o.Build()
}

// License information for the exposed API
type License struct {
	Name  string
	URL   *node.Lenient[URL]
	Extra *value.Map
}

func decodeLicense(d *node.Decoder, v value.Value) (*License, error) {
	f, err := d.Object(v)
	if err != nil {
		return nil, err
	}
	l := &License{
		Name: node.Required(f, "name", node.DecodeString),
		URL:  node.OptionalPtr(f, "url", decodeURL),
	}
	return finish(f, l, &l.Extra)
}

// EncodeNode implements node.Encoder.
func (l *License) EncodeNode() value.Value {
	o := node.NewObject()
	o.Set("name", value.String(l.Name))
	if l.URL != nil {
		o.Set("url", l.URL.EncodeNode())
	}
	o.AddExtras(l.Extra)
	return o.Build()
}

// ExternalDocs allows referencing external documentation
type ExternalDocs struct {
	Description *string
	URL         node.Lenient[URL]
	Extra       *value.Map
}

func decodeExternalDocs(d *node.Decoder, v value.Value) (*ExternalDocs, error) {
	f, err := d.Object(v)
	if err != nil {
		return nil, err
	}
	e := &ExternalDocs{
		Description: node.OptionalPtr(f, "description", node.DecodeString),
		URL:         node.Required(f, "url", decodeURL),
	}
	return finish(f, e, &e.Extra)
}

// EncodeNode implements node.Encoder.
func (e *ExternalDocs) EncodeNode() value.Value {
	o := node.NewObject()
	o.String("description", e.Description)
	o.Set("url", e.URL.EncodeNode())
	o.AddExtras(e.Extra)
	return o.Build()
}

// Tag adds metadata to a single tag used by operations
type Tag struct {
	Name         string
	Description  *string
	ExternalDocs *ExternalDocs
	Extra        *value.Map
}

func decodeTag(d *node.Decoder, v value.Value) (*Tag, error) {
	f, err := d.Object(v)
	if err != nil {
		return nil, err
	}
	t := &Tag{
		Name:         node.Required(f, "name", node.DecodeString),
		Description:  node.OptionalPtr(f, "description", node.DecodeString),
		ExternalDocs: node.Optional(f, "externalDocs", decodeExternalDocs),
	}
	return finish(f, t, &t.Extra)
}

// EncodeNode implements node.Encoder.
func (t *Tag) EncodeNode() value.Value {
	o := node.NewObject()
	o.Set("name", value.String(t.Name))
	o.String("description", t.Description)
	if t.ExternalDocs != nil {
		o.Set("externalDocs", t.ExternalDocs.EncodeNode())
	}
	o.AddExtras(t.Extra)
	return o.Build()
}

// Server represents a Server object.
// URL stays raw when it is relative or contains {variables}.
type Server struct {
	URL         node.Lenient[URL]
	Description *string
	Variables   map[string]*ServerVariable
	Extra       *value.Map
}

func decodeServer(d *node.Decoder, v value.Value) (*Server, error) {
	f, err := d.Object(v)
	if err != nil {
		return nil, err
	}
	s := &Server{
		URL:         node.Required(f, "url", decodeURL),
		Description: node.OptionalPtr(f, "description", node.DecodeString),
		Variables:   node.Optional(f, "variables", node.DecodeMap(decodeServerVariable)),
	}
	return finish(f, s, &s.Extra)
}

// EncodeNode implements node.Encoder.
func (s *Server) EncodeNode() value.Value {
	o := node.NewObject()
	o.Set("url", s.URL.EncodeNode())
	o.String("description", s.Description)
	setMap(o, "variables", s.Variables)
	o.AddExtras(s.Extra)
	return o.Build()
}

// ServerVariable represents a variable for server URL template substitution
type ServerVariable struct {
	Enum        []string
	Default     string
	Description *string
	Extra       *value.Map
}

func decodeServerVariable(d *node.Decoder, v value.Value) (*ServerVariable, error) {
	f, err := d.Object(v)
	if err != nil {
		return nil, err
	}
	sv := &ServerVariable{
		Enum:        node.Optional(f, "enum", node.DecodeStringSlice),
		Default:     node.Required(f, "default", node.DecodeString),
		Description: node.OptionalPtr(f, "description", node.DecodeString),
	}
	return finish(f, sv, &sv.Extra)
}

// EncodeNode implements node.Encoder.
func (sv *ServerVariable) EncodeNode() value.Value {
	o := node.NewObject()
	o.Strings("enum", sv.Enum)
	o.Set("default", value.String(sv.Default))
	o.String("description", sv.Description)
	o.AddExtras(sv.Extra)
	return o.Build()
}

// Example holds a single example value
type Example struct {
	Summary       *string
	Description   *string
	Value         value.Value
	ExternalValue *string
	Extra         *value.Map
}

func decodeExample(d *node.Decoder, v value.Value) (*Example, error) {
	f, err := d.Object(v)
	if err != nil {
		return nil, err
	}
	e := &Example{
		Summary:       node.OptionalPtr(f, "summary", node.DecodeString),
		Description:   node.OptionalPtr(f, "description", node.DecodeString),
		Value:         takeAny(f, "value"),
		ExternalValue: node.OptionalPtr(f, "externalValue", node.DecodeString),
	}
	return finish(f, e, &e.Extra)
}

// EncodeNode implements node.Encoder.
func (e *Example) EncodeNode() value.Value {
	o := node.NewObject()
	o.String("summary", e.Summary)
	o.String("description", e.Description)
	setAny(o, "value", e.Value)
	o.String("externalValue", e.ExternalValue)
	o.AddExtras(e.Extra)
	return o.Build()
}
