package parser

import (
	"github.com/erraggy/oasfidelity/node"
	"github.com/erraggy/oasfidelity/value"
)

// SecurityScheme defines a security scheme that can be used by the operations
type SecurityScheme struct {
	Type             node.Enum[SecuritySchemeType]
	Description      *string
	Name             *string
	In               *string
	Scheme           *string
	BearerFormat     *string
	Flows            *OAuthFlows
	OpenIDConnectURL *node.Lenient[URL]
	Extra            *value.Map
}

func decodeSecurityScheme(d *node.Decoder, v value.Value) (*SecurityScheme, error) {
	f, err := d.Object(v)
	if err != nil {
		return nil, err
	}
	ss := &SecurityScheme{
		Type:             node.Required(f, "type", node.DecodeEnum[SecuritySchemeType]),
		Description:      node.OptionalPtr(f, "description", node.DecodeString),
		Name:             node.OptionalPtr(f, "name", node.DecodeString),
		In:               node.OptionalPtr(f, "in", node.DecodeString),
		Scheme:           node.OptionalPtr(f, "scheme", node.DecodeString),
		BearerFormat:     node.OptionalPtr(f, "bearerFormat", node.DecodeString),
		Flows:            node.Optional(f, "flows", decodeOAuthFlows),
		OpenIDConnectURL: node.OptionalPtr(f, "openIdConnectUrl", decodeURL),
	}
	return finish(f, ss, &ss.Extra)
}

// EncodeNode implements node.Encoder.
func (ss *SecurityScheme) EncodeNode() value.Value {
	o := node.NewObject()
	o.Set("type", ss.Type.EncodeNode())
	o.String("description", ss.Description)
	o.String("name", ss.Name)
	o.String("in", ss.In)
	o.String("scheme", ss.Scheme)
	o.String("bearerFormat", ss.BearerFormat)
	if ss.Flows != nil {
		o.Set("flows", ss.Flows.EncodeNode())
	}
	if ss.OpenIDConnectURL != nil {
		o.Set("openIdConnectUrl", ss.OpenIDConnectURL.EncodeNode())
	}
	o.AddExtras(ss.Extra)
	return o.Build()
}

// OAuthFlows allows configuration of the supported OAuth flows
type OAuthFlows struct {
	Implicit          *OAuthFlow
	Password          *OAuthFlow
	ClientCredentials *OAuthFlow
	AuthorizationCode *OAuthFlow
	Extra             *value.Map
}

func decodeOAuthFlows(d *node.Decoder, v value.Value) (*OAuthFlows, error) {
	f, err := d.Object(v)
	if err != nil {
		return nil, err
	}
	flows := &OAuthFlows{
		Implicit:          node.Optional(f, "implicit", decodeOAuthFlow),
		Password:          node.Optional(f, "password", decodeOAuthFlow),
		ClientCredentials: node.Optional(f, "clientCredentials", decodeOAuthFlow),
		AuthorizationCode: node.Optional(f, "authorizationCode", decodeOAuthFlow),
	}
	return finish(f, flows, &flows.Extra)
}

// EncodeNode implements node.Encoder.
func (flows *OAuthFlows) EncodeNode() value.Value {
	o := node.NewObject()
	for _, fl := range []struct {
		key  string
		flow *OAuthFlow
	}{
		{"implicit", flows.Implicit},
		{"password", flows.Password},
		{"clientCredentials", flows.ClientCredentials},
		{"authorizationCode", flows.AuthorizationCode},
	} {
		if fl.flow != nil {
			o.Set(fl.key, fl.flow.EncodeNode())
		}
	}
	o.AddExtras(flows.Extra)
	return o.Build()
}

// OAuthFlow contains configuration details for a supported OAuth flow
type OAuthFlow struct {
	AuthorizationURL *node.Lenient[URL]
	TokenURL         *node.Lenient[URL]
	RefreshURL       *node.Lenient[URL]
	Scopes           map[string]string
	Extra            *value.Map
}

func decodeOAuthFlow(d *node.Decoder, v value.Value) (*OAuthFlow, error) {
	f, err := d.Object(v)
	if err != nil {
		return nil, err
	}
	fl := &OAuthFlow{
		AuthorizationURL: node.OptionalPtr(f, "authorizationUrl", decodeURL),
		TokenURL:         node.OptionalPtr(f, "tokenUrl", decodeURL),
		RefreshURL:       node.OptionalPtr(f, "refreshUrl", decodeURL),
		Scopes:           node.Required(f, "scopes", node.DecodeMap(node.DecodeString)),
	}
	return finish(f, fl, &fl.Extra)
}

// EncodeNode implements node.Encoder.
func (fl *OAuthFlow) EncodeNode() value.Value {
	o := node.NewObject()
	for _, u := range []struct {
		key string
		url *node.Lenient[URL]
	}{
		{"authorizationUrl", fl.AuthorizationURL},
		{"tokenUrl", fl.TokenURL},
		{"refreshUrl", fl.RefreshURL},
	} {
		if u.url != nil {
			o.Set(u.key, u.url.EncodeNode())
		}
	}
	o.Set("scopes", node.EncodeMap(fl.Scopes, func(s string) value.Value { return value.String(s) }))
	o.AddExtras(fl.Extra)
	return o.Build()
}

// SecurityRequirement lists the required security schemes and their scopes
type SecurityRequirement map[string][]string

func decodeSecurityRequirement(d *node.Decoder, v value.Value) (SecurityRequirement, error) {
	m, err := node.DecodeMap(node.DecodeStringSlice)(d, v)
	if err != nil {
		return nil, err
	}
	return SecurityRequirement(m), nil
}

// EncodeNode implements node.Encoder.
func (sr SecurityRequirement) EncodeNode() value.Value {
	return node.EncodeMap(sr, func(scopes []string) value.Value {
		if scopes == nil {
			return value.Seq{}
		}
		return node.EncodeStrings(scopes)
	})
}
