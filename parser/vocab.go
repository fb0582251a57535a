package parser

// ParameterLocation is the value of a parameter's "in" field.
type ParameterLocation string

const (
	InQuery  ParameterLocation = "query"
	InHeader ParameterLocation = "header"
	InPath   ParameterLocation = "path"
	InCookie ParameterLocation = "cookie"
)

// IsKnown reports whether l is one of the locations defined by OpenAPI 3.0.
func (l ParameterLocation) IsKnown() bool {
	switch l {
	case InQuery, InHeader, InPath, InCookie:
		return true
	}
	return false
}

// Style describes how a parameter value is serialized.
type Style string

const (
	StyleMatrix         Style = "matrix"
	StyleLabel          Style = "label"
	StyleForm           Style = "form"
	StyleSimple         Style = "simple"
	StyleSpaceDelimited Style = "spaceDelimited"
	StylePipeDelimited  Style = "pipeDelimited"
	StyleDeepObject     Style = "deepObject"
)

// IsKnown reports whether s is a defined serialization style.
func (s Style) IsKnown() bool {
	switch s {
	case StyleMatrix, StyleLabel, StyleForm, StyleSimple,
		StyleSpaceDelimited, StylePipeDelimited, StyleDeepObject:
		return true
	}
	return false
}

// SecuritySchemeType is the value of a security scheme's "type" field.
type SecuritySchemeType string

const (
	SecurityAPIKey        SecuritySchemeType = "apiKey"
	SecurityHTTP          SecuritySchemeType = "http"
	SecurityOAuth2        SecuritySchemeType = "oauth2"
	SecurityOpenIDConnect SecuritySchemeType = "openIdConnect"
)

// IsKnown reports whether t is a defined security scheme type.
func (t SecuritySchemeType) IsKnown() bool {
	switch t {
	case SecurityAPIKey, SecurityHTTP, SecurityOAuth2, SecurityOpenIDConnect:
		return true
	}
	return false
}

// SchemaType is a JSON Schema type name.
type SchemaType string

const (
	TypeNull    SchemaType = "null"
	TypeBoolean SchemaType = "boolean"
	TypeObject  SchemaType = "object"
	TypeArray   SchemaType = "array"
	TypeInteger SchemaType = "integer"
	TypeNumber  SchemaType = "number"
	TypeString  SchemaType = "string"
)

// IsKnown reports whether t is a JSON Schema type name.
func (t SchemaType) IsKnown() bool {
	switch t {
	case TypeNull, TypeBoolean, TypeObject, TypeArray, TypeInteger, TypeNumber, TypeString:
		return true
	}
	return false
}

// SchemaFormat is a format name for a schema's "format" keyword.
type SchemaFormat string

// Formats from JSON Schema and the OpenAPI 3.0 data type table.
const (
	FormatDateTime            SchemaFormat = "date-time"
	FormatDate                SchemaFormat = "date"
	FormatTime                SchemaFormat = "time"
	FormatDuration            SchemaFormat = "duration"
	FormatInt32               SchemaFormat = "int32"
	FormatInt64               SchemaFormat = "int64"
	FormatFloat               SchemaFormat = "float"
	FormatDouble              SchemaFormat = "double"
	FormatEmail               SchemaFormat = "email"
	FormatIDNEmail            SchemaFormat = "idn-email"
	FormatHostname            SchemaFormat = "hostname"
	FormatIDNHostname         SchemaFormat = "idn-hostname"
	FormatPassword            SchemaFormat = "password"
	FormatIPv4                SchemaFormat = "ipv4"
	FormatIPv6                SchemaFormat = "ipv6"
	FormatURI                 SchemaFormat = "uri"
	FormatURIReference        SchemaFormat = "uri-reference"
	FormatIRI                 SchemaFormat = "iri"
	FormatIRIReference        SchemaFormat = "iri-reference"
	FormatUUID                SchemaFormat = "uuid"
	FormatURITemplate         SchemaFormat = "uri-template"
	FormatJSONPointer         SchemaFormat = "json-pointer"
	FormatRelativeJSONPointer SchemaFormat = "relative-json-pointer"
	FormatRegex               SchemaFormat = "regex"
	FormatByte                SchemaFormat = "byte"
	FormatBinary              SchemaFormat = "binary"
)

var knownFormats = map[SchemaFormat]struct{}{
	FormatDateTime: {}, FormatDate: {}, FormatTime: {}, FormatDuration: {},
	FormatInt32: {}, FormatInt64: {}, FormatFloat: {}, FormatDouble: {},
	FormatEmail: {}, FormatIDNEmail: {}, FormatHostname: {}, FormatIDNHostname: {},
	FormatPassword: {}, FormatIPv4: {}, FormatIPv6: {}, FormatURI: {},
	FormatURIReference: {}, FormatIRI: {}, FormatIRIReference: {}, FormatUUID: {},
	FormatURITemplate: {}, FormatJSONPointer: {}, FormatRelativeJSONPointer: {},
	FormatRegex: {}, FormatByte: {}, FormatBinary: {},
}

// IsKnown reports whether f is a recognized format name.
func (f SchemaFormat) IsKnown() bool {
	_, ok := knownFormats[f]
	return ok
}
