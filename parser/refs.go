package parser

import (
	"github.com/erraggy/oasfidelity/internal/pathutil"
	"github.com/erraggy/oasfidelity/node"
)

// Constructors for slots referring to a named entry of Components.
// The name is used as is; it is not escaped as a JSON pointer token.

// SchemaRef returns a slot referring to "#/components/schemas/{name}".
func SchemaRef(name string) node.Slot[Schema] {
	return node.Ref[Schema](pathutil.SchemaRef(name))
}

// ResponseRef returns a slot referring to "#/components/responses/{name}".
func ResponseRef(name string) node.Slot[Response] {
	return node.Ref[Response](pathutil.ResponseRef(name))
}

// ParameterRef returns a slot referring to "#/components/parameters/{name}".
func ParameterRef(name string) node.Slot[Parameter] {
	return node.Ref[Parameter](pathutil.ParameterRef(name))
}

// ExampleRef returns a slot referring to "#/components/examples/{name}".
func ExampleRef(name string) node.Slot[Example] {
	return node.Ref[Example](pathutil.ExampleRef(name))
}

// RequestBodyRef returns a slot referring to "#/components/requestBodies/{name}".
func RequestBodyRef(name string) node.Slot[RequestBody] {
	return node.Ref[RequestBody](pathutil.RequestBodyRef(name))
}

// HeaderRef returns a slot referring to "#/components/headers/{name}".
func HeaderRef(name string) node.Slot[Header] {
	return node.Ref[Header](pathutil.HeaderRef(name))
}

// SecuritySchemeRef returns a slot referring to "#/components/securitySchemes/{name}".
func SecuritySchemeRef(name string) node.Slot[SecurityScheme] {
	return node.Ref[SecurityScheme](pathutil.SecuritySchemeRef(name))
}

// LinkRef returns a slot referring to "#/components/links/{name}".
func LinkRef(name string) node.Slot[Link] {
	return node.Ref[Link](pathutil.LinkRef(name))
}

// CallbackRef returns a slot referring to "#/components/callbacks/{name}".
func CallbackRef(name string) node.Slot[Callback] {
	return node.Ref[Callback](pathutil.CallbackRef(name))
}
