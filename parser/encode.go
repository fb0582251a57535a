package parser

import (
	"fmt"

	"github.com/erraggy/oasfidelity/node"
	"github.com/erraggy/oasfidelity/value"
)

// ToValue returns the generic tree for t. It never fails.
func ToValue[T node.Encoder](t T) value.Value {
	return t.EncodeNode()
}

// ToText returns the compact JSON text for t. Known fields come first in
// their declared order, followed by extras in the order they were read.
// It never fails.
func ToText[T node.Encoder](t T) string {
	return value.JSONString(t.EncodeNode())
}

// ToTextIndent is like ToText but indents nested elements with indent.
func ToTextIndent[T node.Encoder](t T, indent string) string {
	return string(value.MarshalJSONIndent(t.EncodeNode(), indent))
}

// ToYAML returns the YAML text for t.
func ToYAML[T node.Encoder](t T) ([]byte, error) {
	out, err := value.MarshalYAML(t.EncodeNode())
	if err != nil {
		return nil, fmt.Errorf("parser: failed to marshal YAML: %w", err)
	}
	return out, nil
}

// Clone returns a deep copy of doc that shares no state with it, so the
// copy can be modified freely. It fails only when doc is missing a
// required field, which cannot happen for a parsed document.
func (doc *Document) Clone() (*Document, error) {
	return FromValue(doc.EncodeNode())
}
