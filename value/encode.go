package value

import (
	"bytes"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// AppendJSON appends the compact JSON encoding of v to dst.
// Mapping keys are written in Map order. A nil Value is written as null,
// and a Number whose literal is not valid JSON is written as a string.
func AppendJSON(dst []byte, v Value) []byte {
	switch x := v.(type) {
	case nil, Null:
		return append(dst, "null"...)
	case Bool:
		return strconv.AppendBool(dst, bool(x))
	case Number:
		if !x.Valid() {
			return appendString(dst, string(x))
		}
		return append(dst, x...)
	case String:
		return appendString(dst, string(x))
	case Seq:
		dst = append(dst, '[')
		for i, item := range x {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = AppendJSON(dst, item)
		}
		return append(dst, ']')
	case *Map:
		if x == nil {
			return append(dst, "null"...)
		}
		dst = append(dst, '{')
		i := 0
		for k, item := range x.All() {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendString(dst, k)
			dst = append(dst, ':')
			dst = AppendJSON(dst, item)
			i++
		}
		return append(dst, '}')
	}
	return append(dst, "null"...)
}

func appendString(dst []byte, s string) []byte {
	// Marshaling a Go string cannot fail.
	b, _ := json.MarshalNoEscape(s)
	return append(dst, b...)
}

// MarshalJSON returns the compact JSON encoding of v.
func MarshalJSON(v Value) []byte {
	return AppendJSON(nil, v)
}

// MarshalJSONIndent returns the JSON encoding of v with each element on its
// own line, indented by indent per level.
func MarshalJSONIndent(v Value, indent string) []byte {
	compact := MarshalJSON(v)
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", indent); err != nil {
		// AppendJSON only produces valid JSON; keep the compact form if the
		// indenter disagrees.
		return compact
	}
	return buf.Bytes()
}

// JSONString returns the compact JSON encoding of v as a string.
func JSONString(v Value) string {
	return string(MarshalJSON(v))
}

// ToYAMLNode converts v into a yaml.Node tree with explicit tags, so that
// strings which look like numbers or booleans stay strings when written.
func ToYAMLNode(v Value) *yaml.Node {
	switch x := v.(type) {
	case Bool:
		return scalarNode("!!bool", strconv.FormatBool(bool(x)))
	case Number:
		if !x.Valid() {
			return scalarNode("!!str", string(x))
		}
		if strings.ContainsAny(string(x), ".eE") {
			return scalarNode("!!float", string(x))
		}
		return scalarNode("!!int", string(x))
	case String:
		return scalarNode("!!str", string(x))
	case Seq:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range x {
			n.Content = append(n.Content, ToYAMLNode(item))
		}
		return n
	case *Map:
		if x == nil {
			return scalarNode("!!null", "null")
		}
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for k, item := range x.All() {
			n.Content = append(n.Content, scalarNode("!!str", k), ToYAMLNode(item))
		}
		return n
	}
	return scalarNode("!!null", "null")
}

func scalarNode(tag, val string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: val}
}

// MarshalYAML returns the YAML encoding of v.
func MarshalYAML(v Value) ([]byte, error) {
	return yaml.Marshal(ToYAMLNode(v))
}
