package value

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/erraggy/oasfidelity/oaserrors"
)

const (
	// DefaultMaxDepth is the nesting depth allowed when Limits.MaxDepth is zero.
	DefaultMaxDepth = 1000
	// DefaultMaxAliasExpansions is the YAML alias budget when
	// Limits.MaxAliasExpansions is zero.
	DefaultMaxAliasExpansions = 10000
)

// Limits bounds the resources a decode may consume.
// Zero fields select the defaults; negative fields disable the check.
type Limits struct {
	// MaxDepth is the maximum nesting of mappings and sequences.
	MaxDepth int
	// MaxAliasExpansions is the maximum number of YAML alias dereferences.
	MaxAliasExpansions int
}

func (l Limits) maxDepth() int {
	if l.MaxDepth == 0 {
		return DefaultMaxDepth
	}
	return l.MaxDepth
}

func (l Limits) maxAliases() int {
	if l.MaxAliasExpansions == 0 {
		return DefaultMaxAliasExpansions
	}
	return l.MaxAliasExpansions
}

func depthError(limit, actual int) error {
	return &oaserrors.ResourceLimitError{
		ResourceType: "nesting_depth",
		Limit:        int64(limit),
		Actual:       int64(actual),
		Message:      "document nests too deeply",
	}
}

// Format is a text encoding understood by Decode.
type Format string

const (
	// FormatJSON is JSON text.
	FormatJSON Format = "json"
	// FormatYAML is YAML text.
	FormatYAML Format = "yaml"
)

// DetectFormat guesses the encoding of data from its first non-whitespace
// byte. JSON documents start with '{' or '['; everything else is YAML.
func DetectFormat(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	return FormatYAML
}

// Decode reads data as JSON or YAML, chosen by DetectFormat.
func Decode(data []byte, limits Limits) (Value, error) {
	if DetectFormat(data) == FormatJSON {
		return DecodeJSON(data, limits)
	}
	return DecodeYAML(data, limits)
}

// DecodeJSON reads one JSON value from data. Object keys keep their source
// order; a repeated key keeps its first position and its last value.
// Anything after the value other than whitespace is an error.
func DecodeJSON(data []byte, limits Limits) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	r := &jsonReader{dec: dec, data: data, limit: limits.maxDepth()}

	// Token does not check separators, so the grammar is checked up front.
	if !json.Valid(data) {
		return nil, r.invalid()
	}

	v, err := r.next(0)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, r.syntaxError(err)
		}
		return nil, &oaserrors.ParseError{Message: "unexpected data after top-level value"}
	}
	return v, nil
}

type jsonReader struct {
	dec   *json.Decoder
	data  []byte
	limit int
}

func (r *jsonReader) token() (json.Token, error) {
	tok, err := r.dec.Token()
	if err == io.EOF {
		return nil, &oaserrors.ParseError{Message: "unexpected end of JSON input"}
	}
	if err != nil {
		return nil, r.syntaxError(err)
	}
	return tok, nil
}

func (r *jsonReader) next(depth int) (Value, error) {
	tok, err := r.token()
	if err != nil {
		return nil, err
	}
	return r.fromToken(tok, depth)
}

func (r *jsonReader) fromToken(tok json.Token, depth int) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return r.object(depth + 1)
		case '[':
			return r.array(depth + 1)
		}
		return nil, &oaserrors.ParseError{Message: fmt.Sprintf("unexpected delimiter %q", rune(t))}
	case string:
		return String(t), nil
	case json.Number:
		n := Number(t)
		if !n.Valid() {
			return nil, &oaserrors.ParseError{Message: fmt.Sprintf("invalid number literal %q", string(t))}
		}
		return n, nil
	case float64:
		return Float(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null{}, nil
	}
	return nil, &oaserrors.ParseError{Message: fmt.Sprintf("unexpected token %v", tok)}
}

func (r *jsonReader) object(depth int) (Value, error) {
	if r.limit > 0 && depth > r.limit {
		return nil, depthError(r.limit, depth)
	}
	m := NewMap()
	for {
		tok, err := r.token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return m, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, &oaserrors.ParseError{Message: fmt.Sprintf("object key must be a string, got %v", tok)}
		}
		v, err := r.next(depth)
		if err != nil {
			return nil, err
		}
		m.Set(key, v)
	}
}

func (r *jsonReader) array(depth int) (Value, error) {
	if r.limit > 0 && depth > r.limit {
		return nil, depthError(r.limit, depth)
	}
	seq := Seq{}
	for {
		tok, err := r.token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			return seq, nil
		}
		v, err := r.fromToken(tok, depth)
		if err != nil {
			return nil, err
		}
		seq = append(seq, v)
	}
}

// invalid reports text rejected by json.Valid, located through the codec's
// own syntax error when it produces one.
func (r *jsonReader) invalid() error {
	var discard any
	if err := json.Unmarshal(r.data, &discard); err != nil {
		return r.syntaxError(err)
	}
	return &oaserrors.ParseError{Message: "invalid JSON"}
}

// syntaxError converts a codec error into a ParseError, resolving the byte
// offset to a line and column when the codec reports one.
func (r *jsonReader) syntaxError(err error) error {
	pe := &oaserrors.ParseError{Message: "invalid JSON", Cause: err}
	var se *json.SyntaxError
	if errors.As(err, &se) && se.Offset > 0 {
		pe.Line, pe.Column = lineColumn(r.data, se.Offset)
	}
	return pe
}

func lineColumn(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	prefix := data[:offset]
	line = bytes.Count(prefix, []byte{'\n'}) + 1
	col = int(offset) - (bytes.LastIndexByte(prefix, '\n') + 1)
	if col == 0 {
		col = 1
	}
	return line, col
}

// parseYAMLLine extracts the line number from a YAML codec message of the
// form "yaml: line N: ...".
func parseYAMLLine(msg string) int {
	m := yamlLineRegex.FindStringSubmatch(msg)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
