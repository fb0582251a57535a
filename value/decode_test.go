package value

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasfidelity/oaserrors"
)

func mustMap(t *testing.T, v Value) *Map {
	t.Helper()
	m, ok := AsMap(v)
	require.True(t, ok, "expected mapping, got %s", KindOf(v))
	return m
}

func get(t *testing.T, m *Map, key string) Value {
	t.Helper()
	v, ok := m.Get(key)
	require.True(t, ok, "missing key %q", key)
	return v
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, DetectFormat([]byte("  \n{\"a\":1}")))
	assert.Equal(t, FormatJSON, DetectFormat([]byte("[1]")))
	assert.Equal(t, FormatYAML, DetectFormat([]byte("a: 1")))
	assert.Equal(t, FormatYAML, DetectFormat(nil))
}

func TestDecodeJSON(t *testing.T) {
	v, err := DecodeJSON([]byte(`{"b":1,"a":[true,null,"x"],"big":12345678901234567890,"s":"<tag>"}`), Limits{})
	require.NoError(t, err)

	m := mustMap(t, v)
	assert.Equal(t, []string{"b", "a", "big", "s"}, m.Keys())
	assert.Equal(t, Number("1"), get(t, m, "b"))
	assert.Equal(t, Seq{Bool(true), Null{}, String("x")}, get(t, m, "a"))
	assert.Equal(t, Number("12345678901234567890"), get(t, m, "big"))
	assert.Equal(t, String("<tag>"), get(t, m, "s"))
}

func TestDecodeJSONDuplicateKeys(t *testing.T) {
	v, err := DecodeJSON([]byte(`{"a":1,"b":2,"a":3}`), Limits{})
	require.NoError(t, err)

	m := mustMap(t, v)
	assert.Equal(t, []string{"a", "b"}, m.Keys())
	assert.Equal(t, Number("3"), get(t, m, "a"))
}

func TestDecodeJSONEmptyContainers(t *testing.T) {
	v, err := DecodeJSON([]byte(`{"m":{},"s":[]}`), Limits{})
	require.NoError(t, err)

	m := mustMap(t, v)
	assert.Equal(t, 0, mustMap(t, get(t, m, "m")).Len())
	seq, ok := AsSeq(get(t, m, "s"))
	require.True(t, ok)
	assert.NotNil(t, seq)
	assert.Empty(t, seq)
}

func TestDecodeJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"truncated", `{"a":`},
		{"trailing value", `{"a":1} {}`},
		{"trailing garbage", `{"a":1} x`},
		{"empty", ``},
		{"missing colon", `{"a" "b"}`},
		{"missing comma between members", `{"a":1 "b":2}`},
		{"missing comma between elements", `[1 2]`},
		{"trailing comma in object", `{"a":1,}`},
		{"trailing comma in array", `[1,]`},
		{"leading comma in object", `{,"a":1}`},
		{"leading comma in array", `[,1]`},
		{"leading zero", `01`},
		{"nested leading zero", `{"n":[01]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeJSON([]byte(tt.input), Limits{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, oaserrors.ErrParse), "got %v", err)
		})
	}
}

func TestDecodeDepthLimit(t *testing.T) {
	for _, input := range []string{`[[[[1]]]]`, `{"a":{"b":{"c":{"d":1}}}}`, "a:\n  b:\n    c:\n      d: 1\n"} {
		_, err := Decode([]byte(input), Limits{MaxDepth: 3})
		require.Error(t, err, input)

		var rle *oaserrors.ResourceLimitError
		require.True(t, errors.As(err, &rle), "got %v", err)
		assert.Equal(t, "nesting_depth", rle.ResourceType)
		assert.Equal(t, int64(3), rle.Limit)
	}

	_, err := Decode([]byte(`[[[1]]]`), Limits{MaxDepth: 3})
	assert.NoError(t, err)
	_, err = Decode([]byte(`[[[[[[1]]]]]]`), Limits{MaxDepth: -1})
	assert.NoError(t, err)
}

func TestDecodeYAMLScalars(t *testing.T) {
	input := `
b: 1
a:
  - true
  - ~
  - "x"
hex: 0x1F
f: 1.5
inf: .inf
date: 2024-01-01
quoted: "123"
yes: yes
`
	v, err := DecodeYAML([]byte(input), Limits{})
	require.NoError(t, err)

	m := mustMap(t, v)
	assert.Equal(t, []string{"b", "a", "hex", "f", "inf", "date", "quoted", "yes"}, m.Keys())
	assert.Equal(t, Number("1"), get(t, m, "b"))
	assert.Equal(t, Seq{Bool(true), Null{}, String("x")}, get(t, m, "a"))
	assert.Equal(t, Number("31"), get(t, m, "hex"))
	assert.Equal(t, Number("1.5"), get(t, m, "f"))
	assert.Equal(t, String(".inf"), get(t, m, "inf"))
	assert.Equal(t, String("2024-01-01"), get(t, m, "date"))
	assert.Equal(t, String("123"), get(t, m, "quoted"))
	assert.Equal(t, String("yes"), get(t, m, "yes"))
}

func TestDecodeYAMLMerge(t *testing.T) {
	input := `
base: &b
  x: 1
  y: 2
derived:
  <<: *b
  y: 3
`
	v, err := DecodeYAML([]byte(input), Limits{})
	require.NoError(t, err)

	derived := mustMap(t, get(t, mustMap(t, v), "derived"))
	assert.Equal(t, []string{"y", "x"}, derived.Keys())
	assert.Equal(t, Number("3"), get(t, derived, "y"))
	assert.Equal(t, Number("1"), get(t, derived, "x"))
}

func TestDecodeYAMLAliasLimit(t *testing.T) {
	input := "a: &x 1\nb: *x\nc: *x\n"

	_, err := DecodeYAML([]byte(input), Limits{MaxAliasExpansions: 1})
	var rle *oaserrors.ResourceLimitError
	require.True(t, errors.As(err, &rle), "got %v", err)
	assert.Equal(t, "alias_expansions", rle.ResourceType)

	v, err := DecodeYAML([]byte(input), Limits{})
	require.NoError(t, err)
	assert.Equal(t, Number("1"), get(t, mustMap(t, v), "c"))
}

func TestDecodeYAMLErrors(t *testing.T) {
	t.Run("complex key", func(t *testing.T) {
		_, err := DecodeYAML([]byte("? [a, b]\n: 1\n"), Limits{})
		assert.True(t, errors.Is(err, oaserrors.ErrParse), "got %v", err)
	})
	t.Run("syntax", func(t *testing.T) {
		_, err := DecodeYAML([]byte("a: b\n  c: [d\n"), Limits{})
		var pe *oaserrors.ParseError
		require.True(t, errors.As(err, &pe), "got %v", err)
		assert.NotNil(t, pe.Cause)
	})
}

func TestDecodeYAMLEmpty(t *testing.T) {
	v, err := DecodeYAML(nil, Limits{})
	require.NoError(t, err)
	assert.Equal(t, Null{}, v)
}

func TestDecodeYAMLMatchesJSON(t *testing.T) {
	j, err := Decode([]byte(`{"openapi":"3.0.0","info":{"title":"T","version":"1"},"n":[1,2.5,null,false]}`), Limits{})
	require.NoError(t, err)
	y, err := Decode([]byte("openapi: 3.0.0\ninfo:\n  title: T\n  version: \"1\"\nn: [1, 2.5, null, false]\n"), Limits{})
	require.NoError(t, err)

	assert.True(t, Equal(j, y), "json=%s yaml=%s", JSONString(j), JSONString(y))
}

func TestLineColumn(t *testing.T) {
	data := []byte("ab\ncd\nef")
	line, col := lineColumn(data, 4)
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)

	line, col = lineColumn(data, 100)
	assert.Equal(t, 3, line)
	assert.Equal(t, 2, col)

	assert.Equal(t, 3, parseYAMLLine("yaml: line 3: did not find expected key"))
	assert.Equal(t, 0, parseYAMLLine("something else"))
}
