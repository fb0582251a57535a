package parser_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasfidelity/internal/testutil"
	"github.com/erraggy/oasfidelity/node"
	"github.com/erraggy/oasfidelity/oaserrors"
	"github.com/erraggy/oasfidelity/parser"
	"github.com/erraggy/oasfidelity/value"
)

// minimal wraps a paths object into an otherwise minimal document.
func minimal(paths string) string {
	return `{"openapi": "3.0.3", "info": {"title": "t", "version": "1"}, "paths": ` + paths + `}`
}

func mustParse(t *testing.T, text string) *parser.Document {
	t.Helper()
	doc, err := parser.Parse(text)
	require.NoError(t, err)
	require.NotNil(t, doc)
	return doc
}

func TestParsePetstore(t *testing.T) {
	doc := mustParse(t, testutil.PetstoreJSON)

	v, ok := doc.OpenAPI.Get()
	require.True(t, ok)
	assert.Equal(t, parser.Version{Major: 3, Patch: 3}, v)

	require.NotNil(t, doc.Info)
	assert.Equal(t, "Swagger Petstore", doc.Info.Title)
	require.NotNil(t, doc.Info.Contact)
	email, ok := doc.Info.Contact.Email.Get()
	require.True(t, ok)
	assert.Equal(t, "example.com", email.Domain)

	require.Len(t, doc.Servers, 2)
	assert.True(t, doc.Servers[0].URL.IsParsed())
	raw, ok := doc.Servers[1].URL.Raw()
	assert.True(t, ok, "relative server URL should be kept raw")
	assert.Equal(t, "/v1", raw)

	require.NotNil(t, doc.Paths)
	assert.Len(t, doc.Paths.Items, 2)
	list := doc.Paths.Items["/pets"].Get
	require.NotNil(t, list)
	require.NotNil(t, list.OperationID)
	assert.Equal(t, "listPets", *list.OperationID)

	require.Len(t, list.Parameters, 1)
	limit, ok := list.Parameters[0].Value()
	require.True(t, ok)
	assert.True(t, limit.In.Is(parser.InQuery))

	def := list.Responses.Default
	require.NotNil(t, def)
	ref, ok := def.Ref()
	assert.True(t, ok)
	assert.Equal(t, "#/components/responses/Error", ref)
	assert.Contains(t, list.Responses.Codes, "200")

	pets, ok := doc.Components.Schemas["Pets"].Value()
	require.True(t, ok)
	assert.True(t, pets.Type.Contains(parser.TypeArray))
	require.NotNil(t, pets.Items)
	assert.True(t, pets.Items.IsReference())
	maxItems, ok := pets.Extra.Get("maxItems")
	require.True(t, ok, "unlisted schema keywords are kept as extras")
	assert.Equal(t, value.Number("100"), maxItems)

	scheme, ok := doc.Components.SecuritySchemes["api_key"].Value()
	require.True(t, ok)
	assert.True(t, scheme.Type.Is(parser.SecurityAPIKey))

	assert.Equal(t, []string{"x-generator"}, doc.Extra.Keys())
	assert.Equal(t, []string{"x-paths-owner"}, doc.Paths.Extra.Keys())
}

func TestParseYAMLMatchesJSON(t *testing.T) {
	fromJSON := mustParse(t, testutil.PetstoreJSON)
	fromYAML := mustParse(t, testutil.PetstoreYAML)

	if diff := cmp.Diff(fromJSON, fromYAML); diff != "" {
		t.Errorf("documents differ (-json +yaml):\n%s", diff)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := map[string]string{
		"petstore json": testutil.PetstoreJSON,
		"petstore yaml": testutil.PetstoreYAML,
		"minimal":       testutil.MinimalJSON,
		"oddities": minimal(`{
			"/a": {
				"x-null": null,
				"get": {
					"parameters": [
						{"name": "q", "in": "querystring", "style": "csv", "schema": {"type": 7, "format": "int128"}},
						{"$ref": "#/components/parameters/Q", "description": "kept"}
					],
					"responses": {"2XX": {"description": "ok"}, "bogus": true},
					"deprecated": null
				}
			}
		}`),
	}

	for name, text := range inputs {
		t.Run(name, func(t *testing.T) {
			doc := mustParse(t, text)

			again := mustParse(t, parser.ToText(doc))
			if diff := cmp.Diff(doc, again); diff != "" {
				t.Errorf("round trip changed the document (-first +second):\n%s", diff)
			}
			assert.True(t, value.Equal(parser.ToValue(doc), parser.ToValue(again)))

			// Re-encoding is stable.
			assert.Equal(t, parser.ToText(doc), parser.ToText(again))
		})
	}
}

func TestRoundTripPreservesTree(t *testing.T) {
	for _, text := range []string{testutil.PetstoreJSON, testutil.PetstoreYAML} {
		result, err := parser.New().ParseBytes([]byte(text))
		require.NoError(t, err)
		assert.True(t, value.Equal(result.Data, parser.ToValue(result.Document)),
			"encoding should reproduce every key and value of the input")
	}
}

func TestLenientFallback(t *testing.T) {
	doc := mustParse(t, `{
		"openapi": "3.0.3",
		"info": {
			"title": "t", "version": "1",
			"contact": {"url": "not-a-url", "email": "nobody"},
			"license": {"name": "MIT", "url": "hello"}
		},
		"servers": [{"url": "hello"}],
		"paths": {}
	}`)

	url := doc.Servers[0].URL
	assert.False(t, url.IsParsed())
	assert.Equal(t, "hello", url.String())

	contact := doc.Info.Contact
	assert.False(t, contact.URL.IsParsed())
	assert.False(t, contact.Email.IsParsed())
	assert.Equal(t, "nobody", contact.Email.String())

	out := parser.ToValue(contact)
	m, ok := value.AsMap(out)
	require.True(t, ok)
	got, _ := m.Get("url")
	assert.Equal(t, value.String("not-a-url"), got)
}

func TestUnknownVersionIsRaw(t *testing.T) {
	tests := []struct {
		name    string
		openapi string
		parsed  bool
	}{
		{"3.0.3", `"3.0.3"`, true},
		{"future version", `"4.0.0-draft"`, true},
		{"two components", `"3.0"`, false},
		{"garbage", `"three"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, `{"openapi": `+tt.openapi+`, "info": {"title": "t", "version": "1"}, "paths": {}}`)
			assert.Equal(t, tt.parsed, doc.OpenAPI.IsParsed())
			assert.Equal(t, strings.Trim(tt.openapi, `"`), doc.OpenAPI.String())
		})
	}
}

func TestSlotPrecedence(t *testing.T) {
	doc := mustParse(t, `{
		"openapi": "3.0.3",
		"info": {"title": "t", "version": "1"},
		"paths": {},
		"components": {
			"schemas": {
				"Pet": {"$ref": "#/components/schemas/Animal"},
				"Dog": {"$ref": "#/components/schemas/Animal", "type": "object", "description": "a dog"},
				"Animal": {"type": "object", "properties": {"$ref": {"type": "string"}}}
			}
		}
	}`)
	schemas := doc.Components.Schemas

	pet := schemas["Pet"]
	assert.True(t, pet.IsReference())
	ref, _ := pet.Ref()
	assert.Equal(t, "#/components/schemas/Animal", ref)
	assert.Nil(t, pet.RefExtras())

	dog := schemas["Dog"]
	assert.True(t, dog.IsReference(), "siblings never turn a reference into inline data")
	_, inline := dog.Value()
	assert.False(t, inline)
	assert.Equal(t, []string{"type", "description"}, dog.RefExtras().Keys())

	m, ok := value.AsMap(dog.EncodeNode())
	require.True(t, ok)
	assert.Equal(t, []string{"$ref", "type", "description"}, m.Keys())

	animal, ok := schemas["Animal"].Value()
	require.True(t, ok, "a property named $ref is not a reference marker")
	assert.Contains(t, animal.Properties, "$ref")
}

func TestOpenEnumFallback(t *testing.T) {
	doc := mustParse(t, minimal(`{
		"/a": {"get": {
			"parameters": [{"name": "q", "in": "Query", "style": "csv"}],
			"responses": {"200": {"description": "ok"}}
		}}
	}`))

	param, ok := doc.Paths.Items["/a"].Get.Parameters[0].Value()
	require.True(t, ok)

	other, ok := param.In.Other()
	assert.True(t, ok)
	assert.Equal(t, "Query", other, "enumeration literals are case-sensitive")
	_, known := param.In.Known()
	assert.False(t, known)
	assert.Equal(t, "csv", param.Style.String())

	out, ok := value.AsMap(parser.ToValue(param))
	require.True(t, ok)
	in, _ := out.Get("in")
	assert.Equal(t, value.String("Query"), in)
}

func TestExtrasFidelity(t *testing.T) {
	doc := mustParse(t, `{
		"openapi": "3.0.3",
		"info": {"title": "t", "version": "1", "x-vendor": 42, "summary": {"nested": [1, "two", null]}},
		"paths": {},
		"x-root": true
	}`)

	assert.Equal(t, []string{"x-vendor", "summary"}, doc.Info.Extra.Keys())
	vendor, _ := doc.Info.Extra.Get("x-vendor")
	assert.Equal(t, value.Number("42"), vendor)

	out, ok := value.AsMap(parser.ToValue(doc.Info))
	require.True(t, ok)
	assert.Equal(t, []string{"title", "version", "x-vendor", "summary"}, out.Keys())
	summary, _ := out.Get("summary")
	want := value.NewMap()
	want.Set("nested", value.Seq{value.Number("1"), value.String("two"), value.Null{}})
	assert.True(t, value.Equal(want, summary))

	assert.Contains(t, parser.ToText(doc), `"x-root":true`)
}

func TestOptionalNullIsKept(t *testing.T) {
	doc := mustParse(t, `{
		"openapi": "3.0.3",
		"info": {"title": "t", "version": "1", "description": null},
		"paths": {}
	}`)

	assert.Nil(t, doc.Info.Description)
	got, ok := doc.Info.Extra.Get("description")
	require.True(t, ok)
	assert.Equal(t, value.Null{}, got)
	assert.Contains(t, parser.ToText(doc.Info), `"description":null`)
}

func TestLooseSchemaKeywords(t *testing.T) {
	doc := mustParse(t, `{
		"openapi": "3.0.3",
		"info": {"title": "t", "version": "1"},
		"paths": {},
		"components": {"schemas": {"S": {"type": 7, "required": "yes", "nullable": true}}}
	}`)

	s, ok := doc.Components.Schemas["S"].Value()
	require.True(t, ok)
	assert.Nil(t, s.Type)
	assert.Nil(t, s.Required)
	require.NotNil(t, s.Nullable)
	assert.True(t, *s.Nullable)
	assert.Equal(t, []string{"type", "required"}, s.Extra.Keys())
}

func TestStatsCountOnlyKeptValues(t *testing.T) {
	text := `{
		"openapi": "3.0.3",
		"info": {"title": "t", "version": "1"},
		"paths": {},
		"components": {
			"schemas": {"S": {"properties": {"a": {"type": "foo", "x-a": 1}, "b": 5}}},
			"links": {"L": {"server": {"description": "no url", "x-s": 1}}}
		}
	}`
	result, err := parser.New().ParseBytes([]byte(text))
	require.NoError(t, err)

	s, ok := result.Document.Components.Schemas["S"].Value()
	require.True(t, ok)
	assert.Nil(t, s.Properties)
	assert.Equal(t, []string{"properties"}, s.Extra.Keys())

	l, ok := result.Document.Components.Links["L"].Value()
	require.True(t, ok)
	assert.False(t, l.Server.IsParsed())

	// Neither "foo" nor "x-a" nor "x-s" is held by a decoded node.
	assert.Equal(t, parser.DecodeStats{RawScalars: 1, ExtraFields: 1}, result.Stats)
}

func TestLinkServerFallback(t *testing.T) {
	doc := mustParse(t, `{
		"openapi": "3.0.3",
		"info": {"title": "t", "version": "1"},
		"paths": {},
		"components": {"links": {
			"good": {"operationId": "getPet", "server": {"url": "hello"}},
			"bad": {"operationId": "getPet", "server": {"description": "no url"}}
		}}
	}`)

	good, ok := doc.Components.Links["good"].Value()
	require.True(t, ok)
	server, ok := good.Server.Get()
	require.True(t, ok, "nested lenient fields do not degrade the whole server")
	assert.False(t, server.URL.IsParsed())

	bad, ok := doc.Components.Links["bad"].Value()
	require.True(t, ok)
	assert.False(t, bad.Server.IsParsed())
	assert.JSONEq(t, `{"description": "no url"}`, bad.Server.RawText())
	assert.JSONEq(t, `{"operationId": "getPet", "server": {"description": "no url"}}`, parser.ToText(bad))
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sentinel error
		check    func(t *testing.T, err error)
	}{
		{
			name:     "syntax error",
			input:    `{"openapi": `,
			sentinel: oaserrors.ErrParse,
		},
		{
			name:     "malformed separators",
			input:    `{"openapi":"3.0.3" "info":{"title":"t","version":"1",},"paths":{},,"x-n":[1,]}`,
			sentinel: oaserrors.ErrParse,
		},
		{
			name:     "number with leading zero",
			input:    `{"openapi":"3.0.3","info":{"title":"t","version":"1"},"paths":{},"x-n":[01]}`,
			sentinel: oaserrors.ErrParse,
		},
		{
			name:     "missing info",
			input:    `{"openapi": "3.0.3", "paths": {}}`,
			sentinel: oaserrors.ErrMissingField,
			check: func(t *testing.T, err error) {
				var missing *oaserrors.MissingFieldError
				require.ErrorAs(t, err, &missing)
				assert.Equal(t, "info", missing.Field)
				assert.Equal(t, "", missing.Path)
			},
		},
		{
			name:     "missing responses",
			input:    minimal(`{"/pets": {"get": {"summary": "list"}}}`),
			sentinel: oaserrors.ErrMissingField,
			check: func(t *testing.T, err error) {
				var missing *oaserrors.MissingFieldError
				require.ErrorAs(t, err, &missing)
				assert.Equal(t, `paths["/pets"].get`, missing.Path)
				assert.Equal(t, `paths["/pets"].get.responses`, missing.FieldPath())
			},
		},
		{
			name:     "missing parameter name",
			input:    minimal(`{"/pets": {"parameters": [{"in": "query"}]}}`),
			sentinel: oaserrors.ErrMissingField,
			check: func(t *testing.T, err error) {
				var missing *oaserrors.MissingFieldError
				require.ErrorAs(t, err, &missing)
				assert.Equal(t, `paths["/pets"].parameters[0]`, missing.Path)
				assert.Equal(t, "name", missing.Field)
			},
		},
		{
			name:     "title is not a string",
			input:    `{"openapi": "3.0.3", "info": {"title": 42, "version": "1"}, "paths": {}}`,
			sentinel: oaserrors.ErrTypeMismatch,
			check: func(t *testing.T, err error) {
				var mismatch *oaserrors.TypeMismatchError
				require.ErrorAs(t, err, &mismatch)
				assert.Equal(t, "info.title", mismatch.Path)
				assert.Equal(t, "string", mismatch.Expected)
				assert.Equal(t, "number", mismatch.Actual)
			},
		},
		{
			name:     "servers is not a list",
			input:    `{"openapi": "3.0.3", "info": {"title": "t", "version": "1"}, "paths": {}, "servers": {"url": "x"}}`,
			sentinel: oaserrors.ErrTypeMismatch,
			check: func(t *testing.T, err error) {
				var mismatch *oaserrors.TypeMismatchError
				require.ErrorAs(t, err, &mismatch)
				assert.Equal(t, "servers", mismatch.Path)
				assert.Equal(t, "array", mismatch.Expected)
				assert.Equal(t, "object", mismatch.Actual)
			},
		},
		{
			name:     "root is not a mapping",
			input:    `[1, 2, 3]`,
			sentinel: oaserrors.ErrTypeMismatch,
		},
		{
			name:     "required openapi is null",
			input:    `{"openapi": null, "info": {"title": "t", "version": "1"}, "paths": {}}`,
			sentinel: oaserrors.ErrTypeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := parser.Parse(tt.input)
			require.Error(t, err)
			assert.Nil(t, doc, "no partial document is returned")
			assert.ErrorIs(t, err, tt.sentinel)
			if tt.check != nil {
				tt.check(t, err)
			}
		})
	}
}

func TestResourceLimits(t *testing.T) {
	deep := strings.Repeat(`{"a": `, 50) + `1` + strings.Repeat(`}`, 50)
	text := minimal(`{}`)
	text = strings.TrimSuffix(text, "}") + `, "x-deep": ` + deep + `}`

	_, err := (&parser.Parser{MaxDepth: 10}).ParseBytes([]byte(text))
	assert.ErrorIs(t, err, oaserrors.ErrResourceLimit)

	_, err = (&parser.Parser{MaxDepth: -1}).ParseBytes([]byte(text))
	assert.NoError(t, err, "a negative limit disables the check")

	_, err = parser.New().ParseBytes([]byte(text))
	assert.NoError(t, err)

	_, err = (&parser.Parser{MaxInputSize: 16}).ParseReader(strings.NewReader(text))
	var limit *oaserrors.ResourceLimitError
	require.ErrorAs(t, err, &limit)
	assert.Equal(t, "input_size", limit.ResourceType)

	_, err = (&parser.Parser{MaxInputSize: -1}).ParseReader(strings.NewReader(text))
	assert.NoError(t, err, "a negative input size disables the check")
}

func TestParseResult(t *testing.T) {
	result, err := parser.New().ParseBytes([]byte(testutil.PetstoreYAML))
	require.NoError(t, err)

	assert.Equal(t, value.FormatYAML, result.SourceFormat)
	assert.Equal(t, "3.0.3", result.Version)
	assert.Equal(t, int64(len(testutil.PetstoreYAML)), result.SourceSize)

	assert.Equal(t, parser.DecodeStats{
		RawScalars:  1,
		OtherEnums:  0,
		References:  6,
		ExtraFields: 5,
	}, result.Stats)

	assert.Equal(t, parser.DocumentStats{
		PathCount:      2,
		OperationCount: 3,
		SchemaCount:    3,
	}, result.Document.Stats())
}

func TestParserLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := parser.NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, err := (&parser.Parser{Logger: logger}).ParseBytes([]byte(testutil.PetstoreJSON))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "parsed document")
	assert.Contains(t, out, "kept value verbatim")
	assert.Contains(t, out, `path=servers[1].url`)
	assert.Contains(t, out, "kind=raw")

	buf.Reset()
	_, err = (&parser.Parser{Logger: logger}).ParseBytes([]byte(minimal(`{}`)[:20]))
	require.Error(t, err)
	assert.Contains(t, buf.String(), "level=ERROR")
}

func TestObserverEvents(t *testing.T) {
	result, err := parser.New().ParseBytes([]byte(minimal(`{}`)))
	require.NoError(t, err)
	v := parser.ToValue(result.Document)

	var events []node.Event
	d := node.NewDecoder(func(e node.Event) { events = append(events, e) })
	m, _ := value.AsMap(v)
	m.Set("x-extra", value.Bool(true))
	_, err = parser.DecodeDocument(d, m)
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, node.Event{Path: "x-extra", Kind: node.ExtraField, Literal: "x-extra"}, events[0])
}

func TestClone(t *testing.T) {
	doc := mustParse(t, testutil.PetstoreJSON)

	clone, err := doc.Clone()
	require.NoError(t, err)
	if diff := cmp.Diff(doc, clone); diff != "" {
		t.Fatalf("clone differs (-original +clone):\n%s", diff)
	}

	clone.Info.Title = "Changed"
	clone.Extra.Set("x-new", value.String("added"))
	gen, _ := value.AsMap(mustGet(t, clone.Extra, "x-generator"))
	gen.Set("revision", value.Int(4))

	assert.Equal(t, "Swagger Petstore", doc.Info.Title)
	assert.False(t, doc.Extra.Has("x-new"))
	orig, _ := value.AsMap(mustGet(t, doc.Extra, "x-generator"))
	assert.Equal(t, value.Number("3"), mustGet(t, orig, "revision"))
}

func mustGet(t *testing.T, m *value.Map, key string) value.Value {
	t.Helper()
	v, ok := m.Get(key)
	require.True(t, ok, "missing key %q", key)
	return v
}

func TestToYAML(t *testing.T) {
	doc := mustParse(t, testutil.PetstoreJSON)

	out, err := parser.ToYAML(doc)
	require.NoError(t, err)

	again := mustParse(t, string(out))
	if diff := cmp.Diff(doc, again); diff != "" {
		t.Errorf("YAML round trip changed the document (-json +yaml):\n%s", diff)
	}
}

func TestToTextIndent(t *testing.T) {
	doc := mustParse(t, testutil.MinimalJSON)

	out := parser.ToTextIndent(doc, "  ")
	assert.True(t, strings.HasPrefix(out, "{\n  \"openapi\": \"3.0.3\""))
	assert.JSONEq(t, parser.ToText(doc), out)
}

func TestErrorsAreWrapped(t *testing.T) {
	_, err := parser.Parse(`{"openapi": "3.0.3"}`)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parser: "))
	assert.True(t, errors.Is(err, oaserrors.ErrMissingField))
}
