package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
		host    string
	}{
		{input: "https://api.example.com/v1", host: "api.example.com"},
		{input: "http://localhost:8080", host: "localhost:8080"},
		{input: "mailto:someone@example.com"},
		{input: "hello", wantErr: true},
		{input: "/v1", wantErr: true},
		{input: "", wantErr: true},
		{input: "http://[::1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			u, err := ParseURL(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, u.String())
			assert.Equal(t, tt.host, u.URL().Host)
		})
	}
}

func TestURLCopy(t *testing.T) {
	u, err := ParseURL("https://api.example.com/v1")
	require.NoError(t, err)

	u.URL().Host = "changed.example.com"
	assert.Equal(t, "api.example.com", u.URL().Host)
	assert.Nil(t, URL{}.URL())
}

func TestParseEmail(t *testing.T) {
	e, err := ParseEmail("support@example.com")
	require.NoError(t, err)
	assert.Equal(t, Email{Local: "support", Domain: "example.com"}, e)
	assert.Equal(t, "support@example.com", e.String())

	for _, bad := range []string{"", "support", "support@", "@example.com", "support@example"} {
		_, err := ParseEmail(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestParseMediaRange(t *testing.T) {
	tests := []struct {
		input     string
		typ       string
		subtype   string
		canonical string
	}{
		{"application/json", "application", "json", "application/json"},
		{"text/*", "text", "*", "text/*"},
		{"*/*", "*", "*", "*/*"},
		{"Text/HTML; Charset=utf-8", "text", "html", "text/html; charset=utf-8"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := ParseMediaRange(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.input, m.String())
			assert.Equal(t, tt.typ, m.Type)
			assert.Equal(t, tt.subtype, m.Subtype)
			assert.Equal(t, tt.canonical, m.Canonical())
		})
	}

	for _, bad := range []string{"", "json", "application/", "text/plain; charset"} {
		_, err := ParseMediaRange(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestVocabularies(t *testing.T) {
	assert.True(t, InQuery.IsKnown())
	assert.False(t, ParameterLocation("Query").IsKnown())
	assert.True(t, StyleDeepObject.IsKnown())
	assert.False(t, Style("csv").IsKnown())
	assert.True(t, SecurityOpenIDConnect.IsKnown())
	assert.False(t, SecuritySchemeType("basic").IsKnown())
	assert.True(t, TypeNull.IsKnown())
	assert.False(t, SchemaType("file").IsKnown())
	assert.True(t, FormatInt64.IsKnown())
	assert.False(t, SchemaFormat("int128").IsKnown())
}
