package parser

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasfidelity/internal/testutil"
	"github.com/erraggy/oasfidelity/oaserrors"
)

func TestParseWithOptions_InputSources(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		result, err := ParseWithOptions(WithText(testutil.PetstoreYAML))
		require.NoError(t, err)
		assert.Equal(t, "Swagger Petstore", result.Document.Info.Title)
		assert.Equal(t, defaultSourceName, result.SourcePath)
	})

	t.Run("bytes", func(t *testing.T) {
		result, err := ParseWithOptions(WithBytes([]byte(testutil.PetstoreJSON)))
		require.NoError(t, err)
		assert.Equal(t, "3.0.3", result.Version)
		assert.Equal(t, defaultSourceName, result.SourcePath)
	})

	t.Run("reader", func(t *testing.T) {
		result, err := ParseWithOptions(WithReader(strings.NewReader(testutil.PetstoreJSON)))
		require.NoError(t, err)
		assert.Equal(t, readerSourceName, result.SourcePath)
	})

	t.Run("file reader with source name", func(t *testing.T) {
		path := testutil.WriteTempFile(t, "petstore.yaml", testutil.PetstoreYAML)
		f, err := os.Open(path)
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		result, err := ParseWithOptions(WithReader(f), WithSourceName(path))
		require.NoError(t, err)
		assert.Equal(t, path, result.SourcePath)
		assert.Len(t, result.Document.Paths.Items, 2)
	})
}

func TestParseWithOptions_InvalidInputs(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr string
	}{
		{
			name:    "no input",
			opts:    []Option{WithMaxDepth(10)},
			wantErr: "must specify an input source",
		},
		{
			name:    "two inputs",
			opts:    []Option{WithText("{}"), WithBytes([]byte("{}"))},
			wantErr: "must specify exactly one input source, got WithText, WithBytes",
		},
		{
			name:    "nil bytes",
			opts:    []Option{WithBytes(nil)},
			wantErr: "bytes cannot be nil",
		},
		{
			name:    "nil reader",
			opts:    []Option{WithReader(nil)},
			wantErr: "reader cannot be nil",
		},
		{
			name:    "negative depth",
			opts:    []Option{WithText("{}"), WithMaxDepth(-1)},
			wantErr: "WithMaxDepth",
		},
		{
			name:    "negative alias expansions",
			opts:    []Option{WithText("{}"), WithMaxAliasExpansions(-5)},
			wantErr: "WithMaxAliasExpansions",
		},
		{
			name:    "negative input size",
			opts:    []Option{WithText("{}"), WithMaxInputSize(-1)},
			wantErr: "WithMaxInputSize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseWithOptions(tt.opts...)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, oaserrors.ErrConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseWithOptions_Limits(t *testing.T) {
	aliases := `openapi: 3.0.3
info: {title: t, version: "1"}
paths: {}
x-base: &base {a: 1}
x-one: *base
x-two: *base
x-three: *base
`
	_, err := ParseWithOptions(WithText(aliases), WithMaxAliasExpansions(2))
	var limit *oaserrors.ResourceLimitError
	require.ErrorAs(t, err, &limit)
	assert.Equal(t, "alias_expansions", limit.ResourceType)

	result, err := ParseWithOptions(WithText(aliases), WithMaxAliasExpansions(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"x-base", "x-one", "x-two", "x-three"}, result.Document.Extra.Keys())

	_, err = ParseWithOptions(WithText(testutil.PetstoreJSON), WithMaxDepth(3))
	require.ErrorAs(t, err, &limit)
	assert.Equal(t, "nesting_depth", limit.ResourceType)

	_, err = ParseWithOptions(WithReader(strings.NewReader(testutil.PetstoreJSON)), WithMaxInputSize(64))
	require.ErrorAs(t, err, &limit)
	assert.Equal(t, "input_size", limit.ResourceType)
}

func TestParseWithOptions_SyntaxErrorNamesSource(t *testing.T) {
	_, err := ParseWithOptions(WithText("openapi: [unterminated"), WithSourceName("broken.yaml"))
	var parseErr *oaserrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "broken.yaml", parseErr.Path)
	assert.Contains(t, err.Error(), "broken.yaml")
}

func TestParseWithOptions_DefaultSourceNameIsFormatNeutral(t *testing.T) {
	_, err := ParseWithOptions(WithText(`{"openapi": "3.0.3" "info": {}}`))
	var parseErr *oaserrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "ParseBytes", parseErr.Path)

	result, err := ParseWithOptions(WithReader(strings.NewReader(testutil.PetstoreJSON)))
	require.NoError(t, err)
	assert.Equal(t, "ParseReader", result.SourcePath)
	assert.Equal(t, "json", string(result.SourceFormat))
}

func TestParseWithOptions_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := &recordingLogger{buf: &buf}

	_, err := ParseWithOptions(WithText(testutil.PetstoreJSON), WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "INFO parsed document")
	assert.Contains(t, buf.String(), "DEBUG kept value verbatim")

	buf.Reset()
	_, err = ParseWithOptions(WithText(`{"openapi": "2.0", "info": {"title": "t", "version": "1"}, "paths": {}}`), WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "WARN openapi field is not a semantic version")

	buf.Reset()
	_, err = ParseWithOptions(WithText(`{"openapi": "3.1.0", "info": {"title": "t", "version": "1"}, "paths": {}}`), WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "WARN document is not OpenAPI 3.0")
}

// recordingLogger writes one "LEVEL message" line per call.
type recordingLogger struct {
	buf *bytes.Buffer
}

func (l *recordingLogger) log(level, msg string) {
	l.buf.WriteString(level + " " + msg + "\n")
}

func (l *recordingLogger) Debug(msg string, _ ...any) { l.log("DEBUG", msg) }
func (l *recordingLogger) Info(msg string, _ ...any)  { l.log("INFO", msg) }
func (l *recordingLogger) Warn(msg string, _ ...any)  { l.log("WARN", msg) }
func (l *recordingLogger) Error(msg string, _ ...any) { l.log("ERROR", msg) }
func (l *recordingLogger) With(_ ...any) Logger       { return l }
