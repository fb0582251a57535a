package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/erraggy/oasfidelity/node"
	"github.com/erraggy/oasfidelity/oaserrors"
	"github.com/erraggy/oasfidelity/value"
)

const (
	// DefaultMaxInputSize is the largest input ParseReader accepts when
	// Parser.MaxInputSize is zero.
	DefaultMaxInputSize int64 = 100 * 1024 * 1024
	// Source names for input that has no file name.
	defaultSourceName = "ParseBytes"
	readerSourceName  = "ParseReader"
)

// Parser decodes OpenAPI 3.0 documents.
//
// A Parser holds only configuration, so one value may be used for many
// documents, concurrently.
type Parser struct {
	// Logger receives a debug line for every value kept verbatim and an info
	// summary per document. Nil means no logging.
	Logger Logger

	// For the limits below, zero selects the default and a negative value
	// disables the check.

	// MaxDepth limits mapping and sequence nesting (0 uses value.DefaultMaxDepth).
	MaxDepth int
	// MaxAliasExpansions limits YAML alias dereferences
	// (0 uses value.DefaultMaxAliasExpansions).
	MaxAliasExpansions int
	// MaxInputSize limits the bytes read by ParseReader
	// (0 uses DefaultMaxInputSize).
	MaxInputSize int64
}

// ParseResult contains a decoded document together with information about
// where it came from and how it was decoded.
type ParseResult struct {
	// SourcePath names the input, for diagnostics
	SourcePath string
	// SourceFormat is the text encoding the input was read as
	SourceFormat value.Format
	// Version is the "openapi" field as written
	Version string
	// Document is the decoded document
	Document *Document
	// Data is the generic tree the document was decoded from
	Data value.Value
	// SourceSize is the input size in bytes
	SourceSize int64
	// Stats counts the values the decoder kept verbatim
	Stats DecodeStats
}

// New creates a new Parser with default settings.
func New() *Parser {
	return &Parser{}
}

// Parse decodes an OpenAPI 3.0 document from JSON or YAML text.
//
// Values that do not match their declared type are kept rather than
// rejected; the only errors are text that is not JSON or YAML
// (*oaserrors.ParseError), a missing required field
// (*oaserrors.MissingFieldError) and a field with an impossible shape
// (*oaserrors.TypeMismatchError).
func Parse(text string) (*Document, error) {
	result, err := New().ParseBytes([]byte(text))
	if err != nil {
		return nil, err
	}
	return result.Document, nil
}

// FromValue decodes a Document from a tree that was produced elsewhere.
func FromValue(v value.Value) (*Document, error) {
	d := node.NewDecoder(nil)
	defer d.Release()
	doc, err := DecodeDocument(d, v)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}
	return doc, nil
}

// ParseReader reads and decodes a document from r.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	data, err := p.readAll(r)
	if err != nil {
		return nil, err
	}
	return p.parse(data, readerSourceName)
}

// readAll reads r up to the configured input size limit.
func (p *Parser) readAll(r io.Reader) ([]byte, error) {
	limit := p.MaxInputSize
	if limit < 0 {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("parser: failed to read data: %w", err)
		}
		return data, nil
	}
	if limit == 0 {
		limit = DefaultMaxInputSize
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "input_size",
			Limit:        limit,
			Message:      "input exceeds maximum size",
		}
	}
	return data, nil
}

// ParseBytes decodes a document from data.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	return p.parse(data, defaultSourceName)
}

func (p *Parser) logger() Logger {
	if p.Logger == nil {
		return NopLogger{}
	}
	return p.Logger
}

func (p *Parser) parse(data []byte, sourceName string) (*ParseResult, error) {
	log := p.logger().With("source", sourceName)
	result := &ParseResult{
		SourcePath:   sourceName,
		SourceFormat: value.DetectFormat(data),
		SourceSize:   int64(len(data)),
	}

	limits := value.Limits{MaxDepth: p.MaxDepth, MaxAliasExpansions: p.MaxAliasExpansions}
	tree, err := value.Decode(data, limits)
	if err != nil {
		var pe *oaserrors.ParseError
		if errors.As(err, &pe) && pe.Path == "" {
			pe.Path = sourceName
		}
		log.Error("failed to decode input", "format", result.SourceFormat, "error", err)
		return nil, fmt.Errorf("parser: %w", err)
	}
	result.Data = tree

	logEvent := eventLogger(log)
	d := node.NewDecoder(func(e node.Event) {
		result.Stats.record(e)
		if logEvent != nil {
			logEvent(e)
		}
	})
	defer d.Release()
	doc, err := DecodeDocument(d, tree)
	if err != nil {
		log.Error("failed to decode document", "error", err)
		return nil, fmt.Errorf("parser: %w", err)
	}
	result.Document = doc
	result.Version = doc.OpenAPI.String()

	if v, ok := doc.OpenAPI.Get(); !ok {
		log.Warn("openapi field is not a semantic version", "openapi", result.Version)
	} else if v.Major != 3 || v.Minor != 0 {
		log.Warn("document is not OpenAPI 3.0; fields outside 3.0 are kept as extras", "openapi", result.Version)
	}

	log.Info("parsed document",
		"format", result.SourceFormat,
		"openapi", result.Version,
		"size", result.SourceSize,
		"raw", result.Stats.RawScalars,
		"other_enums", result.Stats.OtherEnums,
		"references", result.Stats.References,
		"extras", result.Stats.ExtraFields,
	)
	return result, nil
}
