package parser

import (
	"fmt"
	"io"

	"github.com/erraggy/oasfidelity/internal/options"
	"github.com/erraggy/oasfidelity/oaserrors"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	text   *string
	bytes  []byte
	reader io.Reader

	logger Logger

	// Resource limits (0 means use default)
	maxDepth           int
	maxAliasExpansions int
	maxInputSize       int64

	// Source identification
	sourceName *string // Override SourcePath in the result
}

// ParseWithOptions parses an OpenAPI document using functional options.
// This provides a flexible, extensible API that combines input source selection
// and configuration in a single function call.
//
// Example:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithBytes(data),
//	    parser.WithSourceName("openapi.yaml"),
//	    parser.WithMaxDepth(200),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", err)
	}

	p := &Parser{
		Logger:             cfg.logger,
		MaxDepth:           cfg.maxDepth,
		MaxAliasExpansions: cfg.maxAliasExpansions,
		MaxInputSize:       cfg.maxInputSize,
	}

	// Route to appropriate parsing method based on input source
	var data []byte
	name := defaultSourceName
	switch {
	case cfg.text != nil:
		data = []byte(*cfg.text)
	case cfg.bytes != nil:
		data = cfg.bytes
	default:
		data, err = p.readAll(cfg.reader)
		if err != nil {
			return nil, err
		}
		name = readerSourceName
	}

	if cfg.sourceName != nil {
		name = *cfg.sourceName
	}
	return p.parse(data, name)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate exactly one input source is specified
	if err := options.ValidateSingleInputSource(
		options.InputSource{Option: "WithText", Set: cfg.text != nil},
		options.InputSource{Option: "WithBytes", Set: cfg.bytes != nil},
		options.InputSource{Option: "WithReader", Set: cfg.reader != nil},
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithText specifies document text as the input source
func WithText(text string) Option {
	return func(cfg *parseConfig) error {
		cfg.text = &text
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return &oaserrors.ConfigError{Option: "WithBytes", Message: "bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return &oaserrors.ConfigError{Option: "WithReader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithLogger sets a structured logger for debug output during parsing.
// By default, no logging is performed (nil logger).
//
// The logger interface is compatible with log/slog, zap, and zerolog.
// Use NewSlogAdapter to wrap a *slog.Logger.
//
// Example:
//
//	logger := parser.NewSlogAdapter(slog.Default())
//	result, err := parser.ParseWithOptions(
//	    parser.WithBytes(data),
//	    parser.WithLogger(logger),
//	)
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithMaxDepth sets the maximum nesting of mappings and sequences.
// Default: value.DefaultMaxDepth (1000)
func WithMaxDepth(n int) Option {
	return func(cfg *parseConfig) error {
		if err := options.ValidateNonNegative("WithMaxDepth", n); err != nil {
			return err
		}
		cfg.maxDepth = n
		return nil
	}
}

// WithMaxAliasExpansions sets the maximum number of YAML alias dereferences,
// guarding against alias bombs.
// Default: value.DefaultMaxAliasExpansions (10000)
func WithMaxAliasExpansions(n int) Option {
	return func(cfg *parseConfig) error {
		if err := options.ValidateNonNegative("WithMaxAliasExpansions", n); err != nil {
			return err
		}
		cfg.maxAliasExpansions = n
		return nil
	}
}

// WithMaxInputSize sets the maximum number of bytes read from a reader.
// Default: DefaultMaxInputSize (100 MiB)
func WithMaxInputSize(n int64) Option {
	return func(cfg *parseConfig) error {
		if err := options.ValidateNonNegative("WithMaxInputSize", n); err != nil {
			return err
		}
		cfg.maxInputSize = n
		return nil
	}
}

// WithSourceName sets the name reported in ParseResult.SourcePath and in
// syntax errors, typically the file the text came from.
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		cfg.sourceName = &name
		return nil
	}
}
