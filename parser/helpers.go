package parser

import (
	"github.com/erraggy/oasfidelity/node"
	"github.com/erraggy/oasfidelity/value"
)

// Shorthands for the decoders used throughout the catalogue.
var (
	decodeURL        = node.DecodeLenient(ParseURL)
	decodeEmail      = node.DecodeLenient(ParseEmail)
	decodeVersion    = node.DecodeLenient(ParseVersion)
	decodeMediaRange = node.DecodeLenient(ParseMediaRange)
)

// takeAny consumes a free-form field. A present null is returned as
// value.Null; an absent field as nil.
func takeAny(f *node.Fields, key string) value.Value {
	v, _ := node.Take(f, key)
	return v
}

// finish attaches the remaining keys as extras and returns the record, or
// the first error recorded while decoding its fields.
func finish[T any](f *node.Fields, t *T, extra **value.Map) (*T, error) {
	if err := f.Err(); err != nil {
		return nil, err
	}
	*extra = f.Extras()
	return t, nil
}

func setMap[T node.Encoder](o *node.Object, key string, m map[string]T) {
	if m != nil {
		o.Set(key, node.EncodeMap(m, node.Encode[T]))
	}
}

func setSlice[T node.Encoder](o *node.Object, key string, items []T) {
	if items != nil {
		o.Set(key, node.EncodeSlice(items, node.Encode[T]))
	}
}

func setAny(o *node.Object, key string, v value.Value) {
	if v != nil {
		o.Set(key, value.Clone(v))
	}
}
