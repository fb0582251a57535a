package node

import (
	"slices"

	"github.com/erraggy/oasfidelity/value"
)

// DecodeString decodes a string node.
func DecodeString(d *Decoder, v value.Value) (string, error) {
	s, ok := value.AsString(v)
	if !ok {
		return "", d.Mismatch("string", v)
	}
	return s, nil
}

// DecodeBool decodes a boolean node.
func DecodeBool(d *Decoder, v value.Value) (bool, error) {
	b, ok := value.AsBool(v)
	if !ok {
		return false, d.Mismatch("boolean", v)
	}
	return b, nil
}

// DecodeAny accepts any node and returns an independent copy of it.
func DecodeAny(_ *Decoder, v value.Value) (value.Value, error) {
	return value.Clone(v), nil
}

// DecodeStringSlice decodes a sequence of strings.
func DecodeStringSlice(d *Decoder, v value.Value) ([]string, error) {
	return DecodeSlice(DecodeString)(d, v)
}

// DecodeSlice returns a decoder for a sequence whose items decode with dec.
// A present but empty sequence decodes to a non-nil empty slice.
func DecodeSlice[T any](dec func(*Decoder, value.Value) (T, error)) func(*Decoder, value.Value) ([]T, error) {
	return func(d *Decoder, v value.Value) ([]T, error) {
		seq, ok := value.AsSeq(v)
		if !ok {
			return nil, d.Mismatch("array", v)
		}
		out := make([]T, 0, len(seq))
		for i, item := range seq {
			t, err := AtIndex(d, i, func() (T, error) { return dec(d, item) })
			if err != nil {
				return nil, err
			}
			out = append(out, t)
		}
		return out, nil
	}
}

// DecodeMap returns a decoder for a mapping whose values decode with dec.
// A present but empty mapping decodes to a non-nil empty map.
func DecodeMap[T any](dec func(*Decoder, value.Value) (T, error)) func(*Decoder, value.Value) (map[string]T, error) {
	return func(d *Decoder, v value.Value) (map[string]T, error) {
		m, ok := value.AsMap(v)
		if !ok {
			return nil, d.Mismatch("object", v)
		}
		out := make(map[string]T, m.Len())
		for k, item := range m.All() {
			t, err := AtKey(d, k, func() (T, error) { return dec(d, item) })
			if err != nil {
				return nil, err
			}
			out[k] = t
		}
		return out, nil
	}
}

// Encoder is implemented by every document type.
type Encoder interface {
	// EncodeNode returns the tree form of the receiver.
	EncodeNode() value.Value
}

// EncodeSlice encodes each item with enc.
func EncodeSlice[T any](items []T, enc func(T) value.Value) value.Seq {
	out := make(value.Seq, 0, len(items))
	for _, item := range items {
		out = append(out, enc(item))
	}
	return out
}

// EncodeMap encodes each entry with enc. Keys are written in sorted order.
func EncodeMap[T any](m map[string]T, enc func(T) value.Value) *value.Map {
	out := value.NewMap()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		out.Set(k, enc(m[k]))
	}
	return out
}

// EncodeStrings encodes a string slice.
func EncodeStrings(items []string) value.Seq {
	return EncodeSlice(items, func(s string) value.Value { return value.String(s) })
}

// Encode calls EncodeNode on e. It adapts document types for use with
// EncodeSlice and EncodeMap.
func Encode[T Encoder](e T) value.Value {
	return e.EncodeNode()
}
