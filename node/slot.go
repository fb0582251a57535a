package node

import "github.com/erraggy/oasfidelity/value"

// RefKey is the mapping key that marks a reference.
const RefKey = "$ref"

// Slot holds either an inline T or a reference token naming a T elsewhere
// in the document. References are never resolved.
type Slot[T any] struct {
	inline    *T
	ref       string
	refExtras *value.Map
	isRef     bool
}

// Inline returns a Slot holding t.
func Inline[T any](t *T) Slot[T] {
	return Slot[T]{inline: t}
}

// Ref returns a Slot holding a reference token.
func Ref[T any](token string) Slot[T] {
	return Slot[T]{ref: token, isRef: true}
}

// IsReference reports whether the slot holds a reference.
func (s Slot[T]) IsReference() bool {
	return s.isRef
}

// Ref returns the reference token.
func (s Slot[T]) Ref() (string, bool) {
	return s.ref, s.isRef
}

// Value returns the inline value.
func (s Slot[T]) Value() (*T, bool) {
	return s.inline, !s.isRef && s.inline != nil
}

// RefExtras returns the keys written next to "$ref", in source order.
// They are kept so the reference encodes back unchanged.
func (s Slot[T]) RefExtras() *value.Map {
	return s.refExtras
}

// EncodeNode implements Encoder.
func (s Slot[T]) EncodeNode() value.Value {
	if !s.isRef {
		if s.inline == nil {
			return value.Null{}
		}
		return encodeAny(s.inline)
	}
	m := value.NewMap()
	m.Set(RefKey, value.String(s.ref))
	for k, v := range s.refExtras.All() {
		if k != RefKey {
			m.Set(k, value.Clone(v))
		}
	}
	return m
}

// Equal reports whether both hold the same reference, or equal inline values.
func (s Slot[T]) Equal(other Slot[T]) bool {
	if s.isRef != other.isRef {
		return false
	}
	if s.isRef {
		return s.ref == other.ref && s.refExtras.Equal(other.refExtras)
	}
	return equalAny(s.inline, other.inline)
}

// DecodeSlot returns a decoder for a slot whose inline form decodes with dec.
// A mapping with a string "$ref" always decodes as a reference; its other
// keys are kept alongside the token and never decoded as T.
func DecodeSlot[T any](dec func(*Decoder, value.Value) (*T, error)) func(*Decoder, value.Value) (Slot[T], error) {
	return func(d *Decoder, v value.Value) (Slot[T], error) {
		if m, ok := value.AsMap(v); ok {
			if token, ok := m.Get(RefKey); ok {
				if s, ok := token.(value.String); ok {
					d.Report(Reference, string(s))
					return Slot[T]{ref: string(s), isRef: true, refExtras: refSiblings(m)}, nil
				}
			}
		}
		t, err := dec(d, v)
		if err != nil {
			return Slot[T]{}, err
		}
		return Inline(t), nil
	}
}

func refSiblings(m *value.Map) *value.Map {
	if m.Len() < 2 {
		return nil
	}
	out := value.NewMap()
	for k, v := range m.All() {
		if k != RefKey {
			out.Set(k, value.Clone(v))
		}
	}
	return out
}
