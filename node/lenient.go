package node

import (
	"fmt"
	"reflect"

	"github.com/erraggy/oasfidelity/value"
)

// Lenient holds a scalar that parsed as V, or the raw text when it did not.
// String returns the canonical text of the parsed value or the raw text,
// so a Lenient always encodes back to a string.
type Lenient[V fmt.Stringer] struct {
	parsed V
	raw    string
	ok     bool
}

// Parsed returns a Lenient holding v.
func Parsed[V fmt.Stringer](v V) Lenient[V] {
	return Lenient[V]{parsed: v, ok: true}
}

// Raw returns a Lenient holding text that is not a valid V.
func Raw[V fmt.Stringer](text string) Lenient[V] {
	return Lenient[V]{raw: text}
}

// IsParsed reports whether the value parsed as V.
func (l Lenient[V]) IsParsed() bool {
	return l.ok
}

// Get returns the parsed value.
func (l Lenient[V]) Get() (V, bool) {
	return l.parsed, l.ok
}

// Raw returns the text kept for a value that did not parse.
func (l Lenient[V]) Raw() (string, bool) {
	return l.raw, !l.ok
}

// String returns the text the value encodes to.
func (l Lenient[V]) String() string {
	if l.ok {
		return l.parsed.String()
	}
	return l.raw
}

// Equal reports whether both are parsed or both raw, with the same text.
func (l Lenient[V]) Equal(other Lenient[V]) bool {
	return l.ok == other.ok && l.String() == other.String()
}

// EncodeNode implements Encoder.
func (l Lenient[V]) EncodeNode() value.Value {
	return value.String(l.String())
}

// DecodeLenient returns a decoder for string nodes that tries parse first.
// A parse error is not returned; the text is kept raw and reported as a
// RawScalar event. A node that is not a string is a type mismatch.
func DecodeLenient[V fmt.Stringer](parse func(string) (V, error)) func(*Decoder, value.Value) (Lenient[V], error) {
	return func(d *Decoder, v value.Value) (Lenient[V], error) {
		s, ok := value.AsString(v)
		if !ok {
			return Lenient[V]{}, d.Mismatch("string", v)
		}
		parsed, err := parse(s)
		if err != nil {
			d.Report(RawScalar, s)
			return Raw[V](s), nil
		}
		return Parsed(parsed), nil
	}
}

// LenientNode holds a sub-document that decoded as T, or the raw subtree
// when it could not. Fields inside a decoded T keep their own fallbacks;
// only a hard failure (missing required field or type mismatch) degrades
// the whole node.
type LenientNode[T any] struct {
	parsed *T
	raw    value.Value
}

// ParsedNode returns a LenientNode holding t.
func ParsedNode[T any](t *T) LenientNode[T] {
	return LenientNode[T]{parsed: t}
}

// RawNode returns a LenientNode holding an undecodable subtree.
func RawNode[T any](v value.Value) LenientNode[T] {
	return LenientNode[T]{raw: v}
}

// IsParsed reports whether the subtree decoded as T.
func (l LenientNode[T]) IsParsed() bool {
	return l.parsed != nil
}

// Get returns the decoded value.
func (l LenientNode[T]) Get() (*T, bool) {
	return l.parsed, l.parsed != nil
}

// Raw returns the subtree kept when decoding failed.
func (l LenientNode[T]) Raw() (value.Value, bool) {
	return l.raw, l.parsed == nil
}

// RawText returns the compact JSON of the raw subtree, or "" when parsed.
func (l LenientNode[T]) RawText() string {
	if l.parsed != nil {
		return ""
	}
	return value.JSONString(l.raw)
}

// EncodeNode implements Encoder. A raw subtree is written back unchanged.
func (l LenientNode[T]) EncodeNode() value.Value {
	if l.parsed == nil {
		return value.Clone(l.raw)
	}
	return encodeAny(l.parsed)
}

// Equal reports whether both hold equal decoded values or equal raw trees.
func (l LenientNode[T]) Equal(other LenientNode[T]) bool {
	if l.IsParsed() != other.IsParsed() {
		return false
	}
	if !l.IsParsed() {
		return value.Equal(l.raw, other.raw)
	}
	return equalAny(l.parsed, other.parsed)
}

// DecodeLenientNode returns a decoder that tries dec and falls back to the
// raw subtree on any error. The fallback is reported as a RawScalar event
// carrying the subtree's JSON; events from the failed try are dropped.
func DecodeLenientNode[T any](dec func(*Decoder, value.Value) (*T, error)) func(*Decoder, value.Value) (LenientNode[T], error) {
	return func(d *Decoder, v value.Value) (LenientNode[T], error) {
		t, err := Attempt(d, func() (*T, error) { return dec(d, v) })
		if err != nil {
			raw := value.Clone(v)
			d.Report(RawScalar, value.JSONString(raw))
			return RawNode[T](raw), nil
		}
		return ParsedNode(t), nil
	}
}

// encodeAny encodes t when *T implements Encoder.
func encodeAny[T any](t *T) value.Value {
	if e, ok := any(t).(Encoder); ok {
		return e.EncodeNode()
	}
	return value.Null{}
}

func equalAny[T any](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	if _, ok := any(a).(Encoder); ok {
		return value.Equal(encodeAny(a), encodeAny(b))
	}
	return reflect.DeepEqual(a, b)
}
