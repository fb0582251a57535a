package node

import "github.com/erraggy/oasfidelity/value"

// Vocabulary is a closed set of string literals. IsKnown reports whether the
// receiver is one of them.
type Vocabulary interface {
	~string
	IsKnown() bool
}

// Enum is a string drawn from the vocabulary K, or any other literal.
// The literal is kept exactly as written, so String always reproduces the
// source text. The zero Enum holds the empty literal.
type Enum[K Vocabulary] struct {
	lit string
}

// EnumOf returns the Enum holding k.
func EnumOf[K Vocabulary](k K) Enum[K] {
	return Enum[K]{lit: string(k)}
}

// ParseEnum returns the Enum for a literal, known or not.
func ParseEnum[K Vocabulary](lit string) Enum[K] {
	return Enum[K]{lit: lit}
}

// Known returns the vocabulary member, if the literal is one.
func (e Enum[K]) Known() (K, bool) {
	k := K(e.lit)
	if k.IsKnown() {
		return k, true
	}
	return "", false
}

// Other returns the literal when it is outside the vocabulary.
func (e Enum[K]) Other() (string, bool) {
	if K(e.lit).IsKnown() {
		return "", false
	}
	return e.lit, true
}

// Is reports whether e holds k.
func (e Enum[K]) Is(k K) bool {
	return e.lit == string(k)
}

// String returns the literal.
func (e Enum[K]) String() string {
	return e.lit
}

// Equal reports whether both hold the same literal.
func (e Enum[K]) Equal(other Enum[K]) bool {
	return e.lit == other.lit
}

// EncodeNode implements Encoder.
func (e Enum[K]) EncodeNode() value.Value {
	return value.String(e.lit)
}

// DecodeEnum decodes a string node into an Enum. It fails only when the
// node is not a string; literals outside K are kept and reported as
// OtherEnum events.
func DecodeEnum[K Vocabulary](d *Decoder, v value.Value) (Enum[K], error) {
	s, ok := value.AsString(v)
	if !ok {
		return Enum[K]{}, d.Mismatch("string", v)
	}
	e := Enum[K]{lit: s}
	if !K(s).IsKnown() {
		d.Report(OtherEnum, s)
	}
	return e, nil
}
