package node

import (
	"github.com/erraggy/oasfidelity/oaserrors"
	"github.com/erraggy/oasfidelity/value"
)

// Fields decodes the known fields of one mapping. Every accessor consumes its
// key; whatever is left when decoding finishes is returned by Extras.
// The first error is kept and later accessors become no-ops that still
// consume their key.
type Fields struct {
	d     *Decoder
	src   *value.Map
	taken map[string]struct{}
	err   error
}

// Object starts decoding v as a record. v must be a mapping.
func (d *Decoder) Object(v value.Value) (*Fields, error) {
	m, ok := value.AsMap(v)
	if !ok {
		return nil, d.Mismatch("object", v)
	}
	return &Fields{d: d, src: m, taken: make(map[string]struct{}, m.Len())}, nil
}

// Decoder returns the decoder the fields belong to.
func (f *Fields) Decoder() *Decoder {
	return f.d
}

// Fail records err unless an earlier error is already recorded.
func (f *Fields) Fail(err error) {
	if f.err == nil && err != nil {
		f.err = err
	}
}

// Err returns the first error recorded by an accessor.
func (f *Fields) Err() error {
	return f.err
}

// Rest returns the keys not yet consumed, in source order.
func (f *Fields) Rest() []string {
	var out []string
	for k := range f.src.All() {
		if _, done := f.taken[k]; !done {
			out = append(out, k)
		}
	}
	return out
}

// Extras returns the mapping of every key not consumed by an accessor, in
// source order, or nil when there are none. Each key is reported as an
// ExtraField event, unless an error is recorded and the record is about to
// be discarded.
func (f *Fields) Extras() *value.Map {
	var extras *value.Map
	for k, v := range f.src.All() {
		if _, done := f.taken[k]; done {
			continue
		}
		if extras == nil {
			extras = value.NewMap()
		}
		extras.Set(k, value.Clone(v))
		if f.err != nil {
			continue
		}
		f.d.path.PushKey(k)
		f.d.Report(ExtraField, k)
		f.d.path.Pop()
	}
	return extras
}

// lookup consumes key. An explicit null is left in place for optional
// fields, so it ends up in the extras and is written back unchanged.
func (f *Fields) lookup(key string, optional bool) (value.Value, bool) {
	v, ok := f.src.Get(key)
	if !ok {
		return nil, false
	}
	if _, isNull := v.(value.Null); isNull && optional {
		return nil, false
	}
	f.taken[key] = struct{}{}
	return v, true
}

func decodeField[T any](f *Fields, key string, v value.Value, dec func(*Decoder, value.Value) (T, error)) (T, bool) {
	var zero T
	if f.err != nil {
		return zero, false
	}
	out, err := AtKey(f.d, key, func() (T, error) { return dec(f.d, v) })
	if err != nil {
		f.Fail(err)
		return zero, false
	}
	return out, true
}

// Take consumes key and returns its raw value, null included.
func Take(f *Fields, key string) (value.Value, bool) {
	v, ok := f.lookup(key, false)
	if !ok {
		return nil, false
	}
	return value.Clone(v), true
}

// Required decodes key with dec. A missing key records a
// MissingFieldError naming the field.
func Required[T any](f *Fields, key string, dec func(*Decoder, value.Value) (T, error)) T {
	var zero T
	v, ok := f.lookup(key, false)
	if !ok {
		f.Fail(&oaserrors.MissingFieldError{Path: f.d.Path(), Field: key})
		return zero
	}
	out, _ := decodeField(f, key, v, dec)
	return out
}

// Optional decodes key with dec, returning the zero value when the key is
// absent. Use it for fields whose zero value already means "absent", such
// as pointers, maps and slices.
func Optional[T any](f *Fields, key string, dec func(*Decoder, value.Value) (T, error)) T {
	var zero T
	v, ok := f.lookup(key, true)
	if !ok {
		return zero
	}
	out, _ := decodeField(f, key, v, dec)
	return out
}

// OptionalPtr decodes key with dec and returns a pointer to the result, or
// nil when the key is absent.
func OptionalPtr[T any](f *Fields, key string, dec func(*Decoder, value.Value) (T, error)) *T {
	v, ok := f.lookup(key, true)
	if !ok {
		return nil
	}
	out, ok := decodeField(f, key, v, dec)
	if !ok {
		return nil
	}
	return &out
}

// Loose decodes key with dec when the value has the expected shape. When
// dec fails the key is not consumed, so the value is kept verbatim in the
// extras, and the zero value is returned. No error is recorded.
func Loose[T any](f *Fields, key string, dec func(*Decoder, value.Value) (T, error)) T {
	out, _ := loose(f, key, dec)
	return out
}

// LoosePtr is Loose for fields held by pointer.
func LoosePtr[T any](f *Fields, key string, dec func(*Decoder, value.Value) (T, error)) *T {
	out, ok := loose(f, key, dec)
	if !ok {
		return nil
	}
	return &out
}

func loose[T any](f *Fields, key string, dec func(*Decoder, value.Value) (T, error)) (T, bool) {
	var zero T
	v, ok := f.src.Get(key)
	if !ok || f.err != nil {
		return zero, false
	}
	if _, isNull := v.(value.Null); isNull {
		return zero, false
	}
	out, err := Attempt(f.d, func() (T, error) {
		return AtKey(f.d, key, func() (T, error) { return dec(f.d, v) })
	})
	if err != nil {
		return zero, false
	}
	f.taken[key] = struct{}{}
	return out, true
}
