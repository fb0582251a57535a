package node

import (
	"github.com/erraggy/oasfidelity/internal/pathutil"
	"github.com/erraggy/oasfidelity/oaserrors"
	"github.com/erraggy/oasfidelity/value"
)

// EventKind classifies a decode event.
type EventKind int

const (
	// RawScalar is a lenient value that did not parse and was kept as text.
	RawScalar EventKind = iota + 1
	// OtherEnum is an enumeration literal outside the known vocabulary.
	OtherEnum
	// Reference is a slot that decoded as a "$ref" reference.
	Reference
	// ExtraField is an unrecognized key kept in a record's extras.
	ExtraField
)

// String returns a short name for the kind.
func (k EventKind) String() string {
	switch k {
	case RawScalar:
		return "raw"
	case OtherEnum:
		return "other"
	case Reference:
		return "reference"
	case ExtraField:
		return "extra"
	default:
		return "unknown"
	}
}

// Event describes one place where the decoder kept input verbatim instead of
// interpreting it.
type Event struct {
	// Path locates the value, e.g. `paths["/pets"].get.operationId`.
	Path string
	Kind EventKind
	// Literal is the raw text, reference token, or extra key involved.
	Literal string
}

// Decoder holds the state of a single decode. It is not safe for
// concurrent use.
type Decoder struct {
	path    *pathutil.PathBuilder
	observe func(Event)
	// pending holds the events of unfinished Attempt calls, innermost last.
	pending [][]Event
}

// NewDecoder returns a Decoder that reports events to observe.
// observe may be nil. Call Release when the decode is finished.
func NewDecoder(observe func(Event)) *Decoder {
	return &Decoder{path: pathutil.Get(), observe: observe}
}

// Release returns the decoder's path buffer to the pool. The decoder must
// not be used afterwards.
func (d *Decoder) Release() {
	pathutil.Put(d.path)
	d.path = nil
	d.pending = nil
}

// Path returns the path of the node currently being decoded.
func (d *Decoder) Path() string {
	return d.path.String()
}

// Report sends an event for the current path to the observer.
func (d *Decoder) Report(kind EventKind, literal string) {
	if d.observe == nil {
		return
	}
	d.emit(Event{Path: d.Path(), Kind: kind, Literal: literal})
}

func (d *Decoder) emit(e Event) {
	if n := len(d.pending); n > 0 {
		d.pending[n-1] = append(d.pending[n-1], e)
		return
	}
	d.observe(e)
}

// Attempt runs fn as a decode that may be discarded. Events reported while fn
// runs reach the observer only if fn succeeds; a failed attempt leaves no
// trace.
func Attempt[T any](d *Decoder, fn func() (T, error)) (T, error) {
	d.pending = append(d.pending, nil)
	out, err := fn()
	n := len(d.pending)
	events := d.pending[n-1]
	d.pending = d.pending[:n-1]
	if err == nil && d.observe != nil {
		for _, e := range events {
			d.emit(e)
		}
	}
	return out, err
}

// Mismatch returns a TypeMismatchError for the current path.
func (d *Decoder) Mismatch(expected string, got value.Value) error {
	return &oaserrors.TypeMismatchError{
		Path:     d.Path(),
		Expected: expected,
		Actual:   value.KindOf(got).String(),
	}
}

// AtKey runs fn with key pushed onto the path.
func AtKey[T any](d *Decoder, key string, fn func() (T, error)) (T, error) {
	d.path.PushKey(key)
	defer d.path.Pop()
	return fn()
}

// AtIndex runs fn with index i pushed onto the path.
func AtIndex[T any](d *Decoder, i int, fn func() (T, error)) (T, error) {
	d.path.PushIndex(i)
	defer d.path.Pop()
	return fn()
}
