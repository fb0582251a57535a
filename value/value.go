package value

import (
	"math"
	"regexp"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindNull is the kind of Null.
	KindNull Kind = iota
	// KindBool is the kind of Bool.
	KindBool
	// KindNumber is the kind of Number.
	KindNumber
	// KindString is the kind of String.
	KindString
	// KindMap is the kind of *Map.
	KindMap
	// KindSeq is the kind of Seq.
	KindSeq
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "boolean",
	KindNumber: "number",
	KindString: "string",
	KindMap:    "object",
	KindSeq:    "array",
}

// String returns the JSON name of the kind ("object", "array", ...).
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is a node of the generic tree.
type Value interface {
	Kind() Kind
	value()
}

// Null is the null value.
type Null struct{}

// Bool is a boolean value.
type Bool bool

// Number is a numeric value held as its decimal literal text.
// Use Int or Float to construct one from a Go number.
type Number string

// String is a string value.
type String string

// Seq is an ordered sequence of values.
type Seq []Value

// Kind implements Value.
func (Null) Kind() Kind { return KindNull }

// Kind implements Value.
func (Bool) Kind() Kind { return KindBool }

// Kind implements Value.
func (Number) Kind() Kind { return KindNumber }

// Kind implements Value.
func (String) Kind() Kind { return KindString }

// Kind implements Value.
func (Seq) Kind() Kind { return KindSeq }

func (Null) value()   {}
func (Bool) value()   {}
func (Number) value() {}
func (String) value() {}
func (Seq) value()    {}

var jsonNumberRegex = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// Int returns the Number for i.
func Int(i int64) Number {
	return Number(strconv.FormatInt(i, 10))
}

// Float returns the Number for f. Non-finite values have no JSON form and
// are returned as 0.
func Float(f float64) Number {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Number("0")
	}
	return Number(strconv.FormatFloat(f, 'g', -1, 64))
}

// Valid reports whether n holds a JSON number literal.
func (n Number) Valid() bool {
	return jsonNumberRegex.MatchString(string(n))
}

// Int64 parses n as an integer.
func (n Number) Int64() (int64, error) {
	return strconv.ParseInt(string(n), 10, 64)
}

// Float64 parses n as a float.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// AsString returns the string held by v.
func AsString(v Value) (string, bool) {
	s, ok := v.(String)
	return string(s), ok
}

// AsBool returns the boolean held by v.
func AsBool(v Value) (bool, bool) {
	b, ok := v.(Bool)
	return bool(b), ok
}

// AsMap returns v as a mapping.
func AsMap(v Value) (*Map, bool) {
	m, ok := v.(*Map)
	return m, ok && m != nil
}

// AsSeq returns v as a sequence.
func AsSeq(v Value) (Seq, bool) {
	s, ok := v.(Seq)
	return s, ok
}

// KindOf returns the kind of v, treating a nil Value as null.
func KindOf(v Value) Kind {
	if v == nil {
		return KindNull
	}
	return v.Kind()
}

// Equal reports whether a and b are structurally equal.
// Mapping key order is ignored; numbers compare by literal text.
func Equal(a, b Value) bool {
	if KindOf(a) != KindOf(b) {
		return false
	}
	switch x := a.(type) {
	case nil, Null:
		return true
	case Bool:
		return x == b.(Bool)
	case Number:
		return x == b.(Number)
	case String:
		return x == b.(String)
	case Seq:
		y := b.(Seq)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case *Map:
		return x.Equal(b.(*Map))
	}
	return false
}

// Clone returns a deep copy of v. The copy shares no mutable state with v.
func Clone(v Value) Value {
	switch x := v.(type) {
	case *Map:
		return x.Clone()
	case Seq:
		if x == nil {
			return Seq(nil)
		}
		out := make(Seq, len(x))
		for i, item := range x {
			out[i] = Clone(item)
		}
		return out
	default:
		// Scalars are immutable.
		return v
	}
}
