package node

import "github.com/erraggy/oasfidelity/value"

// Object builds the mapping for a record. Known fields are set in the order
// they are declared, then AddExtras appends the unrecognized fields.
type Object struct {
	m *value.Map
}

// NewObject returns an empty builder.
func NewObject() *Object {
	return &Object{m: value.NewMap()}
}

// Set stores v under key, replacing any earlier value. A nil v is skipped.
func (o *Object) Set(key string, v value.Value) {
	if v == nil {
		return
	}
	o.m.Set(key, v)
}

// String stores *s under key when s is non-nil.
func (o *Object) String(key string, s *string) {
	if s != nil {
		o.m.Set(key, value.String(*s))
	}
}

// Bool stores *b under key when b is non-nil.
func (o *Object) Bool(key string, b *bool) {
	if b != nil {
		o.m.Set(key, value.Bool(*b))
	}
}

// Strings stores items under key when items is non-nil.
func (o *Object) Strings(key string, items []string) {
	if items != nil {
		o.m.Set(key, EncodeStrings(items))
	}
}

// AddExtras appends every entry of extras. Keys already set by a known
// field are not overwritten.
func (o *Object) AddExtras(extras *value.Map) {
	for k, v := range extras.All() {
		if !o.m.Has(k) {
			o.m.Set(k, value.Clone(v))
		}
	}
}

// Build returns the finished mapping.
func (o *Object) Build() *value.Map {
	return o.m
}
