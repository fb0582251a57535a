// Package value provides the generic tree value that OpenAPI documents are
// decoded from and encoded to.
//
// A [Value] is one of [Null], [Bool], [Number], [String], [Seq] or *[Map].
// The set is closed: no other type implements Value. Maps keep the order in
// which keys were first seen, numbers keep their literal text, and the whole
// tree can be produced from JSON or YAML and written back out as either.
//
// # Decoding
//
//	v, err := value.Decode(data, value.Limits{})
//
// [Decode] picks JSON when the first non-space byte is '{' or '[' and YAML
// otherwise. JSON is read token by token so key order survives; YAML is read
// through a yaml.Node tree, with aliases expanded and merge keys applied.
//
// # Encoding
//
// [MarshalJSON] and [AppendJSON] never fail. [MarshalYAML] goes through the
// YAML encoder and reports its errors.
//
// # Equality
//
// [Equal] is structural. Mapping key order is not significant; numbers are
// compared by their literal text.
package value
