// Package node provides the building blocks that OpenAPI document types are
// assembled from.
//
// Each building block tolerates one kind of deviation from the nominal
// document shape without failing the decode:
//
//   - [Enum] keeps literals outside its vocabulary as "other" values.
//   - [Lenient] keeps scalars that do not parse as their semantic type as
//     raw text; [LenientNode] does the same for a whole sub-document.
//   - [Slot] holds either an inline value or a "$ref" reference.
//   - [Fields] decodes a mapping field by field and hands back every key it
//     did not recognize as extras, so unknown content is preserved.
//
// A decode runs under a [Decoder], which tracks the path of the node being
// decoded for error messages and reports each fallback to an optional
// observer. Decoding fails only when a required field is missing
// ([oaserrors.MissingFieldError]) or a field has a shape that has no
// fallback ([oaserrors.TypeMismatchError]).
//
// Encoding goes the other way through [Encoder] and the [Object] builder and
// never fails.
package node
