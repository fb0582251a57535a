// Package oasfidelity reads and writes OpenAPI 3.0 documents without losing
// anything the source text contained.
//
// Real-world documents are often written by hand or by tools that do not
// follow the specification closely. Instead of rejecting such documents, or
// reading them into an untyped tree, oasfidelity decodes every field into a
// typed model and keeps whatever does not fit next to it:
//
//   - A scalar with a semantic type (URL, email, version, media range) that
//     does not parse is kept as raw text.
//   - An enumerated field keeps literals outside its vocabulary.
//   - A field that may hold a "$ref" keeps the reference token, and any keys
//     written next to it, without resolving it.
//   - Every node keeps its unrecognized fields, vendor extensions included,
//     and writes them back when the document is encoded.
//
// # Packages
//
//   - parser: the document model, Parse and the ToText/ToValue encoders
//   - node: the generic building blocks (Enum, Lenient, Slot and the record
//     decoder) the model is assembled from
//   - value: the generic JSON/YAML tree and its text codecs
//   - oaserrors: structured error types for errors.Is and errors.As
//
// # Quick Start
//
//	import "github.com/erraggy/oasfidelity/parser"
//
//	doc, err := parser.Parse(text)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for path, item := range doc.Paths.Items {
//		for method, op := range item.Operations() {
//			fmt.Println(strings.ToUpper(method), path)
//		}
//	}
//	fmt.Println(parser.ToText(doc))
//
// Decoding fails only when the text is not JSON or YAML, a required field is
// missing, or a field has a shape that cannot be navigated; the error names
// the path of the offending field. Encoding never fails.
//
// Round trips are stable: for any document doc returned by Parse,
// Parse(ToText(doc)) returns a document equal to doc.
package oasfidelity
