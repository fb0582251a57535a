// Package parser decodes OpenAPI 3.0 documents into a typed tree that keeps
// everything the source contained, and encodes the tree back to text.
//
// # Quick Start
//
//	doc, err := parser.Parse(text)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(doc.Info.Title)
//	out := parser.ToText(doc)
//
// For more control, use ParseWithOptions or a Parser:
//
//	result, err := parser.ParseWithOptions(
//		parser.WithBytes(data),
//		parser.WithSourceName("openapi.yaml"),
//		parser.WithLogger(parser.NewSlogAdapter(slog.Default())),
//	)
//
// # Fidelity
//
// Decoding never rejects a document for what it says, only for its shape:
//
//   - Scalars with a semantic type (URL, Email, Version, MediaRange) that
//     do not parse are kept as raw text in a node.Lenient.
//   - Enumerated fields (parameter location, style, schema type and format,
//     security scheme type) keep literals outside their vocabulary.
//   - Fields that may be a "$ref" are node.Slot values; a "$ref" is never
//     resolved, and keys written next to it are kept.
//   - Every record keeps unrecognized fields, "x-" extensions included, in
//     its Extra map and writes them back after the known fields.
//
// The only decode errors are text that is not JSON or YAML
// (*oaserrors.ParseError), a missing required field
// (*oaserrors.MissingFieldError) and a field whose shape has no fallback
// (*oaserrors.TypeMismatchError); each names the path of the offending field.
// Encoding with ToValue, ToText and ToTextIndent never fails.
//
// For any parsed document, Parse(ToText(doc)) produces an equal document.
//
// # Concurrency
//
// Documents are plain values. They are safe for concurrent reads; use
// Document.Clone to get an independent copy before modifying one.
package parser
