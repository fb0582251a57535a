// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

// Package pathutil provides path building utilities used to report where in
// an OpenAPI document a decode failure happened.
//
// The primary type is [PathBuilder], which uses push/pop semantics to build
// paths incrementally without allocating intermediate strings. Decoding
// pushes a segment for every field, map entry and sequence index it enters
// and pops it on the way out, so the full string is only materialized when
// an error is reported.
//
// # PathBuilder Usage
//
// Use [Get] to obtain a pooled PathBuilder, and [Put] to return it:
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//
//	path.Push("components")
//	path.PushKey("Pet")
//	// ... recurse ...
//	path.Pop()
//	path.Pop()
//
// Map keys that are not plain identifiers are rendered in brackets so that
// the path stays unambiguous:
//
//	path.Push("paths")
//	path.PushKey("/pets/{id}") // produces `paths["/pets/{id}"]`
//
// Array indices are supported via [PathBuilder.PushIndex]:
//
//	path.Push("parameters")
//	path.PushIndex(0)  // produces "parameters[0]"
//
// # Reference Builders
//
// The package also provides functions for building JSON Pointer references
// to OpenAPI 3.x components:
//
//	ref := pathutil.SchemaRef("Pet")      // "#/components/schemas/Pet"
package pathutil
