package parser

import "github.com/erraggy/oasfidelity/node"

// DecodeStats counts the places where a decode kept input verbatim
// instead of interpreting it.
type DecodeStats struct {
	RawScalars  int // Lenient values that did not parse
	OtherEnums  int // Enumeration literals outside the known vocabulary
	References  int // "$ref" slots
	ExtraFields int // Unrecognized keys kept in extras
}

func (s *DecodeStats) record(e node.Event) {
	switch e.Kind {
	case node.RawScalar:
		s.RawScalars++
	case node.OtherEnum:
		s.OtherEnums++
	case node.Reference:
		s.References++
	case node.ExtraField:
		s.ExtraFields++
	}
}

// DocumentStats contains statistical information about a document
type DocumentStats struct {
	PathCount      int // Number of paths defined
	OperationCount int // Total number of operations across all paths
	SchemaCount    int // Number of component schemas
}

// Stats returns statistics for the document
func (doc *Document) Stats() DocumentStats {
	var stats DocumentStats
	if doc.Paths != nil {
		stats.PathCount = len(doc.Paths.Items)
		for _, item := range doc.Paths.Items {
			if item == nil {
				continue
			}
			for range item.Operations() {
				stats.OperationCount++
			}
		}
	}
	if doc.Components != nil {
		stats.SchemaCount = len(doc.Components.Schemas)
	}
	return stats
}
