package pathutil

import (
	"strconv"
	"strings"
)

// PathBuilder provides efficient incremental path construction.
// Uses push/pop semantics to avoid allocations during traversal.
// The full string is only materialized when String() is called.
type PathBuilder struct {
	segments []string
	length   int // Pre-calculated length for String() allocation
}

// Push adds a segment to the path.
func (p *PathBuilder) Push(segment string) {
	p.segments = append(p.segments, segment)
	if len(p.segments) > 1 && !isBracket(segment) {
		p.length++ // For dot separator
	}
	p.length += len(segment)
}

// PushKey adds a map key segment. Plain identifiers are pushed as-is;
// anything else is quoted in brackets: `["/pets/{id}"]`.
func (p *PathBuilder) PushKey(key string) {
	if isPlainKey(key) {
		p.Push(key)
		return
	}
	p.Push("[" + strconv.Quote(key) + "]")
}

// PushIndex adds an array index segment: "[0]", "[1]", etc.
func (p *PathBuilder) PushIndex(i int) {
	p.Push("[" + strconv.Itoa(i) + "]")
}

// Pop removes the last segment.
func (p *PathBuilder) Pop() {
	if len(p.segments) == 0 {
		return
	}
	last := p.segments[len(p.segments)-1]
	p.segments = p.segments[:len(p.segments)-1]
	p.length -= len(last)
	// Remove dot separator if this wasn't the first segment and wasn't a bracket
	if len(p.segments) > 0 && !isBracket(last) {
		p.length--
	}
}

// Len returns the number of segments currently on the path.
func (p *PathBuilder) Len() int {
	return len(p.segments)
}

// Reset clears the builder for reuse.
func (p *PathBuilder) Reset() {
	p.segments = p.segments[:0]
	p.length = 0
}

// String materializes the full path. Only call when the path is needed.
func (p *PathBuilder) String() string {
	if len(p.segments) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(p.length)
	b.WriteString(p.segments[0])
	for _, seg := range p.segments[1:] {
		if !isBracket(seg) {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

func isBracket(seg string) bool {
	return len(seg) > 0 && seg[0] == '['
}

// isPlainKey reports whether key can be rendered without brackets.
func isPlainKey(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '_', c == '-', c == '$':
		default:
			return false
		}
	}
	return true
}
