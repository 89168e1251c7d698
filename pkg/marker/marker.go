// Package marker locates and rewrites the gha-* marker comment regions of a
// document:
//
//	<!-- gha-inputs-start -->
//	...generated content...
//	<!-- gha-inputs-end -->
//
// Markers tolerate any whitespace between the comment delimiters and the
// marker name. Nothing else about the document is interpreted.
package marker

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind identifies a family of marker pairs.
type Kind string

// Marker kinds, in the order they are injected.
const (
	KindDescription Kind = "description"
	KindInputs      Kind = "inputs"
	KindOutputs     Kind = "outputs"
)

// Kinds returns every marker kind in injection order.
func Kinds() []Kind {
	return []Kind{KindDescription, KindInputs, KindOutputs}
}

// StartName is the marker name of the opening comment, e.g. gha-inputs-start.
func (k Kind) StartName() string {
	return "gha-" + string(k) + "-start"
}

// EndName is the marker name of the closing comment, e.g. gha-inputs-end.
func (k Kind) EndName() string {
	return "gha-" + string(k) + "-end"
}

// Range is a half-open byte range [Start, End) of a document.
type Range struct {
	Start int
	End   int
}

// Pair is one located marker region.
type Pair struct {
	Open  Range
	Body  Range
	Close Range
}

const (
	commentOpen  = "<!--"
	commentClose = "-->"
)

// Find returns the marker pairs of kind k in doc, scanning left to right.
// Each pair runs from an opening comment to the nearest closing comment after
// it; pairs never overlap. An opening comment without a closing comment after
// it ends the scan.
func Find(doc string, k Kind) []Pair {
	var pairs []Pair

	for pos := 0; ; {
		open, ok := findComment(doc, pos, k.StartName())
		if !ok {
			return pairs
		}
		closing, ok := findComment(doc, open.End, k.EndName())
		if !ok {
			return pairs
		}

		pairs = append(pairs, Pair{
			Open:  open,
			Body:  Range{Start: open.End, End: closing.Start},
			Close: closing,
		})
		pos = closing.End
	}
}

// findComment returns the first comment at or after from that carries name.
func findComment(doc string, from int, name string) (Range, bool) {
	for from <= len(doc) {
		i := strings.Index(doc[from:], commentOpen)
		if i < 0 {
			return Range{}, false
		}
		start := from + i
		if end, ok := matchComment(doc, start, name); ok {
			return Range{Start: start, End: end}, true
		}
		from = start + 1
	}
	return Range{}, false
}

// matchComment matches `<!--`, optional whitespace, name, optional
// whitespace and `-->` at offset i, returning the offset just past the match.
func matchComment(doc string, i int, name string) (int, bool) {
	if !strings.HasPrefix(doc[i:], commentOpen) {
		return 0, false
	}
	j := skipSpace(doc, i+len(commentOpen))
	if !strings.HasPrefix(doc[j:], name) {
		return 0, false
	}
	j = skipSpace(doc, j+len(name))
	if !strings.HasPrefix(doc[j:], commentClose) {
		return 0, false
	}
	return j + len(commentClose), true
}

func skipSpace(doc string, i int) int {
	for i < len(doc) {
		r, size := utf8.DecodeRuneInString(doc[i:])
		if !isSpace(r) {
			break
		}
		i += size
	}
	return i
}

// isSpace matches the ECMAScript whitespace and line terminator set, which
// adds U+FEFF to and drops U+0085 from unicode.IsSpace.
func isSpace(r rune) bool {
	if r == '\ufeff' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}
