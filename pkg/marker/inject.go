package marker

import "strings"

// Inject replaces the body of every marker pair of kind k with fragment,
// framed by a single leading and trailing newline. Marker comments and all
// text outside the pairs are kept verbatim; a document without pairs of
// kind k is returned unchanged.
func Inject(doc string, k Kind, fragment string) string {
	pairs := Find(doc, k)
	if len(pairs) == 0 {
		return doc
	}

	var b strings.Builder
	b.Grow(len(doc) + len(pairs)*(len(fragment)+2))

	last := 0
	for _, p := range pairs {
		b.WriteString(doc[last:p.Body.Start])
		b.WriteByte('\n')
		b.WriteString(fragment)
		b.WriteByte('\n')
		last = p.Body.End
	}
	b.WriteString(doc[last:])

	return b.String()
}

// InjectAll injects the fragment of each kind, in Kinds order. Each pass
// scans the output of the previous one. Kinds missing from fragments are
// left untouched.
func InjectAll(doc string, fragments map[Kind]string) string {
	for _, k := range Kinds() {
		fragment, ok := fragments[k]
		if !ok {
			continue
		}
		doc = Inject(doc, k, fragment)
	}
	return doc
}
