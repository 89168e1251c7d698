// Package docgen ties the pieces together: it loads and validates action
// metadata, renders the fragments once, and injects them into every target
// document.
package docgen

import (
	"github.com/jingkaihe/gha-docgen/pkg/marker"
	"github.com/jingkaihe/gha-docgen/pkg/render"
)

// Generate injects f into doc. Description markers are processed first,
// then inputs, then outputs, each pass scanning the previous pass's output.
func Generate(doc string, f render.Fragments) string {
	return marker.InjectAll(doc, map[marker.Kind]string{
		marker.KindDescription: f.Description,
		marker.KindInputs:      f.Inputs,
		marker.KindOutputs:     f.Outputs,
	})
}

// CountMarkers returns the number of marker pairs of any kind in doc.
func CountMarkers(doc string) int {
	n := 0
	for _, k := range marker.Kinds() {
		n += len(marker.Find(doc, k))
	}
	return n
}
