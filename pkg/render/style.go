package render

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Style selects the shape of the generated inputs and outputs fragments.
type Style string

// Available styles.
const (
	StyleSectionH1 Style = "section:h1"
	StyleSectionH2 Style = "section:h2"
	StyleSectionH3 Style = "section:h3"
	StyleSectionH4 Style = "section:h4"
	StyleSectionH5 Style = "section:h5"
	StyleSectionH6 Style = "section:h6"
	StyleTable     Style = "table"
)

// DefaultStyle is used when no style is configured.
const DefaultStyle = StyleSectionH3

// Styles lists every valid style.
var Styles = []Style{
	StyleSectionH1,
	StyleSectionH2,
	StyleSectionH3,
	StyleSectionH4,
	StyleSectionH5,
	StyleSectionH6,
	StyleTable,
}

// ParseStyle validates s against the closed set of styles.
func ParseStyle(s string) (Style, error) {
	for _, style := range Styles {
		if string(style) == s {
			return style, nil
		}
	}

	quoted := make([]string, len(Styles))
	for i, style := range Styles {
		quoted[i] = fmt.Sprintf("%q", style)
	}
	return "", errors.Errorf("invalid style %q, must be one of: %s", s, strings.Join(quoted, ", "))
}

// HeadingLevel returns N for section:hN styles and 0 otherwise.
func (s Style) HeadingLevel() int {
	for i, style := range Styles[:6] {
		if s == style {
			return i + 1
		}
	}
	return 0
}

// IsSection reports whether s is one of the section:hN styles.
func (s Style) IsSection() bool {
	return s.HeadingLevel() > 0
}

func (s Style) String() string {
	return string(s)
}
