package render

import "strings"

// Line breaks are recognised in all three conventions.
var (
	nl2space = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")
	nl2md    = strings.NewReplacer("\r\n", "  \n", "\r", "  \n", "\n", "  \n")
	nl2br    = strings.NewReplacer("\r\n", "<br />", "\r", "<br />", "\n", "<br />")
)

// NL2Space replaces every line break with a single space.
func NL2Space(s string) string {
	return nl2space.Replace(s)
}

// NL2MD turns every line break into a markdown hard line break.
func NL2MD(s string) string {
	return nl2md.Replace(s)
}

// NL2BR replaces every line break with an HTML <br /> tag.
func NL2BR(s string) string {
	return nl2br.Replace(s)
}

// escapeVerticalBar keeps cell content from splitting a markdown table row.
func escapeVerticalBar(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
