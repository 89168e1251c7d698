// Package render turns validated action metadata into markdown fragments for
// the description, inputs and outputs marker regions.
package render

import (
	"fmt"
	"strings"

	"github.com/jingkaihe/gha-docgen/pkg/action"
)

// Fragments holds the rendered text for each marker kind.
type Fragments struct {
	Description string
	Inputs      string
	Outputs     string
}

type renderer interface {
	inputs(inputs []action.Input) string
	outputs(outputs []action.Output) string
}

// Render produces the fragments for a in the given style. The result only
// depends on its arguments.
func Render(a *action.Action, style Style) Fragments {
	r := rendererFor(style)

	f := Fragments{
		Description: NL2MD(strings.TrimSpace(a.Description)),
	}
	if a.HasInputs() {
		f.Inputs = r.inputs(a.Inputs)
	}
	if a.HasOutputs() {
		f.Outputs = r.outputs(a.Outputs)
	}
	return f
}

func rendererFor(style Style) renderer {
	if level := style.HeadingLevel(); level > 0 {
		return sectionRenderer{heading: strings.Repeat("#", level)}
	}
	return tableRenderer{}
}

func defaultValue(in action.Input) string {
	if in.Default == nil {
		return "n/a"
	}
	return "`" + *in.Default + "`"
}

// sectionRenderer emits one heading block per entry.
type sectionRenderer struct {
	heading string
}

func (r sectionRenderer) inputs(inputs []action.Input) string {
	blocks := make([]string, 0, len(inputs))
	for _, in := range inputs {
		required := "`false`"
		if in.Required {
			required = "`true`"
		}

		lines := []string{
			fmt.Sprintf("%s `%s`", r.heading, in.ID),
			"",
			fmt.Sprintf("**Required:** %s  ", required),
		}
		if in.IsDeprecated() {
			lines = append(lines,
				fmt.Sprintf("**Default:** %s  ", defaultValue(in)),
				fmt.Sprintf("**Deprecated:** :warning: %s", NL2Space(strings.TrimSpace(*in.DeprecationMessage))),
			)
		} else {
			lines = append(lines, fmt.Sprintf("**Default:** %s", defaultValue(in)))
		}
		lines = append(lines, "", NL2MD(strings.TrimSpace(in.Description)))

		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

func (r sectionRenderer) outputs(outputs []action.Output) string {
	blocks := make([]string, 0, len(outputs))
	for _, out := range outputs {
		blocks = append(blocks, strings.Join([]string{
			fmt.Sprintf("%s `%s`", r.heading, out.ID),
			"",
			NL2MD(strings.TrimSpace(out.Description)),
		}, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

// tableRenderer emits a single markdown table.
type tableRenderer struct{}

func (tableRenderer) inputs(inputs []action.Input) string {
	rows := []string{
		"| ID | Required | Default | Description |",
		"| :-- | :-- | :-- | :-- |",
	}
	for _, in := range inputs {
		required := ""
		if in.Required {
			required = ":white_check_mark:"
		}

		body := NL2BR(strings.TrimSpace(in.Description))
		if in.IsDeprecated() {
			body += "<br />:warning: **Deprecated:** " + NL2BR(strings.TrimSpace(*in.DeprecationMessage))
		}

		rows = append(rows, tableRow("`"+in.ID+"`", required, defaultValue(in), body))
	}
	return strings.Join(rows, "\n")
}

func (tableRenderer) outputs(outputs []action.Output) string {
	rows := []string{
		"| ID | Description |",
		"| :-- | :-- |",
	}
	for _, out := range outputs {
		rows = append(rows, tableRow("`"+out.ID+"`", NL2BR(strings.TrimSpace(out.Description))))
	}
	return strings.Join(rows, "\n")
}

func tableRow(cells ...string) string {
	for i, c := range cells {
		cells[i] = escapeVerticalBar(c)
	}
	return "| " + strings.Join(cells, " | ") + " |"
}
