package output

import (
	"fmt"
	"io"

	"github.com/vigilhq/vigil/src/api"
	"github.com/vigilhq/vigil/src/result"
)

// MaxDepRows caps the rows shown in text output; the full set is always
// present in JSON output.
const MaxDepRows = 50

// Dependencies renders an organization dependency search page.
func Dependencies(w io.Writer, f Format, env result.Envelope[*api.DependencyPage], color bool) int {
	if f == FormatJSON {
		return JSON(w, env)
	}
	if !env.Ok {
		return failureText(w, f, env, color)
	}

	page := env.Data
	if f == FormatMarkdown {
		fmt.Fprintf(w, "## Dependencies (offset %d, %d rows)\n\n", page.Offset, len(page.Rows))
		fmt.Fprintf(w, "| Ecosystem | Name | Version | Direct | Repository |\n")
		fmt.Fprintf(w, "| --- | --- | --- | --- | --- |\n")
		for _, d := range page.Rows {
			fmt.Fprintf(w, "| %s | %s | %s | %v | %s |\n", d.Ecosystem, d.Name, d.Version, d.Direct, d.Repository)
		}
		if !page.End {
			fmt.Fprintf(w, "\nMore rows available at offset %d.\n", page.Offset+len(page.Rows))
		}
		return 0
	}

	sec := NewSection(w, fmt.Sprintf("Dependencies (%d)", len(page.Rows)), 0, color)
	sec.Row("%-8s%-32s%-14s%-8s%s", "eco", "name", "version", "direct", "repository")

	show := len(page.Rows)
	if show > MaxDepRows {
		show = MaxDepRows
	}
	for i := 0; i < show; i++ {
		d := page.Rows[i]
		direct := ""
		if d.Direct {
			direct = "yes"
		}
		sec.Row("%-8s%-32s%-14s%-8s%s", d.Ecosystem, d.Name, d.Version, direct, d.Repository)
	}
	if len(page.Rows) > MaxDepRows {
		sec.Row("%s", Dimmed(fmt.Sprintf("… and %d more (use --json for the full page)", len(page.Rows)-MaxDepRows), color))
	}
	if !page.End {
		sec.Row("%s", Dimmed(fmt.Sprintf("more rows at offset %d", page.Offset+len(page.Rows)), color))
	}
	sec.Close()
	return 0
}
