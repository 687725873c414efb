package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/vigilhq/vigil/src/result"
	"github.com/vigilhq/vigil/src/scan"
)

// SecretsReport renders a local secrets scan. A clean tree exits 0;
// any finding exits 1.
func SecretsReport(w io.Writer, f Format, env result.Envelope[*scan.Report], color bool) int {
	if f == FormatJSON {
		code := JSON(w, env)
		if code == 0 && len(env.Data.Findings) > 0 {
			code = 1
		}
		return code
	}
	if !env.Ok {
		return failureText(w, f, env, color)
	}

	report := env.Data
	if f == FormatMarkdown {
		fmt.Fprintf(w, "## Secrets scan\n\n%d files scanned, %d findings.\n", report.FilesScanned, len(report.Findings))
		if len(report.Findings) > 0 {
			fmt.Fprintf(w, "\n| File | Line | Rule |\n| --- | --- | --- |\n")
			for _, fd := range report.Findings {
				fmt.Fprintf(w, "| %s | %d | %s |\n", fd.File, fd.Line, fd.RuleID)
			}
			return 1
		}
		return 0
	}

	// Group findings by file.
	byFile := map[string][]scan.Finding{}
	for _, fd := range report.Findings {
		byFile[fd.File] = append(byFile[fd.File], fd)
	}
	files := make([]string, 0, len(byFile))
	for file := range byFile {
		files = append(files, file)
	}
	sort.Strings(files)

	for _, file := range files {
		ff := byFile[file]
		sort.Slice(ff, func(i, j int) bool { return ff[i].Line < ff[j].Line })

		fmt.Fprintf(w, "\n%s\n", bold(color, file))
		for _, fd := range ff {
			line := fmt.Sprintf("%d", fd.Line)
			fmt.Fprintf(w, "  %s %s %s\n", Dimmed(line, color), secretTag(color), fd.Description+" ("+fd.RuleID+")")
		}
	}

	status := "success"
	if len(report.Findings) > 0 {
		status = "failed"
	}
	fmt.Fprintf(w, "\n%s %d files scanned, %d findings\n", StatusIcon(status, color), report.FilesScanned, len(report.Findings))

	if len(report.Findings) > 0 {
		return 1
	}
	return 0
}

func secretTag(color bool) string {
	if color {
		return colorRed + "SECRET" + colorReset
	}
	return "SECRET"
}
