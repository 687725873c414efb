package output

import (
	"fmt"
	"io"

	"github.com/vigilhq/vigil/src/api"
	"github.com/vigilhq/vigil/src/result"
)

// Quota renders the organization quota lookup.
func Quota(w io.Writer, f Format, env result.Envelope[*api.Quota], color bool) int {
	if f == FormatJSON {
		return JSON(w, env)
	}
	if !env.Ok {
		return failureText(w, f, env, color)
	}

	q := env.Data
	if f == FormatMarkdown {
		fmt.Fprintf(w, "## Quota (%s plan)\n\n", q.Plan)
		fmt.Fprintf(w, "| Resource | Used | Limit |\n| --- | --- | --- |\n")
		fmt.Fprintf(w, "| scans | %d | %d |\n", q.ScansUsed, q.ScansLimit)
		fmt.Fprintf(w, "| seats | %d | %d |\n", q.SeatsUsed, q.SeatsLimit)
		if q.PeriodEnd != "" {
			fmt.Fprintf(w, "\nPeriod ends %s.\n", q.PeriodEnd)
		}
		return 0
	}

	sec := NewSection(w, "Quota", 0, color)
	sec.Row("%-16s%s", "plan", bold(color, q.Plan))
	sec.Row("%-16s%d / %d %s", "scans", q.ScansUsed, q.ScansLimit, usageIcon(q.ScansUsed, q.ScansLimit, color))
	sec.Row("%-16s%d / %d %s", "seats", q.SeatsUsed, q.SeatsLimit, usageIcon(q.SeatsUsed, q.SeatsLimit, color))
	if q.PeriodEnd != "" {
		sec.Row("%-16s%s", "period ends", Dimmed(q.PeriodEnd, color))
	}
	sec.Close()
	return 0
}

// usageIcon flags exhausted quota rows.
func usageIcon(used, limit int, color bool) string {
	if limit > 0 && used >= limit {
		return StatusIcon("failed", color)
	}
	return StatusIcon("success", color)
}

// Policy renders the organization security policy rules.
func Policy(w io.Writer, f Format, env result.Envelope[*api.SecurityPolicy], color bool) int {
	if f == FormatJSON {
		return JSON(w, env)
	}
	if !env.Ok {
		return failureText(w, f, env, color)
	}

	rules := env.Data.Rules
	if f == FormatMarkdown {
		fmt.Fprintf(w, "## Security policy (%d rules)\n\n", len(rules))
		fmt.Fprintf(w, "| Rule | Category | Action |\n| --- | --- | --- |\n")
		for _, r := range rules {
			fmt.Fprintf(w, "| %s | %s | %s |\n", r.Name, r.Category, r.Action)
		}
		return 0
	}

	sec := NewSection(w, fmt.Sprintf("Security policy (%d)", len(rules)), 0, color)
	sec.Row("%-32s%-16s%s", "rule", "category", "action")
	for _, r := range rules {
		sec.Row("%-32s%-16s%s", r.Name, r.Category, actionTag(r.Action, color))
	}
	sec.Close()
	return 0
}

// actionTag colors the policy action by severity of its effect.
func actionTag(action string, color bool) string {
	if !color {
		return action
	}
	switch action {
	case "error":
		return colorRed + action + colorReset
	case "warn":
		return colorYellow + action + colorReset
	case "ignore":
		return colorGray + action + colorReset
	default:
		return action
	}
}
