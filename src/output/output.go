// Package output formats result envelopes for the terminal. Every
// command renders through exactly one formatter, which returns the
// process exit code derived from the envelope.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/vigilhq/vigil/src/result"
)

// Format selects the output rendering.
type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatMarkdown
)

// Colors for terminal output.
const (
	colorReset   = "\033[0m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorDimCyan = "\033[2;36m"
	colorGray    = "\033[90m"
	colorBold    = "\033[1m"
)

// JSON writes the serialization of the entire envelope — success and
// failure alike — and returns its exit code.
func JSON[T any](w io.Writer, env result.Envelope[T]) int {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		fmt.Fprintf(os.Stderr, "error: encoding output: %v\n", err)
		return 1
	}
	return env.ExitCode()
}

// failureText renders a failure envelope's message and cause for the
// text and markdown formats.
func failureText[T any](w io.Writer, f Format, env result.Envelope[T], color bool) int {
	msg := env.Message
	if f == FormatMarkdown {
		fmt.Fprintf(w, "> **Error**: %s\n", msg)
		if env.Cause != "" {
			fmt.Fprintf(w, ">\n> %s\n", env.Cause)
		}
		return env.ExitCode()
	}

	label := "error:"
	if color {
		label = colorRed + "error:" + colorReset
	}
	fmt.Fprintf(w, "%s %s\n", label, msg)
	if env.Cause != "" {
		fmt.Fprintf(w, "%s\n", Dimmed("  cause: "+env.Cause, color))
	}
	return env.ExitCode()
}

func bold(color bool, s string) string {
	if !color {
		return s
	}
	return colorBold + s + colorReset
}

func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// UseColor returns true if colored output should be used.
// Respects NO_COLOR env, TERM=dumb, and terminal detection.
func UseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal()
}
