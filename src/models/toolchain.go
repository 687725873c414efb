package models

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Minimum tool versions for the wasm-bundle build.
var toolMinimums = map[string]string{
	"cargo":     "1.75.0",
	"wasm-pack": "0.12.0",
}

// CheckToolchain verifies cargo, wasm-pack, and wasm-opt are installed
// and recent enough. wasm-opt (binaryen) does not version with semver,
// so only its presence is checked.
func (p *Pipeline) CheckToolchain(ctx context.Context) error {
	for _, tool := range []string{"cargo", "wasm-pack"} {
		out, err := exec.CommandContext(ctx, tool, "--version").Output()
		if err != nil {
			return fmt.Errorf("%s not found (install it to build the wasm bundle): %w", tool, err)
		}
		version := parseToolVersion(string(out))
		if version == "" {
			continue // unparseable output is not fatal
		}
		if err := checkToolVersion(tool, version); err != nil {
			return err
		}
	}

	if _, err := exec.LookPath("wasm-opt"); err != nil {
		return fmt.Errorf("wasm-opt not found (install binaryen): %w", err)
	}
	return nil
}

// parseToolVersion extracts the first semver-ish token from a
// `tool --version` line (e.g. "cargo 1.82.0 (...)" → "1.82.0").
func parseToolVersion(out string) string {
	line := strings.TrimSpace(strings.SplitN(out, "\n", 2)[0])
	for _, tok := range strings.Fields(line) {
		t := strings.TrimPrefix(tok, "v")
		if strings.Count(t, ".") >= 2 {
			if _, err := semver.NewVersion(t); err == nil {
				return t
			}
		}
	}
	return ""
}

// checkToolVersion compares a tool's version against its minimum.
func checkToolVersion(tool, version string) error {
	min, ok := toolMinimums[tool]
	if !ok {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil
	}
	if v.LessThan(semver.MustParse(min)) {
		return fmt.Errorf("%s %s is too old (need >= %s)", tool, version, min)
	}
	return nil
}
