// Package sea builds a self-contained executable from a JS bundle using
// the Node.js Single Executable Application feature: download a pinned
// Node binary, patch the bundle for SEA runtime compatibility, generate
// the SEA config, produce the blob, and splice it into a copy of the
// node executable with postject.
//
// The pipeline is strictly sequential and fail-fast. Re-running is
// idempotent only because every output is overwritten wholesale.
package sea

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// Builder runs the SEA pipeline.
type Builder struct {
	Bundle       string // path to the JS bundle to embed
	OutputDir    string
	BinaryName   string
	NodeVersion  string
	NodeDistURL  string
	UseCodeCache bool

	Verbose bool
	Stdout  io.Writer
	Stderr  io.Writer
}

// StepResult records one pipeline step for reporting.
type StepResult struct {
	Name     string        `json:"name"`
	Status   string        `json:"status"`
	Duration time.Duration `json:"duration"`
}

// Result is the outcome of a completed build.
type Result struct {
	Executable string       `json:"executable"`
	Steps      []StepResult `json:"steps"`
}

// NewBuilder creates a builder with default output writers.
func NewBuilder() *Builder {
	return &Builder{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Build runs all pipeline steps in order and stops at the first failure.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	if b.Bundle == "" {
		return nil, fmt.Errorf("sea: no bundle configured")
	}
	if err := os.MkdirAll(b.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	result := &Result{}

	nodeBin, err := b.step(result, "node", func() (string, error) {
		return b.ensureNode(ctx)
	})
	if err != nil {
		return result, err
	}

	patchedBundle, err := b.step(result, "bundle", func() (string, error) {
		dst := filepath.Join(b.OutputDir, "bundle.js")
		if _, err := PatchBundle(b.Bundle, dst); err != nil {
			return "", err
		}
		return dst, nil
	})
	if err != nil {
		return result, err
	}

	blobPath := filepath.Join(b.OutputDir, "sea-prep.blob")
	configPath := filepath.Join(b.OutputDir, "sea-config.json")

	if _, err := b.step(result, "sea-config", func() (string, error) {
		cfg := SEAConfig{
			Main:                          patchedBundle,
			Output:                        blobPath,
			DisableExperimentalSEAWarning: true,
			UseCodeCache:                  b.UseCodeCache,
		}
		return configPath, WriteSEAConfig(configPath, cfg)
	}); err != nil {
		return result, err
	}

	if _, err := b.step(result, "blob", func() (string, error) {
		return blobPath, b.run(ctx, nodeBin, "--experimental-sea-config", configPath)
	}); err != nil {
		return result, err
	}

	executable, err := b.step(result, "inject", func() (string, error) {
		return b.inject(ctx, nodeBin, blobPath)
	})
	if err != nil {
		return result, err
	}

	result.Executable = executable
	return result, nil
}

// step runs fn, records its outcome, and echoes progress.
func (b *Builder) step(result *Result, name string, fn func() (string, error)) (string, error) {
	start := time.Now()
	out, err := fn()

	sr := StepResult{Name: name, Status: "success", Duration: time.Since(start)}
	if err != nil {
		sr.Status = "failed"
	}
	result.Steps = append(result.Steps, sr)

	if err != nil {
		return "", fmt.Errorf("sea %s: %w", name, err)
	}
	if b.Verbose {
		fmt.Fprintf(b.Stderr, "sea: %s done in %s\n", name, sr.Duration.Round(time.Millisecond))
	}
	return out, nil
}

// run executes an external command with wired output streams.
func (b *Builder) run(ctx context.Context, name string, args ...string) error {
	if b.Verbose {
		fmt.Fprintf(b.Stderr, "exec: %s %s\n", name, strings.Join(args, " "))
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = b.Stdout
	cmd.Stderr = b.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}

// inject copies the node binary and splices the blob into it.
func (b *Builder) inject(ctx context.Context, nodeBin, blobPath string) (string, error) {
	executable := filepath.Join(b.OutputDir, b.BinaryName)
	if runtime.GOOS == "windows" && !strings.HasSuffix(executable, ".exe") {
		executable += ".exe"
	}

	if err := copyFile(nodeBin, executable, 0o755); err != nil {
		return "", fmt.Errorf("copying node binary: %w", err)
	}

	// macOS binaries must be unsigned before patching and re-signed after.
	if runtime.GOOS == "darwin" {
		if err := b.run(ctx, "codesign", "--remove-signature", executable); err != nil {
			return "", err
		}
	}

	if err := b.run(ctx, "postject", postjectArgs(executable, blobPath)...); err != nil {
		return "", err
	}

	if runtime.GOOS == "darwin" {
		if err := b.run(ctx, "codesign", "--sign", "-", executable); err != nil {
			return "", err
		}
	}

	return executable, nil
}

func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
