// Package models drives the WASM ML model asset pipeline: verify the
// Rust toolchain, fetch model artifacts, quantize them, build the
// wasm-bundle crate, and size-optimize the result. Steps shell out to
// the external tools and run strictly in sequence; only downloads
// within the fetch step run in parallel.
package models

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/vigilhq/vigil/src/config"
)

// Pipeline runs the model asset steps.
type Pipeline struct {
	Cfg     config.ModelsConfig
	Verbose bool
	Stdout  io.Writer
	Stderr  io.Writer
}

// NewPipeline creates a pipeline with default output writers.
func NewPipeline(cfg config.ModelsConfig) *Pipeline {
	return &Pipeline{
		Cfg:    cfg,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes the full pipeline: toolchain check, fetch, quantize,
// build, optimize, embed.
func (p *Pipeline) Run(ctx context.Context) error {
	if err := p.CheckToolchain(ctx); err != nil {
		return err
	}
	if err := p.FetchAll(ctx); err != nil {
		return err
	}
	if err := p.QuantizeAll(ctx); err != nil {
		return err
	}
	if err := p.BuildBundle(ctx); err != nil {
		return err
	}
	return p.EmbedBundle()
}

// run executes an external command with wired output streams.
func (p *Pipeline) run(ctx context.Context, name string, args ...string) error {
	if p.Verbose {
		fmt.Fprintf(p.Stderr, "exec: %s %s\n", name, strings.Join(args, " "))
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = p.Stdout
	cmd.Stderr = p.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}
