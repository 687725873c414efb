package models

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/vigilhq/vigil/src/sea"
)

// CargoManifest is the subset of the wasm-bundle crate's Cargo.toml the
// pipeline needs.
type CargoManifest struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
	Features map[string][]string `toml:"features"`
}

// ReadCargoManifest parses the crate manifest in dir.
func ReadCargoManifest(dir string) (*CargoManifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, "Cargo.toml"))
	if err != nil {
		return nil, fmt.Errorf("reading Cargo.toml: %w", err)
	}

	var manifest CargoManifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parsing Cargo.toml: %w", err)
	}
	if manifest.Package.Name == "" {
		return nil, fmt.Errorf("Cargo.toml in %s has no package name", dir)
	}
	return &manifest, nil
}

// HasFeature reports whether the crate declares the named feature flag.
func (m *CargoManifest) HasFeature(name string) bool {
	_, ok := m.Features[name]
	return ok
}

// BuildBundle compiles the wasm-bundle crate with wasm-pack and
// size-optimizes the output with wasm-opt.
func (p *Pipeline) BuildBundle(ctx context.Context) error {
	return p.BuildBundleWithFeatures(ctx, nil)
}

// BuildBundleWithFeatures compiles with the given cargo feature flags.
// Unknown features are rejected before cargo runs.
func (p *Pipeline) BuildBundleWithFeatures(ctx context.Context, features []string) error {
	manifest, err := ReadCargoManifest(p.Cfg.BundleDir)
	if err != nil {
		return err
	}
	for _, f := range features {
		if !manifest.HasFeature(f) {
			return fmt.Errorf("crate %s has no feature %q", manifest.Package.Name, f)
		}
	}

	args := []string{"build", "--release", "--target", "nodejs", p.Cfg.BundleDir}
	if len(features) > 0 {
		args = append(args, "--")
		for _, f := range features {
			args = append(args, "--features", f)
		}
	}
	if err := p.run(ctx, "wasm-pack", args...); err != nil {
		return fmt.Errorf("building %s: %w", manifest.Package.Name, err)
	}

	wasm := p.bundleWasmPath(manifest)
	optimized := wasm + ".opt"
	if err := p.run(ctx, "wasm-opt", "-Oz", wasm, "-o", optimized); err != nil {
		return fmt.Errorf("optimizing %s: %w", manifest.Package.Name, err)
	}
	return os.Rename(optimized, wasm)
}

// EmbedBundle compresses the compiled wasm module and generates a JS
// module carrying it, next to the wasm-pack output.
func (p *Pipeline) EmbedBundle() error {
	manifest, err := ReadCargoManifest(p.Cfg.BundleDir)
	if err != nil {
		return err
	}

	wasm := p.bundleWasmPath(manifest)
	module := strings.TrimSuffix(wasm, "_bg.wasm") + "_embedded.js"

	size, err := sea.EmbedAsset(wasm, module, "WasmBundle")
	if err != nil {
		return fmt.Errorf("embedding %s: %w", manifest.Package.Name, err)
	}
	if p.Verbose {
		fmt.Fprintf(p.Stderr, "embedded %s (%d bytes compressed)\n", filepath.Base(wasm), size)
	}
	return nil
}

// bundleWasmPath is where wasm-pack leaves the compiled module.
func (p *Pipeline) bundleWasmPath(manifest *CargoManifest) string {
	// wasm-pack normalizes dashes to underscores in the artifact name.
	name := strings.ReplaceAll(manifest.Package.Name, "-", "_")
	return filepath.Join(p.Cfg.BundleDir, "pkg", name+"_bg.wasm")
}
