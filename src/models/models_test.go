package models

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/vigilhq/vigil/src/config"
)

func TestParseToolVersion(t *testing.T) {
	cases := []struct {
		out  string
		want string
	}{
		{"cargo 1.82.0 (8f40fc59f 2024-08-21)", "1.82.0"},
		{"wasm-pack 0.13.1", "0.13.1"},
		{"wasm-opt version 116", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := parseToolVersion(c.out); got != c.want {
			t.Errorf("parseToolVersion(%q) = %q, want %q", c.out, got, c.want)
		}
	}
}

func TestCheckToolVersion(t *testing.T) {
	if err := checkToolVersion("cargo", "1.82.0"); err != nil {
		t.Fatalf("recent cargo rejected: %v", err)
	}
	if err := checkToolVersion("cargo", "1.60.0"); err == nil {
		t.Fatalf("old cargo accepted")
	}
	// Tools without a configured minimum always pass.
	if err := checkToolVersion("unknown-tool", "0.0.1"); err != nil {
		t.Fatalf("unknown tool rejected: %v", err)
	}
}

func TestQuantizedName(t *testing.T) {
	cases := []struct {
		name, precision, want string
	}{
		{"codet5-encoder-int8.onnx", "int4", "codet5-encoder-int4.onnx"},
		{"minilm.onnx", "int8", "minilm-int8.onnx"},
		{"model-fp16.onnx", "int8", "model-int8.onnx"},
	}
	for _, c := range cases {
		if got := quantizedName(c.name, c.precision); got != c.want {
			t.Errorf("quantizedName(%q, %q) = %q, want %q", c.name, c.precision, got, c.want)
		}
	}
}

func TestFetchAllDownloadsAndCaches(t *testing.T) {
	hits := map[string]int{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits[r.URL.Path]++
		w.Write([]byte("model-bytes:" + r.URL.Path))
	}))
	defer srv.Close()

	cacheDir := t.TempDir()
	p := NewPipeline(config.ModelsConfig{
		CacheDir: cacheDir,
		Assets: []config.ModelAsset{
			{Name: "a.onnx", URL: srv.URL + "/a"},
			{Name: "b.onnx", URL: srv.URL + "/b"},
		},
	})
	p.Stderr = os.Stderr

	if err := p.FetchAll(context.Background()); err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	for _, name := range []string{"a.onnx", "b.onnx"} {
		if _, err := os.Stat(filepath.Join(cacheDir, name)); err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
	}

	// Second run hits the cache, not the server.
	if err := p.FetchAll(context.Background()); err != nil {
		t.Fatalf("FetchAll (cached): %v", err)
	}
	if hits["/a"] != 1 || hits["/b"] != 1 {
		t.Fatalf("cache not honored: %v", hits)
	}
}

func TestFetchAllRejectsDigestMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("unexpected-content"))
	}))
	defer srv.Close()

	p := NewPipeline(config.ModelsConfig{
		CacheDir: t.TempDir(),
		Assets: []config.ModelAsset{
			{Name: "a.onnx", URL: srv.URL + "/a", SHA256: "deadbeef"},
		},
	})
	p.Stderr = os.Stderr

	if err := p.FetchAll(context.Background()); err == nil {
		t.Fatalf("expected digest mismatch error")
	}
}

func TestReadCargoManifest(t *testing.T) {
	dir := t.TempDir()
	manifest := `
[package]
name = "vigil-wasm-bundle"
version = "0.3.0"

[features]
no-models = []
minilm-only = []
`
	if err := os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte(manifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	m, err := ReadCargoManifest(dir)
	if err != nil {
		t.Fatalf("ReadCargoManifest: %v", err)
	}
	if m.Package.Name != "vigil-wasm-bundle" {
		t.Fatalf("name = %q", m.Package.Name)
	}
	if !m.HasFeature("minilm-only") {
		t.Fatalf("minilm-only feature not seen")
	}
	if m.HasFeature("codet5-only") {
		t.Fatalf("phantom feature reported")
	}
}

func TestBundleWasmPathNormalizesDashes(t *testing.T) {
	p := NewPipeline(config.ModelsConfig{BundleDir: "wasm-bundle"})
	var m CargoManifest
	m.Package.Name = "vigil-wasm-bundle"

	want := filepath.Join("wasm-bundle", "pkg", "vigil_wasm_bundle_bg.wasm")
	if got := p.bundleWasmPath(&m); got != want {
		t.Fatalf("bundleWasmPath = %q, want %q", got, want)
	}
}
