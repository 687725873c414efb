package sea

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
)

func TestPatchBundleSubstitutions(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bundle.js")
	dst := filepath.Join(dir, "out.js")

	content := `const req = createRequire(import.meta.url);
const here = __dirname;
console.log(import.meta.url, __filename);
`
	if err := os.WriteFile(src, []byte(content), 0o644); err != nil {
		t.Fatalf("write bundle: %v", err)
	}

	applied, err := PatchBundle(src, dst)
	if err != nil {
		t.Fatalf("PatchBundle: %v", err)
	}
	if applied != 4 {
		t.Fatalf("applied = %d, want 4", applied)
	}

	out, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	patched := string(out)

	if strings.Contains(patched, "import.meta.url") {
		t.Fatalf("import.meta.url survived patching:\n%s", patched)
	}
	if strings.Contains(patched, "__dirname") || strings.Contains(patched, "__filename") {
		t.Fatalf("dirname/filename survived patching:\n%s", patched)
	}
	if !strings.Contains(patched, "createRequire(process.execPath)") {
		t.Fatalf("createRequire not rewritten:\n%s", patched)
	}
}

func TestPatchBundleNoMatches(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bundle.js")
	dst := filepath.Join(dir, "out.js")

	if err := os.WriteFile(src, []byte("console.log('hi');\n"), 0o644); err != nil {
		t.Fatalf("write bundle: %v", err)
	}

	applied, err := PatchBundle(src, dst)
	if err != nil {
		t.Fatalf("PatchBundle: %v", err)
	}
	if applied != 0 {
		t.Fatalf("applied = %d, want 0", applied)
	}
}

func TestWriteSEAConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sea-config.json")
	cfg := SEAConfig{
		Main:                          "dist/sea/bundle.js",
		Output:                        "dist/sea/sea-prep.blob",
		DisableExperimentalSEAWarning: true,
		UseCodeCache:                  true,
	}
	if err := WriteSEAConfig(path, cfg); err != nil {
		t.Fatalf("WriteSEAConfig: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("config is not JSON: %v", err)
	}
	if got["main"] != "dist/sea/bundle.js" {
		t.Fatalf("main = %v", got["main"])
	}
	if got["useCodeCache"] != true {
		t.Fatalf("useCodeCache = %v", got["useCodeCache"])
	}
	if got["disableExperimentalSEAWarning"] != true {
		t.Fatalf("disableExperimentalSEAWarning = %v", got["disableExperimentalSEAWarning"])
	}
}

func TestCheckNodeVersion(t *testing.T) {
	if err := checkNodeVersion("22.11.0"); err != nil {
		t.Fatalf("22.11.0 rejected: %v", err)
	}
	if err := checkNodeVersion("18.20.0"); err == nil {
		t.Fatalf("18.20.0 accepted, want error")
	}
	if err := checkNodeVersion("not-a-version"); err == nil {
		t.Fatalf("garbage version accepted")
	}
}

func TestParseChecksums(t *testing.T) {
	sums := `abc123  node-v22.11.0-linux-x64.tar.gz
def456  node-v22.11.0-darwin-arm64.tar.gz
`
	got, err := parseChecksums(strings.NewReader(sums), "node-v22.11.0-darwin-arm64.tar.gz")
	if err != nil {
		t.Fatalf("parseChecksums: %v", err)
	}
	if got != "def456" {
		t.Fatalf("checksum = %q", got)
	}

	if _, err := parseChecksums(strings.NewReader(sums), "missing.tar.gz"); err == nil {
		t.Fatalf("expected error for missing entry")
	}
}

func TestEmbedAssetRoundTrip(t *testing.T) {
	dir := t.TempDir()
	asset := filepath.Join(dir, "model.wasm")
	module := filepath.Join(dir, "model.js")

	payload := bytes.Repeat([]byte("wasm-bytes-"), 1000)
	if err := os.WriteFile(asset, payload, 0o644); err != nil {
		t.Fatalf("write asset: %v", err)
	}

	compressedSize, err := EmbedAsset(asset, module, "Model")
	if err != nil {
		t.Fatalf("EmbedAsset: %v", err)
	}
	if compressedSize <= 0 || compressedSize >= len(payload) {
		t.Fatalf("compressed size = %d (raw %d)", compressedSize, len(payload))
	}

	out, err := os.ReadFile(module)
	if err != nil {
		t.Fatalf("read module: %v", err)
	}
	text := string(out)

	for _, want := range []string{"decompressModel", "instantiateModel", "module.exports"} {
		if !strings.Contains(text, want) {
			t.Fatalf("generated module misses %q:\n%s", want, text)
		}
	}

	// Pull the base64 constant back out and verify it round-trips.
	re := regexp.MustCompile(`COMPRESSED_Model = "([^"]+)"`)
	m := re.FindStringSubmatch(text)
	if m == nil {
		t.Fatalf("no embedded constant in module:\n%s", text)
	}
	compressed, err := base64.StdEncoding.DecodeString(m[1])
	if err != nil {
		t.Fatalf("embedded constant is not base64: %v", err)
	}

	decompressed, err := io.ReadAll(brotli.NewReader(bytes.NewReader(compressed)))
	if err != nil {
		t.Fatalf("decompressing: %v", err)
	}
	if !bytes.Equal(decompressed, payload) {
		t.Fatalf("round trip mismatch: %d bytes vs %d", len(decompressed), len(payload))
	}
}
