package sea

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
)

// EmbedAsset brotli-compresses a binary asset and writes a JS module
// that carries it as a base64 constant alongside decompress/instantiate
// helpers. Returns the compressed size.
func EmbedAsset(assetPath, modulePath, exportName string) (int, error) {
	data, err := os.ReadFile(assetPath)
	if err != nil {
		return 0, fmt.Errorf("reading asset: %w", err)
	}

	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, brotli.BestCompression)
	if _, err := w.Write(data); err != nil {
		return 0, fmt.Errorf("compressing asset: %w", err)
	}
	if err := w.Close(); err != nil {
		return 0, fmt.Errorf("compressing asset: %w", err)
	}

	module := renderEmbedModule(filepath.Base(assetPath), exportName, buf.Bytes(), len(data))
	if err := os.WriteFile(modulePath, []byte(module), 0o644); err != nil {
		return 0, fmt.Errorf("writing embed module: %w", err)
	}
	return buf.Len(), nil
}

// renderEmbedModule generates the JS module text around the encoded blob.
func renderEmbedModule(assetName, exportName string, compressed []byte, rawSize int) string {
	encoded := base64.StdEncoding.EncodeToString(compressed)

	var s strings.Builder
	fmt.Fprintf(&s, "// Generated by vigil sea build. Do not edit.\n")
	fmt.Fprintf(&s, "// Asset: %s (%d bytes raw, %d compressed)\n", assetName, rawSize, len(compressed))
	fmt.Fprintf(&s, "'use strict';\n")
	fmt.Fprintf(&s, "const zlib = require('node:zlib');\n\n")
	fmt.Fprintf(&s, "const COMPRESSED_%s = %q;\n\n", exportName, encoded)
	fmt.Fprintf(&s, "function decompress%s() {\n", exportName)
	fmt.Fprintf(&s, "  const raw = Buffer.from(COMPRESSED_%s, 'base64');\n", exportName)
	fmt.Fprintf(&s, "  return zlib.brotliDecompressSync(raw);\n")
	fmt.Fprintf(&s, "}\n\n")
	fmt.Fprintf(&s, "async function instantiate%s(imports) {\n", exportName)
	fmt.Fprintf(&s, "  const bytes = decompress%s();\n", exportName)
	fmt.Fprintf(&s, "  return WebAssembly.instantiate(bytes, imports || {});\n")
	fmt.Fprintf(&s, "}\n\n")
	fmt.Fprintf(&s, "module.exports = { decompress%s, instantiate%s };\n", exportName, exportName)
	return s.String()
}
