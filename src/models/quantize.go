package models

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// QuantizeAll runs the external quantizer over every asset that
// requests a target precision. Output files are named after the input
// with the precision substituted (model-int8.onnx → model-int4.onnx)
// and overwritten on every run.
func (p *Pipeline) QuantizeAll(ctx context.Context) error {
	for _, asset := range p.Cfg.Assets {
		if asset.Quantize == "" {
			continue
		}

		in := filepath.Join(p.Cfg.CacheDir, asset.Name)
		out := filepath.Join(p.Cfg.CacheDir, quantizedName(asset.Name, asset.Quantize))

		err := p.run(ctx, p.Cfg.Quantizer,
			"--input", in,
			"--output", out,
			"--precision", asset.Quantize,
		)
		if err != nil {
			return fmt.Errorf("quantizing %s: %w", asset.Name, err)
		}
	}
	return nil
}

// quantizedName rewrites a model filename for its target precision.
// Names already tagged with a precision have the tag replaced; others
// get the tag inserted before the extension.
func quantizedName(name, precision string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	for _, tag := range []string{"-int8", "-int4", "-fp16"} {
		if strings.HasSuffix(base, tag) {
			return strings.TrimSuffix(base, tag) + "-" + precision + ext
		}
	}
	return base + "-" + precision + ext
}
