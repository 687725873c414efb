package config

// ModelAsset describes one downloadable ML model artifact.
type ModelAsset struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	// SHA256 is the expected digest of the download; empty skips
	// verification.
	SHA256 string `yaml:"sha256"`
	// Quantize selects the target precision ("int8", "int4", "" = none).
	Quantize string `yaml:"quantize"`
}

// ModelsConfig controls the WASM model asset pipeline.
type ModelsConfig struct {
	// CacheDir receives downloaded and quantized model files.
	CacheDir string `yaml:"cache_dir"`
	// Quantizer is the external command invoked per model to quantize.
	Quantizer string `yaml:"quantizer"`
	// BundleDir is the Rust wasm-bundle crate directory.
	BundleDir string `yaml:"bundle_dir"`
	// Assets lists the model artifacts to fetch.
	Assets []ModelAsset `yaml:"assets"`
}

// DefaultModelsConfig returns model pipeline defaults matching the
// published embedding and code-analysis models.
func DefaultModelsConfig() ModelsConfig {
	return ModelsConfig{
		CacheDir:  ".cache/models",
		Quantizer: "onnx-quantize",
		BundleDir: "wasm-bundle",
		Assets: []ModelAsset{
			{Name: "minilm-int8.onnx", URL: "https://huggingface.co/Xenova/all-MiniLM-L6-v2/resolve/main/onnx/model_quantized.onnx", Quantize: "int8"},
			{Name: "minilm-tokenizer.json", URL: "https://huggingface.co/Xenova/all-MiniLM-L6-v2/resolve/main/tokenizer.json"},
			{Name: "codet5-encoder-int8.onnx", URL: "https://huggingface.co/Salesforce/codet5-small/resolve/main/onnx/encoder_model_quantized.onnx", Quantize: "int4"},
			{Name: "codet5-decoder-int8.onnx", URL: "https://huggingface.co/Salesforce/codet5-small/resolve/main/onnx/decoder_model_quantized.onnx", Quantize: "int4"},
			{Name: "codet5-tokenizer.json", URL: "https://huggingface.co/Salesforce/codet5-small/resolve/main/tokenizer.json"},
		},
	}
}
