package config

// SEAConfig controls the single-executable build pipeline.
type SEAConfig struct {
	// Bundle is the path to the JS bundle embedded into the binary.
	Bundle string `yaml:"bundle"`
	// OutputDir receives the patched bundle, SEA config, blob, and
	// final executable. Contents are overwritten wholesale on re-run.
	OutputDir string `yaml:"output_dir"`
	// BinaryName is the name of the produced executable.
	BinaryName string `yaml:"binary_name"`
	// NodeVersion pins the Node.js release to embed (e.g. "22.11.0").
	NodeVersion string `yaml:"node_version"`
	// NodeDistURL is the release mirror. Defaults to nodejs.org/dist.
	NodeDistURL string `yaml:"node_dist_url"`
	// UseCodeCache enables the V8 code cache in the SEA blob.
	UseCodeCache bool `yaml:"use_code_cache"`
}

// DefaultSEAConfig returns SEA build defaults.
func DefaultSEAConfig() SEAConfig {
	return SEAConfig{
		Bundle:       "dist/vigil.js",
		OutputDir:    "dist/sea",
		BinaryName:   "vigil",
		NodeVersion:  "22.11.0",
		NodeDistURL:  "https://nodejs.org/dist",
		UseCodeCache: true,
	}
}
