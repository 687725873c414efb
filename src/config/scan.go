package config

// ScanConfig controls the local secrets scan.
type ScanConfig struct {
	// Exclude lists path substrings skipped during the walk.
	Exclude []string `yaml:"exclude"`
	// MaxFileSizeKB skips files larger than this (0 = no limit).
	MaxFileSizeKB int `yaml:"max_file_size_kb"`
}

// DefaultScanConfig returns scan defaults.
func DefaultScanConfig() ScanConfig {
	return ScanConfig{
		Exclude:       []string{".git/", "node_modules/", "dist/"},
		MaxFileSizeKB: 1024,
	}
}
