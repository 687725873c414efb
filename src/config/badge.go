package config

// BadgeConfig controls security-score badge rendering.
type BadgeConfig struct {
	// FontFile is a TTF/OTF path for text measurement. Empty uses the
	// platform fallback search.
	FontFile string  `yaml:"font_file"`
	FontSize float64 `yaml:"font_size"`
	Label    string  `yaml:"label"`
	Output   string  `yaml:"output"`
}

// DefaultBadgeConfig returns badge defaults.
func DefaultBadgeConfig() BadgeConfig {
	return BadgeConfig{
		FontSize: 11,
		Label:    "security",
		Output:   "vigil-badge.svg",
	}
}
