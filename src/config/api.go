package config

// APIConfig selects the API endpoint. The token itself is never read
// from the config file; it comes from the VIGIL_API_TOKEN environment
// variable.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
}

// DefaultAPIConfig returns the production endpoint settings.
func DefaultAPIConfig() APIConfig {
	return APIConfig{}
}
