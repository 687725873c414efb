package sea

import (
	"encoding/json"
	"fmt"
	"os"
)

// SEAConfig is the JSON document consumed by
// `node --experimental-sea-config`.
type SEAConfig struct {
	Main                          string `json:"main"`
	Output                        string `json:"output"`
	DisableExperimentalSEAWarning bool   `json:"disableExperimentalSEAWarning"`
	UseCodeCache                  bool   `json:"useCodeCache"`
}

// WriteSEAConfig writes the config document, overwriting any previous one.
func WriteSEAConfig(path string, cfg SEAConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling sea config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing sea config: %w", err)
	}
	return nil
}
