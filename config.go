package sprite3d

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the conversion defaults the CLIs use for omitted
// arguments. The depth default lives here and nowhere else.
type Config struct {
	Method     string      `yaml:"method"`
	Depth      float64     `yaml:"depth"`
	LayerCount int         `yaml:"layer_count"`
	Export     ExportFlags `yaml:"export"`
}

func DefaultConfig() *Config {
	return &Config{
		Method:     DefaultMethod,
		Depth:      DefaultDepth,
		LayerCount: DefaultLayerCount,
		Export:     DefaultFlags(),
	}
}

// LoadConfig reads a YAML config file. A missing file is not an error;
// the defaults apply.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
