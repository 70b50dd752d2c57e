package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the compare command's options so a run can be
// described in a YAML file. Flags set explicitly on the command line
// take precedence over file values.
type Config struct {
	Input       string   `yaml:"input"`
	Reference   string   `yaml:"reference"`
	Output      string   `yaml:"output"`
	Warnings    bool     `yaml:"warnings"`
	Interpolate []string `yaml:"interpolate"`
	Vars        []string `yaml:"vars"`
}

func DefaultConfig() *Config {
	return &Config{
		Output: "comparison.json",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
