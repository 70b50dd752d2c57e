package config

// Presets are named comparison profiles selectable with --preset.
var Presets = map[string]*Config{
	"quiet": {
		Output: "comparison.json",
	},
	"verbose": {
		Output:   "comparison.json",
		Warnings: true,
	},
	"timeseries": {
		Output:      "comparison.json",
		Warnings:    true,
		Interpolate: []string{"time"},
	},
	"profile": {
		Output:      "comparison.json",
		Warnings:    true,
		Interpolate: []string{"x", "y", "z"},
	},
}

// GetPreset returns the named preset, or nil if it does not exist.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
