package config

// Default returns the built-in configuration. Values mirror the embedded
// sample file.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: "~/.local/share/anisub",
			LogDir:  "~/.local/share/anisub/logs",
		},
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
		Filter: Filter{
			Exclude:        []string{},
			Include:        []string{},
			IncludeEnabled: false,
			Weights:        map[string]int{},
		},
		Update: Update{
			Workers:    4,
			IncludeOld: false,
		},
	}
}
