package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the configuration for values the application cannot run
// with. It collects every problem rather than stopping at the first.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Paths.DataDir) == "" {
		problems = append(problems, "paths.data_dir must not be empty")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("logging.format %q is not one of console, json", c.Logging.Format))
	}

	if c.Update.Workers < 1 {
		problems = append(problems, fmt.Sprintf("update.workers must be at least 1, got %d", c.Update.Workers))
	}
	for keyword, weight := range c.Filter.Weights {
		if strings.TrimSpace(keyword) == "" {
			problems = append(problems, "filter.weights contains an empty keyword")
		}
		if weight < 0 {
			problems = append(problems, fmt.Sprintf("filter.weights[%q] must not be negative", keyword))
		}
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}
