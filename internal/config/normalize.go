package config

import "strings"

// normalize expands paths, trims string fields, and fills zero values with
// defaults so later code never has to re-check them.
func (c *Config) normalize() error {
	var err error
	if c.Paths.DataDir, err = expandPath(strings.TrimSpace(c.Paths.DataDir)); err != nil {
		return err
	}
	if trimmed := strings.TrimSpace(c.Paths.LogDir); trimmed != "" {
		if c.Paths.LogDir, err = expandPath(trimmed); err != nil {
			return err
		}
	} else {
		c.Paths.LogDir = ""
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}

	c.Filter.Exclude = trimTerms(c.Filter.Exclude)
	c.Filter.Include = trimTerms(c.Filter.Include)
	if c.Filter.Weights == nil {
		c.Filter.Weights = map[string]int{}
	}

	if c.Update.Workers == 0 {
		c.Update.Workers = Default().Update.Workers
	}
	return nil
}

func trimTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		if trimmed := strings.TrimSpace(term); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
