package analyzer

import (
	"strings"

	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/lang"
)

const defaultConcurrency = 8

// Config represents commit analysis behavior configuration
type Config struct {
	// ExcludedExtensions lists file extensions whose line changes are not
	// counted, e.g. [".png", ".jpg"]. Entries are normalized to a lowercase
	// form with a leading dot.
	ExcludedExtensions []string `yaml:"excluded_extensions" env:"ANALYZER_EXCLUDED_EXTENSIONS"`

	// Concurrency bounds parallel per-file diff fetches within one commit.
	Concurrency int `yaml:"concurrency" env:"ANALYZER_CONCURRENCY"`
}

func (c *Config) PrepareAndValidate() error {
	c.Concurrency = lang.Check(c.Concurrency, defaultConcurrency)
	if c.Concurrency < 1 {
		return errm.New("concurrency must be positive: %d", c.Concurrency)
	}

	for i, ext := range c.ExcludedExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.ExcludedExtensions[i] = ext
	}

	return nil
}
