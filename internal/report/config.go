package report

import (
	"slices"

	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/lang"
)

type Format string

// Supported report output formats
const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

var supportedFormats = []Format{FormatText, FormatJSON, FormatTable}

// Config represents report rendering configuration
type Config struct {
	Format         Format `yaml:"format" env:"REPORT_FORMAT"`
	ShowCumulative bool   `yaml:"show_cumulative" env:"REPORT_SHOW_CUMULATIVE"`
	OutputPath     string `yaml:"output_path" env:"REPORT_OUTPUT_PATH"`
}

func (c *Config) PrepareAndValidate() error {
	c.Format = Format(lang.Check(string(c.Format), string(FormatText)))
	if !slices.Contains(supportedFormats, c.Format) {
		return errm.New("invalid report format: %s", c.Format)
	}
	return nil
}
