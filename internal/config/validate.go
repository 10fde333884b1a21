package config

import "fmt"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateValidation(); err != nil {
		return err
	}
	if err := c.validateReport(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateValidation() error {
	switch c.Validation.OnMissingID {
	case MissingIDAbort, MissingIDSkip:
		return nil
	default:
		return fmt.Errorf("validation.on_missing_id must be %q or %q (got %q)", MissingIDAbort, MissingIDSkip, c.Validation.OnMissingID)
	}
}

func (c *Config) validateReport() error {
	switch c.Report.Format {
	case "auto", "table", "lines", "json":
		return nil
	default:
		return fmt.Errorf("report.format must be one of auto, table, lines, json (got %q)", c.Report.Format)
	}
}
