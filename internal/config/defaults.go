package config

const (
	defaultLogLevel     = "info"
	defaultLogFormat    = "console"
	defaultOnMissingID  = MissingIDAbort
	defaultReportFormat = "auto"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Validation: Validation{
			OnMissingID: defaultOnMissingID,
		},
		Report: Report{
			Format: defaultReportFormat,
		},
	}
}
