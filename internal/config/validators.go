package config

// Configuration keys understood by chainpulse.
const (
	// KeyDefaultRankPolicy selects the initial feed ordering.
	KeyDefaultRankPolicy = "default_rank_policy"
	// KeyUnreadFirst floats unread notifications to the top of the TUI inbox.
	KeyUnreadFirst = "unread_first"
	// KeyOutputFormat selects the CLI output formatter.
	KeyOutputFormat = "output_format"
	// KeySubmitDelayMs is the simulated review-submission latency.
	KeySubmitDelayMs = "submit_delay_ms"
	// KeySubmitFailurePct is the simulated review-submission failure rate.
	KeySubmitFailurePct = "submit_failure_pct"
	// KeyLoggingEnabled toggles structured file logging.
	KeyLoggingEnabled = "logging_enabled"
	// KeyLoggingLevel is the minimum log level.
	KeyLoggingLevel = "logging_level"
	// KeyLoggingMaxFiles is the number of log files retained by rotation.
	KeyLoggingMaxFiles = "logging_max_files"
	// KeyDebug enables debug output on the console.
	KeyDebug = "debug"
)

// initValidators registers the validators for every known key.
func initValidators() {
	RegisterValidator(KeyDefaultRankPolicy, EnumValidator(map[string]bool{
		"latest":   true,
		"popular":  true,
		"trending": true,
	}))
	RegisterValidator(KeyUnreadFirst, BoolValidator())
	RegisterValidator(KeyOutputFormat, EnumValidator(map[string]bool{
		"simple": true,
		"table":  true,
		"json":   true,
	}))
	// Zero delay means instant submissions, which is a valid setting.
	RegisterValidator(KeySubmitDelayMs, NonNegativeIntValidator())
	RegisterValidator(KeySubmitFailurePct, PercentValidator())
	RegisterValidator(KeyLoggingEnabled, BoolValidator())
	RegisterValidator(KeyLoggingLevel, EnumValidator(map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}))
	RegisterValidator(KeyLoggingMaxFiles, PositiveIntValidator())
	RegisterValidator(KeyDebug, BoolValidator())
}
