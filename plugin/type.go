package plugin

// Args represents the plugin's configurable arguments.
type Args struct {
	ReportFilenamePattern string `envconfig:"PLUGIN_REPORT_FILENAME_PATTERN"`
	ReportDir             string `envconfig:"PLUGIN_REPORT_DIR"`
	FailedFails           int    `envconfig:"PLUGIN_FAILED_FAILS"`
	FailedSkips           int    `envconfig:"PLUGIN_FAILED_SKIPS"`
	FailIfNoResults       bool   `envconfig:"PLUGIN_FAIL_IF_NO_RESULTS"`
	PushGatewayURL        string `envconfig:"PLUGIN_PUSHGATEWAY_URL"`
	PushJob               string `envconfig:"PLUGIN_PUSH_JOB"`
	Level                 string `envconfig:"PLUGIN_LOG_LEVEL"`
}
