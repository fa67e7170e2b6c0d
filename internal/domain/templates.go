package domain

import _ "embed"

//go:embed report_template.html
var reportTemplateContent string

//go:embed config_template.toml
var configTemplateContent string

// DefaultReportTemplate returns the embedded HTML report template.
func DefaultReportTemplate() string {
	return reportTemplateContent
}

// ConfigTemplate returns the starter report configuration.
func ConfigTemplate() string {
	return configTemplateContent
}
