package config

// SampleConfig returns a fully documented configuration file.
func SampleConfig() string {
	return `# launchaccess configuration
version: "1.0"

ui:
  # default, high-contrast or minimal
  theme: default
  # open the dashboard without the login card
  skip_login: false
  login_delay: 500ms
  transition_delay: 300ms
  # spinner shown after submitting the analog selection
  submit_delay: 3s
  # landing page KPI rotation
  kpi_interval: 3500ms
  animations: true

data:
  # YAML file merged over the built-in mock data (lists replace, maps merge)
  override_path: ""
  # reload the override file when it changes while the TUI runs
  watch: false

output:
  # text, json, markdown or csv
  default_format: text
  # auto, always or never
  color_mode: auto

logging:
  # debug, info, warn or error
  level: info
  # while the TUI runs logs go here instead of stderr
  file: ""
`
}

// MinimalSampleConfig returns a compact configuration file.
func MinimalSampleConfig() string {
	return `version: "1.0"
ui:
  theme: default
output:
  default_format: text
`
}
