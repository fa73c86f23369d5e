package config

// SampleConfig returns a fully commented configuration file
func SampleConfig() string {
	return `# psbrowse configuration
version: "1.0"

# Where the problem statement dataset comes from. The script produced by the
# scraper is tried first; the fallback is a plain JSON array, either a file or
# an http(s) URL.
data:
  script_path: "./data.js"
  fallback_path: "./data.json"
  # Variable the script assigns, e.g. window.SIH_DATA = [...]
  global_name: "SIH_DATA"
  # Reload the browser when the dataset files change
  watch: false
  # Timeout for a remote fallback; 0 waits for as long as it takes
  fetch_timeout: 0s

# Batch output (list, show)
output:
  default_format: "text"  # text|json|markdown|csv
  color_mode: "auto"      # auto|always|never
  emoji: true
  verbose: false

# Interactive browser
ui:
  theme: "default"        # default|high-contrast|minimal
  mouse: true
  alt_screen: true
  markdown_style: "auto"  # auto|dark|light|notty

# Diagnostics written while the browser owns the terminal
log:
  file: ""
`
}

// MinimalSampleConfig returns a configuration with only essential settings
func MinimalSampleConfig() string {
	return `version: "1.0"
data:
  script_path: "./data.js"
  fallback_path: "./data.json"
output:
  default_format: "text"
`
}
