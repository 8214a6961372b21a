package entity

// ConfigKeyInfo describes one entry in the settings schema: its dotted path,
// type, default, and documentation, suitable for rendering a settings UI or
// exporting a JSON schema.
type ConfigKeyInfo struct {
	Key         string   `json:"key"`
	Type        string   `json:"type"`
	Default     string   `json:"default"`
	Description string   `json:"description"`
	Values      []string `json:"values,omitempty"`
	Range       string   `json:"range,omitempty"`
	Section     string   `json:"section"`
}
