// Package config provides configuration loading and validation for crateup.
package config

// Config represents the complete crateup configuration.
// Targets is an ordered list: installation happens in declaration order,
// primary target first.
type Config struct {
	Project ProjectConfig  `json:"project" yaml:"project"`
	Tool    string         `json:"tool,omitempty" yaml:"tool,omitempty"`
	Targets []TargetConfig `json:"targets" yaml:"targets"`
}

// ProjectConfig contains project metadata.
type ProjectConfig struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// TargetConfig defines a single install target.
type TargetConfig struct {
	Name      string   `json:"name" yaml:"name"`
	Title     string   `json:"title,omitempty" yaml:"title,omitempty"`
	Directory string   `json:"directory,omitempty" yaml:"directory,omitempty"`
	Features  []string `json:"features,omitempty" yaml:"features,omitempty"`
	ExtraArgs []string `json:"extra_args,omitempty" yaml:"extra_args,omitempty"`
}
