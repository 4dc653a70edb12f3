package config

// Default configuration values.
const (
	// DefaultTool is the external install command invoked for each target.
	DefaultTool = "cargo"

	// DefaultPluginDirPrefix is where plugin crates live relative to the root.
	DefaultPluginDirPrefix = "crates/nu_plugin_"

	// DefaultPrimaryFeatures is the feature list for the primary target.
	// Plugins are installed without features unless configured otherwise.
	DefaultPrimaryFeatures = "dataframe"
)

// defaultPluginNames is the fixed plugin list, in install order.
var defaultPluginNames = []string{
	"inc",
	"gstat",
	"query",
	"example",
	"custom_values",
	"formats",
}

// DefaultConfig returns the built-in configuration used when no config file
// is present: the primary crate at the workspace root followed by the
// standard plugin set.
func DefaultConfig() *Config {
	targets := make([]TargetConfig, 0, len(defaultPluginNames)+1)
	targets = append(targets, TargetConfig{
		Name:      "primary",
		Directory: ".",
		Features:  []string{DefaultPrimaryFeatures},
	})
	for _, name := range defaultPluginNames {
		targets = append(targets, TargetConfig{
			Name:      name,
			Directory: DefaultPluginDirPrefix + name,
		})
	}

	cfg := &Config{
		Project: ProjectConfig{Name: "workspace"},
		Tool:    DefaultTool,
		Targets: targets,
	}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Tool == "" {
		cfg.Tool = DefaultTool
	}
	for i := range cfg.Targets {
		// Default directory follows the plugin layout convention
		if cfg.Targets[i].Directory == "" {
			cfg.Targets[i].Directory = DefaultPluginDirPrefix + cfg.Targets[i].Name
		}
	}
}
