// Package settings provides hierarchical resolution of the expconf tool's
// own settings (not the training configurations it composes).
//
// This package supports layered settings with clear precedence:
//  1. Environment variables (highest priority)
//  2. Local settings (.expconf.yaml in the working directory)
//  3. Global settings (~/.config/expconf/config.yaml)
//  4. Built-in defaults (lowest priority)
//
// # Basic Usage
//
// Create a resolver with the tool's defaults:
//
//	resolver := settings.NewResolver(settings.ResolverConfig{
//	    EnvPrefix:       "EXPCONF_",
//	    GlobalConfigDir: "expconf",
//	    LocalConfigName: ".expconf.yaml",
//	    Defaults: map[string]string{
//	        "config_dir": "configs",
//	        "runs_dir":   "runs",
//	    },
//	})
//
//	cfg := resolver.Resolve()
//	fmt.Println(cfg.Get("config_dir"))     // "configs"
//	fmt.Println(cfg.Source("config_dir"))  // "default"
//
// # Environment Variables
//
// Environment variables are automatically detected using the configured
// prefix:
//
//	# With EnvPrefix: "EXPCONF_"
//	EXPCONF_CONFIG_DIR=ml/configs  # sets "config_dir"
//	EXPCONF_RUNS_DIR=/tmp/runs     # sets "runs_dir"
//
// # Settings Sources
//
// Each resolved value tracks where it came from:
//   - "default": Built-in default value
//   - "global": ~/.config/expconf/config.yaml
//   - "local": .expconf.yaml in the working directory
//   - "env": Environment variable
package settings
