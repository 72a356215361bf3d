package settings

// Source indicates where a settings value came from.
type Source string

// Settings source constants.
const (
	// SourceDefault indicates the value is a built-in default.
	SourceDefault Source = "default"

	// SourceGlobal indicates the value came from global settings
	// (e.g., ~/.config/expconf/config.yaml).
	SourceGlobal Source = "global"

	// SourceLocal indicates the value came from local settings
	// (e.g., .expconf.yaml in the working directory).
	SourceLocal Source = "local"

	// SourceEnv indicates the value came from an environment variable.
	SourceEnv Source = "env"
)
