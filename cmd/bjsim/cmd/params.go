package cmd

const (
	// AppName is the human-readable name printed in help output.
	AppName = "monoblackjack"

	// BinaryName is the name of the CLI binary.
	BinaryName = "bjsim"

	// EnvPrefix is the environment variable prefix used by the config system.
	// Example: BJSIM_HOME, BJSIM_RULES_DECK_COUNT, BJSIM_LOG_LEVEL.
	EnvPrefix = "BJSIM"

	// ConfigFileName is looked up under the home directory when --config is
	// not given.
	ConfigFileName = "config.toml"

	// DataDirName holds the analytics database under the home directory.
	DataDirName = "data"
)
