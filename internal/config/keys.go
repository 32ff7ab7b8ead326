package config

// Configuration key constants to prevent typos and enable autocomplete
const (
	// Build configuration
	KeyProfile  = "PROFILE"  // cargo profile: debug, release or a custom profile name
	KeyLocked   = "LOCKED"   // pass --locked to cargo
	KeyFeatures = "FEATURES" // comma separated cargo features

	// Distribution configuration
	KeyDistDir = "DIST_DIR" // directory inside the target dir that receives dist output

	// EnvPrefix marks keys that become environment overrides for cargo,
	// e.g. ENV_RUSTFLAGS=-Dwarnings sets RUSTFLAGS.
	EnvPrefix = "ENV_"
)

// Default values for configuration keys
var Defaults = map[string]string{
	KeyProfile:  "debug",
	KeyLocked:   "false",
	KeyFeatures: "",
	KeyDistDir:  "dist",
}
