package settings

import "os"

// Options captures the bootstrap decisions that determine where settings
// live and how forgiving startup should be. The CLI layer populates the
// fields it parsed from flags; ApplyEnv then fills anything still at its
// zero value from the environment, so CLI always wins over env, which
// always wins over the persisted file, which always wins over built-in
// defaults.
type Options struct {
	SettingsDir    string
	SettingsFile   string
	Portable       bool
	TempSettings   bool
	ResetSettings  bool
	NoConfirm      bool
	TestMode       bool
	Debug          bool
	Dev            bool
}

// ApplyEnv fills blank/false fields in opts from the documented environment
// variables. A flag explicitly set on the command line is never
// overwritten, matching "CLI over env" precedence.
func ApplyEnv(opts Options) Options {
	if opts.SettingsDir == "" {
		opts.SettingsDir = os.Getenv("APP_SETTINGS_DIR")
	}
	if opts.SettingsFile == "" {
		opts.SettingsFile = os.Getenv("APP_SETTINGS_FILE")
	}
	opts.Portable = opts.Portable || truthyEnv("APP_PORTABLE")
	opts.TempSettings = opts.TempSettings || truthyEnv("APP_TEMP_SETTINGS")
	opts.TestMode = opts.TestMode || truthyEnv("APP_TEST_MODE")
	opts.Debug = opts.Debug || truthyEnv("APP_DEBUG")
	opts.Dev = opts.Dev || truthyEnv("APP_DEV")
	if opts.TestMode {
		opts.NoConfirm = true
	}
	if !opts.NoConfirm && envSet("APP_SHOW_CONFIRMATIONS") {
		opts.NoConfirm = !truthyEnv("APP_SHOW_CONFIRMATIONS")
	}
	return opts
}

func envSet(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}

func truthyEnv(name string) bool {
	v := os.Getenv(name)
	return v == "1" || v == "true" || v == "TRUE" || v == "yes"
}
