package internal

import (
	"strconv"
	"sync/atomic"
)

// Output verbosity, seeded from link-time defaults and overridden by flags.
var (
	quiet   atomic.Bool
	debug   atomic.Bool
	verbose atomic.Bool
)

func init() {
	seed(&quiet, rawQuiet)
	seed(&debug, rawDebug)
	seed(&verbose, rawVerbose)
}

// Stores the parsed value of raw into flag. Unparseable values leave the
// flag unset.
func seed(flag *atomic.Bool, raw string) {
	if v, err := strconv.ParseBool(raw); err == nil {
		flag.Store(v)
	}
}

// Enables or disables quiet mode.
//
// In quiet mode only warnings and errors are logged.
func SetQuiet(enabled bool) {
	quiet.Store(enabled)
}

// Whether only warnings and errors should be logged.
func IsQuiet() bool {
	return quiet.Load()
}

// Enables or disables debug logging. Debug takes precedence over quiet.
func SetDebug(enabled bool) {
	debug.Store(enabled)
}

// Whether debug logging is enabled.
func IsDebug() bool {
	return debug.Load()
}

// Enables or disables verbose logging, which adds source locations to log
// records.
func SetVerbose(enabled bool) {
	verbose.Store(enabled)
}

// Whether log records include source locations.
func IsVerbose() bool {
	return verbose.Load()
}
