// Parses flags and runs the xpack subcommands.
//
// The CLI accepts the following global flags:
//
//	-q, --quiet     Suppress informational output.
//	-v, --verbose   Include source locations in log records.
//	-d, --debug     Enable debug output.
//
// Flags override build-time defaults set via linker flags. After parsing, the
// global logger is replaced with one reflecting the final level and
// verbosity before the selected subcommand runs.
package cli
