// Parses flags, configures logging, and runs cruxpack commands.
//
// Running cruxpack without a command packages a release:
//
//	cruxpack [publish]   Build and archive the release (default).
//	cruxpack detect      Print the detected host and archive name.
//	cruxpack version     Print version information.
//
// Global flags:
//
//	-q, --quiet          Suppress informational output.
//	-v, --verbose        Include source locations in log output.
//	-d, --debug          Enable debug output.
//	-c, --config=PATH    Configuration file to load.
//
// Flags override build-time defaults set via linker flags. After parsing, the
// global logger is rebuilt to reflect the final level and verbosity before the
// command runs.
package cli
