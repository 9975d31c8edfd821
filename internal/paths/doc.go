// Provides the directory names and file locations used by cruxpack.
//
// Build output, staging, and publish directories are relative to the working
// directory the tool runs in. The user configuration file follows XDG
// conventions on Linux and platform-native conventions on macOS and Windows.
package paths
