// Package config resolves the settings for a packaging run.
//
// Settings are layered. Built-in defaults reproduce the standard release of
// the project; a YAML file may override any of them; environment variables
// prefixed with CRUXPACK_ override the file. Command-line flags are applied
// last by the cli package.
//
// Example configuration file:
//
//	product: NotPong
//	command: rustc dev_util.rs -o dev_util && ./dev_util --release
//	windows_command: rustc dev_util.rs -o dev_util.exe && dev_util --release
//	packages:
//	  - build-essential
//	  - libasound2-dev
//	skip_deps: false
package config
