// Package deps installs the native libraries a release build links against.
//
// Only Linux hosts need preparation: the package index is refreshed and the
// configured packages are installed with apt under sudo. On every other
// platform [Prepare] does nothing, since the toolchain there ships what the
// build needs.
package deps
