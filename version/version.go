// Package version holds the version of the colourado binaries.
package version

// Version is the current colourado version.
var Version = "0.1.0"
