// Package version provides centralized version information for this
// module's CLI.
package version

// Version holds the current release version. Overridable at build
// time using ldflags.
var Version = "0.1.0"
