// Package buildinfo carries build-time metadata injected at link time. It is
// deliberately separate from the configuration system: none of this is
// user-configurable.
package buildinfo

import "fmt"

// Set at build time via -ldflags. The defaults mark a binary built without
// the release tooling.
var (
	version   = "dev"
	buildDate = "unknown"
)

// Context is an immutable snapshot of the build metadata.
type Context struct {
	Version   string
	BuildDate string
}

// Current returns the metadata for this binary.
func Current() Context {
	return Context{Version: version, BuildDate: buildDate}
}

// String formats the metadata for --version output.
func (c Context) String() string {
	return fmt.Sprintf("%s (built %s)", c.Version, c.BuildDate)
}
