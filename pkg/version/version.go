// Package version reports the build version of the binaries.
package version

import "fmt"

// Set with -ldflags "-X github.com/frzifus/macvendor/pkg/version.version=v1.2.3".
var (
	version = "dev"
	commit  = "unknown"
)

// Version returns the version and commit the binary was built from.
func Version() string {
	return fmt.Sprintf("%s (%s)", version, commit)
}
