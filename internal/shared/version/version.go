// Package version exposes build metadata injected with -ldflags.
package version

import "fmt"

// Set at build time:
//
//	-ldflags "-X helpdesk/internal/shared/version.Current=v1.2.0 -X helpdesk/internal/shared/version.Commit=abc1234"
var (
	Current = "dev"
	Commit  = "unknown"
)

// String formats the version for CLI output.
func String() string {
	return fmt.Sprintf("%s (%s)", Current, Commit)
}
