// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Report the build's VCS revision from embedded build info.
package version

import (
	"fmt"
	"runtime/debug"
)

// GetVersion returns the version string derived from build info: the short
// VCS revision, "(dirty)" appended when the tree was modified, or "dev" when
// no build info is available.
func GetVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	var revision string
	var modified bool

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			if setting.Value == "true" {
				modified = true
			}
		}
	}

	if revision == "" {
		return "dev"
	}
	if modified {
		return fmt.Sprintf("%s (dirty)", revision)
	}
	return revision
}
