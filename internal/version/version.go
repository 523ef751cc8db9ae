// Package version contains version information.
package version

import "runtime/debug"

// Version information, set with -ldflags "-X" at release build time.
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// GetVersion returns the version string
func GetVersion() string {
	return Version
}

// GetFullVersion returns version with build metadata.
// When no commit was stamped in, the VCS revision recorded by the Go toolchain is used.
func GetFullVersion() string {
	commit := GitCommit
	if commit == "unknown" {
		if rev, ok := vcsRevision(); ok {
			commit = rev
		}
	}
	return Version + " (build: " + BuildDate + ", commit: " + commit + ")"
}

func vcsRevision() (string, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			rev := s.Value
			if len(rev) > 12 {
				rev = rev[:12]
			}
			return rev, true
		}
	}
	return "", false
}
