// Package version holds build metadata for vsut binaries.
package version

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String formats the build metadata for debug output.
func String() string {
	return Version + " (" + CommitHash + ", " + BuildDate + ")"
}
