// Package version carries build metadata injected by the linker.
package version

// Populated via -ldflags at build time; defaults cover plain go build.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String returns a single human-readable version line.
func String() string {
	return Version + " (" + CommitHash + ", " + BuildDate + ")"
}
