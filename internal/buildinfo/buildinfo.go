// Package buildinfo carries the version stamped in with -ldflags, e.g.
//
//	-X siikasaurus/internal/buildinfo.Version=v1.2.0
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the version, else the commit, else "dev". It goes into the
// window title and the boot log line.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Line is the full -version output.
func Line() string {
	return "siikasaurus " + Short() + " commit " + Commit + " built " + Date
}
