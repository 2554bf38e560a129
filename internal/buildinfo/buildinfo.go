package buildinfo

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for UI/logging.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Banner returns "name version (commit, date)" for window titles and boot
// logs, leaving out unknown parts.
func Banner(name string) string {
	s := name + " " + Short()
	switch {
	case Commit != "unknown" && Date != "unknown":
		s += " (" + Commit + ", " + Date + ")"
	case Commit != "unknown":
		s += " (" + Commit + ")"
	}
	return s
}
