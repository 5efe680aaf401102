package buildinfo

// Product is the user-facing program name.
const Product = "Goxel2"

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

// String returns the version line printed by --version.
func String() string {
	return Product + " " + Short()
}

// About returns the lines shown in the about box.
func About() []string {
	return []string{
		String(),
		"a cross-platform 3D voxel art editor extendable via Lua.",
	}
}
