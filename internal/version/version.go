package version

import "github.com/fatih/color"

// Build metadata for the calc binary. Release builds stamp GitCommit and
// BuildDate with -ldflags; a plain `go build` leaves them empty and the
// version command omits the corresponding lines.

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version, each component colorized. The color
	// package drops the escapes itself when stdout is not a terminal.
	Version = majorColor.Sprint("0") + "." + minorColor.Sprint("1") + "." + patchColor.Sprint("0")

	// GitCommit is the hash the binary was built from, when stamped.
	GitCommit = ""

	// BuildDate is the ISO-8601 build timestamp, when stamped.
	BuildDate = ""
)
