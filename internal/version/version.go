package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the appian CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Colored renders v with major, minor and patch in separate colors.
// A version that is not dotted is returned as is.
func Colored(v string, enabled bool) string {
	core, suffix, _ := strings.Cut(v, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return v
	}
	colors := []*color.Color{versionMajorColor, versionMinorColor, versionPatchColor}
	for i, c := range colors {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		parts[i] = c.Sprint(parts[i])
	}
	out := strings.Join(parts, ".")
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}
