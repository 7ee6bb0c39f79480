package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// versionCmd prints the canopy version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print the version of the canopy binary.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "canopy %s\n", displayVersion(Version))
	},
}

// displayVersion returns release versions in canonical semver form
// ("1.2" becomes "v1.2.0") and anything else, such as "dev", unchanged.
func displayVersion(v string) string {
	if v == "" {
		return "dev"
	}
	candidate := v
	if candidate[0] != 'v' {
		candidate = "v" + candidate
	}
	if semver.IsValid(candidate) {
		// Canonical drops build metadata.
		return semver.Canonical(candidate) + semver.Build(candidate)
	}
	return v
}
