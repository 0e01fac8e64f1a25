package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("learnpath", displayVersion(version))
	},
}

// displayVersion canonicalizes a release tag. Anything that is not a
// semantic version, such as a development build, is printed unchanged.
func displayVersion(v string) string {
	if !semver.IsValid(v) {
		if sv := "v" + v; semver.IsValid(sv) {
			return semver.Canonical(sv)
		}
		return v
	}
	return semver.Canonical(v)
}
