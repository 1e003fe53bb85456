package cmd

import (
	"fmt"
	"strings"

	"github.com/blang/semver"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records the build version and time
func SetVersion(v, t string) {
	version = v
	buildTime = t
	rootCmd.Version = v
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	// No config needed
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE:              runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), formatVersion(version, buildTime))
	return nil
}

// formatVersion reports release builds as semver and anything else verbatim
func formatVersion(v, built string) string {
	if parsed, err := semver.Parse(strings.TrimPrefix(v, "v")); err == nil {
		return fmt.Sprintf("jsonreq v%s (built %s)", parsed, built)
	}
	return fmt.Sprintf("jsonreq %s (built %s)", v, built)
}
