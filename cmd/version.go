package cmd

import (
	"fmt"

	"github.com/0xERR0R/domainextractor/util"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates new command instance
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Args:  cobra.NoArgs,
		Short: "Print the version number of domainextractor",
		Run:   printVersion,
	}
}

func printVersion(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "domainextractor")
	fmt.Fprintf(out, "Version: %s\n", util.Version)
	fmt.Fprintf(out, "Build time: %s\n", util.BuildTime)
}
