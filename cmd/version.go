package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosap/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosap",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "gosap v%s\n", version.Version)
		fmt.Fprintln(out, "SAP2000 Result Post-Processor")
		fmt.Fprintf(out, "Commit %s, built %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
