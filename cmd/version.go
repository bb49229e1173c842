package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"movieobserver/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), versionString())
	},
}

func versionString() string {
	s := fmt.Sprintf("%s %s", config.AppName, version)
	if commit != "none" && commit != "" {
		s += fmt.Sprintf(" (%s)", commit)
	}
	return s
}
