package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vigilhq/vigil/src/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the vigil version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
