package cmd

import "github.com/spf13/cobra"

var seaCmd = &cobra.Command{
	Use:   "sea",
	Short: "Build single-executable releases",
	Long: "Package the JS bundle into a self-contained executable using the\n" +
		"Node.js single-executable-application mechanism.",
}

func init() {
	rootCmd.AddCommand(seaCmd)
}
