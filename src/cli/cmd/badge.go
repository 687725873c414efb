package cmd

import "github.com/spf13/cobra"

var badgeCmd = &cobra.Command{
	Use:   "badge",
	Short: "Generate status badges",
}

func init() {
	rootCmd.AddCommand(badgeCmd)
}
