package cmd

import "github.com/spf13/cobra"

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run local scans",
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
