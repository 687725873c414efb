package cmd

import "github.com/spf13/cobra"

var organizationCmd = &cobra.Command{
	Use:     "organization",
	Aliases: []string{"org"},
	Short:   "Inspect organization settings and inventory",
}

func init() {
	rootCmd.AddCommand(organizationCmd)
}
