package cmd

import "github.com/spf13/cobra"

var repositoryCmd = &cobra.Command{
	Use:     "repository",
	Aliases: []string{"repo"},
	Short:   "Manage monitored repositories",
}

func init() {
	rootCmd.AddCommand(repositoryCmd)
}
