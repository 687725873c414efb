package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/vigilhq/vigil/src/api"
	"github.com/vigilhq/vigil/src/output"
	"github.com/vigilhq/vigil/src/result"
)

var delForce bool

var repositoryDelCmd = &cobra.Command{
	Use:     "del <slug>",
	Aliases: []string{"delete"},
	Short:   "Stop monitoring a repository",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !delForce {
			return usageErrorf("refusing to delete %s without --force", args[0])
		}
		org, err := requireOrg()
		if err != nil {
			return err
		}
		client, err := newClient()
		if err != nil {
			return err
		}

		var env result.Envelope[*api.Repository]
		if err := client.DeleteRepository(cmd.Context(), org, args[0]); err != nil {
			env = failureFrom[*api.Repository](err)
		} else {
			env = result.Success[*api.Repository](nil)
		}

		return finish(output.RepositoryDeleted(os.Stdout, outputFormat(), env, args[0], output.UseColor()))
	},
}

func init() {
	repositoryDelCmd.Flags().BoolVar(&delForce, "force", false, "skip the confirmation requirement")
	repositoryCmd.AddCommand(repositoryDelCmd)
}
