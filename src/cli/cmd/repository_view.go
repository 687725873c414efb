package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/vigilhq/vigil/src/api"
	"github.com/vigilhq/vigil/src/output"
	"github.com/vigilhq/vigil/src/result"
)

var repositoryViewCmd = &cobra.Command{
	Use:   "view <slug>",
	Short: "Show a monitored repository",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		org, err := requireOrg()
		if err != nil {
			return err
		}
		client, err := newClient()
		if err != nil {
			return err
		}

		var env result.Envelope[*api.Repository]
		repo, err := client.Repository(cmd.Context(), org, args[0])
		if err != nil {
			env = failureFrom[*api.Repository](err)
		} else {
			env = result.Success(repo)
		}

		return finish(output.Repository(os.Stdout, outputFormat(), env, output.UseColor()))
	},
}

func init() {
	repositoryCmd.AddCommand(repositoryViewCmd)
}
