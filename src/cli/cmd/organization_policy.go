package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/vigilhq/vigil/src/api"
	"github.com/vigilhq/vigil/src/output"
	"github.com/vigilhq/vigil/src/result"
)

var organizationPolicyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Show the organization security policy",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		org, err := requireOrg()
		if err != nil {
			return err
		}
		client, err := newClient()
		if err != nil {
			return err
		}

		var env result.Envelope[*api.SecurityPolicy]
		policy, err := client.SecurityPolicy(cmd.Context(), org)
		if err != nil {
			env = failureFrom[*api.SecurityPolicy](err)
		} else {
			env = result.Success(policy)
		}

		return finish(output.Policy(os.Stdout, outputFormat(), env, output.UseColor()))
	},
}

func init() {
	organizationCmd.AddCommand(organizationPolicyCmd)
}
