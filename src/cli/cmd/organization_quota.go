package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/vigilhq/vigil/src/api"
	"github.com/vigilhq/vigil/src/output"
	"github.com/vigilhq/vigil/src/result"
)

var organizationQuotaCmd = &cobra.Command{
	Use:   "quota",
	Short: "Show plan usage and limits",
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

		var env result.Envelope[*api.Quota]
		quota, err := client.OrganizationQuota(cmd.Context(), org)
		if err != nil {
			env = failureFrom[*api.Quota](err)
		} else {
			env = result.Success(quota)
		}

		return finish(output.Quota(os.Stdout, outputFormat(), env, output.UseColor()))
	},
}

func init() {
	organizationCmd.AddCommand(organizationQuotaCmd)
}
