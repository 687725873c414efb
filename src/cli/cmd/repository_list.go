package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/vigilhq/vigil/src/api"
	"github.com/vigilhq/vigil/src/output"
	"github.com/vigilhq/vigil/src/result"
)

var (
	listSort      string
	listDirection string
	listPerPage   int
	listPage      int
	listAll       bool
)

var repositoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List monitored repositories",
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

		q := api.ListQuery{
			Sort:      listSort,
			Direction: listDirection,
			PerPage:   listPerPage,
			Page:      listPage,
		}

		var env result.Envelope[[]api.Repository]
		if listAll {
			repos, err := client.ListAllRepositories(cmd.Context(), org, q)
			if err != nil {
				env = failureFrom[[]api.Repository](err)
			} else {
				env = result.Success(repos)
			}
		} else {
			page, err := client.ListRepositories(cmd.Context(), org, q)
			if err != nil {
				env = failureFrom[[]api.Repository](err)
			} else {
				env = result.Success(page.Results)
			}
		}

		return finish(output.RepositoryList(os.Stdout, outputFormat(), env, output.UseColor()))
	},
}

func init() {
	repositoryListCmd.Flags().StringVar(&listSort, "sort", "", "sort field (name, created)")
	repositoryListCmd.Flags().StringVar(&listDirection, "direction", "", "sort direction (asc, desc)")
	repositoryListCmd.Flags().IntVar(&listPerPage, "per-page", 0, "page size")
	repositoryListCmd.Flags().IntVar(&listPage, "page", 0, "page number")
	repositoryListCmd.Flags().BoolVar(&listAll, "all", false, "follow pagination and list everything")
	repositoryCmd.AddCommand(repositoryListCmd)
}
