package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/vigilhq/vigil/src/api"
	"github.com/vigilhq/vigil/src/output"
	"github.com/vigilhq/vigil/src/result"
)

var (
	updateName          string
	updateDescription   string
	updateHomepage      string
	updateDefaultBranch string
	updateVisibility    string
	updateArchived      bool
	updateUnarchived    bool
)

var repositoryUpdateCmd = &cobra.Command{
	Use:   "update <slug>",
	Short: "Update a monitored repository",
	Long: "Update writable fields of a repository. Only flags that were set\n" +
		"are sent; everything else keeps its current value.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		org, err := requireOrg()
		if err != nil {
			return err
		}
		client, err := newClient()
		if err != nil {
			return err
		}
		if updateArchived && updateUnarchived {
			return usageErrorf("--archived and --unarchived are mutually exclusive")
		}

		fields := api.RepositoryFields{}
		flagSet := false
		if cmd.Flags().Changed("name") {
			fields.Name = updateName
			flagSet = true
		}
		if cmd.Flags().Changed("description") {
			fields.Description = updateDescription
			flagSet = true
		}
		if cmd.Flags().Changed("homepage") {
			fields.Homepage = updateHomepage
			flagSet = true
		}
		if cmd.Flags().Changed("default-branch") {
			fields.DefaultBranch = updateDefaultBranch
			flagSet = true
		}
		if cmd.Flags().Changed("visibility") {
			fields.Visibility = updateVisibility
			flagSet = true
		}
		if updateArchived || updateUnarchived {
			archived := updateArchived
			fields.Archived = &archived
			flagSet = true
		}
		if !flagSet {
			return usageErrorf("nothing to update: pass at least one field flag")
		}

		var env result.Envelope[*api.Repository]
		repo, err := client.UpdateRepository(cmd.Context(), org, args[0], fields)
		if err != nil {
			env = failureFrom[*api.Repository](err)
		} else {
			env = result.Success(repo)
		}

		return finish(output.Repository(os.Stdout, outputFormat(), env, output.UseColor()))
	},
}

func init() {
	repositoryUpdateCmd.Flags().StringVar(&updateName, "name", "", "repository name")
	repositoryUpdateCmd.Flags().StringVar(&updateDescription, "description", "", "repository description")
	repositoryUpdateCmd.Flags().StringVar(&updateHomepage, "homepage", "", "homepage URL")
	repositoryUpdateCmd.Flags().StringVar(&updateDefaultBranch, "default-branch", "", "default branch")
	repositoryUpdateCmd.Flags().StringVar(&updateVisibility, "visibility", "", "visibility (public or private)")
	repositoryUpdateCmd.Flags().BoolVar(&updateArchived, "archived", false, "archive the repository")
	repositoryUpdateCmd.Flags().BoolVar(&updateUnarchived, "unarchived", false, "unarchive the repository")
	repositoryCmd.AddCommand(repositoryUpdateCmd)
}
