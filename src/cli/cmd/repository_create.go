package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/vigilhq/vigil/src/api"
	"github.com/vigilhq/vigil/src/gitinfo"
	"github.com/vigilhq/vigil/src/output"
	"github.com/vigilhq/vigil/src/result"
)

var (
	createDescription   string
	createHomepage      string
	createDefaultBranch string
	createVisibility    string
)

var repositoryCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Register a repository for monitoring",
	Long: "Register a repository under the organization. The name defaults to\n" +
		"the current git repository; the server slugifies it and the canonical\n" +
		"slug is reported back.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		org, err := requireOrg()
		if err != nil {
			return err
		}
		client, err := newClient()
		if err != nil {
			return err
		}

		fields := api.RepositoryFields{
			Description:   createDescription,
			Homepage:      createHomepage,
			DefaultBranch: createDefaultBranch,
			Visibility:    createVisibility,
		}
		if len(args) == 1 {
			fields.Name = args[0]
		}

		// Fill unset fields from the local git repository, if any.
		if fields.Name == "" || fields.DefaultBranch == "" {
			info, _ := gitinfo.Detect(".")
			if fields.Name == "" {
				fields.Name = info.RepoName
			}
			if fields.DefaultBranch == "" {
				fields.DefaultBranch = info.Branch
			}
		}
		if fields.Name == "" {
			return usageErrorf("no repository name: pass one or run inside a git repository")
		}

		var env result.Envelope[*api.Repository]
		repo, err := client.CreateRepository(cmd.Context(), org, fields)
		if err != nil {
			env = failureFrom[*api.Repository](err)
		} else {
			env = result.Success(repo)
		}

		return finish(output.RepositoryCreated(os.Stdout, outputFormat(), env, fields.Name, output.UseColor()))
	},
}

func init() {
	repositoryCreateCmd.Flags().StringVar(&createDescription, "description", "", "repository description")
	repositoryCreateCmd.Flags().StringVar(&createHomepage, "homepage", "", "homepage URL")
	repositoryCreateCmd.Flags().StringVar(&createDefaultBranch, "default-branch", "", "default branch (default: current git branch)")
	repositoryCreateCmd.Flags().StringVar(&createVisibility, "visibility", "", "visibility (public or private)")
	repositoryCmd.AddCommand(repositoryCreateCmd)
}
