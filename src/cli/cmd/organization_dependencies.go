package cmd

import (
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"
	"github.com/vigilhq/vigil/src/api"
	"github.com/vigilhq/vigil/src/output"
	"github.com/vigilhq/vigil/src/result"
)

var (
	depsSearch string
	depsLimit  int
	depsOffset int
	depsRange  string
)

var organizationDependenciesCmd = &cobra.Command{
	Use:     "dependencies",
	Aliases: []string{"deps"},
	Short:   "Search dependencies across all monitored repositories",
	Long: "Search the organization-wide dependency inventory. --range filters\n" +
		"the page locally by a semver constraint (e.g. \">=4.17.0 <4.17.21\");\n" +
		"rows whose version does not parse as semver are dropped by the filter.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		org, err := requireOrg()
		if err != nil {
			return err
		}
		client, err := newClient()
		if err != nil {
			return err
		}

		var constraint *semver.Constraints
		if depsRange != "" {
			constraint, err = semver.NewConstraint(depsRange)
			if err != nil {
				return usageErrorf("invalid --range %q: %v", depsRange, err)
			}
		}

		search := api.DependencySearch{
			Query:  depsSearch,
			Limit:  depsLimit,
			Offset: depsOffset,
		}

		var env result.Envelope[*api.DependencyPage]
		page, err := client.SearchDependencies(cmd.Context(), org, search)
		if err != nil {
			env = failureFrom[*api.DependencyPage](err)
		} else {
			if constraint != nil {
				page.Rows = filterByRange(page.Rows, constraint)
			}
			env = result.Success(page)
		}

		return finish(output.Dependencies(os.Stdout, outputFormat(), env, output.UseColor()))
	},
}

// filterByRange keeps rows whose version satisfies the constraint.
func filterByRange(rows []api.Dependency, c *semver.Constraints) []api.Dependency {
	kept := rows[:0]
	for _, row := range rows {
		v, err := semver.NewVersion(row.Version)
		if err != nil {
			continue
		}
		if c.Check(v) {
			kept = append(kept, row)
		}
	}
	return kept
}

func init() {
	organizationDependenciesCmd.Flags().StringVar(&depsSearch, "search", "", "substring match on dependency name")
	organizationDependenciesCmd.Flags().IntVar(&depsLimit, "limit", 0, "page size")
	organizationDependenciesCmd.Flags().IntVar(&depsOffset, "offset", 0, "page offset")
	organizationDependenciesCmd.Flags().StringVar(&depsRange, "range", "", "semver constraint to filter versions")
	organizationCmd.AddCommand(organizationDependenciesCmd)
}
