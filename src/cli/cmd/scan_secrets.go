package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/vigilhq/vigil/src/output"
	"github.com/vigilhq/vigil/src/result"
	"github.com/vigilhq/vigil/src/scan"
)

var scanSecretsCmd = &cobra.Command{
	Use:   "secrets [path]",
	Short: "Scan the working tree for leaked secrets",
	Long: "Walk the directory and run every file through the secret detection\n" +
		"rules. Any finding makes the command fail.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		scanner, err := scan.NewScanner(cfg.Scan)
		if err != nil {
			return err
		}

		var env result.Envelope[*scan.Report]
		report, err := scanner.Scan(cmd.Context(), dir)
		if err != nil {
			env = result.Failure[*scan.Report](err.Error(), 0, "")
		} else {
			env = result.Success(report)
		}

		return finish(output.SecretsReport(os.Stdout, outputFormat(), env, output.UseColor()))
	},
}

func init() {
	scanCmd.AddCommand(scanSecretsCmd)
}
