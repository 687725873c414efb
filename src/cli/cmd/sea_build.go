package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vigilhq/vigil/src/sea"
)

var (
	seaBundle      string
	seaOutputDir   string
	seaBinaryName  string
	seaNodeVersion string
)

var seaBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the executable from the JS bundle",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b := sea.NewBuilder()
		b.Bundle = cfg.SEA.Bundle
		b.OutputDir = cfg.SEA.OutputDir
		b.BinaryName = cfg.SEA.BinaryName
		b.NodeVersion = cfg.SEA.NodeVersion
		b.NodeDistURL = cfg.SEA.NodeDistURL
		b.UseCodeCache = cfg.SEA.UseCodeCache
		b.Verbose = verbose

		if seaBundle != "" {
			b.Bundle = seaBundle
		}
		if seaOutputDir != "" {
			b.OutputDir = seaOutputDir
		}
		if seaBinaryName != "" {
			b.BinaryName = seaBinaryName
		}
		if seaNodeVersion != "" {
			b.NodeVersion = seaNodeVersion
		}

		result, err := b.Build(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "built %s\n", result.Executable)
		return nil
	},
}

func init() {
	seaBuildCmd.Flags().StringVar(&seaBundle, "bundle", "", "JS bundle to embed")
	seaBuildCmd.Flags().StringVar(&seaOutputDir, "output-dir", "", "build output directory")
	seaBuildCmd.Flags().StringVar(&seaBinaryName, "binary-name", "", "name of the produced executable")
	seaBuildCmd.Flags().StringVar(&seaNodeVersion, "node-version", "", "Node.js version to embed")
	seaCmd.AddCommand(seaBuildCmd)
}
