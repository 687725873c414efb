package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vigilhq/vigil/src/models"
)

var (
	modelsFeatures  []string
	modelsFetchOnly bool
)

var seaModelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Build the WASM model bundle",
	Long: "Fetch, quantize, and compile the ML model assets into the wasm\n" +
		"bundle, then embed the compiled module for the executable build.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := models.NewPipeline(cfg.Models)
		p.Verbose = verbose

		if modelsFetchOnly {
			return p.FetchAll(cmd.Context())
		}
		if len(modelsFeatures) > 0 {
			if err := p.CheckToolchain(cmd.Context()); err != nil {
				return err
			}
			if err := p.FetchAll(cmd.Context()); err != nil {
				return err
			}
			if err := p.QuantizeAll(cmd.Context()); err != nil {
				return err
			}
			if err := p.BuildBundleWithFeatures(cmd.Context(), modelsFeatures); err != nil {
				return err
			}
			return p.EmbedBundle()
		}
		return p.Run(cmd.Context())
	},
}

func init() {
	seaModelsCmd.Flags().StringSliceVar(&modelsFeatures, "features", nil, "cargo features for the bundle crate")
	seaModelsCmd.Flags().BoolVar(&modelsFetchOnly, "fetch-only", false, "only download model assets")
	seaCmd.AddCommand(seaModelsCmd)
}
