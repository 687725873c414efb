package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vigilhq/vigil/src/badge"
)

var (
	badgeScore  int
	badgeLabel  string
	badgeOutput string
)

var badgeGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render a security-score badge as SVG",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if badgeScore < 0 || badgeScore > 100 {
			return usageErrorf("--score must be between 0 and 100, got %d", badgeScore)
		}

		label := badgeLabel
		if label == "" {
			label = cfg.Badge.Label
		}
		out := badgeOutput
		if out == "" {
			out = cfg.Badge.Output
		}

		var metrics *badge.FontMetrics
		var err error
		if cfg.Badge.FontFile != "" {
			metrics, err = badge.LoadFontFile(cfg.Badge.FontFile, cfg.Badge.FontSize)
		} else {
			metrics, err = badge.LoadDefaultFont(cfg.Badge.FontSize)
		}
		if err != nil {
			return fmt.Errorf("loading badge font: %w", err)
		}

		svg := badge.New(metrics).Generate(badge.ScoreBadge(label, badgeScore))
		if err := os.WriteFile(out, []byte(svg), 0o644); err != nil {
			return fmt.Errorf("writing badge: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "badge written to %s\n", out)
		}
		return nil
	},
}

func init() {
	badgeGenerateCmd.Flags().IntVar(&badgeScore, "score", 0, "security score (0-100)")
	badgeGenerateCmd.Flags().StringVar(&badgeLabel, "label", "", "badge label text")
	badgeGenerateCmd.Flags().StringVar(&badgeOutput, "output", "", "output SVG path")
	badgeGenerateCmd.MarkFlagRequired("score")
	badgeCmd.AddCommand(badgeGenerateCmd)
}
