package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/albapepper/qbscore/internal/config"
	"github.com/albapepper/qbscore/internal/pipeline"
	"github.com/albapepper/qbscore/internal/ranking"
	"github.com/albapepper/qbscore/internal/report"
)

// --------------------------------------------------------------------------
// report command
// --------------------------------------------------------------------------

func reportCmd() *cobra.Command {
	var (
		flags    inputFlags
		output   string
		headless bool
		width    float64
		height   float64
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the passer rating vs QBScore chart",
		Long: "Render the chart to an image file. With --headless (the default when no " +
			"display is available) the command exits once the file is written; otherwise " +
			"the image is opened and the command waits for Enter before exiting.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(&flags, func(ctx context.Context, cfg *config.Config, res *pipeline.Result) error {
				if output != "" {
					cfg.OutputPath = output
				}
				if cmd.Flags().Changed("headless") {
					cfg.Headless = headless
				}
				if width > 0 {
					cfg.WidthIn = width
				}
				if height > 0 {
					cfg.HeightIn = height
				}

				opts := report.Options{
					Width:  vg.Length(cfg.WidthIn) * vg.Inch,
					Height: vg.Length(cfg.HeightIn) * vg.Inch,
				}
				if err := report.Render(res, cfg.OutputPath, opts); err != nil {
					return err
				}
				logger.Info("Report written", "path", cfg.OutputPath, "headless", cfg.Headless)

				if cfg.Headless {
					return nil
				}
				return report.Show(ctx, cfg.OutputPath, os.Stdin, os.Stdout)
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Image path; format from extension (default $QBSCORE_OUTPUT or qb_report.png)")
	cmd.Flags().BoolVar(&headless, "headless", false, "Exit right after writing the image instead of displaying it")
	cmd.Flags().Float64Var(&width, "width", 0, "Figure width in inches (default 22)")
	cmd.Flags().Float64Var(&height, "height", 0, "Figure height in inches (default 14)")
	return cmd
}

// --------------------------------------------------------------------------
// rank command
// --------------------------------------------------------------------------

func rankCmd() *cobra.Command {
	var (
		flags  inputFlags
		format string
	)
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Print players ordered by QBScore with both ranks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "table" && format != "json" {
				return fmt.Errorf("--format must be table or json, got %q", format)
			}
			return runPipeline(&flags, func(ctx context.Context, cfg *config.Config, res *pipeline.Result) error {
				if format == "json" {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(res)
				}
				return writeTable(cmd.OutOrStdout(), res)
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&format, "format", "table", "Output format (table, json)")
	return cmd
}

func writeTable(out io.Writer, res *pipeline.Result) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Player\tPasserRating\tQBScore\tPasserPos\tQBScorePos\tDiff\t")
	for _, p := range ranking.ByQBScore(res.Players) {
		fmt.Fprintf(tw, "%s\t%.1f\t%.2f\t%d\t%d\t%+d\t\n",
			p.Player, p.PasserRating, p.QBScore, p.PasserRank, p.QBScoreRank, p.RankDiff)
	}
	return tw.Flush()
}
