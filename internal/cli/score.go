package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"promptlens/internal/domain"
	"promptlens/internal/quality"
)

var (
	scoreJSON     bool
	scoreMinScore float64
)

var scoreCmd = &cobra.Command{
	Use:   "score [prompt]",
	Short: "Score a prompt's quality",
	Long: `Scores a prompt along five dimensions and prints the weighted composite.
Reads the prompt from stdin when no argument is given.

With --min-score the command fails when the composite score is below the
given value, which lets scripts gate on prompt quality.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "output the report as JSON")
	scoreCmd.Flags().Float64Var(&scoreMinScore, "min-score", 0, "fail when the score is below this value (0 disables)")
	rootCmd.AddCommand(scoreCmd)
}

type scoreOutput struct {
	domain.QualityReport
	Band        quality.Band `json:"band"`
	Suggestions []string     `json:"suggestions"`
}

func runScore(cmd *cobra.Command, args []string) error {
	prompt, err := promptArg(cmd, args)
	if err != nil {
		return err
	}
	report, err := promptService.ScoreQuality(prompt)
	if err != nil {
		return err
	}
	out := scoreOutput{
		QualityReport: report,
		Band:          quality.BandOf(report.Score),
		Suggestions:   quality.Suggestions(report),
	}

	if scoreJSON {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		cmd.Println(string(data))
	} else {
		printReport(cmd, out)
	}

	if scoreMinScore > 0 && report.Score < scoreMinScore {
		return fmt.Errorf("quality score %.2f is below minimum %.2f", report.Score, scoreMinScore)
	}
	return nil
}

func printReport(cmd *cobra.Command, out scoreOutput) {
	cmd.Printf("Quality score: %.0f%% (%s)\n", out.Score*100, out.Band)
	for _, name := range domain.MetricNames {
		cmd.Printf("  %-12s %3.0f%%\n", name, out.Metrics[name]*100)
	}
	if len(out.Suggestions) > 0 {
		cmd.Println()
		cmd.Println("Suggestions:")
		for _, s := range out.Suggestions {
			cmd.Printf("  - %s\n", s)
		}
	}
}

// promptArg returns the single positional argument or, without one, stdin.
func promptArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
