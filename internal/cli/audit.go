package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	auditThreshold float64
	auditJSON      bool
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "List stored prompts with low quality scores",
	Long: `Scores every stored prompt and lists those below the threshold, lowest first.
The threshold defaults to quality.low_score_threshold from the config.`,
	Args: cobra.NoArgs,
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().Float64Var(&auditThreshold, "threshold", 0, "flag prompts scoring below this value (default from config)")
	auditCmd.Flags().BoolVar(&auditJSON, "json", false, "output entries as JSON")
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, _ []string) error {
	threshold := auditThreshold
	if threshold <= 0 {
		threshold = appConfig.Quality.LowScoreThreshold
	}
	entries, err := promptService.Audit(cmd.Context(), threshold)
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	if auditJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal audit: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(entries) == 0 {
		cmd.Printf("No prompts below %.2f.\n", threshold)
		return nil
	}
	cmd.Printf("%d prompts below %.2f:\n\n", len(entries), threshold)
	for _, e := range entries {
		cmd.Printf("  %.2f  %s  %s\n", e.Report.Score, e.Document.ID, e.Document.Text)
	}
	return nil
}
