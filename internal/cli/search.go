package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"promptlens/internal/domain"
)

var (
	searchMode string
	searchJSON bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search stored prompts",
	Long: `Ranks the stored prompts by term-frequency cosine similarity to the query.

Modes:
  ranked     top matches with keywords, topics and the total match count
  threshold  every prompt scoring above the similarity threshold`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchMode, "mode", "m", string(domain.ModeRanked), "response mode: ranked or threshold")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	mode, err := domain.ParseSearchMode(searchMode)
	if err != nil {
		return err
	}
	resp, err := promptService.Search(cmd.Context(), args[0], mode)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		data, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}
	outputSearchTable(cmd, resp)
	return nil
}

func outputSearchTable(cmd *cobra.Command, resp domain.SearchResponse) {
	if len(resp.Results) == 0 {
		cmd.Println("No results found.")
		return
	}

	if resp.Mode == domain.ModeRanked {
		cmd.Printf("Showing %d of %d matches\n", len(resp.Results), resp.Total)
		if len(resp.Topics) > 0 {
			cmd.Printf("Topics: #%s\n", strings.Join(resp.Topics, " #"))
		}
	}
	cmd.Println("Results:")
	cmd.Println()
	for i, r := range resp.Results {
		cmd.Printf("  [%d] %s (%.2f)\n", i+1, r.Document.ID, r.Score)
		cmd.Printf("      %s\n", r.Document.Text)
		if len(r.Keywords) > 0 {
			cmd.Printf("      #%s\n", strings.Join(r.Keywords, " #"))
		}
		cmd.Println()
	}
}
