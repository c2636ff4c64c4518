package cli

import (
	"github.com/spf13/cobra"

	"promptlens/internal/keywords"
)

var keywordsTop int

var keywordsCmd = &cobra.Command{
	Use:   "keywords [text]",
	Short: "Print the most frequent non-stopword terms of a text",
	Long:  `Reads the text from stdin when no argument is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := promptArg(cmd, args)
		if err != nil {
			return err
		}
		for _, k := range keywords.Extract(in, keywordsTop) {
			cmd.Println(k)
		}
		return nil
	},
}

func init() {
	keywordsCmd.Flags().IntVarP(&keywordsTop, "top", "n", keywords.DefaultTopN, "number of keywords")
	rootCmd.AddCommand(keywordsCmd)
}
