package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/jsonreq/request"
)

var (
	searchMode string
	searchKey  string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <value>",
	Short: "Print the match pattern for a search value",
	Long: `Print the match pattern generated for a value.

Modes: contain_full (default), contain_order, contain_single, contain_any, start,
end, start_single, end_single, part_match, no_contain, no_part_match.
With --key the pattern is printed as a request entry instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVarP(&searchMode, "mode", "m", "", "search mode name or number")
	searchCmd.Flags().StringVarP(&searchKey, "key", "k", "", "emit {\"<key>$\": pattern} instead of the bare pattern")
}

func runSearch(cmd *cobra.Command, args []string) error {
	mode, err := request.ParseSearchMode(searchMode)
	if err != nil {
		return err
	}

	if mode == request.ContainAny || mode == request.PartMatch {
		logger.Warn().Str("mode", mode.String()).Msg("Search mode has no dedicated pattern, using contain_full")
	}

	if searchKey == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), request.Search(args[0], mode))
		return err
	}

	r := request.New(requestOptions()...)
	r.PutSearchWith(searchKey, args[0], mode)
	return writeJSON(cmd.OutOrStdout(), r, indent)
}
