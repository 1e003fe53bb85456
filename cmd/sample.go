package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/jsonreq/samples"
)

var (
	sampleID  int64
	sampleURL string
)

// sampleCmd represents the sample command
var sampleCmd = &cobra.Command{
	Use:   "sample <kind>",
	Short: "Print a sample request",
	Long: `Print one of the built-in sample requests.

Read samples: single, columns, rely, array, complex, access_error, access_permitted
Write samples: post, put, delete`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: sampleKindNames(),
	RunE:      runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().Int64Var(&sampleID, "id", samples.DefaultID, "user or moment id")
	sampleCmd.Flags().StringVar(&sampleURL, "url", "", "picture URL attached to post samples")
}

func sampleKindNames() []string {
	kinds := samples.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

func runSample(cmd *cobra.Command, args []string) error {
	kind, err := samples.ParseKind(args[0])
	if err != nil {
		return fmt.Errorf("%w (choose one of: %s)", err, strings.Join(sampleKindNames(), ", "))
	}

	r, err := samples.Build(kind, samples.Params{ID: sampleID, URL: sampleURL}, requestOptions()...)
	if err != nil {
		return err
	}

	logger.Debug().Str("kind", string(kind)).Bool("write", kind.IsWrite()).Msg("Built sample request")
	return writeJSON(cmd.OutOrStdout(), r, indent)
}
