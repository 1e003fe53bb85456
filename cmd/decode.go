package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/s0up4200/jsonreq/request"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Show the decoded values of a JSON request",
	Long: `Read a JSON request from a file (or stdin when the file is "-" or omitted)
and print every entry in order with its string values percent-decoded.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to read request: %w", err)
	}

	r, err := request.Parse(data, request.WithLogger(logger))
	if err != nil {
		return err
	}

	printDecoded(cmd.OutOrStdout(), r, "")
	if n := r.Fallbacks(); n > 0 {
		logger.Warn().Int("fallbacks", n).Msg("Some values could not be decoded and are shown as stored")
	}
	return nil
}

// printDecoded writes one line per entry, nested objects indented below their key
func printDecoded(w io.Writer, r *request.Request, prefix string) {
	for key, value := range r.Decoded() {
		if obj, ok := value.(*request.Request); ok {
			fmt.Fprintf(w, "%s%s:\n", prefix, key)
			printDecoded(w, obj, prefix+"  ")
			continue
		}
		fmt.Fprintf(w, "%s%s: %v\n", prefix, key, value)
	}
}
