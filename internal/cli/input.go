package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// readText joins args with spaces, or reads stdin when the only arg is "-".
// A single trailing line break from stdin is dropped.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		s := strings.TrimSuffix(string(b), "\n")
		return strings.TrimSuffix(s, "\r"), nil
	}
	return strings.Join(args, " "), nil
}

func writeLine(cmd *cobra.Command, s string) {
	fmt.Fprintln(cmd.OutOrStdout(), s)
}
