package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/strx/pkg/jsonsniff"
)

func newJSONCmd(a *app) *cobra.Command {
	var (
		format   string
		validate bool
	)

	cmd := &cobra.Command{
		Use:   "json <text>...",
		Short: "Decode text that looks like a JSON object",
		Long: `Decode text that looks like a JSON object and print it.

On failure the failure kind (GuardFailed, SyntaxError, StateMismatch,
ControlCharacter, DepthExceeded, InvalidEncoding or Unknown) is printed to
stderr and the command exits with status 1.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "yaml" {
				return fmt.Errorf("unsupported format %q (want json or yaml)", format)
			}

			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			if validate {
				if err := a.sniffer.Valid(text); err != nil {
					return reportSniff(cmd, err)
				}
				writeLine(cmd, "ok")
				return nil
			}

			m, err := a.sniffer.Parse(text)
			if err != nil {
				return reportSniff(cmd, err)
			}

			if format == "yaml" {
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(m); err != nil {
					return err
				}
				return enc.Close()
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(m)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	cmd.Flags().BoolVar(&validate, "validate", false, "only check the input, print ok on success")

	return cmd
}

func reportSniff(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", jsonsniff.KindOf(err), err)
	return &exitError{code: 1}
}
