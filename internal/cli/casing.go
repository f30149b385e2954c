package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/strx/pkg/strcase"
)

func newSnakeCmd(a *app) *cobra.Command {
	var (
		delim string
		safe  bool
	)

	cmd := &cobra.Command{
		Use:   "snake <text>...",
		Short: "Convert text to snake_case",
		Long: `Convert text to snake_case.

With --safe the result is also slugified, so only letters, digits and the
delimiter remain.`,
		Args: cobra.MinimumNArgs(1),
		RunE: transform(func(cmd *cobra.Command, text string) string {
			if safe {
				return a.converter(cmd.Context()).SnakeSafe(cmd.Context(), text, delim)
			}
			return a.converter(cmd.Context()).Snake(cmd.Context(), text, delim)
		}),
	}

	cmd.Flags().StringVarP(&delim, "delim", "d", strcase.DefaultDelimiter, "word delimiter")
	cmd.Flags().BoolVar(&safe, "safe", false, "slugify the result")

	return cmd
}

func newCamelCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "camel <text>...",
		Short: "Convert text to camelCase",
		Args:  cobra.MinimumNArgs(1),
		RunE: transform(func(cmd *cobra.Command, text string) string {
			return a.converter(cmd.Context()).Camel(cmd.Context(), text)
		}),
	}
}

func newStudlyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "studly <text>...",
		Short: "Convert text to StudlyCase",
		Args:  cobra.MinimumNArgs(1),
		RunE: transform(func(cmd *cobra.Command, text string) string {
			return a.converter(cmd.Context()).Studly(cmd.Context(), text)
		}),
	}
}
