package cli

import (
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/strx/pkg/strutil"
)

type matcher func(needles []string, haystack string) bool

var (
	matchStarts   matcher = strutil.StartsWithAny
	matchContains matcher = strutil.ContainsAny
	matchEnds     matcher = strutil.EndsWithAny
)

// newMatchCmd builds a predicate command that prints true or false and
// exits with status 1 on false.
func newMatchCmd(a *app, name, short string, match matcher) *cobra.Command {
	var needles []string

	cmd := &cobra.Command{
		Use:   name + " --needle N [--needle N]... <text>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			ok := match(needles, text)
			a.log.DebugContext(cmd.Context(), "match evaluated",
				slog.Int("needles", len(needles)),
				slog.Bool("result", ok),
			)

			writeLine(cmd, strconv.FormatBool(ok))
			if !ok {
				return &exitError{code: 1}
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&needles, "needle", nil, "needle to look for (repeatable)")
	_ = cmd.MarkFlagRequired("needle")

	return cmd
}
