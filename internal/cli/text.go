package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/strx/pkg/slug"
	"github.com/dmitrymomot/strx/pkg/strutil"
	"github.com/dmitrymomot/strx/pkg/translit"
)

// transform wraps a single-input command body.
func transform(fn func(cmd *cobra.Command, text string) string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		text, err := readText(cmd, args)
		if err != nil {
			return err
		}
		writeLine(cmd, fn(cmd, text))
		return nil
	}
}

func newTranslitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ascii <text>...",
		Aliases: []string{"translit"},
		Short:   "Transliterate text to printable ASCII",
		Args:    cobra.MinimumNArgs(1),
		RunE: transform(func(cmd *cobra.Command, text string) string {
			return translit.ASCII(text)
		}),
	}
}

func newSlugCmd(a *app) *cobra.Command {
	var (
		sep      string
		maxLen   int
		stripTag bool
		suffix   int
		reserved []string
	)

	cmd := &cobra.Command{
		Use:   "slug <text>...",
		Short: "Build a URL slug",
		Example: `  strx slug "Héllo Wôrld!"          # hello-world
  strx slug --sep _ "Ünïçödé Tëst"   # unicode_test
  echo "<b>Hi</b> there" | strx slug --html -`,
		Args: cobra.MinimumNArgs(1),
		RunE: transform(func(cmd *cobra.Command, text string) string {
			opts := []slug.Option{slug.Separator(sep), slug.MaxLength(maxLen), slug.WithSuffix(suffix)}
			if stripTag {
				opts = append(opts, slug.StripHTML())
			}
			if len(reserved) > 0 {
				opts = append(opts, slug.ReservedSlugs(reserved...))
			}

			out := slug.Make(text, opts...)
			a.log.DebugContext(cmd.Context(), "slug generated", slog.String("slug", out))
			return out
		}),
	}

	cmd.Flags().StringVar(&sep, "sep", slug.DefaultSeparator, "separator between words")
	cmd.Flags().IntVar(&maxLen, "max", 0, "maximum length in characters (0 for unlimited)")
	cmd.Flags().BoolVar(&stripTag, "html", false, "strip HTML tags first")
	cmd.Flags().IntVar(&suffix, "suffix", 0, "append a random suffix of this length")
	cmd.Flags().StringSliceVar(&reserved, "reserved", nil, "slugs that must get a suffix")

	return cmd
}

func newTruncateCmd(a *app) *cobra.Command {
	var (
		limit int
		end   string
	)

	cmd := &cobra.Command{
		Use:   "truncate <text>...",
		Short: "Shorten text to a number of characters",
		Args:  cobra.MinimumNArgs(1),
		RunE: transform(func(cmd *cobra.Command, text string) string {
			return strutil.Truncate(text, limit, end)
		}),
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", strutil.DefaultLimit, "maximum number of characters")
	cmd.Flags().StringVar(&end, "end", strutil.DefaultEnd, "text appended when truncated")

	return cmd
}
