package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/strx/pkg/anchor"
	"github.com/dmitrymomot/strx/pkg/slug"
)

func newAnchorsCmd(a *app) *cobra.Command {
	var (
		sep    string
		format string
		html   bool
	)

	cmd := &cobra.Command{
		Use:   "anchors <file.md|->",
		Short: "List heading anchors of a markdown document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			md := anchor.New(anchor.WithSeparator(sep))
			out := cmd.OutOrStdout()

			if html {
				return md.Render(out, src)
			}

			headings := md.Headings(src)
			switch format {
			case "text":
				for _, h := range headings {
					fmt.Fprintf(out, "%s#%s  %s\n", strings.Repeat("  ", h.Level-1), h.ID, h.Text)
				}
				return nil
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(headings)
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(headings); err != nil {
					return err
				}
				return enc.Close()
			default:
				return fmt.Errorf("unsupported format %q (want text, json or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVar(&sep, "sep", slug.DefaultSeparator, "separator inside anchors")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")
	cmd.Flags().BoolVar(&html, "html", false, "render the document as HTML instead")

	return cmd
}

func readSource(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return b, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return b, nil
}
