package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/strx/pkg/redis"
)

func newCacheCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the casing memo cache",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "clear",
			Short: "Remove every memoized casing result",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				store := a.memoStore(ctx)
				if a.client != nil {
					if err := redis.Ping(ctx, a.client); err != nil {
						return fmt.Errorf("clearing cache: %w", err)
					}
				}
				if err := store.Clear(ctx); err != nil {
					return fmt.Errorf("clearing cache: %w", err)
				}
				writeLine(cmd, "cache cleared")
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Report which cache backend is in use",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				a.memoStore(ctx)
				if a.client == nil {
					writeLine(cmd, "backend: memory")
					return nil
				}
				if err := redis.Ping(ctx, a.client); err != nil {
					return fmt.Errorf("checking cache: %w", err)
				}
				writeLine(cmd, "backend: redis")
				return nil
			},
		},
	)

	return cmd
}
