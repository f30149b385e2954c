// Package cli implements the strx command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/strx/internal/config"
	"github.com/dmitrymomot/strx/pkg/jsonsniff"
	"github.com/dmitrymomot/strx/pkg/logger"
	"github.com/dmitrymomot/strx/pkg/memo"
	"github.com/dmitrymomot/strx/pkg/redis"
	"github.com/dmitrymomot/strx/pkg/strcase"
)

// exitError carries a non-zero exit status without an error message,
// e.g. a predicate that evaluated to false.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return "exit status " + strconv.Itoa(e.code)
}

// app holds the dependencies shared by all commands.
type app struct {
	cfg     config.Config
	log     *slog.Logger
	store   memo.Store
	client  goredis.UniversalClient
	conv    *strcase.Converter
	sniffer *jsonsniff.Sniffer
}

// CLI is a ready-to-run strx command tree.
type CLI struct {
	root *cobra.Command
	app  *app
}

// New builds the command tree. A nil logger discards output.
func New(cfg config.Config, log *slog.Logger) *CLI {
	if log == nil {
		log = logger.Discard()
	}
	a := &app{cfg: cfg, log: log}

	root := &cobra.Command{
		Use:   "strx",
		Short: "Slugs, transliteration and casing from the command line",
		Long: `strx transliterates Unicode text to ASCII, builds URL slugs, converts
identifier casing, truncates text and sniffs JSON objects.

Text arguments are joined with spaces. Pass "-" to read the text from stdin.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.AddCommand(
		newTranslitCmd(),
		newSlugCmd(a),
		newSnakeCmd(a),
		newCamelCmd(a),
		newStudlyCmd(a),
		newTruncateCmd(a),
		newMatchCmd(a, "starts", "Check whether the text starts with any needle", matchStarts),
		newMatchCmd(a, "contains", "Check whether the text contains any needle", matchContains),
		newMatchCmd(a, "ends", "Check whether the text ends with any needle", matchEnds),
		newJSONCmd(a),
		newAnchorsCmd(a),
		newCacheCmd(a),
		newVersionCmd(),
	)

	return &CLI{root: root, app: a}
}

// Run executes the command line args and returns the process exit code.
func (c *CLI) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c.root.SetArgs(args)
	c.root.SetIn(stdin)
	c.root.SetOut(stdout)
	c.root.SetErr(stderr)

	err := c.root.ExecuteContext(ctx)
	c.app.close()

	if err == nil {
		return 0
	}

	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}

	fmt.Fprintln(stderr, "Error:", err)
	return 1
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	ctx := logger.WithCommand(cmd.Context(), cmd.Name())
	cmd.SetContext(ctx)

	a.sniffer = jsonsniff.New(
		jsonsniff.WithLogger(a.log),
		jsonsniff.WithMaxDepth(a.cfg.JSONMaxDepth),
	)
	return nil
}

// memoStore opens the memo store on first use, so commands that never
// touch the cache never dial Redis.
func (a *app) memoStore(ctx context.Context) memo.Store {
	if a.store == nil {
		a.store = a.openStore(ctx)
	}
	return a.store
}

// converter returns the casing converter backed by the memo store.
func (a *app) converter(ctx context.Context) *strcase.Converter {
	if a.conv == nil {
		a.conv = strcase.New(strcase.WithStore(a.memoStore(ctx)))
	}
	return a.conv
}

// openStore connects to Redis when configured and falls back to an
// in-memory store when it is not, or when the server cannot be reached.
func (a *app) openStore(ctx context.Context) memo.Store {
	if a.cfg.RedisURL == "" {
		return memo.NewMemory(a.cfg.CacheSize)
	}

	client, err := redis.Open(ctx, a.cfg.RedisURL, redis.WithRetry(2, 200*time.Millisecond))
	if err != nil {
		a.log.WarnContext(ctx, "redis unavailable, using in-memory cache", slog.String("error", err.Error()))
		return memo.NewMemory(a.cfg.CacheSize)
	}

	a.client = client
	a.log.DebugContext(ctx, "using redis cache", slog.String("prefix", a.cfg.RedisPrefix))
	return memo.NewRedis(client, memo.WithPrefix(a.cfg.RedisPrefix))
}

func (a *app) close() {
	if a.store != nil {
		_ = a.store.Close()
	}
	if a.client != nil {
		_ = a.client.Close()
	}
}
