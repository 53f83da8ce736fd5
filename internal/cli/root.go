package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"wishlist-console/internal/config"
	"wishlist-console/internal/console"
	"wishlist-console/internal/format"
	"wishlist-console/internal/journal"
	"wishlist-console/internal/logging"
	"wishlist-console/internal/metrics"
	"wishlist-console/internal/restapi"
	"wishlist-console/internal/tui"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type App struct {
	BaseURL     string
	Timeout     time.Duration
	Format      string
	PrettyJSON  bool
	Journal     string
	LogLevel    string
	LogFile     string
	MetricsAddr string

	// configErr is reported by the first command that runs, so that --help
	// still works with a broken environment.
	configErr error
}

func NewRootCmd() *cobra.Command {
	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{BaseURL: "http://localhost:8080", Timeout: 10 * time.Second, LogLevel: "info", Format: "json"}
	}
	app := &App{configErr: err}

	cmd := &cobra.Command{
		Use:          "wishlist-console",
		Short:        "Edit wishlists and their products against the wishlist REST service",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive console
  wishlist-console

  # Scriptable commands
  wishlist-console wishlists create --name Birthday --user 5 --product "10:Mug:9.99"
  wishlist-console wishlists search --name birth --format table

  # Direct lookup (shortcut for: wishlist-console wishlists get <id>)
  wishlist-console 1
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if app.configErr != nil {
			return writeErr(cmd, app.configErr)
		}
		if app.Timeout <= 0 {
			return writeErr(cmd, fmt.Errorf("--timeout must be positive, got %s", app.Timeout))
		}
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.BaseURL, "base-url", cfg.BaseURL, "Base URL of the wishlist service")
	cmd.PersistentFlags().DurationVar(&app.Timeout, "timeout", cfg.Timeout, "Per-request timeout")
	cmd.PersistentFlags().StringVar(&app.Format, "format", cfg.Format, "Output format (json|edn|table|html)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON/EDN output")
	cmd.PersistentFlags().StringVar(&app.Journal, "journal", cfg.Journal, "Path of the sqlite operation journal (empty disables it)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", cfg.LogFile, "Append logs to this file")
	cmd.PersistentFlags().StringVar(&app.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Serve Prometheus metrics on this address")

	cmd.AddCommand(newWishlistsCmd(app))
	cmd.AddCommand(newProductsCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newJournalCmd(app))
	cmd.AddCommand(newMockServerCmd(app))

	return cmd
}

// env is everything one command invocation needs to talk to the service.
type env struct {
	session *console.Session
	client  *restapi.Client
	logger  *logrus.Logger
	closers []io.Closer
}

func (e *env) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		errs = append(errs, e.closers[i].Close())
	}
	return errors.Join(errs...)
}

// connect wires the logger, the optional journal and metrics, the REST client
// and a fresh session. Interactive sessions never log to the terminal.
func connect(ctx context.Context, cmd *cobra.Command, app *App, interactive bool) (*env, error) {
	var fallback io.Writer = cmd.ErrOrStderr()
	if interactive {
		fallback = io.Discard
	}
	logger, logCloser, err := logging.Open(app.LogLevel, app.LogFile, fallback)
	if err != nil {
		return nil, err
	}
	e := &env{logger: logger, closers: []io.Closer{logCloser}}

	var observers []restapi.Observer
	if app.Journal != "" {
		j, err := journal.Open(ctx, app.Journal, journal.WithLogger(logger))
		if err != nil {
			_ = e.Close()
			return nil, err
		}
		e.closers = append(e.closers, j)
		observers = append(observers, j)
		logger.WithField("session", j.SessionID()).Debug("journal opened")
	}
	if app.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		observers = append(observers, metrics.NewRequestMetrics(reg))
		if err := metrics.Serve(ctx, app.MetricsAddr, reg, logger); err != nil {
			_ = e.Close()
			return nil, fmt.Errorf("metrics: %w", err)
		}
	}

	client, err := restapi.NewClient(app.BaseURL, restapi.WithTimeout(app.Timeout), restapi.WithObserver(observers...))
	if err != nil {
		_ = e.Close()
		return nil, err
	}
	e.client = client
	e.session = console.New(client, console.WithLogger(logger))
	return e, nil
}

func runTUI(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()
	e, err := connect(ctx, cmd, app, true)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer e.Close()
	return tui.Run(ctx, e.session, tui.Options{BaseURL: e.client.BaseURL(), Timeout: app.Timeout, Logger: e.logger})
}

// do runs one session operation with the configured timeout.
func do(cmd *cobra.Command, app *App, e *env, build func() (*console.Request, error)) (console.Result, error) {
	ctx, cancel := context.WithTimeout(cmd.Context(), app.Timeout)
	defer cancel()
	return e.session.Do(ctx, build)
}

// withSession connects, runs fn and releases everything afterwards.
func withSession(cmd *cobra.Command, app *App, fn func(e *env) error) error {
	e, err := connect(cmd.Context(), cmd, app, false)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer e.Close()
	if err := fn(e); err != nil {
		return writeErr(cmd, err)
	}
	return nil
}

// writeOut writes v as a structured envelope. Results that have no table
// layout fall back to JSON under --format table|html.
func writeOut(cmd *cobra.Command, app *App, v any) error {
	name := app.Format
	if isTableFormat(name) {
		name = "json"
	}
	return format.Write(cmd.OutOrStdout(), v, name, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}

func envelope(data any, status console.Status) format.Envelope {
	return format.Envelope{Data: data, Meta: map[string]any{"status": status.Text}}
}

func isTableFormat(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "table", "html":
		return true
	}
	return false
}

func stdoutIsTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return isTerminal(f)
}
