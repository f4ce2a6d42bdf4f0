// Command buildterm is the Construction CLI terminal: an interactive
// session that answers buildcli commands, plus the backend that can serve
// those answers over HTTP.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/construction-cli/buildterm/internal/api"
	"github.com/construction-cli/buildterm/internal/config"
	"github.com/construction-cli/buildterm/internal/history"
	"github.com/construction-cli/buildterm/internal/logger"
	"github.com/construction-cli/buildterm/internal/repl"
	"github.com/construction-cli/buildterm/internal/resolver"
	"github.com/construction-cli/buildterm/internal/ui"
)

var (
	cfgFile  string
	lineMode bool
	yes      bool
	version  = "0.1.0"

	v   = config.New()
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "buildterm",
	Short: "Construction CLI terminal",
	Long: `buildterm is an interactive terminal for the buildcli construction
management tool. Type buildcli commands and read their output; "clear" resets
the screen and "exit" ends the session.

When stdin is not a terminal, or with --lines, commands are read one per line
and the transcript is written to stdout.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTerminal,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <command>",
	Short: "Print the output of a single buildcli command",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newResolver()
		if err != nil {
			return err
		}
		lines, err := r.Resolve(cmd.Context(), strings.TrimSpace(strings.Join(args, " ")))
		if err != nil {
			return err
		}
		for _, l := range lines {
			fmt.Fprintln(cmd.OutOrStdout(), l)
		}
		return nil
	},
}

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List every command with a fixed response",
	RunE: func(cmd *cobra.Command, _ []string) error {
		var names []string
		if cfg.BackendURL != "" {
			resp, err := backendClient().ListCommands(cmd.Context())
			if err != nil {
				return err
			}
			names = resp.Commands
		} else {
			names = resolver.New().Commands()
		}
		for _, n := range names {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show persisted command history, newest first",
	RunE:  runHistory,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve command resolution over HTTP",
	RunE:  runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "buildterm v%s\n", version)
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default $HOME/.config/buildterm/buildterm.yaml or ./buildterm.yaml)")
	flags.String("log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	flags.String("log-file", "", "Write logs to file instead of stderr")
	flags.String("history-db", "", "History database: a file path or libsql:// URL (disabled when empty)")
	flags.String("backend", "", "Resolve commands through a buildterm backend at this URL")
	flags.String("token", "", "Bearer token for the backend")
	flags.Duration("exit-delay", 0, "How long the farewell stays up after exit [default: 1s]")

	bind(flags.Lookup("log-level"), config.KeyLogLevel)
	bind(flags.Lookup("log-file"), config.KeyLogFile)
	bind(flags.Lookup("history-db"), config.KeyHistoryDSN)
	bind(flags.Lookup("backend"), config.KeyBackendURL)
	bind(flags.Lookup("token"), config.KeyBackendToken)
	bind(flags.Lookup("exit-delay"), config.KeyExitDelay)

	rootCmd.Flags().BoolVar(&lineMode, "lines", false, "Read commands line by line instead of starting the TUI")
	rootCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask before using a non-local backend")

	historyCmd.Flags().String("session", "", "Only show this session")
	historyCmd.Flags().Int("limit", 50, "Maximum rows")
	historyCmd.Flags().Int("offset", 0, "Rows to skip")

	serveCmd.Flags().String("addr", "", "Listen address [default: 127.0.0.1:8080]")
	bind(serveCmd.Flags().Lookup("addr"), config.KeyServeAddr)

	rootCmd.AddCommand(resolveCmd, commandsCmd, historyCmd, serveCmd, versionCmd)

	cobra.OnInitialize(initConfig)
}

func bind(f *pflag.Flag, key string) {
	if err := v.BindPFlag(key, f); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", f.Name, err)
		os.Exit(1)
	}
}

func initConfig() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	}

	var err error
	if cfg, err = config.Load(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}

	config.Watch(v, func(c config.Config, err error) {
		if err != nil {
			logger.Warn("Ignoring invalid config change", "error", err)
			return
		}
		logger.SetLevel(c.LogLevel)
		logger.Info("Config reloaded", "file", v.ConfigFileUsed(), "log_level", c.LogLevel)
	})
}

// --- Terminal ---

func runTerminal(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	interactive := !lineMode && isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())

	// the prompt and line mode share one reader so piped commands after
	// the answer are not swallowed by the prompt's buffer
	stdin := bufio.NewReader(os.Stdin)
	if !backendAllowed(stdin, os.Stderr, cfg, yes) {
		return nil
	}

	r, err := newResolver()
	if err != nil {
		return err
	}

	sessionID := uuid.NewString()
	opts := repl.Options{ExitDelay: cfg.ExitDelay}

	var recorder repl.HistoryRecorder
	if cfg.HistoryDSN != "" {
		store, err := history.Open(ctx, cfg.HistoryDSN)
		if err != nil {
			return err
		}
		defer store.Close()
		recorder = store

		if opts.History, err = store.Recent(ctx, cfg.HistoryLimit); err != nil {
			logger.Warn("Could not load history", "error", err)
		}
	}

	logger.Info("Starting session", "session", sessionID, "interactive", interactive, "backend", cfg.BackendURL)
	state := repl.NewState(opts)

	if !interactive {
		var copts []repl.ControllerOption
		if recorder != nil {
			copts = append(copts, repl.WithRecorder(recorder, sessionID))
		}
		return repl.RunLines(ctx, stdin, os.Stdout, state, r, copts...)
	}

	// the alt screen owns the terminal; logs only go to a file
	if cfg.LogFile == "" {
		logger.Discard()
	}
	p := tea.NewProgram(initialModel(state, r, recorder, sessionID), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

func newResolver() (repl.Resolver, error) {
	if cfg.BackendURL == "" {
		return resolver.New(), nil
	}
	if _, err := url.ParseRequestURI(cfg.BackendURL); err != nil {
		return nil, fmt.Errorf("backend url: %w", err)
	}
	return api.RemoteResolver{Client: backendClient()}, nil
}

func backendClient() *api.Client {
	return api.NewClient(cfg.BackendURL, cfg.BackendToken)
}

// backendAllowed reports whether the session may use c.BackendURL, asking
// on in when the target is not safe and assumeYes is unset.
func backendAllowed(in *bufio.Reader, out io.Writer, c config.Config, assumeYes bool) bool {
	if c.BackendURL == "" || assumeYes || isSafeTarget(c.BackendURL, c.Environment) {
		return true
	}
	return confirm(in, out, c.BackendURL)
}

// isSafeTarget reports whether rawURL can be used without confirmation:
// loopback hosts always, anything else only when env names a
// non-production environment.
func isSafeTarget(rawURL, env string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return false
	}
	host := u.Hostname()
	if host == "localhost" {
		return true
	}
	if ip := net.ParseIP(host); ip != nil && ip.IsLoopback() {
		return true
	}
	env = strings.ToLower(strings.TrimSpace(env))
	return env != "" && env != "production" && env != "prod"
}

func confirm(in *bufio.Reader, out io.Writer, target string) bool {
	fmt.Fprintln(out, ui.ErrorStyle.Render("WARNING: "+target+" is not a local backend."))
	fmt.Fprintln(out, ui.ErrorStyle.Render("Set environment (BUILDTERM_ENVIRONMENT) to a non-production name, or pass --yes, to skip this check."))
	fmt.Fprint(out, ui.PromptStyle.Render("Continue? (y/N) "))

	answer, _ := in.ReadString('\n')
	answer = strings.TrimSpace(answer)
	return answer == "y" || answer == "Y"
}

// --- History ---

func runHistory(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	session, _ := cmd.Flags().GetString("session")
	limit, _ := cmd.Flags().GetInt("limit")
	offset, _ := cmd.Flags().GetInt("offset")

	var entries []history.Entry
	switch {
	case cfg.BackendURL != "":
		resp, err := backendClient().ListHistory(ctx, api.HistoryParams{SessionID: session, Limit: limit, Offset: offset})
		if err != nil {
			return err
		}
		entries = resp.Entries
	case cfg.HistoryDSN != "":
		store, err := history.Open(ctx, cfg.HistoryDSN)
		if err != nil {
			return err
		}
		defer store.Close()
		if entries, err = store.List(ctx, history.Filter{SessionID: session, Limit: limit, Offset: offset}); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: set --history-db or --backend", history.ErrNoStore)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Command History (%d)\n\n", len(entries))
	if len(entries) == 0 {
		fmt.Fprintln(out, ui.DimStyle.Render("No commands recorded."))
		return nil
	}
	fmt.Fprint(out, ui.RenderTable(ui.HistoryColumns, ui.HistoryRows(entries)))
	return nil
}

// --- Serve ---

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	log := logger.NewStyledLogger("serve")

	opts := []api.ServerOption{api.WithToken(cfg.BackendToken)}
	if cfg.HistoryDSN != "" {
		store, err := history.Open(ctx, cfg.HistoryDSN)
		if err != nil {
			return err
		}
		defer store.Close()
		opts = append(opts, api.WithHistory(store))
	}

	srv := &http.Server{
		Addr:              cfg.ServeAddr,
		Handler:           api.NewServer(resolver.New(), opts...),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Listening", "addr", srv.Addr, "auth", cfg.BackendToken != "", "history", cfg.HistoryDSN != "")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info("Shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
