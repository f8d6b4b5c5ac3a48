package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"folio/internal/config"
	folog "folio/internal/log"
	"folio/internal/portfolio"
	"folio/internal/relay"
	"folio/internal/trace"
	"folio/internal/ui"
)

var version = "dev"

// settings is resolved in PersistentPreRunE: FOLIO_* environment first,
// then any flag given on the command line.
var settings config.Config

// flagValues holds what the flags parsed to; only flags that were set
// override the environment.
var flagValues config.Config

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "A portfolio page for the terminal",
	Long: `folio renders a portfolio page from a YAML document: a gallery of
projects with a detail modal, and a contact form that forwards messages
through formsubmit.co.

Run without arguments to open the page.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := config.Load()
		if err != nil {
			return err
		}
		applyFlags(cmd.Flags(), &s)
		settings = s
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPage(cmd.Context())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&flagValues.ConfigPath, "config", "c", "config.yml", "page document (or set FOLIO_CONFIG)")
	flags.StringVar(&flagValues.RelayURL, "relay-url", config.DefaultRelayURL, "form relay base URL (or set FOLIO_RELAY_URL)")
	flags.StringVar(&flagValues.LogFile, "log-file", "", "append logs to this file (default: discard)")
	flags.StringVar(&flagValues.LogLevel, "log-level", "info", "log level (or set FOLIO_LOG_LEVEL)")

	rootCmd.Flags().BoolVarP(&flagValues.Watch, "watch", "w", false, "reload the page document when it changes")
	rootCmd.Flags().BoolVar(&flagValues.AltScreen, "alt-screen", true, "use the alternate screen buffer")
	rootCmd.Flags().BoolVar(&flagValues.Mouse, "mouse", true, "enable mouse input")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(sendCmd)
}

// applyFlags copies every flag set on the command line into s.
func applyFlags(fs *pflag.FlagSet, s *config.Config) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "config":
			s.ConfigPath = flagValues.ConfigPath
		case "relay-url":
			s.RelayURL = flagValues.RelayURL
		case "log-file":
			s.LogFile = flagValues.LogFile
		case "log-level":
			s.LogLevel = flagValues.LogLevel
		case "watch":
			s.Watch = flagValues.Watch
		case "alt-screen":
			s.AltScreen = flagValues.AltScreen
		case "mouse":
			s.Mouse = flagValues.Mouse
		}
	})
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "folio:", err)
		os.Exit(1)
	}
}

// setup validates settings and configures logging and tracing. The returned
// func releases both.
func setup(ctx context.Context) (func(), error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	logFile, err := folog.OpenFile(settings.LogFile, settings.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	tp, err := trace.Setup(ctx, version)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("tracing: %w", err)
	}
	return func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logger := folog.Base()
			logger.Warn().Err(err).Msg("tracer shutdown")
		}
		logFile.Close()
	}, nil
}

func runPage(ctx context.Context) error {
	cleanup, err := setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	logger := folog.WithComponent("main")

	cfg, err := portfolio.Load(settings.ConfigPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	model := ui.NewAppModel(gctx, cfg, relay.New(settings.RelayURL)).AsTeaModel()
	opts := []tea.ProgramOption{tea.WithContext(gctx)}
	if settings.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if settings.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(model, opts...)

	logger.Info().
		Str("event", "page.start").
		Str("config", settings.ConfigPath).
		Int("projects", len(cfg.Projects)).
		Msg("starting page")

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && gctx.Err() != nil {
			return nil
		}
		return err
	})
	if settings.Watch {
		g.Go(func() error {
			return portfolio.NewWatcher(settings.ConfigPath).Run(gctx, func(c *portfolio.Config) {
				p.Send(ui.ConfigReloadedMsg{Config: c})
			})
		})
	}
	return g.Wait()
}

// out is where subcommands print; tests swap it.
var out io.Writer = os.Stdout
