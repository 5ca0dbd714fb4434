package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"greetcard/internal/config"
	"greetcard/internal/content"
	"greetcard/internal/imagery"
	"greetcard/internal/logging"
	"greetcard/internal/trace"
	"greetcard/internal/ui"
)

type rootFlags struct {
	config  string
	content string
	offline bool
	watch   bool
	logFile string
	verbose bool
}

func newRootCommand() *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:   "greetcard",
		Short: "An interactive thank-you card for the terminal",
		Long: `greetcard plays a greeting card in the terminal: a cover page, a typed
message with a gift that turns into a cake, a box of personal notes and a
photo gallery.

Card content comes from a YAML file (--content) or the built-in card.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "config file path")
	rootCmd.Flags().StringVar(&flags.content, "content", "", "card YAML file (default: built-in card)")
	rootCmd.Flags().BoolVar(&flags.offline, "offline", false, "do not download images")
	rootCmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "reload the card file when it changes")
	rootCmd.Flags().StringVar(&flags.logFile, "log-file", "", "write logs to this file")
	rootCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newExportDefaultCommand())

	return rootCmd
}

// resolveConfig loads file and environment settings, then applies flags the
// user set explicitly.
func resolveConfig(cmd *cobra.Command, flags rootFlags) (*config.Config, error) {
	cfg, err := config.NewLoader().LoadConfig(flags.config)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("content") {
		cfg.Content = flags.content
	}
	if cmd.Flags().Changed("offline") {
		cfg.Images.Offline = flags.offline
	}
	if cmd.Flags().Changed("watch") {
		cfg.Watch = flags.watch
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Logging.File = flags.logFile
	}
	if flags.verbose {
		cfg.Logging.Level = "debug"
	}
	if cfg.Watch && cfg.Content == "" {
		return nil, fmt.Errorf("--watch needs a card file (--content)")
	}
	return cfg, nil
}

func loadCard(cfg *config.Config) (*content.Card, error) {
	if cfg.Content == "" {
		return content.Default(), nil
	}
	return content.Load(cfg.Content)
}

// newTracer returns the session tracer. With telemetry disabled, or when the
// exporter cannot be built, spans are recorded nowhere.
func newTracer(ctx context.Context, cfg *config.Config, sessionID string, logger *zap.Logger) *trace.PhaseTracer {
	if !cfg.Telemetry.Enabled {
		return trace.NewPhaseTracerWithProvider(nil, sessionID)
	}
	tracer, err := trace.NewPhaseTracer(ctx, sessionID)
	if err != nil {
		logger.Warn("tracing disabled", zap.Error(err))
		return trace.NewPhaseTracerWithProvider(nil, sessionID)
	}
	return tracer
}

func run(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger, err := logging.New(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	c, err := loadCard(cfg)
	if err != nil {
		return err
	}

	sessionID := uuid.NewString()
	logger = logger.With(zap.String("session", sessionID))

	tracer := newTracer(ctx, cfg, sessionID, logger)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("trace shutdown", zap.Error(err))
		}
	}()

	images := imagery.NewFetcher(imagery.Options{
		Timeout:    cfg.Images.Timeout,
		Offline:    cfg.Images.Offline,
		Logger:     logger.Named("imagery"),
		OnFallback: tracer.ImageFallback,
	})

	style := "light"
	if lipgloss.HasDarkBackground() {
		style = "dark"
	}

	app := ui.NewAppModel(ui.Options{
		Card:          c,
		Config:        cfg,
		Images:        images,
		Logger:        logger.Named("ui"),
		OnTransition:  tracer.PhaseChanged,
		OnEffect:      tracer.Effect,
		MarkdownStyle: style,
	})
	defer app.Teardown()

	logger.Info("card started",
		zap.String("content", cfg.Content),
		zap.Int("messages", len(c.Messages)),
		zap.Int("photos", len(c.Photos)))

	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))

	if cfg.Watch {
		go func() {
			err := content.Watch(ctx, cfg.Content, func(card *content.Card, err error) {
				p.Send(ui.ContentReloadedMsg{Card: card, Err: err})
			})
			if err != nil {
				logger.Error("content watch stopped", zap.Error(err))
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run card: %w", err)
	}
	logger.Info("card closed", zap.Stringer("phase", app.Seq.Phase()))
	return nil
}
