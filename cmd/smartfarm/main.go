package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/smartfarm/core"
	"github.com/jask/smartfarm/internal/config"
	"github.com/jask/smartfarm/internal/farmdata"
	"github.com/jask/smartfarm/internal/i18n"
	"github.com/jask/smartfarm/internal/logging"
	"github.com/jask/smartfarm/internal/telemetry"
	"github.com/jask/smartfarm/screens"
)

var version = "dev"

type flags struct {
	config  string
	screen  string
	sensor  string
	verbose bool
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:           "smartfarm",
		Short:         "Terminal dashboard for a smart farm",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), f)
		},
	}
	root.Flags().StringVar(&f.config, "config", "", "config file (default ~/.config/smartfarm/config.toml)")
	root.Flags().StringVar(&f.screen, "screen", "", "open this screen instead of onboarding")
	root.Flags().StringVar(&f.sensor, "sensor", "", "sensor id for --screen sensorDetails")
	root.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(&cobra.Command{
		Use:   "screens",
		Short: "List screen names accepted by --screen",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, id := range core.AllScreens() {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "smartfarm", version)
		},
	})
	return root
}

func run(ctx context.Context, f flags) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{Path: cfg.Log.Path, Level: cfg.Log.Level, Verbose: f.verbose})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	tr, err := i18n.NewProvider()
	if err != nil {
		return fmt.Errorf("i18n: %w", err)
	}
	if err := tr.SetLanguage(cfg.UI.Language); err != nil {
		logger.Warn("config language ignored", zap.String("language", cfg.UI.Language), zap.Error(err))
	}

	data, err := loadData(cfg.Data.Path)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics := telemetry.New(reg)
	if cfg.Metrics.Addr != "" {
		go func() {
			if err := telemetry.Serve(ctx, cfg.Metrics.Addr, reg); err != nil {
				logger.Error("metrics server", zap.Error(err))
			}
		}()
	}

	keys := core.DefaultKeyBindings()
	if len(cfg.Keys) > 0 {
		keys = core.ApplyActionKeybindings(keys, cfg.Keys)
	}

	env := core.Env{
		I18n:    tr,
		Data:    data,
		Hooks:   core.StubHooks(logger),
		Logger:  logger,
		Metrics: metrics,
		Theme:   cfg.UI.Theme,
	}
	m := screens.NewModel(env, core.NewKeyRegistry(keys))

	screen, sensor := cfg.UI.StartScreen, cfg.UI.StartSensor
	if f.screen != "" {
		screen, sensor = f.screen, f.sensor
	}
	if screen != "" {
		route, ok := core.DeepLink(screen, sensor)
		if !ok {
			logger.Info("deep link fallback",
				zap.String("screen", screen),
				zap.String("sensor", sensor),
				zap.String("suggest", core.SuggestScreen(screen)))
			fmt.Fprintf(os.Stderr, "unknown start screen %q (did you mean %q?), opening dashboard\n", screen, core.SuggestScreen(screen))
		}
		m.StartAt(route)
	}

	logger.Info("starting", zap.String("version", version), zap.String("screen", m.Active().ID().String()))
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func loadData(path string) (*farmdata.Catalog, error) {
	if path == "" {
		return farmdata.Load()
	}
	return farmdata.LoadFile(path)
}
