package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/amishk599/careerconnect/internal/ai"
	"github.com/amishk599/careerconnect/internal/config"
	"github.com/amishk599/careerconnect/internal/model"
	"github.com/amishk599/careerconnect/internal/notifier"
	"github.com/amishk599/careerconnect/internal/store"
)

const defaultConfigPath = "config.yaml"

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "careerconnect",
	Short: "Career Connect job board",
	Long:  "Career Connect serves a job board API with mock auth, role dashboards and AI-drafted job descriptions and cover letters.",
	// `careerconnect` with no args runs the API server.
	RunE:         runServe,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is normal outside development.
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load .env: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: CAREERCONNECT_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > CAREERCONNECT_CONFIG env var > "./config.yaml".
// Only the implicit default may be absent, in which case defaults apply.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = os.Getenv("CAREERCONNECT_CONFIG")
	}
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
		path = defaultConfigPath
	}
	return config.Load(path)
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

// boardStore is what every backend in internal/store provides.
type boardStore interface {
	model.JobStore
	model.ProjectStore
	model.ApplicationStore
	Close() error
}

func setupStore(cfg *config.Config, logger *slog.Logger) (boardStore, error) {
	switch cfg.Store.Driver {
	case config.DriverSQLite:
		logger.Info("using sqlite store", "path", cfg.Store.Path, "seed", cfg.Store.Seed)
		return store.NewSQLiteStore(cfg.Store.Path, cfg.Store.Seed)
	default:
		logger.Debug("using memory store", "seed", cfg.Store.Seed)
		return store.NewMemoryStore(cfg.Store.Seed), nil
	}
}

func setupProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ai.Provider, error) {
	if !cfg.AI.Enabled {
		logger.Info("ai generation disabled")
		return ai.NewNopProvider(), nil
	}

	httpClient := &http.Client{Timeout: cfg.AI.Timeout}
	switch cfg.AI.Provider {
	case config.ProviderOpenAI:
		logger.Info("using openai provider", "model", cfg.AI.Model)
		return ai.NewOpenAIProvider(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model, httpClient), nil
	default:
		logger.Info("using gemini provider", "model", cfg.AI.Model)
		p, err := ai.NewGeminiProvider(ctx, cfg.AI.APIKey, cfg.AI.Model, cfg.AI.BaseURL, httpClient)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}

func setupGenerator(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*ai.Generator, error) {
	provider, err := setupProvider(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setup ai provider: %w", err)
	}
	return ai.NewGenerator(provider, logger), nil
}

func setupNotifier(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) model.Notifier {
	switch cfg.Notification.Type {
	case "slack":
		logger.Info("using slack notifier")
		return notifier.NewSlackNotifier(cfg.Notification.WebhookURL, httpClient, logger)
	default:
		return notifier.NewLogNotifier(logger)
	}
}
