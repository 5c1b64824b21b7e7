package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/llehouerou/chartwaves/internal/app"
	"github.com/llehouerou/chartwaves/internal/catalog"
	"github.com/llehouerou/chartwaves/internal/catalog/spotify"
	"github.com/llehouerou/chartwaves/internal/config"
	"github.com/llehouerou/chartwaves/internal/logging"
	"github.com/llehouerou/chartwaves/internal/notify"
	"github.com/llehouerou/chartwaves/internal/player"
	"github.com/llehouerou/chartwaves/internal/root"
	"github.com/llehouerou/chartwaves/internal/state"
	"github.com/llehouerou/chartwaves/internal/stderr"
)

func main() {
	// A missing .env is fine; credentials may come from the config file.
	_ = godotenv.Load()

	cmd := &cli.Command{
		Name:  "chartwaves",
		Usage: "Browse music charts and preview their tracks",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Override the log level (debug, info, warn, error)",
			},
			&cli.BoolFlag{
				Name:  "offline",
				Usage: "Use the built-in demo charts instead of Spotify",
			},
			&cli.BoolFlag{
				Name:  "reset",
				Usage: "Forget the saved navigation before starting",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	level := cfg.Log.Level
	if l := cmd.String("log-level"); l != "" {
		level = l
	}

	logger, logFile, err := logging.Open(cfg.Log.File, level)
	if err != nil {
		return err
	}
	defer logFile.Close()

	if capture, err := stderr.Start(logger); err != nil {
		logger.Warn("stderr capture unavailable", "err", err)
	} else {
		defer capture.Stop()
	}

	store, err := openState(cfg.StatePath, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	if cmd.Bool("reset") {
		if err := store.Clear(); err != nil {
			return err
		}
		logger.Info("saved navigation cleared")
	}

	client, err := newCatalog(ctx, cfg, cmd.Bool("offline"), logger)
	if err != nil {
		return err
	}

	engine := player.New(nil)
	defer engine.Close()

	var notifier notify.Notifier
	if !cfg.DisableNotifications {
		notifier = notify.New()
	}

	m := app.New(ctx, app.Deps{
		Client:     client,
		Engine:     engine,
		State:      store,
		Logger:     logger,
		BackPolicy: root.ParseBackPolicy(cfg.Overlay.BackPolicy),
		Notifier:   notifier,
	})

	logger.Info("starting", "offline", cmd.Bool("offline"))
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return errors.Wrap(err, "run ui")
	}
	return nil
}

func openState(path string, logger *log.Logger) (*state.Manager, error) {
	if path != "" {
		return state.Open(path, logger)
	}
	return state.OpenDefault(logger)
}

func newCatalog(ctx context.Context, cfg *config.Config, offline bool, logger *log.Logger) (catalog.Client, error) {
	if offline {
		return catalog.Demo(), nil
	}
	if !cfg.HasSpotifyConfig() {
		logger.Warn("no Spotify credentials configured, using demo charts")
		return catalog.Demo(), nil
	}
	client, err := spotify.New(ctx, spotify.Config{
		ClientID:          cfg.Spotify.ClientID,
		ClientSecret:      cfg.Spotify.ClientSecret,
		Market:            cfg.Spotify.Market,
		RequestsPerSecond: cfg.Spotify.RequestsPerSecond,
		Charts:            cfg.Charts,
	})
	if err != nil {
		return nil, errors.Wrap(err, "connect to spotify")
	}
	return client, nil
}
