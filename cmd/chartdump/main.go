// Test program that prints the configured charts and their tracks.
package main

import (
	"context"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"

	"github.com/llehouerou/chartwaves/internal/catalog"
	"github.com/llehouerou/chartwaves/internal/catalog/spotify"
	"github.com/llehouerou/chartwaves/internal/config"
	"github.com/llehouerou/chartwaves/internal/logging"
)

const maxTracks = 5

func main() {
	_ = godotenv.Load()
	logger := logging.New(os.Stderr, "info")

	cfg, err := config.Load("")
	if err != nil {
		logger.Fatal("load config", "err", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var client catalog.Client = catalog.Demo()
	if cfg.HasSpotifyConfig() {
		c, err := spotify.New(ctx, spotify.Config{
			ClientID:          cfg.Spotify.ClientID,
			ClientSecret:      cfg.Spotify.ClientSecret,
			Market:            cfg.Spotify.Market,
			RequestsPerSecond: cfg.Spotify.RequestsPerSecond,
			Charts:            cfg.Charts,
		})
		if err != nil {
			logger.Fatal("connect to spotify", "err", err)
		}
		client = c
	} else {
		logger.Warn("no Spotify credentials, dumping demo charts")
	}

	charts, err := client.Charts(ctx)
	if err != nil {
		logger.Fatal("load charts", "err", err)
	}
	logger.Info("charts loaded", "count", len(charts))

	for _, p := range charts {
		logger.Info(p.Name, "id", p.ID, "owner", p.Owner, "followers", humanize.Comma(int64(p.Followers)))

		tracks, err := client.PlaylistTracks(ctx, p.ID)
		if err != nil {
			logger.Error("load tracks", "playlist", p.ID, "err", err)
			continue
		}
		for i, t := range tracks {
			if i == maxTracks {
				logger.Info("  ...", "more", len(tracks)-maxTracks)
				break
			}
			logger.Info("  "+t.Name, "artist", t.ArtistLine(), "preview", t.PreviewURL != "")
		}
	}
}
