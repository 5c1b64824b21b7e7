// Package spotify implements catalog.Client on top of the Spotify Web API.
package spotify

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	"github.com/llehouerou/chartwaves/internal/catalog"
)

const pageLimit = 100

// Verify Client implements catalog.Client at compile time.
var _ catalog.Client = (*Client)(nil)

// Config holds the credentials and request settings for the client.
type Config struct {
	ClientID          string
	ClientSecret      string
	Market            string
	RequestsPerSecond float64
	// Charts lists playlist ids, URIs or URLs shown on the dashboard.
	// When empty the featured playlists are used instead.
	Charts []string
}

// Client is a Spotify API client.
type Client struct {
	client     *spotify.Client
	limiter    *rate.Limiter
	market     string
	charts     []string
	maxRetries int
	retryDelay time.Duration
}

// New creates a client authenticated with the client-credentials flow.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, errors.New("spotify credentials are required")
	}
	auth := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	return newClient(auth.Client(ctx), cfg), nil
}

func newClient(httpClient *http.Client, cfg Config, opts ...spotify.ClientOption) *Client {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	charts := make([]string, 0, len(cfg.Charts))
	for _, c := range cfg.Charts {
		if id := extractPlaylistID(c); id != "" {
			charts = append(charts, id)
		}
	}
	return &Client{
		client:     spotify.New(httpClient, opts...),
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		market:     cfg.Market,
		charts:     charts,
		maxRetries: 3,
		retryDelay: time.Second,
	}
}

// Charts returns the configured chart playlists, or the featured ones.
func (c *Client) Charts(ctx context.Context) ([]catalog.Playlist, error) {
	if len(c.charts) == 0 {
		return c.featured(ctx)
	}
	out := make([]catalog.Playlist, 0, len(c.charts))
	for _, id := range c.charts {
		p, err := c.Playlist(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (c *Client) featured(ctx context.Context) ([]catalog.Playlist, error) {
	var page *spotify.SimplePlaylistPage
	err := c.retry(ctx, func() error {
		_, p, err := c.client.FeaturedPlaylists(ctx, c.requestOptions(spotify.Limit(20))...)
		if err != nil {
			return err
		}
		page = p
		return nil
	})
	if err != nil {
		return nil, &catalog.FetchError{Op: "charts", Err: errors.Wrap(err, "failed to get featured playlists")}
	}
	out := make([]catalog.Playlist, 0, len(page.Playlists))
	for _, p := range page.Playlists {
		out = append(out, convertSimplePlaylist(p))
	}
	return out, nil
}

// Playlist returns the metadata of one playlist.
func (c *Client) Playlist(ctx context.Context, playlistID string) (catalog.Playlist, error) {
	id := extractPlaylistID(playlistID)
	if id == "" {
		return catalog.Playlist{}, &catalog.FetchError{Op: "playlist", ID: playlistID, Err: errors.New("invalid playlist id")}
	}
	var full *spotify.FullPlaylist
	err := c.retry(ctx, func() error {
		p, err := c.client.GetPlaylist(ctx, spotify.ID(id), c.requestOptions()...)
		if err != nil {
			return err
		}
		full = p
		return nil
	})
	if err != nil {
		return catalog.Playlist{}, &catalog.FetchError{Op: "playlist", ID: id, Err: classify(err, "failed to get playlist")}
	}
	p := convertSimplePlaylist(full.SimplePlaylist)
	p.Followers = int(full.Followers.Count)
	return p, nil
}

// PlaylistTracks returns every track of a playlist, skipping episodes.
func (c *Client) PlaylistTracks(ctx context.Context, playlistID string) ([]catalog.Track, error) {
	id := extractPlaylistID(playlistID)
	if id == "" {
		return nil, &catalog.FetchError{Op: "playlist tracks", ID: playlistID, Err: errors.New("invalid playlist id")}
	}

	var tracks []catalog.Track
	offset := 0
	for {
		var page *spotify.PlaylistItemPage
		err := c.retry(ctx, func() error {
			p, err := c.client.GetPlaylistItems(ctx, spotify.ID(id),
				c.requestOptions(spotify.Limit(pageLimit), spotify.Offset(offset))...,
			)
			if err != nil {
				return err
			}
			page = p
			return nil
		})
		if err != nil {
			return nil, &catalog.FetchError{Op: "playlist tracks", ID: id, Err: classify(err, "failed to get playlist items")}
		}

		for _, item := range page.Items {
			if item.Track.Track != nil && item.Track.Track.ID != "" {
				tracks = append(tracks, convertTrack(item.Track.Track))
			}
		}

		// Pages may come back short; only a missing next link ends the list.
		if page.Next == "" || len(page.Items) == 0 {
			break
		}
		offset += len(page.Items)
	}
	return tracks, nil
}

func (c *Client) requestOptions(opts ...spotify.RequestOption) []spotify.RequestOption {
	if c.market != "" {
		opts = append(opts, spotify.Market(c.market))
	}
	return opts
}

// retry paces fn through the rate limiter and retries transient failures
// with a linear backoff.
func (c *Client) retry(ctx context.Context, fn func() error) error {
	var lastErr error
	for i := range c.maxRetries {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if !isRetryable(err) {
			return err
		}

		if i < c.maxRetries-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.retryDelay * time.Duration(i+1)):
			}
		}
	}
	return errors.Wrap(lastErr, "max retries exceeded")
}

func isRetryable(err error) bool {
	var apiErr spotify.Error
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusTooManyRequests || apiErr.Status >= http.StatusInternalServerError
	}
	return false
}

func classify(err error, msg string) error {
	var apiErr spotify.Error
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return errors.Mark(errors.Wrap(err, msg), catalog.ErrNotFound)
	}
	return errors.Wrap(err, msg)
}

func convertSimplePlaylist(p spotify.SimplePlaylist) catalog.Playlist {
	var image string
	if len(p.Images) > 0 {
		image = p.Images[0].URL
	}
	return catalog.Playlist{
		ID:          string(p.ID),
		Name:        p.Name,
		Description: p.Description,
		Owner:       p.Owner.DisplayName,
		ImageURL:    image,
	}
}

func convertTrack(t *spotify.FullTrack) catalog.Track {
	artists := make([]string, len(t.Artists))
	for i, a := range t.Artists {
		artists[i] = a.Name
	}
	return catalog.Track{
		ID:         string(t.ID),
		Name:       t.Name,
		Artists:    artists,
		Album:      t.Album.Name,
		PreviewURL: t.PreviewURL,
		Duration:   time.Duration(t.Duration) * time.Millisecond,
	}
}

// extractPlaylistID extracts the playlist ID from a Spotify playlist URL or URI.
func extractPlaylistID(input string) string {
	input = strings.TrimSpace(input)
	if strings.HasPrefix(input, "spotify:playlist:") {
		return strings.TrimPrefix(input, "spotify:playlist:")
	}

	// https://open.spotify.com/playlist/ID or https://open.spotify.com/intl-XX/playlist/ID
	if strings.Contains(input, "open.spotify.com") && strings.Contains(input, "/playlist/") {
		parts := strings.Split(input, "/playlist/")
		id := strings.Split(parts[len(parts)-1], "?")[0]
		return strings.TrimRight(id, "/")
	}

	return input
}
