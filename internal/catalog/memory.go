package catalog

import (
	"context"
	"slices"
	"sync"
)

// Memory is an in-process Client backed by fixed data.
// It serves offline mode and tests.
type Memory struct {
	mu        sync.RWMutex
	playlists []Playlist
	tracks    map[string][]Track
	failures  map[string]error
}

// Verify Memory implements Client at compile time.
var _ Client = (*Memory)(nil)

// NewMemory creates an empty Memory client.
func NewMemory() *Memory {
	return &Memory{
		tracks:   make(map[string][]Track),
		failures: make(map[string]error),
	}
}

// AddPlaylist registers a chart playlist with its tracks.
func (m *Memory) AddPlaylist(p Playlist, tracks ...Track) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playlists = append(m.playlists, p)
	m.tracks[p.ID] = slices.Clone(tracks)
	return m
}

// FailWith makes requests for key fail with err.
// key is a playlist id, or "" for the chart listing.
func (m *Memory) FailWith(key string, err error) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.failures, key)
	} else {
		m.failures[key] = err
	}
	return m
}

func (m *Memory) Charts(ctx context.Context) ([]Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Op: "charts", Err: err}
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.failures[""]; err != nil {
		return nil, &FetchError{Op: "charts", Err: err}
	}
	return slices.Clone(m.playlists), nil
}

func (m *Memory) Playlist(ctx context.Context, playlistID string) (Playlist, error) {
	if err := ctx.Err(); err != nil {
		return Playlist{}, &FetchError{Op: "playlist", ID: playlistID, Err: err}
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.failures[playlistID]; err != nil {
		return Playlist{}, &FetchError{Op: "playlist", ID: playlistID, Err: err}
	}
	for _, p := range m.playlists {
		if p.ID == playlistID {
			return p, nil
		}
	}
	return Playlist{}, &FetchError{Op: "playlist", ID: playlistID, Err: ErrNotFound}
}

func (m *Memory) PlaylistTracks(ctx context.Context, playlistID string) ([]Track, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Op: "playlist tracks", ID: playlistID, Err: err}
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.failures[playlistID]; err != nil {
		return nil, &FetchError{Op: "playlist tracks", ID: playlistID, Err: err}
	}
	tracks, ok := m.tracks[playlistID]
	if !ok {
		return nil, &FetchError{Op: "playlist tracks", ID: playlistID, Err: ErrNotFound}
	}
	return slices.Clone(tracks), nil
}
