package state

import (
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"

	dbutil "github.com/llehouerou/chartwaves/internal/db"
	"github.com/llehouerou/chartwaves/internal/root"
	"github.com/llehouerou/chartwaves/internal/route"
)

func loadSnapshot(db *sql.DB) (*root.Snapshot, error) {
	var current string
	err := db.QueryRow(`SELECT current_track_id FROM playback_state WHERE id = 1`).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT kind, playlist_id, playing_track_id, resume_handle
		FROM navigation_stack
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snap := &root.Snapshot{CurrentTrackID: current}
	for rows.Next() {
		var kind string
		var playlistID, playingTrackID, handle sql.NullString
		if err := rows.Scan(&kind, &playlistID, &playingTrackID, &handle); err != nil {
			return nil, err
		}
		k, err := route.ParseKind(kind)
		if err != nil {
			return nil, err
		}
		snap.Stack = append(snap.Stack, route.Config{
			Kind:           k,
			PlaylistID:     dbutil.NullStringValue(playlistID),
			PlayingTrackID: dbutil.NullStringValue(playingTrackID),
			ResumeHandle:   dbutil.NullStringValue(handle),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return snap, nil
}

func saveSnapshot(sqlDB *sql.DB, s root.Snapshot) error {
	return dbutil.WithTx(context.Background(), sqlDB, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM navigation_stack`); err != nil {
			return err
		}

		current := s.CurrentTrackID
		if current == "" {
			current = route.NoTrack
		}
		_, err := tx.Exec(`
			INSERT INTO playback_state (id, current_track_id, saved_at)
			VALUES (1, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				current_track_id = excluded.current_track_id,
				saved_at = excluded.saved_at
		`, current, time.Now().Unix())
		if err != nil {
			return err
		}

		stmt, err := tx.Prepare(`
			INSERT INTO navigation_stack (position, kind, playlist_id, playing_track_id, resume_handle)
			VALUES (?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, cfg := range s.Stack {
			_, err = stmt.Exec(i, string(cfg.Kind),
				dbutil.NullString(cfg.PlaylistID),
				dbutil.NullString(cfg.PlayingTrackID),
				dbutil.NullString(cfg.ResumeHandle))
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func clearSnapshot(sqlDB *sql.DB) error {
	return dbutil.WithTx(context.Background(), sqlDB, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM navigation_stack`); err != nil {
			return err
		}
		_, err := tx.Exec(`DELETE FROM playback_state`)
		return err
	})
}
