package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	k, err := ParseKind("details")
	require.NoError(t, err)
	assert.Equal(t, KindDetails, k)

	_, err = ParseKind("player")
	assert.Error(t, err)
}

func TestDetails_DefaultsPlayingTrack(t *testing.T) {
	c := Details("p1", "", "h1")

	assert.Equal(t, NoTrack, c.PlayingTrackID)
	assert.Equal(t, "details(p1, -1)", c.String())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"dashboard", Dashboard(), nil},
		{"dashboard with payload", Config{Kind: KindDashboard, PlaylistID: "p"}, ErrDashboardPayload},
		{"details", Details("p1", "t1", "h"), nil},
		{"details without playlist", Details("", "t1", "h"), ErrMissingPlaylist},
		{"details without handle", Details("p1", "t1", ""), ErrMissingHandle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}

	assert.Error(t, Config{Kind: "bogus"}.Validate())
}

func TestTrackSinkFunc(t *testing.T) {
	var got string
	var sink TrackSink = TrackSinkFunc(func(id string) { got = id })

	sink.OnTrackUpdated("t9")

	assert.Equal(t, "t9", got)
}
