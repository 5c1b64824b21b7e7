package player

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	fetchTimeout = 15 * time.Second
	// Previews are ~30s clips; anything far larger is not a preview.
	maxStreamBytes = 16 << 20
	eventBuffer    = 8
)

// ErrNoStream is returned when a track has no preview url.
var ErrNoStream = errors.New("track has no playable stream")

var (
	speakerMu          sync.Mutex
	speakerSampleRate  beep.SampleRate
	speakerInitialized bool
)

// Player downloads mp3 previews and plays them through the system speaker.
// Downloads run on their own goroutine so Play never waits for the network.
type Player struct {
	client *http.Client
	events chan Event

	// mu guards the stream fields. It is never taken by the speaker callback.
	mu       sync.Mutex
	state    State
	ctrl     *beep.Ctrl
	streamer beep.StreamSeekCloser
	format   beep.Format
	cancel   context.CancelFunc

	// genMu only guards generation, so the speaker goroutine can check it
	// while holding the speaker lock.
	genMu      sync.Mutex
	generation int
}

// New creates a player that fetches streams with client.
// A nil client uses a client with a fetch timeout.
func New(client *http.Client) *Player {
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}
	return &Player{
		client: client,
		state:  Stopped,
		events: make(chan Event, eventBuffer),
	}
}

// Play stops the current stream and starts loading url in the background.
// The player reports Playing while the stream loads.
func (p *Player) Play(url string) error {
	p.Stop()
	if url == "" {
		return ErrNoStream
	}

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	p.mu.Lock()
	gen := p.nextGeneration()
	p.state = Playing
	p.cancel = cancel
	p.mu.Unlock()

	go p.load(ctx, gen, url)
	return nil
}

func (p *Player) load(ctx context.Context, gen int, url string) {
	streamer, format, err := p.open(ctx, url)
	if err != nil {
		p.fail(gen, err)
		return
	}
	if err := initSpeaker(format.SampleRate); err != nil {
		streamer.Close()
		p.fail(gen, err)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.isCurrent(gen) {
		streamer.Close()
		return
	}
	p.streamer = streamer
	p.format = format
	// A pause requested while loading is honoured from the first sample.
	p.ctrl = &beep.Ctrl{Streamer: streamer, Paused: p.state == Paused}

	var source beep.Streamer = p.ctrl
	if format.SampleRate != speakerSampleRate {
		source = beep.Resample(4, format.SampleRate, speakerSampleRate, p.ctrl)
	}
	speaker.Play(beep.Seq(source, beep.Callback(func() {
		p.notify(Event{Kind: Finished, Generation: gen})
	})))
}

func (p *Player) open(ctx context.Context, url string) (beep.StreamSeekCloser, beep.Format, error) {
	data, err := p.fetch(ctx, url)
	if err != nil {
		return nil, beep.Format{}, err
	}
	streamer, format, err := mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return nil, beep.Format{}, errors.Wrap(err, "decode stream")
	}
	return streamer, format, nil
}

func (p *Player) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build stream request")
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch stream")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf("fetch stream: unexpected status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxStreamBytes))
	if err != nil {
		return nil, errors.Wrap(err, "read stream")
	}
	return data, nil
}

func (p *Player) fail(gen int, err error) {
	p.mu.Lock()
	current := p.isCurrent(gen)
	if current {
		p.state = Stopped
		p.cancel = nil
	}
	p.mu.Unlock()
	if current {
		p.notify(Event{Kind: Failed, Generation: gen, Err: err})
	}
}

// notify runs on the speaker or loader goroutine. Events of streams replaced
// by a later Play or Stop are dropped here; consumers still compare
// generations because an event may be queued when the stream is replaced.
func (p *Player) notify(ev Event) {
	if !p.isCurrent(ev.Generation) {
		return
	}
	select {
	case p.events <- ev:
	default:
	}
}

func (p *Player) nextGeneration() int {
	p.genMu.Lock()
	defer p.genMu.Unlock()
	p.generation++
	return p.generation
}

func (p *Player) isCurrent(gen int) bool {
	return gen == p.Generation()
}

func initSpeaker(rate beep.SampleRate) error {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	if speakerInitialized {
		return nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	speakerSampleRate = rate
	speakerInitialized = true
	return nil
}

// Stop halts playback and abandons any download in flight.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Stopped {
		return
	}

	p.nextGeneration()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	if p.streamer != nil {
		speaker.Clear()
		p.streamer.Close()
		p.streamer = nil
	}
	p.ctrl = nil
	p.state = Stopped
}

func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Playing {
		return
	}
	if p.ctrl != nil {
		speaker.Lock()
		p.ctrl.Paused = true
		speaker.Unlock()
	}
	p.state = Paused
}

func (p *Player) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Paused {
		return
	}
	if p.ctrl != nil {
		speaker.Lock()
		p.ctrl.Paused = false
		speaker.Unlock()
	}
	p.state = Playing
}

func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.format.SampleRate.D(p.streamer.Position())
	speaker.Unlock()
	return pos
}

func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

func (p *Player) Generation() int {
	p.genMu.Lock()
	defer p.genMu.Unlock()
	return p.generation
}

func (p *Player) Events() <-chan Event {
	return p.events
}

// Close stops playback. The speaker stays initialized for the process.
func (p *Player) Close() error {
	p.Stop()
	return nil
}
