package stats

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/csheth/convoy/internal/api"
)

// LoadState tracks the stats fetch lifecycle.
type LoadState int

const (
	NotStarted LoadState = iota
	Loading
	// Refreshing means a fetch is in flight while a previous snapshot is still shown.
	Refreshing
	Ready
	Failed
)

func (s LoadState) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Loading:
		return "loading"
	case Refreshing:
		return "refreshing"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// InFlight reports whether a fetch is outstanding.
func (s LoadState) InFlight() bool {
	return s == Loading || s == Refreshing
}

// ErrInFlight is returned by Refresh when another fetch has not resolved yet.
var ErrInFlight = errors.New("stats refresh already in flight")

// Fetcher retrieves the aggregate counts.
type Fetcher interface {
	Stats(ctx context.Context) (*api.Stats, error)
}

// FetcherFunc adapts a plain function to Fetcher.
type FetcherFunc func(ctx context.Context) (*api.Stats, error)

func (f FetcherFunc) Stats(ctx context.Context) (*api.Stats, error) { return f(ctx) }

// Poller owns the stats snapshot. Nothing else writes it.
type Poller struct {
	fetcher Fetcher
	logger  *zap.Logger

	mu        sync.Mutex
	state     LoadState
	snapshot  *api.Stats
	err       error
	activated bool
}

// New returns a poller in NotStarted.
func New(fetcher Fetcher, logger *zap.Logger) *Poller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Poller{fetcher: fetcher, logger: logger}
}

// State returns the current load state.
func (p *Poller) State() LoadState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Err returns the error of the last failed fetch, if the poller is Failed.
func (p *Poller) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Snapshot returns a copy of the last good snapshot, or nil before the first
// successful fetch.
func (p *Poller) Snapshot() *api.Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot.Clone()
}

// Begin marks a fetch as started. It returns false while another fetch is in
// flight, leaving state untouched.
func (p *Poller) Begin() (LoadState, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state.InFlight() {
		return p.state, false
	}
	if p.state == Ready {
		p.state = Refreshing
	} else {
		p.state = Loading
	}
	return p.state, true
}

// Resolve applies a fetch result. A success replaces the snapshot wholesale; a
// failure keeps whatever snapshot was there.
func (p *Poller) Resolve(snapshot *api.Stats, err error) LoadState {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.state.InFlight() {
		p.logger.Debug("stats result without a pending fetch dropped")
		return p.state
	}
	if err != nil {
		p.state = Failed
		p.err = err
		p.logger.Info("stats fetch failed", zap.Error(err), zap.Bool("stale_snapshot", p.snapshot != nil))
		return p.state
	}
	if snapshot == nil {
		snapshot = &api.Stats{}
	}
	p.snapshot = snapshot.Clone()
	p.state = Ready
	p.err = nil
	p.logger.Debug("stats refreshed")
	return p.state
}

// Fetch performs the network call for a begun refresh without touching state.
func (p *Poller) Fetch(ctx context.Context) (*api.Stats, error) {
	if p.fetcher == nil {
		return nil, errors.New("stats fetcher not configured")
	}
	return p.fetcher.Stats(ctx)
}

// Refresh fetches the snapshot synchronously. The returned error mirrors the
// fetch error and is informational; the poller has already recorded it.
func (p *Poller) Refresh(ctx context.Context) error {
	if _, ok := p.Begin(); !ok {
		return ErrInFlight
	}
	snapshot, err := p.Fetch(ctx)
	p.Resolve(snapshot, err)
	return err
}

// Activate performs the initial refresh. Later calls are no-ops.
func (p *Poller) Activate(ctx context.Context) error {
	if !p.MarkActivated() {
		return nil
	}
	return p.Refresh(ctx)
}

// MarkActivated records activation and reports whether this was the first call.
func (p *Poller) MarkActivated() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.activated {
		return false
	}
	p.activated = true
	return true
}
