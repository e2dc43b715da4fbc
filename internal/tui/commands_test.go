package tui

import (
	"context"
	"errors"
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/convoy/internal/api"
	"github.com/csheth/convoy/internal/forms"
	"github.com/csheth/convoy/internal/stats"
)

type fakeService struct {
	statsCalls  atomic.Int32
	posts       atomic.Int32
	stats       *api.Stats
	statsErr    error
	postMessage string
	postErr     error
	lastFields  forms.Fields
}

func (f *fakeService) fetcher() stats.Fetcher {
	return stats.FetcherFunc(func(context.Context) (*api.Stats, error) {
		f.statsCalls.Add(1)
		return f.stats.Clone(), f.statsErr
	})
}

func (f *fakeService) send(_ context.Context, fields forms.Fields) (api.Result, error) {
	f.posts.Add(1)
	f.lastFields = fields
	if f.postErr != nil {
		return api.Result{}, f.postErr
	}
	return api.Result{Message: f.postMessage}, nil
}

func newTestModel(t *testing.T) *model {
	t.Helper()
	teaModel, ok := New(Config{}).(*model)
	if !ok {
		t.Fatalf("expected *model, got %T", teaModel)
	}
	return teaModel
}

func newServiceModel(t *testing.T, svc *fakeService) *model {
	t.Helper()
	teaModel, ok := New(Config{
		Stats:       svc.fetcher(),
		Newsletter:  svc.send,
		Application: svc.send,
	}).(*model)
	if !ok {
		t.Fatalf("expected *model, got %T", teaModel)
	}
	return teaModel
}

var cmdSliceType = reflect.TypeOf([]tea.Cmd(nil))

// drive runs cmd the way the program loop would, feeding every produced
// message back into the model. Spinner ticks and blinks are dropped.
func drive(t *testing.T, m *model, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 100 {
			t.Fatal("command loop did not settle")
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		if msg == nil {
			continue
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		if v := reflect.ValueOf(msg); v.Kind() == reflect.Slice && v.Type().ConvertibleTo(cmdSliceType) {
			queue = append(queue, v.Convert(cmdSliceType).Interface().([]tea.Cmd)...)
			continue
		}
		switch msg.(type) {
		case jobSignalMsg, jobResultEnvelope, statsResultMsg, submitResultMsg:
			_, follow := m.Update(msg)
			queue = append(queue, follow)
		case spinner.TickMsg:
		}
	}
}

func TestJobBusTracksRunningKinds(t *testing.T) {
	bus := newJobBus(nil)
	bus.Track(jobSnapshot{ID: "stats-1", Kind: jobKindStats, Status: jobStatusRunning})
	bus.Track(jobSnapshot{ID: "newsletter-2", Kind: jobKindNewsletter, Status: jobStatusRunning})

	got := bus.Running()
	if len(got) != 2 || got[0] != jobKindStats || got[1] != jobKindNewsletter {
		t.Fatalf("unexpected running kinds: %v", got)
	}

	bus.Track(jobSnapshot{ID: "stats-1", Kind: jobKindStats, Status: jobStatusFailed})
	if got := bus.Running(); len(got) != 1 || got[0] != jobKindNewsletter {
		t.Fatalf("finished job still tracked: %v", got)
	}
}

func TestJobBusEnvelopeCarriesPayloadAndError(t *testing.T) {
	bus := newJobBus(nil)
	boom := errors.New("boom")
	cmd := bus.Start(jobKindStats, func(context.Context) (tea.Msg, error) {
		return statsResultMsg{err: boom}, boom
	})
	msg := cmd()
	v := reflect.ValueOf(msg)
	if !v.Type().ConvertibleTo(cmdSliceType) {
		t.Fatalf("expected a sequence, got %T", msg)
	}
	cmds := v.Convert(cmdSliceType).Interface().([]tea.Cmd)
	if len(cmds) != 2 {
		t.Fatalf("expected start and run commands, got %d", len(cmds))
	}
	signal, ok := cmds[0]().(jobSignalMsg)
	if !ok || signal.Snapshot.Status != jobStatusRunning {
		t.Fatalf("unexpected start signal: %#v", signal)
	}
	envelope, ok := cmds[1]().(jobResultEnvelope)
	if !ok {
		t.Fatalf("expected envelope")
	}
	if envelope.Snapshot.Status != jobStatusFailed || envelope.Snapshot.Err != "boom" {
		t.Fatalf("unexpected snapshot: %#v", envelope.Snapshot)
	}
	if envelope.Snapshot.ID != signal.Snapshot.ID {
		t.Fatalf("snapshot ids differ: %s vs %s", envelope.Snapshot.ID, signal.Snapshot.ID)
	}
	if _, ok := envelope.Payload.(statsResultMsg); !ok {
		t.Fatalf("payload lost: %T", envelope.Payload)
	}
}

func TestStartStatsRefreshDropsWhileInFlight(t *testing.T) {
	m := newTestModel(t)
	if cmd := m.startStatsRefresh(); cmd == nil {
		t.Fatal("first refresh should start a job")
	}
	if cmd := m.startStatsRefresh(); cmd != nil {
		t.Fatal("second refresh should be dropped while the first is in flight")
	}
	if m.poller.State() != stats.Loading {
		t.Fatalf("poller state = %v, want loading", m.poller.State())
	}
}

func TestActivateStatsOnlyOnce(t *testing.T) {
	svc := &fakeService{stats: &api.Stats{}}
	m := newServiceModel(t, svc)

	drive(t, m, m.activateStats())
	drive(t, m, m.activateStats())

	if got := svc.statsCalls.Load(); got != 1 {
		t.Fatalf("stats fetched %d times, want 1", got)
	}
}
