package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krypton4149/washnow/internal/pkg/models"
	"github.com/krypton4149/washnow/services/broadcast/mocks"
)

// fakeTimer and fakeClock drive broadcast runs without sleeping. Advance
// fires due timers in order, releasing the clock lock around each callback
// so callbacks can schedule new timers.
type fakeTimer struct {
	c       *fakeClock
	when    time.Duration
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	t.c.mu.Lock()
	defer t.c.mu.Unlock()
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}

type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{c: c, when: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	for {
		var next *fakeTimer
		for _, t := range c.timers {
			if t.stopped || t.when > target {
				continue
			}
			if next == nil || t.when < next.when {
				next = t
			}
		}
		if next == nil {
			break
		}
		next.stopped = true
		c.now = next.when
		c.mu.Unlock()
		next.f()
		c.mu.Lock()
	}
	c.now = target
	c.mu.Unlock()
}

func drainEvents(ch <-chan models.BroadcastEvent) []models.BroadcastEvent {
	var out []models.BroadcastEvent
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, ev)
		default:
			return out
		}
	}
}

func newTestUC(t *testing.T) (*BroadcastUC, *fakeClock, *mocks.MockBroadcastRepo, *mocks.MockBroadcastGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockBroadcastRepo(ctrl)
	gw := mocks.NewMockBroadcastGW(ctrl)
	uc := NewBroadcastUC(models.BroadcastConfig{ResolveDelaySeconds: 7}, repo, gw)

	fc := &fakeClock{}
	uc.clock = fc
	return uc, fc, repo, gw
}

func testCandidates() models.CandidateCenterSet {
	return models.CandidateCenterSet{
		{ID: "c1", Name: "Sparkle Auto Spa", DistanceKm: 1.2},
		{ID: "c2", Name: "QuickShine Car Wash", DistanceKm: 2.8},
		{ID: "c3", Name: "AquaGleam Detailing", DistanceKm: 4.5},
	}
}

func TestStartResolvesToExactlyOneAcceptance(t *testing.T) {
	uc, fc, repo, gw := newTestUC(t)

	repo.EXPECT().SaveRun(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	gw.EXPECT().PublishBroadcastStarted(gomock.Any(), gomock.Any()).Return(nil)

	var published *models.CenterAcceptedEvent
	gw.EXPECT().PublishCenterAccepted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev *models.CenterAcceptedEvent) error {
			published = ev
			return nil
		})

	state, events, err := uc.Start(context.Background(), "session-1", models.Location{}, testCandidates())
	require.NoError(t, err)
	require.Len(t, state.Centers, 3)
	for _, c := range state.Centers {
		assert.Equal(t, models.BroadcastStatusWaiting, c.Status)
	}

	// Part way through, only ticks have happened
	fc.Advance(3 * time.Second)
	for _, ev := range drainEvents(events) {
		assert.Equal(t, models.BroadcastEventTick, ev.Type)
	}

	// Crossing the resolve delay flips the whole batch at once
	fc.Advance(4 * time.Second)
	collected := drainEvents(events)
	require.NotEmpty(t, collected)
	final := collected[len(collected)-1]
	require.Equal(t, models.BroadcastEventResolved, final.Type)
	require.NotNil(t, final.Accepted)

	accepted, unavailable := 0, 0
	for _, c := range final.Centers {
		switch c.Status {
		case models.BroadcastStatusAccepted:
			accepted++
			assert.Equal(t, final.Accepted.ID, c.ID)
		case models.BroadcastStatusNotAvailable:
			unavailable++
		default:
			t.Fatalf("unexpected status %q after resolution", c.Status)
		}
	}
	assert.Equal(t, 1, accepted)
	assert.Equal(t, 2, unavailable)

	require.NotNil(t, published)
	assert.Equal(t, "session-1", published.SessionID)
	assert.Equal(t, final.Accepted.ID, published.Center.ID)
}

func TestTicksCarryElapsedSeconds(t *testing.T) {
	uc, fc, repo, gw := newTestUC(t)

	repo.EXPECT().SaveRun(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	repo.EXPECT().DeleteRun(gomock.Any(), "session-1").Return(nil)
	gw.EXPECT().PublishBroadcastStarted(gomock.Any(), gomock.Any()).Return(nil)

	_, events, err := uc.Start(context.Background(), "session-1", models.Location{}, testCandidates())
	require.NoError(t, err)

	fc.Advance(3 * time.Second)
	require.NoError(t, uc.Cancel(context.Background(), "session-1"))

	ticks := 0
	for _, ev := range drainEvents(events) {
		if ev.Type == models.BroadcastEventTick {
			ticks++
			assert.Equal(t, ticks, ev.ElapsedSeconds)
		}
	}
	assert.Equal(t, 3, ticks)
}

func TestCancelStopsResolution(t *testing.T) {
	uc, fc, repo, gw := newTestUC(t)

	repo.EXPECT().SaveRun(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	repo.EXPECT().DeleteRun(gomock.Any(), "session-1").Return(nil)
	gw.EXPECT().PublishBroadcastStarted(gomock.Any(), gomock.Any()).Return(nil)
	// No PublishCenterAccepted expectation: a cancelled run must never publish one

	_, events, err := uc.Start(context.Background(), "session-1", models.Location{}, testCandidates())
	require.NoError(t, err)

	fc.Advance(3 * time.Second)
	require.NoError(t, uc.Cancel(context.Background(), "session-1"))
	fc.Advance(10 * time.Second)

	collected := drainEvents(events)
	require.NotEmpty(t, collected)
	assert.Equal(t, models.BroadcastEventCancelled, collected[len(collected)-1].Type)
	for _, ev := range collected {
		assert.NotEqual(t, models.BroadcastEventResolved, ev.Type)
	}
}

func TestCancelAfterResolutionIsNoOp(t *testing.T) {
	uc, fc, repo, gw := newTestUC(t)

	repo.EXPECT().SaveRun(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	repo.EXPECT().DeleteRun(gomock.Any(), "session-1").Return(nil)
	gw.EXPECT().PublishBroadcastStarted(gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishCenterAccepted(gomock.Any(), gomock.Any()).Return(nil)

	_, events, err := uc.Start(context.Background(), "session-1", models.Location{}, testCandidates())
	require.NoError(t, err)

	fc.Advance(8 * time.Second)
	require.NoError(t, uc.Cancel(context.Background(), "session-1"))
	fc.Advance(8 * time.Second)

	resolved := 0
	for _, ev := range drainEvents(events) {
		if ev.Type == models.BroadcastEventResolved {
			resolved++
		}
	}
	assert.Equal(t, 1, resolved)
}

func TestEmptyCandidateSetStaysEmpty(t *testing.T) {
	uc, fc, repo, gw := newTestUC(t)

	repo.EXPECT().SaveRun(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	gw.EXPECT().PublishBroadcastStarted(gomock.Any(), gomock.Any()).Return(nil)
	// No GetServiceCenters expectation: an empty set must not load the directory

	state, events, err := uc.Start(context.Background(), "session-1", models.Location{}, models.CandidateCenterSet{})
	require.NoError(t, err)
	assert.Empty(t, state.Centers)

	fc.Advance(8 * time.Second)
	collected := drainEvents(events)
	require.NotEmpty(t, collected)
	final := collected[len(collected)-1]
	assert.Equal(t, models.BroadcastEventResolved, final.Type)
	assert.Nil(t, final.Accepted)
	assert.Empty(t, final.Centers)
}

func TestNilCandidateSetLoadsDirectory(t *testing.T) {
	uc, _, repo, gw := newTestUC(t)

	directory := []models.ServiceCenter{
		{ID: "d1", Name: "Directory One"},
		{ID: "d2", Name: "Directory Two"},
	}
	repo.EXPECT().SaveRun(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	repo.EXPECT().DeleteRun(gomock.Any(), "session-1").Return(nil)
	gw.EXPECT().GetServiceCenters(gomock.Any()).Return(directory, nil)
	gw.EXPECT().PublishBroadcastStarted(gomock.Any(), gomock.Any()).Return(nil)

	state, _, err := uc.Start(context.Background(), "session-1", models.Location{}, nil)
	require.NoError(t, err)
	require.Len(t, state.Centers, 2)
	assert.Equal(t, "d1", state.Centers[0].ID)

	require.NoError(t, uc.Cancel(context.Background(), "session-1"))
}

func TestDirectoryFailureUsesFallbackCenters(t *testing.T) {
	uc, _, repo, gw := newTestUC(t)

	repo.EXPECT().SaveRun(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	repo.EXPECT().DeleteRun(gomock.Any(), "session-1").Return(nil)
	gw.EXPECT().GetServiceCenters(gomock.Any()).Return(nil, errors.New("backend down"))
	gw.EXPECT().PublishBroadcastStarted(gomock.Any(), gomock.Any()).Return(nil)

	state, _, err := uc.Start(context.Background(), "session-1", models.Location{}, nil)
	require.NoError(t, err)
	assert.Len(t, state.Centers, len(fallbackCenters()))

	require.NoError(t, uc.Cancel(context.Background(), "session-1"))
}

func TestStartReplacesLiveRun(t *testing.T) {
	uc, fc, repo, gw := newTestUC(t)

	repo.EXPECT().SaveRun(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	gw.EXPECT().PublishBroadcastStarted(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	var published *models.CenterAcceptedEvent
	gw.EXPECT().PublishCenterAccepted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev *models.CenterAcceptedEvent) error {
			published = ev
			return nil
		})

	first, firstEvents, err := uc.Start(context.Background(), "session-1", models.Location{}, testCandidates())
	require.NoError(t, err)

	fc.Advance(2 * time.Second)
	second, secondEvents, err := uc.Start(context.Background(), "session-1", models.Location{}, testCandidates())
	require.NoError(t, err)
	require.NotEqual(t, first.RunID, second.RunID)

	collected := drainEvents(firstEvents)
	require.NotEmpty(t, collected)
	assert.Equal(t, models.BroadcastEventCancelled, collected[len(collected)-1].Type)

	fc.Advance(8 * time.Second)
	final := drainEvents(secondEvents)
	require.NotEmpty(t, final)
	assert.Equal(t, models.BroadcastEventResolved, final[len(final)-1].Type)

	require.NotNil(t, published)
	assert.Equal(t, second.RunID, published.RunID)
}

func TestDistanceComputedFromOrigin(t *testing.T) {
	uc, _, repo, gw := newTestUC(t)

	repo.EXPECT().SaveRun(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	repo.EXPECT().DeleteRun(gomock.Any(), "session-1").Return(nil)
	gw.EXPECT().PublishBroadcastStarted(gomock.Any(), gomock.Any()).Return(nil)

	origin := models.Location{Latitude: -6.2088, Longitude: 106.8456}
	candidates := models.CandidateCenterSet{
		{ID: "c1", Name: "Known distance", DistanceKm: 3.3},
		{ID: "c2", Name: "Needs computing", Location: models.Location{Latitude: -6.1751, Longitude: 106.865}},
	}

	state, _, err := uc.Start(context.Background(), "session-1", origin, candidates)
	require.NoError(t, err)
	require.Len(t, state.Centers, 2)
	assert.Equal(t, 3.3, state.Centers[0].DistanceKm)
	assert.InDelta(t, 4.3, state.Centers[1].DistanceKm, 1.0)

	require.NoError(t, uc.Cancel(context.Background(), "session-1"))
}
