package usecase

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/krypton4149/washnow/internal/pkg/logger"
	"github.com/krypton4149/washnow/internal/pkg/models"
	"github.com/krypton4149/washnow/internal/utils"
)

// eventBuffer bounds the per-run event channel. Ticks are presentational and
// may be dropped when the consumer lags; terminal events always fit because
// at most one is emitted.
const eventBuffer = 32

// run is the in-memory state of one live broadcast. All mutation happens
// under BroadcastUC.mu.
type run struct {
	id        string
	sessionID string
	pool      []models.ServiceCenter
	centers   []models.BroadcastCenter
	events    chan models.BroadcastEvent
	tickTimer timer
	endTimer  timer
	elapsed   int
	done      bool
}

// emit never blocks: a run must keep ticking even if nobody is draining it
func (r *run) emit(event models.BroadcastEvent) {
	select {
	case r.events <- event:
	default:
	}
}

func (r *run) snapshot() *models.BroadcastRunState {
	centers := make([]models.BroadcastCenter, len(r.centers))
	copy(centers, r.centers)
	return &models.BroadcastRunState{
		RunID:     r.id,
		SessionID: r.sessionID,
		Resolved:  r.done,
		Centers:   centers,
	}
}

// Start begins a broadcast run for the session, replacing any live run the
// session already has. The candidate set is taken literally: nil means the
// full directory, a non-nil empty set means zero centers.
func (uc *BroadcastUC) Start(ctx context.Context, sessionID string, origin models.Location, candidates models.CandidateCenterSet) (*models.BroadcastRunState, <-chan models.BroadcastEvent, error) {
	pool := uc.candidatePool(ctx, candidates)

	centers := make([]models.BroadcastCenter, len(pool))
	for i, center := range pool {
		centers[i] = models.BroadcastCenter{
			ID:         center.ID,
			Name:       center.Name,
			DistanceKm: centerDistanceKm(origin, center),
			Status:     models.BroadcastStatusWaiting,
		}
	}

	r := &run{
		id:        uuid.New().String(),
		sessionID: sessionID,
		pool:      pool,
		centers:   centers,
		events:    make(chan models.BroadcastEvent, eventBuffer),
	}

	uc.mu.Lock()
	if prev, ok := uc.runs[sessionID]; ok {
		uc.endLocked(prev, models.BroadcastEventCancelled)
	}
	uc.runs[sessionID] = r
	r.tickTimer = uc.clock.AfterFunc(time.Second, func() { uc.tick(r) })
	r.endTimer = uc.clock.AfterFunc(uc.resolveDelay(), func() { uc.resolve(r) })
	state := r.snapshot()
	uc.mu.Unlock()

	if err := uc.broadcastRepo.SaveRun(ctx, state); err != nil {
		logger.WarnCtx(ctx, "Failed to persist broadcast run",
			logger.String("run_id", r.id),
			logger.Err(err))
	}

	event := &models.BroadcastStartedEvent{
		SessionID:      sessionID,
		RunID:          r.id,
		CandidateCount: len(pool),
		LocationLabel:  utils.LocationLabel(origin),
		Timestamp:      models.Now(),
	}
	if err := uc.broadcastGW.PublishBroadcastStarted(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish broadcast started event",
			logger.String("run_id", r.id),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Broadcast run started",
		logger.String("session_id", sessionID),
		logger.String("run_id", r.id),
		logger.Int("candidates", len(pool)))

	return state, r.events, nil
}

// Cancel stops the session's live run before it resolves
func (uc *BroadcastUC) Cancel(ctx context.Context, sessionID string) error {
	uc.mu.Lock()
	r, ok := uc.runs[sessionID]
	if ok {
		uc.endLocked(r, models.BroadcastEventCancelled)
	}
	uc.mu.Unlock()

	if err := uc.broadcastRepo.DeleteRun(ctx, sessionID); err != nil {
		logger.WarnCtx(ctx, "Failed to delete broadcast run snapshot",
			logger.String("session_id", sessionID),
			logger.Err(err))
	}

	if ok {
		logger.InfoCtx(ctx, "Broadcast run cancelled",
			logger.String("session_id", sessionID),
			logger.String("run_id", r.id))
	}
	return nil
}

// ActiveRun returns the persisted snapshot of the session's run, if any
func (uc *BroadcastUC) ActiveRun(ctx context.Context, sessionID string) (*models.BroadcastRunState, error) {
	return uc.broadcastRepo.GetRunBySession(ctx, sessionID)
}

// candidatePool maps the candidate set to the centers a run fans out to.
// Only a nil set reaches for the directory; an empty set stays empty.
func (uc *BroadcastUC) candidatePool(ctx context.Context, candidates models.CandidateCenterSet) []models.ServiceCenter {
	if candidates != nil {
		pool := make([]models.ServiceCenter, len(candidates))
		copy(pool, candidates)
		return pool
	}

	directory, err := uc.broadcastGW.GetServiceCenters(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Center directory unavailable, using fallback centers",
			logger.Err(err))
		return fallbackCenters()
	}
	return directory
}

// tick advances the elapsed counter once a second while the run is live
func (uc *BroadcastUC) tick(r *run) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if r.done {
		return
	}
	r.elapsed++
	r.emit(models.BroadcastEvent{
		Type:           models.BroadcastEventTick,
		RunID:          r.id,
		ElapsedSeconds: r.elapsed,
	})
	r.tickTimer = uc.clock.AfterFunc(time.Second, func() { uc.tick(r) })
}

// resolve flips the whole batch at once: exactly one center accepts and every
// other row becomes not-available. A run with zero candidates resolves to no
// acceptance. Resolving an already ended run is a no-op.
func (uc *BroadcastUC) resolve(r *run) {
	uc.mu.Lock()
	if r.done {
		uc.mu.Unlock()
		return
	}

	var accepted *models.ServiceCenter
	if len(r.pool) > 0 {
		winner := rand.Intn(len(r.pool))
		for i := range r.centers {
			if i == winner {
				r.centers[i].Status = models.BroadcastStatusAccepted
			} else {
				r.centers[i].Status = models.BroadcastStatusNotAvailable
			}
		}
		center := r.pool[winner]
		accepted = &center
	}

	r.done = true
	if r.tickTimer != nil {
		r.tickTimer.Stop()
	}
	state := r.snapshot()
	state.Accepted = accepted
	r.emit(models.BroadcastEvent{
		Type:     models.BroadcastEventResolved,
		RunID:    r.id,
		Centers:  state.Centers,
		Accepted: accepted,
	})
	close(r.events)
	delete(uc.runs, r.sessionID)
	uc.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := uc.broadcastRepo.SaveRun(ctx, state); err != nil {
		logger.Warn("Failed to persist resolved broadcast run",
			logger.String("run_id", r.id),
			logger.Err(err))
	}

	if accepted == nil {
		logger.Info("Broadcast run resolved with no acceptance",
			logger.String("run_id", r.id))
		return
	}

	if err := uc.broadcastGW.PublishCenterAccepted(ctx, &models.CenterAcceptedEvent{
		SessionID: r.sessionID,
		RunID:     r.id,
		Center:    *accepted,
	}); err != nil {
		logger.Error("Failed to publish center accepted event",
			logger.String("run_id", r.id),
			logger.Err(err))
		return
	}

	logger.Info("Broadcast run resolved",
		logger.String("run_id", r.id),
		logger.String("center_id", accepted.ID))
}

// endLocked terminates a run without resolving it. Caller holds uc.mu.
func (uc *BroadcastUC) endLocked(r *run, eventType models.BroadcastEventType) {
	if r.done {
		return
	}
	r.done = true
	if r.tickTimer != nil {
		r.tickTimer.Stop()
	}
	if r.endTimer != nil {
		r.endTimer.Stop()
	}
	r.emit(models.BroadcastEvent{Type: eventType, RunID: r.id})
	close(r.events)
	delete(uc.runs, r.sessionID)
}

func centerDistanceKm(origin models.Location, center models.ServiceCenter) float64 {
	if center.DistanceKm > 0 {
		return center.DistanceKm
	}
	if origin.Latitude == 0 && origin.Longitude == 0 {
		return 0
	}
	if center.Location.Latitude == 0 && center.Location.Longitude == 0 {
		return 0
	}
	return utils.CalculateDistanceKm(origin, center.Location)
}
