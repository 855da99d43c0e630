package broadcast

import (
	"context"

	"github.com/krypton4149/washnow/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/krypton4149/washnow/services/broadcast BroadcastUC

// BroadcastUC represents the broadcast use case interface. A session has at
// most one live run; starting a new run cancels the previous one.
type BroadcastUC interface {
	// Start begins a broadcast run for the session. A nil candidate set
	// broadcasts to the full center directory (or the built-in fallback list
	// when the directory cannot be loaded); an empty non-nil set broadcasts
	// to zero centers. The returned channel carries tick and resolution
	// events and is closed when the run ends.
	Start(ctx context.Context, sessionID string, origin models.Location, candidates models.CandidateCenterSet) (*models.BroadcastRunState, <-chan models.BroadcastEvent, error)

	// Cancel stops the session's live run before it resolves. Cancelling a
	// run that already ended is a no-op.
	Cancel(ctx context.Context, sessionID string) error

	// ActiveRun returns the persisted snapshot of the session's run, if any
	ActiveRun(ctx context.Context, sessionID string) (*models.BroadcastRunState, error)
}
