package sessiongate

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/residensync/residensync-backend/pkg/logger"
)

// Event is one observation from either of the two independent remote
// streams feeding the gate. The gate holds the most-recently-observed pair
// and never assumes ordering between the streams.
type Event interface {
	isGateEvent()
}

// IdentityChanged reports a sign-in (UserID set) or sign-out (UserID nil).
type IdentityChanged struct {
	UserID *uuid.UUID
}

// ProfileChanged reports a create/update (Profile set) or delete (Profile
// nil, meaning the record was observed absent).
type ProfileChanged struct {
	Profile *Profile
}

// ProfileError reports a failed profile stream read. The gate degrades to
// its safest default: no profile, not admin, loading cleared.
type ProfileError struct {
	Err error
}

func (IdentityChanged) isGateEvent() {}
func (ProfileChanged) isGateEvent()  {}
func (ProfileError) isGateEvent()    {}

// Gate reduces identity and profile events into a Snapshot. No state is
// reported as settled before the identity check and, when identity is
// present, a first profile observation have both completed.
type Gate struct {
	mu sync.Mutex

	identityObserved bool
	identityPresent  bool
	userID           *uuid.UUID

	profileObserved bool
	profile         *Profile

	logg *logger.Logger
}

func NewGate(logg *logger.Logger) *Gate {
	return &Gate{logg: logg}
}

// Apply folds one event into the gate.
func (g *Gate) Apply(ctx context.Context, event Event) {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch e := event.(type) {
	case IdentityChanged:
		g.identityObserved = true
		g.identityPresent = e.UserID != nil
		g.userID = e.UserID
		if !g.identityPresent {
			// Sign-out clears any stale profile observation.
			g.profileObserved = false
			g.profile = nil
		}

	case ProfileChanged:
		g.profileObserved = true
		g.profile = e.Profile
		if e.Profile == nil && g.identityPresent && g.logg != nil {
			g.logg.Warn(ctx, "profile record missing for authenticated identity")
		}

	case ProfileError:
		g.profileObserved = true
		g.profile = nil
		if g.logg != nil {
			g.logg.Error(ctx, "profile stream failed", e.Err)
		}
	}
}

// Run consumes events until the channel closes or the context is done.
func (g *Gate) Run(ctx context.Context, events <-chan Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			g.Apply(ctx, event)
		}
	}
}

// Snapshot derives the current state from the observed pair.
func (g *Gate) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	loading := !g.identityObserved || (g.identityPresent && !g.profileObserved)
	state := Resolve(g.identityPresent, g.profileObserved, g.profile)

	return Snapshot{
		State:      state,
		Loading:    loading,
		IsAdmin:    g.profile != nil && g.profile.Role.IsAdmin(),
		EntryRoute: EntryRoute(state),
	}
}
