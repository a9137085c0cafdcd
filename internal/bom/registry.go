package bom

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/autoflexhq/inventory-console/pkg/logger"
)

// Registry tracks open editor sessions for the HTTP surface. Each session
// wraps one independent Editor; sessions share nothing with each other and
// are swept after sitting idle past the TTL.
type Registry struct {
	repo    Repository
	logg    *logger.Logger
	idleTTL time.Duration

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	editor   *Editor
	lastSeen time.Time
}

// NewRegistry builds an empty session registry.
func NewRegistry(repo Repository, idleTTL time.Duration, logg *logger.Logger) *Registry {
	return &Registry{
		repo:     repo,
		logg:     logg,
		idleTTL:  idleTTL,
		sessions: map[string]*session{},
	}
}

// Open creates a new editor for the product and performs its initial load.
// The session is registered even when the load fails so the caller can
// render the error and retry with a Refresh.
func (r *Registry) Open(ctx context.Context, productID int64) (string, *Editor, error) {
	editor := NewEditor(r.repo, productID)
	err := editor.Open(ctx)

	id := uuid.NewString()
	r.mu.Lock()
	r.sessions[id] = &session{editor: editor, lastSeen: time.Now()}
	r.mu.Unlock()

	if r.logg != nil {
		ctx = r.logg.WithSessionID(ctx, id)
		ctx = r.logg.WithProductID(ctx, productID)
		r.logg.Info(ctx, "bom.session.opened")
	}
	return id, editor, err
}

// Get returns the editor for a live session and refreshes its idle clock.
func (r *Registry) Get(sessionID string) (*Editor, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sess, ok := r.sessions[sessionID]
	if !ok {
		return nil, false
	}
	sess.lastSeen = time.Now()
	return sess.editor, true
}

// Close discards the session and all of its in-memory state.
func (r *Registry) Close(ctx context.Context, sessionID string) bool {
	r.mu.Lock()
	sess, ok := r.sessions[sessionID]
	if ok {
		delete(r.sessions, sessionID)
	}
	r.mu.Unlock()

	if !ok {
		return false
	}
	sess.editor.Close()
	if r.logg != nil {
		ctx = r.logg.WithSessionID(ctx, sessionID)
		r.logg.Info(ctx, "bom.session.closed")
	}
	return true
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// SweepIdle closes sessions idle past the TTL and reports how many.
func (r *Registry) SweepIdle(now time.Time) int {
	if r.idleTTL <= 0 {
		return 0
	}

	r.mu.Lock()
	var expired []*session
	for id, sess := range r.sessions {
		if now.Sub(sess.lastSeen) > r.idleTTL {
			expired = append(expired, sess)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, sess := range expired {
		sess.editor.Close()
	}
	return len(expired)
}

// StartSweeper runs the idle sweep on the given interval until the context
// is canceled.
func (r *Registry) StartSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if swept := r.SweepIdle(now); swept > 0 && r.logg != nil {
					r.logg.Info(r.logg.WithField(ctx, "swept", swept), "bom.session.sweep")
				}
			}
		}
	}()
}
