package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/actuallystonmai/jobrec/internal/domain"
	"github.com/actuallystonmai/jobrec/internal/widget"
)

const (
	defaultSessionTTL = 30 * time.Minute
	sweepInterval     = time.Minute
	snapshotTimeout   = 2 * time.Second
)

// SnapshotStore mirrors widget state per session. Implemented by
// cache.MemoryCache and cache.RedisCache.
type SnapshotStore interface {
	Get(ctx context.Context, sessionID string) (widget.State, bool, error)
	Set(ctx context.Context, sessionID string, state widget.State) error
	Delete(ctx context.Context, sessionID string) error
	Ping(ctx context.Context) error
}

type Options struct {
	TopN       int
	SessionTTL time.Duration
	Logger     *log.Logger
}

type session struct {
	widget   *widget.Widget
	lastSeen time.Time
}

// Service keeps one mounted widget per browser session.
type Service struct {
	client widget.Recommender
	store  SnapshotStore
	topN   int
	ttl    time.Duration
	logger *log.Logger
	now    func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

func NewService(client widget.Recommender, store SnapshotStore, opts Options) *Service {
	if opts.TopN <= 0 {
		opts.TopN = domain.DefaultTopN
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = defaultSessionTTL
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		client:   client,
		store:    store,
		topN:     opts.TopN,
		ttl:      opts.SessionTTL,
		logger:   opts.Logger,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Widget returns the mounted widget for a session, mounting one on first
// use. A snapshot left in the store by another process is restored.
func (s *Service) Widget(ctx context.Context, sessionID string) *widget.Widget {
	s.mu.Lock()
	if sess, ok := s.sessions[sessionID]; ok {
		sess.lastSeen = s.now()
		s.mu.Unlock()
		return sess.widget
	}
	s.mu.Unlock()

	opts := []widget.Option{
		widget.WithTopN(s.topN),
		widget.WithLogger(s.logger),
		widget.WithOnChange(s.mirror(sessionID)),
	}

	var w *widget.Widget
	snap, found, err := s.store.Get(ctx, sessionID)
	if err != nil {
		s.logger.Printf("[service] cache get error for session %s: %v", sessionID, err)
	}
	if found {
		w = widget.Restore(s.client, snap, opts...)
	} else {
		w = widget.New(s.client, opts...)
	}

	// a concurrent Submit may find the session before Mount returns
	w.MarkMounted()

	s.mu.Lock()
	if sess, ok := s.sessions[sessionID]; ok {
		// lost a race with a concurrent first request
		sess.lastSeen = s.now()
		s.mu.Unlock()
		return sess.widget
	}
	s.sessions[sessionID] = &session{widget: w, lastSeen: s.now()}
	s.mu.Unlock()

	w.Mount(ctx)
	return w
}

func (s *Service) View(ctx context.Context, sessionID string) widget.State {
	return s.Widget(ctx, sessionID).Snapshot()
}

// Submit sets the session's query and runs a recommendation request. The
// returned state reflects the outcome; err is the request's own error.
// The recommend call is not cancelled when the caller goes away.
func (s *Service) Submit(ctx context.Context, sessionID, query string) (widget.State, error) {
	w := s.Widget(ctx, sessionID)
	w.SetQuery(query)
	err := w.Submit(context.WithoutCancel(ctx))
	return w.Snapshot(), err
}

// End unmounts a session and forgets its snapshot.
func (s *Service) End(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if ok {
		sess.widget.Unmount()
	}
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session %s: %w", sessionID, err)
	}
	if !ok {
		return domain.ErrSessionNotFound
	}
	return nil
}

// Sweep unmounts sessions idle for longer than the session TTL. Their
// snapshots are left to expire in the store.
func (s *Service) Sweep() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	var idle []*session
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			idle = append(idle, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range idle {
		sess.widget.Unmount()
	}
	return len(idle)
}

// Run sweeps idle sessions until ctx is done.
func (s *Service) Run(ctx context.Context) error {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.logger.Printf("[service] unmounted %d idle sessions", n)
			}
		}
	}
}

func (s *Service) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Ping reports whether the snapshot store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *Service) mirror(sessionID string) func(widget.State) {
	return func(state widget.State) {
		ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
		defer cancel()
		if err := s.store.Set(ctx, sessionID, state); err != nil {
			s.logger.Printf("[service] cache set error for session %s: %v", sessionID, err)
		}
	}
}
