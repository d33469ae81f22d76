// Package sessions keeps the allocation splitters that users are currently
// editing, keyed by session ID.
package sessions

import (
	"errors"
	"sync"
	"time"

	"github.com/backoffice-dms/allocations/internal/allocation"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

var ErrSessionNotFound = errors.New("there is no allocation session with this ID, it might have expired")

// OpenSessions is the number of sessions in all stores.
var OpenSessions = prometheus.NewGauge(prometheus.GaugeOpts{
	Name: "allocation_sessions_open",
	Help: "How many allocation edit sessions are currently open.",
})

// entry is a session in the store.
type entry struct {
	update  sync.Mutex // held for the whole run of an Update
	session *Session
}

// Session is an edit session for the allocations of one invoice.
type Session struct {
	ID        uuid.UUID
	InvoiceID uuid.UUID
	Splitter  *allocation.Splitter
	OpenedAt  time.Time
	LastUsed  time.Time
}

// Store holds edit sessions in memory. Sessions that have not been used for
// longer than the TTL expire. It is safe for concurrent use.
//
// Updates of the same session are serialized, updates of different sessions
// run in parallel.
type Store struct {
	mu       sync.Mutex // guards sessions and every session in it
	ttl      time.Duration
	sessions map[uuid.UUID]*entry

	// now is replaced in tests
	now func() time.Time
}

// NewStore returns an empty store. A ttl of 0 or less disables expiry.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[uuid.UUID]*entry),
		now:      time.Now,
	}
}

// Open creates a session for the splitter and returns it.
func (s *Store) Open(invoiceID uuid.UUID, splitter *allocation.Splitter) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.prune(now)

	session := &Session{
		ID:        uuid.New(),
		InvoiceID: invoiceID,
		Splitter:  splitter,
		OpenedAt:  now,
		LastUsed:  now,
	}

	s.sessions[session.ID] = &entry{session: session}
	OpenSessions.Inc()

	return session.copy()
}

// Get returns the session with the ID.
func (s *Store) Get(id uuid.UUID) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.get(id)
	if err != nil {
		return Session{}, err
	}

	e.session.LastUsed = s.now()
	return e.session.copy(), nil
}

// Update runs fn on the session.
//
// fn works on a copy of the splitter. If fn returns an error, the copy is
// discarded and the session is left unchanged. Only one fn runs for a session
// at a time; the store itself is not locked while fn runs, so fn may block
// on I/O without holding up other sessions.
func (s *Store) Update(id uuid.UUID, fn func(*Session) error) (Session, error) {
	s.mu.Lock()
	e, err := s.get(id)
	s.mu.Unlock()
	if err != nil {
		return Session{}, err
	}

	e.update.Lock()
	defer e.update.Unlock()

	// The session may have been discarded or changed while waiting
	s.mu.Lock()
	current, ok := s.sessions[id]
	if !ok || current != e {
		s.mu.Unlock()
		return Session{}, ErrSessionNotFound
	}
	working := e.session.copy()
	s.mu.Unlock()

	if err := fn(&working); err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		return e.session.copy(), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// ID, invoice and open time cannot be changed
	e.session.Splitter = working.Splitter.Clone()
	e.session.LastUsed = s.now()

	return e.session.copy(), nil
}

// Discard removes the session.
func (s *Store) Discard(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.get(id); err != nil {
		return err
	}

	s.remove(id)
	return nil
}

// Clear removes all sessions.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id := range s.sessions {
		s.remove(id)
	}
}

// Prune removes all sessions that are expired at the given time and returns
// how many were removed.
func (s *Store) Prune(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.prune(now)
}

// Len returns the number of sessions, including expired ones that have not been pruned yet.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

func (s *Store) get(id uuid.UUID) (*entry, error) {
	e, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	if s.expired(e.session, s.now()) {
		s.remove(id)
		return nil, ErrSessionNotFound
	}

	return e, nil
}

func (s *Store) prune(now time.Time) int {
	var pruned int
	for id, e := range s.sessions {
		if s.expired(e.session, now) {
			s.remove(id)
			pruned++
		}
	}

	return pruned
}

func (s *Store) remove(id uuid.UUID) {
	delete(s.sessions, id)
	OpenSessions.Dec()
}

func (s *Store) expired(session *Session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(session.LastUsed) > s.ttl
}

// copy returns a copy of the session with its own splitter.
func (session *Session) copy() Session {
	c := *session
	c.Splitter = session.Splitter.Clone()
	return c
}
