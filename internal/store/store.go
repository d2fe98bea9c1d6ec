// Package store keeps the session's client directory in memory.
package store

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/jeanpaul/rolodex/internal/client"
	"github.com/jeanpaul/rolodex/internal/logging"
	"github.com/jeanpaul/rolodex/internal/validate"
)

// FirstID is the identity given to the first record of a session.
const FirstID = 1010

// ErrNotFound is wrapped by Require when no record has the identity.
var ErrNotFound = errors.New("client not found")

// Ensure Store implements Directory
var _ Directory = (*Store)(nil)

// Store owns the ordered list of clients and the identity counter.
//
// Records are handed out as shared pointers: a field written through a
// *client.Client returned by FindByID or List is immediately visible to every
// later lookup. List copies the slice, not the records.
type Store struct {
	mu      sync.RWMutex
	clients []*client.Client
	nextID  int
	log     *slog.Logger
}

type Option func(*Store)

// WithLogger sets the logger used for creation and removal events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		nextID: FirstID,
		log:    logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create stores a record built from already-validated fields. It never fails.
// Identity assignment and the append happen under one lock so identities
// stay unique if the store is ever shared.
func (s *Store) Create(f client.Fields) *client.Client {
	s.mu.Lock()
	c := client.New(s.nextID, f)
	s.nextID++
	s.clients = append(s.clients, c)
	s.mu.Unlock()

	s.log.Debug("client created", "id", c.ID(), "name", c.FullName())
	return c
}

// Register runs the creation rules and then Create. A rejected record leaves
// the store and the identity counter untouched.
func (s *Store) Register(f client.Fields) (*client.Client, error) {
	clean, err := validate.Fields(f)
	if err != nil {
		return nil, fmt.Errorf("register client: %w", err)
	}
	return s.Create(clean), nil
}

func (s *Store) FindByID(id int) (*client.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return s.clients[i], true
}

func (s *Store) RemoveByID(id int) bool {
	s.mu.Lock()
	i := s.indexOf(id)
	if i >= 0 {
		s.clients = append(s.clients[:i:i], s.clients[i+1:]...)
	}
	s.mu.Unlock()

	if i < 0 {
		return false
	}
	s.log.Debug("client removed", "id", id)
	return true
}

func (s *Store) List() []*client.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*client.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// NextID reports the identity the next created record will receive.
func (s *Store) NextID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextID
}

// Match filters the directory with a glob pattern, case-insensitively,
// against each record's full name, company and email.
func (s *Store) Match(pattern string) ([]*client.Client, error) {
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("search %q: %w", pattern, doublestar.ErrBadPattern)
	}

	var out []*client.Client
	for _, c := range s.List() {
		for _, candidate := range []string{c.FullName(), c.Company, c.Email} {
			ok, err := doublestar.Match(pattern, strings.ToLower(candidate))
			if err != nil {
				return nil, fmt.Errorf("search %q: %w", pattern, err)
			}
			if ok {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}

func (s *Store) indexOf(id int) int {
	for i, c := range s.clients {
		if c.ID() == id {
			return i
		}
	}
	return -1
}

// Require is FindByID for callers that want an error for a missing identity.
func Require(d Directory, id int) (*client.Client, error) {
	c, ok := d.FindByID(id)
	if !ok {
		return nil, fmt.Errorf("client %d: %w", id, ErrNotFound)
	}
	return c, nil
}
