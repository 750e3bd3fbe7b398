package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/amishk599/careerconnect/internal/model"
)

// ErrNoSession is returned by Lookup for unknown or expired tokens.
var ErrNoSession = errors.New("no active session")

type session struct {
	user      model.User
	expiresAt time.Time
}

// Sessions is the in-memory session table. Login and Register always succeed;
// nothing is verified against a user database.
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]session
	ttl      time.Duration
	now      func() time.Time
}

// NewSessions returns an empty table whose sessions live for ttl.
func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		sessions: make(map[string]session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Login opens a session for the demo account with the given role and email.
func (s *Sessions) Login(role model.Role, email string) (string, model.User) {
	user := DemoUser(role, email)
	return s.open(user), user
}

// Register opens a session for a freshly simulated account.
func (s *Sessions) Register(role model.Role) (string, model.User) {
	user := NewUser(role)
	return s.open(user), user
}

func (s *Sessions) open(user model.User) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = session{user: user, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return token
}

// Lookup returns the user for token. Expired sessions are dropped here.
func (s *Sessions) Lookup(token string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return model.User{}, ErrNoSession
	}
	if !s.now().Before(sess.expiresAt) {
		delete(s.sessions, token)
		return model.User{}, ErrNoSession
	}
	return sess.user, nil
}

// Logout drops token. Unknown tokens are ignored.
func (s *Sessions) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Len returns the number of stored sessions, including expired ones not yet looked up.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
