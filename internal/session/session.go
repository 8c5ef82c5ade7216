// Package session holds the in-memory state of one user session: login
// status, the user profile, saved notes and game progress. State changes
// only through the named operations below.
package session

import (
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"codeberg.org/snonux/lingopad/internal/game"
	"codeberg.org/snonux/lingopad/internal/logging"
)

var (
	ErrMissingFields = errors.New("first name, last name and email are required")
	ErrEmptyNote     = errors.New("note is empty")
)

// UserProfile is collected once at login
type UserProfile struct {
	FirstName  string
	MiddleName string // optional
	LastName   string
	Email      string
}

// Validate checks that the required fields are not blank
func (p UserProfile) Validate() error {
	for _, field := range []string{p.FirstName, p.LastName, p.Email} {
		if strings.TrimSpace(field) == "" {
			return ErrMissingFields
		}
	}
	return nil
}

// Session is the state of a single user session
type Session struct {
	id       string
	loggedIn bool
	user     *UserProfile
	notes    []string
	game     *game.Game
	rng      *rand.Rand
	logger   *zap.Logger
}

// New creates a logged-out session. A nil rng is replaced by a
// time-seeded source.
func New(rng *rand.Rand, logger *zap.Logger) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	id := uuid.NewString()
	return &Session{
		id:     id,
		rng:    rng,
		logger: logging.OrNop(logger).With(zap.String("session", id)),
	}
}

// ID returns the session identifier used in logs
func (s *Session) ID() string {
	return s.id
}

// LoggedIn reports whether the user passed the login form
func (s *Session) LoggedIn() bool {
	return s.loggedIn
}

// User returns the profile of a logged-in user. After logout the stale
// profile is kept but no longer returned.
func (s *Session) User() (UserProfile, bool) {
	if !s.loggedIn || s.user == nil {
		return UserProfile{}, false
	}
	return *s.user, true
}

// Login stores the profile and marks the session logged in. Nothing
// changes when a required field is missing.
func (s *Session) Login(profile UserProfile) error {
	if err := profile.Validate(); err != nil {
		s.logger.Info("login rejected", zap.Error(err))
		return err
	}
	s.user = &profile
	s.loggedIn = true
	s.logger.Info("user logged in")
	return nil
}

// Logout clears the logged-in flag
func (s *Session) Logout() {
	s.loggedIn = false
	s.logger.Info("user logged out")
}

// AddNote appends a note unless it is blank. The note is stored as typed.
func (s *Session) AddNote(note string) error {
	if strings.TrimSpace(note) == "" {
		return ErrEmptyNote
	}
	s.notes = append(s.notes, note)
	s.logger.Debug("note saved", zap.Int("notes", len(s.notes)))
	return nil
}

// Notes returns the saved notes in insertion order
func (s *Session) Notes() []string {
	result := make([]string, len(s.notes))
	copy(result, s.notes)
	return result
}

// Game returns the word game, starting it on first access
func (s *Session) Game() *game.Game {
	if s.game == nil {
		s.game = game.New(s.rng)
		s.logger.Debug("word game started", zap.String("word", s.game.Current()))
	}
	return s.game
}
