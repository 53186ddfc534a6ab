package auth

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"susanalopezstudio/internal/kvstore"
)

// MinPasswordLength is the only registration precondition besides email
// uniqueness. No lockout, no rate limiting.
const MinPasswordLength = 6

// Snapshot is the side-effect-free read surface consumed by every view:
// authenticated flag, current identity and, for demo sessions, the canned
// dashboard bundle.
type Snapshot struct {
	Authenticated bool
	User          *Session
	Demo          *DemoData
}

// Service holds the registered-identity directory and the single active
// session, both persisted through the key-value store. Two states:
// Anonymous and Authenticated.
type Service struct {
	mu      sync.RWMutex
	kv      kvstore.Store
	log     zerolog.Logger
	users   []User
	session *sessionRecord
	demo    *DemoData
}

func NewService(kv kvstore.Store, log zerolog.Logger) *Service {
	return &Service{
		kv:  kv,
		log: log.With().Str("component", "auth").Logger(),
	}
}

// Bootstrap rehydrates the directory and any persisted session. Malformed
// persisted data is treated as absent: a bad directory is cleared, a bad
// session just leaves the service Anonymous. Never fails the startup.
func (s *Service) Bootstrap(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if data, ok, err := s.kv.Get(ctx, kvstore.KeyUsers); err != nil {
		s.log.Error().Err(err).Msg("reading user directory")
	} else if ok {
		var users []User
		if err := json.Unmarshal(data, &users); err != nil {
			s.log.Warn().Err(err).Msg("clearing malformed user directory")
			if err := s.kv.Delete(ctx, kvstore.KeyUsers); err != nil {
				s.log.Error().Err(err).Msg("deleting malformed user directory")
			}
		} else {
			s.users = users
		}
	}

	data, ok, err := s.kv.Get(ctx, kvstore.KeySession)
	if err != nil {
		s.log.Error().Err(err).Msg("reading persisted session")
		return
	}
	if !ok {
		return
	}
	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil || rec.Email == "" {
		s.log.Warn().Msg("ignoring malformed persisted session")
		return
	}
	if rec.Role == "" {
		rec.Role = DetermineRole(rec.Email)
	}
	s.session = &rec
	if rec.IsDemo {
		if profile, found := demoProfileFor(rec.Email); found {
			data := profile.Data
			s.demo = &data
		}
	}
	s.log.Info().Str("email", rec.Email).Str("role", string(rec.Role)).Msg("session restored")
}

// Login authenticates the given credentials. Reserved demo addresses succeed
// with any password and attach their canned bundle; everyone else must match
// a directory record exactly. Returns false for invalid credentials, error
// only for storage faults.
func (s *Service) Login(ctx context.Context, email, password string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if profile, found := demoProfileFor(email); found {
		rec := sessionRecord{Name: profile.Name, Email: email, Role: profile.Role, IsDemo: true}
		if err := s.persistSessionLocked(ctx, rec); err != nil {
			return false, err
		}
		s.session = &rec
		data := profile.Data
		s.demo = &data
		s.log.Info().Str("email", email).Msg("demo login")
		return true, nil
	}

	for _, u := range s.users {
		if u.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			break
		}
		role := u.Role
		if role == "" {
			role = DetermineRole(email)
		}
		rec := sessionRecord{Name: u.Name, Email: email, Role: role}
		if err := s.persistSessionLocked(ctx, rec); err != nil {
			return false, err
		}
		s.session = &rec
		s.demo = nil
		s.log.Info().Str("email", email).Str("role", string(role)).Msg("login")
		return true, nil
	}
	return false, nil
}

// Logout returns to Anonymous and removes the persisted session. Idempotent.
func (s *Service) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	s.demo = nil
	return s.kv.Delete(ctx, kvstore.KeySession)
}

// Register adds an identity to the directory and logs it in. Fails (false)
// when the password is shorter than MinPasswordLength or the email is
// already registered; neither failure changes any state. The reserved admin
// address gets the admin role, every other address gets client.
func (s *Service) Register(ctx context.Context, name, email, password string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(password) < MinPasswordLength {
		return false, nil
	}
	for _, u := range s.users {
		if u.Email == email {
			return false, nil
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	role := DetermineRole(email)
	updated := append(append([]User(nil), s.users...), User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
	data, err := json.Marshal(updated)
	if err != nil {
		return false, err
	}
	if err := s.kv.Set(ctx, kvstore.KeyUsers, data); err != nil {
		return false, err
	}
	s.users = updated

	rec := sessionRecord{Name: name, Email: email, Role: role}
	if err := s.persistSessionLocked(ctx, rec); err != nil {
		return false, err
	}
	s.session = &rec
	s.demo = nil
	s.log.Info().Str("email", email).Str("role", string(role)).Msg("registered")
	return true, nil
}

// Snapshot returns the current session state for rendering and gating.
func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return Snapshot{}
	}
	user := Session{Name: s.session.Name, Email: s.session.Email, Role: s.session.Role}
	var demo *DemoData
	if s.demo != nil {
		d := *s.demo
		demo = &d
	}
	return Snapshot{Authenticated: true, User: &user, Demo: demo}
}

// DirectorySize reports how many identities are registered. Demo profiles
// are not part of the directory.
func (s *Service) DirectorySize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

func (s *Service) persistSessionLocked(ctx context.Context, rec sessionRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, kvstore.KeySession, data)
}
