// Package service holds the session lifecycle: the state machine between
// Unauthenticated and Authenticated, synchronized across the API client and
// the session store.
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/holidaze/holidaze-go/internal/domain/auth"
	"github.com/holidaze/holidaze-go/internal/domain/model"
	apperrors "github.com/holidaze/holidaze-go/internal/errors"
	"github.com/holidaze/holidaze-go/internal/ports"
	"github.com/holidaze/holidaze-go/internal/validation"
)

// defaultRefreshMinInterval bounds profile refresh volume against rapid
// repeated triggers.
const defaultRefreshMinInterval = 5 * time.Second

// API is the slice of the Holidaze client the session lifecycle needs.
type API interface {
	Login(ctx context.Context, creds auth.Credentials) (auth.Account, error)
	Register(ctx context.Context, reg auth.Registration) (*model.User, error)
	GetProfile(ctx context.Context, name string) (*model.User, error)
	UpdateAvatar(ctx context.Context, name string, avatar model.Media) (*model.User, error)
}

// Options bundles dependencies for NewSession.
type Options struct {
	API   API
	Store ports.SessionStore
	// Logger for lifecycle diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
	// RefreshMinInterval is the throttle window between profile refreshes.
	RefreshMinInterval time.Duration
	// Clock overrides time.Now for tests.
	Clock func() time.Time
}

// UserPatch is a shallow partial update applied to the in-memory user.
// Nil fields are left untouched.
type UserPatch struct {
	Avatar       *model.Media
	Bio          *string
	VenueManager *bool
}

// Session is the client-side session lifecycle. Safe for concurrent use.
type Session struct {
	api        API
	store      ports.SessionStore
	logger     *slog.Logger
	refreshMin time.Duration
	now        func() time.Time

	// mu guards the state below and also serializes store writes with
	// state transitions, so a cleared store stays cleared.
	mu            sync.Mutex
	user          *model.User
	token         string
	authenticated bool
	// epoch increments on logout so results from calls issued under a
	// previous session are discarded instead of resurrecting it.
	epoch       uint64
	lastRefresh time.Time

	refreshGroup singleflight.Group
}

// NewSession constructs the session lifecycle. Call Restore to load any
// persisted session before first use.
func NewSession(opts Options) (*Session, error) {
	if opts.API == nil {
		return nil, errors.New("session api is required")
	}
	if opts.Store == nil {
		return nil, errors.New("session store is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	interval := opts.RefreshMinInterval
	if interval <= 0 {
		interval = defaultRefreshMinInterval
	}

	now := opts.Clock
	if now == nil {
		now = time.Now
	}

	return &Session{
		api:        opts.API,
		store:      opts.Store,
		logger:     logger,
		refreshMin: interval,
		now:        now,
	}, nil
}

// Restore loads the persisted session. A well-formed record enters the
// Authenticated state; a partial record is proactively cleared. Store
// failures are logged and leave the session unauthenticated — persistence is
// best-effort, never fatal.
func (s *Session) Restore(ctx context.Context) {
	sess, err := s.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, ports.ErrNoSession) {
			s.logger.WarnContext(ctx, "load persisted session failed", "error", err)
		}
		return
	}

	if !sess.WellFormed() {
		s.logger.WarnContext(ctx, "discarding partial persisted session")
		if clearErr := s.store.Clear(ctx); clearErr != nil {
			s.logger.WarnContext(ctx, "clear partial session failed", "error", clearErr)
		}
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = sess.User.Clone()
	s.token = sess.Token
	s.authenticated = true
}

// Login validates credentials, calls the API, and on success enters the
// Authenticated state and persists the session. On failure the state is
// unchanged. No retry.
func (s *Session) Login(ctx context.Context, creds auth.Credentials) (*model.User, error) {
	if res := validation.Login(creds); !res.Valid() {
		return nil, apperrors.ValidationFields("Invalid login details", res.Errors)
	}

	acct, err := s.api.Login(ctx, creds)
	if err != nil {
		return nil, err
	}

	user := acct.User.Clone()

	s.mu.Lock()
	s.user = user
	s.token = acct.AccessToken
	s.authenticated = true
	s.persist(ctx, acct.AccessToken, user)
	s.mu.Unlock()

	return user.Clone(), nil
}

// Register creates an account. Registration success does not authenticate;
// the caller is expected to log in afterwards.
func (s *Session) Register(ctx context.Context, reg auth.Registration) (*model.User, error) {
	if res := validation.Registration(reg); !res.Valid() {
		return nil, apperrors.ValidationFields("Invalid registration details", res.Errors)
	}
	return s.api.Register(ctx, reg)
}

// Logout clears the store and resets the in-memory state. Unconditional and
// idempotent: the state is reset even when clearing the store fails, and the
// returned error only reports that storage outcome. The clear runs under mu
// so it is ordered after any session write already in flight.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""
	s.authenticated = false
	s.epoch++

	if err := s.store.Clear(ctx); err != nil {
		s.logger.WarnContext(ctx, "clear session store failed", "error", err)
		return apperrors.Storage("Failed to clear stored session", err)
	}
	return nil
}

// RefreshUser re-fetches the profile for the current user and overwrites the
// in-memory and persisted copies. A call arriving within the throttle window
// of the previous one is rejected immediately without a network call.
// Concurrent refreshes are deduplicated; a refresh that loses a race with
// logout is discarded.
func (s *Session) RefreshUser(ctx context.Context) (*model.User, error) {
	s.mu.Lock()
	if !s.authenticated || s.user == nil || s.user.Name == "" {
		s.mu.Unlock()
		return nil, apperrors.Unauthorized("No user data to refresh")
	}
	if since := s.now().Sub(s.lastRefresh); since < s.refreshMin {
		s.mu.Unlock()
		return nil, apperrors.Throttled("Profile refresh throttled")
	}
	s.lastRefresh = s.now()
	name := s.user.Name
	epoch := s.epoch
	s.mu.Unlock()

	fresh, err, _ := s.refreshGroup.Do("refresh:"+name, func() (any, error) {
		return s.api.GetProfile(ctx, name)
	})
	if err != nil {
		return nil, err
	}
	user, ok := fresh.(*model.User)
	if !ok || user == nil {
		return nil, apperrors.API("Failed to fetch profile")
	}

	s.mu.Lock()
	if s.epoch != epoch || !s.authenticated {
		s.mu.Unlock()
		return nil, apperrors.Canceled("Session ended while refreshing profile")
	}
	s.user = user.Clone()
	s.persist(ctx, s.token, user)
	s.mu.Unlock()

	return user.Clone(), nil
}

// UpdateUser shallow-merges the patch into the in-memory user. It does not
// persist; flows that need persistence (avatar update) write explicitly.
func (s *Session) UpdateUser(patch UserPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return
	}
	if patch.Avatar != nil {
		avatar := *patch.Avatar
		s.user.Avatar = &avatar
	}
	if patch.Bio != nil {
		s.user.Bio = *patch.Bio
	}
	if patch.VenueManager != nil {
		s.user.VenueManager = *patch.VenueManager
	}
}

// UpdateAvatar validates the URL, updates the remote profile, then merges
// and persists the result.
func (s *Session) UpdateAvatar(ctx context.Context, avatar model.Media) (*model.User, error) {
	if res := validation.AvatarURL(avatar.URL); !res.Valid() {
		return nil, apperrors.ValidationFields("Invalid avatar", res.Errors)
	}

	s.mu.Lock()
	if !s.authenticated || s.user == nil {
		s.mu.Unlock()
		return nil, apperrors.Unauthorized("You must be logged in to update your avatar.")
	}
	name := s.user.Name
	s.mu.Unlock()

	updated, err := s.api.UpdateAvatar(ctx, name, avatar)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.authenticated && s.user != nil {
		if updated.Avatar != nil {
			avatar := *updated.Avatar
			s.user.Avatar = &avatar
		} else {
			s.user.Avatar = nil
		}
		s.persist(ctx, s.token, s.user)
	}
	s.mu.Unlock()

	return updated.Clone(), nil
}

// persist writes the session record through the store. Callers hold mu, so
// store writes are ordered with state transitions and a logout's clear can
// never be overwritten by a save that passed its epoch check earlier.
// Best-effort: failures are logged, never surfaced to the caller.
func (s *Session) persist(ctx context.Context, token string, user *model.User) {
	sess := auth.Session{
		Token:   token,
		User:    user.Clone(),
		SavedAt: s.now(),
	}
	if err := s.store.Save(ctx, sess); err != nil {
		s.logger.WarnContext(ctx, "persist session failed", "error", err)
	}
}

// User returns a copy of the current user, or nil when unauthenticated.
func (s *Session) User() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Clone()
}

// IsAuthenticated reports whether a user is logged in.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// IsManager reports whether the current user is a venue manager. False when
// unauthenticated.
func (s *Session) IsManager() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.user.VenueManager
}

// Token returns the current bearer token, empty when unauthenticated.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}
