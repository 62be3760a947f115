package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/holidaze/holidaze-go/internal/adapters/memstore"
	"github.com/holidaze/holidaze-go/internal/domain/auth"
	"github.com/holidaze/holidaze-go/internal/domain/model"
	apperrors "github.com/holidaze/holidaze-go/internal/errors"
	mockapi "github.com/holidaze/holidaze-go/internal/mocks/api"
	"github.com/holidaze/holidaze-go/internal/ports"
)

// fakeClock is a settable clock for throttle tests.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type fixture struct {
	api   *mockapi.MockAPI
	store *memstore.Store
	clock *fakeClock
	sess  *Session
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	api := mockapi.NewMockAPI(ctrl)
	store := memstore.New()
	clock := &fakeClock{t: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}

	sess, err := NewSession(Options{
		API:                api,
		Store:              store,
		RefreshMinInterval: 5 * time.Second,
		Clock:              clock.Now,
	})
	require.NoError(t, err)

	return &fixture{api: api, store: store, clock: clock, sess: sess}
}

func validCreds() auth.Credentials {
	return auth.Credentials{Email: "jane@stud.noroff.no", Password: "password1"}
}

func managerAccount() auth.Account {
	return auth.Account{
		User: model.User{
			Name:         "jane",
			Email:        "jane@stud.noroff.no",
			VenueManager: true,
		},
		AccessToken: "tok123",
	}
}

// login drives the fixture into the authenticated state.
func (f *fixture) login(t *testing.T) {
	t.Helper()
	f.api.EXPECT().Login(gomock.Any(), validCreds()).Return(managerAccount(), nil)
	_, err := f.sess.Login(context.Background(), validCreds())
	require.NoError(t, err)
}

func TestNewSessionRequiresDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := NewSession(Options{Store: memstore.New()})
	require.Error(t, err)

	_, err = NewSession(Options{API: mockapi.NewMockAPI(ctrl)})
	require.Error(t, err)
}

func TestRestoreWellFormedSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.Save(ctx, auth.Session{
		Token: "tok123",
		User:  &model.User{Name: "jane", VenueManager: true},
	}))

	f.sess.Restore(ctx)

	assert.True(t, f.sess.IsAuthenticated())
	assert.True(t, f.sess.IsManager())
	assert.Equal(t, "tok123", f.sess.Token())
	require.NotNil(t, f.sess.User())
	assert.Equal(t, "jane", f.sess.User().Name)
}

func TestRestorePartialSessionIsCleared(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Token without a user is a torn record.
	require.NoError(t, f.store.Save(ctx, auth.Session{Token: "tok123"}))

	f.sess.Restore(ctx)

	assert.False(t, f.sess.IsAuthenticated())
	_, err := f.store.Load(ctx)
	assert.True(t, errors.Is(err, ports.ErrNoSession))
}

func TestRestoreEmptyStore(t *testing.T) {
	f := newFixture(t)
	f.sess.Restore(context.Background())
	assert.False(t, f.sess.IsAuthenticated())
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.api.EXPECT().Login(gomock.Any(), validCreds()).Return(managerAccount(), nil)

	user, err := f.sess.Login(ctx, validCreds())
	require.NoError(t, err)
	assert.Equal(t, "jane", user.Name)
	assert.True(t, f.sess.IsAuthenticated())
	assert.True(t, f.sess.IsManager())
	assert.Equal(t, "tok123", f.sess.Token())

	// Session record is persisted on successful login.
	saved, err := f.store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok123", saved.Token)
	require.NotNil(t, saved.User)
	assert.Equal(t, "jane", saved.User.Name)

	// Returned user is a copy; mutating it does not reach the session.
	user.Name = "mallory"
	assert.Equal(t, "jane", f.sess.User().Name)
}

func TestLoginValidationFailure(t *testing.T) {
	f := newFixture(t)

	_, err := f.sess.Login(context.Background(), auth.Credentials{Email: "jane@example.com"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	fields := apperrors.GetFields(err)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
	assert.False(t, f.sess.IsAuthenticated())
}

func TestLoginAPIFailureLeavesStateUnchanged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.api.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(auth.Account{}, apperrors.API("Invalid email or password"))

	_, err := f.sess.Login(ctx, validCreds())
	require.Error(t, err)
	assert.False(t, f.sess.IsAuthenticated())
	assert.Empty(t, f.sess.Token())

	_, err = f.store.Load(ctx)
	assert.True(t, errors.Is(err, ports.ErrNoSession))
}

func TestRegisterDoesNotAuthenticate(t *testing.T) {
	f := newFixture(t)
	reg := auth.Registration{
		Name:     "jane",
		Email:    "jane@stud.noroff.no",
		Password: "password1",
	}

	f.api.EXPECT().Register(gomock.Any(), reg).Return(&model.User{Name: "jane"}, nil)

	user, err := f.sess.Register(context.Background(), reg)
	require.NoError(t, err)
	assert.Equal(t, "jane", user.Name)
	assert.False(t, f.sess.IsAuthenticated())
}

func TestRegisterValidationFailure(t *testing.T) {
	f := newFixture(t)

	_, err := f.sess.Register(context.Background(), auth.Registration{Password: "short"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestLogout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t)

	require.NoError(t, f.sess.Logout(ctx))
	assert.False(t, f.sess.IsAuthenticated())
	assert.Nil(t, f.sess.User())
	assert.Empty(t, f.sess.Token())

	_, err := f.store.Load(ctx)
	assert.True(t, errors.Is(err, ports.ErrNoSession))

	// Logging out twice is a no-op.
	require.NoError(t, f.sess.Logout(ctx))
}

func TestRefreshUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t)

	f.api.EXPECT().GetProfile(gomock.Any(), "jane").
		Return(&model.User{Name: "jane", Bio: "updated bio", VenueManager: true}, nil)

	user, err := f.sess.RefreshUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "updated bio", user.Bio)
	assert.Equal(t, "updated bio", f.sess.User().Bio)

	// The refreshed profile is persisted with the existing token.
	saved, err := f.store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok123", saved.Token)
	assert.Equal(t, "updated bio", saved.User.Bio)
}

func TestRefreshUserThrottled(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t)

	f.api.EXPECT().GetProfile(gomock.Any(), "jane").
		Return(&model.User{Name: "jane"}, nil).
		Times(2)

	_, err := f.sess.RefreshUser(ctx)
	require.NoError(t, err)

	// Within the window: rejected without a network call.
	f.clock.Advance(2 * time.Second)
	_, err = f.sess.RefreshUser(ctx)
	require.Error(t, err)
	assert.True(t, apperrors.IsThrottled(err))

	// Past the window: allowed again.
	f.clock.Advance(5 * time.Second)
	_, err = f.sess.RefreshUser(ctx)
	require.NoError(t, err)
}

func TestRefreshUserUnauthenticated(t *testing.T) {
	f := newFixture(t)

	_, err := f.sess.RefreshUser(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

// gatedStore wraps a SessionStore and, when armed, parks the next Save until
// released so tests can interleave writes with other session operations.
type gatedStore struct {
	ports.SessionStore
	armed   atomic.Bool
	started chan struct{}
	release chan struct{}
}

func newGatedStore(inner ports.SessionStore) *gatedStore {
	return &gatedStore{
		SessionStore: inner,
		started:      make(chan struct{}),
		release:      make(chan struct{}),
	}
}

func (g *gatedStore) Save(ctx context.Context, sess auth.Session) error {
	if g.armed.CompareAndSwap(true, false) {
		close(g.started)
		<-g.release
	}
	return g.SessionStore.Save(ctx, sess)
}

func TestLogoutOrderedAfterInFlightPersist(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mockapi.NewMockAPI(ctrl)
	store := newGatedStore(memstore.New())
	clock := &fakeClock{t: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	ctx := context.Background()

	sess, err := NewSession(Options{
		API:                api,
		Store:              store,
		RefreshMinInterval: 5 * time.Second,
		Clock:              clock.Now,
	})
	require.NoError(t, err)

	api.EXPECT().Login(gomock.Any(), validCreds()).Return(managerAccount(), nil)
	_, err = sess.Login(ctx, validCreds())
	require.NoError(t, err)

	api.EXPECT().GetProfile(gomock.Any(), "jane").
		Return(&model.User{Name: "jane", Bio: "fresh"}, nil)

	// A logout issued while the refreshed record is mid-write must land
	// after that write, so the stale record never survives it.
	store.armed.Store(true)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = sess.RefreshUser(ctx)
	}()
	<-store.started

	go func() {
		defer wg.Done()
		_ = sess.Logout(ctx)
	}()
	close(store.release)
	wg.Wait()

	assert.False(t, sess.IsAuthenticated())
	_, err = store.Load(ctx)
	assert.True(t, errors.Is(err, ports.ErrNoSession))
}

func TestRefreshUserCoalescesConcurrentCalls(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	f.api.EXPECT().GetProfile(gomock.Any(), "jane").
		DoAndReturn(func(context.Context, string) (*model.User, error) {
			close(entered)
			<-release
			return &model.User{Name: "jane", Bio: "fresh"}, nil
		}).
		Times(1)

	results := make(chan error, 2)
	go func() {
		_, err := f.sess.RefreshUser(ctx)
		results <- err
	}()
	<-entered

	// Past the throttle window, so the second call is admitted and joins
	// the in-flight fetch instead of issuing its own.
	f.clock.Advance(10 * time.Second)
	go func() {
		_, err := f.sess.RefreshUser(ctx)
		results <- err
	}()

	time.Sleep(50 * time.Millisecond)
	close(release)

	for range 2 {
		require.NoError(t, <-results)
	}
	assert.Equal(t, "fresh", f.sess.User().Bio)
}

func TestRefreshUserLosesRaceWithLogout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t)

	// Logout lands while the profile fetch is in flight; the stale result
	// must not resurrect the session.
	f.api.EXPECT().GetProfile(gomock.Any(), "jane").
		DoAndReturn(func(ctx context.Context, name string) (*model.User, error) {
			require.NoError(t, f.sess.Logout(ctx))
			return &model.User{Name: "jane"}, nil
		})

	_, err := f.sess.RefreshUser(ctx)
	require.Error(t, err)
	assert.True(t, apperrors.IsCanceled(err))
	assert.False(t, f.sess.IsAuthenticated())

	_, err = f.store.Load(ctx)
	assert.True(t, errors.Is(err, ports.ErrNoSession))
}

func TestUpdateAvatar(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t)

	avatar := model.Media{URL: "https://example.com/new.png", Alt: "jane"}
	f.api.EXPECT().UpdateAvatar(gomock.Any(), "jane", avatar).
		Return(&model.User{Name: "jane", Avatar: &avatar, VenueManager: true}, nil)

	user, err := f.sess.UpdateAvatar(ctx, avatar)
	require.NoError(t, err)
	require.NotNil(t, user.Avatar)
	assert.Equal(t, avatar.URL, user.Avatar.URL)
	assert.Equal(t, avatar.URL, f.sess.User().Avatar.URL)

	saved, err := f.store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, saved.User.Avatar)
	assert.Equal(t, avatar.URL, saved.User.Avatar.URL)
	assert.Equal(t, "tok123", saved.Token)
}

func TestUpdateAvatarValidationFailure(t *testing.T) {
	f := newFixture(t)
	f.login(t)

	_, err := f.sess.UpdateAvatar(context.Background(), model.Media{URL: "not a url"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateAvatarUnauthenticated(t *testing.T) {
	f := newFixture(t)

	_, err := f.sess.UpdateAvatar(context.Background(), model.Media{URL: "https://example.com/a.png"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestUpdateUserPatch(t *testing.T) {
	f := newFixture(t)
	f.login(t)

	bio := "new bio"
	manager := false
	f.sess.UpdateUser(UserPatch{
		Avatar:       &model.Media{URL: "https://example.com/b.png"},
		Bio:          &bio,
		VenueManager: &manager,
	})

	user := f.sess.User()
	require.NotNil(t, user)
	assert.Equal(t, "new bio", user.Bio)
	assert.False(t, user.VenueManager)
	require.NotNil(t, user.Avatar)
	assert.Equal(t, "https://example.com/b.png", user.Avatar.URL)
}
