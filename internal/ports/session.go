// Package ports defines the interfaces between the session/client core and
// its adapters. Implementations live under internal/adapters.
package ports

import (
	"context"

	"github.com/holidaze/holidaze-go/internal/domain/auth"
)

// ErrNoSession is returned by SessionStore.Load when no session is persisted.
// Backends return it verbatim so callers can tell "absent" from "read failed".
type noSessionError struct{}

func (noSessionError) Error() string { return "no session stored" }

// ErrNoSession is the sentinel for an absent session record.
var ErrNoSession error = noSessionError{}

// SessionStore persists the single session record for this client.
// Implementations never panic; failures come back as errors and callers are
// expected to treat persistence as best-effort.
type SessionStore interface {
	// Save writes the session record, replacing any previous one.
	Save(ctx context.Context, sess auth.Session) error

	// Load reads the persisted session record. Returns ErrNoSession when
	// nothing is stored and a wrapped error when the backend failed.
	Load(ctx context.Context) (auth.Session, error)

	// Clear removes the persisted session record. Clearing an empty store
	// is not an error.
	Clear(ctx context.Context) error
}

// TokenSource supplies the current bearer token for authenticated requests.
// An empty token with a nil error means "not authenticated".
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// storeTokenSource adapts a SessionStore into a TokenSource.
type storeTokenSource struct {
	store SessionStore
}

// NewStoreTokenSource returns a TokenSource backed by the given store.
// Store failures and absent sessions both yield an empty token so request
// construction stays best-effort.
func NewStoreTokenSource(store SessionStore) TokenSource {
	return &storeTokenSource{store: store}
}

func (t *storeTokenSource) Token(ctx context.Context) (string, error) {
	sess, err := t.store.Load(ctx)
	if err != nil {
		return "", nil
	}
	return sess.Token, nil
}
