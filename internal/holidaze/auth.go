package holidaze

import (
	"context"
	"net/http"

	"github.com/holidaze/holidaze-go/internal/domain/auth"
	"github.com/holidaze/holidaze-go/internal/domain/model"
)

// Login exchanges credentials for the profile plus bearer token. The client
// performs no persistence; storing the session is the caller's job and should
// happen only after this returns successfully.
func (c *Client) Login(ctx context.Context, creds auth.Credentials) (auth.Account, error) {
	env, err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     pathLogin,
		body:     creds,
		fallback: msgLoginFailed,
	})
	if err != nil {
		return auth.Account{}, err
	}

	var acct auth.Account
	if err := decode(env, &acct); err != nil {
		return auth.Account{}, err
	}
	return acct, nil
}

// Register creates a new account. It does not authenticate; follow up with
// Login.
func (c *Client) Register(ctx context.Context, reg auth.Registration) (*model.User, error) {
	env, err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     pathRegister,
		body:     reg,
		fallback: msgRegistrationFailed,
	})
	if err != nil {
		return nil, err
	}

	var user model.User
	if err := decode(env, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
