package holidaze

import (
	"context"
	"net/http"
	"net/url"

	"github.com/holidaze/holidaze-go/internal/domain/model"
)

// GetProfile fetches a profile by name. Profile reads require authentication.
func (c *Client) GetProfile(ctx context.Context, name string) (*model.User, error) {
	env, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     pathProfileByName(name),
		authed:   true,
		fallback: msgProfileFailed,
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

// GetProfileBookings fetches the profile's bookings with venue details
// included.
func (c *Client) GetProfileBookings(ctx context.Context, name string) ([]model.Booking, error) {
	values := url.Values{}
	values.Set("_venue", "true")

	env, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     pathProfileBookings(name),
		query:    values,
		authed:   true,
		fallback: msgBookingsFailed,
	})
	if err != nil {
		return nil, err
	}

	var bookings []model.Booking
	if err := decode(env, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetProfileVenues fetches the venues a manager profile owns.
func (c *Client) GetProfileVenues(ctx context.Context, name string) ([]model.Venue, error) {
	env, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     pathProfileVenues(name),
		authed:   true,
		fallback: msgVenuesFailed,
	})
	if err != nil {
		return nil, err
	}

	var venues []model.Venue
	if err := decode(env, &venues); err != nil {
		return nil, err
	}
	return venues, nil
}

// UpdateAvatar replaces the profile's avatar and returns the updated profile.
func (c *Client) UpdateAvatar(ctx context.Context, name string, avatar model.Media) (*model.User, error) {
	body := map[string]model.Media{"avatar": avatar}

	env, err := c.do(ctx, call{
		method:   http.MethodPut,
		path:     pathProfileByName(name),
		body:     body,
		authed:   true,
		fallback: msgGenericError,
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
