package holidaze

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/holidaze/holidaze-go/internal/domain/model"
)

// venueQueryValues translates a VenueQuery into the API's query parameters.
func venueQueryValues(q model.VenueQuery) url.Values {
	values := url.Values{}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Sort != "" {
		values.Set("sort", q.Sort)
	}
	if q.IncludeOwner {
		values.Set("_owner", "true")
	}
	if q.IncludeBookings {
		values.Set("_bookings", "true")
	}
	return values
}

// ListVenues fetches venues with pagination, sorting, and inclusion options.
func (c *Client) ListVenues(ctx context.Context, q model.VenueQuery) ([]model.Venue, *model.ListMeta, error) {
	env, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     pathVenues,
		query:    venueQueryValues(q),
		fallback: msgVenuesFailed,
	})
	if err != nil {
		return nil, nil, err
	}

	var venues []model.Venue
	if err := decode(env, &venues); err != nil {
		return nil, nil, err
	}
	return venues, env.Meta, nil
}

// SearchVenues searches venues by name or description.
func (c *Client) SearchVenues(ctx context.Context, query string) ([]model.Venue, error) {
	values := url.Values{}
	values.Set("q", query)

	env, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     pathVenueSearch,
		query:    values,
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

// GetVenue fetches a single venue by ID. A 404 maps to a NotFound error with
// a fixed message regardless of response body content.
func (c *Client) GetVenue(ctx context.Context, id string, q model.VenueQuery) (*model.Venue, error) {
	env, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     pathVenueByID(id),
		query:    venueQueryValues(q),
		fallback: msgGenericError,
		notFound: msgVenueNotFound,
	})
	if err != nil {
		return nil, err
	}

	var venue model.Venue
	if err := decode(env, &venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

// CreateVenue creates a venue listing. Requires a venue manager session.
func (c *Client) CreateVenue(ctx context.Context, in model.VenueInput) (*model.Venue, error) {
	env, err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     pathVenues,
		body:     in,
		authed:   true,
		fallback: msgVenueCreateFailed,
	})
	if err != nil {
		return nil, err
	}

	var venue model.Venue
	if err := decode(env, &venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

// UpdateVenue replaces a venue's fields. Requires the owning manager session.
func (c *Client) UpdateVenue(ctx context.Context, id string, in model.VenueInput) (*model.Venue, error) {
	env, err := c.do(ctx, call{
		method:   http.MethodPut,
		path:     pathVenueByID(id),
		body:     in,
		authed:   true,
		fallback: msgVenueUpdateFailed,
	})
	if err != nil {
		return nil, err
	}

	var venue model.Venue
	if err := decode(env, &venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

// DeleteVenue removes a venue listing. The API answers 204 with no body.
func (c *Client) DeleteVenue(ctx context.Context, id string) error {
	_, err := c.do(ctx, call{
		method:   http.MethodDelete,
		path:     pathVenueByID(id),
		authed:   true,
		fallback: msgVenueDeleteFailed,
	})
	return err
}
