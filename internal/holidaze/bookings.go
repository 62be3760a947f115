package holidaze

import (
	"context"
	"net/http"

	"github.com/holidaze/holidaze-go/internal/domain/model"
)

// CreateBooking reserves a venue for a date range. Callers are expected to
// run validation.Booking first; this method sends the input as-is.
func (c *Client) CreateBooking(ctx context.Context, in model.BookingInput) (*model.Booking, error) {
	env, err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     pathBookings,
		body:     in,
		authed:   true,
		fallback: msgBookingFailed,
	})
	if err != nil {
		return nil, err
	}

	var booking model.Booking
	if err := decode(env, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}
