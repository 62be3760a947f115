package validation

import (
	"fmt"
	"time"

	"github.com/holidaze/holidaze-go/internal/domain/auth"
	"github.com/holidaze/holidaze-go/internal/domain/model"
)

// emailDomain is the institutional email suffix accepted by the remote API.
const emailDomain = "@stud.noroff.no"

// minPasswordLen matches the remote API's minimum password length.
const minPasswordLen = 8

// Login validates credentials before a login call.
func Login(creds auth.Credentials) Result {
	fv := New()
	fv.Validate("email", creds.Email,
		Required("Email is required"),
		EmailSuffix(emailDomain, "Must be a "+emailDomain+" email address"))
	fv.Validate("password", creds.Password,
		Required("Password is required"))
	return fv.Result()
}

// Registration validates an account creation request.
func Registration(reg auth.Registration) Result {
	fv := New()
	fv.Validate("name", reg.Name,
		Required("Username is required"))
	fv.Validate("email", reg.Email,
		Required("Email is required"),
		EmailSuffix(emailDomain, "Must be a "+emailDomain+" email address"))
	if len(reg.Password) < minPasswordLen {
		fv.Fail("password", fmt.Sprintf("Password must be at least %d characters", minPasswordLen))
	}
	if reg.Avatar != nil && reg.Avatar.URL != "" {
		fv.Validate("avatar", reg.Avatar.URL,
			WebURL("Avatar must be a valid URL"))
	}
	return fv.Result()
}

// Booking validates a booking request. maxGuests caps the guest count when
// the venue's limit is known; pass 0 to skip that check. The past-date check
// compares against the wall clock at call time.
func Booking(in model.BookingInput, maxGuests int) Result {
	return bookingAt(in, maxGuests, time.Now())
}

// bookingAt is the clock-injected core of Booking, split out for tests.
func bookingAt(in model.BookingInput, maxGuests int, now time.Time) Result {
	fv := New()

	if in.DateFrom.IsZero() {
		fv.Fail("dateFrom", "Check-in date is required")
	}
	if in.DateTo.IsZero() {
		fv.Fail("dateTo", "Check-out date is required")
	}
	if !in.DateFrom.IsZero() && !in.DateTo.IsZero() {
		if !dateOrderOK(in.DateFrom, in.DateTo) {
			fv.Fail("dateTo", "Check-out must be after check-in")
		}
		if in.DateFrom.Before(now) {
			fv.Fail("dateFrom", "Check-in date cannot be in the past")
		}
	}

	switch {
	case in.Guests < 1:
		fv.Fail("guests", "At least 1 guest is required")
	case maxGuests > 0 && in.Guests > maxGuests:
		fv.Fail("guests", fmt.Sprintf("Maximum %d guests allowed for this venue", maxGuests))
	}

	return fv.Result()
}

// Venue validates a venue create/update payload.
func Venue(in model.VenueInput) Result {
	fv := New()
	fv.Validate("name", in.Name,
		Required("Venue name is required"))
	fv.Validate("description", in.Description,
		Required("Description is required"))
	if in.Price < 0 {
		fv.Fail("price", "Price must be 0 or greater")
	}
	if in.MaxGuests < 1 {
		fv.Fail("maxGuests", "At least 1 guest must be allowed")
	}
	for i, m := range in.Media {
		if m.URL == "" {
			continue
		}
		field := fmt.Sprintf("media_%d", i)
		fv.Validate(field, m.URL,
			WebURL(fmt.Sprintf("Image %d must be a valid URL", i+1)))
	}
	return fv.Result()
}

// AvatarURL validates an avatar image URL.
func AvatarURL(rawURL string) Result {
	fv := New()
	fv.Validate("url", rawURL,
		Required("Avatar URL is required"),
		WebURL("Please enter a valid URL"))
	return fv.Result()
}
