package validation

import (
	"testing"
	"time"

	"github.com/holidaze/holidaze-go/internal/domain/auth"
	"github.com/holidaze/holidaze-go/internal/domain/model"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name      string
		creds     auth.Credentials
		wantValid bool
		wantField string
	}{
		{
			name:      "valid credentials",
			creds:     auth.Credentials{Email: "jane@stud.noroff.no", Password: "password1"},
			wantValid: true,
		},
		{
			name:      "missing email",
			creds:     auth.Credentials{Password: "password1"},
			wantField: "email",
		},
		{
			name:      "missing password",
			creds:     auth.Credentials{Email: "jane@stud.noroff.no"},
			wantField: "password",
		},
		{
			name:      "wrong email domain",
			creds:     auth.Credentials{Email: "jane@example.com", Password: "password1"},
			wantField: "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Login(tt.creds)
			if res.Valid() != tt.wantValid {
				t.Fatalf("Valid() = %v, want %v (errors: %v)", res.Valid(), tt.wantValid, res.Errors)
			}
			if tt.wantValid {
				if len(res.Errors) != 0 {
					t.Fatalf("expected empty error map, got %v", res.Errors)
				}
				return
			}
			if _, ok := res.Errors[tt.wantField]; !ok {
				t.Fatalf("expected error for field %q, got %v", tt.wantField, res.Errors)
			}
		})
	}
}

func TestRegistration(t *testing.T) {
	valid := auth.Registration{
		Name:     "jane",
		Email:    "jane@stud.noroff.no",
		Password: "password1",
	}

	t.Run("valid registration", func(t *testing.T) {
		if res := Registration(valid); !res.Valid() {
			t.Fatalf("expected valid, got %v", res.Errors)
		}
	})

	t.Run("short password", func(t *testing.T) {
		reg := valid
		reg.Password = "short"
		res := Registration(reg)
		if got := res.Errors["password"]; got != "Password must be at least 8 characters" {
			t.Fatalf("password error = %q", got)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		reg := valid
		reg.Name = ""
		res := Registration(reg)
		if got := res.Errors["name"]; got != "Username is required" {
			t.Fatalf("name error = %q", got)
		}
	})

	t.Run("invalid avatar url", func(t *testing.T) {
		reg := valid
		reg.Avatar = &model.Media{URL: "not a url"}
		res := Registration(reg)
		if _, ok := res.Errors["avatar"]; !ok {
			t.Fatalf("expected avatar error, got %v", res.Errors)
		}
	})
}

func TestBooking(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	tomorrow := now.AddDate(0, 0, 1)
	nextWeek := now.AddDate(0, 0, 7)

	tests := []struct {
		name      string
		input     model.BookingInput
		maxGuests int
		wantValid bool
		wantField string
		wantMsg   string
	}{
		{
			name:      "valid booking",
			input:     model.BookingInput{DateFrom: tomorrow, DateTo: nextWeek, Guests: 2},
			maxGuests: 4,
			wantValid: true,
		},
		{
			name:      "checkout before checkin",
			input:     model.BookingInput{DateFrom: nextWeek, DateTo: tomorrow, Guests: 2},
			wantField: "dateTo",
			wantMsg:   "Check-out must be after check-in",
		},
		{
			name:      "checkout equals checkin",
			input:     model.BookingInput{DateFrom: tomorrow, DateTo: tomorrow, Guests: 2},
			wantField: "dateTo",
			wantMsg:   "Check-out must be after check-in",
		},
		{
			name:      "checkin in the past",
			input:     model.BookingInput{DateFrom: now.AddDate(0, 0, -1), DateTo: nextWeek, Guests: 2},
			wantField: "dateFrom",
			wantMsg:   "Check-in date cannot be in the past",
		},
		{
			name:      "missing checkin",
			input:     model.BookingInput{DateTo: nextWeek, Guests: 2},
			wantField: "dateFrom",
			wantMsg:   "Check-in date is required",
		},
		{
			name:      "missing checkout",
			input:     model.BookingInput{DateFrom: tomorrow, Guests: 2},
			wantField: "dateTo",
			wantMsg:   "Check-out date is required",
		},
		{
			name:      "zero guests",
			input:     model.BookingInput{DateFrom: tomorrow, DateTo: nextWeek, Guests: 0},
			wantField: "guests",
			wantMsg:   "At least 1 guest is required",
		},
		{
			name:      "guests over venue limit",
			input:     model.BookingInput{DateFrom: tomorrow, DateTo: nextWeek, Guests: 6},
			maxGuests: 4,
			wantField: "guests",
			wantMsg:   "Maximum 4 guests allowed for this venue",
		},
		{
			name:      "unknown venue limit skips cap",
			input:     model.BookingInput{DateFrom: tomorrow, DateTo: nextWeek, Guests: 50},
			maxGuests: 0,
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := bookingAt(tt.input, tt.maxGuests, now)
			if res.Valid() != tt.wantValid {
				t.Fatalf("Valid() = %v, want %v (errors: %v)", res.Valid(), tt.wantValid, res.Errors)
			}
			if tt.wantValid {
				return
			}
			if got := res.Errors[tt.wantField]; got != tt.wantMsg {
				t.Fatalf("Errors[%q] = %q, want %q", tt.wantField, got, tt.wantMsg)
			}
		})
	}
}

func TestVenue(t *testing.T) {
	valid := model.VenueInput{
		Name:        "Seaside Cabin",
		Description: "A cabin by the sea",
		Price:       120,
		MaxGuests:   4,
	}

	t.Run("valid venue", func(t *testing.T) {
		if res := Venue(valid); !res.Valid() {
			t.Fatalf("expected valid, got %v", res.Errors)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		res := Venue(model.VenueInput{Price: -1})
		for _, field := range []string{"name", "description", "price", "maxGuests"} {
			if _, ok := res.Errors[field]; !ok {
				t.Errorf("expected error for field %q, got %v", field, res.Errors)
			}
		}
	})

	t.Run("invalid media url", func(t *testing.T) {
		in := valid
		in.Media = []model.Media{
			{URL: "https://example.com/ok.png"},
			{URL: "not a url"},
		}
		res := Venue(in)
		if got := res.Errors["media_1"]; got != "Image 2 must be a valid URL" {
			t.Fatalf("media_1 error = %q (errors: %v)", got, res.Errors)
		}
		if _, ok := res.Errors["media_0"]; ok {
			t.Fatalf("valid media URL flagged: %v", res.Errors)
		}
	})
}

func TestAvatarURL(t *testing.T) {
	if res := AvatarURL("https://example.com/avatar.png"); !res.Valid() {
		t.Fatalf("expected valid, got %v", res.Errors)
	}

	res := AvatarURL("")
	if got := res.Errors["url"]; got != "Avatar URL is required" {
		t.Fatalf("url error = %q", got)
	}

	res = AvatarURL("::/bad")
	if got := res.Errors["url"]; got != "Please enter a valid URL" {
		t.Fatalf("url error = %q", got)
	}
}
