package main

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/holidaze/holidaze-go/internal/domain/model"
	apperrors "github.com/holidaze/holidaze-go/internal/errors"
	"github.com/holidaze/holidaze-go/internal/validation"
)

const dateLayout = "2006-01-02"

func runBook(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("book", flag.ContinueOnError)
	venueID := fs.String("venue", "", "venue ID")
	from := fs.String("from", "", "check-in date (YYYY-MM-DD)")
	to := fs.String("to", "", "check-out date (YYYY-MM-DD)")
	guests := fs.Int("guests", 1, "number of guests")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *venueID == "" {
		return errors.New("venue ID is required (-venue)")
	}
	if _, err := requireAuth(cc); err != nil {
		return err
	}

	dateFrom, err := parseDate(*from, "from")
	if err != nil {
		return err
	}
	dateTo, err := parseDate(*to, "to")
	if err != nil {
		return err
	}

	// Fetch the venue first so the guest count can be checked against its
	// limit before any booking request goes out.
	venue, err := cc.Client.GetVenue(cc.Ctx, *venueID, model.VenueQuery{})
	if err != nil {
		return err
	}

	in := model.BookingInput{
		VenueID:  venue.ID,
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Guests:   *guests,
	}
	if res := validation.Booking(in, venue.MaxGuests); !res.Valid() {
		return apperrors.ValidationFields("Invalid booking details", res.Errors)
	}

	booking, err := cc.Client.CreateBooking(cc.Ctx, in)
	if err != nil {
		return err
	}
	return writef(cc.Out, "Booked %s from %s to %s for %d guest(s) (booking %s).\n",
		venue.Name,
		booking.DateFrom.Format(dateLayout),
		booking.DateTo.Format(dateLayout),
		booking.Guests,
		booking.ID)
}

func runBookings(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("bookings", flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "print bookings as JSON")
	query := fs.String("query", "", "JMESPath expression applied to JSON output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := requireAuth(cc)
	if err != nil {
		return err
	}

	bookings, err := cc.Client.GetProfileBookings(cc.Ctx, user.Name)
	if err != nil {
		return err
	}

	if *asJSON || *query != "" {
		return printJSON(cc.Out, bookings, *query)
	}
	return renderBookings(cc.Out, bookings)
}

func parseDate(value, flagName string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("date is required (-%s YYYY-MM-DD)", flagName)
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid -%s date %q (want YYYY-MM-DD)", flagName, value)
	}
	return t, nil
}
