package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/holidaze/holidaze-go/internal/domain/model"
	apperrors "github.com/holidaze/holidaze-go/internal/errors"
)

// displayError flattens an error into the message shown to the user,
// including field-keyed validation detail when present.
func displayError(err error) string {
	msg := apperrors.Message(err)
	fields := apperrors.GetFields(err)
	if len(fields) == 0 {
		return msg
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	// Stable order so scripted output is deterministic.
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(msg)
	for _, k := range keys {
		b.WriteString("\n  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(fields[k])
	}
	return b.String()
}

// printJSON writes v as indented JSON, optionally projected through a
// JMESPath expression first.
func printJSON(w io.Writer, v any, query string) error {
	if query != "" {
		projected, err := applyQuery(v, query)
		if err != nil {
			return err
		}
		v = projected
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return err
	}
	return nil
}

// applyQuery round-trips v through JSON so JMESPath sees plain maps and
// slices, then evaluates the expression against it.
func applyQuery(v any, query string) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode for query: %w", err)
	}

	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("decode for query: %w", err)
	}

	result, err := jmespath.Search(query, generic)
	if err != nil {
		return nil, fmt.Errorf("evaluate query %q: %w", query, err)
	}
	return result, nil
}

func renderVenues(w io.Writer, venues []model.Venue) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "ID\tNAME\tPRICE\tMAX GUESTS\tRATING\tCITY"); err != nil {
		return err
	}
	for _, v := range venues {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%.2f\t%d\t%.1f\t%s\n",
			v.ID, v.Name, v.Price, v.MaxGuests, v.Rating, v.Location.City); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func renderBookings(w io.Writer, bookings []model.Booking) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "ID\tVENUE\tFROM\tTO\tGUESTS"); err != nil {
		return err
	}
	for _, b := range bookings {
		venueName := ""
		if b.Venue != nil {
			venueName = b.Venue.Name
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n",
			b.ID, venueName, b.DateFrom.Format("2006-01-02"), b.DateTo.Format("2006-01-02"), b.Guests); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func renderUser(w io.Writer, user *model.User) error {
	if user == nil {
		_, err := fmt.Fprintln(w, "Not logged in.")
		return err
	}

	role := "customer"
	if user.VenueManager {
		role = "venue manager"
	}
	if _, err := fmt.Fprintf(w, "%s <%s> (%s)\n", user.Name, user.Email, role); err != nil {
		return err
	}
	if user.Bio != "" {
		if _, err := fmt.Fprintf(w, "  bio: %s\n", user.Bio); err != nil {
			return err
		}
	}
	if user.Avatar != nil && user.Avatar.URL != "" {
		if _, err := fmt.Fprintf(w, "  avatar: %s\n", user.Avatar.URL); err != nil {
			return err
		}
	}
	return nil
}
