package main

import (
	"errors"
	"flag"
	"strings"

	"github.com/holidaze/holidaze-go/internal/domain/model"
	apperrors "github.com/holidaze/holidaze-go/internal/errors"
	"github.com/holidaze/holidaze-go/internal/validation"
)

// requireManager guards the venue management commands.
func requireManager(cc *commandContext) (*model.User, error) {
	user, err := requireAuth(cc)
	if err != nil {
		return nil, err
	}
	if !cc.Session.IsManager() {
		return nil, errors.New("only venue managers can manage listings")
	}
	return user, nil
}

func runVenues(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("venues", flag.ContinueOnError)
	limit := fs.Int("limit", 20, "number of venues per page")
	page := fs.Int("page", 1, "page number")
	sortKey := fs.String("sort", "", "sort key (e.g. created, name, price)")
	owner := fs.Bool("owner", false, "include owner details")
	bookings := fs.Bool("bookings", false, "include bookings")
	asJSON := fs.Bool("json", false, "print venues as JSON")
	query := fs.String("query", "", "JMESPath expression applied to JSON output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	venues, meta, err := cc.Client.ListVenues(cc.Ctx, model.VenueQuery{
		Limit:           *limit,
		Page:            *page,
		Sort:            *sortKey,
		IncludeOwner:    *owner,
		IncludeBookings: *bookings,
	})
	if err != nil {
		return err
	}

	if *asJSON || *query != "" {
		return printJSON(cc.Out, venues, *query)
	}
	if err := renderVenues(cc.Out, venues); err != nil {
		return err
	}
	if meta != nil {
		return writef(cc.Out, "Page %d of %d (%d venues total)\n",
			meta.CurrentPage, meta.PageCount, meta.TotalCount)
	}
	return nil
}

func runVenue(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("venue", flag.ContinueOnError)
	id := fs.String("id", "", "venue ID")
	owner := fs.Bool("owner", false, "include owner details")
	bookings := fs.Bool("bookings", false, "include bookings")
	query := fs.String("query", "", "JMESPath expression applied to JSON output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("venue ID is required (-id)")
	}

	venue, err := cc.Client.GetVenue(cc.Ctx, *id, model.VenueQuery{
		IncludeOwner:    *owner,
		IncludeBookings: *bookings,
	})
	if err != nil {
		return err
	}
	return printJSON(cc.Out, venue, *query)
}

func runSearch(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	q := fs.String("q", "", "search query")
	asJSON := fs.Bool("json", false, "print venues as JSON")
	query := fs.String("query", "", "JMESPath expression applied to JSON output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *q == "" {
		return errors.New("search query is required (-q)")
	}

	venues, err := cc.Client.SearchVenues(cc.Ctx, *q)
	if err != nil {
		return err
	}

	if *asJSON || *query != "" {
		return printJSON(cc.Out, venues, *query)
	}
	return renderVenues(cc.Out, venues)
}

// venueInputFlags registers the shared venue payload flags on fs and returns
// a builder that assembles the input after parsing.
func venueInputFlags(fs *flag.FlagSet) func() model.VenueInput {
	name := fs.String("name", "", "venue name")
	description := fs.String("description", "", "venue description")
	price := fs.Float64("price", 0, "price per night")
	maxGuests := fs.Int("max-guests", 0, "maximum number of guests")
	wifi := fs.Bool("wifi", false, "wifi available")
	parking := fs.Bool("parking", false, "parking available")
	breakfast := fs.Bool("breakfast", false, "breakfast included")
	pets := fs.Bool("pets", false, "pets allowed")
	address := fs.String("address", "", "street address")
	city := fs.String("city", "", "city")
	zip := fs.String("zip", "", "zip code")
	country := fs.String("country", "", "country")
	media := fs.String("media", "", "comma-separated image URLs")

	return func() model.VenueInput {
		in := model.VenueInput{
			Name:        *name,
			Description: *description,
			Price:       *price,
			MaxGuests:   *maxGuests,
			Meta: model.VenueMeta{
				Wifi:      *wifi,
				Parking:   *parking,
				Breakfast: *breakfast,
				Pets:      *pets,
			},
			Location: model.VenueLocation{
				Address: *address,
				City:    *city,
				Zip:     *zip,
				Country: *country,
			},
		}
		for _, rawURL := range strings.Split(*media, ",") {
			rawURL = strings.TrimSpace(rawURL)
			if rawURL != "" {
				in.Media = append(in.Media, model.Media{URL: rawURL})
			}
		}
		return in
	}
}

func runVenueCreate(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("venue-create", flag.ContinueOnError)
	build := venueInputFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if _, err := requireManager(cc); err != nil {
		return err
	}

	in := build()
	if res := validation.Venue(in); !res.Valid() {
		return apperrors.ValidationFields("Invalid venue details", res.Errors)
	}

	venue, err := cc.Client.CreateVenue(cc.Ctx, in)
	if err != nil {
		return err
	}
	return writef(cc.Out, "Venue %s created (id %s).\n", venue.Name, venue.ID)
}

func runVenueUpdate(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("venue-update", flag.ContinueOnError)
	id := fs.String("id", "", "venue ID")
	build := venueInputFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("venue ID is required (-id)")
	}
	if _, err := requireManager(cc); err != nil {
		return err
	}

	in := build()
	if res := validation.Venue(in); !res.Valid() {
		return apperrors.ValidationFields("Invalid venue details", res.Errors)
	}

	venue, err := cc.Client.UpdateVenue(cc.Ctx, *id, in)
	if err != nil {
		return err
	}
	return writef(cc.Out, "Venue %s updated.\n", venue.ID)
}

func runVenueDelete(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("venue-delete", flag.ContinueOnError)
	id := fs.String("id", "", "venue ID")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("venue ID is required (-id)")
	}
	if _, err := requireManager(cc); err != nil {
		return err
	}

	if err := cc.Client.DeleteVenue(cc.Ctx, *id); err != nil {
		return err
	}
	return writef(cc.Out, "Venue %s deleted.\n", *id)
}

func runMyVenues(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("my-venues", flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "print venues as JSON")
	query := fs.String("query", "", "JMESPath expression applied to JSON output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := requireAuth(cc)
	if err != nil {
		return err
	}

	venues, err := cc.Client.GetProfileVenues(cc.Ctx, user.Name)
	if err != nil {
		return err
	}

	if *asJSON || *query != "" {
		return printJSON(cc.Out, venues, *query)
	}
	return renderVenues(cc.Out, venues)
}
