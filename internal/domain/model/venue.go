package model

import "time"

// VenueMeta holds the venue amenity flags.
type VenueMeta struct {
	Wifi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

// VenueLocation describes where a venue is. All fields are optional.
type VenueLocation struct {
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	Zip       string `json:"zip,omitempty"`
	Country   string `json:"country,omitempty"`
	Continent string `json:"continent,omitempty"`
}

// Venue is a bookable listing. IDs are assigned by the remote API; this
// client never originates one. Owner and Bookings are only populated when
// the corresponding inclusion flags were requested.
type Venue struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Media       []Media       `json:"media,omitempty"`
	Price       float64       `json:"price"`
	MaxGuests   int           `json:"maxGuests"`
	Rating      float64       `json:"rating"`
	Meta        VenueMeta     `json:"meta"`
	Location    VenueLocation `json:"location"`
	Owner       *User         `json:"owner,omitempty"`
	Bookings    []Booking     `json:"bookings,omitempty"`
	Created     time.Time     `json:"created,omitzero"`
	Updated     time.Time     `json:"updated,omitzero"`
}

// VenueInput is the payload for creating or updating a venue.
type VenueInput struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Media       []Media       `json:"media,omitempty"`
	Price       float64       `json:"price"`
	MaxGuests   int           `json:"maxGuests"`
	Rating      float64       `json:"rating,omitempty"`
	Meta        VenueMeta     `json:"meta"`
	Location    VenueLocation `json:"location"`
}

// VenueQuery holds list and lookup options for venue reads.
type VenueQuery struct {
	Limit           int
	Page            int
	Sort            string
	IncludeOwner    bool
	IncludeBookings bool
}

// ListMeta is the pagination block the remote API attaches to list responses.
type ListMeta struct {
	CurrentPage  int  `json:"currentPage"`
	PageCount    int  `json:"pageCount"`
	TotalCount   int  `json:"totalCount"`
	IsFirstPage  bool `json:"isFirstPage"`
	IsLastPage   bool `json:"isLastPage"`
	PreviousPage *int `json:"previousPage"`
	NextPage     *int `json:"nextPage"`
}
