// Package model contains domain types for the Holidaze booking marketplace.
// Types mirror the wire shapes of the remote API and are free of transport
// and storage concerns.
package model

// Media is an image reference with accessible alt text.
type Media struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// User is a Holidaze profile. Name is the unique identifier used in profile
// endpoint paths.
type User struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Bio          string `json:"bio,omitempty"`
	Avatar       *Media `json:"avatar,omitempty"`
	VenueManager bool   `json:"venueManager"`
}

// Clone returns a deep copy of the user.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Avatar != nil {
		avatar := *u.Avatar
		c.Avatar = &avatar
	}
	return &c
}
