package holidaze

import "net/url"

// DefaultBaseURL is the public Holidaze API host.
const DefaultBaseURL = "https://v2.api.noroff.dev"

// Versioned path templates.
const (
	pathLogin       = "/auth/login"
	pathRegister    = "/auth/register"
	pathVenues      = "/holidaze/venues"
	pathVenueSearch = "/holidaze/venues/search"
	pathBookings    = "/holidaze/bookings"
	pathProfiles    = "/holidaze/profiles"
)

func pathVenueByID(id string) string {
	return pathVenues + "/" + url.PathEscape(id)
}

func pathProfileByName(name string) string {
	return pathProfiles + "/" + url.PathEscape(name)
}

func pathProfileBookings(name string) string {
	return pathProfileByName(name) + "/bookings"
}

func pathProfileVenues(name string) string {
	return pathProfileByName(name) + "/venues"
}

// Displayable fallback messages, selected when the response body carries no
// structured error detail.
const (
	msgNetworkError       = "Network error. Please check your connection."
	msgAuthRequired       = "You must be logged in to perform this action."
	msgLoginFailed        = "Login failed"
	msgRegistrationFailed = "Registration failed. Please try again."
	msgVenueNotFound      = "Venue not found."
	msgBookingFailed      = "Failed to create booking. Please try again."
	msgGenericError       = "Something went wrong. Please try again."

	msgVenueCreateFailed = "Failed to create venue"
	msgVenueUpdateFailed = "Failed to update venue"
	msgVenueDeleteFailed = "Failed to delete venue"
	msgProfileFailed     = "Failed to fetch profile"
	msgBookingsFailed    = "Failed to fetch bookings"
	msgVenuesFailed      = "Failed to fetch venues"
)
