package domain

import "errors"

var ErrDestinationNotFound = errors.New("destination not found")
var ErrAccessDenied = errors.New("access denied")

// Destination is a catalog entry users can book trips to.
type Destination struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
}
