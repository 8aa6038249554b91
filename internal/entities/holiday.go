// Package entities contains core business entities.
package entities

// Holiday annotates a calendar date; independent of scheduled events.
type Holiday struct {
	ID   string
	Date string // YYYY-MM-DD
	Name string
}
