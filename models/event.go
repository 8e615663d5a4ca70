// Package models file: models/event.go
package models

import "errors"

// ----------------------- form errors -----------------------

var (
	// ErrMissingFields is returned when a required form field is empty.
	ErrMissingFields = errors.New("please fill in all required fields")

	// ErrInvalidSlots is returned when an event requires membership but has
	// no positive attendee slot count.
	ErrInvalidSlots = errors.New("slots must be a positive number when membership is required")
)

// ----------------------- event model -----------------------

// Event represents a chapter event as the backend reports it.
type Event struct {
	ID                 string   `json:"id"`
	EventName          string   `json:"eventName"`
	EventDate          string   `json:"eventDate"`
	EventStartTime     string   `json:"eventStartTime"`
	EventEndTime       string   `json:"eventEndTime"`
	Location           string   `json:"location"`
	Description        string   `json:"description"`
	MembershipRequired bool     `json:"membershipRequired"`
	Chapter            string   `json:"chapter"` // owning chapter id
	Slots              int      `json:"slots"`
	Link               string   `json:"link"`
	Members            []Member `json:"members"`
	Image              string   `json:"image,omitempty"`
}

// ----------------------- event form -----------------------

// EventForm carries the "add event" form fields prior to submission.
type EventForm struct {
	EventName          string
	EventDate          string
	EventStartTime     string
	EventEndTime       string
	Location           string
	Description        string
	MembershipRequired bool
	Chapter            string
	Slots              int
	Link               string
}

// Validate enforces the client-side rules checked before any request is
// issued: required fields must be present, and a membership-gated event must
// offer at least one slot.
func (f EventForm) Validate() error {
	if f.EventName == "" || f.EventDate == "" || f.EventStartTime == "" ||
		f.EventEndTime == "" || f.Location == "" || f.Chapter == "" {
		return ErrMissingFields
	}
	if f.MembershipRequired && f.Slots <= 0 {
		return ErrInvalidSlots
	}
	return nil
}
