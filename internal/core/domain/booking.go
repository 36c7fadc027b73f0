package domain

import (
	"errors"
	"time"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingConfirmed BookingStatus = "Confirmed"
	BookingRejected  BookingStatus = "Rejected"
	BookingCompleted BookingStatus = "Completed"
)

// validTransitions defines the allowed state machine transitions.
// A pending booking may be completed directly; photographers mark
// walk-in work done without confirming first. Rejected and Completed
// are terminal.
var validTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingRejected, BookingCompleted},
	BookingConfirmed: {BookingCompleted},
}

var ErrBookingNotFound = errors.New("booking not found")
var ErrDuplicateBooking = errors.New("booking already submitted")
var ErrInvalidTransition = errors.New("invalid booking status transition")
var ErrUnknownAction = errors.New("unknown booking action")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// BookingAction is a one-shot action the owning photographer takes on a booking.
type BookingAction string

const (
	ActionAccept   BookingAction = "accept"
	ActionReject   BookingAction = "reject"
	ActionComplete BookingAction = "complete"
)

// TargetStatus maps an action to the status it produces. ok is false for
// unrecognised actions.
func (a BookingAction) TargetStatus() (BookingStatus, bool) {
	switch a {
	case ActionAccept:
		return BookingConfirmed, true
	case ActionReject:
		return BookingRejected, true
	case ActionComplete:
		return BookingCompleted, true
	}
	return "", false
}

// UnknownPhotographerName is the snapshot name stored when a booking targets
// an email that resolves to no account.
const UnknownPhotographerName = "Unknown Photographer"

// Booking is a client's request for a photographer's services.
// PhotographerName is a denormalised snapshot taken at creation time and does
// not track later renames. Bookings are never deleted, and account deletion
// does not cascade to them.
type Booking struct {
	ID                string        `json:"id" bson:"id"`
	Client            string        `json:"client" bson:"client"`
	PhotographerEmail string        `json:"p_email" bson:"p_email"`
	PhotographerName  string        `json:"p_name" bson:"p_name"`
	Date              string        `json:"date" bson:"date"`
	Event             string        `json:"event" bson:"event"`
	Status            BookingStatus `json:"status" bson:"status"`
	CreatedAt         time.Time     `json:"created_at" bson:"created_at"`
}
