package ports

import (
	"context"

	"github.com/lenslease/marketplace-api/internal/core/domain"
	"github.com/lenslease/marketplace-api/internal/core/policy"
)

// CreateBookingInput carries a client's booking request.
type CreateBookingInput struct {
	PhotographerEmail string
	Date              string
	Event             string
}

// BookingService defines the booking use cases.
type BookingService interface {
	// Create books a photographer on behalf of the acting client. An email
	// that resolves to no account is tolerated: the booking is created with a
	// placeholder photographer name.
	Create(ctx context.Context, actor policy.Actor, input CreateBookingInput) (*domain.Booking, error)
	// History returns the acting client's own bookings.
	History(ctx context.Context, actor policy.Actor) ([]*domain.Booking, error)
	// PhotographerBookings returns the bookings assigned to the acting photographer.
	PhotographerBookings(ctx context.Context, actor policy.Actor) ([]*domain.Booking, error)
	// Act applies a one-shot action to a booking. When the actor is not the
	// photographer named on the booking the call is silently ignored and a
	// nil booking is returned.
	Act(ctx context.Context, actor policy.Actor, bookingID string, action domain.BookingAction) (*domain.Booking, error)
}
