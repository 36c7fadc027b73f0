package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lenslease/marketplace-api/internal/core/domain"
	"github.com/lenslease/marketplace-api/internal/core/policy"
	"github.com/lenslease/marketplace-api/internal/core/ports"
)

// SubmissionDeduper suppresses double-submits of the same booking request
// (Redis-backed in production). A nil deduper disables the check.
type SubmissionDeduper interface {
	Seen(ctx context.Context, client, photographer, date, event string) (bool, error)
	Mark(ctx context.Context, client, photographer, date, event string) error
}

// BookingService implements booking creation, listing and photographer actions.
type BookingService struct {
	accounts ports.AccountStore
	bookings ports.BookingStore
	dedup    SubmissionDeduper
	log      zerolog.Logger
}

func NewBookingService(accounts ports.AccountStore, bookings ports.BookingStore, dedup SubmissionDeduper, log zerolog.Logger) *BookingService {
	return &BookingService{accounts: accounts, bookings: bookings, dedup: dedup, log: log}
}

// Create books a photographer for the acting client. The photographer name
// is snapshotted at creation time; an unresolvable email falls back to a
// placeholder instead of failing the booking.
func (s *BookingService) Create(ctx context.Context, actor policy.Actor, input ports.CreateBookingInput) (*domain.Booking, error) {
	if err := policy.Require(actor, domain.RoleClient); err != nil {
		return nil, err
	}

	if s.dedup != nil {
		seen, err := s.dedup.Seen(ctx, actor.Email, input.PhotographerEmail, input.Date, input.Event)
		if err != nil {
			s.log.Warn().Err(err).Str("client", actor.Email).Msg("dedup check failed, processing anyway")
		} else if seen {
			s.log.Debug().Str("client", actor.Email).Str("p_email", input.PhotographerEmail).Msg("duplicate booking submission")
			return nil, domain.ErrDuplicateBooking
		}
	}

	photographerName := domain.UnknownPhotographerName
	photographer, err := s.accounts.Get(ctx, input.PhotographerEmail)
	switch {
	case err == nil:
		photographerName = photographer.Name
	case !errors.Is(err, domain.ErrAccountNotFound):
		return nil, err
	}

	id, err := s.bookings.NextID(ctx)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:                id,
		Client:            actor.Email,
		PhotographerEmail: input.PhotographerEmail,
		PhotographerName:  photographerName,
		Date:              input.Date,
		Event:             input.Event,
		Status:            domain.BookingPending,
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.bookings.Put(ctx, booking); err != nil {
		s.log.Error().Err(err).Str("client", actor.Email).Msg("failed to create booking")
		return nil, err
	}

	if s.dedup != nil {
		if markErr := s.dedup.Mark(ctx, actor.Email, input.PhotographerEmail, input.Date, input.Event); markErr != nil {
			s.log.Warn().Err(markErr).Str("booking_id", id).Msg("failed to set dedup key")
		}
	}

	s.log.Info().Str("booking_id", id).Str("client", actor.Email).
		Str("p_email", input.PhotographerEmail).Msg("booking created")
	return booking, nil
}

// History lists the acting client's own bookings.
func (s *BookingService) History(ctx context.Context, actor policy.Actor) ([]*domain.Booking, error) {
	if err := policy.Require(actor, domain.RoleClient); err != nil {
		return nil, err
	}
	return s.bookings.Scan(ctx, ports.BookingFilter{Client: actor.Email})
}

// PhotographerBookings lists the bookings assigned to the acting photographer.
func (s *BookingService) PhotographerBookings(ctx context.Context, actor policy.Actor) ([]*domain.Booking, error) {
	if err := policy.Require(actor, domain.RolePhotographer); err != nil {
		return nil, err
	}
	return s.bookings.Scan(ctx, ports.BookingFilter{PhotographerEmail: actor.Email})
}

// Act applies accept, reject or complete to a booking. Only the photographer
// named on the booking may act; anyone else's attempt is ignored without an
// error and a nil booking is returned. Actions on terminal bookings fail
// with ErrInvalidTransition.
func (s *BookingService) Act(ctx context.Context, actor policy.Actor, bookingID string, action domain.BookingAction) (*domain.Booking, error) {
	if err := policy.Require(actor, domain.RolePhotographer); err != nil {
		return nil, err
	}

	target, ok := action.TargetStatus()
	if !ok {
		return nil, domain.ErrUnknownAction
	}

	booking, err := s.bookings.Get(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !policy.Owns(actor, booking.PhotographerEmail) {
		s.log.Debug().Str("booking_id", bookingID).Str("actor", actor.Email).
			Msg("booking action ignored, actor is not the owning photographer")
		return nil, nil
	}

	if !booking.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("booking action: %w (from %s to %s)", domain.ErrInvalidTransition, booking.Status, target)
	}

	if err := s.bookings.UpdateFields(ctx, bookingID, map[string]any{ports.FieldStatus: string(target)}); err != nil {
		s.log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to update booking status")
		return nil, err
	}

	booking.Status = target
	s.log.Info().Str("booking_id", bookingID).Str("action", string(action)).
		Str("status", string(target)).Msg("booking status updated")
	return booking, nil
}
