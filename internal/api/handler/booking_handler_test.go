package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/lenslease/marketplace-api/internal/core/domain"
	"github.com/lenslease/marketplace-api/internal/core/policy"
	"github.com/lenslease/marketplace-api/internal/core/ports"
)

type stubBookingService struct {
	createFn   func(ctx context.Context, actor policy.Actor, input ports.CreateBookingInput) (*domain.Booking, error)
	historyFn  func(ctx context.Context, actor policy.Actor) ([]*domain.Booking, error)
	assignedFn func(ctx context.Context, actor policy.Actor) ([]*domain.Booking, error)
	actFn      func(ctx context.Context, actor policy.Actor, bookingID string, action domain.BookingAction) (*domain.Booking, error)
}

func (s *stubBookingService) Create(ctx context.Context, actor policy.Actor, input ports.CreateBookingInput) (*domain.Booking, error) {
	return s.createFn(ctx, actor, input)
}

func (s *stubBookingService) History(ctx context.Context, actor policy.Actor) ([]*domain.Booking, error) {
	return s.historyFn(ctx, actor)
}

func (s *stubBookingService) PhotographerBookings(ctx context.Context, actor policy.Actor) ([]*domain.Booking, error) {
	return s.assignedFn(ctx, actor)
}

func (s *stubBookingService) Act(ctx context.Context, actor policy.Actor, bookingID string, action domain.BookingAction) (*domain.Booking, error) {
	return s.actFn(ctx, actor, bookingID, action)
}

func withActor(c echo.Context, email string, role domain.Role) echo.Context {
	c.Set("email", email)
	c.Set("role", string(role))
	return c
}

func TestBookingHandler_Create(t *testing.T) {
	stub := &stubBookingService{
		createFn: func(ctx context.Context, actor policy.Actor, input ports.CreateBookingInput) (*domain.Booking, error) {
			if actor.Email != "c@example.com" || input.PhotographerEmail != "p@example.com" {
				t.Fatalf("unexpected args: %+v %+v", actor, input)
			}
			return &domain.Booking{
				ID:                "1",
				Client:            actor.Email,
				PhotographerEmail: input.PhotographerEmail,
				PhotographerName:  "Pat",
				Date:              input.Date,
				Event:             input.Event,
				Status:            domain.BookingPending,
			}, nil
		},
	}
	h := NewBookingHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/bookings",
		`{"p_email":"p@example.com","date":"2026-09-12","event":"Wedding"}`)
	withActor(c, "c@example.com", domain.RoleClient)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "Pending" || resp["p_name"] != "Pat" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestBookingHandler_Create_MissingClaims(t *testing.T) {
	stub := &stubBookingService{
		createFn: func(ctx context.Context, actor policy.Actor, input ports.CreateBookingInput) (*domain.Booking, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewBookingHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/bookings",
		`{"p_email":"p@example.com","date":"2026-09-12","event":"Wedding"}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestBookingHandler_Act_Success(t *testing.T) {
	stub := &stubBookingService{
		actFn: func(ctx context.Context, actor policy.Actor, bookingID string, action domain.BookingAction) (*domain.Booking, error) {
			if bookingID != "7" || action != domain.ActionAccept {
				t.Fatalf("unexpected args: %s %s", bookingID, action)
			}
			return &domain.Booking{ID: bookingID, Status: domain.BookingConfirmed}, nil
		},
	}
	h := NewBookingHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/bookings/7/accept", "")
	withActor(c, "p@example.com", domain.RolePhotographer)
	c.SetParamNames("id", "action")
	c.SetParamValues("7", "accept")

	if err := h.Act(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "Confirmed" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestBookingHandler_Act_NotOwned(t *testing.T) {
	stub := &stubBookingService{
		actFn: func(ctx context.Context, actor policy.Actor, bookingID string, action domain.BookingAction) (*domain.Booking, error) {
			return nil, nil
		},
	}
	h := NewBookingHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/bookings/7/accept", "")
	withActor(c, "other@example.com", domain.RolePhotographer)
	c.SetParamNames("id", "action")
	c.SetParamValues("7", "accept")

	if err := h.Act(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "no booking updated" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestBookingHandler_Act_InvalidTransitionPropagates(t *testing.T) {
	stub := &stubBookingService{
		actFn: func(ctx context.Context, actor policy.Actor, bookingID string, action domain.BookingAction) (*domain.Booking, error) {
			return nil, domain.ErrInvalidTransition
		},
	}
	h := NewBookingHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/bookings/7/accept", "")
	withActor(c, "p@example.com", domain.RolePhotographer)
	c.SetParamNames("id", "action")
	c.SetParamValues("7", "accept")

	if err := h.Act(c); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestBookingHandler_History(t *testing.T) {
	stub := &stubBookingService{
		historyFn: func(ctx context.Context, actor policy.Actor) ([]*domain.Booking, error) {
			return []*domain.Booking{
				{ID: "1", Client: actor.Email, Status: domain.BookingPending},
				{ID: "2", Client: actor.Email, Status: domain.BookingCompleted},
			}, nil
		},
	}
	h := NewBookingHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/v1/bookings", "")
	withActor(c, "c@example.com", domain.RoleClient)

	if err := h.History(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(resp))
	}
}
