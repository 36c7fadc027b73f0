package ports

import (
	"context"

	"github.com/lenslease/marketplace-api/internal/core/domain"
	"github.com/lenslease/marketplace-api/internal/core/policy"
)

// Dashboard is the admin aggregation: counts plus full listings, computed
// fresh on every request.
type Dashboard struct {
	TotalUsers       int
	PendingApprovals int
	TotalBookings    int
	Users            []*domain.Account
	Pending          []*domain.Account
	Bookings         []*domain.Booking
}

// AdminService defines the administrator use cases.
type AdminService interface {
	// Approve activates a pending photographer. A non-pending email is a
	// silent no-op, not an error.
	Approve(ctx context.Context, actor policy.Actor, email string) error
	// Reject marks a pending photographer rejected, permanently: no route
	// reverses a rejection, and the email surfaces a distinct outcome at login.
	Reject(ctx context.Context, actor policy.Actor, email string) error
	// DeleteAccount removes an account unconditionally, whatever its status.
	// Bookings referencing it are left in place. Idempotent.
	DeleteAccount(ctx context.Context, actor policy.Actor, email string) error
	// Dashboard aggregates active accounts (admin included), pending
	// photographers and all bookings.
	Dashboard(ctx context.Context, actor policy.Actor) (*Dashboard, error)
}
