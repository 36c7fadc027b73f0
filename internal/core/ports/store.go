package ports

import (
	"context"

	"github.com/lenslease/marketplace-api/internal/core/domain"
)

// Canonical field names accepted by UpdateFields. Both backends persist
// records under these keys, matching the on-disk layout.
const (
	FieldName           = "name"
	FieldSpecialization = "specialization"
	FieldLocation       = "location"
	FieldPricing        = "pricing"
	FieldStatus         = "status"
)

// AccountFilter expresses the field-equality predicates accounts can be
// scanned by. Zero-valued fields are not applied.
type AccountFilter struct {
	Role   domain.Role
	Status domain.AccountStatus
}

// BookingFilter expresses the field-equality predicates bookings can be
// scanned by. Zero-valued fields are not applied.
type BookingFilter struct {
	Client            string
	PhotographerEmail string
}

// AccountStore is the storage port for accounts, keyed by email. Both the
// in-memory and the MongoDB backend satisfy exactly this contract. A single
// call is atomic; multi-call sequences are not.
type AccountStore interface {
	// Get returns the account for email, or domain.ErrAccountNotFound.
	Get(ctx context.Context, email string) (*domain.Account, error)
	// Put upserts the account by email.
	Put(ctx context.Context, account *domain.Account) error
	// UpdateFields applies a partial update; fields not mentioned are untouched.
	UpdateFields(ctx context.Context, email string, fields map[string]any) error
	// AppendPortfolio atomically appends an image reference to the portfolio.
	AppendPortfolio(ctx context.Context, email, imageURL string) error
	// Delete removes the account. Deleting an absent email is a no-op.
	Delete(ctx context.Context, email string) error
	// Scan returns all accounts matching the filter.
	Scan(ctx context.Context, filter AccountFilter) ([]*domain.Account, error)
}

// BookingStore is the storage port for bookings, keyed by id.
type BookingStore interface {
	// NextID returns a fresh booking id. The in-memory backend hands out a
	// sequential counter, the MongoDB backend a short random token.
	NextID(ctx context.Context) (string, error)
	// Get returns the booking for id, or domain.ErrBookingNotFound.
	Get(ctx context.Context, id string) (*domain.Booking, error)
	// Put upserts the booking by id.
	Put(ctx context.Context, booking *domain.Booking) error
	// UpdateFields applies a partial update; fields not mentioned are untouched.
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	// Scan returns all bookings matching the filter.
	Scan(ctx context.Context, filter BookingFilter) ([]*domain.Booking, error)
}
