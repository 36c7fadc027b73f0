package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/lenslease/marketplace-api/internal/core/domain"
	"github.com/lenslease/marketplace-api/internal/core/policy"
	"github.com/lenslease/marketplace-api/internal/core/ports"
)

// AdminService implements photographer approval, account deletion and the
// dashboard aggregation.
type AdminService struct {
	accounts ports.AccountStore
	bookings ports.BookingStore
	log      zerolog.Logger
}

func NewAdminService(accounts ports.AccountStore, bookings ports.BookingStore, log zerolog.Logger) *AdminService {
	return &AdminService{accounts: accounts, bookings: bookings, log: log}
}

// Approve activates a pending photographer. Unknown or non-pending emails
// are left untouched without an error.
func (s *AdminService) Approve(ctx context.Context, actor policy.Actor, email string) error {
	return s.decide(ctx, actor, email, domain.StatusActive)
}

// Reject marks a pending photographer rejected. The rejection is terminal:
// the account stays in the store so the email surfaces a distinct outcome
// at login instead of a credential failure.
func (s *AdminService) Reject(ctx context.Context, actor policy.Actor, email string) error {
	return s.decide(ctx, actor, email, domain.StatusRejected)
}

func (s *AdminService) decide(ctx context.Context, actor policy.Actor, email string, status domain.AccountStatus) error {
	if err := policy.Require(actor, domain.RoleAdmin); err != nil {
		return err
	}

	account, err := s.accounts.Get(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil
		}
		return err
	}
	if account.Status != domain.StatusPending {
		return nil
	}

	if err := s.accounts.UpdateFields(ctx, email, map[string]any{ports.FieldStatus: string(status)}); err != nil {
		s.log.Error().Err(err).Str("email", email).Msg("failed to update account status")
		return err
	}

	s.log.Info().Str("email", email).Str("status", string(status)).Msg("photographer signup decided")
	return nil
}

// DeleteAccount removes an account permanently, whatever its status.
// Bookings referencing the account keep their snapshotted photographer
// name and email. A second delete of the same email is a no-op.
func (s *AdminService) DeleteAccount(ctx context.Context, actor policy.Actor, email string) error {
	if err := policy.Require(actor, domain.RoleAdmin); err != nil {
		return err
	}

	if err := s.accounts.Delete(ctx, email); err != nil {
		s.log.Error().Err(err).Str("email", email).Msg("failed to delete account")
		return err
	}

	s.log.Info().Str("email", email).Msg("account deleted")
	return nil
}

// Dashboard aggregates the admin view fresh on every call: active accounts
// (the admin included), pending photographer signups and all bookings.
func (s *AdminService) Dashboard(ctx context.Context, actor policy.Actor) (*ports.Dashboard, error) {
	if err := policy.Require(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}

	accounts, err := s.accounts.Scan(ctx, ports.AccountFilter{})
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.Scan(ctx, ports.BookingFilter{})
	if err != nil {
		return nil, err
	}

	dashboard := &ports.Dashboard{Bookings: bookings, TotalBookings: len(bookings)}
	for _, account := range accounts {
		switch {
		case account.Status == domain.StatusActive || account.Role == domain.RoleAdmin:
			dashboard.Users = append(dashboard.Users, account)
		case account.Status == domain.StatusPending:
			dashboard.Pending = append(dashboard.Pending, account)
		}
	}
	dashboard.TotalUsers = len(dashboard.Users)
	dashboard.PendingApprovals = len(dashboard.Pending)

	return dashboard, nil
}
