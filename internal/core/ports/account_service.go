package ports

import (
	"context"

	"github.com/lenslease/marketplace-api/internal/core/domain"
	"github.com/lenslease/marketplace-api/internal/core/policy"
)

// SignupInput carries all data needed to register a new account.
// Specialization, Location and Pricing only matter for photographers;
// blank values fall back to defaults.
type SignupInput struct {
	Email          string
	Name           string
	Password       string
	Role           domain.Role
	Specialization string
	Location       string
	Pricing        string
}

// Session is the outcome of a successful authentication: the identity to
// establish plus a signed token carrying it.
type Session struct {
	Token string
	Email string
	Name  string
	Role  domain.Role
}

// ProfileUpdateInput is a partial profile edit. Empty fields are left
// untouched; a non-empty PortfolioURL is appended to the portfolio.
type ProfileUpdateInput struct {
	Name           string
	Specialization string
	Location       string
	Pricing        string
	PortfolioURL   string
}

// AccountService defines the account use cases.
type AccountService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.Account, error)
	Authenticate(ctx context.Context, email, password string) (*Session, error)
	// Catalog returns the photographers a client may book: role=photographer
	// and status=active, never pending or rejected ones.
	Catalog(ctx context.Context, actor policy.Actor) ([]*domain.Account, error)
	// Profile returns the acting photographer's own account.
	Profile(ctx context.Context, actor policy.Actor) (*domain.Account, error)
	// UpdateProfile edits the acting photographer's own profile.
	UpdateProfile(ctx context.Context, actor policy.Actor, input ProfileUpdateInput) error
}
