package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/lenslease/marketplace-api/internal/core/domain"
	"github.com/lenslease/marketplace-api/internal/core/policy"
	"github.com/lenslease/marketplace-api/internal/core/ports"
)

// Defaults applied when a photographer signs up without profile details,
// plus the seed portfolio image every new profile starts with.
const (
	defaultSpecialization = "General"
	defaultLocation       = "India"
	defaultPricing        = "0"
	seedPortfolioImage    = "https://images.unsplash.com/photo-1542038784456-1ea8e935640e?w=500"
)

// AccountService implements signup, authentication and profile use cases.
type AccountService struct {
	accounts  ports.AccountStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAccountService(accounts ports.AccountStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AccountService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AccountService{accounts: accounts, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Signup registers a new account. Photographers start pending admin
// approval; clients are active immediately. Admin accounts cannot be
// created here.
func (s *AccountService) Signup(ctx context.Context, input ports.SignupInput) (*domain.Account, error) {
	if !input.Role.SignupRole() {
		return nil, domain.ErrForbiddenRole
	}

	if _, err := s.accounts.Get(ctx, input.Email); err == nil {
		return nil, domain.ErrDuplicateAccount
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Email:          input.Email,
		Name:           input.Name,
		PasswordHash:   string(hash),
		Role:           input.Role,
		Status:         input.Role.InitialStatus(),
		Specialization: orDefault(input.Specialization, defaultSpecialization),
		Location:       orDefault(input.Location, defaultLocation),
		Pricing:        orDefault(input.Pricing, defaultPricing),
		Portfolio:      []string{seedPortfolioImage},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.accounts.Put(ctx, account); err != nil {
		s.log.Error().Err(err).Str("email", input.Email).Msg("failed to create account")
		return nil, err
	}

	s.log.Info().Str("email", account.Email).Str("role", string(account.Role)).
		Str("status", string(account.Status)).Msg("account created")
	return account, nil
}

// Authenticate verifies credentials and returns a session. Rejected and
// pending photographers get their own outcomes instead of a generic
// credential failure.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*ports.Session, error) {
	account, err := s.accounts.Get(ctx, email)
	if err != nil {
		return nil, err
	}

	switch account.Status {
	case domain.StatusRejected:
		return nil, domain.ErrAccountRejected
	case domain.StatusPending:
		return nil, domain.ErrPendingApproval
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrBadCredential
	}

	token, err := s.generateToken(account)
	if err != nil {
		return nil, err
	}

	return &ports.Session{
		Token: token,
		Email: account.Email,
		Name:  account.Name,
		Role:  account.Role,
	}, nil
}

// Catalog lists the photographers available to clients. Pending and
// rejected photographers never appear.
func (s *AccountService) Catalog(ctx context.Context, actor policy.Actor) ([]*domain.Account, error) {
	if err := policy.Require(actor, domain.RoleClient); err != nil {
		return nil, err
	}
	return s.accounts.Scan(ctx, ports.AccountFilter{
		Role:   domain.RolePhotographer,
		Status: domain.StatusActive,
	})
}

// Profile returns the acting photographer's own account.
func (s *AccountService) Profile(ctx context.Context, actor policy.Actor) (*domain.Account, error) {
	if err := policy.Require(actor, domain.RolePhotographer); err != nil {
		return nil, err
	}
	return s.accounts.Get(ctx, actor.Email)
}

// UpdateProfile edits the acting photographer's own profile. Only the
// fields provided are written; a portfolio URL is appended, never replacing
// existing entries.
func (s *AccountService) UpdateProfile(ctx context.Context, actor policy.Actor, input ports.ProfileUpdateInput) error {
	if err := policy.Require(actor, domain.RolePhotographer); err != nil {
		return err
	}
	if err := policy.RequireOwner(actor, actor.Email); err != nil {
		return err
	}

	fields := map[string]any{}
	if input.Name != "" {
		fields[ports.FieldName] = input.Name
	}
	if input.Specialization != "" {
		fields[ports.FieldSpecialization] = input.Specialization
	}
	if input.Location != "" {
		fields[ports.FieldLocation] = input.Location
	}
	if input.Pricing != "" {
		fields[ports.FieldPricing] = input.Pricing
	}

	if len(fields) > 0 {
		if err := s.accounts.UpdateFields(ctx, actor.Email, fields); err != nil {
			s.log.Error().Err(err).Str("email", actor.Email).Msg("failed to update profile")
			return err
		}
	}

	if input.PortfolioURL != "" {
		if err := s.accounts.AppendPortfolio(ctx, actor.Email, input.PortfolioURL); err != nil {
			s.log.Error().Err(err).Str("email", actor.Email).Msg("failed to append portfolio image")
			return err
		}
	}

	s.log.Info().Str("email", actor.Email).Msg("profile updated")
	return nil
}

func (s *AccountService) generateToken(account *domain.Account) (string, error) {
	claims := jwt.MapClaims{
		"email": account.Email,
		"role":  string(account.Role),
		"name":  account.Name,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
