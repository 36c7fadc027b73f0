// Package memory provides the in-process storage backend. It satisfies the
// same ports contract as the MongoDB backend: get/put/update-field/delete/
// scan over accounts and bookings, with each call atomic under a mutex.
package memory

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/lenslease/marketplace-api/internal/core/domain"
	"github.com/lenslease/marketplace-api/internal/core/ports"
)

// AccountStore is a mutex-guarded map of accounts keyed by email.
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: make(map[string]*domain.Account)}
}

func (s *AccountStore) Get(_ context.Context, email string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(account), nil
}

func (s *AccountStore) Put(_ context.Context, account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts[account.Email] = cloneAccount(account)
	return nil
}

func (s *AccountStore) UpdateFields(_ context.Context, email string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[email]
	if !ok {
		return domain.ErrAccountNotFound
	}

	for key, value := range fields {
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("memory: field %q: unsupported value type %T", key, value)
		}
		switch key {
		case ports.FieldName:
			account.Name = v
		case ports.FieldSpecialization:
			account.Specialization = v
		case ports.FieldLocation:
			account.Location = v
		case ports.FieldPricing:
			account.Pricing = v
		case ports.FieldStatus:
			account.Status = domain.AccountStatus(v)
		default:
			return fmt.Errorf("memory: unknown account field %q", key)
		}
	}
	return nil
}

func (s *AccountStore) AppendPortfolio(_ context.Context, email, imageURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[email]
	if !ok {
		return domain.ErrAccountNotFound
	}
	account.Portfolio = append(account.Portfolio, imageURL)
	return nil
}

func (s *AccountStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.accounts, email)
	return nil
}

func (s *AccountStore) Scan(_ context.Context, filter ports.AccountFilter) ([]*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*domain.Account, 0)
	for _, account := range s.accounts {
		if filter.Role != "" && account.Role != filter.Role {
			continue
		}
		if filter.Status != "" && account.Status != filter.Status {
			continue
		}
		matched = append(matched, cloneAccount(account))
	}
	return matched, nil
}

// BookingStore is a mutex-guarded map of bookings keyed by id, with a
// sequential id counter.
type BookingStore struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking
	nextID   int
}

func NewBookingStore() *BookingStore {
	return &BookingStore{bookings: make(map[string]*domain.Booking)}
}

func (s *BookingStore) NextID(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	return strconv.Itoa(s.nextID), nil
}

func (s *BookingStore) Get(_ context.Context, id string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	clone := *booking
	return &clone, nil
}

func (s *BookingStore) Put(_ context.Context, booking *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *booking
	s.bookings[booking.ID] = &clone
	return nil
}

func (s *BookingStore) UpdateFields(_ context.Context, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return domain.ErrBookingNotFound
	}

	for key, value := range fields {
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("memory: field %q: unsupported value type %T", key, value)
		}
		switch key {
		case ports.FieldStatus:
			booking.Status = domain.BookingStatus(v)
		default:
			return fmt.Errorf("memory: unknown booking field %q", key)
		}
	}
	return nil
}

func (s *BookingStore) Scan(_ context.Context, filter ports.BookingFilter) ([]*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*domain.Booking, 0)
	for _, booking := range s.bookings {
		if filter.Client != "" && booking.Client != filter.Client {
			continue
		}
		if filter.PhotographerEmail != "" && booking.PhotographerEmail != filter.PhotographerEmail {
			continue
		}
		clone := *booking
		matched = append(matched, &clone)
	}
	return matched, nil
}

// cloneAccount copies the record including its portfolio slice so callers
// never alias store-owned memory.
func cloneAccount(a *domain.Account) *domain.Account {
	clone := *a
	clone.Portfolio = append([]string(nil), a.Portfolio...)
	return &clone
}
