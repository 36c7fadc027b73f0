package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lenslease/marketplace-api/internal/core/domain"
	"github.com/lenslease/marketplace-api/internal/core/policy"
	"github.com/lenslease/marketplace-api/internal/infrastructure/store/memory"
)

type adminFixture struct {
	accounts *memory.AccountStore
	bookings *memory.BookingStore
	accSvc   *AccountService
	bookSvc  *BookingService
	svc      *AdminService
}

var adminActor = policy.Actor{Email: "admin@lenslease.com", Role: domain.RoleAdmin}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()
	accounts := memory.NewAccountStore()
	bookings := memory.NewBookingStore()

	_ = accounts.Put(context.Background(), &domain.Account{
		Email: adminActor.Email, Name: "System Admin",
		Role: domain.RoleAdmin, Status: domain.StatusActive,
	})

	return &adminFixture{
		accounts: accounts,
		bookings: bookings,
		accSvc:   newAccountService(accounts),
		bookSvc:  NewBookingService(accounts, bookings, nil, discardLogger),
		svc:      NewAdminService(accounts, bookings, discardLogger),
	}
}

func TestAdminService_ApproveActivatesPendingPhotographer(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	mustSignup(t, f.accSvc, "p@x.com", domain.RolePhotographer)
	mustSignup(t, f.accSvc, "c@x.com", domain.RoleClient)

	// Before approval the photographer is invisible to clients.
	catalog, _ := f.accSvc.Catalog(ctx, clientActor("c@x.com"))
	if len(catalog) != 0 {
		t.Fatalf("catalog must be empty before approval, got %d", len(catalog))
	}

	if err := f.svc.Approve(ctx, adminActor, "p@x.com"); err != nil {
		t.Fatalf("approve: %v", err)
	}

	catalog, _ = f.accSvc.Catalog(ctx, clientActor("c@x.com"))
	if len(catalog) != 1 || catalog[0].Email != "p@x.com" || catalog[0].Status != domain.StatusActive {
		t.Fatalf("expected approved photographer in catalog, got %+v", catalog)
	}
}

func TestAdminService_ApproveNonPendingIsNoop(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	mustSignup(t, f.accSvc, "c@x.com", domain.RoleClient)

	// Active account, unknown email: both silent no-ops.
	if err := f.svc.Approve(ctx, adminActor, "c@x.com"); err != nil {
		t.Fatalf("approve active account must be a no-op, got %v", err)
	}
	if err := f.svc.Approve(ctx, adminActor, "ghost@x.com"); err != nil {
		t.Fatalf("approve unknown email must be a no-op, got %v", err)
	}

	got, _ := f.accounts.Get(ctx, "c@x.com")
	if got.Status != domain.StatusActive {
		t.Fatalf("status must be unchanged, got %s", got.Status)
	}
}

func TestAdminService_RejectIsTerminal(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	mustSignup(t, f.accSvc, "p@x.com", domain.RolePhotographer)

	if err := f.svc.Reject(ctx, adminActor, "p@x.com"); err != nil {
		t.Fatalf("reject: %v", err)
	}

	// A later approve must not reverse the rejection.
	if err := f.svc.Approve(ctx, adminActor, "p@x.com"); err != nil {
		t.Fatalf("approve after reject must be a no-op, got %v", err)
	}

	got, _ := f.accounts.Get(ctx, "p@x.com")
	if got.Status != domain.StatusRejected {
		t.Fatalf("rejection must be terminal, got %s", got.Status)
	}
}

func TestAdminService_RequiresAdminRole(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	if err := f.svc.Approve(ctx, clientActor("c@x.com"), "p@x.com"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := f.svc.DeleteAccount(ctx, policy.Actor{}, "p@x.com"); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if _, err := f.svc.Dashboard(ctx, photographerActor("p@x.com")); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAdminService_DeleteIsIdempotentAndKeepsBookings(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	mustSignup(t, f.accSvc, "p@x.com", domain.RolePhotographer)
	_ = f.svc.Approve(ctx, adminActor, "p@x.com")
	mustSignup(t, f.accSvc, "c@x.com", domain.RoleClient)

	booking, err := f.bookSvc.Create(ctx, clientActor("c@x.com"), weddingInput())
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	if err := f.svc.DeleteAccount(ctx, adminActor, "p@x.com"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := f.svc.DeleteAccount(ctx, adminActor, "p@x.com"); err != nil {
		t.Fatalf("second delete must be a no-op, got %v", err)
	}

	if _, err := f.accounts.Get(ctx, "p@x.com"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("account must be gone, got %v", err)
	}

	// The booking survives with its snapshot intact.
	stored, err := f.bookings.Get(ctx, booking.ID)
	if err != nil {
		t.Fatalf("booking must survive account deletion: %v", err)
	}
	if stored.PhotographerEmail != "p@x.com" || stored.PhotographerName != "Some Name" {
		t.Fatalf("booking snapshot changed: %+v", stored)
	}
}

func TestAdminService_DashboardAggregation(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	mustSignup(t, f.accSvc, "active@x.com", domain.RolePhotographer)
	_ = f.svc.Approve(ctx, adminActor, "active@x.com")
	mustSignup(t, f.accSvc, "pending@x.com", domain.RolePhotographer)
	mustSignup(t, f.accSvc, "rejected@x.com", domain.RolePhotographer)
	_ = f.svc.Reject(ctx, adminActor, "rejected@x.com")
	mustSignup(t, f.accSvc, "c@x.com", domain.RoleClient)

	_, _ = f.bookSvc.Create(ctx, clientActor("c@x.com"), bookingInput("active@x.com"))
	_, _ = f.bookSvc.Create(ctx, clientActor("c@x.com"), bookingInput("pending@x.com"))

	dashboard, err := f.svc.Dashboard(ctx, adminActor)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	// Active accounts: admin + approved photographer + client. Rejected and
	// pending photographers are excluded.
	if dashboard.TotalUsers != 3 {
		t.Fatalf("expected 3 active users, got %d", dashboard.TotalUsers)
	}
	if dashboard.PendingApprovals != 1 {
		t.Fatalf("expected 1 pending approval, got %d", dashboard.PendingApprovals)
	}
	if dashboard.TotalBookings != 2 {
		t.Fatalf("expected 2 bookings, got %d", dashboard.TotalBookings)
	}
	if len(dashboard.Users) != dashboard.TotalUsers || len(dashboard.Pending) != dashboard.PendingApprovals {
		t.Fatal("counts must match listings")
	}
	if dashboard.Pending[0].Email != "pending@x.com" {
		t.Fatalf("unexpected pending listing: %+v", dashboard.Pending)
	}
}
