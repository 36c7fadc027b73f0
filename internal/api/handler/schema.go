package handler

import "github.com/lenslease/marketplace-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type signupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Name     string `json:"name"     validate:"required"`
	Password string `json:"password" validate:"required,min=3"`
	// Role is validated by the service so an admin signup attempt gets the
	// forbidden-role outcome rather than a generic validation failure.
	Role           string `json:"role" validate:"required"`
	Specialization string `json:"specialization,omitempty"`
	Location       string `json:"location,omitempty"`
	Pricing        string `json:"pricing,omitempty" validate:"omitempty,numeric"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signupResponse struct {
	Email   string `json:"email"`
	Role    string `json:"role"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type loginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// --- Catalog / profile ---

type photographerResponse struct {
	Email          string   `json:"email"`
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	Location       string   `json:"location"`
	Pricing        string   `json:"pricing"`
	Portfolio      []string `json:"portfolio"`
}

func toPhotographerResponse(a *domain.Account) photographerResponse {
	return photographerResponse{
		Email:          a.Email,
		Name:           a.Name,
		Specialization: a.Specialization,
		Location:       a.Location,
		Pricing:        a.Pricing,
		Portfolio:      a.Portfolio,
	}
}

type updateProfileRequest struct {
	Name           string `json:"name,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	Location       string `json:"location,omitempty"`
	Pricing        string `json:"pricing,omitempty"       validate:"omitempty,numeric"`
	PortfolioURL   string `json:"portfolio_url,omitempty" validate:"omitempty,url"`
}

// --- Bookings ---

type createBookingRequest struct {
	PhotographerEmail string `json:"p_email" validate:"required,email"`
	Date              string `json:"date"    validate:"required"`
	Event             string `json:"event"   validate:"required"`
}

type bookingResponse struct {
	ID                string `json:"id"`
	Client            string `json:"client"`
	PhotographerEmail string `json:"p_email"`
	PhotographerName  string `json:"p_name"`
	Date              string `json:"date"`
	Event             string `json:"event"`
	Status            string `json:"status"`
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:                b.ID,
		Client:            b.Client,
		PhotographerEmail: b.PhotographerEmail,
		PhotographerName:  b.PhotographerName,
		Date:              b.Date,
		Event:             b.Event,
		Status:            string(b.Status),
	}
}

func toBookingResponses(bookings []*domain.Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	return out
}

// --- Admin ---

type accountSummary struct {
	Email          string `json:"email"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	Status         string `json:"status"`
	Specialization string `json:"specialization,omitempty"`
	Location       string `json:"location,omitempty"`
	Pricing        string `json:"pricing,omitempty"`
}

func toAccountSummary(a *domain.Account) accountSummary {
	return accountSummary{
		Email:          a.Email,
		Name:           a.Name,
		Role:           string(a.Role),
		Status:         string(a.Status),
		Specialization: a.Specialization,
		Location:       a.Location,
		Pricing:        a.Pricing,
	}
}

type dashboardResponse struct {
	TotalUsers       int               `json:"total_users"`
	PendingApprovals int               `json:"pending_approvals"`
	TotalBookings    int               `json:"total_bookings"`
	Users            []accountSummary  `json:"users"`
	Pending          []accountSummary  `json:"pending"`
	Bookings         []bookingResponse `json:"bookings"`
}

type messageResponse struct {
	Message string `json:"message"`
}
