package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lenslease/marketplace-api/internal/api/metrics"
	"github.com/lenslease/marketplace-api/internal/core/domain"
	"github.com/lenslease/marketplace-api/internal/core/ports"
)

// AuthHandler handles signup and login.
type AuthHandler struct {
	accounts ports.AccountService
}

func NewAuthHandler(accounts ports.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

// Signup registers a new client or photographer account.
//
// @Summary      Sign up as a client or photographer
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  signupResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	account, err := h.accounts.Signup(c.Request().Context(), ports.SignupInput{
		Email:          req.Email,
		Name:           req.Name,
		Password:       req.Password,
		Role:           domain.Role(req.Role),
		Specialization: req.Specialization,
		Location:       req.Location,
		Pricing:        req.Pricing,
	})
	if err != nil {
		return err
	}

	metrics.SignupsTotal.WithLabelValues(string(account.Role)).Inc()

	message := "Account created! Log in."
	if account.Status == domain.StatusPending {
		message = "Awaiting admin approval."
	}
	return c.JSON(http.StatusCreated, signupResponse{
		Email:   account.Email,
		Role:    string(account.Role),
		Status:  string(account.Status),
		Message: message,
	})
}

// Login authenticates an account and returns a session token.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	session, err := h.accounts.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.AuthFailuresTotal.WithLabelValues(authFailureReason(err)).Inc()
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token: session.Token,
		Email: session.Email,
		Name:  session.Name,
		Role:  string(session.Role),
	})
}

func authFailureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrPendingApproval):
		return "pending"
	case errors.Is(err, domain.ErrAccountRejected):
		return "rejected"
	case errors.Is(err, domain.ErrBadCredential):
		return "bad_credential"
	default:
		return "error"
	}
}
