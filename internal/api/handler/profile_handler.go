package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lenslease/marketplace-api/internal/core/ports"
)

// ProfileHandler exposes the photographer's own profile.
type ProfileHandler struct {
	accounts ports.AccountService
}

func NewProfileHandler(accounts ports.AccountService) *ProfileHandler {
	return &ProfileHandler{accounts: accounts}
}

// Get handles GET /v1/photographer/profile.
//
// @Summary      My profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  photographerResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/photographer/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	account, err := h.accounts.Profile(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPhotographerResponse(account))
}

// Update handles PUT /v1/photographer/profile. Empty fields are left
// untouched; a portfolio_url is appended, never replaced.
//
// @Summary      Update my profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Partial profile edit"
// @Success      200   {object}  photographerResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/photographer/profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.accounts.UpdateProfile(c.Request().Context(), actor, ports.ProfileUpdateInput{
		Name:           req.Name,
		Specialization: req.Specialization,
		Location:       req.Location,
		Pricing:        req.Pricing,
		PortfolioURL:   req.PortfolioURL,
	}); err != nil {
		return err
	}

	account, err := h.accounts.Profile(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPhotographerResponse(account))
}
