package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lenslease/marketplace-api/internal/api/metrics"
	"github.com/lenslease/marketplace-api/internal/core/ports"
)

// AdminHandler exposes the administration surface: the dashboard, signup
// decisions and account removal.
type AdminHandler struct {
	admin ports.AdminService
}

func NewAdminHandler(admin ports.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// Dashboard handles GET /v1/admin/dashboard.
//
// @Summary      Platform dashboard
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	dash, err := h.admin.Dashboard(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	resp := dashboardResponse{
		TotalUsers:       dash.TotalUsers,
		PendingApprovals: dash.PendingApprovals,
		TotalBookings:    dash.TotalBookings,
		Users:            make([]accountSummary, 0, len(dash.Users)),
		Pending:          make([]accountSummary, 0, len(dash.Pending)),
		Bookings:         toBookingResponses(dash.Bookings),
	}
	for _, a := range dash.Users {
		resp.Users = append(resp.Users, toAccountSummary(a))
	}
	for _, a := range dash.Pending {
		resp.Pending = append(resp.Pending, toAccountSummary(a))
	}
	return c.JSON(http.StatusOK, resp)
}

// Approve handles POST /v1/admin/photographers/:email/approve.
//
// @Summary      Approve a pending photographer
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Photographer email"
// @Success      200    {object}  messageResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /v1/admin/photographers/{email}/approve [post]
func (h *AdminHandler) Approve(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.admin.Approve(c.Request().Context(), actor, c.Param("email")); err != nil {
		return err
	}

	metrics.SignupDecisionsTotal.WithLabelValues("approved").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "photographer approved"})
}

// Reject handles POST /v1/admin/photographers/:email/reject.
//
// @Summary      Reject a pending photographer
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Photographer email"
// @Success      200    {object}  messageResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /v1/admin/photographers/{email}/reject [post]
func (h *AdminHandler) Reject(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.admin.Reject(c.Request().Context(), actor, c.Param("email")); err != nil {
		return err
	}

	metrics.SignupDecisionsTotal.WithLabelValues("rejected").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "photographer rejected"})
}

// Delete handles DELETE /v1/admin/accounts/:email. Removal is unconditional
// and idempotent; bookings naming the account are left in place.
//
// @Summary      Delete an account
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Account email"
// @Success      200    {object}  messageResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /v1/admin/accounts/{email} [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.admin.DeleteAccount(c.Request().Context(), actor, c.Param("email")); err != nil {
		return err
	}

	metrics.AccountsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "account deleted"})
}
