package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lenslease/marketplace-api/internal/core/ports"
)

// CatalogHandler serves the client-facing photographer catalog.
type CatalogHandler struct {
	accounts ports.AccountService
}

func NewCatalogHandler(accounts ports.AccountService) *CatalogHandler {
	return &CatalogHandler{accounts: accounts}
}

// List handles GET /v1/photographers — only approved photographers appear.
//
// @Summary      List bookable photographers
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   photographerResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/photographers [get]
func (h *CatalogHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	photographers, err := h.accounts.Catalog(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	out := make([]photographerResponse, 0, len(photographers))
	for _, p := range photographers {
		out = append(out, toPhotographerResponse(p))
	}
	return c.JSON(http.StatusOK, out)
}
