package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lenslease/marketplace-api/internal/api/metrics"
	"github.com/lenslease/marketplace-api/internal/core/domain"
	"github.com/lenslease/marketplace-api/internal/core/ports"
)

// BookingHandler handles booking creation, listings and photographer actions.
type BookingHandler struct {
	bookings ports.BookingService
}

func NewBookingHandler(bookings ports.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// Create handles POST /v1/bookings — a client books a photographer.
//
// @Summary      Book a photographer
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking request"
// @Success      201   {object}  bookingResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
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

	booking, err := h.bookings.Create(c.Request().Context(), actor, ports.CreateBookingInput{
		PhotographerEmail: req.PhotographerEmail,
		Date:              req.Date,
		Event:             req.Event,
	})
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toBookingResponse(booking))
}

// History handles GET /v1/bookings — the acting client's booking history.
//
// @Summary      List my bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   bookingResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/bookings [get]
func (h *BookingHandler) History(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	bookings, err := h.bookings.History(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponses(bookings))
}

// Assigned handles GET /v1/photographer/bookings — the acting photographer's
// work queue.
//
// @Summary      List bookings assigned to me
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   bookingResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/photographer/bookings [get]
func (h *BookingHandler) Assigned(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	bookings, err := h.bookings.PhotographerBookings(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponses(bookings))
}

// Act handles POST /v1/bookings/:id/:action with action accept|reject|complete.
// Acting on someone else's booking changes nothing and is not an error.
//
// @Summary      Accept, reject or complete a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string  true  "Booking id"
// @Param        action  path      string  true  "accept | reject | complete"
// @Success      200     {object}  bookingResponse
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Failure      422     {object}  errorResponse
// @Router       /v1/bookings/{id}/{action} [post]
func (h *BookingHandler) Act(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	action := domain.BookingAction(c.Param("action"))
	booking, err := h.bookings.Act(c.Request().Context(), actor, c.Param("id"), action)
	if err != nil {
		return err
	}
	if booking == nil {
		// Ownership mismatch: nothing changed, nothing to report.
		return c.JSON(http.StatusOK, messageResponse{Message: "no booking updated"})
	}

	metrics.BookingActionsTotal.WithLabelValues(string(action)).Inc()
	return c.JSON(http.StatusOK, toBookingResponse(booking))
}
