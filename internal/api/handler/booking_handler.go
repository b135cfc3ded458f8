package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/travelhub/booking-system/internal/core/ports"
)

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// List handles GET /bookings. Admins only.
//
// @Summary      View all bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Booking
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	bookings, err := h.service.ListAll(c.Request().Context(), claims)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, bookings)
}

// Create handles POST /bookings for the authenticated caller.
//
// @Summary      Book a trip to a destination
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.service.Create(c.Request().Context(), ports.CreateBookingInput{
		DestinationID: req.DestinationID,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		Claims:        claims,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, booking)
}
