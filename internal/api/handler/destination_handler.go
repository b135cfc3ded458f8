package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/travelhub/booking-system/internal/core/domain"
	"github.com/travelhub/booking-system/internal/core/ports"
)

// DestinationHandler handles HTTP requests for the destination catalog.
type DestinationHandler struct {
	service ports.DestinationService
}

func NewDestinationHandler(service ports.DestinationService) *DestinationHandler {
	return &DestinationHandler{service: service}
}

type createDestinationResponse struct {
	Message     string              `json:"message"`
	Destination *domain.Destination `json:"destination"`
}

// List handles GET /destinations. Public: no token required.
//
// @Summary      Retrieve all destinations
// @Tags         destinations
// @Produce      json
// @Success      200  {array}  domain.Destination
// @Router       /destinations [get]
func (h *DestinationHandler) List(c echo.Context) error {
	destinations, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, destinations)
}

// Create handles POST /destinations. Admins only.
//
// @Summary      Add a new destination
// @Tags         destinations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDestinationRequest  true  "Destination details"
// @Success      201   {object}  createDestinationResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /destinations [post]
func (h *DestinationHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createDestinationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	destination, err := h.service.Create(c.Request().Context(), ports.CreateDestinationInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Claims:      claims,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createDestinationResponse{
		Message:     "Destination added successfully",
		Destination: destination,
	})
}

// Delete handles DELETE /destinations/:id. Admins only.
//
// @Summary      Delete a destination
// @Tags         destinations
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Destination ID (e.g. DST-7A8B9C2D)"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /destinations/{id} [delete]
func (h *DestinationHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), claims); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Destination deleted successfully"})
}
