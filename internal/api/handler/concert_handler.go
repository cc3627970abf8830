package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/KennyASG/ticketapp/internal/api/metrics"
	"github.com/KennyASG/ticketapp/internal/core/domain"
	"github.com/KennyASG/ticketapp/internal/core/ports"
)

// ConcertHandler handles HTTP requests for concert catalog operations.
type ConcertHandler struct {
	service ports.ConcertService
}

func NewConcertHandler(service ports.ConcertService) *ConcertHandler {
	return &ConcertHandler{service: service}
}

type createConcertRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	StatusID    uint      `json:"status_id" validate:"required"`
}

type updateConcertRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	StatusID    *uint      `json:"status_id"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func concertID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid concert id")
	}
	return uint(id), nil
}

func concertError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrConcertNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "concert not found"})
	case errors.Is(err, domain.ErrStatusNotFound):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing mandatory fields"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

// List returns all concerts ordered by date ascending.
//
// @Summary      List concerts
// @Tags         concerts
// @Produce      json
// @Success      200  {array}  domain.Concert
// @Router       /concert [get]
func (h *ConcertHandler) List(c echo.Context) error {
	concerts, err := h.service.List(c.Request().Context())
	if err != nil {
		return concertError(c, err)
	}

	return c.JSON(http.StatusOK, concerts)
}

// Get returns a single concert by id.
//
// @Summary      Get a concert
// @Tags         concerts
// @Produce      json
// @Param        id   path      int  true  "Concert id"
// @Success      200  {object}  domain.Concert
// @Failure      404  {object}  map[string]string
// @Router       /concert/{id} [get]
func (h *ConcertHandler) Get(c echo.Context) error {
	id, err := concertID(c)
	if err != nil {
		return err
	}

	concert, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return concertError(c, err)
	}

	return c.JSON(http.StatusOK, concert)
}

// Create adds a new concert. All fields are mandatory.
//
// @Summary      Create a concert
// @Tags         concerts
// @Accept       json
// @Produce      json
// @Param        body  body      createConcertRequest  true  "Concert fields"
// @Success      201   {object}  domain.Concert
// @Failure      400   {object}  map[string]string
// @Router       /concert [post]
func (h *ConcertHandler) Create(c echo.Context) error {
	var req createConcertRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	concert, err := h.service.Create(c.Request().Context(), ports.CreateConcertInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		StatusID:    req.StatusID,
	})
	if err != nil {
		return concertError(c, err)
	}

	metrics.ConcertsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, concert)
}

// Update merges the provided fields into an existing concert.
//
// @Summary      Update a concert
// @Tags         concerts
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Concert id"
// @Param        body  body      updateConcertRequest  true  "Fields to change"
// @Success      200   {object}  domain.Concert
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /concert/{id} [put]
func (h *ConcertHandler) Update(c echo.Context) error {
	id, err := concertID(c)
	if err != nil {
		return err
	}

	var req updateConcertRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	concert, err := h.service.Update(c.Request().Context(), id, ports.UpdateConcertInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		StatusID:    req.StatusID,
	})
	if err != nil {
		return concertError(c, err)
	}

	return c.JSON(http.StatusOK, concert)
}

// Delete removes a concert.
//
// @Summary      Delete a concert
// @Tags         concerts
// @Produce      json
// @Param        id   path      int  true  "Concert id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /concert/{id} [delete]
func (h *ConcertHandler) Delete(c echo.Context) error {
	id, err := concertID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return concertError(c, err)
	}

	metrics.ConcertsDeletedTotal.Inc()

	return c.JSON(http.StatusOK, messageResponse{Message: "concert deleted"})
}
