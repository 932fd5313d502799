package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/photoshare/photoshare-api/internal/api/metrics"
	"github.com/photoshare/photoshare-api/internal/core/ports"
)

// CardHandler handles the protected /cards routes.
type CardHandler struct {
	cardService ports.CardService
}

func NewCardHandler(cardService ports.CardService) *CardHandler {
	return &CardHandler{cardService: cardService}
}

// List handles GET /cards.
func (h *CardHandler) List(c echo.Context) error {
	views, err := h.cardService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCardListResponse(views))
}

// Create handles POST /cards.
func (h *CardHandler) Create(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	var req createCardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.cardService.Create(c.Request().Context(), id, req.Name, req.Link)
	if err != nil {
		return err
	}

	metrics.CardsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toCardResponse(view))
}

// Delete handles DELETE /cards/:id — owner only.
func (h *CardHandler) Delete(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	view, err := h.cardService.Delete(c.Request().Context(), c.Param("id"), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCardResponse(view))
}

// Like handles PUT /cards/:id/likes.
func (h *CardHandler) Like(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	view, err := h.cardService.Like(c.Request().Context(), c.Param("id"), id)
	if err != nil {
		return err
	}

	metrics.LikeOpsTotal.WithLabelValues("like").Inc()
	return c.JSON(http.StatusOK, toCardResponse(view))
}

// Unlike handles DELETE /cards/:id/likes.
func (h *CardHandler) Unlike(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	view, err := h.cardService.Unlike(c.Request().Context(), c.Param("id"), id)
	if err != nil {
		return err
	}

	metrics.LikeOpsTotal.WithLabelValues("unlike").Inc()
	return c.JSON(http.StatusOK, toCardResponse(view))
}
