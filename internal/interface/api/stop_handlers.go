package api

import (
	"net/http"

	"itinerary-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type stopCreateRequest struct {
	Name          string   `json:"name"`
	Lng           float64  `json:"lng"`
	Lat           float64  `json:"lat"`
	Notes         string   `json:"notes"`
	Nights        int      `json:"nights"`
	PricePerNight *float64 `json:"price_per_night"`
}

type stopUpdateRequest struct {
	Name          *string  `json:"name"`
	Lng           *float64 `json:"lng"`
	Lat           *float64 `json:"lat"`
	Notes         *string  `json:"notes"`
	Nights        *int     `json:"nights"`
	PricePerNight *float64 `json:"price_per_night"`
}

type reorderRequest struct {
	FromIndex int `json:"from_index"`
	ToIndex   int `json:"to_index"`
}

func (h *Handler) listStops(c *gin.Context) {
	stops, err := h.stops.ListByTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "listStops", err)
		return
	}
	c.JSON(http.StatusOK, stops)
}

func (h *Handler) createStop(c *gin.Context) {
	var req stopCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	stop, err := h.stops.Insert(c.Request.Context(), c.Param("id"), usecase.StopInput{
		Name:          req.Name,
		Lng:           req.Lng,
		Lat:           req.Lat,
		Notes:         req.Notes,
		Nights:        req.Nights,
		PricePerNight: req.PricePerNight,
	})
	if err != nil {
		h.respondError(c, "createStop", err)
		return
	}
	c.JSON(http.StatusCreated, stop)
}

func (h *Handler) updateStop(c *gin.Context) {
	var req stopUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	stop, err := h.stops.Update(c.Request.Context(), c.Param("id"), usecase.StopPatch{
		Name:          req.Name,
		Lng:           req.Lng,
		Lat:           req.Lat,
		Notes:         req.Notes,
		Nights:        req.Nights,
		PricePerNight: req.PricePerNight,
	})
	if err != nil {
		h.respondError(c, "updateStop", err)
		return
	}
	c.JSON(http.StatusOK, stop)
}

// reorderStops moves one stop to a new position. The response carries the
// new order and whether transport segments were cleared, so the client can
// show a notice.
func (h *Handler) reorderStops(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.stops.Move(c.Request.Context(), c.Param("id"), req.FromIndex, req.ToIndex)
	if err != nil {
		h.respondError(c, "reorderStops", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) deleteStop(c *gin.Context) {
	if err := h.stops.RemoveWithCascade(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, "deleteStop", err)
		return
	}
	c.Status(http.StatusNoContent)
}
