package api

import (
	"net/http"
	"time"

	"itinerary-service/internal/domain/entity"
	"itinerary-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type movementUpsertRequest struct {
	FromStopID      string     `json:"from_stop_id"`
	ToStopID        string     `json:"to_stop_id"`
	Type            string     `json:"type"`
	DurationMinutes *int       `json:"duration_minutes"`
	DepartureTime   *time.Time `json:"departure_time"`
	ArrivalTime     *time.Time `json:"arrival_time"`
	Carrier         string     `json:"carrier"`
	BookingRef      string     `json:"booking_ref"`
	Notes           string     `json:"notes"`
	Price           *float64   `json:"price"`
}

type movementUpdateRequest struct {
	Type            *string    `json:"type"`
	DurationMinutes *int       `json:"duration_minutes"`
	DepartureTime   *time.Time `json:"departure_time"`
	ArrivalTime     *time.Time `json:"arrival_time"`
	Carrier         *string    `json:"carrier"`
	BookingRef      *string    `json:"booking_ref"`
	Notes           *string    `json:"notes"`
	Price           *float64   `json:"price"`
}

func (h *Handler) listMovements(c *gin.Context) {
	movements, err := h.movements.ListByTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "listMovements", err)
		return
	}
	c.JSON(http.StatusOK, movements)
}

func (h *Handler) upsertMovement(c *gin.Context) {
	var req movementUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	movement, err := h.movements.Upsert(c.Request.Context(), c.Param("id"), usecase.MovementInput{
		FromStopID:      req.FromStopID,
		ToStopID:        req.ToStopID,
		Type:            entity.TransportMode(req.Type),
		DurationMinutes: req.DurationMinutes,
		DepartureTime:   req.DepartureTime,
		ArrivalTime:     req.ArrivalTime,
		Carrier:         req.Carrier,
		BookingRef:      req.BookingRef,
		Notes:           req.Notes,
		Price:           req.Price,
	})
	if err != nil {
		h.respondError(c, "upsertMovement", err)
		return
	}
	c.JSON(http.StatusCreated, movement)
}

func (h *Handler) updateMovement(c *gin.Context) {
	var req movementUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	patch := usecase.MovementPatch{
		DurationMinutes: req.DurationMinutes,
		DepartureTime:   req.DepartureTime,
		ArrivalTime:     req.ArrivalTime,
		Carrier:         req.Carrier,
		BookingRef:      req.BookingRef,
		Notes:           req.Notes,
		Price:           req.Price,
	}
	if req.Type != nil {
		mode := entity.TransportMode(*req.Type)
		patch.Type = &mode
	}

	movement, err := h.movements.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.respondError(c, "updateMovement", err)
		return
	}
	c.JSON(http.StatusOK, movement)
}

func (h *Handler) deleteMovement(c *gin.Context) {
	if err := h.movements.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, "deleteMovement", err)
		return
	}
	c.Status(http.StatusNoContent)
}
