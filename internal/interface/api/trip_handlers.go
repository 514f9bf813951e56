package api

import (
	"net/http"

	"itinerary-service/internal/domain/entity"
	"itinerary-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type tripCreateRequest struct {
	Name        string `json:"name"`
	CountryCode string `json:"country_code"`
	StartDate   string `json:"start_date"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
	Currency    string `json:"currency"`
}

type tripUpdateRequest struct {
	Name        *string `json:"name"`
	CountryCode *string `json:"country_code"`
	StartDate   *string `json:"start_date"`
	Status      *string `json:"status"`
	Notes       *string `json:"notes"`
	Currency    *string `json:"currency"`
}

func (h *Handler) listTrips(c *gin.Context) {
	trips, err := h.trips.List(c.Request.Context())
	if err != nil {
		h.respondError(c, "listTrips", err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

func (h *Handler) createTrip(c *gin.Context) {
	var req tripCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		h.respondError(c, "createTrip", err)
		return
	}

	trip, err := h.trips.Create(c.Request.Context(), usecase.TripInput{
		Name:        req.Name,
		CountryCode: req.CountryCode,
		StartDate:   startDate,
		Status:      entity.TripStatus(req.Status),
		Notes:       req.Notes,
		Currency:    req.Currency,
	})
	if err != nil {
		h.respondError(c, "createTrip", err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

func (h *Handler) getTrip(c *gin.Context) {
	trip, err := h.trips.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "getTrip", err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (h *Handler) updateTrip(c *gin.Context) {
	var req tripUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	patch := usecase.TripPatch{
		Name:        req.Name,
		CountryCode: req.CountryCode,
		Notes:       req.Notes,
		Currency:    req.Currency,
	}
	if req.StartDate != nil {
		startDate, err := parseDate(*req.StartDate)
		if err != nil {
			h.respondError(c, "updateTrip", err)
			return
		}
		patch.StartDate = startDate
	}
	if req.Status != nil {
		status := entity.TripStatus(*req.Status)
		patch.Status = &status
	}

	trip, err := h.trips.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.respondError(c, "updateTrip", err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (h *Handler) deleteTrip(c *gin.Context) {
	if err := h.trips.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, "deleteTrip", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) getItinerary(c *gin.Context) {
	itinerary, err := h.trips.Itinerary(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "getItinerary", err)
		return
	}
	c.JSON(http.StatusOK, itinerary)
}

func (h *Handler) getTimeline(c *gin.Context) {
	timeline, err := h.trips.Timeline(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "getTimeline", err)
		return
	}
	c.JSON(http.StatusOK, timeline)
}
