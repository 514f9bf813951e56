package api

import (
	"net/http"

	"itinerary-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type activityCreateRequest struct {
	Title           string   `json:"title"`
	Date            string   `json:"date"`
	StartTime       *string  `json:"start_time"`
	DurationMinutes *int     `json:"duration_minutes"`
	Lng             *float64 `json:"lng"`
	Lat             *float64 `json:"lat"`
	Address         string   `json:"address"`
	Category        string   `json:"category"`
	Notes           string   `json:"notes"`
	Price           *float64 `json:"price"`
}

type activityUpdateRequest struct {
	Title           *string  `json:"title"`
	Date            *string  `json:"date"`
	StartTime       *string  `json:"start_time"`
	DurationMinutes *int     `json:"duration_minutes"`
	Lng             *float64 `json:"lng"`
	Lat             *float64 `json:"lat"`
	Address         *string  `json:"address"`
	Category        *string  `json:"category"`
	Notes           *string  `json:"notes"`
	Price           *float64 `json:"price"`
}

func (h *Handler) listActivities(c *gin.Context) {
	activities, err := h.activities.ListByStop(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "listActivities", err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

func (h *Handler) createActivity(c *gin.Context) {
	var req activityCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		h.respondError(c, "createActivity", err)
		return
	}

	activity, err := h.activities.Insert(c.Request.Context(), c.Param("id"), usecase.ActivityInput{
		Title:           req.Title,
		Date:            date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Lng:             req.Lng,
		Lat:             req.Lat,
		Address:         req.Address,
		Category:        req.Category,
		Notes:           req.Notes,
		Price:           req.Price,
	})
	if err != nil {
		h.respondError(c, "createActivity", err)
		return
	}
	c.JSON(http.StatusCreated, activity)
}

func (h *Handler) updateActivity(c *gin.Context) {
	var req activityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	patch := usecase.ActivityPatch{
		Title:           req.Title,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Lng:             req.Lng,
		Lat:             req.Lat,
		Address:         req.Address,
		Category:        req.Category,
		Notes:           req.Notes,
		Price:           req.Price,
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			h.respondError(c, "updateActivity", err)
			return
		}
		patch.Date = date
	}

	activity, err := h.activities.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.respondError(c, "updateActivity", err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

func (h *Handler) reorderActivities(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.activities.Move(c.Request.Context(), c.Param("id"), req.FromIndex, req.ToIndex)
	if err != nil {
		h.respondError(c, "reorderActivities", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) deleteActivity(c *gin.Context) {
	if err := h.activities.Remove(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, "deleteActivity", err)
		return
	}
	c.Status(http.StatusNoContent)
}
