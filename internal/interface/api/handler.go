package api

import (
	"errors"
	"net/http"
	"time"

	"itinerary-service/internal/domain/entity"
	"itinerary-service/internal/usecase"
	"itinerary-service/pkg/logger"
	"itinerary-service/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Handler exposes the itinerary engine over HTTP. It is thin glue: requests
// are decoded into usecase inputs and the engine's results are returned as
// JSON; no itinerary semantics live here.
type Handler struct {
	trips      *usecase.TripPlanner
	stops      *usecase.StopSequencer
	movements  *usecase.MovementLedger
	activities *usecase.ActivitySequencer
	share      *usecase.ShareManager
	logger     logger.Logger
	metrics    *metrics.Metrics
}

// NewHandler creates a new HTTP handler.
func NewHandler(
	trips *usecase.TripPlanner,
	stops *usecase.StopSequencer,
	movements *usecase.MovementLedger,
	activities *usecase.ActivitySequencer,
	share *usecase.ShareManager,
	log logger.Logger,
	m *metrics.Metrics,
) *Handler {
	return &Handler{
		trips:      trips,
		stops:      stops,
		movements:  movements,
		activities: activities,
		share:      share,
		logger:     log,
		metrics:    m,
	}
}

// Register mounts all routes on the router.
func (h *Handler) Register(r *gin.Engine) {
	r.Use(h.timeRequest())

	r.GET("/trips", h.listTrips)
	r.POST("/trips", h.createTrip)
	r.GET("/trips/:id", h.getTrip)
	r.PUT("/trips/:id", h.updateTrip)
	r.DELETE("/trips/:id", h.deleteTrip)
	r.GET("/trips/:id/itinerary", h.getItinerary)
	r.GET("/trips/:id/timeline", h.getTimeline)

	r.GET("/trips/:id/stops", h.listStops)
	r.POST("/trips/:id/stops", h.createStop)
	r.PUT("/trips/:id/stops/reorder", h.reorderStops)
	r.PUT("/stops/:id", h.updateStop)
	r.DELETE("/stops/:id", h.deleteStop)

	r.GET("/trips/:id/movements", h.listMovements)
	r.POST("/trips/:id/movements", h.upsertMovement)
	r.PUT("/movements/:id", h.updateMovement)
	r.DELETE("/movements/:id", h.deleteMovement)

	r.GET("/stops/:id/activities", h.listActivities)
	r.POST("/stops/:id/activities", h.createActivity)
	r.PUT("/stops/:id/activities/reorder", h.reorderActivities)
	r.PUT("/activities/:id", h.updateActivity)
	r.DELETE("/activities/:id", h.deleteActivity)

	r.POST("/trips/:id/share", h.createShareToken)
	r.GET("/trips/:id/share", h.getShareToken)
	r.DELETE("/trips/:id/share", h.revokeShareToken)
	r.GET("/shared/:token", h.getSharedTrip)
}

func (h *Handler) timeRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if h.metrics != nil {
			h.metrics.RequestDuration.Observe(time.Since(start).Seconds())
		}
	}
}

// respondError maps engine errors onto HTTP statuses: validation errors are
// 400, the duplicate-country conflict 409, not-found sentinels 404,
// everything else 500.
func (h *Handler) respondError(c *gin.Context, operation string, err error) {
	switch {
	case entity.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrDuplicateCountry):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrTripNotFound),
		errors.Is(err, entity.ErrStopNotFound),
		errors.Is(err, entity.ErrMovementNotFound),
		errors.Is(err, entity.ErrActivityNotFound),
		errors.Is(err, entity.ErrShareTokenNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Request failed", "operation", operation, "error", err)
		if h.metrics != nil {
			h.metrics.ErrorsCount.WithLabelValues(operation).Inc()
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// parseDate parses a "2006-01-02" date string into a UTC midnight time.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, entity.NewValidationError("date", "must be in YYYY-MM-DD form")
	}
	d := entity.DateOnly(t)
	return &d, nil
}
