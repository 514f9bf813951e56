package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) createShareToken(c *gin.Context) {
	token, err := h.share.Create(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "createShareToken", err)
		return
	}
	c.JSON(http.StatusCreated, token)
}

func (h *Handler) getShareToken(c *gin.Context) {
	token, err := h.share.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "getShareToken", err)
		return
	}
	c.JSON(http.StatusOK, token)
}

func (h *Handler) revokeShareToken(c *gin.Context) {
	if err := h.share.Revoke(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, "revokeShareToken", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) getSharedTrip(c *gin.Context) {
	shared, err := h.share.SharedTimeline(c.Request.Context(), c.Param("token"))
	if err != nil {
		h.respondError(c, "getSharedTrip", err)
		return
	}
	c.JSON(http.StatusOK, shared)
}
