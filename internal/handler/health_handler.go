package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkarren/noteserv/internal/pkg/response"
)

const (
	ServiceName    = "Notes Organizer Backend"
	ServiceVersion = "1.0.0"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{
		"status":  "ok",
		"service": ServiceName,
		"version": ServiceVersion,
	})
}
