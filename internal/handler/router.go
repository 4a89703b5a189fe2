package handler

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/mkarren/noteserv/internal/middleware"
)

type RouterDeps struct {
	Health      *HealthHandler
	Notes       *NoteHandler
	CORSOrigins []string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog())
	router.Use(middleware.CORS(deps.CORSOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	router.GET("/", deps.Health.Check)
	router.GET("/notes", deps.Notes.List)
	router.POST("/notes", deps.Notes.Create)
	router.PUT("/notes/:id", deps.Notes.Update)
	router.DELETE("/notes/:id", deps.Notes.Delete)

	return router
}
