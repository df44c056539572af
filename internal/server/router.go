package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the gateway routes.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	{
		v1.POST("/files", h.UploadFile)
		v1.GET("/files/:file_id", h.GetFile)
		v1.POST("/files/:file_id/restart", h.RestartChain)
		v1.GET("/chains/:chain_id/progress", h.GetProgress)

		analytics := v1.Group("/analytics")
		{
			analytics.GET("/classifications", h.GetClassificationStats)
			analytics.GET("/validation-failures", h.GetValidationFailures)
		}
	}
	return r
}
