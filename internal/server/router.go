package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router builds the gin engine with all API routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.MaxMultipartMemory = s.cfg.Upload.MaxSizeMB << 20

	r.GET("/", s.handleIndex)
	r.GET("/api/health", s.handleHealth)

	api := r.Group("/api")
	{
		api.POST("/test-upload", s.handleTestUpload)
		api.POST("/transcribe", s.handleTranscribe)
		api.POST("/summarize", s.handleSummarize)
		api.POST("/process-audio", s.handleProcessAudio)
		api.POST("/process-meeting", s.handleProcessMeeting)
		api.POST("/models/preload", s.handlePreload)
		api.POST("/generate-document", s.handleGenerateDocument)
	}

	return r
}

func (s *Server) handleIndex(c *gin.Context) {
	c.String(http.StatusOK, "Backend is running. Access /api/health for status.")
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Audio document backend is running",
		"backend": "audiodoc",
	})
}

func respondError(c *gin.Context, status int, msg, details string) {
	body := gin.H{"error": msg}
	if details != "" {
		body["details"] = details
	}
	c.JSON(status, body)
}
