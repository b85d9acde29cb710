package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// saveUpload validates the "audio" multipart field and stores it under a
// random name in the upload dir. It writes the 400 response itself on
// rejection; on success the caller owns deleting the file.
func (s *Server) saveUpload(c *gin.Context) (path, originalName string, ok bool) {
	fh, err := c.FormFile("audio")
	if err != nil {
		respondError(c, http.StatusBadRequest, "No audio file provided", "")
		return "", "", false
	}
	if fh.Filename == "" {
		respondError(c, http.StatusBadRequest, "No file selected", "")
		return "", "", false
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !s.extensionAllowed(ext) {
		respondError(c, http.StatusBadRequest,
			fmt.Sprintf("Invalid file type. Allowed: %s", strings.Join(s.cfg.Upload.AllowedExtensions, ", ")), "")
		return "", "", false
	}

	if fh.Size > s.cfg.Upload.MaxSizeMB<<20 {
		respondError(c, http.StatusBadRequest,
			fmt.Sprintf("File too large. Limit: %d MB", s.cfg.Upload.MaxSizeMB), "")
		return "", "", false
	}

	if err := os.MkdirAll(s.cfg.Upload.Dir, 0755); err != nil {
		respondError(c, http.StatusInternalServerError, "Upload failed", err.Error())
		return "", "", false
	}

	// Random name avoids collisions and path tricks in client filenames.
	path = filepath.Join(s.cfg.Upload.Dir, uuid.NewString()+ext)
	if err := c.SaveUploadedFile(fh, path); err != nil {
		respondError(c, http.StatusInternalServerError, "Upload failed", err.Error())
		return "", "", false
	}

	return path, fh.Filename, true
}

func (s *Server) extensionAllowed(ext string) bool {
	for _, allowed := range s.cfg.Upload.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
