package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/reqgen/audiodoc/internal/policy"
	"github.com/reqgen/audiodoc/internal/summarizer"
)

// handleTestUpload verifies the upload path without touching any model.
func (s *Server) handleTestUpload(c *gin.Context) {
	fh, err := c.FormFile("audio")
	if err != nil {
		respondError(c, http.StatusBadRequest, "No audio file provided", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "File received successfully (no processing)",
		"filename":     fh.Filename,
		"content_type": fh.Header.Get("Content-Type"),
		"size":         fh.Size,
	})
}

func (s *Server) handleTranscribe(c *gin.Context) {
	path, original, ok := s.saveUpload(c)
	if !ok {
		return
	}
	defer os.Remove(path)

	res, err := s.transcriber.Transcribe(c.Request.Context(), path)
	if err != nil {
		s.logger.Error(c.Request.Context(), "Transcription failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Transcription failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"transcript":    res.Text,
		"language":      res.Language,
		"language_name": res.LanguageName,
		"word_count":    res.WordCount,
		"filename":      original,
	})
}

type summarizeRequest struct {
	Text              string `json:"text"`
	Strategy          string `json:"strategy"`
	Quality           string `json:"quality"`
	CustomInstruction string `json:"custom_instruction"`
}

func (s *Server) handleSummarize(c *gin.Context) {
	var req summarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		respondError(c, http.StatusBadRequest, "No text provided", "")
		return
	}

	res, err := s.summarizer.Summarize(c.Request.Context(), strings.TrimSpace(req.Text), summarizer.Options{
		Strategy:          policy.ParseStrategy(req.Strategy),
		Quality:           req.Quality,
		CustomInstruction: req.CustomInstruction,
	})
	if err != nil {
		s.logger.Error(c.Request.Context(), "Summarization failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Summarization failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"summary":            res.Summary,
		"word_count":         res.InputWords,
		"summary_word_count": res.SummaryWords,
		"compression":        res.CompressionPercent,
		"strategy":           res.Strategy,
		"quality":            res.Quality,
	})
}

func (s *Server) handleProcessAudio(c *gin.Context) {
	path, original, ok := s.saveUpload(c)
	if !ok {
		return
	}
	defer os.Remove(path)

	ctx := c.Request.Context()
	s.logger.Info(ctx, "Audio processing started: %s", original)

	tres, err := s.transcriber.Transcribe(ctx, path)
	if err != nil {
		s.logger.Error(ctx, "Audio processing failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Audio processing failed", err.Error())
		return
	}

	sres, err := s.summarizer.Summarize(ctx, tres.Text, summarizer.Options{
		Strategy:          policy.ParseStrategy(c.PostForm("strategy")),
		Quality:           c.PostForm("quality"),
		CustomInstruction: c.PostForm("custom_instruction"),
	})
	if err != nil {
		s.logger.Error(ctx, "Audio processing failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Audio processing failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"transcript":         tres.Text,
		"summary":            sres.Summary,
		"language":           tres.Language,
		"language_name":      tres.LanguageName,
		"word_count":         tres.WordCount,
		"summary_word_count": sres.SummaryWords,
		"compression":        sres.CompressionPercent,
		"strategy":           sres.Strategy,
		"quality":            sres.Quality,
		"filename":           original,
	})
}

func (s *Server) handleProcessMeeting(c *gin.Context) {
	path, original, ok := s.saveUpload(c)
	if !ok {
		return
	}
	defer os.Remove(path)

	ctx := c.Request.Context()
	meetingType := c.PostForm("meeting_type")
	if meetingType == "" {
		meetingType = "general"
	}
	s.logger.Info(ctx, "Meeting processing started: %s (type=%s)", original, meetingType)

	tres, err := s.transcriber.Transcribe(ctx, path)
	if err != nil {
		s.logger.Error(ctx, "Meeting processing failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Meeting processing failed", err.Error())
		return
	}

	sres, err := s.summarizer.SummarizeMeeting(ctx, tres.Text)
	if err != nil {
		s.logger.Error(ctx, "Meeting processing failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Meeting processing failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"transcript":         tres.Text,
		"summary":            sres.Summary,
		"language":           tres.Language,
		"language_name":      tres.LanguageName,
		"word_count":         tres.WordCount,
		"summary_word_count": sres.SummaryWords,
		"compression":        sres.CompressionPercent,
		"meeting_type":       meetingType,
		"filename":           original,
	})
}

func (s *Server) handlePreload(c *gin.Context) {
	if err := s.registry.Preload(c.Request.Context()); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to preload models", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Models preloaded successfully",
	})
}
