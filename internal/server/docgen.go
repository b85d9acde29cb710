package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/reqgen/audiodoc/internal/document"
	"github.com/reqgen/audiodoc/internal/extractor"
)

type generateDocumentRequest struct {
	Text         string            `json:"text"`
	DocumentType string            `json:"document_type"`
	Metadata     map[string]string `json:"metadata"`
}

// handleGenerateDocument renders a BRD or Purchase Order from free text.
// The text is condensed first, then structured info is extracted from both
// the condensed and raw text so nothing the summary dropped is lost.
func (s *Server) handleGenerateDocument(c *gin.Context) {
	var req generateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "No text provided", "")
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		respondError(c, http.StatusBadRequest, "Text cannot be empty", "")
		return
	}

	if req.DocumentType == "" {
		req.DocumentType = string(document.TypeBRD)
	}
	docType, err := document.ParseType(req.DocumentType)
	if err != nil {
		respondError(c, http.StatusBadRequest,
			"Invalid document type: "+req.DocumentType+`. Use "brd" or "po"`, "")
		return
	}

	ctx := c.Request.Context()
	s.logger.Info(ctx, "Generating %s document", strings.ToUpper(string(docType)))

	summary, err := s.summarizer.SummarizeForExtraction(ctx, text)
	if err != nil {
		s.logger.Error(ctx, "Document generation failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Document generation failed", err.Error())
		return
	}

	info := extractor.Extract(summary)
	info.Merge(extractor.Extract(text))

	doc, err := s.assembler.Assemble(docType, summary, info, req.Metadata)
	if err != nil {
		s.logger.Error(ctx, "Document generation failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Document generation failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"document":      doc.Content,
		"document_type": doc.Type,
		"filename":      doc.Filename,
		"word_count":    doc.WordCount(),
	})
}
