package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/reqgen/audiodoc/internal/document"
	"github.com/reqgen/audiodoc/internal/extractor"
	"github.com/reqgen/audiodoc/internal/summarizer"
)

// Process orchestrates the batch pipeline for one audio file: transcribe,
// summarize, extract structured info, render the requirements document and
// archive the source audio.
func (p *implProcessor) Process(ctx context.Context, audioPath string) error {
	startTime := time.Now()
	baseName := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting audio processing: %s", audioPath)
	p.logger.Info(ctx, "========================================")

	tres, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}

	sres, err := p.summarizer.Summarize(ctx, tres.Text, summarizer.Options{})
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	info := extractor.Extract(sres.Summary)
	info.Merge(extractor.Extract(tres.Text))

	doc, err := p.assembler.Assemble(document.TypeBRD, sres.Summary, info, map[string]string{
		"project_name": baseName,
	})
	if err != nil {
		return fmt.Errorf("assemble document: %w", err)
	}

	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	txtPath := filepath.Join(p.cfg.Paths.Output, doc.Filename)
	if err := os.WriteFile(txtPath, []byte(doc.Content), 0644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	docxPath := strings.TrimSuffix(txtPath, ".txt") + ".docx"
	if err := document.SaveDocx(doc, docxPath); err != nil {
		p.logger.Warn(ctx, "Failed to write DOCX: %v", err)
	}

	transcriptPath := filepath.Join(p.cfg.Paths.Output, baseName+"_transcript.txt")
	if err := p.writeTranscript(transcriptPath, tres.Text, tres.LanguageName, sres.Summary); err != nil {
		p.logger.Warn(ctx, "Failed to write transcript: %v", err)
	}

	if err := p.moveToArchived(ctx, audioPath); err != nil {
		p.logger.Warn(ctx, "Failed to move audio to archived folder: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Language: %s, %d words -> %d words", tres.LanguageName, tres.WordCount, sres.SummaryWords)
	p.logger.Info(ctx, "Output document: %s", txtPath)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return nil
}

func (p *implProcessor) writeTranscript(path, transcript, languageName, summary string) error {
	var sb strings.Builder
	sb.WriteString("Language: " + languageName + "\n\n")
	sb.WriteString("TRANSCRIPT\n----------\n")
	sb.WriteString(transcript + "\n\n")
	sb.WriteString("SUMMARY\n-------\n")
	sb.WriteString(summary + "\n")
	return os.WriteFile(path, []byte(sb.String()), 0644)
}

// moveToArchived moves processed audio out of the input folder so the
// watcher never picks it up twice.
func (p *implProcessor) moveToArchived(ctx context.Context, audioPath string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(audioPath))
	p.logger.Info(ctx, "Archiving: %s -> %s", audioPath, destPath)

	if err := os.Rename(audioPath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}
