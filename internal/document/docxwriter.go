package document

import (
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 12
)

// SaveDocx writes the generated document as a styled .docx file alongside
// the plain-text rendering. Section titles become bold headings, rule lines
// are dropped since Word sections carry their own visual weight.
func SaveDocx(g *Generated, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), g.Title, true, 16)
	doc.AddParagraph("")

	for _, s := range g.Sections {
		addStyledRun(doc.AddParagraph(""), s.Title, true, 14)

		for _, line := range strings.Split(strings.TrimRight(s.Body, "\n"), "\n") {
			p := doc.AddParagraph("")
			p.AddText(line).Font(fontName).Size(fontSize).Color("000000")
		}
		doc.AddParagraph("")
	}

	return doc.SaveTo(outputPath)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
