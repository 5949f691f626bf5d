package report

import (
	"regexp"
	"strings"
	"time"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName    = "Calibri"
	fontSize    = 11
	headerSize  = 12
	signoffLine = "Sincerely,"
)

var reBold = regexp.MustCompile(`\*\*(.+?)\*\*`)

// WriteDocx renders the Report into a styled Word document: date line,
// opening paragraph, topic sections with bold headers and indented
// bullets, closing paragraph and signature. Empty framing paragraphs
// are omitted, not rendered blank.
func WriteDocx(r *Report, date time.Time, author, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), date.Format("January 2, 2006"), false, fontSize)

	if r.Opening != "" {
		doc.AddParagraph("")
		addRichText(doc.AddParagraph(""), r.Opening)
	}

	for _, sec := range r.Sections {
		doc.AddParagraph("")
		if sec.Header != "" {
			addStyledRun(doc.AddParagraph(""), sec.Header, true, headerSize)
		}
		for _, block := range sec.Blocks {
			switch block.Kind {
			case KindBullets:
				for _, item := range block.Items {
					addRichText(doc.AddParagraph(""), "• "+item)
				}
			default:
				addRichText(doc.AddParagraph(""), block.Text)
			}
		}
	}

	if r.Closing != "" {
		doc.AddParagraph("")
		addRichText(doc.AddParagraph(""), r.Closing)
	}

	doc.AddParagraph("")
	addStyledRun(doc.AddParagraph(""), signoffLine, false, fontSize)
	if author != "" {
		addStyledRun(doc.AddParagraph(""), author, false, fontSize)
	}

	return doc.SaveTo(outputPath)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(cleanMarkdownInline(text)).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

// addRichText renders **bold** spans as bold runs and everything else
// as plain runs.
func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanMarkdownInline(part)).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(cleanMarkdownInline(matches[i][1])).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
