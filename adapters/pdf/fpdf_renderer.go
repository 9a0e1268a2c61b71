package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/khanhduong/smartresume/internal/application/service"
)

// A4 portrait layout in millimeters. Whenever the write cursor would
// pass bottomMargin, a new page starts and the cursor resets to
// topMargin before the current list continues.
const (
	topMargin    = 20.0
	leftMargin   = 15.0
	bottomMargin = 270.0
	lineHeight   = 7.0
)

type fpdfRenderer struct{}

func NewFpdfRenderer() service.ResumeRenderer {
	return &fpdfRenderer{}
}

func (r *fpdfRenderer) Render(doc service.ResumeDocument) ([]byte, error) {
	p := fpdf.New("P", "mm", "A4", "")
	// Pagination is handled manually against bottomMargin.
	p.SetAutoPageBreak(false, 0)
	p.AddPage()
	p.SetXY(leftMargin, topMargin)

	p.SetFont("Helvetica", "B", 18)
	writeLine(p, doc.Title, 10)

	p.SetFont("Helvetica", "", 11)
	writeLine(p, "Owner: "+doc.OwnerName, lineHeight)

	if len(doc.SummaryLines) > 0 {
		advance(p, lineHeight/2)
		p.SetFont("Helvetica", "B", 12)
		writeLine(p, "Summary:", lineHeight)
		p.SetFont("Helvetica", "", 11)
		for _, line := range doc.SummaryLines {
			writeLine(p, line, lineHeight)
		}
	}

	if len(doc.Projects) > 0 {
		advance(p, lineHeight/2)
		p.SetFont("Helvetica", "B", 12)
		writeLine(p, "Projects:", lineHeight)
		p.SetFont("Helvetica", "", 11)
		for _, proj := range doc.Projects {
			writeLine(p, fmt.Sprintf("- %s (%s)", proj.Title, proj.TechStack), lineHeight)
		}
	}

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func writeLine(p *fpdf.Fpdf, text string, height float64) {
	breakPage(p)
	p.SetX(leftMargin)
	p.CellFormat(0, height, text, "", 1, "L", false, 0, "")
}

func advance(p *fpdf.Fpdf, height float64) {
	p.SetY(p.GetY() + height)
	breakPage(p)
}

func breakPage(p *fpdf.Fpdf) {
	if p.GetY() > bottomMargin {
		p.AddPage()
		p.SetXY(leftMargin, topMargin)
	}
}
