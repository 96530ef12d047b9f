package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Generator renders a folder's flashcards into a printable study sheet.
type Generator interface {
	StudySheet(data SheetData) ([]byte, error)
}

type SheetData struct {
	FolderName string
	CreatedAt  time.Time
	Cards      []Card
}

type Card struct {
	FrontText string
	BackText  string
}

type StudySheetGenerator struct{}

func NewStudySheetGenerator() *StudySheetGenerator {
	return &StudySheetGenerator{}
}

func (g *StudySheetGenerator) StudySheet(data SheetData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Flashdeck — %s", data.FolderName), true)
	pdf.SetAuthor("Flashdeck", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, data.FolderName, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	sub := fmt.Sprintf("%d cards  ·  exported %s", len(data.Cards), data.CreatedAt.Format("02.01.2006"))
	pdf.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)

	for i, card := range data.Cards {
		g.sectionTitle(pdf, fmt.Sprintf("Card %d", i+1))
		g.sideBlock(pdf, "Front", card.FrontText)
		g.sideBlock(pdf, "Back", card.BackText)
		pdf.Ln(2)
		if i < len(data.Cards)-1 {
			g.hr(pdf)
			pdf.Ln(2)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render study sheet: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *StudySheetGenerator) sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}

func (g *StudySheetGenerator) sideBlock(pdf *gofpdf.Fpdf, label, text string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(30, 6, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, text, "", "L", false)
	pdf.Ln(1)
}

func (g *StudySheetGenerator) hr(pdf *gofpdf.Fpdf) {
	x, y := pdf.GetXY()
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	pdf.SetDrawColor(180, 180, 180)
	pdf.Line(left, y, pageW-right, y)
	pdf.SetXY(x, y+2)
}
