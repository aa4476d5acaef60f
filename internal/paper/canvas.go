package paper

import (
	"io"

	"github.com/go-pdf/fpdf"
)

// Font selects a typeface for subsequent DrawString calls.
type Font struct {
	Family string
	Bold   bool
	Size   float64
}

// Canvas is the drawing surface the renderer lays text onto.
// Coordinates are in points with the origin at the top-left corner; y is the text baseline.
type Canvas interface {
	SetFont(f Font)
	DrawString(x, y float64, text string)
	// ShowPage closes the current page and starts a new blank one.
	ShowPage()
	// Save finalises the document and writes it to w.
	Save(w io.Writer) error
}

type fpdfCanvas struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
}

// NewFPDFCanvas returns a US Letter canvas backed by fpdf with one open page.
// Text is converted from UTF-8 to the cp1252 encoding of the core fonts.
func NewFPDFCanvas() Canvas {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("exampaper", true)
	pdf.SetTitle("Model Question Paper", true)
	pdf.AddPage()
	return &fpdfCanvas{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (c *fpdfCanvas) SetFont(f Font) {
	style := ""
	if f.Bold {
		style = "B"
	}
	c.pdf.SetFont(f.Family, style, f.Size)
}

func (c *fpdfCanvas) DrawString(x, y float64, text string) {
	c.pdf.Text(x, y, c.translate(text))
}

func (c *fpdfCanvas) ShowPage() {
	c.pdf.AddPage()
}

func (c *fpdfCanvas) Save(w io.Writer) error {
	return c.pdf.Output(w)
}
