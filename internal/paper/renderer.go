// Package paper lays out a model reply as a printable exam paper.
package paper

import (
	"bytes"
	"fmt"
	"strings"

	"exampaper/internal/model"
)

const (
	FileName    = "Model_Question_Paper.pdf"
	ContentType = "application/pdf"
)

// Renderer turns reply text into a PDF exam paper.
type Renderer interface {
	Render(reply string) (*model.RenderedPaper, error)
}

// Option configures a Renderer.
type Option func(*renderer)

// WithCanvas replaces the canvas factory. Each Render call gets a fresh canvas.
func WithCanvas(newCanvas func() Canvas) Option {
	return func(r *renderer) {
		r.newCanvas = newCanvas
	}
}

type renderer struct {
	newCanvas func() Canvas
}

// NewRenderer returns a Renderer drawing onto fpdf canvases. It holds no per-call state.
func NewRenderer(opts ...Option) Renderer {
	r := &renderer{newCanvas: NewFPDFCanvas}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws the letterhead and then every reply line, one per LineHeight, starting a new
// page whenever the cursor has passed the bottom margin. Long lines are not wrapped.
func (r *renderer) Render(reply string) (*model.RenderedPaper, error) {
	c := r.newCanvas()

	for _, h := range Letterhead {
		c.SetFont(h.Font)
		c.DrawString(LeftMargin, h.Y, h.Text)
	}

	c.SetFont(BodyFont)
	pages := 1
	y := BodyTop
	for _, line := range SplitLines(reply) {
		if y > PageHeight-BottomMargin {
			c.ShowPage()
			c.SetFont(BodyFont)
			pages++
			y = TopMargin
		}
		c.DrawString(LeftMargin, y, line)
		y += LineHeight
	}

	var buf bytes.Buffer
	if err := c.Save(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}

	return &model.RenderedPaper{
		Filename:    FileName,
		ContentType: ContentType,
		Pages:       pages,
		Body:        bytes.NewReader(buf.Bytes()),
	}, nil
}

// SplitLines splits text on line breaks. CRLF and lone CR count as a single break.
// An empty string yields one empty line.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
