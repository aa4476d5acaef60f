package loader

import (
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

type ledongthucDocument struct {
	r *pdf.Reader
}

func openPDF(r io.ReaderAt, size int64) (doc Document, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("open pdf: %v", rec)
		}
	}()
	pr, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, err
	}
	return &ledongthucDocument{r: pr}, nil
}

func (d *ledongthucDocument) NumPages() int {
	return d.r.NumPage()
}

func (d *ledongthucDocument) PageText(n int) (string, error) {
	p := d.r.Page(n)
	if p.V.IsNull() {
		return "", nil
	}
	fonts := make(map[string]*pdf.Font)
	for _, name := range p.Fonts() {
		if _, ok := fonts[name]; !ok {
			f := p.Font(name)
			fonts[name] = &f
		}
	}
	return p.GetPlainText(fonts)
}
