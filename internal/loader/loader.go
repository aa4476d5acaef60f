// Package loader pulls plain text out of uploaded PDF documents.
package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"exampaper/internal/model"
)

var (
	ErrReaderNil       = errors.New("reader is nil")
	ErrInvalidDocument = errors.New("invalid pdf document")
)

// headerWindow is how far into the file readers look for the %PDF- marker; bytes before it are junk
// prepended by mail gateways or download wrappers.
const headerWindow = 1024

var pdfHeader = []byte("%PDF-")

// HasHeader reports whether the %PDF- marker starts within the first 1024 bytes of head.
func HasHeader(head []byte) bool {
	return headerOffset(head) >= 0
}

func headerOffset(data []byte) int {
	if len(data) > headerWindow+len(pdfHeader) {
		data = data[:headerWindow+len(pdfHeader)]
	}
	return bytes.Index(data, pdfHeader)
}

func init() {
	api.DisableConfigDir()
}

// Document is a page-addressable view of an opened PDF. Pages are numbered from 1.
type Document interface {
	NumPages() int
	PageText(n int) (string, error)
}

// Opener opens raw PDF bytes as a Document.
type Opener func(r io.ReaderAt, size int64) (Document, error)

// Loader extracts the text of every page of a PDF, in page order.
type Loader interface {
	Load(ctx context.Context, r io.Reader) (*model.ExtractedText, error)
}

// Option configures a Loader.
type Option func(*pdfLoader)

// WithOpener replaces the PDF backend.
func WithOpener(open Opener) Option {
	return func(l *pdfLoader) {
		l.open = open
	}
}

// WithoutValidation skips the structural check done before extraction.
func WithoutValidation() Option {
	return func(l *pdfLoader) {
		l.validate = false
	}
}

type pdfLoader struct {
	open     Opener
	validate bool
}

// NewLoader returns a Loader that validates documents with pdfcpu and extracts text with ledongthuc/pdf.
func NewLoader(opts ...Option) Loader {
	l := &pdfLoader{open: openPDF, validate: true}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads r fully, then appends each page's text to the result from the first page to the last.
// Any fault is returned wrapped in ErrInvalidDocument; nothing is retried or skipped.
func (l *pdfLoader) Load(ctx context.Context, r io.Reader) (*model.ExtractedText, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty upload", ErrInvalidDocument)
	}

	// Offsets inside such files are relative to the header, so the junk is dropped.
	if off := headerOffset(data); off > 0 {
		data = data[off:]
	}

	if l.validate {
		if err := validate(data); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
	}

	doc, err := l.open(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	n := doc.NumPages()
	var sb strings.Builder
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, err := pageText(doc, i)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", ErrInvalidDocument, i, err)
		}
		sb.WriteString(text)
	}

	return &model.ExtractedText{Text: sb.String(), Pages: n}, nil
}

// pageText converts panics from malformed content streams into errors.
func pageText(doc Document, n int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed page content: %v", r)
		}
	}()
	return doc.PageText(n)
}

func validate(data []byte) error {
	conf := pdfmodel.NewDefaultConfiguration()
	conf.ValidationMode = pdfmodel.ValidationRelaxed
	return api.Validate(bytes.NewReader(data), conf)
}
