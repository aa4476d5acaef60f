package model

import (
	"bytes"
	"io"
)

// UploadedDocument is the raw upload as received from the client.
// It is consumed once by the loader and not retained.
type UploadedDocument struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ExtractedText is the concatenated plain text of every page, in page order.
type ExtractedText struct {
	Text  string `json:"text"`
	Pages int    `json:"pages"`
}

// RenderedPaper is a finished exam paper ready for download.
// Body is positioned at offset 0.
type RenderedPaper struct {
	Filename    string
	ContentType string
	Pages       int
	Body        *bytes.Reader
}
