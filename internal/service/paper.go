package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"exampaper/internal/llm"
	"exampaper/internal/loader"
	"exampaper/internal/model"
	"exampaper/internal/paper"
	"exampaper/internal/prompt"
	"exampaper/internal/storage"
)

var (
	ErrUnsupportedMediaType = errors.New("only PDF documents are accepted")
	ErrKeyRequired          = errors.New("object key is required")
	ErrStorageDisabled      = errors.New("object storage is not configured")
)

const pdfMIME = "application/pdf"

// sniffLen matches the amount of content mimetype inspects by default.
const sniffLen = 3072

var tracer = otel.Tracer("exampaper/internal/service")

// Generation is the result of running a prompt through the model.
type Generation struct {
	PromptRequest string `json:"prompt_request"`
	model.Reply
}

// PaperService runs the upload → text → prompt → reply → paper workflow.
// Every call is independent; nothing is kept between calls.
type PaperService interface {
	// Extract checks that the upload is a PDF and returns the text of all its pages.
	Extract(ctx context.Context, doc model.UploadedDocument) (*model.ExtractedText, error)

	// ExtractObject is Extract for a PDF already sitting in object storage.
	ExtractObject(ctx context.Context, key string) (*model.ExtractedText, error)

	// Generate composes instruction and text and asks the model once.
	Generate(ctx context.Context, instruction, text string) *Generation

	// Render lays the reply out as an exam paper.
	Render(ctx context.Context, reply string) (*model.RenderedPaper, error)

	DefaultInstruction() string

	// Ping checks that the model service is reachable.
	Ping(ctx context.Context) error
}

// Option configures the service.
type Option func(*paperService)

// WithMetrics records model outcomes and page counts.
func WithMetrics(m *Metrics) Option {
	return func(s *paperService) {
		s.metrics = m
	}
}

// WithStorage enables ExtractObject.
func WithStorage(store storage.Storage) Option {
	return func(s *paperService) {
		s.store = store
	}
}

type paperService struct {
	loader   loader.Loader
	gateway  llm.Gateway
	renderer paper.Renderer
	store    storage.Storage
	metrics  *Metrics
}

// NewPaperService constructs a new PaperService.
func NewPaperService(ldr loader.Loader, gw llm.Gateway, rnd paper.Renderer, opts ...Option) PaperService {
	s := &paperService{loader: ldr, gateway: gw, renderer: rnd}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *paperService) Extract(ctx context.Context, doc model.UploadedDocument) (*model.ExtractedText, error) {
	ctx, span := tracer.Start(ctx, "PaperService.Extract")
	defer span.End()

	if doc.Body == nil {
		return nil, loader.ErrReaderNil
	}
	if !acceptedDeclaredType(doc.ContentType) {
		return nil, fmt.Errorf("%w: declared %s", ErrUnsupportedMediaType, doc.ContentType)
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(doc.Body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]
	if mt := mimetype.Detect(head); !mt.Is(pdfMIME) && !loader.HasHeader(head) {
		return nil, fmt.Errorf("%w: detected %s", ErrUnsupportedMediaType, mt.String())
	}

	text, err := s.loader.Load(ctx, io.MultiReader(bytes.NewReader(head), doc.Body))
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("document.pages", text.Pages), attribute.Int("document.text_length", len(text.Text)))
	slog.InfoContext(ctx, "document extracted", "filename", doc.Filename, "pages", text.Pages, "chars", len(text.Text))
	return text, nil
}

func (s *paperService) ExtractObject(ctx context.Context, key string) (*model.ExtractedText, error) {
	if s.store == nil {
		return nil, ErrStorageDisabled
	}
	if strings.TrimSpace(key) == "" {
		return nil, ErrKeyRequired
	}

	rc, info, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get object: %w", err)
	}
	defer rc.Close()

	return s.Extract(ctx, model.UploadedDocument{
		Filename:    key,
		ContentType: info.ContentType,
		Size:        info.Size,
		Body:        rc,
	})
}

func (s *paperService) Generate(ctx context.Context, instruction, text string) *Generation {
	ctx, span := tracer.Start(ctx, "PaperService.Generate")
	defer span.End()

	req := prompt.Compose(instruction, text)
	reply := s.gateway.Generate(ctx, req)

	outcome := "ok"
	if !reply.OK() {
		outcome = string(reply.Failure)
	}
	span.SetAttributes(attribute.Int("prompt.length", len(req)), attribute.String("reply.outcome", outcome))
	if s.metrics != nil {
		s.metrics.replies.WithLabelValues(outcome).Inc()
	}
	slog.InfoContext(ctx, "model replied", "outcome", outcome, "prompt_chars", len(req), "reply_chars", len(reply.Text))

	return &Generation{PromptRequest: req, Reply: reply}
}

func (s *paperService) Render(ctx context.Context, reply string) (*model.RenderedPaper, error) {
	_, span := tracer.Start(ctx, "PaperService.Render")
	defer span.End()

	out, err := s.renderer.Render(reply)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("render paper: %w", err)
	}

	span.SetAttributes(attribute.Int("paper.pages", out.Pages))
	if s.metrics != nil {
		s.metrics.pages.Observe(float64(out.Pages))
	}
	return out, nil
}

func (s *paperService) DefaultInstruction() string {
	return prompt.DefaultInstruction
}

func (s *paperService) Ping(ctx context.Context) error {
	return s.gateway.Ping(ctx)
}

// acceptedDeclaredType allows an empty or generic declared type; content sniffing decides then.
func acceptedDeclaredType(ct string) bool {
	ct = strings.ToLower(strings.TrimSpace(strings.SplitN(ct, ";", 2)[0]))
	switch ct {
	case "", pdfMIME, "application/x-pdf", "application/octet-stream":
		return true
	default:
		return false
	}
}
