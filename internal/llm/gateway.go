package llm

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"exampaper/internal/model"
)

var tracer = otel.Tracer("exampaper/internal/llm")

// Warner receives the user-facing warning for a failed call.
type Warner func(ctx context.Context, msg string)

// Gateway submits one prompt per call and never returns an error: failures come back as a
// model.Reply carrying a FailureKind and the matching sentinel text.
type Gateway interface {
	Generate(ctx context.Context, prompt string) model.Reply
	Ping(ctx context.Context) error
}

// Option configures a Gateway.
type Option func(*gateway)

// WithTimeout bounds each Generate call. Zero leaves only the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(g *gateway) {
		g.timeout = d
	}
}

// WithWarner replaces the default warning sink (slog at WARN).
func WithWarner(w Warner) Option {
	return func(g *gateway) {
		g.warn = w
	}
}

type gateway struct {
	backend Backend
	model   string
	timeout time.Duration
	warn    Warner
}

// NewGateway returns a Gateway that asks modelName on backend.
func NewGateway(backend Backend, modelName string, opts ...Option) Gateway {
	g := &gateway{
		backend: backend,
		model:   modelName,
		warn: func(ctx context.Context, msg string) {
			slog.WarnContext(ctx, msg, "component", "llm")
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate sends prompt as the only user message. It makes exactly one attempt.
func (g *gateway) Generate(ctx context.Context, prompt string) model.Reply {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	ctx, span := tracer.Start(ctx, "llm.chat",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("llm.model", g.model), attribute.Int("llm.prompt_length", len(prompt))),
	)
	defer span.End()

	res, err := g.backend.Chat(ctx, ChatRequest{
		Model:    g.model,
		Messages: []Message{{Role: RoleUser, Content: prompt}},
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "chat failed")
		if errors.Is(err, ErrMalformedResponse) {
			return model.FailedReply(model.FailureParse, nil)
		}
		msg := "An error occurred: " + err.Error()
		g.warn(ctx, msg)
		reply := model.FailedReply(model.FailureUnavailable, nil)
		reply.Warning = msg
		return reply
	}

	if !res.HasContent {
		span.SetStatus(codes.Error, "no content field")
		return model.FailedReply(model.FailureInvalidStructure, res.Raw)
	}
	return model.Reply{Text: strings.TrimSpace(res.Content), Raw: res.Raw}
}

func (g *gateway) Ping(ctx context.Context) error {
	return g.backend.Ping(ctx)
}
