// Package llm sends composed prompts to a chat model service.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"exampaper/internal/config"
)

var (
	// ErrMalformedResponse marks a reply body that could not be decoded as JSON.
	ErrMalformedResponse = errors.New("malformed model response")
	ErrUnexpectedStatus  = errors.New("unexpected status from model service")
	ErrUnknownProvider   = errors.New("unknown llm provider")
)

const RoleUser = "user"

// Message is a single chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is one non-streaming chat completion call.
type ChatRequest struct {
	Model    string
	Messages []Message
}

// ChatResult is a decoded reply. HasContent is false when the document is valid JSON but the
// generated-text field is absent.
type ChatResult struct {
	Raw        json.RawMessage
	Content    string
	HasContent bool
}

// Backend talks to one kind of chat service.
// Chat returns an error wrapping ErrMalformedResponse when the body is not JSON; any other
// error means no reply was obtained.
type Backend interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResult, error)
	Ping(ctx context.Context) error
}

// NewBackend builds the backend named by cfg.Provider.
func NewBackend(cfg config.LLMConfig, client *http.Client) (Backend, error) {
	switch cfg.Provider {
	case "", "ollama":
		return NewOllama(cfg.BaseURL, client), nil
	case "openai":
		return NewOpenAI(cfg.BaseURL, cfg.APIKey, client), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
