package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sashabaranov/go-openai"
)

// OpenAI calls any OpenAI-compatible chat completions endpoint, including Ollama's /v1.
// The generated text is read from choices[0].message.content.
type OpenAI struct {
	client *openai.Client
}

// NewOpenAI returns a backend for baseURL (e.g. http://localhost:11434/v1). An empty
// baseURL keeps the library default.
func NewOpenAI(baseURL, apiKey string, httpClient *http.Client) *OpenAI {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	// go-openai only hands back the typed struct, so the body is also captured on the way in
	// to tell an absent content field apart from an empty one.
	hc := &http.Client{}
	if httpClient != nil {
		copied := *httpClient
		hc = &copied
	}
	next := hc.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	hc.Transport = captureTransport{next: next}
	cfg.HTTPClient = hc

	return &OpenAI{client: openai.NewClientWithConfig(cfg)}
}

type rawBodyKey struct{}

// captureTransport copies the response body into the buffer stored under rawBodyKey, if any.
type captureTransport struct {
	next http.RoundTripper
}

func (t captureTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(r)
	if err != nil || resp.Body == nil {
		return resp, err
	}
	if buf, ok := r.Context().Value(rawBodyKey{}).(*bytes.Buffer); ok {
		resp.Body = teeReadCloser{Reader: io.TeeReader(resp.Body, buf), Closer: resp.Body}
	}
	return resp, nil
}

type teeReadCloser struct {
	io.Reader
	io.Closer
}

func (o *OpenAI) Chat(ctx context.Context, req ChatRequest) (*ChatResult, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	body := new(bytes.Buffer)
	resp, err := o.client.CreateChatCompletion(context.WithValue(ctx, rawBodyKey{}, body), openai.ChatCompletionRequest{
		Model:    req.Model,
		Messages: msgs,
	})
	if err != nil {
		var urlErr *url.Error
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &urlErr):
			return nil, fmt.Errorf("call chat completions api: %w", err)
		case errors.As(err, &typeErr) && json.Valid(body.Bytes()):
			// Valid JSON in the wrong shape, e.g. "choices" not being a list.
			return &ChatResult{Raw: json.RawMessage(body.Bytes())}, nil
		case errors.As(err, &syntaxErr), errors.As(err, &typeErr),
			errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		return nil, fmt.Errorf("call chat completions api: %w", err)
	}

	raw := json.RawMessage(body.Bytes())
	if len(raw) == 0 {
		if raw, err = json.Marshal(resp); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	content, ok := firstChoiceContent(doc)
	return &ChatResult{Raw: raw, Content: content, HasContent: ok}, nil
}

// firstChoiceContent reads choices[0].message.content.
func firstChoiceContent(doc any) (string, bool) {
	obj, ok := doc.(map[string]any)
	if !ok {
		return "", false
	}
	choices, ok := obj["choices"].([]any)
	if !ok || len(choices) == 0 {
		return "", false
	}
	return lookupString(choices[0], "message", "content")
}

func (o *OpenAI) Ping(ctx context.Context) error {
	_, err := o.client.ListModels(ctx)
	return err
}
