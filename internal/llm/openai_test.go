package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exampaper/internal/model"
)

func openAIServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/chat/completions":
			var req struct {
				Model    string    `json:"model"`
				Messages []Message `json:"messages"`
			}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "llama3", req.Model)
			assert.Equal(t, []Message{{Role: RoleUser, Content: "hi"}}, req.Messages)
		case "/v1/models":
		default:
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAI_Chat(t *testing.T) {
	ctx := context.Background()
	req := ChatRequest{Model: "llama3", Messages: []Message{{Role: RoleUser, Content: "hi"}}}

	t.Run("success", func(t *testing.T) {
		srv := openAIServer(t, http.StatusOK, `{"id":"c1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"Module 1"},"finish_reason":"stop"}]}`)
		res, err := NewOpenAI(srv.URL+"/v1", "", nil).Chat(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.HasContent)
		assert.Equal(t, "Module 1", res.Content)
		assert.Contains(t, string(res.Raw), `"Module 1"`)
	})

	t.Run("no choices", func(t *testing.T) {
		srv := openAIServer(t, http.StatusOK, `{"id":"c1","choices":[]}`)
		res, err := NewOpenAI(srv.URL+"/v1", "", nil).Chat(ctx, req)
		require.NoError(t, err)
		assert.False(t, res.HasContent)
	})

	t.Run("choices of the wrong type", func(t *testing.T) {
		srv := openAIServer(t, http.StatusOK, `{"choices":"oops"}`)
		res, err := NewOpenAI(srv.URL+"/v1", "", nil).Chat(ctx, req)
		require.NoError(t, err)
		assert.False(t, res.HasContent)
		assert.JSONEq(t, `{"choices":"oops"}`, string(res.Raw))
	})

	t.Run("message without content", func(t *testing.T) {
		srv := openAIServer(t, http.StatusOK, `{"choices":[{"message":{}}]}`)
		res, err := NewOpenAI(srv.URL+"/v1", "", nil).Chat(ctx, req)
		require.NoError(t, err)
		assert.False(t, res.HasContent)
		assert.Empty(t, res.Content)
	})

	t.Run("empty content is still content", func(t *testing.T) {
		srv := openAIServer(t, http.StatusOK, `{"choices":[{"message":{"role":"assistant","content":""}}]}`)
		res, err := NewOpenAI(srv.URL+"/v1", "", nil).Chat(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.HasContent)
	})

	t.Run("empty body", func(t *testing.T) {
		srv := openAIServer(t, http.StatusOK, ``)
		_, err := NewOpenAI(srv.URL+"/v1", "", nil).Chat(ctx, req)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("keeps the caller's transport", func(t *testing.T) {
		srv := openAIServer(t, http.StatusOK, `{"choices":[{"message":{"content":"ok"}}]}`)
		var calls int
		client := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			calls++
			return http.DefaultTransport.RoundTrip(r)
		})}
		res, err := NewOpenAI(srv.URL+"/v1", "", client).Chat(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "ok", res.Content)
		assert.Equal(t, 1, calls)
	})

	t.Run("malformed json", func(t *testing.T) {
		srv := openAIServer(t, http.StatusOK, `{"choices":[`)
		_, err := NewOpenAI(srv.URL+"/v1", "", nil).Chat(ctx, req)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("service error", func(t *testing.T) {
		srv := openAIServer(t, http.StatusServiceUnavailable, `{"error":{"message":"overloaded","type":"server_error"}}`)
		_, err := NewOpenAI(srv.URL+"/v1", "", nil).Chat(ctx, req)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrMalformedResponse)
	})
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestOpenAI_GatewayOutcomes(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		want      model.FailureKind
		wantWarns int
	}{
		{name: "ok", body: `{"choices":[{"message":{"content":" Module 1 "}}]}`, want: model.FailureNone},
		{name: "wrong shape", body: `{"choices":"oops"}`, want: model.FailureInvalidStructure},
		{name: "missing content", body: `{"choices":[{"message":{}}]}`, want: model.FailureInvalidStructure},
		{name: "empty body", body: ``, want: model.FailureParse},
		{name: "truncated", body: `{"choices":[`, want: model.FailureParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := openAIServer(t, http.StatusOK, tt.body)
			var warns int
			gw := NewGateway(NewOpenAI(srv.URL+"/v1", "", nil), "llama3",
				WithWarner(func(context.Context, string) { warns++ }))

			reply := gw.Generate(context.Background(), "hi")
			assert.Equal(t, tt.want, reply.Failure)
			assert.Equal(t, tt.wantWarns, warns)
			if tt.want == model.FailureNone {
				assert.Equal(t, "Module 1", reply.Text)
			} else {
				assert.Equal(t, tt.want.Sentinel(), reply.Text)
			}
		})
	}
}

func TestOpenAI_Ping(t *testing.T) {
	srv := openAIServer(t, http.StatusOK, `{"object":"list","data":[]}`)
	assert.NoError(t, NewOpenAI(srv.URL+"/v1", "", nil).Ping(context.Background()))
}
