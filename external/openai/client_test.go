package openai

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/platform/logging"
)

func TestClient_Generate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("authorization"); got != "Bearer sk-test" {
			t.Errorf("unexpected authorization header: %q", got)
		}
		body, _ := io.ReadAll(r.Body)
		var req chatRequest
		if err := sonic.Unmarshal(body, &req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Model != DefaultModel || len(req.Messages) != 1 || req.Messages[0].Role != "user" || req.Messages[0].Content != "recap" {
			t.Errorf("unexpected request: %+v", req)
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  Caps win 3-2.\n"}}]}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL + "/v1",
		APIKey:     "sk-test",
		Logger:     logging.NewNop(),
	})
	text, err := client.Generate(context.Background(), "recap")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if text != "Caps win 3-2." {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestClient_GenerateErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("authorization"), "empty") {
			_, _ = w.Write([]byte(`{"choices":[]}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
	}))
	t.Cleanup(server.Close)

	newClient := func(key string) *Client {
		return NewClient(ClientConfig{HTTPClient: server.Client(), BaseURL: server.URL, APIKey: key, Logger: logging.NewNop()})
	}

	_, err := newClient("bad").Generate(context.Background(), "x")
	if err == nil || !strings.Contains(err.Error(), "Incorrect API key provided") {
		t.Fatalf("expected provider error message, got %v", err)
	}

	_, err = newClient("empty").Generate(context.Background(), "x")
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Fatalf("expected empty completion, got %v", err)
	}

	_, err = newClient("").Generate(context.Background(), "x")
	if err == nil {
		t.Fatalf("expected missing key error")
	}
}
