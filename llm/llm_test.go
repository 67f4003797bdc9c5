package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGeminiClient_Generate(t *testing.T) {
	var gotPath, gotKey, gotPrompt string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")

		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		gotPrompt = req.Contents[0].Parts[0].Text

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Build an "},{"text":"emergency fund."}]}}]}`))
	}))
	defer srv.Close()

	client, err := NewGeminiClient(Config{APIKey: "k", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text, err := client.Generate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if text != "Build an emergency fund." {
		t.Errorf("unexpected text %q", text)
	}
	if gotPath != "/models/gemini-1.5-flash:generateContent" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotKey != "k" || gotPrompt != "hello" {
		t.Errorf("unexpected key %q or prompt %q", gotKey, gotPrompt)
	}
}

func TestGeminiClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client, _ := NewGeminiClient(Config{APIKey: "k", BaseURL: srv.URL})

	_, err := client.Generate(context.Background(), "hello")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", apiErr.StatusCode)
	}
}

func TestGeminiClient_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	client, _ := NewGeminiClient(Config{APIKey: "k", BaseURL: srv.URL})

	if _, err := client.Generate(context.Background(), "hello"); !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestOpenAIClient_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer secret" {
			t.Errorf("missing bearer token")
		}

		var req openAIRequest
		json.NewDecoder(r.Body).Decode(&req)
		if len(req.Messages) != 2 || req.Messages[1].Content != "how much should I save?" {
			t.Errorf("unexpected messages %+v", req.Messages)
		}

		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Twenty percent."}}]}`))
	}))
	defer srv.Close()

	client, err := NewOpenAIClient(Config{APIKey: "secret", BaseURL: srv.URL + "/"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text, err := client.Generate(context.Background(), "how much should I save?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Twenty percent." {
		t.Errorf("unexpected text %q", text)
	}
}

func TestNew(t *testing.T) {
	if _, err := New(Config{Provider: "gemini"}); !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("expected ErrNoAPIKey, got %v", err)
	}

	if _, err := New(Config{Provider: "mistral", APIKey: "k"}); err == nil {
		t.Errorf("expected error for unknown provider")
	}

	gen, err := New(Config{Provider: "openai", APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.Name() != ProviderOpenAI {
		t.Errorf("expected openai, got %s", gen.Name())
	}
}
