package gemini

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ideanest/ideanest-backend/internal/config"
	"github.com/ideanest/ideanest-backend/internal/entity"
	"go.uber.org/zap"
)

func testConfig(baseURL, apiKey string) config.GeminiConnectorConfig {
	return config.GeminiConnectorConfig{
		HTTPClientConfig: config.HTTPClientConfig{
			RequestTimeout:        2 * time.Second,
			ConnTimeout:           2 * time.Second,
			KeepAlive:             2 * time.Second,
			IdleConnTimeout:       2 * time.Second,
			ResponseHeaderTimeout: 2 * time.Second,
			Url:                   baseURL,
		},
		APIKey: apiKey,
		Model:  "gemini-2.5-flash",
	}
}

func TestCompleteNotConfigured(t *testing.T) {
	c := NewConnector(testConfig("http://localhost:1", ""), zap.NewNop())

	_, err := c.Complete(context.Background(), "hello")
	if !errors.Is(err, entity.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestCompleteSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/models/gemini-2.5-flash:generateContent" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("x-goog-api-key") != "key-123" {
			t.Errorf("missing api key header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"generated text"}]}}]}`))
	}))
	defer srv.Close()

	c := NewConnector(testConfig(srv.URL, "key-123"), zap.NewNop())

	text, err := c.Complete(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Complete error: %v", err)
	}
	if text != "generated text" {
		t.Errorf("unexpected text %q", text)
	}
}

func TestCompleteFlatContentShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"text":"flat text"}}]}`))
	}))
	defer srv.Close()

	c := NewConnector(testConfig(srv.URL, "key-123"), zap.NewNop())

	text, err := c.Complete(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Complete error: %v", err)
	}
	if text != "flat text" {
		t.Errorf("unexpected text %q", text)
	}
}

func TestCompleteFailureModesCollapse(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"non-success status", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}},
		{"no candidates", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[]}`))
		}},
		{"empty content", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[{"content":{}}]}`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := NewConnector(testConfig(srv.URL, "key-123"), zap.NewNop())

			_, err := c.Complete(context.Background(), "hello")
			if !errors.Is(err, entity.ErrGenerationFailed) {
				t.Fatalf("expected ErrGenerationFailed, got %v", err)
			}
		})
	}
}

func TestIsAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"OK"}]}}]}`))
	}))
	defer srv.Close()

	if !NewConnector(testConfig(srv.URL, "key-123"), zap.NewNop()).IsAvailable(context.Background()) {
		t.Error("expected available with healthy server")
	}
	if NewConnector(testConfig(srv.URL, ""), zap.NewNop()).IsAvailable(context.Background()) {
		t.Error("expected unavailable without credential")
	}
}
