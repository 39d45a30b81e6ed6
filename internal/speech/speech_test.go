package speech

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_Synthesize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("tl"); got != "es" {
			t.Errorf("tl = %q, want es", got)
		}
		if got := r.URL.Query().Get("q"); got != "Hola" {
			t.Errorf("q = %q", got)
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("ID3mp3data"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	got, err := c.Synthesize(context.Background(), "Hola", "es")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if string(got) != "ID3mp3data" {
		t.Fatalf("Synthesize = %q", got)
	}
}

func TestClient_Synthesize_Errors(t *testing.T) {
	t.Run("http status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "blocked", http.StatusForbidden)
		}))
		defer srv.Close()
		c := NewClient(srv.URL, time.Second)
		if _, err := c.Synthesize(context.Background(), "Hola", "es"); err == nil {
			t.Fatal("expected error on non-200 status")
		}
	})

	t.Run("empty body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()
		c := NewClient(srv.URL, time.Second)
		if _, err := c.Synthesize(context.Background(), "Hola", "es"); err == nil {
			t.Fatal("expected error for empty audio")
		}
	})

	t.Run("empty text", func(t *testing.T) {
		c := NewClient("http://unused", time.Second)
		if _, err := c.Synthesize(context.Background(), "  ", "es"); err == nil {
			t.Fatal("expected error for empty text")
		}
	})

	t.Run("missing lang", func(t *testing.T) {
		c := NewClient("http://unused", time.Second)
		if _, err := c.Synthesize(context.Background(), "Hola", ""); err == nil {
			t.Fatal("expected error for missing language")
		}
	})
}
