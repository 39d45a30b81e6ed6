package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestKeyByChatUserOrIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = net.JoinHostPort("203.0.113.9", "12345")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	// IP fallback when no identity was recorded.
	key := KeyByChatUserOrIP()(c)
	if !strings.HasPrefix(key, "ip:") || !strings.Contains(key, "203.0.113.9") {
		t.Fatalf("expected ip-based key; got %q", key)
	}

	// Prefer the chat name when present.
	c.Set(chatUserKey, "Ana")
	if key2 := KeyByChatUserOrIP()(c); key2 != "user:Ana" {
		t.Fatalf("expected user-based key; got %q", key2)
	}
}

func TestNewRateLimiter_BurstCoercionAndReuse(t *testing.T) {
	rl := NewRateLimiter(2.0, 0, KeyByChatUserOrIP()) // burst<=0 coerced to 1
	if rl.burst != 1 {
		t.Fatalf("burst coercion failed, got %d", rl.burst)
	}

	lim := rl.getVisitor("k1")
	if lim == nil {
		t.Fatalf("expected limiter")
	}
	if got := rl.getVisitor("k1"); got != lim {
		t.Fatalf("expected same limiter instance to be reused")
	}
}

func TestRateLimiter_getVisitor_GC(t *testing.T) {
	rl := NewRateLimiter(1.0, 1, KeyByChatUserOrIP())
	rl.ttl = 0 // evict anything not touched in this very lookup

	rl.getVisitor("stale")
	// Push the lookup counter past the cleanup threshold.
	rl.cleanupN = 4999
	rl.getVisitor("fresh")

	rl.mu.Lock()
	_, staleAlive := rl.visitors["stale"]
	_, freshAlive := rl.visitors["fresh"]
	rl.mu.Unlock()
	if staleAlive {
		t.Fatalf("expected stale bucket to be evicted")
	}
	if !freshAlive {
		t.Fatalf("expected fresh bucket to survive")
	}
}

func TestRateLimiter_Handler429(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(0.0001, 1, KeyByChatUserOrIP()) // one request, then dry

	r := gin.New()
	r.Use(RequestID())
	r.Use(rl.Handler())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	hit := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.RemoteAddr = "203.0.113.7:1000"
		r.ServeHTTP(w, req)
		return w
	}

	if w := hit(); w.Code != http.StatusOK {
		t.Fatalf("first request = %d, want 200", w.Code)
	}
	w := hit()
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request = %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") != "1" {
		t.Fatalf("missing Retry-After header")
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["code"] != "rate_limited" {
		t.Fatalf("unexpected body: %v", body)
	}

	// A different identity gets its own bucket.
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/x", nil)
	req2.RemoteAddr = "203.0.113.8:1000"
	req2.Header.Set(HeaderChatUser, "Ben")
	// Identify() is not installed here, so the key falls back to the new IP.
	r.ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Fatalf("separate bucket = %d, want 200", w2.Code)
	}
}
