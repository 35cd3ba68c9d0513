package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{"EN", "en"},
		{"hi-IN", "hi"},
		{"hi_IN", "hi"},
		{" pa ", "pa"},
		{"", ""},
		{"zh-Hant-TW", "zh"},
	}

	for _, tt := range tests {
		if got := NormalizeTag(tt.in); got != tt.want {
			t.Errorf("NormalizeTag(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func newTestServer(t *testing.T, calls *int64, handler func(req translateRequest) interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(calls, 1)
		var req translateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(handler(req))
	}))
}

func translationsOf(texts []string, transform func(string) string) interface{} {
	out := translateResponse{}
	for _, q := range texts {
		out.Data.Translations = append(out.Data.Translations, struct {
			TranslatedText string `json:"translatedText"`
		}{TranslatedText: transform(q)})
	}
	return out
}

func TestTranslateOneMemoizesPerTriple(t *testing.T) {
	var calls int64
	srv := newTestServer(t, &calls, func(req translateRequest) interface{} {
		return translationsOf(req.Q, func(q string) string { return "translated " + q })
	})
	defer srv.Close()

	c := New(Config{APIKey: "k", Endpoint: srv.URL, CacheSize: 16}, srv.Client(), nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		res := c.TranslateOne(ctx, "hello", "hi", "en")
		if res.Degraded {
			t.Fatal("unexpected degraded result")
		}
		if res.Text != "translated hello" {
			t.Fatalf("Text = %q", res.Text)
		}
	}
	if n := atomic.LoadInt64(&calls); n != 1 {
		t.Errorf("provider calls = %d, want 1 (memoized)", n)
	}

	// Different target is a different memo entry.
	c.TranslateOne(ctx, "hello", "ta", "en")
	if n := atomic.LoadInt64(&calls); n != 2 {
		t.Errorf("provider calls = %d, want 2", n)
	}
}

func TestTranslateOneShortCircuits(t *testing.T) {
	var calls int64
	srv := newTestServer(t, &calls, func(req translateRequest) interface{} {
		return translationsOf(req.Q, func(q string) string { return q })
	})
	defer srv.Close()

	c := New(Config{APIKey: "k", Endpoint: srv.URL}, srv.Client(), nil)
	ctx := context.Background()

	if res := c.TranslateOne(ctx, "   ", "hi", "en"); res.Text != "   " || res.Degraded {
		t.Errorf("blank input: got %+v, want identity", res)
	}
	if res := c.TranslateOne(ctx, "hello", "en", "en"); res.Text != "hello" || res.Degraded {
		t.Errorf("source==target: got %+v, want passthrough", res)
	}
	if res := c.TranslateOne(ctx, "hello", "en-US", "EN"); res.Text != "hello" {
		t.Errorf("tag variants of same language: got %+v, want passthrough", res)
	}
	if n := atomic.LoadInt64(&calls); n != 0 {
		t.Errorf("provider calls = %d, want 0", n)
	}
}

func TestTranslateOneFailureDegradesAndIsNotCached(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		http.Error(w, `{"error":"quota"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	c := New(Config{APIKey: "k", Endpoint: srv.URL, RetryAttempts: 2, RetryBackoff: time.Millisecond}, srv.Client(), nil)

	res := c.TranslateOne(context.Background(), "hello", "hi", "en")
	if !res.Degraded || res.Text != "hello" {
		t.Fatalf("got %+v, want degraded original", res)
	}
	if n := atomic.LoadInt64(&calls); n != 3 {
		t.Errorf("provider calls = %d, want 3 (initial + 2 retries)", n)
	}

	// Failures must not poison the memo: the next call hits the provider again.
	c.TranslateOne(context.Background(), "hello", "hi", "en")
	if n := atomic.LoadInt64(&calls); n != 6 {
		t.Errorf("provider calls = %d, want 6", n)
	}
}

func TestTranslateOneRetrySucceedsOnSecondAttempt(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt64(&calls, 1) == 1 {
			http.Error(w, "upstream hiccup", http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(translationsOf([]string{"hello"}, func(q string) string { return "नमस्ते" }))
	}))
	defer srv.Close()

	c := New(Config{APIKey: "k", Endpoint: srv.URL, RetryAttempts: 1, RetryBackoff: time.Millisecond}, srv.Client(), nil)

	res := c.TranslateOne(context.Background(), "hello", "hi", "en")
	if res.Degraded || res.Text != "नमस्ते" {
		t.Errorf("got %+v, want recovered translation", res)
	}
}

func TestTranslateOneDecodesHTMLEntities(t *testing.T) {
	var calls int64
	srv := newTestServer(t, &calls, func(req translateRequest) interface{} {
		return translationsOf(req.Q, func(string) string { return "rock &amp; roll &quot;live&quot;" })
	})
	defer srv.Close()

	c := New(Config{APIKey: "k", Endpoint: srv.URL}, srv.Client(), nil)

	res := c.TranslateOne(context.Background(), "some text", "hi", "en")
	if res.Text != `rock & roll "live"` {
		t.Errorf("Text = %q, want entities decoded", res.Text)
	}
}

func TestTranslateManyBatchesInOneCall(t *testing.T) {
	var calls int64
	srv := newTestServer(t, &calls, func(req translateRequest) interface{} {
		if len(req.Q) != 3 {
			return translationsOf(nil, nil)
		}
		return translationsOf(req.Q, func(q string) string { return "hi:" + q })
	})
	defer srv.Close()

	c := New(Config{APIKey: "k", Endpoint: srv.URL}, srv.Client(), nil)

	res := c.TranslateMany(context.Background(), []string{"a", "b", "c"}, "hi", "en")
	if res.Degraded {
		t.Fatal("unexpected degraded batch")
	}
	want := []string{"hi:a", "hi:b", "hi:c"}
	for i := range want {
		if res.Texts[i] != want[i] {
			t.Errorf("Texts[%d] = %q, want %q", i, res.Texts[i], want[i])
		}
	}
	if n := atomic.LoadInt64(&calls); n != 1 {
		t.Errorf("provider calls = %d, want 1", n)
	}
}

func TestTranslateManyFailureKeepsOriginals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(Config{APIKey: "k", Endpoint: srv.URL}, srv.Client(), nil)

	texts := []string{"one", "two"}
	res := c.TranslateMany(context.Background(), texts, "hi", "en")
	if !res.Degraded {
		t.Fatal("want degraded batch")
	}
	for i := range texts {
		if res.Texts[i] != texts[i] {
			t.Errorf("Texts[%d] = %q, want original %q", i, res.Texts[i], texts[i])
		}
	}
}

func TestTranslateMismatchedCountFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(translationsOf([]string{"only one"}, func(q string) string { return q }))
	}))
	defer srv.Close()

	c := New(Config{APIKey: "k", Endpoint: srv.URL}, srv.Client(), nil)

	res := c.TranslateMany(context.Background(), []string{"a", "b"}, "hi", "en")
	if !res.Degraded {
		t.Error("want degraded batch when provider returns wrong count")
	}
}

func TestDetect(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		fmt.Fprint(w, `{"data":{"detections":[[{"language":"hi-Latn"}]]}}`)
	}))
	defer srv.Close()

	c := New(Config{APIKey: "k", Endpoint: srv.URL}, srv.Client(), nil)
	ctx := context.Background()

	if got := c.Detect(ctx, "dhan me keet"); got != "hi" {
		t.Errorf("Detect = %q, want normalized hi", got)
	}
	c.Detect(ctx, "dhan me keet")
	if n := atomic.LoadInt64(&calls); n != 1 {
		t.Errorf("provider calls = %d, want 1 (memoized)", n)
	}

	if got := c.Detect(ctx, ""); got != "" {
		t.Errorf("Detect(blank) = %q, want empty", got)
	}
}

func TestDetectWithoutKeyOrResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"detections":[]}}`)
	}))
	defer srv.Close()

	noKey := New(Config{Endpoint: srv.URL}, srv.Client(), nil)
	if got := noKey.Detect(context.Background(), "text"); got != "" {
		t.Errorf("Detect without key = %q, want empty", got)
	}

	c := New(Config{APIKey: "k", Endpoint: srv.URL}, srv.Client(), nil)
	if got := c.Detect(context.Background(), "text"); got != "" {
		t.Errorf("Detect with empty detections = %q, want empty", got)
	}
}
