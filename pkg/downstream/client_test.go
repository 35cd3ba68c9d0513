package downstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestDispatchSuccess(t *testing.T) {
	var got Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		fmt.Fprint(w, `{"bot_reply":"Apply urea in split doses.","end_time":"2026-03-01T10:15:00Z"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client(), nil)
	pincode := "110001"
	reply := c.Dispatch(context.Background(), Request{
		UserEmail: "farmer@example.com",
		SessionId: "s1",
		MessageId: "m1",
		UserQuery: "which fertilizer for yellow rice leaves",
		Meta:      Meta{Language: "hi", Mode: "personal", Pincode: &pincode},
	})

	if reply.Degraded {
		t.Fatal("unexpected degraded reply")
	}
	if reply.BotReply != "Apply urea in split doses." {
		t.Errorf("BotReply = %q", reply.BotReply)
	}
	want := time.Date(2026, 3, 1, 10, 15, 0, 0, time.UTC)
	if !reply.EndTime.Equal(want) {
		t.Errorf("EndTime = %v, want %v", reply.EndTime, want)
	}
	if got.MessageId != "m1" || got.Meta.Language != "hi" || got.Meta.Pincode == nil {
		t.Errorf("request payload not passed through: %+v", got)
	}
}

func TestDispatchFailureDegradesToApology(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client(), nil)
	before := time.Now().UTC()
	reply := c.Dispatch(context.Background(), Request{UserQuery: "q"})
	after := time.Now().UTC()

	if !reply.Degraded {
		t.Fatal("want degraded reply")
	}
	if reply.BotReply != ApologyReply {
		t.Errorf("BotReply = %q, want apology", reply.BotReply)
	}
	if reply.EndTime.Before(before) || reply.EndTime.After(after) {
		t.Errorf("EndTime %v outside call window [%v, %v]", reply.EndTime, before, after)
	}
}

func TestDispatchUnreachableHostDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // nothing listening anymore

	c := NewClient(url, http.DefaultClient, nil)
	reply := c.Dispatch(context.Background(), Request{UserQuery: "q"})
	if !reply.Degraded || reply.BotReply != ApologyReply {
		t.Errorf("got %+v, want degraded apology", reply)
	}
}

func TestDispatchEmptyBotReplyBecomesApology(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"bot_reply":"   ","end_time":"2026-03-01T10:15:00Z"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client(), nil)
	reply := c.Dispatch(context.Background(), Request{UserQuery: "q"})
	if reply.BotReply != ApologyReply {
		t.Errorf("BotReply = %q, want apology for blank downstream reply", reply.BotReply)
	}
	if reply.Degraded {
		t.Error("blank reply substitution is not a transport degradation")
	}
}

func TestDispatchMockWithoutURL(t *testing.T) {
	c := NewClient("", nil, nil)
	reply := c.Dispatch(context.Background(), Request{UserQuery: "hello there"})
	if reply.Degraded {
		t.Error("mock reply must not be degraded")
	}
	if !strings.HasPrefix(reply.BotReply, "[MOCK REPLY] ") || !strings.Contains(reply.BotReply, "hello there") {
		t.Errorf("BotReply = %q, want mock echo", reply.BotReply)
	}
}

func TestParseEndTime(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"rfc3339 utc", "2026-03-01T10:15:00Z", time.Date(2026, 3, 1, 10, 15, 0, 0, time.UTC)},
		{"rfc3339 with offset", "2026-03-01T15:45:00+05:30", time.Date(2026, 3, 1, 10, 15, 0, 0, time.UTC)},
		{"naive is kolkata civil time", "2026-03-01T15:45:00", time.Date(2026, 3, 1, 10, 15, 0, 0, time.UTC)},
		{"naive with fraction", "2026-03-01T15:45:00.500000", time.Date(2026, 3, 1, 10, 15, 0, 500000000, time.UTC)},
		{"naive with space", "2026-03-01 15:45:00", time.Date(2026, 3, 1, 10, 15, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseEndTime(tt.raw)
			if !got.Equal(tt.want) {
				t.Errorf("ParseEndTime(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			if got.Location() != time.UTC {
				t.Errorf("ParseEndTime(%q) location = %v, want UTC", tt.raw, got.Location())
			}
		})
	}
}

func TestParseEndTimeGarbageFallsBackToNow(t *testing.T) {
	for _, raw := range []string{"", "not a time", "01/03/2026"} {
		before := time.Now().UTC()
		got := ParseEndTime(raw)
		after := time.Now().UTC()
		if got.Before(before) || got.After(after) {
			t.Errorf("ParseEndTime(%q) = %v, want within [%v, %v]", raw, got, before, after)
		}
	}
}
