package downstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/manish-1011/KisanSaathi/internal/pkg/logger"
)

// ApologyReply is the fixed user-visible reply when the answering service
// cannot be reached or returns garbage.
const ApologyReply = "Sorry, I couldn't fetch the information at this moment."

// Request is the payload contract of the answering service.
type Request struct {
	UserEmail string `json:"user_email"`
	SessionId string `json:"session_id"`
	MessageId string `json:"message_id"`
	UserQuery string `json:"user_query"`
	Meta      Meta   `json:"meta"`
}

type Meta struct {
	Language string  `json:"language"`
	Mode     string  `json:"mode"`
	Pincode  *string `json:"pincode"`
}

// Reply carries the English answer and its end time (UTC). Degraded marks
// the apology fallback.
type Reply struct {
	BotReply string
	EndTime  time.Time
	Degraded bool
}

type wireResponse struct {
	BotReply string `json:"bot_reply"`
	EndTime  string `json:"end_time"`
}

// Client dispatches to the answering service over the process-wide shared
// HTTP client. No client-side timeout: unbounded latency is preferred over
// truncated answers.
type Client struct {
	url        string
	httpClient *http.Client
	log        logger.ILogger
}

func NewClient(url string, httpClient *http.Client, log logger.ILogger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = logger.NoopLogger{}
	}
	return &Client{url: url, httpClient: httpClient, log: log}
}

// Dispatch sends the turn downstream. It never returns an error: any failure
// degrades to the apology reply stamped with the local current time. With no
// URL configured it echoes a mock reply so the pipeline works standalone.
func (c *Client) Dispatch(ctx context.Context, req Request) Reply {
	if c.url == "" {
		return Reply{
			BotReply: "[MOCK REPLY] You said: " + req.UserQuery,
			EndTime:  time.Now().UTC(),
		}
	}

	reply, err := c.call(ctx, req)
	if err != nil {
		c.log.Warn("downstream", "dispatch failed, using apology reply", map[string]interface{}{
			"message_id": req.MessageId,
			"error":      err.Error(),
		})
		return Reply{BotReply: ApologyReply, EndTime: time.Now().UTC(), Degraded: true}
	}
	return reply
}

func (c *Client) call(ctx context.Context, req Request) (Reply, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Reply{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return Reply{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Reply{}, err
	}
	defer res.Body.Close()

	resBytes, err := io.ReadAll(res.Body)
	if err != nil {
		return Reply{}, err
	}
	if res.StatusCode != http.StatusOK {
		return Reply{}, fmt.Errorf("downstream response code %d, body %s", res.StatusCode, string(resBytes))
	}

	var wire wireResponse
	if len(resBytes) > 0 {
		if err := json.Unmarshal(resBytes, &wire); err != nil {
			return Reply{}, err
		}
	}

	botReply := strings.TrimSpace(wire.BotReply)
	if botReply == "" {
		botReply = ApologyReply
	}
	return Reply{BotReply: botReply, EndTime: ParseEndTime(wire.EndTime)}, nil
}

var ist = loadIST()

func loadIST() *time.Location {
	if loc, err := time.LoadLocation("Asia/Kolkata"); err == nil {
		return loc
	}
	return time.FixedZone("IST", 5*3600+1800)
}

// ParseEndTime interprets the downstream end_time: ISO-8601, optionally
// timezone-naive, in which case it is read as Asia/Kolkata civil time.
// Anything unparseable becomes the local current time. Always UTC out.
func ParseEndTime(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Now().UTC()
	}

	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.UTC()
	}

	for _, layout := range []string{"2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.ParseInLocation(layout, raw, ist); err == nil {
			return t.UTC()
		}
	}
	return time.Now().UTC()
}
