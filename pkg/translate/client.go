package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	gocache "github.com/patrickmn/go-cache"

	"github.com/manish-1011/KisanSaathi/internal/pkg/logger"
)

// Result is a single translation outcome. Degraded marks that the provider
// could not be used and Text is the original input.
type Result struct {
	Text     string
	Degraded bool
}

// BatchResult is the outcome of a batch translation. Degraded means the
// whole batch fell back to the original texts.
type BatchResult struct {
	Texts    []string
	Degraded bool
}

type Config struct {
	APIKey        string
	Endpoint      string
	RetryAttempts int
	RetryBackoff  time.Duration
	CacheSize     int
}

type memoKey struct {
	text   string
	target string
	source string
}

// Client talks to the Google Translate v2 REST surface. Single-text
// translations are memoized in a bounded LRU for the process lifetime;
// batches are not (they vary per call). Detection results are memoized
// with a short TTL.
type Client struct {
	cfg        Config
	httpClient *http.Client
	memo       *lru.Cache[memoKey, string]
	detectMemo *gocache.Cache
	log        logger.ILogger
}

const defaultEndpoint = "https://translation.googleapis.com/language/translate/v2"

func New(cfg Config, httpClient *http.Client, log logger.ILogger) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if cfg.RetryAttempts < 0 {
		cfg.RetryAttempts = 0
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 50000
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = logger.NoopLogger{}
	}

	memo, _ := lru.New[memoKey, string](cfg.CacheSize)

	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		memo:       memo,
		detectMemo: gocache.New(5*time.Minute, 10*time.Minute),
		log:        log,
	}
}

// TranslateOne translates a single text, memoized by (text, target, source).
// It never fails: on any provider problem the original text comes back with
// Degraded set.
func (c *Client) TranslateOne(ctx context.Context, text, target, source string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Text: text}
	}

	target = normalizeTarget(target)
	source = NormalizeTag(source)
	if source == target {
		return Result{Text: text}
	}

	key := memoKey{text: text, target: target, source: source}
	if cached, ok := c.memo.Get(key); ok {
		return Result{Text: cached}
	}

	translated, err := c.translateBatch(ctx, []string{text}, target, source)
	if err != nil {
		c.log.Warn("translate", "single translation failed, returning original", map[string]interface{}{
			"target": target,
			"error":  err.Error(),
		})
		return Result{Text: text, Degraded: true}
	}

	c.memo.Add(key, translated[0])
	return Result{Text: translated[0]}
}

// TranslateMany translates a batch in one provider call. Falls back to the
// originals as a whole on failure.
func (c *Client) TranslateMany(ctx context.Context, texts []string, target, source string) BatchResult {
	if len(texts) == 0 {
		return BatchResult{Texts: texts}
	}

	target = normalizeTarget(target)
	source = NormalizeTag(source)
	if source == target {
		return BatchResult{Texts: texts}
	}

	translated, err := c.translateBatch(ctx, texts, target, source)
	if err != nil {
		c.log.Warn("translate", "batch translation failed, returning originals", map[string]interface{}{
			"target": target,
			"count":  len(texts),
			"error":  err.Error(),
		})
		return BatchResult{Texts: texts, Degraded: true}
	}
	return BatchResult{Texts: translated}
}

// Detect returns the normalized primary tag of the text's language, or ""
// when detection is unavailable or inconclusive.
func (c *Client) Detect(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" || c.cfg.APIKey == "" {
		return ""
	}

	if cached, ok := c.detectMemo.Get(text); ok {
		return cached.(string)
	}

	tag, err := c.detectOnce(ctx, text)
	if err != nil {
		c.log.Warn("translate", "language detection failed", map[string]interface{}{
			"error": err.Error(),
		})
		return ""
	}

	c.detectMemo.Set(text, tag, gocache.DefaultExpiration)
	return tag
}

type translateRequest struct {
	Q      []string `json:"q"`
	Target string   `json:"target"`
	Source string   `json:"source,omitempty"`
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

type detectResponse struct {
	Data struct {
		Detections [][]struct {
			Language string `json:"language"`
		} `json:"detections"`
	} `json:"data"`
}

func (c *Client) translateBatch(ctx context.Context, texts []string, target, source string) ([]string, error) {
	if c.cfg.APIKey == "" {
		return nil, fmt.Errorf("translate api key not configured")
	}

	body, err := json.Marshal(translateRequest{Q: texts, Target: target, Source: source})
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt <= c.cfg.RetryAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(c.cfg.RetryBackoff * time.Duration(attempt))
		}

		var payload translateResponse
		if err := c.post(ctx, c.cfg.Endpoint, body, &payload); err != nil {
			lastErr = err
			c.log.Warn("translate", "translate batch attempt failed", map[string]interface{}{
				"attempt": attempt + 1,
				"error":   err.Error(),
			})
			continue
		}

		if len(payload.Data.Translations) != len(texts) {
			lastErr = fmt.Errorf("provider returned %d translations for %d inputs", len(payload.Data.Translations), len(texts))
			continue
		}

		out := make([]string, len(texts))
		for i, tr := range payload.Data.Translations {
			out[i] = html.UnescapeString(tr.TranslatedText)
		}
		return out, nil
	}
	return nil, lastErr
}

func (c *Client) detectOnce(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(map[string][]string{"q": {text}})
	if err != nil {
		return "", err
	}

	var payload detectResponse
	if err := c.post(ctx, c.cfg.Endpoint+"/detect", body, &payload); err != nil {
		return "", err
	}

	if len(payload.Data.Detections) == 0 || len(payload.Data.Detections[0]) == 0 {
		return "", nil
	}
	return NormalizeTag(payload.Data.Detections[0][0].Language), nil
}

func (c *Client) post(ctx context.Context, endpoint string, body []byte, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"?key="+c.cfg.APIKey, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBytes, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("provider response code %d, body %s", res.StatusCode, string(resBytes))
	}
	return json.Unmarshal(resBytes, out)
}

func normalizeTarget(target string) string {
	if tag := NormalizeTag(target); tag != "" {
		return tag
	}
	return "en"
}
