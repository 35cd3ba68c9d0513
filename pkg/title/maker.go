package title

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/manish-1011/KisanSaathi/internal/constant"
	"github.com/manish-1011/KisanSaathi/internal/pkg/logger"
)

const (
	maxTitleWords   = 6
	maxTitleLength  = 60
	maxLLMTitleLen  = 40
	llmTitlePrompt  = "Create a very short, clean chat title (<= 40 chars) from this message.\nNo quotes, no emojis, sentence-case, no trailing punctuation.\n\nMessage:\n"
)

var (
	quotePattern         = regexp.MustCompile("[\"“”'`]+")
	trailingPunctPattern = regexp.MustCompile(`[.?!:;,\-–—\s]+$`)
)

// Maker derives session titles. The heuristic path is the system of record;
// the LLM path is opt-in and always falls back to the heuristic.
type Maker struct {
	client    *genai.Client
	modelName string
	log       logger.ILogger
}

// NewMaker builds a Maker. The LLM path activates only when useLLM is set
// and an API key is present.
func NewMaker(ctx context.Context, useLLM bool, apiKey, modelName string, log logger.ILogger) (*Maker, error) {
	if log == nil {
		log = logger.NoopLogger{}
	}
	m := &Maker{modelName: modelName, log: log}
	if !useLLM || apiKey == "" {
		return m, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	m.client = client
	return m, nil
}

func (m *Maker) Close() error {
	if m.client != nil {
		return m.client.Close()
	}
	return nil
}

func (m *Maker) MakeTitle(ctx context.Context, userText string) string {
	if m.client != nil {
		if t := m.llmTitle(ctx, userText); t != "" {
			return t
		}
	}
	return HeuristicTitle(userText)
}

// HeuristicTitle takes the first few words of the cleaned original text,
// capitalizes the first letter, and truncates.
func HeuristicTitle(text string) string {
	if text == "" {
		return constant.DefaultSessionTitle
	}

	cleaned := strings.TrimSpace(whitespacePattern.ReplaceAllString(quotePattern.ReplaceAllString(text, ""), " "))
	words := strings.Fields(cleaned)
	if len(words) > maxTitleWords {
		words = words[:maxTitleWords]
	}

	title := strings.TrimSpace(strings.Join(words, " "))
	if title == "" {
		return constant.DefaultSessionTitle
	}
	return truncate(firstLetterCaps(title), maxTitleLength)
}

func (m *Maker) llmTitle(ctx context.Context, text string) string {
	model := m.client.GenerativeModel(m.modelName)
	resp, err := model.GenerateContent(ctx, genai.Text(llmTitlePrompt+text))
	if err != nil {
		m.log.Warn("title", "llm title failed, using heuristic", map[string]interface{}{
			"error": err.Error(),
		})
		return ""
	}

	candidate := ""
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		var b strings.Builder
		for _, part := range resp.Candidates[0].Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
		candidate = strings.TrimSpace(b.String())
	}
	if candidate == "" {
		return ""
	}

	candidate = quotePattern.ReplaceAllString(candidate, "")
	candidate = strings.TrimSpace(whitespacePattern.ReplaceAllString(candidate, " "))
	candidate = trailingPunctPattern.ReplaceAllString(candidate, "")
	return truncate(firstLetterCaps(candidate), maxLLMTitleLen)
}

func firstLetterCaps(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
