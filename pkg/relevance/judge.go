package relevance

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/manish-1011/KisanSaathi/internal/pkg/logger"
)

// Verdict is the gate's decision. Degraded marks that no judgment could be
// made and the safe default (not relevant) was used.
type Verdict struct {
	Relevant bool
	Degraded bool
}

// Judge asks a Gemini model for a strict boolean on whether prior turns help
// answer the current query. It is best-effort: any failure means "not
// relevant", never an error to the caller.
type Judge struct {
	client    *genai.Client
	modelName string
	log       logger.ILogger
}

// NewJudge builds a judge. A missing API key yields a judge that always
// answers "not relevant, degraded" rather than an error; the turn pipeline
// must keep working without credentials.
func NewJudge(ctx context.Context, apiKey, modelName string, log logger.ILogger) (*Judge, error) {
	if log == nil {
		log = logger.NoopLogger{}
	}
	j := &Judge{modelName: modelName, log: log}
	if apiKey == "" {
		return j, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	j.client = client
	return j, nil
}

func (j *Judge) Close() error {
	if j.client != nil {
		return j.client.Close()
	}
	return nil
}

func (j *Judge) IsRelevant(ctx context.Context, query string, turns []TurnPair) Verdict {
	if len(turns) == 0 {
		return Verdict{}
	}
	if j.client == nil {
		return Verdict{Degraded: true}
	}

	model := j.client.GenerativeModel(j.modelName)
	var temperature float32 = 0
	model.Temperature = &temperature

	resp, err := model.GenerateContent(ctx, genai.Text(judgePrompt(query, turns)))
	if err != nil {
		j.log.Warn("relevance", "judgment failed, defaulting to not relevant", map[string]interface{}{
			"error": err.Error(),
		})
		return Verdict{Degraded: true}
	}

	return Verdict{Relevant: parseVerdict(responseText(resp))}
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}
