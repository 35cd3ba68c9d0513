package relevance

import (
	"fmt"
	"strings"
)

// TurnPair is one prior exchange, already normalized to English.
type TurnPair struct {
	User string
	Bot  string
}

// FormatTurns renders prior turns oldest to newest as numbered blocks.
// The rendering is deterministic: same turns, same text.
func FormatTurns(turns []TurnPair) string {
	lines := []string{"Previous context:"}
	for i, turn := range turns {
		lines = append(lines, fmt.Sprintf("Turn %d", i+1))
		if turn.User != "" {
			lines = append(lines, "User: "+turn.User)
		}
		if turn.Bot != "" {
			lines = append(lines, "Bot: "+turn.Bot)
		}
	}
	return strings.Join(lines, "\n")
}

// BuildEnrichedQuery prepends the rendered prior turns to the current query.
// The result is a superset of the query; nothing is dropped.
func BuildEnrichedQuery(query string, turns []TurnPair) string {
	return fmt.Sprintf(
		"%s\n\nCurrent task:\nUser now asks: %q\nReturn a focused, helpful answer that stays consistent with the context.",
		FormatTurns(turns), query,
	)
}

const judgePromptTemplate = `You are a strict relevance checker.

Decide if the following previous conversation is relevant to answering the user's current request.
Return strictly 'true' or 'false' (lowercase). No explanations.

%s

Current task:
User now asks: %q
Is the previous context relevant? (true/false only)`

func judgePrompt(query string, turns []TurnPair) string {
	return fmt.Sprintf(judgePromptTemplate, FormatTurns(turns), query)
}

// parseVerdict interprets the model's raw output: relevant only when the
// trimmed text starts with 't'.
func parseVerdict(raw string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(raw)), "t")
}
