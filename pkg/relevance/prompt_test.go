package relevance

import (
	"strings"
	"testing"
)

func TestFormatTurns(t *testing.T) {
	turns := []TurnPair{
		{User: "my rice leaves are yellow", Bot: "Likely nitrogen deficiency."},
		{User: "which fertilizer should I use", Bot: "Apply urea in split doses."},
	}

	want := strings.Join([]string{
		"Previous context:",
		"Turn 1",
		"User: my rice leaves are yellow",
		"Bot: Likely nitrogen deficiency.",
		"Turn 2",
		"User: which fertilizer should I use",
		"Bot: Apply urea in split doses.",
	}, "\n")

	if got := FormatTurns(turns); got != want {
		t.Errorf("FormatTurns =\n%s\nwant\n%s", got, want)
	}
}

func TestFormatTurnsSkipsEmptySides(t *testing.T) {
	turns := []TurnPair{{User: "hello"}, {Bot: "Welcome back."}}

	got := FormatTurns(turns)
	if strings.Contains(got, "Bot: \n") || strings.Contains(got, "User: \n") {
		t.Errorf("empty sides must be omitted, got:\n%s", got)
	}
	if !strings.Contains(got, "Turn 1\nUser: hello") {
		t.Errorf("missing first turn, got:\n%s", got)
	}
	if !strings.Contains(got, "Turn 2\nBot: Welcome back.") {
		t.Errorf("missing second turn, got:\n%s", got)
	}
}

func TestFormatTurnsDeterministic(t *testing.T) {
	turns := []TurnPair{{User: "a", Bot: "b"}, {User: "c", Bot: "d"}}
	if FormatTurns(turns) != FormatTurns(turns) {
		t.Error("rendering must be deterministic")
	}
}

func TestBuildEnrichedQueryContainsQueryAndTurns(t *testing.T) {
	query := "what about brown spots now?"
	turns := []TurnPair{{User: "rice leaves yellow", Bot: "Nitrogen deficiency."}}

	got := BuildEnrichedQuery(query, turns)
	if !strings.Contains(got, `User now asks: "what about brown spots now?"`) {
		t.Errorf("enriched query must quote the current query verbatim, got:\n%s", got)
	}
	if !strings.Contains(got, "User: rice leaves yellow") {
		t.Errorf("enriched query must carry the prior turns, got:\n%s", got)
	}
	if !strings.HasPrefix(got, "Previous context:") {
		t.Errorf("enriched query must lead with the context block, got:\n%s", got)
	}
}

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"true", true},
		{"True", true},
		{"TRUE.", true},
		{"  true\n", true},
		{"true, the context matters", true},
		{"false", false},
		{"False", false},
		{"no", false},
		{"", false},
		{"the answer is true", true}, // starts with 't' after trimming
		{"yes", false},
	}

	for _, tt := range tests {
		if got := parseVerdict(tt.raw); got != tt.want {
			t.Errorf("parseVerdict(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestJudgePromptDemandsBooleanAnswer(t *testing.T) {
	got := judgePrompt("current question", []TurnPair{{User: "u", Bot: "b"}})
	if !strings.Contains(got, "(true/false only)") {
		t.Errorf("judge prompt must constrain the answer format, got:\n%s", got)
	}
	if !strings.Contains(got, `User now asks: "current question"`) {
		t.Errorf("judge prompt must include the query, got:\n%s", got)
	}
}
