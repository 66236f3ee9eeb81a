package models

import "time"

type Verdict string

const (
	VerdictAI    Verdict = "AI generated"
	VerdictHuman Verdict = "Human written"
)

const (
	LabelHuman = "Human written"
	LabelAI    = "AI-generated"
)

type Classification struct {
	Label      string  `json:"label"`
	RawLabel   string  `json:"raw_label"`
	Confidence float64 `json:"confidence"`
	HumanScore int     `json:"human_score"`
	AIScore    int     `json:"ai_score"`
}

type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// AnalysisResult is built for a single run and never stored.
type AnalysisResult struct {
	Text           string         `json:"text"`
	Perplexity     float64        `json:"perplexity"`
	Burstiness     float64        `json:"burstiness"`
	Classification Classification `json:"classification"`
	TopWords       []WordCount    `json:"top_words"`
	Verdict        Verdict        `json:"verdict"`
	TokenCount     int            `json:"token_count"`
	Truncated      bool           `json:"truncated"`
	Elapsed        time.Duration  `json:"elapsed_ns"`
}

func (r AnalysisResult) IsAI() bool {
	return r.Verdict == VerdictAI
}
