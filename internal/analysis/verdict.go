package analysis

import "github.com/spacesedan/texttrace/internal/models"

// Thresholds were tuned against GPT-2 with same-position scoring and are not
// configurable.
const (
	PerplexityThreshold = 25000
	BurstinessThreshold = 0.3
)

func DecideVerdict(perplexity, burstiness float64) models.Verdict {
	if perplexity > PerplexityThreshold && burstiness < BurstinessThreshold {
		return models.VerdictAI
	}
	return models.VerdictHuman
}
