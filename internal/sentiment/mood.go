package sentiment

import (
	"log/slog"

	"github.com/mindhaven/mindhaven/internal/models"
)

// Mood thresholds. Scores on the boundary are Neutral.
const (
	happyThreshold = 0.05
	sadThreshold   = -0.05
)

// Classifier maps a polarity score onto a discrete mood label.
type Classifier struct {
	scorer Scorer
}

func NewClassifier(scorer Scorer) *Classifier {
	return &Classifier{scorer: scorer}
}

// Classify scores the text and applies the fixed thresholds. A failing
// scorer degrades to Neutral; the request is never failed from here.
func (c *Classifier) Classify(text string) (mood models.Mood) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("[Sentiment] Scorer panicked, defaulting to Neutral",
				slog.Any("panic", r))
			mood = models.MoodNeutral
		}
	}()

	score, err := c.scorer.Score(text)
	if err != nil {
		slog.Error("[Sentiment] Scoring failed, defaulting to Neutral",
			slog.String("error", err.Error()))
		return models.MoodNeutral
	}

	return MoodForScore(score)
}

// MoodForScore is total: every score maps to exactly one mood.
func MoodForScore(score float64) models.Mood {
	switch {
	case score > happyThreshold:
		return models.MoodHappy
	case score < sadThreshold:
		return models.MoodSad
	default:
		return models.MoodNeutral
	}
}
