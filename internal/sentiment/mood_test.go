package sentiment

import (
	"errors"
	"testing"

	"github.com/mindhaven/mindhaven/internal/models"
)

func TestMoodForScore(t *testing.T) {
	cases := []struct {
		score float64
		want  models.Mood
	}{
		{1.0, models.MoodHappy},
		{0.06, models.MoodHappy},
		{0.05, models.MoodNeutral},
		{0.0, models.MoodNeutral},
		{-0.05, models.MoodNeutral},
		{-0.06, models.MoodSad},
		{-1.0, models.MoodSad},
	}
	for _, tc := range cases {
		if got := MoodForScore(tc.score); got != tc.want {
			t.Errorf("MoodForScore(%v) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

type fixedScorer struct {
	score float64
	err   error
}

func (f fixedScorer) Score(string) (float64, error) {
	return f.score, f.err
}

type panickyScorer struct{}

func (panickyScorer) Score(string) (float64, error) {
	panic("scorer unavailable")
}

func TestClassify_FailingScorerDefaultsToNeutral(t *testing.T) {
	c := NewClassifier(fixedScorer{err: errors.New("lexicon not loaded")})
	if got := c.Classify("anything"); got != models.MoodNeutral {
		t.Errorf("expected Neutral on scorer failure, got %s", got)
	}
}

func TestClassify_PanickingScorerDefaultsToNeutral(t *testing.T) {
	c := NewClassifier(panickyScorer{})
	if got := c.Classify("anything"); got != models.MoodNeutral {
		t.Errorf("expected Neutral on scorer panic, got %s", got)
	}
}

func TestClassify_AppliesThresholds(t *testing.T) {
	happy := NewClassifier(fixedScorer{score: 0.9})
	if got := happy.Classify("x"); got != models.MoodHappy {
		t.Errorf("expected Happy, got %s", got)
	}
	sad := NewClassifier(fixedScorer{score: -0.9})
	if got := sad.Classify("x"); got != models.MoodSad {
		t.Errorf("expected Sad, got %s", got)
	}
}

func TestVADER_ScoreInRange(t *testing.T) {
	v := NewVADER()
	for _, text := range []string{
		"I love this, today is wonderful!",
		"I feel so anxious and can't sleep",
		"",
	} {
		score, err := v.Score(text)
		if err != nil {
			t.Fatalf("Score(%q): %v", text, err)
		}
		if score < -1.0 || score > 1.0 {
			t.Errorf("Score(%q) = %v, out of [-1, 1]", text, score)
		}
	}
}

func TestVADER_AnxiousMessageNotHappy(t *testing.T) {
	c := NewClassifier(NewVADER())
	mood := c.Classify("I feel so anxious and can't sleep")
	if mood != models.MoodSad && mood != models.MoodNeutral {
		t.Errorf("expected Sad or Neutral for anxious message, got %s", mood)
	}
}

func TestConvertMarkdownToText(t *testing.T) {
	got := ConvertMarkdownToText("I read [this guide](https://example.com/calm) about **breathing**")
	if want := "I read this guide about breathing"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
