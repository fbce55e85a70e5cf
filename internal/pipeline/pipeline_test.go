package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/mindhaven/mindhaven/internal/cache"
	"github.com/mindhaven/mindhaven/internal/composer"
	"github.com/mindhaven/mindhaven/internal/content"
	"github.com/mindhaven/mindhaven/internal/matcher"
	"github.com/mindhaven/mindhaven/internal/models"
	"github.com/mindhaven/mindhaven/internal/sentiment"
)

type fixedScorer struct {
	score float64
}

func (f fixedScorer) Score(string) (float64, error) {
	return f.score, nil
}

type fakeStore struct {
	mu       sync.Mutex
	turns    []models.ConversationTurn
	appendEr error
}

func (f *fakeStore) Append(_ context.Context, turn models.ConversationTurn) error {
	if f.appendEr != nil {
		return f.appendEr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.turns = append([]models.ConversationTurn{turn}, f.turns...)
	return nil
}

func (f *fakeStore) Recent(_ context.Context, limit int) ([]models.ConversationTurn, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if limit > len(f.turns) {
		limit = len(f.turns)
	}
	return f.turns[:limit], nil
}

func (f *fakeStore) Close() error { return nil }

func newTestPipeline(t *testing.T, score float64, turns *fakeStore) *Pipeline {
	t.Helper()
	catalog := content.DefaultCatalog()
	if err := catalog.Validate(); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}
	return New(
		sentiment.NewClassifier(fixedScorer{score: score}),
		matcher.New(catalog),
		composer.New(catalog),
		cache.NewMemory(),
		turns,
	)
}

func TestProcess_AnxiousSleeplessMessage(t *testing.T) {
	turns := &fakeStore{}
	p := newTestPipeline(t, -0.4, turns)

	result := p.Process(context.Background(), "I feel so anxious and can't sleep")

	if result.Mood != models.MoodSad {
		t.Errorf("mood = %s, want Sad", result.Mood)
	}
	if len(result.Categories) != 2 || result.Categories[0] != "anxiety" || result.Categories[1] != "sleep" {
		t.Errorf("categories = %v, want [anxiety sleep]", result.Categories)
	}
	if result.Response == "" {
		t.Error("expected non-empty response")
	}
	if result.Loading {
		t.Error("loading should be false")
	}
	if len(turns.turns) != 1 {
		t.Fatalf("expected 1 persisted turn, got %d", len(turns.turns))
	}
	if turns.turns[0].BotResponse != result.Response {
		t.Error("persisted response differs from returned response")
	}
}

func TestProcess_EmptyMessage(t *testing.T) {
	p := newTestPipeline(t, 0.0, &fakeStore{})

	result := p.Process(context.Background(), "")

	if len(result.Categories) != 0 {
		t.Errorf("categories = %v, want empty", result.Categories)
	}
	if result.Categories == nil {
		t.Error("categories should be an empty slice, not nil")
	}
	if result.Response == "" {
		t.Error("expected a generic response for empty input")
	}
	if result.Response == FallbackResponse {
		t.Error("empty input is not a processing failure")
	}
}

func TestProcess_StableResponseForIdenticalInput(t *testing.T) {
	p := newTestPipeline(t, -0.4, &fakeStore{})
	ctx := context.Background()

	const msg = "I feel so anxious and can't sleep"
	first := p.Process(ctx, msg)
	for i := 0; i < 5; i++ {
		if got := p.Process(ctx, msg); got.Response != first.Response {
			t.Fatalf("call %d returned different response text", i)
		}
	}
}

func TestProcess_StoreFailureDoesNotFailRequest(t *testing.T) {
	turns := &fakeStore{appendEr: errors.New("disk full")}
	p := newTestPipeline(t, 0.5, turns)

	result := p.Process(context.Background(), "I am happy about my sleep lately")

	if result.Response == "" || result.Response == FallbackResponse {
		t.Errorf("expected composed response despite store failure, got %q", result.Response)
	}
	if result.Mood != models.MoodHappy {
		t.Errorf("mood = %s, want Happy", result.Mood)
	}
}

func TestHistory(t *testing.T) {
	turns := &fakeStore{}
	p := newTestPipeline(t, 0.0, turns)
	ctx := context.Background()

	p.Process(ctx, "first message about sleep")
	p.Process(ctx, "second message about stress")

	history, err := p.History(ctx, 5)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(history))
	}
	if history[0].UserMessage != "second message about stress" {
		t.Errorf("expected most recent first, got %q", history[0].UserMessage)
	}
}
