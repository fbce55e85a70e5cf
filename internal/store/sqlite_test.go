package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/mindhaven/mindhaven/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLiteStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndRecent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, msg := range []string{"first", "second", "third"} {
		err := s.Append(ctx, models.ConversationTurn{
			UserMessage: msg,
			BotResponse: "reply to " + msg,
			Mood:        models.MoodNeutral,
			Categories:  []string{"sleep"},
			Timestamp:   base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("append %q: %v", msg, err)
		}
	}

	turns, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if turns[0].UserMessage != "third" || turns[1].UserMessage != "second" {
		t.Errorf("wrong order: %q, %q", turns[0].UserMessage, turns[1].UserMessage)
	}
	if turns[0].ID == "" {
		t.Error("expected generated ID")
	}
}

func TestCategoriesRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.Append(ctx, models.ConversationTurn{
		UserMessage: "anxious and sleepless",
		BotResponse: "reply",
		Mood:        models.MoodSad,
		Categories:  []string{"anxiety", "sleep"},
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	turns, err := s.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	got := turns[0].Categories
	if len(got) != 2 || got[0] != "anxiety" || got[1] != "sleep" {
		t.Errorf("categories round trip = %v", got)
	}
	if turns[0].Mood != models.MoodSad {
		t.Errorf("mood round trip = %s", turns[0].Mood)
	}
}

func TestEmptyCategories(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.Append(ctx, models.ConversationTurn{
		UserMessage: "hello",
		BotResponse: "hi",
		Mood:        models.MoodNeutral,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	turns, err := s.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(turns[0].Categories) != 0 {
		t.Errorf("expected no categories, got %v", turns[0].Categories)
	}
}

func TestRecentOnEmptyStore(t *testing.T) {
	s := newTestStore(t)
	turns, err := s.Recent(context.Background(), 5)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(turns) != 0 {
		t.Errorf("expected no turns, got %d", len(turns))
	}
}
