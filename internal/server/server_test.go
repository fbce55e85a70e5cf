package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/mindhaven/mindhaven/internal/cache"
	"github.com/mindhaven/mindhaven/internal/composer"
	"github.com/mindhaven/mindhaven/internal/content"
	"github.com/mindhaven/mindhaven/internal/matcher"
	"github.com/mindhaven/mindhaven/internal/models"
	"github.com/mindhaven/mindhaven/internal/pipeline"
	"github.com/mindhaven/mindhaven/internal/sentiment"
)

type fixedScorer struct{}

func (fixedScorer) Score(string) (float64, error) { return -0.3, nil }

type memStore struct {
	mu    sync.Mutex
	turns []models.ConversationTurn
}

func (m *memStore) Append(_ context.Context, turn models.ConversationTurn) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns = append([]models.ConversationTurn{turn}, m.turns...)
	return nil
}

func (m *memStore) Recent(_ context.Context, limit int) ([]models.ConversationTurn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit > len(m.turns) {
		limit = len(m.turns)
	}
	return m.turns[:limit], nil
}

func (m *memStore) Close() error { return nil }

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	catalog := content.DefaultCatalog()
	if err := catalog.Validate(); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}
	p := pipeline.New(
		sentiment.NewClassifier(fixedScorer{}),
		matcher.New(catalog),
		composer.New(catalog),
		cache.NewMemory(),
		&memStore{},
	)
	return New(p, 5).Handler()
}

func TestChat_ValidMessage(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/chat",
		strings.NewReader(`{"message": "I feel so anxious and can't sleep"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result models.ChatResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Response == "" {
		t.Error("expected non-empty response")
	}
	if result.Mood != models.MoodSad {
		t.Errorf("mood = %s, want Sad", result.Mood)
	}
	if len(result.Categories) == 0 || result.Categories[0] != "anxiety" {
		t.Errorf("categories = %v, want anxiety first", result.Categories)
	}
}

func TestChat_MissingMessage(t *testing.T) {
	h := newTestHandler(t)

	for _, body := range []string{`{}`, ``, `{"message": 42}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, rec.Code)
			continue
		}
		var errResp chatError
		if err := json.NewDecoder(rec.Body).Decode(&errResp); err != nil {
			t.Errorf("body %q: decode error response: %v", body, err)
			continue
		}
		if errResp.Error == "" || errResp.Response == "" {
			t.Errorf("body %q: expected error and placeholder response, got %+v", body, errResp)
		}
		if errResp.Mood != models.MoodNeutral.String() {
			t.Errorf("body %q: mood = %s, want Neutral", body, errResp.Mood)
		}
	}
}

func TestHistory(t *testing.T) {
	h := newTestHandler(t)

	for _, msg := range []string{"about sleep", "about stress"} {
		req := httptest.NewRequest(http.MethodPost, "/chat",
			strings.NewReader(`{"message": "`+msg+`"}`))
		h.ServeHTTP(httptest.NewRecorder(), req)
	}

	req := httptest.NewRequest(http.MethodGet, "/history?limit=1", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		History []models.ConversationTurn `json:"history"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.History) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(resp.History))
	}
	if resp.History[0].UserMessage != "about stress" {
		t.Errorf("expected most recent turn, got %q", resp.History[0].UserMessage)
	}
}

func TestCORSPreflight(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/chat", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}
