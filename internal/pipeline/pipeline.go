// Package pipeline sequences mood scoring, category matching, response
// composition, caching, and persistence for one message.
package pipeline

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"log/slog"
	"sync"
	"time"

	"github.com/mindhaven/mindhaven/internal/cache"
	"github.com/mindhaven/mindhaven/internal/composer"
	"github.com/mindhaven/mindhaven/internal/matcher"
	"github.com/mindhaven/mindhaven/internal/models"
	"github.com/mindhaven/mindhaven/internal/sentiment"
	"github.com/mindhaven/mindhaven/internal/store"
)

// FallbackResponse is returned when message processing fails outright.
const FallbackResponse = "I apologize, but I'm having trouble processing your message. Could you please try again?"

type Pipeline struct {
	classifier *sentiment.Classifier
	matcher    *matcher.Matcher
	composer   *composer.Composer
	cache      cache.ResponseCache
	store      store.Store
}

func New(classifier *sentiment.Classifier, m *matcher.Matcher, c *composer.Composer, responses cache.ResponseCache, turns store.Store) *Pipeline {
	return &Pipeline{
		classifier: classifier,
		matcher:    m,
		composer:   c,
		cache:      responses,
		store:      turns,
	}
}

// Process classifies the message and returns the composed result. Every
// failure path degrades to a defined default; nothing propagates to the
// caller.
func (p *Pipeline) Process(ctx context.Context, message string) (result models.ChatResult) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("[Pipeline] Message processing panicked",
				slog.Any("panic", r))
			result = fallbackResult()
		}
	}()

	sum := md5.Sum([]byte(message))
	textHash := hex.EncodeToString(sum[:])

	// Scoring and matching are independent of each other.
	var (
		mood       models.Mood
		categories []string
		wg         sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		mood = p.classifier.Classify(message)
	}()
	go func() {
		defer wg.Done()
		categories = p.matcher.Identify(message)
	}()
	wg.Wait()

	var category string
	if len(categories) > 0 {
		category = categories[0]
	}

	key := cache.Key{Category: category, Mood: mood, TextHash: textHash}
	response := p.cache.GetOrCompute(ctx, key, func() string {
		return p.composer.Compose(category, mood)
	})

	turn := models.ConversationTurn{
		UserMessage: message,
		BotResponse: response,
		Mood:        mood,
		Categories:  categories,
		Timestamp:   time.Now(),
	}
	if err := p.store.Append(ctx, turn); err != nil {
		slog.Error("[Pipeline] Turn not recorded",
			slog.String("error", err.Error()))
	}

	if categories == nil {
		categories = []string{}
	}
	return models.ChatResult{
		Response:   response,
		Mood:       mood,
		Categories: categories,
	}
}

// History returns the most recent turns, newest first.
func (p *Pipeline) History(ctx context.Context, limit int) ([]models.ConversationTurn, error) {
	return p.store.Recent(ctx, limit)
}

func fallbackResult() models.ChatResult {
	return models.ChatResult{
		Response:   FallbackResponse,
		Mood:       models.MoodNeutral,
		Categories: []string{},
	}
}
