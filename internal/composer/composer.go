// Package composer assembles the supportive reply text for a classified
// message.
package composer

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/mindhaven/mindhaven/internal/content"
	"github.com/mindhaven/mindhaven/internal/models"
)

const closingLine = "Remember: You're doing better than you think! 🌟"

// Composer picks reply content from the shared catalog. All choices are
// uniform over the configured candidates; callers that need stability
// for repeated input wrap Compose in the response cache.
type Composer struct {
	catalog *content.Catalog
}

func New(catalog *content.Catalog) *Composer {
	return &Composer{catalog: catalog}
}

// Compose builds the full reply for a category (may be empty) and mood:
// mood marker, base reply, encouragement line, and the recommendation
// block when the category defines one for this mood. Any internal fault
// degrades to the fixed fallback reply.
func (c *Composer) Compose(categoryID string, mood models.Mood) (response string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("[Composer] Response composition panicked",
				slog.Any("panic", r),
				slog.String("category", categoryID),
				slog.String("mood", mood.String()))
			response = fallbackResponse()
		}
	}()

	marker := pick(c.markers(mood))
	base := c.baseReply(categoryID, mood)
	encouragement := pick(c.encouragements(mood))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(marker)
	b.WriteString(" ")
	b.WriteString(base)
	b.WriteString("\n\n")
	b.WriteString(encouragement)
	b.WriteString("\n")

	if rec, ok := c.recommendations(categoryID, mood); ok {
		b.WriteString("\n🎵 Here's a song that might help:\n")
		b.WriteString(rec.Song)
		b.WriteString("\n\n🎮 Try this game to lift your spirits:\n")
		b.WriteString(rec.Game)
		b.WriteString("\n\n✨ Give this activity a try:\n")
		b.WriteString(rec.Activity)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(closingLine)
	b.WriteString("\n")
	return b.String()
}

func (c *Composer) baseReply(categoryID string, mood models.Mood) string {
	if categoryID != "" {
		if cat, ok := c.catalog.Category(categoryID); ok {
			if replies := cat.Replies[mood]; len(replies) > 0 {
				return pick(replies)
			}
		}
	}
	if generic := c.catalog.GenericReplies[mood]; len(generic) > 0 {
		return pick(generic)
	}
	return content.FallbackReply
}

type renderedRecommendation struct {
	Song     string
	Game     string
	Activity string
}

// recommendations renders one song, game, and activity for the pair.
// A missing bundle is not an error; the block is simply omitted.
func (c *Composer) recommendations(categoryID string, mood models.Mood) (renderedRecommendation, bool) {
	cat, ok := c.catalog.Category(categoryID)
	if !ok {
		return renderedRecommendation{}, false
	}
	set, ok := cat.Recommendations[mood]
	if !ok || len(set.Songs) == 0 || len(set.Games) == 0 || len(set.Activities) == 0 {
		return renderedRecommendation{}, false
	}

	song := pick(set.Songs)
	game := pick(set.Games)
	return renderedRecommendation{
		Song:     fmt.Sprintf("🎵 Song Recommendation: '%s' by %s - %s", song.Title, song.Artist, song.Reason),
		Game:     fmt.Sprintf("🎮 Game Recommendation: '%s' - %s", game.Name, game.Reason),
		Activity: fmt.Sprintf("✨ Activity Suggestion: %s", pick(set.Activities)),
	}, true
}

func (c *Composer) markers(mood models.Mood) []string {
	if markers := c.catalog.Markers[mood]; len(markers) > 0 {
		return markers
	}
	return c.catalog.Markers[models.MoodNeutral]
}

func (c *Composer) encouragements(mood models.Mood) []string {
	if lines := c.catalog.Encouragements[mood]; len(lines) > 0 {
		return lines
	}
	return c.catalog.Encouragements[models.MoodNeutral]
}

func fallbackResponse() string {
	return fmt.Sprintf("\n🤗 %s\n\n🌟 You're doing better than you think! Every step forward is progress!\n", content.FallbackReply)
}

func pick[T any](items []T) T {
	return items[rand.Intn(len(items))]
}
