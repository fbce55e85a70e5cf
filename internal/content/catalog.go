package content

import (
	"fmt"

	"github.com/mindhaven/mindhaven/internal/models"
)

// FallbackReply is returned whenever composing a proper reply fails.
const FallbackReply = "I'm here to listen. Would you like to tell me more?"

type Song struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Reason string `json:"reason"`
}

type Game struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// RecommendationSet is the curated bundle for one (category, mood) pair.
type RecommendationSet struct {
	Songs      []Song
	Games      []Game
	Activities []string
}

// Category is one topical cluster: its keyword list plus the reply and
// recommendation content keyed by mood.
type Category struct {
	ID              string
	Keywords        []string
	Replies         map[models.Mood][]string
	Recommendations map[models.Mood]RecommendationSet
}

// Catalog is the shared content-configuration structure. It is built once
// at startup and treated as read-only afterwards; Matcher and Composer
// hold the same instance.
type Catalog struct {
	Categories     []Category
	Markers        map[models.Mood][]string
	Encouragements map[models.Mood][]string
	GenericReplies map[models.Mood][]string

	byID map[string]*Category
}

func moods() []models.Mood {
	return []models.Mood{models.MoodHappy, models.MoodNeutral, models.MoodSad}
}

// Category looks a category up by identifier.
func (c *Catalog) Category(id string) (*Category, bool) {
	cat, ok := c.byID[id]
	return cat, ok
}

func (c *Catalog) index() {
	c.byID = make(map[string]*Category, len(c.Categories))
	for i := range c.Categories {
		c.byID[c.Categories[i].ID] = &c.Categories[i]
	}
}

// Validate checks the catalog is usable: every category carries keywords
// and at least one base reply per mood, and the mood-keyed sets that the
// composer draws from are never empty.
func (c *Catalog) Validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("catalog has no categories")
	}
	for _, cat := range c.Categories {
		if cat.ID == "" {
			return fmt.Errorf("category with empty identifier")
		}
		if len(cat.Keywords) == 0 {
			return fmt.Errorf("category %q has no keywords", cat.ID)
		}
		for _, mood := range moods() {
			if len(cat.Replies[mood]) == 0 {
				return fmt.Errorf("category %q has no replies for mood %s", cat.ID, mood)
			}
		}
	}
	for _, mood := range moods() {
		if len(c.Markers[mood]) == 0 {
			return fmt.Errorf("no markers for mood %s", mood)
		}
		if len(c.Encouragements[mood]) == 0 {
			return fmt.Errorf("no encouragements for mood %s", mood)
		}
		if len(c.GenericReplies[mood]) == 0 {
			return fmt.Errorf("no generic replies for mood %s", mood)
		}
	}
	return nil
}
