// Package matcher identifies which topical categories a message touches.
package matcher

import (
	"log/slog"
	"strings"

	"github.com/mindhaven/mindhaven/internal/content"
)

// Matcher scans text against the catalog's keyword lists.
type Matcher struct {
	catalog *content.Catalog
}

func New(catalog *content.Catalog) *Matcher {
	return &Matcher{catalog: catalog}
}

// Identify returns the matched category identifiers in catalog scan
// order, deduplicated. Empty or whitespace-only text yields no matches.
// The token fallback runs only when the substring scan found nothing.
func (m *Matcher) Identify(text string) (categories []string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("[Matcher] Category matching panicked",
				slog.Any("panic", r))
			categories = nil
		}
	}()

	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return nil
	}

	for _, cat := range m.catalog.Categories {
		if categoryMatches(cat.Keywords, text) {
			categories = appendUnique(categories, cat.ID)
		}
	}
	if len(categories) > 0 {
		return categories
	}

	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	for _, cat := range m.catalog.Categories {
		for _, keyword := range cat.Keywords {
			if tokens[keyword] {
				categories = appendUnique(categories, cat.ID)
				break
			}
		}
	}
	return categories
}

func categoryMatches(keywords []string, text string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
		for _, variant := range variants(keyword) {
			if strings.Contains(text, variant) {
				return true
			}
		}
	}
	return false
}

// variants returns tolerant forms of a keyword: apostrophes stripped
// ("can't sleep" / "cant sleep"), internal spaces removed ("no sleep" /
// "nosleep"), and each vowel doubled one at a time to catch a narrow
// class of misspellings ("stress" / "streess").
func variants(keyword string) []string {
	var forms []string
	if strings.Contains(keyword, "'") {
		forms = append(forms, strings.ReplaceAll(keyword, "'", ""))
	}
	if strings.Contains(keyword, " ") {
		forms = append(forms, strings.ReplaceAll(keyword, " ", ""))
	}
	for _, vowel := range []string{"a", "e", "i", "o", "u"} {
		if doubled := strings.ReplaceAll(keyword, vowel, vowel+vowel); doubled != keyword {
			forms = append(forms, doubled)
		}
	}
	return forms
}

// tokenize splits text into alphanumeric words with stop-words removed.
func tokenize(text string) map[string]bool {
	tokens := make(map[string]bool)
	for _, field := range strings.Fields(text) {
		word := strings.TrimFunc(field, func(r rune) bool {
			return !isAlphanumeric(r)
		})
		if word == "" || stopWords[word] {
			continue
		}
		if !isWord(word) {
			continue
		}
		tokens[word] = true
	}
	return tokens
}

func isWord(s string) bool {
	for _, r := range s {
		if !isAlphanumeric(r) {
			return false
		}
	}
	return true
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

var stopWords = map[string]bool{
	"a": true, "about": true, "after": true, "again": true, "all": true,
	"am": true, "an": true, "and": true, "any": true, "are": true,
	"as": true, "at": true, "be": true, "because": true, "been": true,
	"before": true, "being": true, "but": true, "by": true, "can": true,
	"could": true, "did": true, "do": true, "does": true, "doing": true,
	"for": true, "from": true, "had": true, "has": true, "have": true,
	"he": true, "her": true, "here": true, "him": true, "his": true,
	"how": true, "i": true, "if": true, "in": true, "into": true,
	"is": true, "it": true, "its": true, "just": true, "me": true,
	"more": true, "most": true, "my": true, "no": true, "not": true,
	"now": true, "of": true, "on": true, "only": true, "or": true,
	"our": true, "out": true, "over": true, "so": true, "some": true,
	"such": true, "than": true, "that": true, "the": true, "their": true,
	"them": true, "then": true, "there": true, "these": true, "they": true,
	"this": true, "those": true, "through": true, "to": true, "too": true,
	"under": true, "up": true, "very": true, "was": true, "we": true,
	"were": true, "what": true, "when": true, "where": true, "which": true,
	"while": true, "who": true, "why": true, "will": true, "with": true,
	"would": true, "you": true, "your": true,
}
