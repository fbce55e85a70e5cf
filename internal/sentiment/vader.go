package sentiment

import (
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

// Scorer produces a lexical polarity score in [-1, 1] for a piece of text.
type Scorer interface {
	Score(text string) (float64, error)
}

// VADER scores text with the VADER polarity lexicon after stripping
// markdown and links, since formatting noise skews the compound score.
type VADER struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVADER() *VADER {
	return &VADER{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VADER) Score(text string) (float64, error) {
	plainText := ConvertMarkdownToText(text)
	sentiment := v.analyzer.PolarityScores(plainText)
	return sentiment.Compound, nil
}

func RemoveLinks(input string) string {
	linkPattern := regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text

	urlPattern := regexp.MustCompile(`https?://\S+|www\.\S+`)
	input = urlPattern.ReplaceAllString(input, "")

	return input
}

func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())

	tagPattern := regexp.MustCompile(`<[^>]*>`)
	stripped := tagPattern.ReplaceAllString(string(output), " ")
	plainText := strings.Join(strings.Fields(stripped), " ")

	return RemoveLinks(plainText)
}
