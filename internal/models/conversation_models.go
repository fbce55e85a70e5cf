package models

import "time"

// Mood is the discrete sentiment label assigned to a message.
type Mood string

const (
	MoodHappy   Mood = "Happy"
	MoodNeutral Mood = "Neutral"
	MoodSad     Mood = "Sad"
)

func (m Mood) String() string {
	return string(m)
}

type ConversationTurn struct {
	ID          string    `json:"id,omitempty"`
	UserMessage string    `json:"user_message"`
	BotResponse string    `json:"bot_response"`
	Mood        Mood      `json:"mood"`
	Categories  []string  `json:"categories"`
	Timestamp   time.Time `json:"timestamp"`
}

type ChatResult struct {
	Response   string   `json:"response"`
	Mood       Mood     `json:"mood"`
	Categories []string `json:"categories"`
	Loading    bool     `json:"loading"`
}
