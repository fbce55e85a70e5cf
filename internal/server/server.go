// Package server exposes the chat pipeline over HTTP.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mindhaven/mindhaven/internal/models"
	"github.com/mindhaven/mindhaven/internal/pipeline"
)

const missingMessageReply = "I didn't receive your message. Could you please try again?"

type Server struct {
	pipeline     *pipeline.Pipeline
	historyLimit int
}

func New(p *pipeline.Pipeline, historyLimit int) *Server {
	if historyLimit <= 0 {
		historyLimit = 5
	}
	return &Server{pipeline: p, historyLimit: historyLimit}
}

// Handler returns the routed handler with CORS and request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /chat", s.handleChat)
	mux.HandleFunc("GET /history", s.handleHistory)
	return withCORS(withLogging(mux))
}

type chatRequest struct {
	Message *string `json:"message"`
}

type chatError struct {
	Error      string   `json:"error"`
	Response   string   `json:"response"`
	Mood       string   `json:"mood"`
	Categories []string `json:"categories"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == nil {
		writeJSON(w, http.StatusBadRequest, chatError{
			Error:      "No message provided",
			Response:   missingMessageReply,
			Mood:       models.MoodNeutral.String(),
			Categories: []string{},
		})
		return
	}

	result := s.pipeline.Process(r.Context(), *req.Message)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := s.historyLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	turns, err := s.pipeline.History(r.Context(), limit)
	if err != nil {
		slog.Error("[Server] Failed to load history",
			slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "could not load conversation history",
		})
		return
	}
	if turns == nil {
		turns = []models.ConversationTurn{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"history": turns})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("[Server] Failed to encode response",
			slog.String("error", err.Error()))
	}
}
