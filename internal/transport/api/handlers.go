package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sandevgo/docbot/internal/core"
)

const maxRequestBody = 1 << 20

type thinkRequest struct {
	Conversation []core.Turn `json:"conversation"`
}

type thinkResponse struct {
	RequestID  string        `json:"request_id"`
	Answer     *string       `json:"answer"`
	Sources    []core.Source `json:"sources"`
	Unanswered bool          `json:"unanswered"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": core.BotVersion,
	})
}

func (s *Server) think(w http.ResponseWriter, r *http.Request) {
	var req thinkRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if err := core.ValidateConversation(req.Conversation); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	reply := s.agent.Think(r.Context(), req.Conversation)

	resp := thinkResponse{
		RequestID:  reply.RequestID,
		Sources:    reply.Sources,
		Unanswered: reply.Unanswered,
	}
	if !reply.Answered {
		// Mirrors the core contract: no answer and no sources.
		writeJSON(w, http.StatusBadGateway, resp)
		return
	}
	resp.Answer = &reply.Text
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
