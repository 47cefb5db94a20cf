package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"teamchat/internal/store"
)

type reactionRequest struct {
	Emoji  string `json:"emoji"`
	UserID string `json:"userId"`
}

// handleAddReaction toggles the (userId, emoji) pair on the message: a
// duplicate pair is removed instead of appended twice.
func handleAddReaction(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if req.Emoji == "" || req.UserID == "" {
			respondError(w, http.StatusBadRequest, "Emoji and userId are required")
			return
		}

		msg, err := st.ToggleReaction(chi.URLParam(r, "messageID"), req.UserID, req.Emoji)
		if err != nil {
			respondError(w, http.StatusNotFound, "Message not found")
			return
		}
		respondData(w, msg)
	}
}

// handleRemoveReaction removes the pair when present; removing an absent
// pair still succeeds, making the endpoint idempotent.
func handleRemoveReaction(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if req.Emoji == "" || req.UserID == "" {
			respondError(w, http.StatusBadRequest, "Emoji and userId are required")
			return
		}

		msg, err := st.RemoveReaction(chi.URLParam(r, "messageID"), req.UserID, req.Emoji)
		if err != nil {
			respondError(w, http.StatusNotFound, "Message not found")
			return
		}
		respondData(w, msg)
	}
}
