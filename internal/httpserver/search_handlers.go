package httpserver

import (
	"net/http"

	"teamchat/internal/query"
)

func handleSearchMessages(q *query.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := r.URL.Query().Get("q")
		if term == "" {
			respondError(w, http.StatusBadRequest, "Search query is required")
			return
		}
		respondData(w, q.SearchMessages(term, r.URL.Query().Get("roomId")))
	}
}

func handleSearchUsers(q *query.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := r.URL.Query().Get("q")
		if term == "" {
			respondError(w, http.StatusBadRequest, "Search query is required")
			return
		}
		respondData(w, q.SearchUsers(term))
	}
}
