package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"teamchat/internal/domain"
	"teamchat/internal/query"
	"teamchat/internal/store"
)

type loginRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

func handleLogin(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if req.Name == "" || req.Avatar == "" {
			respondError(w, http.StatusBadRequest, "Name and avatar are required")
			return
		}

		user, err := domain.NewUser(req.Name, req.Avatar, domain.StatusOnline, st.Now())
		if err != nil {
			respondErr(w, err)
			return
		}

		st.Login(user)
		respondData(w, user)
	}
}

func handleListUsers(q *query.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondData(w, q.ListUsers())
	}
}

func handleGetUser(q *query.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := q.GetUser(chi.URLParam(r, "userID"))
		if err != nil {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		respondData(w, user)
	}
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

func handleUpdateUserStatus(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req statusUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		status, err := domain.ValidateStatus(req.Status)
		if err != nil {
			respondErr(w, err)
			return
		}

		user, err := st.UpdateUserStatus(chi.URLParam(r, "userID"), status)
		if err != nil {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		respondData(w, user)
	}
}
