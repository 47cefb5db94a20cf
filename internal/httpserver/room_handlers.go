package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"teamchat/internal/domain"
	"teamchat/internal/query"
	"teamchat/internal/simulator"
	"teamchat/internal/store"
)

func handleListRooms(q *query.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondData(w, q.ListRooms())
	}
}

func handleGetRoom(q *query.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		room, err := q.GetRoom(chi.URLParam(r, "roomID"))
		if err != nil {
			respondError(w, http.StatusNotFound, "Room not found")
			return
		}
		respondData(w, room)
	}
}

type roomCreateRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
	Type        string   `json:"type"`
}

func handleCreateRoom(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req roomCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		room, err := domain.NewRoom(req.Name, req.Description, req.Members, domain.RoomType(req.Type), st.Now())
		if err != nil {
			respondErr(w, err)
			return
		}
		respondData(w, st.CreateRoom(room))
	}
}

type messageCreateRequest struct {
	Content string `json:"content"`
	UserID  string `json:"userId"`
}

func handleCreateMessage(st *store.Store, sim *simulator.Simulator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req messageCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if req.Content == "" || req.UserID == "" {
			respondError(w, http.StatusBadRequest, "Content and userId are required")
			return
		}

		roomID := chi.URLParam(r, "roomID")
		msg, err := st.PostMessage(roomID, req.UserID, req.Content)
		if err != nil {
			respondErr(w, err)
			return
		}

		if sim != nil {
			sim.MessageSent(roomID)
		}
		respondData(w, msg)
	}
}

func handleListMessages(q *query.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := queryInt(r, "limit", query.DefaultPageSize)
		offset := queryInt(r, "offset", 0)
		respondData(w, q.ListMessages(chi.URLParam(r, "roomID"), limit, offset))
	}
}

func queryInt(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
