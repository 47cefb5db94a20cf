package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"teamchat/internal/config"
	"teamchat/internal/query"
	"teamchat/internal/simulator"
	"teamchat/internal/store"
)

// NewRouter constructs the main HTTP router and wires routes and middleware.
// sim may be nil when the response simulator is disabled.
func NewRouter(cfg *config.Config, st *store.Store, q *query.Service, sim *simulator.Simulator, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(recoverer(log))
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message":"teamchat API","version":"1.0.0"}`))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/login", handleLogin(st))
			r.Get("/", handleListUsers(q))
			r.Get("/{userID}", handleGetUser(q))
			r.Put("/{userID}/status", handleUpdateUserStatus(st))
		})

		r.Route("/rooms", func(r chi.Router) {
			r.Get("/", handleListRooms(q))
			r.Post("/", handleCreateRoom(st))
			r.Get("/{roomID}", handleGetRoom(q))
			r.Post("/{roomID}/messages", handleCreateMessage(st, sim))
			r.Get("/{roomID}/messages", handleListMessages(q))
		})

		r.Route("/messages", func(r chi.Router) {
			r.Post("/{messageID}/reactions", handleAddReaction(st))
			r.Delete("/{messageID}/reactions", handleRemoveReaction(st))
		})

		r.Route("/search", func(r chi.Router) {
			r.Get("/messages", handleSearchMessages(q))
			r.Get("/users", handleSearchUsers(q))
		})
	})

	return r
}

// recoverer turns an unhandled panic into an enveloped 500 and logs the
// detail server-side only.
func recoverer(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic recovered",
						zap.Any("panic", rec),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
					)
					respondError(w, http.StatusInternalServerError, "Internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
