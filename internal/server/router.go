package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/voluntree/assist/internal/api"
	"github.com/voluntree/assist/internal/api/handlers"
	"github.com/voluntree/assist/internal/api/middleware"
)

type RouterConfig struct {
	ChatHandler      *handlers.ChatHandler
	KnowledgeHandler *handlers.KnowledgeHandler
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	const maxBodyBytes int64 = 64 * 1024

	r.Use(middleware.RequestID)
	r.Use(middleware.SentryMiddleware)
	r.Use(middleware.AccessLog)
	r.Use(middleware.MaxBodyBytes(maxBodyBytes))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/chat", cfg.ChatHandler.Ask)
		r.Get("/knowledge", cfg.KnowledgeHandler.List)
		r.Get("/transcripts", cfg.KnowledgeHandler.Transcripts)
	})

	return r
}
