package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"trustfluence-chatbot/internal/handlers"
	"trustfluence-chatbot/internal/middleware"
)

func New(chatHandler *handlers.ChatHandler) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS())

	r.Get("/", handlers.Home)
	r.Get("/health", handlers.Health)

	r.Post("/chat", chatHandler.Chat)

	return r
}
