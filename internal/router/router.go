// internal/router/router.go
package router

import (
	"log/slog"
	"net/http"

	"vocario/internal/config"
	"vocario/internal/handlers"
	"vocario/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Handlers はルーティング対象のハンドラ一式
type Handlers struct {
	User     *handlers.UserHandler
	Deck     *handlers.DeckHandler
	Sentence *handlers.SentenceHandler
	Health   *handlers.HealthHandler
}

// NewRouter はミドルウェアとルートを登録した chi ルーターを返します。
func NewRouter(cfg *config.Config, h Handlers, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	// 許可するのは設定されたオリジンだけ。メソッドとヘッダーはすべて許可する。
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodOptions, http.MethodHead,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	if cfg.Server.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(cfg.Server.RequestTimeout))
	}

	// User profile routes
	r.Post("/user_profiles", h.User.CreateUserProfile)
	r.Get("/user_profiles/lookup", h.User.LookupUser)
	r.Post("/user_profile/{user_id}/decks", h.Deck.CreateDeck)

	r.Route("/users/{user_id}", func(r chi.Router) {
		r.Post("/lang_profiles", h.User.CreateLangProfile)
		r.Get("/lang_profiles", h.User.ListLangProfiles)
		r.Get("/decks", h.Deck.ListDecks)

		r.Route("/senses/{sense_id}/sentence_history", func(r chi.Router) {
			r.Post("/", h.Sentence.GenerateSentence)
			r.Get("/", h.Sentence.ListSentenceHistory)
		})
	})

	// Deck routes
	r.Route("/decks/{deck_id}/cards", func(r chi.Router) {
		r.Get("/", h.Deck.ListCards)
		r.Post("/", h.Deck.CreateCard)
	})

	// Health Check
	r.Get("/health", h.Health.Check)

	return r
}
