package router

import (
	"net/http"
	"time"

	"github.com/actuallystonmai/storefront-assistant/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

func Setup(h *handler.Handler, log zerolog.Logger, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	// Routes
	r.Get("/health", healthCheck)
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.SearchProducts)
		r.Get("/{productID}", h.GetProduct)
		r.Get("/{productID}/bought-together", h.GetBoughtTogether)
	})
	r.Get("/recommendations", h.GetRecommendations)
	r.Post("/recommendations/batch", h.PostBatchRecommendations)
	r.Post("/chat", h.PostChat)
	r.Post("/chat/welcome", h.PostChatWelcome)
	r.Post("/cart/quote", h.PostCartQuote)

	return r
}

// requestLogger logs one line per request once the response is written.
func requestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				log.Info().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Int("status", ww.Status()).
					Int("bytes", ww.BytesWritten()).
					Dur("duration", time.Since(start)).
					Str("request_id", middleware.GetReqID(r.Context())).
					Msg("request")
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
