package router

import (
	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/nullchan-dev/nullchan/internal/middleware"
	"github.com/nullchan-dev/nullchan/internal/middleware/metrics"
	"github.com/nullchan-dev/nullchan/internal/setup"
)

// New creates and configures the chi router with all the routes.
// Middleware order matters: admin detection runs before the rate
// limiters so admin requests bypass them.
func New(deps *setup.Dependencies) *chi.Mux {
	cfg := deps.Config
	h := deps.Handler
	authMw := deps.AuthMiddleware

	r := chi.NewRouter()

	r.Use(chi_middleware.Recoverer)
	r.Use(chi_middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Public.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	// Strict CSP: this is a JSON API, nothing should load scripts or frames.
	apiCSP := "default-src 'none'; frame-ancestors 'none'"
	r.Use(mw.SecurityHeaders(cfg.Public.SecureCookies, apiCSP))
	r.Use(metrics.Middleware)
	r.Use(chi_middleware.RequestSize(cfg.Public.MaxBodyBytes))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/api/health", h.Health)

	r.Route("/api", func(api chi.Router) {
		api.Use(authMw.OptionalAdmin())
		api.Use(authMw.ClientIdentity())
		api.Use(mw.RateLimit(deps.GlobalLimiter, mw.GetIP))

		createLimit := mw.RateLimit(deps.CreateLimiter, mw.GetIP)

		// Public surface
		api.Get("/boards", h.GetBoards)
		api.Get("/boards/{boardId}/threads", h.GetThreads)
		api.With(createLimit).Post("/boards/{boardId}/threads", h.CreateThread)
		api.Get("/threads/{threadId}", h.GetThread)
		api.With(createLimit).Post("/threads/{threadId}/replies", h.CreateReply)
		api.Post("/posts/{id}/{action}", h.PostAction)
		api.Get("/config", h.GetSiteConfig)
		api.Get("/info-posts", h.GetInfoPosts)

		// Brute-force protection on login
		api.With(mw.RateLimit(deps.LoginLimiter, mw.GetIP)).Post("/admin/login", h.Login)
		api.Post("/admin/logout", h.Logout)

		// Admin-only mutations
		api.Group(func(admin chi.Router) {
			admin.Use(authMw.AdminOnly())

			admin.Post("/boards", h.CreateBoard)
			admin.Put("/boards/reorder", h.ReorderBoards)
			admin.Put("/boards/{boardId}", h.UpdateBoard)
			admin.Delete("/boards/{boardId}", h.DeleteBoard)

			admin.Put("/threads/{threadId}", h.UpdateThread)
			admin.Delete("/threads/{threadId}", h.DeleteThread)
			admin.Put("/replies/{replyId}", h.UpdateReply)
			admin.Delete("/replies/{replyId}", h.DeleteReply)

			admin.Put("/config", h.UpdateSiteConfig)
			admin.Post("/info-posts", h.CreateInfoPost)
			admin.Delete("/info-posts/{id}", h.DeleteInfoPost)
		})
	})

	return r
}
