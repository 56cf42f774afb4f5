package setup

import (
	"time"

	"github.com/nullchan-dev/nullchan/internal/config"
	"github.com/nullchan-dev/nullchan/internal/handler"
	"github.com/nullchan-dev/nullchan/internal/middleware"
	"github.com/nullchan-dev/nullchan/internal/middleware/ratelimiter"
	"github.com/nullchan-dev/nullchan/internal/service"
	"github.com/nullchan-dev/nullchan/internal/session"
	"github.com/nullchan-dev/nullchan/internal/storage/jsonfile"
)

// bucket expiry; idle identities are dropped after this long
const limiterExpiration = 1 * time.Hour

// Dependencies holds all initialized application dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        *jsonfile.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	GlobalLimiter  *ratelimiter.Limiter
	CreateLimiter  *ratelimiter.Limiter
	LoginLimiter   *ratelimiter.Limiter
}

// SetupDependencies wires storage, services, middleware and the handler.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := jsonfile.New(cfg.Public.DataDir)
	if err != nil {
		return nil, err
	}

	sessions := session.New(cfg.JwtKey(), cfg.SessionTTL())

	auth := service.NewAuth(cfg.AdminPassword(), sessions)
	boards := service.NewBoard(storage)
	threads := service.NewThread(storage)
	replies := service.NewReply(storage)
	actions := service.NewPostAction(storage)
	site := service.NewSite(storage)
	infoPosts := service.NewInfoPost(storage)

	h := handler.New(auth, boards, threads, replies, actions, site, infoPosts, cfg)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(sessions, cfg.Public.SecureCookies),
		GlobalLimiter:  ratelimiter.New(cfg.Public.GlobalRateLimit, cfg.Public.GlobalRateBurst, limiterExpiration),
		CreateLimiter:  ratelimiter.New(cfg.Public.CreateRateLimit, cfg.Public.CreateRateBurst, limiterExpiration),
		LoginLimiter:   ratelimiter.New(1, 5, limiterExpiration),
	}, nil
}

// Cleanup stops background limiter timers.
func (d *Dependencies) Cleanup() {
	d.GlobalLimiter.Stop()
	d.CreateLimiter.Stop()
	d.LoginLimiter.Stop()
}
