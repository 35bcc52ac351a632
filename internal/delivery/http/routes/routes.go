package routes

import (
	"mitronet/internal/config"
	"mitronet/internal/database"
	"mitronet/internal/delivery/http/handler"
	"mitronet/internal/delivery/http/middleware"
	"mitronet/internal/repository"
	"mitronet/internal/session"
	"mitronet/internal/storage"
	ucadmin "mitronet/internal/usecase/admin"
	ucauth "mitronet/internal/usecase/auth"
	ucfeed "mitronet/internal/usecase/feed"
	ucpost "mitronet/internal/usecase/post"
	ucprofile "mitronet/internal/usecase/profile"
	ucsocial "mitronet/internal/usecase/social"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/static"
)

type Registry struct {
	cfg      config.Config
	db       database.DB
	sessions *session.Store
	images   *storage.ImageStore
}

func NewRegistry(cfg config.Config, db database.DB, sessions *session.Store, images *storage.ImageStore) *Registry {
	return &Registry{cfg: cfg, db: db, sessions: sessions, images: images}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	userRepo := repository.NewPostgresUserRepository(r.db)
	profileRepo := repository.NewPostgresProfileRepository(r.db)
	postRepo := repository.NewPostgresPostRepository(r.db)

	authUC := ucauth.NewService(userRepo, r.cfg.Admin.Email)
	profileUC := ucprofile.NewService(userRepo, profileRepo)
	postUC := ucpost.NewService(postRepo)
	feedUC := ucfeed.NewService(userRepo, profileRepo, postRepo)
	socialUC := ucsocial.NewService(userRepo, profileRepo)
	adminUC := ucadmin.NewService(userRepo)

	authMw := middleware.NewAuthMiddleware(r.sessions, r.cfg.Session.CookieName)
	adminMw := middleware.NewAdminMiddleware()

	authHandler := handler.NewAuthHandler(authUC, r.sessions, r.cfg.Session.CookieName, r.cfg.Session.TTL)
	profileHandler := handler.NewProfileHandler(profileUC, r.images)
	postHandler := handler.NewPostHandler(postUC)
	feedHandler := handler.NewFeedHandler(feedUC)
	socialHandler := handler.NewSocialHandler(socialUC)
	dashboardHandler := handler.NewDashboardHandler(adminUC)

	handler.NewHealthHandler().RegisterRoutes(app)

	app.Use("/uploads", static.New(r.images.Dir()))
	// The SPA historically reads avatars from /profile as well.
	app.Use("/profile/uploads", static.New(r.images.Dir()))

	authHandler.RegisterRoutes(app)

	protected := app.Group("", authMw.Middleware())
	authHandler.RegisterProtectedRoutes(protected)
	profileHandler.RegisterRoutes(protected)
	postHandler.RegisterRoutes(protected)
	feedHandler.RegisterRoutes(protected)
	socialHandler.RegisterRoutes(protected)

	adminOnly := protected.Group("", adminMw.Middleware())
	dashboardHandler.RegisterRoutes(adminOnly)
}
