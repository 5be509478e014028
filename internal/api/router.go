package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/moviehub/accounts-api/internal/api/handler"
	"github.com/moviehub/accounts-api/internal/api/middleware"
	"github.com/moviehub/accounts-api/internal/core/service"
	mongodb "github.com/moviehub/accounts-api/internal/infrastructure/db/mongo"
	redisdb "github.com/moviehub/accounts-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtCfg service.JWTConfig, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	imageStore, err := mongodb.NewImageStore(db)
	if err != nil {
		return nil, err
	}
	catalog := redisdb.NewMovieCatalog(rdb)

	tokenService := service.NewTokenService(jwtCfg)
	authService := service.NewAuthService(userRepo, tokenService)
	listService := service.NewListService(userRepo, catalog)
	profileService := service.NewProfileService(userRepo, imageStore)

	authHandler := handler.NewAuthHandler(authService)
	listHandler := handler.NewListHandler(listService)
	profileHandler := handler.NewProfileHandler(profileService)
	protect := middleware.Protect(tokenService, userRepo)

	// --- Auth routes ---
	e.POST("/sign-up", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// --- Movie lists (all guarded) ---
	e.GET("/favorites", listHandler.GetFavorites, protect)
	e.GET("/favorites/add/:id", listHandler.AddFavorite, protect)
	e.GET("/favorites/remove/:id", listHandler.RemoveFavorite, protect)
	e.GET("/watch-list", listHandler.GetWatchList, protect)
	e.GET("/watch-list/add/:id", listHandler.AddToWatchList, protect)
	e.GET("/watch-list/remove/:id", listHandler.RemoveFromWatchList, protect)

	// --- Profile & search ---
	e.POST("/upload/profile-img", profileHandler.UploadProfileImage, protect)
	e.GET("/profile-img", profileHandler.GetProfileImage, protect)
	e.POST("/search", profileHandler.SearchUsers)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
