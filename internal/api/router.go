package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ibretsam/eCommerce-API/internal/api/handler"
	"github.com/ibretsam/eCommerce-API/internal/api/middleware"
	"github.com/ibretsam/eCommerce-API/internal/core/service"
	"github.com/ibretsam/eCommerce-API/internal/infrastructure/config"
	mongodb "github.com/ibretsam/eCommerce-API/internal/infrastructure/db/mongo"
	redisdb "github.com/ibretsam/eCommerce-API/internal/infrastructure/db/redis"
	"github.com/ibretsam/eCommerce-API/internal/infrastructure/identity"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	productRepo := mongodb.NewProductRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	accountRepo := mongodb.NewAccountRepository(db)
	revocations := redisdb.NewRevocationStore(rdb, cfg.TokenTTL)

	provider := identity.NewProvider(accountRepo, revocations, identity.Config{
		Secret: cfg.JWTSecret,
		Issuer: cfg.ProjectID,
		TTL:    cfg.TokenTTL,
	})

	authService := service.NewAuthService(provider, userRepo, log)
	productService := service.NewProductService(productRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	requireAuth := middleware.Auth(authService)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/verify-token", authHandler.VerifyToken)
	auth.POST("/logout", authHandler.Logout, requireAuth)
	auth.GET("/me", authHandler.Me, requireAuth)

	// --- Product routes (seed is the only unauthenticated one) ---
	e.POST("/api/product/seed", productHandler.Seed)

	product := e.Group("/api/product", requireAuth)
	product.GET("", productHandler.List)
	product.GET("/search", productHandler.Search)
	product.GET("/:id", productHandler.Get)
	product.POST("", productHandler.Create)
	product.PUT("/:id", productHandler.Update)
	product.DELETE("/:id", productHandler.Delete)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
