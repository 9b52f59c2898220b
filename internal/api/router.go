package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iGEORGE17/blog-api/internal/api/handler"
	"github.com/iGEORGE17/blog-api/internal/api/middleware"
	"github.com/iGEORGE17/blog-api/internal/core/ports"
	"github.com/iGEORGE17/blog-api/internal/core/service"
	blogmongo "github.com/iGEORGE17/blog-api/internal/infrastructure/db/mongo"
	blogredis "github.com/iGEORGE17/blog-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, audit ports.AuditSink, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("blog"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := blogmongo.NewUserRepository(db)
	postRepo := blogmongo.NewPostRepository(db)
	throttle := blogredis.NewLoginThrottle(rdb, 0)

	codec := service.NewJWTCodec(jwtSecret, 24*time.Hour)
	authService := service.NewAuthService(userRepo, codec, throttle, audit, log)
	userService := service.NewUserService(userRepo, audit, log)
	postService := service.NewPostService(postRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	authRequired := middleware.Auth(codec)

	// --- User routes ---
	users := e.Group("/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.POST("/logout", authHandler.Logout, authRequired)
	users.GET("/me", userHandler.Me, authRequired)
	users.PATCH("/edit_profile", userHandler.UpdateProfile, authRequired)
	users.GET("/admin/users", userHandler.ListUsers, authRequired)
	users.DELETE("/admin/users/:id", userHandler.DeleteUser, authRequired)

	// --- Post routes ---
	posts := e.Group("/posts")
	posts.POST("", postHandler.Create, authRequired)
	posts.GET("", postHandler.List)
	posts.GET("/me", postHandler.Mine, authRequired)
	posts.GET("/:id", postHandler.Get)
	posts.PATCH("/:id", postHandler.Update, authRequired)
	posts.DELETE("/:id", postHandler.Delete, authRequired)

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
