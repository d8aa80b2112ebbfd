package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quizdeck_backend/internal/config"
	"quizdeck_backend/internal/controller"
	"quizdeck_backend/internal/repository"
	"quizdeck_backend/internal/service"
	"quizdeck_backend/pkg/database"
	"quizdeck_backend/pkg/logger"
	"quizdeck_backend/pkg/monitoring"
	"quizdeck_backend/pkg/security"
	"quizdeck_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user      *repository.UserRepository
	quiz      *repository.QuizRepository
	attempt   *repository.AttemptRepository
	bookmark  *repository.BookmarkRepository
	rating    *repository.RatingRepository
	analytics *repository.AnalyticsRepository
}

type services struct {
	auth      *service.AuthService
	user      *service.UserService
	quiz      *service.QuizService
	attempt   *service.AttemptService
	analytics *service.AnalyticsService
}

type controllers struct {
	auth      *controller.AuthController
	user      *controller.UserController
	quiz      *controller.QuizController
	attempt   *controller.AttemptController
	analytics *controller.AnalyticsController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:      repository.NewUserRepository(db),
		quiz:      repository.NewQuizRepository(db),
		attempt:   repository.NewAttemptRepository(db),
		bookmark:  repository.NewBookmarkRepository(db),
		rating:    repository.NewRatingRepository(db),
		analytics: repository.NewAnalyticsRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, rdb)
	s.quiz = service.NewQuizService(repos.quiz, repos.bookmark, repos.rating)
	s.attempt = service.NewAttemptService(repos.attempt, repos.quiz, repos.user, rdb)
	s.analytics = service.NewAnalyticsService(repos.analytics)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth, s.user),
		user:      controller.NewUserController(s.user, s.quiz),
		quiz:      controller.NewQuizController(s.quiz),
		attempt:   controller.NewAttemptController(s.attempt),
		analytics: controller.NewAnalyticsController(s.analytics),
		health:    controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.RequestID())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("quizdeck", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
