package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"likebike_backend/internal/config"
	"likebike_backend/internal/controller"
	"likebike_backend/internal/demo"
	"likebike_backend/internal/jobs"
	"likebike_backend/internal/repository"
	"likebike_backend/internal/service"
	"likebike_backend/pkg/database"
	"likebike_backend/pkg/logger"
	"likebike_backend/pkg/monitoring"
	"likebike_backend/pkg/security"
	"likebike_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	// Demo mode only.
	DemoStore *demo.Store
	scheduler *jobs.Scheduler

	tracerProvider *sdktrace.TracerProvider
}

type repositories struct {
	user    *repository.UserRepository
	token   *repository.RefreshTokenRepository
	reward  *repository.RewardRepository
	quiz    *repository.QuizRepository
	bikeLog *repository.BikeLogRepository
	course  *repository.CourseRepository
}

type services struct {
	storage *service.StorageService
	auth    *service.AuthService
	user    *service.UserService
	quiz    *service.QuizService
	bikeLog *service.BikeLogService
	course  *service.CourseService
	news    *service.NewsService
}

type controllers struct {
	auth    *controller.AuthController
	user    *controller.UserController
	quiz    *controller.QuizController
	bikeLog *controller.BikeLogController
	course  *controller.CourseController
	news    *controller.NewsController
	health  *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:    repository.NewUserRepository(db),
		token:   repository.NewRefreshTokenRepository(db),
		reward:  repository.NewRewardRepository(db),
		quiz:    repository.NewQuizRepository(db),
		bikeLog: repository.NewBikeLogRepository(db),
		course:  repository.NewCourseRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*services, error) {
	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	return &services{
		storage: storage,
		auth:    service.NewAuthService(repos.user, repos.token, cfg),
		user:    service.NewUserService(repos.user, repos.reward, db),
		quiz:    service.NewQuizService(repos.quiz, repos.user, repos.reward, db),
		bikeLog: service.NewBikeLogService(repos.bikeLog, storage),
		course:  service.NewCourseService(repos.course, storage),
		news:    service.NewNewsService(cfg, rdb),
	}, nil
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:    controller.NewAuthController(s.auth),
		user:    controller.NewUserController(s.user),
		quiz:    controller.NewQuizController(s.quiz),
		bikeLog: controller.NewBikeLogController(s.bikeLog),
		course:  controller.NewCourseController(s.course),
		news:    controller.NewNewsController(s.news),
		health:  controller.NewHealthController(db, a.Config.Server.Mode),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
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

// setupDemo replaces the whole API surface with the in-memory simulation:
// every request that is not /metrics falls through to the adapter, and the
// cron scheduler keeps the daily and weekly counters honest.
func (a *App) setupDemo(router *gin.Engine, cfg *config.Config) error {
	store := demo.NewStore()
	adapter := demo.NewAdapter(store, logger.Log)
	a.DemoStore = store

	router.NoRoute(func(ctx *gin.Context) {
		var body []byte
		if ctx.Request.Body != nil {
			body, _ = ctx.GetRawData()
		}

		latency := time.Duration(cfg.Demo.LatencyMillis) * time.Millisecond
		if latency > 0 {
			time.Sleep(latency)
		}

		result := adapter.Handle(demo.Request{
			Method: ctx.Request.Method,
			Path:   ctx.Request.URL.Path,
			Body:   body,
		})
		ctx.JSON(result.Status, result.Envelope)
	})

	scheduler, err := jobs.NewScheduler(store)
	if err != nil {
		return err
	}
	scheduler.Start()
	a.scheduler = scheduler

	logger.Log.Info("demo mode active, serving simulated backend",
		zap.Int("latency_millis", cfg.Demo.LatencyMillis))
	return nil
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	app := &App{Config: cfg}

	monitoring.Init()

	router := gin.Default()
	app.Router = router
	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("likebike-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	router.GET("/metrics", monitoring.PrometheusHandler())

	if cfg.Server.Mode == "demo" {
		if err := app.setupDemo(router, cfg); err != nil {
			logger.Log.Fatal("Failed to set up demo mode", zap.Error(err))
		}
		return app
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}
	app.DB = db

	// Redis only backs the news cache, so a missing instance degrades
	// rather than aborts.
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis unavailable, news cache disabled", zap.Error(err))
		rdb = nil
	}
	app.Redis = rdb

	repos := app.initRepositories(db)
	svcs, err := app.initServices(repos, cfg, db, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	ctrls := app.initControllers(svcs, db)

	app.registerRoutes(router, ctrls, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

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

	if a.scheduler != nil {
		a.scheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
