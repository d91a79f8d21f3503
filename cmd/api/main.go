package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/peerclass/peerclass-api/config"
	"github.com/peerclass/peerclass-api/internal/cache"
	"github.com/peerclass/peerclass-api/internal/handlers"
	"github.com/peerclass/peerclass-api/internal/middleware"
	"github.com/peerclass/peerclass-api/internal/models"
	"github.com/peerclass/peerclass-api/internal/repository"
	"github.com/peerclass/peerclass-api/internal/services"
	"github.com/peerclass/peerclass-api/pkg/db"
	"github.com/peerclass/peerclass-api/pkg/logger"
	"github.com/peerclass/peerclass-api/pkg/metrics"
	"github.com/peerclass/peerclass-api/pkg/profiling"
	"github.com/peerclass/peerclass-api/pkg/tracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// registerRoutes wires the public and admin API routes onto the router.
func registerRoutes(
	router *gin.Engine,
	generalRateLimiter, authRateLimiter, formRateLimiter *middleware.RateLimiter,
	adminAuth gin.HandlerFunc,
	healthHandler *handlers.HealthHandler,
	adminAuthHandler *handlers.AdminAuthHandler,
	courseHandler *handlers.CourseHandler,
	registrationHandler *handlers.RegistrationHandler,
	contactHandler *handlers.ContactHandler,
) {
	// Utility endpoints
	router.GET("/", healthHandler.Root)
	router.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	router.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.Handler()))

	// Admin authentication (public)
	admin := router.Group("/admin")
	admin.POST("/register", authRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(10*1024), adminAuthHandler.Register)
	admin.POST("/login", authRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(10*1024), adminAuthHandler.Login)

	// Courses: reads and proposals are public, mutations are admin only
	courses := router.Group("/courses")
	courses.GET("", generalRateLimiter.Middleware(), courseHandler.List)
	courses.GET("/:id", generalRateLimiter.Middleware(), courseHandler.GetByID)
	courses.POST("", formRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), courseHandler.Create)
	courses.PATCH("/:id", adminAuth, middleware.BodySizeLimitMiddleware(100*1024), courseHandler.Update)
	courses.PATCH("/:id/status", adminAuth, middleware.BodySizeLimitMiddleware(10*1024), courseHandler.UpdateStatus)
	courses.DELETE("/:id", adminAuth, courseHandler.Delete)

	// Public forms
	router.POST("/registration", formRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), registrationHandler.Submit)
	router.POST("/contact", formRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), contactHandler.Submit)
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting PeerClass API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
		cfg.Observability.OTLPEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Continuous profiling
	profilerStop, err := profiling.InitProfiler(
		cfg.Profiling,
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
	)
	if err != nil {
		logger.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	defer profilerStop()

	// Start infrastructure metrics collection
	metrics.RecordInfrastructureMetrics()

	// Initialize PostgreSQL connection pool
	pool, err := db.NewPool(context.Background(), db.PoolConfig{
		URL:      cfg.Database.URL,
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		logger.Fatal("Failed to initialize database connection pool", zap.Error(err))
	}
	defer pool.Close()

	// NOTE: Database migrations run separately via the migrate command.

	// Repositories
	adminRepo := repository.NewAdminRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	registrationRepo := repository.NewRegistrationRepository(pool)
	contactRepo := repository.NewContactRepository(pool)

	// Course cache, populated synchronously before the server accepts requests
	cacheEnabled := !cfg.Cache.DisableCoursesCache
	courseCache := cache.NewCourseCache(courseRepo.GetAll, cfg.Cache.CourseTTLSeconds)
	if cacheEnabled {
		if err := courseCache.Initialize(context.Background()); err != nil {
			logger.Fatal("Failed to initialize course cache", zap.Error(err))
		}
	} else {
		logger.Warn("Course cache is DISABLED - reading from database on every request")
	}

	// Services
	adminAuthService := services.NewAdminAuthService(adminRepo, cfg)
	courseService := services.NewCourseService(courseRepo, courseCache, cacheEnabled)
	registrationService := services.NewRegistrationService(registrationRepo, courseRepo)
	contactService := services.NewContactService(contactRepo)

	// Handlers
	cacheReadyFunc := courseCache.IsReady
	if !cacheEnabled {
		cacheReadyFunc = func() bool { return true }
	}
	healthHandler := handlers.NewHealthHandler(pool, cacheReadyFunc)
	adminAuthHandler := handlers.NewAdminAuthHandler(adminAuthService)
	courseHandler := handlers.NewCourseHandler(courseService)
	registrationHandler := handlers.NewRegistrationHandler(registrationService)
	contactHandler := handlers.NewContactHandler(contactService)

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// CORS: only configured origins, plus localhost in development
	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "traceparent", "tracestate"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Rate limiters, sized per endpoint type
	generalRateLimiter := middleware.NewRateLimiter(100, 200) // 100 req/sec, burst of 200
	authRateLimiter := middleware.NewRateLimiter(1, 5)        // 1 req/sec, burst of 5 (login abuse prevention)
	formRateLimiter := middleware.NewRateLimiter(5, 10)       // 5 req/sec, burst of 10 (prevent spam)

	adminAuth := middleware.AdminAuthMiddleware(adminAuthService.TokenManager(), models.RoleAdmin)

	registerRoutes(router,
		generalRateLimiter, authRateLimiter, formRateLimiter,
		adminAuth,
		healthHandler, adminAuthHandler, courseHandler, registrationHandler, contactHandler)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
