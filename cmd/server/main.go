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
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/princeomar/cruise-backend/internal/catalog"
	"github.com/princeomar/cruise-backend/internal/config"
	"github.com/princeomar/cruise-backend/internal/database"
	"github.com/princeomar/cruise-backend/internal/handlers"
	"github.com/princeomar/cruise-backend/internal/i18n"
	"github.com/princeomar/cruise-backend/internal/middleware"
	"github.com/princeomar/cruise-backend/internal/services"
	"github.com/princeomar/cruise-backend/pkg/geoip"
	"github.com/princeomar/cruise-backend/pkg/jwt"
	"github.com/princeomar/cruise-backend/pkg/notify"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting Prince Omar cruise backend")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	loc := cfg.Location()

	// Database
	logger.Info("Connecting to database...")
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 15*time.Second)
	db, err := database.NewConnection(connectCtx, cfg.Database)
	cancelConnect()
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Database connection established")

	if cfg.Server.AutoMigrate {
		applied, err := database.Migrate(context.Background(), db, logger)
		if err != nil {
			logger.Fatalf("Failed to apply migrations: %v", err)
		}
		logger.WithField("applied", applied).Info("Migrations up to date")
	}

	// Redis backs the rate limiter and the geolocation cache
	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.WithError(err).Warn("Redis unreachable; rate limiting fails open until it recovers")
		}
		defer rdb.Close()
	} else {
		logger.Warn("REDIS_ADDR not set; booking rate limiting and geo caching disabled")
	}

	// Outbound notifications
	var (
		notifiers    notify.Multi
		emailSender  *notify.EmailNotifier
		amqpNotifier *notify.AMQPPublisher
	)
	if cfg.SMTP.Enabled() {
		emailSender = notify.NewEmailNotifier(notify.EmailConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			To:       cfg.Business.OperatorEmail,
		})
		notifiers = append(notifiers, emailSender)
		logger.WithField("to", cfg.Business.OperatorEmail).Info("Booking emails enabled")
	}
	if cfg.AMQP.Enabled() {
		amqpNotifier, err = notify.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			logger.WithError(err).Error("Failed to connect to AMQP broker; booking events will not be published")
		} else {
			notifiers = append(notifiers, amqpNotifier)
			logger.WithField("exchange", cfg.AMQP.Exchange).Info("Booking events enabled")
		}
	}
	var notifier notify.Notifier
	if len(notifiers) > 0 {
		notifier = notifiers
	}

	// Repositories
	bookingRepository := database.NewBookingRepository(db)
	visitRepository := database.NewVisitRepository(db)
	adminUserRepository := database.NewAdminUserRepository(db)
	userRoleRepository := database.NewUserRoleRepository(db)
	refreshTokenRepository := database.NewRefreshTokenRepository(db)

	// Services
	logger.Info("Initializing services...")
	jwtService := jwt.NewService(
		cfg.JWT.Secret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	auditService := services.NewAuditService(db, cfg.Security.EnableAuditLog)

	var rateLimitService *services.RateLimitService
	var locator geoip.Locator = geoip.NewIPAPIClient(geoip.IPAPIConfig{
		BaseURL: cfg.Geo.APIURL,
		Timeout: cfg.Geo.Timeout,
	})
	if rdb != nil {
		rateLimitService = services.NewRateLimitService(rdb, services.RateLimitConfig{
			MaxRequests: cfg.RateLimit.BookingRequests,
			Window:      cfg.RateLimit.BookingWindow,
		}, logger)
		locator = geoip.NewCachedLocator(locator, geoip.NewRedisCache(rdb), cfg.Geo.CacheTTL, logger)
	}

	bookingService := services.NewBookingService(bookingRepository, notifier, rateLimitService, cfg.Business.WhatsAppNumber, loc, logger)
	visitService := services.NewVisitService(visitRepository, locator, cfg.Geo.Timeout, logger)
	analyticsService := services.NewAnalyticsService(bookingRepository, visitRepository, auditService, notifier, loc, logger)
	adminAuthService := services.NewAdminAuthService(
		adminUserRepository,
		userRoleRepository,
		refreshTokenRepository,
		jwtService,
		auditService,
		cfg.Security.BcryptCost,
		logger,
	)

	localizer, err := i18n.NewLocalizer(cfg.Server.DefaultLanguage)
	if err != nil {
		logger.Fatalf("Failed to initialize localizer: %v", err)
	}

	// Scheduled jobs
	var cronService *services.CronService
	if cfg.Cron.Enabled {
		jobs := services.CronJobs{
			Dashboard: analyticsService,
			Tokens:    refreshTokenRepository,
			Audit:     auditService,
		}
		if emailSender != nil {
			jobs.Digest = emailSender
		}
		cronService = services.NewCronService(jobs, cfg.Cron.DigestSpec, loc, logger)
		if err := cronService.Start(); err != nil {
			logger.Fatalf("Failed to start cron service: %v", err)
		}
		logger.Info("Cron service started")
	}

	// Handlers
	catalogHandler := handlers.NewCatalogHandler(catalog.NewRenderer("/assets"), catalog.Contact{
		WhatsApp: cfg.Business.WhatsAppNumber,
		Phone:    cfg.Business.ContactPhone,
		Email:    cfg.Business.ContactEmail,
	}, loc)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	visitHandler := handlers.NewVisitHandler(visitService)
	adminAuthHandler := handlers.NewAdminAuthHandler(adminAuthService, logger)
	adminHandler := handlers.NewAdminHandler(analyticsService, logger)

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		logger.Fatalf("Invalid TRUSTED_PROXIES: %v", err)
	}
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length", "Content-Language", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", healthCheckHandler(db))
	if cfg.Server.AssetsDir != "" {
		router.Static("/assets", cfg.Server.AssetsDir)
	}

	v1 := router.Group("/api/v1")
	v1.Use(middleware.Locale(localizer))
	{
		v1.GET("/pages/home", catalogHandler.Home)
		v1.GET("/cruises", catalogHandler.ListCruises)
		v1.GET("/cruises/:id", catalogHandler.GetCruise)
		v1.GET("/cruises/:id/departures", catalogHandler.Departures)
		v1.GET("/cruises/:id/quote", catalogHandler.Quote)
		v1.GET("/accommodations", catalogHandler.Accommodations)
		v1.GET("/gallery", catalogHandler.Gallery)
		v1.GET("/contact", catalogHandler.Contact)
		v1.GET("/i18n/languages", catalogHandler.Languages)

		v1.POST("/bookings", bookingHandler.CreateBooking)
		v1.POST("/visits", visitHandler.TrackVisit)

		adminAuth := v1.Group("/admin/auth")
		{
			adminAuth.POST("/sign-in", adminAuthHandler.SignIn)
			adminAuth.POST("/sign-up", adminAuthHandler.SignUp)
			adminAuth.POST("/refresh", adminAuthHandler.Refresh)
			adminAuth.POST("/sign-out", adminAuthHandler.SignOut)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware(jwtService, logger))
		admin.Use(middleware.RequireAdmin(adminAuthService, logger))
		{
			admin.GET("/auth/profile", adminAuthHandler.GetProfile)
			admin.POST("/roles", adminAuthHandler.GrantRole)
			admin.GET("/dashboard", adminHandler.GetDashboard)
			admin.GET("/bookings", adminHandler.ListBookings)
			admin.PATCH("/bookings/:id/status", adminHandler.UpdateBookingStatus)
		}
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	if cronService != nil {
		cronService.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	// Visits accepted before shutdown still get written
	visitService.Wait()

	if amqpNotifier != nil {
		if err := amqpNotifier.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close AMQP connection")
		}
	}

	logger.Info("Server exited successfully")
}

// requestLogger middleware for logging HTTP requests
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"ip":         c.ClientIP(),
			"latency_ms": time.Since(start).Milliseconds(),
			"user_agent": c.Request.UserAgent(),
			"has_auth":   c.GetHeader("Authorization") != "",
		}
		if userID, exists := c.Get("user_id"); exists {
			fields["user_id"] = userID
		}
		if lang := c.Writer.Header().Get("Content-Language"); lang != "" {
			fields["lang"] = lang
		}

		entry := logger.WithFields(fields)

		if len(c.Errors) > 0 {
			for i, err := range c.Errors {
				entry = entry.WithField(fmt.Sprintf("error_%d", i), err.Error())
			}
			entry.Error("Request failed with errors")
			return
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			entry.Error("Request completed with server error")
		case status >= 400:
			entry.Warn("Request completed with client error")
		default:
			entry.Debug("Request completed successfully")
		}
	}
}

// healthCheckHandler returns a health check endpoint
func healthCheckHandler(db database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "unhealthy",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"database":  "healthy",
			"version":   version,
			"timestamp": time.Now().Unix(),
		})
	}
}
