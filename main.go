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
	"github.com/rs/zerolog/log"

	"github.com/debreiyesus/church-server/src/config"
	"github.com/debreiyesus/church-server/src/database"
	"github.com/debreiyesus/church-server/src/handlers"
	"github.com/debreiyesus/church-server/src/logging"
	"github.com/debreiyesus/church-server/src/middleware"
	"github.com/debreiyesus/church-server/src/repositories"
	"github.com/debreiyesus/church-server/src/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if cfg.SMSConfigFile != "" {
		if err := cfg.ApplySMSFile(cfg.SMSConfigFile); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load SMS config file: %v\n", err)
			os.Exit(1)
		}
	}

	// Initialize structured logging
	logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	log.Info().
		Int("port", cfg.Port).
		Str("log_level", cfg.LogLevel).
		Msg("starting server")

	// Initialize database
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.New(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	log.Info().Msg("database connected")

	// Initialize JWT secret in middleware
	if err := middleware.SetJWTSecret(cfg.JWTSecret); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize JWT secret")
	}

	pool := db.GetPool()

	// Repositories
	memberRepo := repositories.NewMemberRepository(pool)
	adminRepo := repositories.NewAdminRepository(pool)
	baptismRepo := repositories.NewBaptismRepository(pool)
	kontingentRepo := repositories.NewKontingentRepository(pool)
	smsRepo := repositories.NewSmsRepository(pool)
	auditRepo := repositories.NewAuditRepository(pool)

	// File uploads
	uploadService, err := services.NewUploadService(cfg.UploadDir, cfg.BaseURL, cfg.MaxUploadBytes)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize upload directory")
	}

	// SMS gateway (optional — missing credentials disable sending)
	var smsSender services.SMSSender
	if cfg.SMSGatewayURL != "" && cfg.SMSGatewayAPIKey != "" {
		smsSender = services.NewGatewaySMSClient(cfg.SMSGatewayURL, cfg.SMSGatewayAPIKey, cfg.SMSSenderID)
		log.Info().Str("gateway", cfg.SMSGatewayURL).Msg("SMS gateway configured")
	} else {
		log.Warn().Msg("SMS gateway not configured - sending disabled")
	}

	// Services
	auditService := services.NewAuditService(auditRepo)
	authService := services.NewAuthService(adminRepo)
	adminService := services.NewAdminService(adminRepo, auditService)
	memberService := services.NewMemberService(memberRepo, auditService)
	baptismService := services.NewBaptismService(baptismRepo, auditService)
	kontingentService := services.NewKontingentService(kontingentRepo, auditService)
	smsService := services.NewSMSService(smsRepo, smsSender, cfg.SMSCostPerMessage)
	churchService := services.NewChurchService(pool, auditService)
	newsService := services.NewNewsService(pool, auditService)
	eventService := services.NewEventService(pool, auditService)
	photoService := services.NewPhotoService(pool, auditService, uploadService)
	statsService := services.NewStatsService(pool, churchService, newsService, eventService)

	// Seed the initial super admin on first run
	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		created, err := adminService.EnsureSuperAdmin(context.Background(), cfg.AdminUsername, cfg.AdminPassword)
		if err != nil {
			log.Error().Err(err).Msg("failed to seed initial super admin")
		} else if created {
			log.Info().Str("username", cfg.AdminUsername).Msg("initial super admin created")
		}
	}

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.Recovery())

	// CORS for the frontend application
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	setupRoutes(router, db, cfg, routeServices{
		auth:       authService,
		admins:     adminService,
		members:    memberService,
		baptism:    baptismService,
		kontingent: kontingentService,
		sms:        smsService,
		church:     churchService,
		news:       newsService,
		events:     eventService,
		photos:     photoService,
		stats:      statsService,
		audit:      auditService,
		uploads:    uploadService,
	})

	// HTTP server with timeouts
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Int("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	// Graceful shutdown with timeout
	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server shut down successfully")
}

type routeServices struct {
	auth       *services.AuthService
	admins     *services.AdminService
	members    *services.MemberService
	baptism    *services.BaptismService
	kontingent *services.KontingentService
	sms        *services.SMSService
	church     *services.ChurchService
	news       *services.NewsService
	events     *services.EventService
	photos     *services.PhotoService
	stats      *services.StatsService
	audit      *services.AuditService
	uploads    *services.UploadService
}

func setupRoutes(router *gin.Engine, db *database.Database, cfg *config.Config, svc routeServices) {
	healthHandler := handlers.NewHealthHandler(db, svc.sms)
	authHandler := handlers.NewAuthHandler(svc.auth)
	publicHandler := handlers.NewPublicHandler(svc.church, svc.news, svc.events, svc.photos)
	contentHandler := handlers.NewContentHandler(svc.church, svc.news, svc.events, svc.photos, svc.uploads)
	memberHandler := handlers.NewMemberHandler(svc.members)
	baptismHandler := handlers.NewBaptismHandler(svc.baptism)
	adminHandler := handlers.NewAdminHandler(svc.admins)
	kontingentHandler := handlers.NewKontingentHandler(svc.kontingent)
	smsHandler := handlers.NewSMSHandler(svc.sms)
	dashboardHandler := handlers.NewDashboardHandler(svc.stats)
	auditHandler := handlers.NewAuditHandler(svc.audit)

	// Health check endpoints
	router.GET("/health", healthHandler.HandleHealth)
	router.GET("/ready", healthHandler.HandleReady)

	// Uploaded images
	router.Static("/uploads", cfg.UploadDir)

	api := router.Group("/api")
	api.Use(middleware.NewIPRateLimitingMiddleware(middleware.RateLimitConfig{
		RequestsPerMinute: cfg.APIRequestsPerMinute,
	}))

	// Public content endpoints
	api.GET("/church", publicHandler.HandleChurchInfo)
	api.GET("/news", publicHandler.HandleNews)
	api.GET("/events", publicHandler.HandleEvents)
	api.GET("/photos", publicHandler.HandlePhotos)

	// Login with a stricter per-IP limit
	api.POST("/auth/login",
		middleware.AuthRateLimitMiddleware(cfg.AuthRequestsPerMinute),
		authHandler.HandleLogin)

	// Authenticated admin endpoints
	auth := api.Group("")
	auth.Use(middleware.AdminAuthMiddleware())
	{
		auth.GET("/dashboard/stats", dashboardHandler.HandleStats)

		auth.GET("/admin/news", contentHandler.HandleListNews)
		auth.POST("/news", contentHandler.HandleCreateNews)
		auth.PUT("/news/:id", contentHandler.HandleUpdateNews)
		auth.DELETE("/news/:id", contentHandler.HandleDeleteNews)

		auth.GET("/admin/events", contentHandler.HandleListEvents)
		auth.POST("/events", contentHandler.HandleCreateEvent)
		auth.PUT("/events/:id", contentHandler.HandleUpdateEvent)
		auth.DELETE("/events/:id", contentHandler.HandleDeleteEvent)

		auth.GET("/admin/photos", contentHandler.HandleListPhotos)
		auth.POST("/photos", contentHandler.HandleCreatePhoto)
		auth.PUT("/photos/:id", contentHandler.HandleUpdatePhoto)
		auth.DELETE("/photos/:id", contentHandler.HandleDeletePhoto)

		auth.GET("/members", memberHandler.HandleList)
		auth.GET("/members/:id", memberHandler.HandleGet)
		auth.POST("/members", memberHandler.HandleCreate)
		auth.PUT("/members/:id", memberHandler.HandleUpdate)
		auth.DELETE("/members/:id", memberHandler.HandleDelete)

		auth.GET("/baptism", baptismHandler.HandleList)
		auth.GET("/baptism/:id", baptismHandler.HandleGet)
		auth.POST("/baptism", baptismHandler.HandleCreate)
		auth.PUT("/baptism/:id", baptismHandler.HandleUpdate)
		auth.DELETE("/baptism/:id", baptismHandler.HandleDelete)

		auth.GET("/kontingent/:month", kontingentHandler.HandleMonthStatus)
		auth.POST("/kontingent", kontingentHandler.HandleUpsert)

		auth.POST("/sms/send", smsHandler.HandleSend)
		auth.GET("/sms/history", smsHandler.HandleHistory)
		auth.GET("/sms/stats", smsHandler.HandleStats)

		// Super admin only
		super := auth.Group("")
		super.Use(middleware.RequireSuperAdmin())
		{
			super.PUT("/church", contentHandler.HandleUpdateChurchInfo)
			super.POST("/upload", contentHandler.HandleUploadImage)

			super.GET("/admins", adminHandler.HandleList)
			super.POST("/admins", adminHandler.HandleCreate)
			super.PUT("/admins/:id", adminHandler.HandleUpdate)
			super.DELETE("/admins/:id", adminHandler.HandleDelete)

			super.GET("/admin/audit", auditHandler.HandleList)
		}
	}
}
