package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "cottagesheets/docs"
	"cottagesheets/internal/config"
	"cottagesheets/internal/database"
	"cottagesheets/internal/domain"
	"cottagesheets/internal/logger"
	"cottagesheets/internal/middleware"
	"cottagesheets/internal/modules/auth"
	"cottagesheets/internal/modules/booking"
	"cottagesheets/internal/modules/catalog"
	"cottagesheets/internal/modules/dashboard"
	"cottagesheets/internal/modules/events"
	"cottagesheets/internal/modules/expense"
	"cottagesheets/internal/modules/payment"
	"cottagesheets/internal/modules/plan"
	"cottagesheets/internal/modules/realty"
	"cottagesheets/internal/modules/webhook"
	"cottagesheets/internal/pkg/jwt"
	"cottagesheets/internal/repository"
)

// @title DMD Cottage Sheets API
// @version 1.0
// @description Бэк-офис посуточной аренды: шахматка бронирований, поступления, расходы, услуги, планы и годовой отчет.
// @BasePath /
func main() {
	// .env нужен только локально, в контейнере переменные приходят из окружения
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	if err := logger.Setup(cfg.LogLevel, cfg.LogFile); err != nil {
		log.Fatal().Err(err).Msg("logger")
	}

	if cfg.AppEnv == "prod" || cfg.AppEnv == "production" || cfg.AppEnv == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect")
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Session{},
		&domain.Booking{},
		&domain.Service{},
		&domain.BookingService{},
		&domain.Payment{},
		&domain.Expense{},
		&domain.MonthlyPlan{},
		&domain.Realty{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto migrate")
	}

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	bookingServiceRepo := repository.NewBookingServiceRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	planRepo := repository.NewPlanRepository(db)
	realtyRepo := repository.NewRealtyRepository(db)
	titleRepo := repository.NewTitleRepository(db)

	jwtService := jwt.New(cfg.SecretKey, cfg.SessionTTL)

	hub := events.NewHub()
	defer hub.Close()

	authService := auth.NewService(userRepo, sessionRepo, jwtService)
	authHandler := auth.NewHandler(authService, int(cfg.SessionTTL.Seconds()), cfg.CookieSecure)

	webhookService := webhook.NewService(bookingRepo, hub)
	webhookHandler := webhook.NewHandler(webhookService)

	bookingService := booking.NewService(bookingRepo, bookingServiceRepo, serviceRepo)
	bookingHandler := booking.NewHandler(bookingService)

	catalogService := catalog.NewService(serviceRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	paymentService := payment.NewService(paymentRepo, bookingRepo, bookingServiceRepo, titleRepo)
	paymentHandler := payment.NewHandler(paymentService)

	expenseService := expense.NewService(expenseRepo, titleRepo)
	expenseHandler := expense.NewHandler(expenseService)

	planService := plan.NewService(planRepo)
	planHandler := plan.NewHandler(planService)

	realtyService := realty.NewService(realtyRepo, bookingRepo, titleRepo)
	realtyHandler := realty.NewHandler(realtyService)

	dashboardService := dashboard.NewService(bookingRepo, paymentRepo, expenseRepo)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	eventsHandler := events.NewHandler(hub)

	authMiddleware := middleware.NewAuth(jwtService, sessionRepo)

	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "DMD Cottage Sheets"})
	})
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := r.Group("/")
	{
		authHandler.RegisterRoutes(public)
		webhookHandler.RegisterRoutes(public)
	}

	authorized := r.Group("/")
	authorized.Use(authMiddleware.Handler())

	admin := authorized.Group("/")
	admin.Use(middleware.AdminOnly())

	bookingHandler.RegisterRoutes(authorized)
	catalogHandler.RegisterRoutes(authorized, admin)
	paymentHandler.RegisterRoutes(authorized)
	expenseHandler.RegisterRoutes(authorized)
	eventsHandler.RegisterRoutes(authorized)

	planHandler.RegisterRoutes(admin)
	realtyHandler.RegisterRoutes(admin)
	dashboardHandler.RegisterRoutes(admin)

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
