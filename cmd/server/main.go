package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appbilling "github.com/bondtrack/backend/internal/application/billing"
	appcasefile "github.com/bondtrack/backend/internal/application/casefile"
	"github.com/bondtrack/backend/internal/application/tenantapp"
	"github.com/bondtrack/backend/internal/infrastructure/auth"
	"github.com/bondtrack/backend/internal/infrastructure/config"
	"github.com/bondtrack/backend/internal/infrastructure/event"
	"github.com/bondtrack/backend/internal/infrastructure/logger"
	"github.com/bondtrack/backend/internal/infrastructure/persistence"
	"github.com/bondtrack/backend/internal/interfaces/http/handler"
	"github.com/bondtrack/backend/internal/interfaces/http/middleware"
	"github.com/bondtrack/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting bondtrack backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, gormlogger.Warn)
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	tenantRepo := persistence.NewGormTenantRepository(db)
	userRepo := persistence.NewGormUserRepository(db)
	personRepo := persistence.NewGormPersonRepository(db)
	indemnitorRepo := persistence.NewGormIndemnitorRepository(db)
	referenceRepo := persistence.NewGormReferenceRepository(db)
	courtDateRepo := persistence.NewGormCourtDateRepository(db)
	checkInRepo := persistence.NewGormCheckInRepository(db)
	bondRepo := persistence.NewGormBondRepository(db)
	invoiceRepo := persistence.NewGormInvoiceRepository(db)
	receiptRepo := persistence.NewGormReceiptRepository(db)

	// Event bus. The signal relay turns domain events raised during a
	// request into HX-Trigger refresh signals on the response.
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(event.NewSignalRelay())
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := tenantapp.NewAuthService(userRepo, jwtService)
	tenantResolver := tenantapp.NewResolver(userRepo)
	tenantService := tenantapp.NewTenantService(tenantRepo, eventBus)
	personService := appcasefile.NewPersonService(personRepo, eventBus)
	indemnitorService := appcasefile.NewIndemnitorService(indemnitorRepo, personRepo, eventBus)
	referenceService := appcasefile.NewReferenceService(referenceRepo, personRepo, eventBus)
	courtDateService := appcasefile.NewCourtDateService(courtDateRepo, personRepo, eventBus)
	checkInService := appcasefile.NewCheckInService(checkInRepo, personRepo, eventBus)
	widgetService := appcasefile.NewWidgetService(personRepo, courtDateRepo, checkInRepo)
	bondService := appbilling.NewBondService(
		bondRepo, invoiceRepo, receiptRepo, personRepo, eventBus,
		cfg.Billing.ResyncInvoiceAmount,
	)
	invoiceService := appbilling.NewInvoiceService(invoiceRepo, receiptRepo, personRepo, eventBus)
	receiptService := appbilling.NewReceiptService(receiptRepo, invoiceRepo, eventBus)
	billingService := appbilling.NewBillingService(invoiceRepo, receiptRepo, personRepo)
	printService := appbilling.NewPrintService(tenantRepo, personRepo, courtDateRepo, invoiceRepo, receiptRepo)

	handlers := router.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Tenant:     handler.NewTenantHandler(tenantService),
		Person:     handler.NewPersonHandler(personService),
		Indemnitor: handler.NewIndemnitorHandler(indemnitorService),
		Reference:  handler.NewReferenceHandler(referenceService),
		CourtDate:  handler.NewCourtDateHandler(courtDateService),
		CheckIn:    handler.NewCheckInHandler(checkInService),
		Bond:       handler.NewBondHandler(bondService),
		Invoice:    handler.NewInvoiceHandler(invoiceService, billingService),
		Receipt:    handler.NewReceiptHandler(receiptService),
		Widget:     handler.NewWidgetHandler(widgetService, billingService),
		Print:      handler.NewPrintHandler(printService),
		Health:     handler.NewHealthHandler(db),
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	engine.Use(middleware.CORSWithConfig(corsConfig))

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.Logger = log

	router.Setup(engine, handlers,
		middleware.CollectSignals(),
		middleware.JWTAuthMiddlewareWithConfig(jwtConfig),
		middleware.TenantResolver(tenantResolver),
	)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
