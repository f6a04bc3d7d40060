package routes

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "assistec/docs"
	"assistec/internal/adapter/backend"
	"assistec/internal/adapter/http/handlers"
	"assistec/internal/adapter/http/middleware"
	"assistec/internal/adapter/persistence/repository"
	"assistec/internal/domain/entities"
	"assistec/internal/infrastructure/config"
	"assistec/internal/infrastructure/database"
	"assistec/internal/infrastructure/httpclient"
	"assistec/internal/infrastructure/identity"
	"assistec/internal/infrastructure/logger"
	"assistec/internal/infrastructure/messaging"
	"assistec/internal/infrastructure/payments"
	"assistec/internal/infrastructure/scheduler"
	"assistec/internal/infrastructure/telemetry"
	"assistec/internal/usecase"
	"assistec/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const shutdownTimeout = 10 * time.Second

// Run will start the server and block until SIGINT/SIGTERM.
func Run() {
	cfg := config.Load()
	logger.New(logger.Config{Level: cfg.LogLevel, Environment: cfg.Environment, ServiceName: cfg.ServiceName})
	log := logger.For("server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up telemetry")
	}

	app, err := build(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to wire the application")
	}

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	getRoutes(router, app)

	app.scheduler.Start()
	go func() {
		if err := app.auth.Start(ctx); err != nil {
			log.Warn().Err(err).Msg("session restore failed")
		}
	}()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info().Str("addr", srv.Addr).Str("backend", cfg.API.BaseURL).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to startup the application")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	app.scheduler.Stop(shutdownCtx)
	app.unsubscribe()
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("telemetry shutdown")
	}
}

// application is the wired object graph served by the router.
type application struct {
	auth        usecase.IAuthSessionUseCase
	scheduler   *scheduler.Scheduler
	unsubscribe func()

	customers   *handlers.CustomerHandler
	orders      *handlers.OrderHandler
	products    *handlers.ProductHandler
	finance     *handlers.FinanceHandler
	backup      *handlers.BackupHandler
	billing     *handlers.BillingHandler
	payments    *handlers.InvoicePaymentHandler
	whatsapp    *handlers.WhatsAppHandler
	settings    *handlers.SettingsHandler
	authHandler *handlers.AuthHandler
	dashboard   *handlers.DashboardHandler
}

func build(ctx context.Context, cfg config.Config) (*application, error) {
	log := logger.For("server")

	ddb, err := database.ConnectDynamoDB(ctx, database.DynamoConfig{
		Region:          cfg.Dynamo.Region,
		Endpoint:        cfg.Dynamo.Endpoint,
		AccessKeyID:     cfg.Dynamo.AccessKeyID,
		SecretAccessKey: cfg.Dynamo.SecretAccessKey,
	})
	if err != nil {
		return nil, err
	}
	if cfg.Dynamo.Endpoint != "" {
		err := database.EnsureTables(ctx, ddb,
			database.TableSpec{Name: cfg.Dynamo.SettingsTable, Key: "key"},
			database.TableSpec{Name: cfg.Dynamo.SessionsTable, Key: "id"},
			database.TableSpec{Name: cfg.Dynamo.PaymentsTable, Key: "id", IndexKey: repository.PaymentsInvoiceIDKey},
		)
		if err != nil {
			return nil, err
		}
	}

	settingsRepo := repository.NewSettingsDynamoRepository(ddb, cfg.Dynamo.SettingsTable)
	sessionRepo := repository.NewSessionDynamoRepository(ddb, cfg.Dynamo.SessionsTable)
	paymentRepo := repository.NewInvoicePaymentDynamoRepository(ddb, cfg.Dynamo.PaymentsTable)

	client := httpclient.New(httpclient.Config{
		BaseURL:               cfg.API.BaseURL,
		Timeout:               cfg.API.Timeout,
		NetworkRetryDelay:     cfg.API.NetworkRetryDelay,
		UnavailableRetryDelay: cfg.API.UnavailableRetryDelay,
	})
	services := backend.NewServices(client)

	var sender interfaces.INotificationSender
	if cfg.Twilio.Configured() {
		sender = messaging.NewTwilioSender(messaging.TwilioConfig{
			AccountSID:     cfg.Twilio.AccountSID,
			AuthToken:      cfg.Twilio.AuthToken,
			WhatsAppNumber: cfg.Twilio.WhatsAppNumber,
		})
	} else {
		log.Info().Msg("twilio not configured; customer notifications go through the backend")
	}

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments.MercadoPagoAccessToken, cfg.Payments.MockMode)
	if err != nil {
		log.Warn().Err(err).Msg("mercado pago gateway not configured")
	} else {
		gateway = mpGateway
	}

	idp := identity.New(identity.Config{
		URL:         cfg.Identity.URL,
		AnonKey:     cfg.Identity.AnonKey,
		JWTSecret:   cfg.Identity.JWTSecret,
		RedirectURL: cfg.Identity.RedirectURL,
	})

	if !idp.Configured() {
		log.Warn().Msg("identity provider not configured; protected routes are open")
	}

	authUseCase := usecase.NewAuthSessionUseCase(idp, sessionRepo)
	// every backend call carries the operator's current access token
	unsubscribeAuth := authUseCase.Subscribe(func(ev entities.AuthEvent) {
		if ev.Session != nil {
			client.SetAuthToken(ev.Session.AccessToken)
			return
		}
		client.SetAuthToken("")
	})

	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo)
	unsubscribeSettings := settingsUseCase.Subscribe(func(ch entities.SettingsChange) {
		if prefs, ok := ch.Value.(entities.Preferences); ok {
			logger.For("settings").Info().Bool("backup_automatico", prefs.AutoBackup).Msg("preferences changed")
		}
	})
	backupUseCase := usecase.NewBackupUseCase(services.Backup, settingsUseCase)
	monitor := usecase.NewStatusMonitorUseCase(services.Orders, services.WhatsApp)
	paymentUseCase := usecase.NewInvoicePaymentUseCase(paymentRepo, services.Billing, gateway, usecase.PaymentSandbox{
		Enabled:         cfg.Payments.Sandbox(),
		TestPayerEmail:  cfg.Payments.TestPayerEmail,
		TestPayerUserID: cfg.Payments.TestPayerUserID,
	})

	sched := scheduler.New()
	jobs := []struct {
		name, spec string
		job        scheduler.Job
	}{
		{"status-refresh", cfg.Jobs.StatusRefreshSchedule, monitor.Refresh},
		{"scheduled-backup", cfg.Jobs.BackupSchedule, backupUseCase.RunScheduled},
		{"session-refresh", cfg.Jobs.SessionRefreshSchedule, func(ctx context.Context) {
			if err := authUseCase.Refresh(ctx); err != nil {
				logger.For("scheduler").Warn().Err(err).Msg("session refresh failed")
			}
		}},
	}
	for _, j := range jobs {
		if err := sched.Add(j.name, j.spec, j.job); err != nil {
			return nil, err
		}
	}

	return &application{
		auth:      authUseCase,
		scheduler: sched,
		unsubscribe: func() {
			unsubscribeAuth()
			unsubscribeSettings()
		},
		customers:   handlers.NewCustomerHandler(usecase.NewCustomerUseCase(services.Customers)),
		orders:      handlers.NewOrderHandler(usecase.NewOrderUseCase(services.Orders, services.Customers, services.WhatsApp, sender)),
		products:    handlers.NewProductHandler(usecase.NewProductUseCase(services.Products)),
		finance:     handlers.NewFinanceHandler(usecase.NewFinanceUseCase(services.Finance)),
		backup:      handlers.NewBackupHandler(backupUseCase),
		billing:     handlers.NewBillingHandler(usecase.NewBillingUseCase(services.Billing)),
		payments:    handlers.NewInvoicePaymentHandler(paymentUseCase),
		whatsapp:    handlers.NewWhatsAppHandler(usecase.NewWhatsAppUseCase(services.WhatsApp)),
		settings:    handlers.NewSettingsHandler(settingsUseCase),
		authHandler: handlers.NewAuthHandler(authUseCase),
		dashboard:   handlers.NewDashboardHandler(monitor),
	}, nil
}

func getRoutes(router *gin.Engine, app *application) {
	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, app.authHandler)
	addThemeRoutes(v1, app.settings)

	// Rotas protegidas pela sessão do operador
	protected := v1.Group("", middleware.RequireSession(app.auth))
	addSettingsRoutes(protected, app.settings)
	addCustomerRoutes(protected, app.customers)
	addOrderRoutes(protected, app.orders)
	addProductRoutes(protected, app.products)
	addFinanceRoutes(protected, app.finance)
	addBackupRoutes(protected, app.backup)
	addBillingRoutes(protected, app.billing, app.payments)
	addWhatsAppRoutes(protected, app.whatsapp)
	addDashboardRoutes(protected, app.dashboard)
}

func setMiddlewares(router *gin.Engine, cfg config.Config) {
	router.Use(otelgin.Middleware(cfg.ServiceName))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
}
