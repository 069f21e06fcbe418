package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"inholiday/config"
	_ "inholiday/docs"
	"inholiday/internal/adapters/auth"
	"inholiday/internal/adapters/email"
	httpdelivery "inholiday/internal/delivery/http"
	"inholiday/internal/delivery/http/controllers"
	"inholiday/internal/delivery/http/middleware"
	"inholiday/internal/domain"
	"inholiday/internal/repository/postgres"
	"inholiday/internal/services"
)

// @title inHoliday API
// @version 1.0
// @description Event invitation ordering service: accounts, invitation orders, templates, event types, and guest responses.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	db, err := postgres.Open(cfg.DBUrl)
	if err != nil {
		logger.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	invitationRepo := postgres.NewInvitationRepository(db)
	templateRepo := postgres.NewTemplateRepository(db)
	eventTypeRepo := postgres.NewEventTypeRepository(db)
	guestRepo := postgres.NewGuestRepository(db)

	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	tokens := auth.NewJWTCodec(cfg.AuthSecretKey, cfg.TokenTTL)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKey,
			SecretAccessKey: cfg.SESSecretKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	userService := services.NewUserService(userRepo, hasher, tokens)
	invitationService := services.NewInvitationService(invitationRepo, userRepo, templateRepo, guestRepo)
	templateService := services.NewTemplateService(templateRepo, eventTypeRepo)
	eventTypeService := services.NewEventTypeService(eventTypeRepo)
	guestService := services.NewGuestService(guestRepo, invitationRepo, userRepo, emailService, logger)

	// Dev token issuance stays off in production.
	var devTokens domain.TokenIssuer
	if cfg.IsDevelopment() {
		devTokens = tokens
	}

	mux := httpdelivery.NewRouter(httpdelivery.Controllers{
		Auth:       controllers.NewAuthController(logger, userService),
		Account:    controllers.NewAccountController(logger, userService),
		Invitation: controllers.NewInvitationController(logger, invitationService),
		Template:   controllers.NewTemplateController(logger, templateService),
		EventType:  controllers.NewEventTypeController(logger, eventTypeService),
		Guest:      controllers.NewGuestController(logger, guestService),
		Dev:        controllers.NewDevController(logger, devTokens),
	}, tokens)

	handler := middleware.LoggingMiddleware(logger, mux)
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
	logger.Info("server stopped")
}
