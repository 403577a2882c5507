package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"

	"github.com/cascade-freight/chatbot-service/internal/ai"
	httptransport "github.com/cascade-freight/chatbot-service/internal/api/http"
	"github.com/cascade-freight/chatbot-service/internal/api/http/handlers"
	"github.com/cascade-freight/chatbot-service/internal/auditlog"
	"github.com/cascade-freight/chatbot-service/internal/auth"
	"github.com/cascade-freight/chatbot-service/internal/chatbot"
	"github.com/cascade-freight/chatbot-service/internal/config"
	"github.com/cascade-freight/chatbot-service/internal/directory"
	"github.com/cascade-freight/chatbot-service/internal/events"
	"github.com/cascade-freight/chatbot-service/internal/observability"
	"github.com/cascade-freight/chatbot-service/internal/refdata"
	"github.com/cascade-freight/chatbot-service/internal/service"
	"github.com/cascade-freight/chatbot-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App.Name)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()

	users := directory.New(directory.SeedUsers(func(password string) string {
		return auth.MustHashPassword(password, cfg.Auth.BcryptCost)
	}))
	ref := refdata.NewSeeded()
	audit := auditlog.NewMemoryLog()

	dispatcher := events.NewInMemoryDispatcher()
	diagnostics := service.NewDiagnosticsService(dispatcher, logger)
	worker.StartDiagnosticsWorker(diagnostics)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		Directory:  users,
		Verifier:   auth.BcryptVerifier{},
		Dispatcher: dispatcher,
	})
	sessionMiddleware := auth.NewSessionMiddleware(authService.TokenManager(), users, cfg.Auth.CookieName)

	var delegate service.Delegate
	if cfg.AI.Enabled {
		delegate = ai.NewClient(cfg.AI.BaseURL, cfg.AI.Model, cfg.AI.Timeout())
		logger.Info("ai delegate enabled", zap.String("model", cfg.AI.Model))
	}

	chatService := service.NewChatService(service.ChatDependencies{
		Generators: chatbot.NewGenerators(ref),
		RefData:    ref,
		AuditLog:   audit,
		Delegate:   delegate,
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	engine := html.New(cfg.App.ViewsDir, ".html")
	app := fiber.New(fiber.Config{Views: engine})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, users, ref, cfg.AI.Enabled)
	authHandler := handlers.NewAuthHandler(authService, cfg.Auth.CookieName)
	chatHandler := handlers.NewChatHandler(chatService)
	adminHandler := handlers.NewAdminHandler(chatService, metrics)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:            healthHandler,
		Auth:              authHandler,
		Chat:              chatHandler,
		Admin:             adminHandler,
		SessionMiddleware: sessionMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
