package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/hirebase/hirebase-go/internal/config"
	"github.com/hirebase/hirebase-go/internal/handler"
	"github.com/hirebase/hirebase-go/internal/middleware"
	"github.com/hirebase/hirebase-go/internal/repository"
	"github.com/hirebase/hirebase-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.Migrate(db); err != nil {
		slog.Error("schema migration failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo)
	authHandler := handler.NewAuthHandler(authService, cfg.JWTSecret, cfg.JWTExpiry, cfg.SecureCookie)

	appRepo := repository.NewApplicationRepository(db)
	appService := service.NewApplicationService(appRepo)
	appHandler := handler.NewApplicationHandler(appService)

	r := chi.NewRouter()
	r.Use(middleware.Logging)
	r.Use(middleware.Recovery(func(w http.ResponseWriter, r *http.Request, err error) {
		handler.HandleError(w, r, err)
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/login", authHandler.HandleLogin)
		r.Post("/register", authHandler.HandleRegister)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionAuth(cfg.JWTSecret))
		r.Get("/applications", appHandler.HandleListApplications)
	})

	// Clearing the cookie is idempotent, so logout needs no valid session.
	r.Post("/logout", authHandler.HandleLogout)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
