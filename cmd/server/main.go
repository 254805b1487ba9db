package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/P3chys/studyqa-api/internal/config"
	"github.com/P3chys/studyqa-api/internal/logger"
	"github.com/P3chys/studyqa-api/internal/models"
	"github.com/P3chys/studyqa-api/internal/router"
	"github.com/P3chys/studyqa-api/internal/store"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	envErr := godotenv.Load()

	cfg := config.Load()
	log := logger.New("api", cfg.LogLevel)
	if envErr != nil {
		log.Info("No .env file found")
	}

	// Build the content store
	var s *store.Store
	if cfg.SeedData {
		s = store.NewSeeded(store.WithCurrentUser(cfg.CurrentUserID))
	} else {
		s = store.New(
			store.WithUsers(models.User{ID: cfg.CurrentUserID, Username: cfg.CurrentUserID, Badges: []string{}}),
			store.WithCurrentUser(cfg.CurrentUserID),
		)
	}
	if _, ok := s.CurrentUser(); !ok {
		log.WithField("user_id", cfg.CurrentUserID).Warn("Current user is not a known user")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps := router.NewDependencies(ctx, s, cfg, log)
	defer deps.Close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("Server failed")
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Forced shutdown")
	}
	log.Info("Server stopped")
}
