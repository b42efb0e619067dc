package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	logrus "github.com/sirupsen/logrus"

	"fleet_docs/internal/config"
	"fleet_docs/internal/logger"
	"fleet_docs/internal/middleware"
	pgstore "fleet_docs/internal/repository/postgres"
	"fleet_docs/internal/routes"
	"fleet_docs/internal/scheduler"
	"fleet_docs/internal/service"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database and attachment storage
	config.InitDB()
	config.InitStorage()

	// Setup Gin router
	r := routes.SetupRouter()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Background expiration sweep
	sweep := service.NewSweepService(
		pgstore.NewDocumentStore(config.DB),
		pgstore.NewFeedStore(config.DB),
		pgstore.NewActivityStore(config.DB),
	)
	sched := scheduler.New(sweep.Run, config.SweepInterval(), config.SweepLocation())
	go func() {
		if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logrus.WithError(err).Error("scheduler stopped")
		}
	}()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	srv := &http.Server{Addr: config.ServerAddr(), Handler: handler}
	go func() {
		log.Printf("🚀 Server running at %s", config.ServerAddr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
