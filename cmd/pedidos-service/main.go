package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nurpe/pedidos/internal/auth"
	"github.com/nurpe/pedidos/internal/config"
	"github.com/nurpe/pedidos/internal/db"
	"github.com/nurpe/pedidos/internal/excel"
	httphandler "github.com/nurpe/pedidos/internal/http"
	"github.com/nurpe/pedidos/internal/http/middleware"
	"github.com/nurpe/pedidos/internal/logger"
	"github.com/nurpe/pedidos/internal/pdf"
	"github.com/nurpe/pedidos/internal/repository"
	"github.com/nurpe/pedidos/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Upload.Dir).Msg("failed to create upload dir")
	}

	pedidoRepo := repository.NewPedidoRepository(database)
	userRepo := repository.NewUserRepository(database)
	reportRepo := repository.NewReportRepository(database)

	excelGenerator := excel.NewGenerator()
	pdfGenerator := pdf.NewGenerator()
	tokenIssuer := auth.NewIssuer(cfg.Auth.AccessSecret, cfg.Auth.AccessTTL)

	handler := httphandler.NewHandler(httphandler.Services{
		Auth:      service.NewAuthService(userRepo, tokenIssuer),
		Pedidos:   service.NewPedidoService(pedidoRepo, cfg),
		Contracts: service.NewContractService(pdf.ExtractTextFile, excelGenerator, cfg, log),
		Reports:   service.NewReportService(reportRepo, pedidoRepo, excelGenerator, pdfGenerator),
	}, cfg.Upload.MaxBytes, log)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.HTTP.AllowedOrigins, log)
	router.MaxMultipartMemory = cfg.Upload.MaxBytes

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("starting pedidos service")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	if sqlDB, err := database.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("server exited")
}
