package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/4cecoder/walker3d/config"
	"github.com/4cecoder/walker3d/handlers"
	"github.com/4cecoder/walker3d/logger"
)

func main() {
	// Load environment variables from .env file
	if err := config.InitEnv(); err != nil {
		log.Println(err)
	}

	cfg, err := config.Load(os.Getenv("WALKER_CONFIG"))
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()

	h := handlers.New(cfg, lg, nil)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: h.Routes("./static"),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		h.Sessions().CloseAll()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			lg.Warn("shutdown", zap.Error(err))
		}
	}()

	lg.Info("server started", zap.String("addr", srv.Addr), zap.Int("tick_hz", cfg.TickHz), zap.String("model", cfg.ModelPath))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		lg.Fatal("listen", zap.Error(err))
	}
}
