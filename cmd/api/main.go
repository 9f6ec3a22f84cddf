package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/letsorder/internal/audit"
	"github.com/BruksfildServices01/letsorder/internal/auth"
	"github.com/BruksfildServices01/letsorder/internal/config"
	dbpkg "github.com/BruksfildServices01/letsorder/internal/db"
	"github.com/BruksfildServices01/letsorder/internal/ratelimit"
	"github.com/BruksfildServices01/letsorder/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	auditDispatcher := audit.NewDispatcher(audit.New(db), cfg.AuditQueueSize)
	defer auditDispatcher.Close()

	deps := routes.Deps{
		Hasher: auth.NewHasher(auth.DefaultHashParams),
		Audit:  auditDispatcher,
	}

	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		client, err := ratelimit.NewRedisClient(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			log.Printf("redis unavailable, using in-memory rate limiter: %v", err)
		} else {
			defer client.Close()
			deps.Limiter = ratelimit.NewRedis(client, "letsorder:ratelimit:", cfg.RateLimitMax, cfg.RateLimitWindow)
		}
	}

	r := gin.Default()

	routes.RegisterRoutes(r, db, cfg, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
