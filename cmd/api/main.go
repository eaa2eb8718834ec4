package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/XenoDev09/Three-Tier-App/internal/config"
	"github.com/XenoDev09/Three-Tier-App/internal/pkg/db"
	"github.com/XenoDev09/Three-Tier-App/internal/pkg/log"
	"github.com/XenoDev09/Three-Tier-App/internal/repository"
	th "github.com/XenoDev09/Three-Tier-App/internal/transport/http"
	"github.com/XenoDev09/Three-Tier-App/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := log.Init(cfg.Env, cfg.LogLevel); err != nil {
		fatalf("log: %v", err)
	}
	defer log.Sync()
	if err := cfg.Validate(); err != nil {
		fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pc := db.FromConfig(cfg)
	provider := db.NewProvider(pc, db.NewLogHooks(log.L()))
	pool, err := provider.Pool(context.Background())
	if err != nil {
		fatalf("db: %v", err)
	}
	defer provider.Close()
	log.Info.Printf("db pool configured url=%s tls=%t", db.Redact(pc.ConnString), pc.RequireTLS)

	probe := repository.NewPgPoolProbe(pool)
	uc := usecase.NewHealthUC(probe, 2*time.Second)
	h := th.NewHandler(uc)
	r := th.NewRouter(h, cfg.CORSAllow)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		log.Error.Println(err)
		provider.Close()
		log.Sync()
		os.Exit(1)
	case <-ctx.Done():
	}

	log.Info.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error.Printf("shutdown: %v", err)
	}
}

var exit = os.Exit

// fatalf logs, flushes the logger and exits. Deferred calls do not run.
func fatalf(format string, args ...any) {
	log.Error.Printf(format, args...)
	log.Sync()
	exit(1)
}
