package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/seosites/seosites/backend/go-api/handlers"
	"github.com/seosites/seosites/backend/go-api/internal/app"
	"github.com/seosites/seosites/backend/go-api/pkg/logger"
	"github.com/seosites/seosites/backend/go-api/pkg/metrics"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return withApp(ctx, func(ctx context.Context, a *app.App) error {
		cfg := a.Config
		if cfg.Server.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		}
		r := handlers.NewRouter(a)

		metrics.RegisterCollectors(prometheus.DefaultRegisterer)
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))

		srv := &http.Server{
			Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
			Handler:      r,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Infof("server listening on %s (storage=%s, uploads=%s)", srv.Addr, a.Storage, cfg.Upload.Driver)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err, ok := <-errCh:
			if ok {
				logger.Errorf("server failed: %v", err)
				return err
			}
			return nil
		case <-ctx.Done():
		}

		logger.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})
}
