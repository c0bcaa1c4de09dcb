package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/actuallystonmai/jobrec/internal/cache"
	"github.com/actuallystonmai/jobrec/internal/config"
	"github.com/actuallystonmai/jobrec/internal/handler"
	"github.com/actuallystonmai/jobrec/internal/router"
	"github.com/actuallystonmai/jobrec/internal/service"
)

const shutdownTimeout = 10 * time.Second

var (
	flagPort     int
	flagRedisURL string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the recommendation widget over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&flagPort, "port", 0, "listen port (overrides PORT)")
	serveCmd.Flags().StringVar(&flagRedisURL, "redis-url", "", "Redis URL for session snapshots (overrides REDIS_URL)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = flagPort
	}
	if cmd.Flags().Changed("redis-url") {
		cfg.RedisURL = flagRedisURL
	}

	logger := newLogger()
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ------------ Session store ---------------
	store, closeStore, err := newSnapshotStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	// ---------------- Server --------------------
	svc := service.NewService(newModelClient(cfg, logger), store, service.Options{
		TopN:       cfg.TopN,
		SessionTTL: cfg.SessionTTL,
		Logger:     logger,
	})
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.Setup(handler.NewHandler(svc, logger)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Printf("server running on %s (recommender %s)", cfg.Addr(), cfg.RecommenderBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return svc.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Println("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newSnapshotStore(ctx context.Context, cfg *config.Config, logger *log.Logger) (service.SnapshotStore, func(), error) {
	if cfg.RedisURL == "" {
		logger.Println("using in-memory session store")
		return cache.NewMemoryCache(cfg.SessionTTL), func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	store := cache.NewRedisCache(client, cfg.SessionTTL)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("redis not ready: %w", err)
	}
	logger.Println("connected to Redis")
	return store, func() { client.Close() }, nil
}
