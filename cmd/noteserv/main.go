package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/mkarren/noteserv/internal/config"
	"github.com/mkarren/noteserv/internal/handler"
	"github.com/mkarren/noteserv/internal/repo"
	"github.com/mkarren/noteserv/internal/service"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "noteserv",
		Short: "notes organizer backend server",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the notes server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(
				cfg.LogConfig.File,
				cfg.LogConfig.Level,
				int(cfg.LogConfig.FileCount),
				int(cfg.LogConfig.FileSize),
				int(cfg.LogConfig.KeepDays),
				cfg.LogConfig.Console,
			)
			return runServer(cfg)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json (optional)")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func newNoteRepo(cfg *config.Config) (repo.NoteRepo, error) {
	switch cfg.Store.Type {
	case config.StoreTypeMemory:
		return repo.NewMemoryNoteRepo(), nil
	case config.StoreTypeFile:
		return repo.NewFileNoteRepo(cfg.Store.Path)
	default:
		return nil, fmt.Errorf("unknown store type: %s", cfg.Store.Type)
	}
}

func runServer(cfg *config.Config) error {
	logutil.GetLogger(context.Background()).Info("starting server",
		zap.Int("port", cfg.Port),
		zap.String("store_type", cfg.Store.Type),
		zap.String("store_path", cfg.Store.Path),
	)

	noteRepo, err := newNoteRepo(cfg)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	noteService := service.NewNoteService(noteRepo)

	router := handler.NewRouter(handler.RouterDeps{
		Health:      handler.NewHealthHandler(),
		Notes:       handler.NewNoteHandler(noteService),
		CORSOrigins: cfg.CORSOrigins,
	})

	server := &http.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logutil.GetLogger(context.Background()).Info("http server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logutil.GetLogger(context.Background()).Info("server stopping...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
