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

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go-http-exercises/service"
	"go-http-exercises/utils"
)

var (
	cfgFile string
	addr    string
)

var rootCmd = &cobra.Command{
	Use:   "exercises",
	Short: "Serve the HTTP handler exercises",
	Long: `Serves greetings, product filtering, logging levels, the animal catalog,
request introspection, MIME responses and uploads, and the namespaced /api/v1
routes from a single gin engine.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.json", "config file path")
	rootCmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides ADDR")
}

func run(ctx context.Context) error {
	// load configuration
	cfg, err := utils.LoadConfiguration(cfgFile)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if addr != "" {
		cfg.Addr = addr
	}
	gin.SetMode(cfg.GinMode)
	logger := utils.NewLogger(os.Stdout, utils.LevelFromString(cfg.LogLevel), cfg.LogFormat)

	svc, err := service.NewService(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// setup upload directory health checking loop
	if interval := cfg.UploadHealthEvery(); interval > 0 {
		go utils.UploadDirHealthPollingLoop(ctx, logger, cfg.UploadDir, interval)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           svc.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Listening", "addr", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
