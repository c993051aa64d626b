package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	delivery "chainlist-catalog/internal/adapter/delivery/http"
	handler "chainlist-catalog/internal/adapter/handler/http"
	"chainlist-catalog/internal/adapter/rpc"
	"chainlist-catalog/internal/adapter/stats"
	"chainlist-catalog/internal/adapter/storage/chainlist"
	"chainlist-catalog/internal/adapter/storage/memory"
	"chainlist-catalog/internal/application"
	"chainlist-catalog/internal/config"
	"chainlist-catalog/internal/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		cfgPath   string
		dataDir   string
		checkOnly bool
	)

	flagSet := pflag.NewFlagSet("chainlist-catalog", pflag.ContinueOnError)
	flagSet.StringVar(&cfgPath, "config", "configs", "directory holding config.yaml")
	flagSet.StringVar(&dataDir, "data-dir", "", "chain data directory (overrides catalog.data_dir)")
	flagSet.BoolVar(&checkOnly, "check", false, "build the catalog, report its size and exit")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	// --- Configuration ---
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading configuration from %s: %w", cfgPath, err)
	}
	if dataDir != "" {
		cfg.Catalog.DataDir = dataDir
	}

	// --- Logger ---
	log, err := logger.NewLogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("setting up logger: %w", err)
	}
	defer func() { _ = log.Sync() }()
	log.Info("Logger initialized", zap.Any("config", cfg.Logger))

	// --- Catalog ---
	opts := []chainlist.BuildOption{chainlist.WithLogger(log)}
	if !cfg.Catalog.StrictChainID {
		opts = append(opts, chainlist.WithLenientChainID())
	}
	catalog, err := chainlist.Build(cfg.Catalog.DataDir, opts...)
	if err != nil {
		log.Error("Failed to build chain catalog", zap.String("dir", cfg.Catalog.DataDir), zap.Error(err))
		return err
	}
	log.Info("Chain catalog ready", zap.String("dir", catalog.Dir()), zap.Int("chains", catalog.Len()))

	if checkOnly {
		fmt.Printf("%d chains loaded from %s\n", catalog.Len(), catalog.Dir())
		return nil
	}

	// --- Dependency Injection (Manual) ---
	log.Info("Initializing dependencies...")

	chainRepo := chainlist.NewRepository(catalog, log)
	cacheRepo := memory.NewCacheRepository(cfg.Cache, log)
	rpcChecker := rpc.NewChecker(cfg.Checker.GetTimeout(), log)

	chainService := application.NewChainService(chainRepo, cacheRepo, rpcChecker, log, cfg.Checker)

	collector := stats.NewCollector(catalog.Len())
	chainHandler := handler.NewChainHandler(chainService, collector, log)

	// --- HTTP Router & Server ---
	log.Info("Setting up HTTP router...")
	r := delivery.NewRouter(chainHandler, log)

	server := &fasthttp.Server{
		Handler: delivery.LoggingMiddleware(r.Handler, log),
		Name:    cfg.App.Name,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverAddr := ":" + cfg.Server.Port
	serveErr := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", zap.String("address", serverAddr))
		serveErr <- server.ListenAndServe(serverAddr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			log.Error("HTTP server stopped", zap.Error(err))
			return fmt.Errorf("serving on %s: %w", serverAddr, err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, "Usage: chainlist-catalog [flags]\n\n")
	fmt.Fprintf(os.Stderr, "Serves the ethereum-lists chain catalog over HTTP.\n\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flagSet.PrintDefaults()
}
