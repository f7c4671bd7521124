package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/umkmhub/internal/client/api"
	"github.com/iudanet/umkmhub/internal/client/auth"
	"github.com/iudanet/umkmhub/internal/client/cli"
	"github.com/iudanet/umkmhub/internal/client/favorites"
	"github.com/iudanet/umkmhub/internal/client/iocli"
	"github.com/iudanet/umkmhub/internal/client/profile"
	"github.com/iudanet/umkmhub/internal/client/reviews"
	"github.com/iudanet/umkmhub/internal/client/screens"
	"github.com/iudanet/umkmhub/internal/client/session"
	"github.com/iudanet/umkmhub/internal/client/storage/boltdb"
	"github.com/iudanet/umkmhub/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	stdio := iocli.NewStdio()

	cfg, err := config.LoadClient(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.PrintUsage(stdio)
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Show version and exit if requested
	if cfg.ShowVersion {
		printVersion()
		return 0
	}

	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if len(cfg.Args) == 0 {
		cli.PrintUsage(stdio)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return 1
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Создаем API клиент
	apiClient := api.NewClient(cfg.ServerURL, cfg.Timeout)

	authService := auth.NewService(apiClient, boltStorage)
	apiClient.SetTokenSource(authService)

	sessions := session.NewController()
	if err := sessions.Init(ctx, authService); err != nil {
		// без сессии защищенные экраны отправят на вход
		slog.Warn("failed to restore session", "error", err)
	}
	defer sessions.Close()

	prof := profile.NewService(boltStorage, apiClient)
	scr := screens.New(screens.Deps{
		Records:   apiClient,
		Objects:   apiClient,
		Accounts:  authService,
		Session:   sessions,
		Favorites: favorites.NewService(boltStorage),
		Reviews:   reviews.NewService(boltStorage, prof),
		Profile:   prof,
		Store:     boltStorage,
	})

	client := cli.New(stdio, scr, sessions, cli.Passwords{FromFile: cfg.PasswordFile})
	if err := client.Run(ctx, cfg.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func printVersion() {
	fmt.Printf("UMKM Hub Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
