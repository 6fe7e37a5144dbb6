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

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/pkulak/moneybot/internal/domain/identity"
	coreport "github.com/pkulak/moneybot/internal/domain/port/core"
	"github.com/pkulak/moneybot/internal/domain/usecase/allowance"
	"github.com/pkulak/moneybot/internal/domain/usecase/ledger"
	"github.com/pkulak/moneybot/internal/domain/usecase/statement"
	"github.com/pkulak/moneybot/internal/infrastructure/adapter/api"
	"github.com/pkulak/moneybot/internal/infrastructure/adapter/discord"
	"github.com/pkulak/moneybot/internal/infrastructure/adapter/logger"
	"github.com/pkulak/moneybot/internal/infrastructure/adapter/repository"
	timeProvider "github.com/pkulak/moneybot/internal/infrastructure/adapter/time"
	"github.com/pkulak/moneybot/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(parseLogLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	location, err := time.LoadLocation(cfg.Allowance.Timezone)
	if err != nil {
		appLogger.Error("invalid allowance timezone", map[string]any{
			"timezone": cfg.Allowance.Timezone,
			"error":    err.Error(),
		})
		os.Exit(1)
	}

	repo, err := repository.Open(cfg.Database.Path, tp, appLogger)
	if err != nil {
		appLogger.Error("failed to open ledger database", map[string]any{
			"path":  cfg.Database.Path,
			"error": err.Error(),
		})
		os.Exit(1)
	}

	directory := identity.NewDirectory()
	ledgerService := ledger.NewService(repo, directory, tp, appLogger)
	formatter := statement.NewFormatter(ledgerService, repo, location)

	bot, err := discord.NewBot(
		cfg.Discord.Token,
		cfg.Discord.ChannelID,
		directory,
		ledgerService,
		formatter,
		appLogger,
	)
	if err != nil {
		appLogger.Error("failed to create discord bot", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	scheduler := allowance.NewScheduler(
		ledgerService,
		bot,
		tp,
		appLogger,
		location,
		directory.Canonical(cfg.Allowance.Source),
		[]allowance.Payment{
			{Recipient: identity.AccountChase, Amount: cfg.Allowance.Chase},
			{Recipient: identity.AccountCharlie, Amount: cfg.Allowance.Charlie},
		},
	)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: api.NewRouter(tp, bot.Connected),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bot.Start(); err != nil {
		appLogger.Error("failed to start bot", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	appLogger.Info("bot is running", map[string]any{
		"environment": cfg.Environment,
		"database":    cfg.Database.Path,
	})

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		scheduler.Run(groupCtx)
		return nil
	})

	group.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		bot.Stop()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		appLogger.Error("shutdown error", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("bot stopped", nil)
}

func parseLogLevel(level string) coreport.LogLevel {
	switch level {
	case "debug":
		return coreport.LogLevelDebug
	case "warn":
		return coreport.LogLevelWarn
	case "error":
		return coreport.LogLevelError
	default:
		return coreport.LogLevelInfo
	}
}
