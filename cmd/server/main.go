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

	"przypadek/internal/config"
	"przypadek/internal/handler"
	"przypadek/internal/lexicon"
	"przypadek/internal/service"
	"przypadek/internal/translate"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	tele "gopkg.in/telebot.v3"
)

const (
	serviceName     = "przypadek"
	shutdownTimeout = 10 * time.Second
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg.Server.Environment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting przypadek",
		zap.String("version", version),
		zap.String("environment", cfg.Server.Environment),
	)

	// Load word lists
	lex, err := lexicon.LoadFiles(cfg.Words.CommonWordsPath, cfg.Words.NounsPath)
	if err != nil {
		logger.Fatal("Failed to load lexicon", zap.Error(err))
	}

	logger.Info("Lexicon loaded",
		zap.Int("nouns", lex.Size()),
		zap.Int("adjectives", len(lexicon.Adjectives())),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize translation provider
	translator, err := newTranslator(ctx, cfg.Translation)
	if err != nil {
		logger.Fatal("Failed to create translator", zap.Error(err))
	}

	logger.Info("Translator initialized",
		zap.String("provider", translator.Name()),
		zap.String("source", cfg.Translation.SourceLanguage),
		zap.String("target", cfg.Translation.TargetLanguage),
	)

	// Initialize services
	drillService := service.NewDrillService(
		lex,
		service.NewSelector(nil),
		translator,
		service.DrillSettings{
			SourceLanguage: cfg.Translation.SourceLanguage,
			TargetLanguage: cfg.Translation.TargetLanguage,
			Timeout:        cfg.Translation.Timeout,
		},
		logger,
	)

	// Initialize handler
	h := handler.NewHandler(drillService, logger, serviceName, version, nil)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler.NewRouter(h, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Start Telegram bot in background when configured
	var bot *tele.Bot
	if cfg.BotEnabled() {
		bot, err = tele.NewBot(tele.Settings{
			Token:  cfg.BotToken,
			Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		})
		if err != nil {
			logger.Fatal("Failed to create bot", zap.Error(err))
		}

		h.RegisterBotHandlers(bot)

		go func() {
			logger.Info("Bot started successfully")
			bot.Start()
		}()
	}

	// Start HTTP server in background
	go func() {
		logger.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping...")

	// Graceful shutdown
	if bot != nil {
		bot.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}
	cancel()

	if closer, ok := translator.(interface{ Close() error }); ok {
		_ = closer.Close()
	}

	logger.Info("Stopped gracefully")
}

// newLogger builds a production JSON logger or a colored development logger
func newLogger(environment string) (*zap.Logger, error) {
	var cfg zap.Config

	if environment == "production" {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return cfg.Build()
}

// newTranslator creates the configured translation provider
func newTranslator(ctx context.Context, cfg config.TranslationConfig) (translate.Translator, error) {
	switch cfg.Provider {
	case translate.ProviderGoogle:
		client, err := translate.NewGoogleClient(ctx, cfg.GoogleAPIKey)
		if err != nil {
			return nil, err
		}
		return client, nil
	case translate.ProviderLibreTranslate:
		return translate.NewLibreTranslateClient(cfg.LibreTranslateURL, cfg.LibreTranslateKey), nil
	default:
		return nil, fmt.Errorf("unknown translation provider %q", cfg.Provider)
	}
}
