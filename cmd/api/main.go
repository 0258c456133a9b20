package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/creativedrywall/chat-assistant/cmd/mainconfig"
	"github.com/creativedrywall/chat-assistant/internal/api/router"
	"github.com/creativedrywall/chat-assistant/internal/business"
	"github.com/creativedrywall/chat-assistant/internal/chat"
	appconfig "github.com/creativedrywall/chat-assistant/internal/config"
	"github.com/creativedrywall/chat-assistant/internal/llm"
	"github.com/creativedrywall/chat-assistant/internal/observability/metrics"
	"github.com/creativedrywall/chat-assistant/pkg/logging"
)

func main() {
	// No .env file is the normal case in deployed environments.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting chat-assistant API server",
		"env", cfg.Env,
		"port", cfg.Port,
		"provider", cfg.LLMProvider,
	)

	profile := business.Default()

	client, modelID := buildLLMClient(cfg, logger)
	if client == nil {
		// The server still starts; the chat endpoint answers deterministic
		// intents and reports the backend as unconfigured otherwise.
		logger.Warn("no generation backend configured, llm path disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	chatMetrics := metrics.NewChatMetrics(registry)

	service := chat.NewService(profile, client, chat.Options{
		ModelID:       modelID,
		HistoryWindow: cfg.ChatHistoryWindow,
		MaxMessageLen: cfg.ChatMaxMessageLen,
		LLMTimeout:    cfg.LLMTimeout,
		MaxTokens:     int32(cfg.LLMMaxTokens),
		Temperature:   float32(cfg.LLMTemperature),
		TopP:          float32(cfg.LLMTopP),
		DebugInfo:     cfg.Env == "development",
	}, logger, chatMetrics)

	r := router.New(&router.Config{
		Logger:             logger,
		ChatHandler:        chat.NewHandler(service, logger),
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitPerSec:    cfg.RateLimitPerSec,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// buildLLMClient selects the generation backend from configuration. A nil
// return means no backend is available and the chat service degrades to
// deterministic-only replies.
func buildLLMClient(cfg *appconfig.Config, logger *logging.Logger) (llm.Client, string) {
	switch cfg.LLMProvider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			logger.Error("GEMINI_API_KEY not set")
			return nil, ""
		}
		client, err := llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModelID)
		if err != nil {
			logger.Error("failed to create gemini client", "error", err)
			return nil, ""
		}
		return client, cfg.GeminiModelID
	case "bedrock":
		if cfg.BedrockModelID == "" {
			logger.Error("BEDROCK_MODEL_ID not set")
			return nil, ""
		}
		awsCfg, err := mainconfig.LoadAWSConfig(context.Background(), cfg)
		if err != nil {
			logger.Error("failed to load AWS config", "error", err)
			return nil, ""
		}
		return llm.NewBedrockClient(bedrockruntime.NewFromConfig(awsCfg)), cfg.BedrockModelID
	default:
		logger.Error("unknown llm provider", "provider", cfg.LLMProvider)
		return nil, ""
	}
}
