package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/hr-assistant/internal/ai/gemini"
	"github.com/spigell/hr-assistant/internal/logger"
	"github.com/spigell/hr-assistant/internal/screens"
	"github.com/spigell/hr-assistant/internal/secrets"
)

// apiKeyEnv lists the environment variables holding the Gemini key, in order.
var apiKeyEnv = []string{"GEMINI_API_KEY", "API_KEY"}

// bootstrap builds the logger and reads the configuration. Failures are fatal.
func bootstrap() (*zap.Logger, *Config) {
	logger, err := logger.New(logger.Options{
		JSON:    viper.GetBool("json"),
		Debug:   viper.GetBool("debug"),
		Service: app,
		Version: version,
	})
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config == nil || config.AI == nil || config.AI.Gemini == nil {
		logger.Fatal("ai.gemini configuration is required")
	}

	logger.Debug("starting with config",
		zap.String("model", config.AI.Gemini.Model),
		zap.Int("max_input_runes", config.AI.MaxInputRunes),
		zap.Bool("api_key_inline", config.AI.Gemini.APIKey != ""),
		zap.String("api_key_file", config.AI.Gemini.APIKeyFile),
	)

	return logger, config
}

func newAssistant(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (*gemini.Assistant, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		File:  cfg.Gemini.APIKeyFile,
		Value: cfg.Gemini.APIKey,
		Env:   apiKeyEnv,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set GEMINI_API_KEY, ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, logger)
	if err != nil {
		return nil, err
	}

	return gemini.NewAssistant(generator, temperatures(cfg.Gemini.Temperature), cfg.Gemini.MaxLogLength, logger), nil
}

func temperatures(cfg *TemperatureConfig) gemini.Temperatures {
	temps := gemini.DefaultTemperatures()
	if cfg == nil {
		return temps
	}
	if cfg.JobPosting > 0 {
		temps.JobPosting = cfg.JobPosting
	}
	if cfg.ResumeMatch > 0 {
		temps.ResumeMatch = cfg.ResumeMatch
	}
	if cfg.InterviewScript > 0 {
		temps.InterviewScript = cfg.InterviewScript
	}
	return temps
}

func screenLimits(cfg *AIConfig) screens.Limits {
	return screens.Limits{MaxInputRunes: cfg.MaxInputRunes}
}
