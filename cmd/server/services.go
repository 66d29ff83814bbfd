package main

import (
	"github.com/studypilot/server/internal/config"
	"github.com/studypilot/server/internal/generator"
	"github.com/studypilot/server/internal/llm"
	"github.com/studypilot/server/internal/logger"
	"github.com/studypilot/server/internal/mailer"
	"github.com/studypilot/server/studypilot/usage"
)

// creates and configures all service clients
func InitializeServices(cfg *config.Config, usageRepo *usage.Repository) *Services {
	var llmClient llm.TextGenerator

	if cfg.AnthropicKey != "" {
		llmClient = llm.NewAnthropicClient(llm.AnthropicConfig{
			APIKey:         cfg.AnthropicKey,
			PreferredModel: cfg.PreferredModel,
		})
	} else if !cfg.MockGeneration {
		logger.Warn("no model API key configured, generation requests will fail")
	}

	gen := generator.New(usageRepo, llmClient, cfg.MockGeneration)

	return &Services{
		LLM:       llmClient,
		Generator: gen,
		Mailer:    mailer.NewLogMailer(cfg.BaseURL),
	}
}
