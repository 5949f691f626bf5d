package main

import (
	"time"

	"github.com/nguyentantai21042004/report-flow/internal/config"
	"github.com/nguyentantai21042004/report-flow/internal/llm"
	"github.com/nguyentantai21042004/report-flow/internal/logger"
	"github.com/nguyentantai21042004/report-flow/internal/pipeline"
)

// newPipeline wires config, logger, provider and gateway for a command.
func newPipeline(configPath string) (*pipeline.Pipeline, *config.Config, logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	log := logger.New(cfg.Logging.Level)

	provider, err := llm.NewProvider(cfg.LLM)
	if err != nil {
		return nil, nil, nil, err
	}

	gateway := llm.NewGateway(provider, cfg.LLM.MaxAttempts, time.Duration(cfg.LLM.BackoffMS)*time.Millisecond, log)

	return pipeline.New(cfg, gateway, log), cfg, log, nil
}
