// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	openai "github.com/sashabaranov/go-openai"

	"github.com/tenderlens/internal/analysis"
	"github.com/tenderlens/internal/config"
	"github.com/tenderlens/internal/logger"
	"github.com/tenderlens/internal/server"
)

var (
	configPath = flag.String("config", "", "Path to config file (default ~/.tenderlens/config.yaml)")
	httpPort   = flag.Int("http-port", 0, "HTTP server port (overrides config)")
)

func main() {
	flag.Parse()

	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *httpPort > 0 {
		cfg.Server.Port = *httpPort
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.Init(cfg.Server.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	clientConfig := openai.DefaultConfig(cfg.LLM.APIKey)
	clientConfig.BaseURL = cfg.LLM.BaseURL
	client := openai.NewClientWithConfig(clientConfig)

	analyst := analysis.NewAnalyst(client, cfg.LLM.Model, cfg.LLM.MaxRetries, cfg.LLM.RetryDelay())

	srv := server.NewServer(cfg, analyst, log)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: srv.Routes(),
	}

	go func() {
		log.Printf("HTTP server listening on %d (model %s via %s)", cfg.Server.Port, cfg.LLM.Model, cfg.LLM.BaseURL)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	waitForShutdown(httpServer, log)
}

func waitForShutdown(httpServer *http.Server, log *logger.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Printf("Shutting down server...")
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Errorf("HTTP shutdown error: %v", err)
	}
}
