package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trustfluence-chatbot/internal/config"
	"trustfluence-chatbot/internal/handlers"
	"trustfluence-chatbot/internal/llm"
	"trustfluence-chatbot/internal/llm/gemini"
	"trustfluence-chatbot/internal/llm/groq"
	"trustfluence-chatbot/internal/prompt"
	"trustfluence-chatbot/internal/router"
	"trustfluence-chatbot/internal/services"
)

func main() {
	log.Println("🚀 Starting Trustfluence Chatbot...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Printf("✓ Environment variables loaded (env=%s)", cfg.Env)

	// ──── Step 2: Initialize LLM Client ────
	client, closeClient, err := newLLMClient(context.Background(), cfg)
	if err != nil {
		log.Fatalf("✗ LLM client initialization failed: %v", err)
	}
	defer closeClient()
	log.Printf("✓ %s client initialized", cfg.LLMProvider)

	// ──── Step 3: Initialize Services & Handlers ────
	chatService := services.NewChatService(client, prompt.Default())
	chatHandler := handlers.NewChatHandler(chatService)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(chatHandler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.LLMTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		shutdown(server, 30*time.Second)
	}()

	log.Printf("✓ Trustfluence Chatbot ready on http://localhost:%s", cfg.Port)
	log.Printf("  Chat: POST http://localhost:%s/chat", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}

// shutdown drains in-flight requests, giving up after timeout.
func shutdown(server *http.Server, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("✗ Graceful shutdown failed: %v", err)
		return err
	}
	return nil
}

// newLLMClient builds the provider client selected by LLM_PROVIDER. The
// returned func releases provider resources on shutdown.
func newLLMClient(ctx context.Context, cfg *config.Config) (llm.Client, func(), error) {
	switch cfg.LLMProvider {
	case config.ProviderGroq:
		c := groq.New(cfg.GroqAPIKey, cfg.LLMModel,
			groq.WithBaseURL(cfg.GroqBaseURL),
			groq.WithTemperature(cfg.LLMTemperature),
			groq.WithHTTPClient(&http.Client{Timeout: cfg.LLMTimeout}),
		)
		log.Printf("  model=%s temperature=%.2f", c.Model(), cfg.LLMTemperature)
		return c, func() {}, nil
	case config.ProviderGemini:
		c, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.LLMModel, cfg.LLMTemperature)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("  model=%s temperature=%.2f", c.Model(), cfg.LLMTemperature)
		return c, func() { c.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}
