// Command llmtest sends one canned conversation to the configured provider.
// Useful for verifying credentials and model IDs before deploying.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/creativedrywall/chat-assistant/internal/business"
	"github.com/creativedrywall/chat-assistant/internal/chat"
	"github.com/creativedrywall/chat-assistant/internal/llm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey == "" {
		log.Fatal("GEMINI_API_KEY not set")
	}
	modelID := os.Getenv("GEMINI_MODEL_ID")
	if modelID == "" {
		modelID = "gemini-2.0-flash"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := llm.NewGeminiClient(ctx, geminiKey, modelID)
	if err != nil {
		log.Fatalf("failed to create gemini client: %v", err)
	}
	defer client.Close()

	profile := business.Default()
	history := []chat.Turn{
		{Role: "user", Content: "Do you repair ceiling cracks?"},
		{Role: "assistant", Content: "Absolutely, ceiling crack repair is one of our most common jobs. Would you like to set up a free quote?"},
	}
	messages := chat.Assemble(chat.BuildSystemPrompt(profile), history, "Yes, what does scheduling look like this week?", 6)

	start := time.Now()
	resp, err := client.Complete(ctx, llm.Request{
		Model:       modelID,
		Messages:    messages,
		MaxTokens:   256,
		Temperature: 0.7,
		TopP:        0.95,
	})
	elapsed := time.Since(start)
	if err != nil {
		log.Fatalf("completion failed: %v", err)
	}

	fmt.Printf("response (%v):\n%s\n", elapsed.Round(time.Millisecond), resp.Text)
	fmt.Printf("tokens: in=%d out=%d\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)

	redacted := chat.RedactPrices(resp.Text, profile.Phone)
	if redacted.Hits > 0 {
		fmt.Printf("after price redaction (%d hits):\n%s\n", redacted.Hits, redacted.Text)
	}
}
