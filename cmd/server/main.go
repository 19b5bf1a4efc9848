package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"shrimp-assist/internal/adapter/api"
	"shrimp-assist/internal/adapter/client"
	"shrimp-assist/internal/adapter/store"
	"shrimp-assist/internal/domain/repository"
	"shrimp-assist/internal/pipeline"
	"shrimp-assist/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/qdrant/go-client/qdrant"
	"github.com/redis/go-redis/v9"
	"google.golang.org/genai"
)

func main() {
	if err := godotenv.Load(".env.dev"); err != nil {
		log.Println("Warning: .env.dev file not found, using system environment variables")
	}
	ctx := context.Background()

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	location := os.Getenv("GOOGLE_CLOUD_LOCATION")
	if projectID == "" || location == "" {
		log.Fatal("GOOGLE_CLOUD_PROJECT and GOOGLE_CLOUD_LOCATION must be set")
	}

	chatModel := envOr("GEMINI_MODEL", "gemini-2.5-flash")
	embedModel := envOr("EMBEDDING_MODEL", "text-embedding-004")
	artifactDir := envOr("ARTIFACT_DIR", "artifacts")
	redisAddr := envOr("REDIS_ADDR", "localhost:6379")
	llmTimeout := time.Duration(envIntOr("LLM_TIMEOUT_SECONDS", 25)) * time.Second

	// The four-task predictor; a broken artifact set is fatal.
	predictor, err := pipeline.Load(artifactDir)
	if err != nil {
		log.Fatalf("failed to load prediction artifacts: %v", err)
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		log.Fatalf("failed to init genai client: %v", err)
	}

	primary := client.NewGeminiChatFromClient(genaiClient, chatModel, 0.15)

	// OpenAI is the optional plan-B provider.
	var fallback repository.ChatModel
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		oa, err := client.NewOpenAIChat(key, "")
		if err != nil {
			log.Fatalf("failed to init openai client: %v", err)
		}
		fallback = oa
	}
	llm := usecase.NewResilientModel(primary, fallback, llmTimeout)

	// Retrieval corpus is optional; without QDRANT_HOST the agent
	// composes advice without augmentation.
	var retriever repository.Retriever
	if qdrantHost := os.Getenv("QDRANT_HOST"); qdrantHost != "" {
		qdrantPort, _ := strconv.Atoi(envOr("QDRANT_PORT", "6334"))
		qClient, err := qdrant.NewClient(&qdrant.Config{
			Host: qdrantHost,
			Port: qdrantPort,
		})
		if err != nil {
			log.Fatalf("failed to connect to qdrant: %v", err)
		}
		embedder := client.NewEmbedderFromClient(genaiClient, embedModel)
		qr := store.NewQdrantRetriever(qClient, embedder, envOr("QDRANT_COLLECTION", "shrimp-docs"))
		if err := qr.InitCollection(ctx, 768); err != nil {
			log.Fatalf("failed to init qdrant collection: %v", err)
		}
		retriever = qr
	} else {
		log.Println("[RETRIEVAL] QDRANT_HOST not set, advice will compose without document snippets")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	sessions := store.NewRedisSession(rdb, 24*time.Hour)

	agent := usecase.NewShrimpAgent(llm, retriever)
	chatService := usecase.NewChatService(predictor, agent, sessions)

	app := fiber.New(fiber.Config{
		AppName: "Shrimp-Assist",
	})

	handler := api.NewHandler(chatService)
	api.SetupRouter(app, handler)

	port := envOr("PORT", "8080")
	log.Printf("Shrimp-Assist running on port %s", port)
	log.Fatal(app.Listen(":" + port))
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}
