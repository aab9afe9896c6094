package main

import (
	"log"
	"os"

	"github.com/hasnainyaqub/Microservice-App/internal/cache"
	"github.com/hasnainyaqub/Microservice-App/internal/db"
	"github.com/hasnainyaqub/Microservice-App/internal/llm"
	"github.com/hasnainyaqub/Microservice-App/internal/menu"
	"github.com/hasnainyaqub/Microservice-App/internal/recommend"
	"github.com/hasnainyaqub/Microservice-App/internal/router"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"DATABASE_URL",
		"JWT_SECRET",
	}

	cfg := recommend.ConfigFromEnv()
	if cfg.Mode == recommend.ModeLLM {
		required = append(required, "GROQ_API_KEY")
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── CACHE ─────────────────────────
	menuCache := cache.NewMenuCache()
	defer menuCache.Close()

	// ───────────────────────── SERVICES ─────────────────────────
	menuRepo := menu.NewPostgresRepository(pgDB)
	policy := recommend.PolicyByName(os.Getenv("BUDGET_POLICY"))

	var llmClient llm.Client
	if cfg.Mode == recommend.ModeLLM {
		llmClient = llm.NewGroqClient()
	}

	recommendService := recommend.NewService(menuRepo, menuCache, policy, llmClient, cfg)

	// ───────────────────────── HANDLERS + ROUTES ─────────────────────────
	recommendHandler := recommend.NewHandler(recommendService)
	cacheOps := cache.NewHandler(menuCache)

	r := router.New(recommendHandler, cacheOps)

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("🚀 API running at http://localhost:%s (mode=%s)", port, cfg.Mode)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
