package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	Env             string

	StoreBackend    string
	DatabaseURL     string
	MongoURI        string
	MongoDatabase   string
	MongoCollection string

	// MongoPostsCollection holds full blog posts from the summarize endpoint.
	MongoPostsCollection string

	GenerationProvider   string
	WebhookURL           string
	GenerationTimeoutSec int
	GenerationMaxRetries int
	OpenAIAPIKey         string
	OpenAIBaseURL        string
	LLMModel             string

	DefaultOwnerKey  string
	FallbackTemplate string
	ErrorTemplate    string

	// Token bucket for the generation endpoints, per client IP.
	GenerateRatePerMin int
	GenerateBurst      int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")
	mongoURI := os.Getenv("MONGODB_URI")

	if env == "production" && dbURL == "" && mongoURI == "" {
		log.Printf("DATABASE_URL or MONGODB_URI is required in production")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		Env:             env,

		StoreBackend:    normalizeStoreBackend(getEnv("STORE_BACKEND", ""), dbURL, mongoURI),
		DatabaseURL:     dbURL,
		MongoURI:        mongoURI,
		MongoDatabase:   getEnv("MONGODB_DATABASE", "recipe_generator"),
		MongoCollection: getEnv("MONGODB_COLLECTION", "recipes"),

		MongoPostsCollection: getEnv("MONGODB_POSTS_COLLECTION", "blog_posts"),

		GenerationProvider:   normalizeProvider(getEnv("GENERATION_PROVIDER", "webhook")),
		WebhookURL:           getEnv("GENERATION_WEBHOOK_URL", "http://localhost:5678/webhook/generate-recipe"),
		GenerationTimeoutSec: getEnvInt("GENERATION_TIMEOUT_SECONDS", 120),
		GenerationMaxRetries: getEnvInt("GENERATION_MAX_RETRIES", 1),
		OpenAIAPIKey:         getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:        getEnv("OPENAI_BASE_URL", ""),
		LLMModel:             getEnv("LLM_MODEL", "gpt-4o-mini"),

		DefaultOwnerKey:  getEnv("DEFAULT_OWNER_KEY", "anonymous@example.com"),
		FallbackTemplate: getEnv("RECIPE_FALLBACK_TEMPLATE", ""),
		ErrorTemplate:    getEnv("RECIPE_ERROR_TEMPLATE", ""),

		GenerateRatePerMin: getEnvInt("GENERATE_RATE_PER_MIN", 30),
		GenerateBurst:      getEnvInt("GENERATE_RATE_BURST", 5),
	}
}

// IsDevLike reports whether the environment tolerates degraded dependencies.
func (c Config) IsDevLike() bool {
	switch c.Env {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		log.Printf("config env %s invalid int %q; using %d", key, raw, def)
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

// normalizeStoreBackend picks the explicit backend or infers one from the configured URLs.
func normalizeStoreBackend(raw, dbURL, mongoURI string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "postgres", "pg":
		return "postgres"
	case "mongo", "mongodb":
		return "mongo"
	case "memory":
		return "memory"
	}
	switch {
	case strings.TrimSpace(dbURL) != "":
		return "postgres"
	case strings.TrimSpace(mongoURI) != "":
		return "mongo"
	default:
		return "memory"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "openai":
		return "openai"
	case "none", "placeholder":
		return "none"
	default:
		return "webhook"
	}
}
