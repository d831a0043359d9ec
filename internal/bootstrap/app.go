package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"recipe-backend/internal/generation"
	"recipe-backend/internal/generation/openai"
	"recipe-backend/internal/generation/webhook"
	"recipe-backend/internal/recipes"
	"recipe-backend/internal/services/health"
	"recipe-backend/internal/shared/config"
	"recipe-backend/internal/shared/server"
	"recipe-backend/internal/shared/server/middleware"
	"recipe-backend/internal/shared/storage/db"
	"recipe-backend/internal/shared/storage/docstore"
	"recipe-backend/internal/summaries"
)

const (
	storeMemory   = "memory"
	storePostgres = "postgres"
	storeMongo    = "mongo"
)

// App holds shared dependencies and the configured router.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	Store          string
	DB             *sql.DB
	Mongo          *mongo.Client
	RecipesRepo    recipes.Repo
	Generator      generation.Client
	RecipeService  *recipes.Service
	RecipeHandler  *recipes.Handler
	SummaryService *summaries.Service
	SummaryHandler *summaries.Handler
	Health         *health.Service
}

// Build connects the configured store, constructs services and mounts routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.StoreBackend) == "" {
		cfg.StoreBackend = storeMemory
	}
	ctx := context.Background()

	app := &App{Config: cfg}
	if err := buildStore(ctx, app); err != nil {
		return nil, err
	}

	gen, err := buildGenerator(cfg)
	if err != nil {
		_ = app.Close(ctx)
		return nil, err
	}
	app.Generator = gen

	app.RecipeService = &recipes.Service{
		Repo:         app.RecipesRepo,
		Generator:    app.Generator,
		Templates:    recipes.DefaultTemplates().WithOverrides(cfg.FallbackTemplate, cfg.ErrorTemplate),
		DefaultOwner: cfg.DefaultOwnerKey,
	}
	app.RecipeHandler = recipes.NewHandler(app.RecipeService)
	app.SummaryService = buildSummaryService(app)
	app.SummaryHandler = summaries.NewHandler(app.SummaryService)
	app.Health = health.NewService(app.Store, app.pinger())

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         cfg,
		RecipeHandler:  app.RecipeHandler,
		SummaryHandler: app.SummaryHandler,
		Health:         app.Health,
		RateLimiter:    middleware.NewRateLimiter(nil),
	})

	return app, nil
}

// Close releases store connections.
func (a *App) Close(ctx context.Context) error {
	if a == nil {
		return nil
	}
	var errs []error
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
		a.DB = nil
	}
	if a.Mongo != nil {
		if err := a.Mongo.Disconnect(ctx); err != nil {
			errs = append(errs, fmt.Errorf("disconnect mongo: %w", err))
		}
		a.Mongo = nil
	}
	return errors.Join(errs...)
}

func buildStore(ctx context.Context, app *App) error {
	cfg := app.Config
	switch cfg.StoreBackend {
	case storePostgres:
		sqlDB, err := connectPostgres(ctx, cfg)
		if err == nil {
			app.Store = storePostgres
			app.DB = sqlDB
			app.RecipesRepo = &recipes.PGRepo{DB: sqlDB}
			return nil
		}
		if !cfg.IsDevLike() {
			return err
		}
		log.Printf("bootstrap: postgres unavailable; using in-memory repositories: %v", err)
	case storeMongo:
		client, repo, err := connectMongo(ctx, cfg)
		if err == nil {
			app.Store = storeMongo
			app.Mongo = client
			app.RecipesRepo = repo
			return nil
		}
		if !cfg.IsDevLike() {
			return err
		}
		log.Printf("bootstrap: mongo unavailable; using in-memory repositories: %v", err)
	case storeMemory:
		if !cfg.IsDevLike() {
			log.Printf("bootstrap: using in-memory repositories in %s; data is not durable", cfg.Env)
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	app.Store = storeMemory
	app.RecipesRepo = recipes.NewMemoryRepo()
	return nil
}

func connectPostgres(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, fmt.Errorf("DATABASE_URL is required for postgres store")
	}
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return sqlDB, nil
}

func connectMongo(ctx context.Context, cfg config.Config) (*mongo.Client, *recipes.MongoRepo, error) {
	client, err := docstore.Connect(ctx, cfg.MongoURI, docstore.DefaultOptions())
	if err != nil {
		return nil, nil, err
	}
	repo := &recipes.MongoRepo{
		Collection: client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection),
	}
	indexCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := repo.EnsureIndexes(indexCtx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("ensure mongo indexes: %w", err)
	}
	return client, repo, nil
}

// buildSummaryService writes full posts to Mongo and summary rows to Postgres
// when those stores are connected, and to memory otherwise.
func buildSummaryService(app *App) *summaries.Service {
	mem := summaries.NewMemoryStore()
	svc := &summaries.Service{
		Posts:      mem,
		Summaries:  mem,
		Translator: summaries.NewUrduTranslator(),
	}
	if app.Mongo != nil {
		coll := strings.TrimSpace(app.Config.MongoPostsCollection)
		if coll == "" {
			coll = "blog_posts"
		}
		svc.Posts = &summaries.MongoStore{Collection: app.Mongo.Database(app.Config.MongoDatabase).Collection(coll)}
	}
	if app.DB != nil {
		svc.Summaries = &summaries.PGStore{DB: app.DB}
	}
	return svc
}

func buildGenerator(cfg config.Config) (generation.Client, error) {
	timeout := time.Duration(cfg.GenerationTimeoutSec) * time.Second

	var base generation.Client
	switch cfg.GenerationProvider {
	case "openai":
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel, cfg.OpenAIBaseURL, timeout)
		if err != nil {
			return nil, err
		}
		base = client
	case "none":
		base = generation.PlaceholderClient{}
	default:
		client, err := webhook.NewClient(cfg.WebhookURL, timeout)
		if err != nil {
			return nil, err
		}
		base = client
	}
	return generation.WithRetry(base, cfg.GenerationMaxRetries, 0), nil
}

func (a *App) pinger() health.Pinger {
	switch {
	case a.DB != nil:
		return a.DB.PingContext
	case a.Mongo != nil:
		return func(ctx context.Context) error { return docstore.Ping(ctx, a.Mongo) }
	default:
		return nil
	}
}
