package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/storage/redis/v3"

	"macromate/data"
	"macromate/internal/cache"
	"macromate/internal/catalog"
	"macromate/internal/classifier"
	"macromate/internal/config"
	"macromate/internal/db"
	"macromate/internal/fitness"
	"macromate/internal/jobs"
	"macromate/internal/knowledge"
	"macromate/internal/metrics"
	"macromate/internal/models"
	"macromate/internal/resolver"
	"macromate/internal/server"
)

// classifierTimeout bounds one round trip to the food model server.
const classifierTimeout = 15 * time.Second

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cfg := config.Load()

	var deps server.Dependencies
	var wg sync.WaitGroup

	// Shared redis store for the response cache and the rate limiter
	var store *redis.Storage
	if cfg.RedisURL != "" {
		s, err := openRedis(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: redis unavailable, using in-process cache and limiter: %v", err)
		} else {
			store = s
			defer store.Close()
			log.Println("Connected to redis")
		}
	}

	// Lookup statistics (optional)
	if cfg.HasDatabase() {
		database, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close()

		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Println("Migrations completed successfully")

		recorder := metrics.Init(database)
		flusher := jobs.NewLookupFlusher(recorder, cfg.LookupFlushInterval)
		wg.Go(func() { flusher.Start(ctx) })
		deps.DB = database
	} else {
		log.Println("DATABASE_URL not set, lookup statistics are disabled")
	}

	// Chatbot
	if r, err := buildResolver(cfg, store); err != nil {
		log.Printf("Warning: chatbot disabled: %v", err)
	} else {
		deps.Resolver = r
	}

	// Body-fat model
	if p, err := loadBodyFatModel(cfg.BodyFatModelFile); err != nil {
		log.Printf("Warning: body fat calculator disabled: %v", err)
	} else {
		deps.Predictor = p
	}

	// Food recognition (optional)
	if cfg.FoodClassifierURL != "" {
		if r, err := buildFoodRecognizer(cfg); err != nil {
			log.Printf("Warning: food recognition disabled: %v", err)
		} else {
			deps.Recognizer = r
			log.Printf("Food recognition enabled (%s)", cfg.FoodClassifierURL)
		}
	}

	var limiterStorage fiber.Storage
	if store != nil {
		limiterStorage = store
	}
	srv := server.New(cfg, limiterStorage)
	srv.RegisterRoutes(deps)

	// Graceful shutdown
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		log.Println("Shutting down server...")
		if err := srv.Shutdown(); err != nil {
			log.Printf("Server forced to shutdown: %v", err)
		}
	case err := <-serverErr:
		cancel()
		wg.Wait()
		log.Fatalf("Server error: %v", err)
	}
	cancel()
	wg.Wait()
	log.Println("Server exited")
}

// openRedis connects to redis. The storage driver panics when the server is
// unreachable, so the panic is turned into an error.
func openRedis(url string) (store *redis.Storage, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to connect to redis: %v", r)
		}
	}()
	return redis.New(redis.Config{URL: url}), nil
}

// buildResolver assembles the knowledge base, catalogs and response cache.
func buildResolver(cfg *config.Config, store *redis.Storage) (*resolver.Resolver, error) {
	topics, err := config.LoadTopics(cfg.KnowledgeFile)
	if err != nil {
		return nil, err
	}
	if topics == nil {
		if topics, err = config.ParseTopics(data.Knowledge); err != nil {
			return nil, err
		}
	} else {
		log.Printf("Loaded %d topics from %s", len(topics), cfg.KnowledgeFile)
	}

	kb, err := knowledge.New(topics)
	if err != nil {
		return nil, err
	}

	var catalogFS fs.FS = data.Catalogs
	if cfg.DataDir != "" {
		catalogFS = os.DirFS(cfg.DataDir)
	}
	catalogs, err := catalog.Load(catalogFS)
	if err != nil {
		log.Printf("Warning: %v", err)
	}

	local, err := cache.NewLRU[models.ResolutionResult](cfg.CacheCapacity)
	if err != nil {
		return nil, err
	}
	var responses resolver.Cache = local
	if store != nil {
		responses = cache.NewLayered(local, store, "macromate:chatbot:", cfg.CacheTTL)
	}

	r, err := resolver.New(kb, catalogs, responses, nil)
	if err != nil {
		return nil, err
	}
	log.Printf("Chatbot ready: %d topics, catalogs %v", kb.Len(), catalogs.Loaded())
	return r, nil
}

// loadBodyFatModel reads the model file, falling back to the built-in model.
func loadBodyFatModel(path string) (*fitness.LinearModel, error) {
	spec, err := config.LoadLinearModel(path)
	if err != nil {
		return nil, err
	}
	if spec == nil {
		if spec, err = config.ParseLinearModel(data.BodyFatModel); err != nil {
			return nil, err
		}
	}
	return fitness.NewLinearModel(spec)
}

func buildFoodRecognizer(cfg *config.Config) (*fitness.FoodRecognizer, error) {
	clsCfg, err := classifier.LoadConfig(cfg.FoodClassifierConfig)
	if err != nil {
		return nil, err
	}
	remote, err := classifier.NewRemote(cfg.FoodClassifierURL, classifierTimeout)
	if err != nil {
		return nil, err
	}
	return fitness.NewFoodRecognizer(remote, clsCfg.ClassNames, clsCfg.ConfidenceThreshold)
}
