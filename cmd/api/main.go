package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"pagecraft/internal/adapter/repo"
	"pagecraft/internal/design"
	"pagecraft/internal/generation"
	"pagecraft/internal/http/handlers"
	"pagecraft/internal/http/httpapi"
	"pagecraft/internal/infra"
	"pagecraft/internal/infra/geoip"
	"pagecraft/internal/middleware"
	"pagecraft/internal/providers/llm"
	"pagecraft/internal/storage"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	pages := repo.NewPageRepository(infra.NewSQLRunner(dbpool, logger))

	generator, err := llm.NewGenerator(llm.Options{
		Provider: cfg.GenerationProvider,
		OpenAI: llm.OpenAIOptions{
			APIKey:       cfg.OpenAIAPIKey,
			Model:        cfg.OpenAIModel,
			BaseURL:      cfg.OpenAIBaseURL,
			Organization: cfg.OpenAIOrg,
			OnWarning: func(reason, detail string) {
				logger.Warn().Str("reason", reason).Str("detail", detail).Msg("openai model")
			},
		},
		Gemini: llm.GeminiOptions{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
		},
	})
	if err != nil {
		logger.Fatal().Err(err).Str("provider", cfg.GenerationProvider).Msg("failed to configure generator")
	}

	table, err := design.LoadTable(cfg.DesignDefaultsPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load design defaults")
	}

	repairSections, err := generation.ParseSections(cfg.RepairSections)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid REPAIR_SECTIONS")
	}

	orchestrator, err := generation.NewOrchestrator(generation.Options{
		Generator:      generator,
		Pages:          pages,
		Enricher:       design.NewEnricher(table),
		Logger:         logger,
		Timeout:        cfg.GenerationTimeout,
		RepairSections: repairSections,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build orchestrator")
	}

	files, err := storage.NewFileStore(cfg.StoragePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to prepare storage")
	}
	defer files.Close()

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}
	defer resolver.Close()
	var countryLookup middleware.CountryLookup
	if resolver != nil {
		countryLookup = resolver.CountryCode
	}

	app := &handlers.App{
		Logger:    logger,
		Pages:     pages,
		Generator: orchestrator,
		Logos:     storage.NewLogoStore(files, cfg.StorageBaseURL, cfg.MaxLogoBytes),
		Ping:      dbpool.Ping,
	}

	router := httpapi.NewRouter(app, httpapi.Options{
		Logger:          logger,
		JWTSecret:       cfg.JWTSecret,
		AllowedOrigins:  cfg.CORSAllowedOrigins,
		RateLimitPerMin: cfg.RateLimitPerMin,
		CountryLookup:   countryLookup,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().
			Str("addr", server.Addr()).
			Str("provider", generator.Name()).
			Msg("API listening")
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	// in-flight generations may run up to two attempts
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*cfg.GenerationTimeout+10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
