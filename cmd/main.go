package main

import (
	"context"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"logrange-backend/config"
	_ "logrange-backend/docs"
	"logrange-backend/internal/chart"
	"logrange-backend/internal/controller"
	"logrange-backend/internal/cratedb"
	es "logrange-backend/internal/elasticsearch"
	"logrange-backend/internal/logger"
	"logrange-backend/internal/metrics"
	"logrange-backend/internal/repository"
	"logrange-backend/internal/scheduler"
	"logrange-backend/internal/service"
)

// @title           Log Range API
// @version         1.0
// @description     Time-range queries, statistics and chart series over Elasticsearch and CrateDB log stores.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @schemes   http https

// @tag.name         logs
// @tag.description  Range queries, statistics and chart series

// @tag.name         health
// @tag.description  API health check operations

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	logCloser := logger.Setup(cfg.Log)
	defer logCloser.Close()

	app := fx.New(
		// Core Dependencies
		fx.Supply(cfg),
		// Infrastructure Dependencies
		fx.Provide(
			NewGinEngine,
			metrics.New,
			es.NewTypedClient,
			cratedb.ProvidePool,
			NewStoreRegistry,
			NewArtifactWriter,
			service.NewLogQueryService,
			controller.NewLogController,
			scheduler.NewRefreshJob,
		),
		fx.Invoke(
			RegisterAPIRoutes,
			RegisterScheduler,
		),
	)

	startCtx, cancelStart := context.WithTimeout(context.Background(), 15*time.Second) // Timeout for startup
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}
	<-app.Done()

	// Initiate shutdown
	stopCtx, cancelStop := context.WithTimeout(context.Background(), 30*time.Second) // Timeout for graceful shutdown
	defer cancelStop()
	log.Info().Msg("Shutting down application...")
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown due to error or timeout")
	}
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(controller.RequestLogger())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", controller.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", controller.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	// Add swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// --- Factory Functions ---

// NewStoreRegistry registers both log stores behind the record ceiling.
func NewStoreRegistry(cfg *config.Config, esClient *elasticsearch.TypedClient, pool *pgxpool.Pool) *repository.Registry {
	limiter := repository.NewResultLimiter(cfg.Query.MaxRecords)
	registry := repository.NewRegistry()
	registry.Register(es.StoreName, es.NewLogRepository(esClient, cfg.Elasticsearch.LogIndex), limiter)
	registry.Register(cratedb.StoreName, cratedb.NewLogRepository(pool, cfg.CrateDB.Table), limiter)

	log.Info().Strs("stores", registry.Names()).Int("max_records", limiter.Ceiling()).Msg("Log stores registered")
	return registry
}

func NewArtifactWriter(cfg *config.Config) chart.ArtifactWriter {
	return chart.NewArtifactWriter(cfg.Chart.ArtifactPath)
}

// --- Invoker Functions ---

func RegisterAPIRoutes(
	lifecycle fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	logController *controller.LogController,
	m *metrics.Metrics,
) {
	controller.RegisterLogRoutes(router, logController)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Starting HTTP server on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error().Err(err).Msg("HTTP server ListenAndServe error")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Shutting down HTTP server...")
			return server.Shutdown(ctx)
		},
	})
}

func RegisterScheduler(lc fx.Lifecycle, cfg *config.Config, job *scheduler.RefreshJob) error {
	_, err := scheduler.NewScheduler(lc, cfg, job)
	return err
}
