package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "insurance_designer/docs" // This will be auto-generated
	"insurance_designer/internal/adapter/http/handlers"
	"insurance_designer/internal/adapter/persistence/gateway"
	"insurance_designer/internal/adapter/persistence/repository"
	"insurance_designer/internal/infrastructure/database"
	"insurance_designer/internal/usecase"
	"insurance_designer/internal/usecase/interfaces"
	"insurance_designer/pkg/config"
	logx "insurance_designer/pkg/logger"
	"insurance_designer/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// AppConfig is decoded from the environment once at startup.
type AppConfig struct {
	Port                  int    `envconfig:"PORT" default:"8080"`
	DesignItemConcurrency int    `envconfig:"DESIGN_ITEM_CONCURRENCY" default:"1"`
	DesignRunsEnabled     bool   `envconfig:"DESIGN_RUNS_ENABLED" default:"true"`
	DesignRunsTable       string `envconfig:"DESIGN_RUNS_TABLE" default:"design_runs"`

	Log      logx.Config
	Tracing  tracing.Config
	Postgres database.PostgresConfig
	DynamoDB database.DynamoDBConfig
}

// Handlers groups everything the router serves.
type Handlers struct {
	Policy    *handlers.PolicyHandler
	DesignRun *handlers.DesignRunHandler
}

// Run will start the server and block until SIGINT or SIGTERM.
func Run() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustNew[AppConfig]("")
	logx.Init(cfg.Log)

	shutdownTracing, err := tracing.Init(ctx, cfg.Tracing)
	if err != nil {
		log.Fatal().Err(err).Msg("[startup][tracing] failed to initialize tracing")
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Warn().Err(err).Msg("[shutdown][tracing] flush failed")
		}
	}()

	h, closeDeps, err := buildHandlers(ctx, *cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("[startup] failed to wire dependencies")
	}
	defer closeDeps()

	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Port),
		Handler: NewRouter(cfg.Tracing.ServiceName, h),
	}

	go func() {
		log.Info().Int("port", cfg.Port).Msg("[startup] listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to startup the application")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("[shutdown] stopping server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("[shutdown] server did not stop cleanly")
	}
}

func buildHandlers(ctx context.Context, cfg AppConfig) (Handlers, func(), error) {
	db, err := database.ConnectPostgres(ctx, cfg.Postgres)
	if err != nil {
		return Handlers{}, nil, err
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			log.Warn().Err(err).Msg("[shutdown][postgres] close failed")
		}
	}
	if cfg.Postgres.Migrate {
		if err := database.Migrate(db); err != nil {
			closeDB()
			return Handlers{}, nil, fmt.Errorf("migrate record store: %w", err)
		}
	}

	recordGateway := gateway.NewPostgresRecordGateway(db)

	// Left as a nil interface when disabled so the use cases can tell.
	var runRepo interfaces.IDesignRunRepository
	if cfg.DesignRunsEnabled {
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			log.Warn().Err(err).Msg("[startup][dynamodb] design run audit not configured")
		} else {
			runRepo = repository.NewDesignRunDynamoRepository(ddb, cfg.DesignRunsTable)
		}
	}

	designOpts := []usecase.PolicyDesignOption{usecase.WithItemConcurrency(cfg.DesignItemConcurrency)}
	if runRepo != nil {
		designOpts = append(designOpts, usecase.WithDesignRunRepository(runRepo))
	}

	designUseCase := usecase.NewPolicyDesignUseCase(recordGateway, designOpts...)
	queryUseCase := usecase.NewPolicyQueryUseCase(recordGateway)
	designRunUseCase := usecase.NewDesignRunUseCase(runRepo)

	return Handlers{
		Policy:    handlers.NewPolicyHandler(designUseCase, queryUseCase),
		DesignRun: handlers.NewDesignRunHandler(designRunUseCase),
	}, closeDB, nil
}

// NewRouter builds the gin engine with middlewares, docs and every route group.
func NewRouter(serviceName string, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, serviceName)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	addMetricsRoutes(router)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPolicyRoutes(v1, h.Policy, h.DesignRun)
	addOperationRoutes(v1, h.Policy)
	return router
}
