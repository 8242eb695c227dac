package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "liquiverde_bff/docs"
	"liquiverde_bff/internal/adapter/http/handlers"
	"liquiverde_bff/internal/adapter/persistence/repository"
	"liquiverde_bff/internal/config"
	"liquiverde_bff/internal/infrastructure/database"
	"liquiverde_bff/internal/infrastructure/shoppingapi"
	"liquiverde_bff/internal/usecase"
	"liquiverde_bff/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 15 * time.Second

// Handlers groups everything the router serves.
type Handlers struct {
	Products *handlers.ProductHandler
	Lists    *handlers.ShoppingListHandler
	Reviews  *handlers.ReviewHandler
	WS       *handlers.WSHandler
}

// App is the wired application: the router plus what must be drained on
// shutdown.
type App struct {
	Router  *gin.Engine
	WS      *handlers.WSHandler
	Reviews *usecase.ReviewSessionUseCase
}

// Run will start the server and block until SIGINT/SIGTERM.
func Run() {
	cfg := config.Load()
	app := Build(context.Background(), cfg)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Server.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("[http][server] listening port=%d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()

	<-ctx.Done()
	log.Printf("[http][server] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.WS.Close(); err != nil {
		log.Printf("[http][server] websocket close failed err=%v", err)
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[http][server] shutdown failed err=%v", err)
	}
	// reviews waiting on a human only end at their decision timeout
	done := make(chan struct{})
	go func() {
		app.Reviews.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Printf("[http][server] reviews still running at shutdown")
	}
}

// Build wires gateway, usecases and handlers from cfg.
func Build(ctx context.Context, cfg config.Config) *App {
	gateway := shoppingapi.NewClient(cfg.ShoppingAPI.BaseURL, cfg.ShoppingAPI.Timeout, newTokenSource(cfg.ShoppingAPI))

	ws := handlers.NewWSHandler()
	guard := usecase.NewListGuard()
	lists := usecase.NewShoppingListUseCase(gateway, guard, ws)
	engine := usecase.NewSubstitutionReviewEngine(gateway, usecase.ReviewEngineConfig{
		AddRetries:     cfg.Review.AddRetries,
		RetryBackoff:   cfg.Review.RetryBackoff,
		RefreshTimeout: cfg.Review.RefreshTimeout,
	})
	reviews := usecase.NewReviewSessionUseCase(lists, engine, newSessionRepository(ctx, cfg.DynamoDB), ws, guard, usecase.ReviewSessionConfig{
		DecisionTimeout: cfg.Review.DecisionTimeout,
		SessionTTL:      cfg.DynamoDB.SessionTTL,
	})

	router := NewRouter(cfg.Server, Handlers{
		Products: handlers.NewProductHandler(lists),
		Lists:    handlers.NewShoppingListHandler(lists),
		Reviews:  handlers.NewReviewHandler(reviews),
		WS:       ws,
	})
	return &App{Router: router, WS: ws, Reviews: reviews}
}

// NewRouter registers middlewares, swagger and the /v1 routes.
func NewRouter(cfg config.ServerConfig, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProductRoutes(v1, h.Products)
	addShoppingListRoutes(v1, h.Lists, h.Reviews)
	addReviewRoutes(v1, h.Reviews)
	addWebSocketRoutes(v1, h.WS)
	return router
}

func setMiddlewares(router *gin.Engine, cfg config.ServerConfig) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func newTokenSource(cfg config.ShoppingAPIConfig) *shoppingapi.TokenSource {
	switch {
	case cfg.Token != "":
		return shoppingapi.NewStaticTokenSource(cfg.Token)
	case cfg.Username != "" && cfg.Password != "":
		return shoppingapi.NewLoginTokenSource(cfg.BaseURL, cfg.Username, cfg.Password, nil)
	default:
		log.Printf("[shopping][auth] no credentials configured, calling the shopping service anonymously")
		return nil
	}
}

// newSessionRepository returns nil when persistence is disabled or DynamoDB
// cannot be configured; sessions then live in memory only.
func newSessionRepository(ctx context.Context, cfg config.DynamoDBConfig) interfaces.IReviewSessionRepository {
	if !cfg.Enabled {
		log.Printf("[review][repository] persistence disabled, sessions kept in memory")
		return nil
	}
	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		log.Printf("[review][repository] dynamodb unavailable, sessions kept in memory err=%v", err)
		return nil
	}
	return repository.NewReviewSessionDynamoRepository(ddb, cfg.SessionsTable, cfg.SessionTTL)
}
