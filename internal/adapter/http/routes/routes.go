package routes

import (
	"context"
	"log"
	_ "luthier_works/docs" // This will be auto-generated
	"luthier_works/internal/adapter/http/handlers"
	repository2 "luthier_works/internal/adapter/persistence/repository"
	"luthier_works/internal/infrastructure/database"
	"luthier_works/internal/infrastructure/streams"
	"luthier_works/internal/usecase"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// boards is shared by the board handler; its feed subscriptions live for the
// whole process and are torn down on shutdown below.
var boards *usecase.BoardRegistry

const PORT = 8080

const shutdownTimeout = 10 * time.Second

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	srv := &http.Server{Addr: ":" + strconv.Itoa(PORT), Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		boards.StopAll()
		log.Fatalf("Failed to startup the application: %v", err.Error())
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[http][server] shutdown failed err=%v", err)
	}
	boards.StopAll()
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	runRepo := repository2.NewRunDynamoRepository(ddb)
	buildRepo := repository2.NewBuildDynamoRepository(ddb)
	noteRepo := repository2.NewNoteDynamoRepository(ddb)
	updateRepo := repository2.NewRunUpdateDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)

	pipeline := usecase.NewStagePipelineUseCase(buildRepo, runRepo, noteRepo)
	runUseCase := usecase.NewRunUseCase(runRepo, updateRepo)
	buildUseCase := usecase.NewBuildUseCase(buildRepo, runRepo, noteRepo)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)

	feed := streams.NewStreamFeed(database.ConnectDynamoDBStreams(), streams.StreamARNsFromEnv())
	boards = usecase.NewBoardRegistry(pipeline, runRepo, buildRepo, feed)

	runHandler := handlers.NewRunHandler(runUseCase)
	buildHandler := handlers.NewBuildHandler(buildUseCase)
	boardHandler := handlers.NewBoardHandler(boards)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPortalRoutes(v1, runHandler, buildHandler, boardHandler, notificationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
