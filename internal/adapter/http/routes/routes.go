package routes

import (
	"context"
	"io"
	"log"
	"os"

	_ "payment_factory/docs" // swag init output
	"payment_factory/internal/adapter/http/handlers"
	"payment_factory/internal/adapter/persistence/repository"
	"payment_factory/internal/config"
	"payment_factory/internal/infrastructure/database"
	"payment_factory/internal/infrastructure/gateways"
	"payment_factory/internal/infrastructure/logsink"
	"payment_factory/internal/usecase"
	"payment_factory/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg := config.Load()

	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, cfg, os.Stdout)

	err := router.Run(cfg.Addr())
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(r *gin.Engine, cfg config.Config, out io.Writer) {
	sink := newLogSink(context.Background(), cfg, out)
	factory := gateways.NewGatewayFactory(out, sink, gateways.UUIDReferenceGenerator{})
	paymentUseCase := usecase.NewPaymentUseCase(factory)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
}

// newLogSink always keeps the console sink and adds the DynamoDB table when
// PAYMENT_LOG_SINK=dynamodb and a client can be built.
func newLogSink(ctx context.Context, cfg config.Config, out io.Writer) interfaces.ILogSink {
	console := logsink.NewConsoleLogSink(out)
	if cfg.LogSink != config.LogSinkDynamoDB {
		return console
	}

	ddb, err := database.NewDynamoDBClient(ctx)
	if err != nil {
		log.Printf("[payment][routes] dynamodb log sink not configured, using console: %v", err)
		return console
	}
	log.Printf("[payment][routes] dynamodb log sink enabled table=%s", cfg.LogsTableName)
	return logsink.MultiLogSink{console, repository.NewPaymentLogDynamoRepository(ddb, cfg.LogsTableName)}
}

// setMiddlewares installs request logging and a single panic handler.
func setMiddlewares(r *gin.Engine) {
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
