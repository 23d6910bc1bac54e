package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "editora_prisma/docs" // This will be auto-generated
	"editora_prisma/internal/adapter/http/handlers"
	"editora_prisma/internal/adapter/http/middleware"
	"editora_prisma/internal/adapter/persistence/repository"
	"editora_prisma/internal/infrastructure/database"
	"editora_prisma/internal/infrastructure/payments"
	"editora_prisma/internal/infrastructure/pdf"
	"editora_prisma/internal/infrastructure/storage"
	"editora_prisma/internal/usecase"
	"editora_prisma/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := defaultPort
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			port = parsed
		}
	}

	err := router.Run(":" + strconv.Itoa(port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	awsCfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("Failed to load aws config: %v", err)
	}

	leadRepo := repository.NewLeadDynamoRepository(ddb)
	clientRepo := repository.NewClientDynamoRepository(ddb)
	quoteRepo := repository.NewQuoteDynamoRepository(ddb)
	projectRepo := repository.NewProjectDynamoRepository(ddb)
	orderRepo := repository.NewOrderDynamoRepository(ddb)
	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb)
	counterRepo := repository.NewCounterDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	blobStore := storage.NewS3Store(awsCfg)
	renderer := pdf.NewQuoteRenderer()

	leadUseCase := usecase.NewLeadUseCase(leadRepo)
	clientUseCase := usecase.NewClientUseCase(clientRepo, counterRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo)
	projectUseCase := usecase.NewProjectUseCase(projectRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, paymentGateway)
	quotePDFUseCase := usecase.NewQuotePDFUseCase(quoteRepo, clientRepo, renderer, blobStore)

	leadHandler := handlers.NewLeadHandler(leadUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, quotePDFUseCase)
	projectHandler := handlers.NewProjectHandler(projectUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Everything below requires a Bearer token.
	v1.Use(middleware.RequireAuth(os.Getenv("JWT_SECRET")))
	addCRMRoutes(v1, leadHandler, clientHandler, quoteHandler, projectHandler, orderHandler, invoiceHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
