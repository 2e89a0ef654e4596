package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	_ "sistemaos/docs" // This will be auto-generated
	"sistemaos/internal/adapter/http/handlers"
	"sistemaos/internal/adapter/http/middleware"
	repository2 "sistemaos/internal/adapter/persistence/repository"
	"sistemaos/internal/domain/entities"
	"sistemaos/internal/infrastructure/auth"
	"sistemaos/internal/infrastructure/database"
	"sistemaos/internal/infrastructure/documents"
	"sistemaos/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/crypto/bcrypt"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	clientRepo := repository2.NewClientDynamoRepository(ddb)
	productRepo := repository2.NewProductDynamoRepository(ddb)
	serviceRepo := repository2.NewServiceDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	tokenIssuer := auth.NewJWTIssuer(os.Getenv("JWT_SECRET"), jwtTTLFromEnv())
	renderer := documents.NewPDFRenderer()

	billingEngine := usecase.NewBillingEngine(productRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, userRepo, billingEngine, renderer)
	clientUseCase := usecase.NewClientUseCase(clientRepo)
	productUseCase := usecase.NewProductUseCase(productRepo)
	serviceUseCase := usecase.NewServiceUseCase(serviceRepo)
	userUseCase := usecase.NewUserUseCase(userRepo, hasher)
	authUseCase := usecase.NewAuthUseCase(userRepo, hasher, tokenIssuer)
	reportUseCase := usecase.NewReportUseCase(orderRepo, productRepo)

	seedDefaultUsers(context.Background(), userUseCase, userRepo)

	orderHandler := handlers.NewOrderHandler(orderUseCase, renderer)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)
	serviceHandler := handlers.NewServiceHandler(serviceUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)
	dashboardHandler := handlers.NewDashboardHandler(reportUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)

	// Rotas autenticadas
	authenticated := v1.Group("", middleware.Authenticate(tokenIssuer))
	staff := authenticated.Group("", middleware.RequireRoles(entities.UserRoleAdmin, entities.UserRoleOperator))
	admin := authenticated.Group("", middleware.RequireRoles(entities.UserRoleAdmin))

	addOrderRoutes(staff, admin, orderHandler)
	addCatalogRoutes(staff, clientHandler, productHandler, serviceHandler)
	addUserRoutes(admin, userHandler)
	addDashboardRoutes(staff, dashboardHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func jwtTTLFromEnv() time.Duration {
	raw := os.Getenv("JWT_TTL")
	if raw == "" {
		return 24 * time.Hour
	}
	ttl, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Invalid JWT_TTL %q, using default: %v", raw, err)
		return 24 * time.Hour
	}
	return ttl
}
