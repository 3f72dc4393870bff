package routes

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"strings"

	_ "concessionaria_xpto/docs"
	"concessionaria_xpto/internal/adapter/http/handlers"
	"concessionaria_xpto/internal/adapter/http/middleware"
	"concessionaria_xpto/internal/adapter/persistence/memory"
	"concessionaria_xpto/internal/adapter/persistence/repository"
	"concessionaria_xpto/internal/infrastructure/database"
	"concessionaria_xpto/internal/infrastructure/issuetracker"
	"concessionaria_xpto/internal/infrastructure/logger"
	"concessionaria_xpto/internal/infrastructure/payments"
	"concessionaria_xpto/internal/usecase"
	"concessionaria_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const PORT = 8080

// Run will start the server
func Run() {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	secret := database.GetenvDefault("JWT_SECRET", "")
	if strings.TrimSpace(secret) == "" {
		logger.L().Fatal("JWT_SECRET is required")
	}

	proposalUseCase, approvalUseCase := buildUseCases(context.Background())
	Register(router, proposalUseCase, approvalUseCase, secret)

	port := database.GetenvDefault("PORT", strconv.Itoa(PORT))
	if err := router.Run(":" + port); err != nil {
		logger.L().Fatal("Failed to startup the application", zap.Error(err))
	}
}

// Register mounts the public and authenticated /v1 routes on router.
func Register(router *gin.Engine, proposals usecase.IProposalUseCase, approvals usecase.IApprovalUseCase, jwtSecret string) {
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := v1.Group("")
	authed.Use(middleware.JWTAuth(jwtSecret))
	addProposalRoutes(authed, handlers.NewProposalHandler(proposals), handlers.NewApprovalHandler(approvals))
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger.L()))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.L().Error("Recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

// buildUseCases wires the proposal use cases on DynamoDB, or on the in-memory
// store when STORAGE_BACKEND=memory.
func buildUseCases(ctx context.Context) (*usecase.ProposalUseCase, *usecase.ApprovalRuleEvaluator) {
	var deps usecase.ProposalDependencies
	if strings.EqualFold(os.Getenv("STORAGE_BACKEND"), "memory") {
		deps = memoryDependencies()
	} else {
		deps = dynamoDependencies(ctx)
	}

	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		logger.L().Warn("Mercado Pago gateway not configured", zap.Error(err))
	} else {
		deps.PaymentGateway = mpGateway
	}

	tracker, err := issuetracker.NewJiraIssueTracker(issuetracker.ConfigFromEnv())
	if err != nil {
		logger.L().Warn("Jira issue tracker not configured", zap.Error(err))
	} else {
		deps.Issues = tracker
	}

	deps.RuleSet = usecase.DiscountRuleSet{}
	approvals := usecase.NewApprovalRuleEvaluator(deps.Sellers, deps.Config, deps.RuleSet, deps.Repositories)
	return usecase.NewProposalUseCase(deps), approvals
}

func dynamoDependencies(ctx context.Context) usecase.ProposalDependencies {
	ddb := database.ConnectDynamoDB()

	var sequence interfaces.ISequenceRepository = repository.NewSequenceDynamoRepository(ddb)
	if strings.EqualFold(os.Getenv("SEQUENCE_BACKEND"), "redis") {
		client, err := database.ConnectRedis(ctx, database.GetenvDefault("REDIS_URL", "redis://localhost:6379/0"))
		if err != nil {
			logger.L().Fatal("Failed to connect to redis", zap.Error(err))
		}
		sequence = repository.NewSequenceRedisRepository(client)
	}

	return usecase.ProposalDependencies{
		UnitOfWork: repository.NewDynamoUnitOfWork(ddb),
		Repositories: usecase.ProposalRepositories{
			Proposals:      repository.NewProposalDynamoRepository(ddb),
			Details:        repository.NewProposalDetailDynamoRepository(ddb),
			DetailVehicles: repository.NewProposalDetailVehicleDynamoRepository(ddb),
			Items:          repository.NewProposalItemDynamoRepository(ddb),
			Payments:       repository.NewProposalPaymentDynamoRepository(ddb),
			Commissions:    repository.NewProposalCommissionDynamoRepository(ddb),
			Persons:        repository.NewProposalPersonDynamoRepository(ddb),
			Documents:      repository.NewProposalDocumentDynamoRepository(ddb),
			SalesOrders:    repository.NewSalesOrderDynamoRepository(ddb),
		},
		Sequence: sequence,
		Config:   repository.NewConfigurationDynamoRepository(ddb),
		Persons:  repository.NewPersonDynamoRepository(ddb),
		Sellers:  repository.NewSellerDynamoRepository(ddb),
		Channels: repository.NewChannelDynamoRepository(ddb),
		Audit:    repository.NewAuditDynamoRepository(ddb),
	}
}

func memoryDependencies() usecase.ProposalDependencies {
	store := memory.NewStore()
	return usecase.ProposalDependencies{
		UnitOfWork: memory.NewUnitOfWork(store),
		Repositories: usecase.ProposalRepositories{
			Proposals:      memory.NewProposalRepository(store),
			Details:        memory.NewProposalDetailRepository(store),
			DetailVehicles: memory.NewProposalDetailVehicleRepository(store),
			Items:          memory.NewProposalItemRepository(store),
			Payments:       memory.NewProposalPaymentRepository(store),
			Commissions:    memory.NewProposalCommissionRepository(store),
			Persons:        memory.NewProposalPersonRepository(store),
			Documents:      memory.NewProposalDocumentRepository(store),
			SalesOrders:    memory.NewSalesOrderRepository(store),
		},
		Sequence: memory.NewSequence(),
		Config:   memory.NewConfiguration(envConfiguration()),
		Persons:  memory.NewPersonRegistry(store),
		Sellers:  memory.NewSellerRegistry(store),
		Channels: memory.NewChannelRegistry(store),
		Audit:    memory.NewAuditLog(store),
	}
}

func envConfiguration() map[string]string {
	keys := []string{
		usecase.ConfigProposalDaysLimit,
		usecase.ConfigProposalInitialCodeLetter,
		usecase.ConfigProposalNumberFixedLetter,
		usecase.ConfigProposalDiscountApprovalThreshold,
	}
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			out[k] = v
		}
	}
	return out
}
