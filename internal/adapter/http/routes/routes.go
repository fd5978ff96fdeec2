package routes

import (
	"context"
	"sync"
	"time"

	_ "pharma_fieldops/docs" // This will be auto-generated
	"pharma_fieldops/internal/adapter/http/handlers"
	"pharma_fieldops/internal/adapter/persistence/repository"
	"pharma_fieldops/internal/domain/reference"
	"pharma_fieldops/internal/infrastructure/config"
	"pharma_fieldops/internal/infrastructure/payments"
	"pharma_fieldops/internal/infrastructure/seed"
	"pharma_fieldops/internal/usecase"
	"pharma_fieldops/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run will start the server
func Run(cfg config.Config, log *zap.Logger) {
	ctx := context.Background()

	router, closeStore, err := NewRouter(ctx, cfg, log)
	if err != nil {
		log.Fatal("[app][routes] failed to build router", zap.Error(err))
	}
	defer closeStore()

	log.Info("[app][routes] listening", zap.String("port", cfg.AppPort), zap.String("store", cfg.StoreBackend))
	if err := router.Run(":" + cfg.AppPort); err != nil {
		log.Fatal("[app][routes] failed to startup the application", zap.Error(err))
	}
}

// NewRouter wires the record store, use cases and handlers into a gin
// engine. The returned func releases the store connection.
func NewRouter(ctx context.Context, cfg config.Config, log *zap.Logger) (*gin.Engine, func(), error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	setMiddlewares(router, cfg, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	kv, closeStore, err := openKeyValueStore(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	if err := getRoutes(ctx, router, cfg, kv, log); err != nil {
		closeStore()
		return nil, nil, err
	}
	return router, closeStore, nil
}

func getRoutes(ctx context.Context, router *gin.Engine, cfg config.Config, kv interfaces.IKeyValueStore, log *zap.Logger) error {
	store := repository.NewRecordStore(kv, log)
	ref := reference.Default()

	var verifier interfaces.IReceiptVerifier
	mpVerifier, err := payments.NewMercadoPagoReceiptVerifier(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, log)
	if err != nil {
		log.Warn("[payment][routes] receipt verification disabled", zap.Error(err))
	} else {
		verifier = mpVerifier
	}

	// Collections and the order queue are rewritten together on group
	// approval, so both use cases serialise on the same lock.
	approvals := &sync.Mutex{}

	calendarUseCase := usecase.NewCalendarUseCase(store, log)
	visitUseCase := usecase.NewVisitUseCase(store, ref, calendarUseCase, log)
	collectionUseCase := usecase.NewCollectionUseCase(store, verifier, approvals, log)
	orderUseCase := usecase.NewOrderUseCase(store, approvals, log)

	if cfg.SeedVisits > 0 {
		seedValue := cfg.SeedRandom
		if seedValue == 0 {
			seedValue = time.Now().UnixNano()
		}
		n, err := visitUseCase.Seed(ctx, seed.Visits(ref, cfg.SeedVisits, seedValue, time.Now()))
		if err != nil {
			return err
		}
		log.Info("[visit][routes] demo visits seeded", zap.Int("count", n), zap.Int64("seed", seedValue))
	}

	referenceHandler := handlers.NewReferenceHandler(usecase.NewReferenceUseCase(ref))
	dashboardHandler := handlers.NewDashboardHandler(usecase.NewDashboardUseCase(store, ref))
	visitHandler := handlers.NewVisitHandler(visitUseCase)
	evaluationHandler := handlers.NewEvaluationHandler(usecase.NewEvaluationUseCase(store))
	sampleHandler := handlers.NewSampleHandler(usecase.NewSampleUseCase(store, ref, log))
	collectionHandler := handlers.NewCollectionHandler(collectionUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	pharmacyHandler := handlers.NewPharmacyHandler(usecase.NewPharmacyUseCase(store))
	calendarHandler := handlers.NewCalendarHandler(calendarUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addReferenceRoutes(v1, referenceHandler)
	addDashboardRoutes(v1, dashboardHandler)
	addVisitRoutes(v1, visitHandler)
	addEvaluationRoutes(v1, evaluationHandler)
	addSampleRoutes(v1, sampleHandler)
	addCollectionRoutes(v1, collectionHandler, orderHandler)
	addPharmacyRoutes(v1, pharmacyHandler)
	addCalendarRoutes(v1, calendarHandler)
	return nil
}
