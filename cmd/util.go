package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"fundfolio/api"
	"fundfolio/internal/provider"
	"fundfolio/internal/repository"
	"fundfolio/internal/service"
	"fundfolio/internal/util"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	unitTrustRepository := repository.NewUnitTrustRepository(dbConn)
	priceRepository := repository.NewPriceRepository(dbConn)
	transactionRepository := repository.NewTransactionRepository(dbConn)
	fixedDepositRepository := repository.NewFixedDepositRepository(dbConn)
	notificationRepository := repository.NewNotificationRepository(dbConn)

	// the registry is assembled once here and handed down - providers are
	// never looked up through globals
	providers := provider.Registry{
		provider.Name_Yahoo: provider.NewYahooProvider(),
		provider.Name_CAL:   provider.NewCALProvider(),
		provider.Name_Alpaca: provider.NewAlpacaProvider(
			secrets.Alpaca.ApiKey,
			secrets.Alpaca.ApiSecret,
			secrets.Alpaca.Endpoint,
		),
	}

	performanceService := service.NewPerformanceService(transactionRepository, priceRepository)
	priceFetchService := service.NewPriceFetchService(unitTrustRepository, priceRepository, providers)
	fixedDepositService := service.NewFixedDepositService(fixedDepositRepository)
	notificationService := service.NewNotificationService(notificationRepository, fixedDepositRepository)

	return &api.ApiHandler{
		Db:                    dbConn,
		UnitTrustRepository:   unitTrustRepository,
		PriceRepository:       priceRepository,
		TransactionRepository: transactionRepository,
		PerformanceService:    performanceService,
		PriceFetchService:     priceFetchService,
		FixedDepositService:   fixedDepositService,
		NotificationService:   notificationService,
	}, nil
}
