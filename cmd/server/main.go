package main

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"distrisur/config"
	"distrisur/db/mongo"
	"distrisur/handlers"
	"distrisur/repository"
	"distrisur/routes"
	"distrisur/services"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	mg := mongo.NewMongoDB(cfg.MongoURL)
	if err := mg.Connect(); err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer mg.Disconnect()

	db := mg.Database(cfg.DBName)

	// Repositories
	customerRepo := repository.NewMongoCustomerRepo(db)
	driverRepo := repository.NewMongoDriverRepo(db)
	productRepo := repository.NewMongoProductRepo(db)
	accountRepo := repository.NewMongoTransferAccountRepo(db)
	shipmentRepo := repository.NewMongoShipmentRepo(db)
	invoiceRepo := repository.NewMongoInvoiceRepo(db)
	paymentRepo := repository.NewMongoPaymentRepo(db)
	sequenceRepo := repository.NewMongoSequenceRepo(db)
	userRepo := repository.NewMongoUserRepo(db)
	companyRepo := repository.NewMongoCompanyInfoRepo(db)

	// Services
	ledger := services.NewStockLedger(shipmentRepo, invoiceRepo)
	numbering := services.NewNumbering(sequenceRepo)
	shipmentService := services.NewShipmentService(shipmentRepo, driverRepo, productRepo, invoiceRepo, ledger, numbering)
	invoiceService := services.NewInvoiceService(invoiceRepo, shipmentRepo, customerRepo, paymentRepo, ledger, numbering)
	paymentService := services.NewPaymentService(paymentRepo, invoiceRepo)

	// Handlers
	userHandler := &handlers.UserHandler{Repo: userRepo}
	customerHandler := &handlers.CustomerHandler{Repo: customerRepo}
	driverHandler := &handlers.DriverHandler{Repo: driverRepo}
	productHandler := &handlers.ProductHandler{Repo: productRepo}
	accountHandler := &handlers.TransferAccountHandler{Repo: accountRepo}
	shipmentHandler := &handlers.ShipmentHandler{Service: shipmentService, Repo: shipmentRepo}
	invoiceHandler := &handlers.InvoiceHandler{Service: invoiceService, Repo: invoiceRepo}
	paymentHandler := &handlers.PaymentHandler{Service: paymentService, Repo: paymentRepo}
	companyHandler := &handlers.CompanyHandler{Repo: companyRepo}

	pdfRepo := repository.NewPDFRepository(invoiceRepo, shipmentRepo, companyRepo)
	pdfHandler := &handlers.PDFHandler{Repo: pdfRepo, SavePath: cfg.PDFDir}

	routes.SetupRoutes(
		userHandler,
		customerHandler,
		driverHandler,
		productHandler,
		accountHandler,
		shipmentHandler,
		invoiceHandler,
		paymentHandler,
		companyHandler,
		pdfHandler,
	)

	log.WithField("port", cfg.Port).Info("server running")
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
