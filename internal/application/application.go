package application

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/psds-microservice/repairshop-service/internal/config"
	"github.com/psds-microservice/repairshop-service/internal/handler"
	"github.com/psds-microservice/repairshop-service/internal/kafka"
	"github.com/psds-microservice/repairshop-service/internal/router"
	"github.com/psds-microservice/repairshop-service/internal/searchindex"
	"github.com/psds-microservice/repairshop-service/internal/seed"
	"github.com/psds-microservice/repairshop-service/internal/service"
)

// API wires the stores, handlers and HTTP server. All state lives in the
// stores for the lifetime of the process; there is no backing storage.
type API struct {
	cfg      *config.Config
	log      *zap.Logger
	httpSrv  *http.Server
	producer *kafka.Producer
}

// NewAPI builds the application. The stores are constructed here exactly
// once and handed to handlers by reference — no ambient singletons, so tests
// and future callers can build isolated instances the same way.
func NewAPI(cfg *config.Config, log *zap.Logger) (*API, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	clients := service.NewClientService()
	catalog := service.NewCatalogService()
	tickets := service.NewTicketService(clients)
	products := service.NewProductService()
	orders := service.NewOrderService(clients, products)
	invoices := service.NewInvoiceService(clients)

	if cfg.DemoData {
		if err := seed.Load(seed.Stores{
			Clients:  clients,
			Catalog:  catalog,
			Tickets:  tickets,
			Products: products,
			Orders:   orders,
			Invoices: invoices,
		}); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
		log.Info("demo dataset loaded")
	}

	producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopicEvents, log)
	search := searchindex.NewClient(cfg.SearchServiceURL, log)

	h := router.Handlers{
		Clients:  handler.NewClientHandler(clients),
		Catalog:  handler.NewCatalogHandler(catalog),
		Tickets:  handler.NewTicketHandler(tickets, search, producer),
		Products: handler.NewProductHandler(products),
		Orders:   handler.NewOrderHandler(orders, clients, products, producer),
		Invoices: handler.NewInvoiceHandler(invoices, clients),
		Stats:    handler.NewStatsHandler(tickets, products),
	}

	httpSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.New(h),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &API{
		cfg:      cfg,
		log:      log,
		httpSrv:  httpSrv,
		producer: producer,
	}, nil
}

// Run starts the HTTP server and blocks until ctx is cancelled.
func (a *API) Run(ctx context.Context) error {
	host := a.cfg.AppHost
	if host == "0.0.0.0" {
		host = "localhost"
	}
	base := "http://" + host + ":" + a.cfg.HTTPPort
	a.log.Info("HTTP server listening", zap.String("addr", a.httpSrv.Addr))
	a.log.Info("endpoints",
		zap.String("swagger", base+"/swagger"),
		zap.String("health", base+"/health"),
		zap.String("api", base+"/api/v1/"))

	errCh := make(chan error, 1)
	go func() {
		if err := a.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	if err := a.producer.Close(); err != nil {
		a.log.Warn("kafka close", zap.Error(err))
	}
	return nil
}
