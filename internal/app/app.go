package app

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/phenrril/crmcell/internal/adapters/httpserver"
	"github.com/phenrril/crmcell/internal/adapters/repo/postgres"
	"github.com/phenrril/crmcell/internal/domain"
	"github.com/phenrril/crmcell/internal/usecase"
)

type App struct {
	DB         *gorm.DB
	CustomerUC *usecase.CustomerUC
	ProductUC  *usecase.ProductUC
	OrderUC    *usecase.OrderUC
	ReportUC   *usecase.ReportUC
}

func NewApp(db *gorm.DB) *App {
	custRepo := postgres.NewCustomerRepo(db)
	prodRepo := postgres.NewProductRepo(db)
	orderRepo := postgres.NewOrderRepo(db)

	return &App{
		DB:         db,
		CustomerUC: &usecase.CustomerUC{Customers: custRepo},
		ProductUC:  &usecase.ProductUC{Products: prodRepo},
		OrderUC:    &usecase.OrderUC{Orders: orderRepo, Products: prodRepo, Customers: custRepo},
		ReportUC:   &usecase.ReportUC{Customers: custRepo, Orders: orderRepo},
	}
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.CustomerUC, a.ProductUC, a.OrderUC, a.ReportUC)
}

func (a *App) Migrate() error {
	if err := a.DB.AutoMigrate(
		&domain.Customer{}, &domain.Product{}, &domain.Order{},
	); err != nil {
		return err
	}

	// Email uniqueness is case-insensitive; the column index alone is not,
	// so this index must exist before the server takes writes.
	if err := a.DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_customers_email_lower ON customers (LOWER(email))").Error; err != nil {
		return err
	}
	if err := a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_orders_order_date ON orders (order_date)").Error; err != nil {
		log.Warn().Err(err).Msg("failed to create order_date index")
	}

	return nil
}
