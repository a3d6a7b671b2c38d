package e2e

import (
	"testing"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/lumina-store/internal/app/analytics/queries/report"
	"github.com/light-bringer/lumina-store/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/lumina-store/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/lumina-store/internal/app/catalog/queries/list_sales"
	"github.com/light-bringer/lumina-store/internal/app/catalog/repo"
	"github.com/light-bringer/lumina-store/internal/app/catalog/usecases/create_product"
	"github.com/light-bringer/lumina-store/internal/app/catalog/usecases/delete_product"
	"github.com/light-bringer/lumina-store/internal/app/catalog/usecases/record_click"
	"github.com/light-bringer/lumina-store/internal/app/catalog/usecases/record_sale"
	"github.com/light-bringer/lumina-store/internal/app/catalog/usecases/update_product"
	"github.com/light-bringer/lumina-store/internal/pkg/clock"
	"github.com/light-bringer/lumina-store/internal/pkg/committer"
	"github.com/light-bringer/lumina-store/tests/testutil"
)

// Services holds all use cases and queries for E2E tests.
type Services struct {
	// Commands
	CreateProduct *create_product.Interactor
	UpdateProduct *update_product.Interactor
	DeleteProduct *delete_product.Interactor
	RecordSale    *record_sale.Interactor
	RecordClick   *record_click.Interactor

	// Queries
	GetProduct   *get_product.Query
	ListProducts *list_products.Query
	ListSales    *list_sales.Query
	Report       *report.Query

	// Infrastructure
	Clock  clock.Clock
	Client *spanner.Client
}

// setupTest initializes all dependencies for E2E testing.
func setupTest(t *testing.T) (*Services, func()) {
	t.Helper()

	// Setup Spanner client with clean database
	client, cleanup := testutil.SetupSpannerTest(t)

	// Create infrastructure components
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(client)

	// Create repositories
	productRepo := repo.NewProductRepo(client, clk)
	saleRepo := repo.NewSaleRepo()
	clickRepo := repo.NewClickRepo()
	readModel := repo.NewReadModel(client)

	services := &Services{
		CreateProduct: create_product.NewInteractor(productRepo, comm, clk),
		UpdateProduct: update_product.NewInteractor(productRepo, comm),
		DeleteProduct: delete_product.NewInteractor(productRepo, clickRepo, comm),
		RecordSale:    record_sale.NewInteractor(productRepo, saleRepo, comm, clk),
		RecordClick:   record_click.NewInteractor(clickRepo, comm, clk),
		GetProduct:    get_product.NewQuery(readModel),
		ListProducts:  list_products.NewQuery(readModel),
		ListSales:     list_sales.NewQuery(readModel),
		Report: report.NewQuery(readModel, clk, report.Config{
			MonthWindowDays:   30,
			LowStockThreshold: 3,
		}),
		Clock:  clk,
		Client: client,
	}

	return services, cleanup
}
