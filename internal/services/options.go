package services

import (
	"context"
	"fmt"

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
	"github.com/light-bringer/lumina-store/internal/auth"
	"github.com/light-bringer/lumina-store/internal/config"
	"github.com/light-bringer/lumina-store/internal/pkg/clock"
	"github.com/light-bringer/lumina-store/internal/pkg/committer"
	"github.com/light-bringer/lumina-store/internal/storage"
	httpapi "github.com/light-bringer/lumina-store/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	Auth          *auth.Service
	Images        *storage.GCSImageStore
	App           *httpapi.App
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Config) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	// 2. Create infrastructure components
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)

	// 3. Create repositories
	productRepo := repo.NewProductRepo(spannerClient, clk)
	saleRepo := repo.NewSaleRepo()
	clickRepo := repo.NewClickRepo()
	readModel := repo.NewReadModel(spannerClient)

	// 4. Create command use cases (write operations)
	createProductUseCase := create_product.NewInteractor(productRepo, comm, clk)
	updateProductUseCase := update_product.NewInteractor(productRepo, comm)
	deleteProductUseCase := delete_product.NewInteractor(productRepo, clickRepo, comm)
	recordSaleUseCase := record_sale.NewInteractor(productRepo, saleRepo, comm, clk)
	recordClickUseCase := record_click.NewInteractor(clickRepo, comm, clk)

	// 5. Create query use cases (read operations)
	getProductQuery := get_product.NewQuery(readModel)
	listProductsQuery := list_products.NewQuery(readModel)
	listSalesQuery := list_sales.NewQuery(readModel)
	reportQuery := report.NewQuery(readModel, clk, report.Config{
		MonthWindowDays:   cfg.MonthWindowDays,
		LowStockThreshold: cfg.LowStockThreshold,
	})

	// 6. Auth and image storage
	authService := auth.NewService(auth.NewSpannerStore(spannerClient), clk, cfg.SessionTTL)

	var images *storage.GCSImageStore
	if cfg.ImageBucket != "" {
		images, err = storage.NewGCSImageStore(ctx, cfg.ImageBucket)
		if err != nil {
			spannerClient.Close()
			return nil, fmt.Errorf("failed to create image store: %w", err)
		}
	}

	// 7. Create HTTP application
	app := &httpapi.App{
		WhatsAppNumber: cfg.WhatsAppNumber,
		Auth:           authService,
		CreateProduct:  createProductUseCase,
		UpdateProduct:  updateProductUseCase,
		DeleteProduct:  deleteProductUseCase,
		RecordSale:     recordSaleUseCase,
		RecordClick:    recordClickUseCase,
		GetProduct:     getProductQuery,
		ListProducts:   listProductsQuery,
		ListSales:      listSalesQuery,
		Report:         reportQuery,
	}
	if images != nil {
		app.Images = images
	}

	return &ServiceOptions{
		SpannerClient: spannerClient,
		Auth:          authService,
		Images:        images,
		App:           app,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.Images != nil {
		_ = s.Images.Close()
	}
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
