package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/lumina-store/internal/app/analytics/queries/report"
	"github.com/light-bringer/lumina-store/internal/app/catalog/contracts"
	"github.com/light-bringer/lumina-store/internal/app/catalog/domain"
	"github.com/light-bringer/lumina-store/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/lumina-store/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/lumina-store/internal/app/catalog/repo"
	"github.com/light-bringer/lumina-store/internal/app/catalog/usecases/create_product"
	"github.com/light-bringer/lumina-store/internal/app/catalog/usecases/delete_product"
	"github.com/light-bringer/lumina-store/internal/app/catalog/usecases/record_click"
	"github.com/light-bringer/lumina-store/internal/app/catalog/usecases/record_sale"
	"github.com/light-bringer/lumina-store/internal/app/catalog/usecases/update_product"
	"github.com/light-bringer/lumina-store/tests/testutil"
)

func TestCreateAndGetProduct(t *testing.T) {
	ctx := context.Background()
	suite, cleanup := setupTest(t)
	defer cleanup()

	productID, err := suite.CreateProduct.Execute(ctx, &create_product.Request{
		Name:        "Aviator Classic",
		Description: "Gold frame, green lenses",
		Category:    "sunglasses",
		Price:       1290000,
		StockCount:  4,
	})
	require.NoError(t, err)

	product, err := suite.GetProduct.Execute(ctx, &get_product.Request{ProductID: productID})
	require.NoError(t, err)

	assert.Equal(t, "Aviator Classic", product.Name)
	assert.Equal(t, "sunglasses", product.Category)
	assert.Equal(t, int64(1290000), product.Price)
	assert.Equal(t, int64(4), product.StockCount)
	assert.True(t, product.InStock)
}

func TestUpdateProductPartialFields(t *testing.T) {
	ctx := context.Background()
	suite, cleanup := setupTest(t)
	defer cleanup()

	productID := testutil.CreateTestProduct(t, suite.Client, "Old Name", 100000, 5)

	name := "New Name"
	price := int64(120000)
	err := suite.UpdateProduct.Execute(ctx, &update_product.Request{
		ProductID: productID,
		Name:      &name,
		Price:     &price,
	})
	require.NoError(t, err)

	product, err := suite.GetProduct.Execute(ctx, &get_product.Request{ProductID: productID})
	require.NoError(t, err)

	assert.Equal(t, "New Name", product.Name)
	assert.Equal(t, int64(120000), product.Price)
	// Untouched fields survive.
	assert.Equal(t, "Test eyewear description", product.Description)
	assert.Equal(t, int64(5), product.StockCount)
}

func TestSetStockToZeroMarksSoldOut(t *testing.T) {
	ctx := context.Background()
	suite, cleanup := setupTest(t)
	defer cleanup()

	productID := testutil.CreateTestProduct(t, suite.Client, "Soldout Frame", 100000, 5)

	zero := int64(0)
	err := suite.UpdateProduct.Execute(ctx, &update_product.Request{
		ProductID:  productID,
		StockCount: &zero,
	})
	require.NoError(t, err)

	product, err := suite.GetProduct.Execute(ctx, &get_product.Request{ProductID: productID})
	require.NoError(t, err)
	assert.Equal(t, int64(0), product.StockCount)
	assert.False(t, product.InStock)
}

func TestListProductsByCategory(t *testing.T) {
	ctx := context.Background()
	suite, cleanup := setupTest(t)
	defer cleanup()

	testutil.CreateTestProduct(t, suite.Client, "Sun One", 100000, 5)
	testutil.CreateTestProduct(t, suite.Client, "Sun Two", 100000, 5)

	_, err := suite.CreateProduct.Execute(ctx, &create_product.Request{
		Name:        "Reading Frame",
		Description: "Thin optical frame",
		Category:    "optical",
		Price:       400000,
		StockCount:  2,
	})
	require.NoError(t, err)

	all, err := suite.ListProducts.Execute(ctx, &list_products.Request{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	optical, err := suite.ListProducts.Execute(ctx, &list_products.Request{Category: "optical"})
	require.NoError(t, err)
	require.Len(t, optical, 1)
	assert.Equal(t, "Reading Frame", optical[0].Name)
}

// TestDeleteProductKeepsHistory removes a product and checks both logs
// survive: sales keep their snapshot, clicks lose only the product link.
func TestDeleteProductKeepsHistory(t *testing.T) {
	ctx := context.Background()
	suite, cleanup := setupTest(t)
	defer cleanup()

	productID := testutil.CreateTestProduct(t, suite.Client, "Short Lived", 100000, 5)

	_, err := suite.RecordSale.Execute(ctx, &record_sale.Request{
		CustomerName: "Budi",
		ProductID:    productID,
		Quantity:     1,
	})
	require.NoError(t, err)

	_, err = suite.RecordClick.Execute(ctx, &record_click.Request{ProductID: productID})
	require.NoError(t, err)

	err = suite.DeleteProduct.Execute(ctx, &delete_product.Request{ProductID: productID})
	require.NoError(t, err)

	_, err = suite.GetProduct.Execute(ctx, &get_product.Request{ProductID: productID})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	// The sale log is untouched; the product name falls back to Unknown.
	sales, err := suite.ListSales.Execute(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, contracts.UnknownProductName, sales[0].ProductName)
	assert.Equal(t, int64(100000), sales[0].TotalPrice)

	testutil.AssertRowCount(t, suite.Client, "click_events", 1)

	// Aggregation still counts the orphaned click in the totals but drops
	// it from the product ranking.
	rep, err := suite.Report.Execute(ctx, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Clicks.Total)
	assert.Empty(t, rep.TopProducts)
}

func TestDeleteUnknownProduct(t *testing.T) {
	ctx := context.Background()
	suite, cleanup := setupTest(t)
	defer cleanup()

	err := suite.DeleteProduct.Execute(ctx, &delete_product.Request{ProductID: "no-such-product"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestReportCountsRecentActivity(t *testing.T) {
	ctx := context.Background()
	suite, cleanup := setupTest(t)
	defer cleanup()

	productID := testutil.CreateTestProduct(t, suite.Client, "Popular Frame", 150000, 10)
	otherID := testutil.CreateTestProduct(t, suite.Client, "Quiet Frame", 150000, 10)

	testutil.CreateTestClick(t, suite.Client, productID, testutil.ReportNow.Add(-time.Minute))
	testutil.CreateTestClick(t, suite.Client, productID, testutil.DaysAgo(2))
	testutil.CreateTestClick(t, suite.Client, otherID, testutil.DaysAgo(2))
	testutil.CreateTestClick(t, suite.Client, productID, testutil.DaysAgo(60))

	_, err := suite.RecordSale.Execute(ctx, &record_sale.Request{
		CustomerName: "Budi",
		ProductID:    productID,
		Quantity:     2,
	})
	require.NoError(t, err)

	// The report runs against a clock frozen at the fixtures' reference
	// instant so the bucket assertions are deterministic.
	reportQuery := report.NewQuery(repo.NewReadModel(suite.Client), testutil.NewReportClock(), report.Config{
		MonthWindowDays:   30,
		LowStockThreshold: 3,
	})
	rep, err := reportQuery.Execute(ctx, 3, 10)
	require.NoError(t, err)

	assert.Equal(t, 4, rep.Clicks.Total)
	assert.Equal(t, 1, rep.Clicks.Today)
	assert.Equal(t, 3, rep.Clicks.ThisWeek)
	assert.Equal(t, 3, rep.Clicks.ThisMonth)
	assert.Equal(t, int64(300000), rep.Sales.TotalRevenue)
	assert.Equal(t, 1, rep.Sales.TotalSales)

	require.Len(t, rep.TopProducts, 2)
	assert.Equal(t, "Popular Frame", rep.TopProducts[0].Product.Name)
	assert.Equal(t, 3, rep.TopProducts[0].Clicks)
}
