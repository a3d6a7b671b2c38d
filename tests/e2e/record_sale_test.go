package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/lumina-store/internal/app/catalog/domain"
	"github.com/light-bringer/lumina-store/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/lumina-store/internal/app/catalog/usecases/record_sale"
	"github.com/light-bringer/lumina-store/internal/app/catalog/usecases/update_product"
	"github.com/light-bringer/lumina-store/tests/testutil"
)

// TestSellOutAndReject sells the exact remaining stock, then verifies the
// next sale is rejected without touching the logs.
func TestSellOutAndReject(t *testing.T) {
	ctx := context.Background()
	suite, cleanup := setupTest(t)
	defer cleanup()

	productID := testutil.CreateTestProduct(t, suite.Client, "Aviator Classic", 100000, 5)

	result, err := suite.RecordSale.Execute(ctx, &record_sale.Request{
		CustomerName: "Budi",
		ProductID:    productID,
		Quantity:     5,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(100000), result.UnitPrice)
	assert.Equal(t, int64(500000), result.TotalPrice)
	assert.Equal(t, int64(0), result.RemainingStock)
	assert.False(t, result.InStock)

	product, err := suite.GetProduct.Execute(ctx, &get_product.Request{ProductID: productID})
	require.NoError(t, err)
	assert.Equal(t, int64(0), product.StockCount)
	assert.False(t, product.InStock)

	// Sold out: the next sale must fail and leave everything untouched.
	_, err = suite.RecordSale.Execute(ctx, &record_sale.Request{
		CustomerName: "Sari",
		ProductID:    productID,
		Quantity:     1,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	testutil.AssertRowCount(t, suite.Client, "sales", 1)
}

func TestPartialSaleKeepsProductAvailable(t *testing.T) {
	ctx := context.Background()
	suite, cleanup := setupTest(t)
	defer cleanup()

	productID := testutil.CreateTestProduct(t, suite.Client, "Wayfarer", 250000, 10)

	result, err := suite.RecordSale.Execute(ctx, &record_sale.Request{
		CustomerName:    "Budi",
		CustomerPhone:   "08123456789",
		CustomerAddress: "Jl. Sudirman 1",
		ProductID:       productID,
		Quantity:        3,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(750000), result.TotalPrice)
	assert.Equal(t, int64(7), result.RemainingStock)
	assert.True(t, result.InStock)

	sales, err := suite.ListSales.Execute(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "Budi", sales[0].CustomerName)
	assert.Equal(t, "Wayfarer", sales[0].ProductName)
	assert.Equal(t, int64(3), sales[0].Quantity)
}

// TestSalePriceSnapshot verifies the sale keeps the price it was sold at
// even after the product price changes.
func TestSalePriceSnapshot(t *testing.T) {
	ctx := context.Background()
	suite, cleanup := setupTest(t)
	defer cleanup()

	productID := testutil.CreateTestProduct(t, suite.Client, "Round Metal", 100000, 5)

	result, err := suite.RecordSale.Execute(ctx, &record_sale.Request{
		CustomerName: "Budi",
		ProductID:    productID,
		Quantity:     1,
	})
	require.NoError(t, err)
	require.Equal(t, int64(100000), result.UnitPrice)

	newPrice := int64(150000)
	err = suite.UpdateProduct.Execute(ctx, &update_product.Request{
		ProductID: productID,
		Price:     &newPrice,
	})
	require.NoError(t, err)

	sales, err := suite.ListSales.Execute(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, int64(100000), sales[0].UnitPrice)
	assert.Equal(t, int64(100000), sales[0].TotalPrice)
}

func TestRecordSaleValidation(t *testing.T) {
	ctx := context.Background()
	suite, cleanup := setupTest(t)
	defer cleanup()

	productID := testutil.CreateTestProduct(t, suite.Client, "Clubmaster", 100000, 5)

	tests := []struct {
		name    string
		req     *record_sale.Request
		wantErr error
	}{
		{
			name:    "empty customer name",
			req:     &record_sale.Request{ProductID: productID, Quantity: 1},
			wantErr: domain.ErrEmptyCustomerName,
		},
		{
			name:    "zero quantity",
			req:     &record_sale.Request{CustomerName: "Budi", ProductID: productID, Quantity: 0},
			wantErr: domain.ErrInvalidQuantity,
		},
		{
			name:    "missing product",
			req:     &record_sale.Request{CustomerName: "Budi", Quantity: 1},
			wantErr: domain.ErrMissingProductRef,
		},
		{
			name:    "unknown product",
			req:     &record_sale.Request{CustomerName: "Budi", ProductID: "no-such-product", Quantity: 1},
			wantErr: domain.ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := suite.RecordSale.Execute(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	testutil.AssertRowCount(t, suite.Client, "sales", 0)
}
