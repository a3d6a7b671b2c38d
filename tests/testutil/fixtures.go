package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/lumina-store/internal/models/m_click"
	"github.com/light-bringer/lumina-store/internal/models/m_product"
)

// CreateTestProduct creates a test product directly in the database.
func CreateTestProduct(t *testing.T, client *spanner.Client, name string, price, stock int64) string {
	t.Helper()

	ctx := context.Background()
	productID := uuid.New().String()
	now := time.Now()

	model := m_product.NewModel()
	data := &m_product.Data{
		ProductID:   productID,
		Name:        name,
		Description: "Test eyewear description",
		Category:    "sunglasses",
		Price:       price,
		StockCount:  stock,
		InStock:     stock > 0,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	mutation := model.InsertMut(data)
	_, err := client.Apply(ctx, []*spanner.Mutation{mutation})
	require.NoError(t, err, "failed to create test product")

	return productID
}

// CreateTestClick appends a click event for the product at the given time.
func CreateTestClick(t *testing.T, client *spanner.Client, productID string, at time.Time) string {
	t.Helper()

	ctx := context.Background()
	clickID := uuid.New().String()

	model := m_click.NewModel()
	data := &m_click.Data{
		ClickID:   clickID,
		ProductID: spanner.NullString{StringVal: productID, Valid: productID != ""},
		EventType: "checkout_click",
		CreatedAt: at,
	}

	mutation := model.InsertMut(data)
	_, err := client.Apply(ctx, []*spanner.Mutation{mutation})
	require.NoError(t, err, "failed to create test click")

	return clickID
}
