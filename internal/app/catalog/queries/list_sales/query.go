package list_sales

import (
	"context"

	"github.com/light-bringer/lumina-store/internal/app/catalog/contracts"
)

// Query handles the sale history query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list sales query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves the full sale log, newest first.
func (q *Query) Execute(ctx context.Context) ([]*contracts.SaleDTO, error) {
	return q.readModel.ListSales(ctx)
}
