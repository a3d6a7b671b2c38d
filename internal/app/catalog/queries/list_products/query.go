package list_products

import (
	"context"

	"github.com/light-bringer/lumina-store/internal/app/catalog/contracts"
)

// Request contains filtering parameters.
type Request struct {
	Category string
	Limit    int64
}

// Query handles the list products query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list products query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves products, newest first, optionally filtered by category.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.ProductDTO, error) {
	filter := &contracts.ListFilter{
		Category: req.Category,
		Limit:    req.Limit,
	}

	return q.readModel.ListProducts(ctx, filter)
}
