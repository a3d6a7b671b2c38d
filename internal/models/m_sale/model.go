package m_sale

import (
	"cloud.google.com/go/spanner"
)

// Model provides mutation factories for the sales table.
// The table is an append-only log; only inserts exist.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a sale.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		Columns,
		[]interface{}{
			data.SaleID,
			data.CustomerName,
			data.CustomerPhone,
			data.CustomerAddress,
			data.ProductID,
			data.Quantity,
			data.UnitPrice,
			data.TotalPrice,
			data.CreatedAt,
		},
	)
}
