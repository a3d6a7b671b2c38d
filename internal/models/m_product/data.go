package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a row of the products table. Field tags carry the
// snake_case column names so row.ToStruct can match them; Spanner's
// struct decoder does not fold underscores on its own.
type Data struct {
	ProductID   string             `spanner:"product_id"`
	Name        string             `spanner:"name"`
	Description string             `spanner:"description"`
	Category    string             `spanner:"category"`
	ImageURL    spanner.NullString `spanner:"image_url"`
	Price       int64              `spanner:"price"`
	StockCount  int64              `spanner:"stock_count"`
	InStock     bool               `spanner:"in_stock"`
	Version     int64              `spanner:"version"`
	CreatedAt   time.Time          `spanner:"created_at"`
	UpdatedAt   time.Time          `spanner:"updated_at"`
}
