package contracts

import (
	"context"
	"time"
)

// UnknownProductName is reported for log rows whose product no longer exists.
const UnknownProductName = "Unknown"

// ProductDTO is a data transfer object for product queries.
type ProductDTO struct {
	ProductID   string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image,omitempty"`
	Price       int64     `json:"price"`
	StockCount  int64     `json:"stock_count"`
	InStock     bool      `json:"in_stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SaleDTO is a sale log row joined with the current product name.
type SaleDTO struct {
	SaleID          string    `json:"id"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone,omitempty"`
	CustomerAddress string    `json:"customer_address,omitempty"`
	ProductID       string    `json:"product_id"`
	ProductName     string    `json:"product_name"`
	Quantity        int64     `json:"quantity"`
	UnitPrice       int64     `json:"unit_price"`
	TotalPrice      int64     `json:"total_price"`
	CreatedAt       time.Time `json:"created_at"`
}

// ClickDTO is a click log row joined with the current product name.
// ProductID is empty when the product was deleted after the click.
type ClickDTO struct {
	ClickID     string    `json:"id"`
	ProductID   string    `json:"product_id,omitempty"`
	ProductName string    `json:"product_name"`
	EventType   string    `json:"event_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListFilter defines filtering options for listing products.
type ListFilter struct {
	Category string
	Limit    int64
}

// ReadModel defines read-only queries over the product table and the two
// event logs. Aggregation reads the full history; nothing is paginated away.
type ReadModel interface {
	// GetProductByID retrieves a product DTO by ID
	GetProductByID(ctx context.Context, productID string) (*ProductDTO, error)

	// ListProducts retrieves products ordered by creation time descending
	ListProducts(ctx context.Context, filter *ListFilter) ([]*ProductDTO, error)

	// ListSales retrieves the full sale log, newest first, joined to product names
	ListSales(ctx context.Context) ([]*SaleDTO, error)

	// ListClicks retrieves the full click log, newest first, joined to product names
	ListClicks(ctx context.Context) ([]*ClickDTO, error)
}
