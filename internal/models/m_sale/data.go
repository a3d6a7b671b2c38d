package m_sale

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a row of the sales table. Sales are insert-only.
type Data struct {
	SaleID          string
	CustomerName    string
	CustomerPhone   spanner.NullString
	CustomerAddress spanner.NullString
	ProductID       string
	Quantity        int64
	UnitPrice       int64
	TotalPrice      int64
	CreatedAt       time.Time
}
