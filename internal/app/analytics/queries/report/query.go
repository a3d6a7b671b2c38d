package report

import (
	"context"
	"fmt"

	"github.com/light-bringer/lumina-store/internal/app/analytics"
	"github.com/light-bringer/lumina-store/internal/app/catalog/contracts"
	"github.com/light-bringer/lumina-store/internal/pkg/clock"
)

// Config holds the aggregation constants with documented defaults.
type Config struct {
	MonthWindowDays   int
	LowStockThreshold int64
}

// Report is a full analytics snapshot derived from the event logs and the
// current product table. It is recomputed from the full history on every
// call and never persisted.
type Report struct {
	Clicks       analytics.ClickSummary    `json:"clicks"`
	Sales        analytics.SalesSummary    `json:"sales"`
	Stock        analytics.StockSummary    `json:"stock"`
	TopProducts  []analytics.ProductClicks `json:"top_products"`
	RecentClicks []*contracts.ClickDTO     `json:"recent_clicks"`
	RecentSales  []*contracts.SaleDTO      `json:"recent_sales"`
}

// Query builds analytics reports. Stateless between calls.
type Query struct {
	readModel contracts.ReadModel
	clock     clock.Clock
	cfg       Config
}

// NewQuery creates a new report query.
func NewQuery(readModel contracts.ReadModel, clk clock.Clock, cfg Config) *Query {
	return &Query{
		readModel: readModel,
		clock:     clk,
		cfg:       cfg,
	}
}

// Execute fetches the full click log, sale log and product table and derives
// the report. topN bounds the product ranking, recentN the recency lists;
// callers choose per view.
func (q *Query) Execute(ctx context.Context, topN, recentN int) (*Report, error) {
	clicks, err := q.readModel.ListClicks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load click log: %w", err)
	}

	sales, err := q.readModel.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sale log: %w", err)
	}

	products, err := q.readModel.ListProducts(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	w := analytics.WindowsAt(q.clock.Now(), q.cfg.MonthWindowDays)

	return &Report{
		Clicks:       analytics.SummarizeClicks(clicks, w),
		Sales:        analytics.SummarizeSales(sales, w),
		Stock:        analytics.SummarizeStock(products, q.cfg.LowStockThreshold),
		TopProducts:  analytics.TopProducts(clicks, products, topN),
		RecentClicks: analytics.RecentClicks(clicks, recentN),
		RecentSales:  analytics.RecentSales(sales, recentN),
	}, nil
}
