// Package analytics reduces the click and sale logs into time-bucketed
// summaries and product rankings. Every function is pure: given the same
// rows and the same now, the output is identical, and nothing is persisted.
package analytics

import (
	"sort"
	"time"

	"github.com/light-bringer/lumina-store/internal/app/catalog/contracts"
)

// Defaults for the configurable aggregation constants.
const (
	DefaultMonthWindowDays   = 30
	DefaultLowStockThreshold = 3
)

// Windows holds the lower bounds of the overlapping reporting buckets.
// An event belongs to a bucket if its created_at is on or after the bound,
// so an event counted today also counts this week and this month.
type Windows struct {
	Today    time.Time
	WeekAgo  time.Time
	MonthAgo time.Time
}

// WindowsAt derives the bucket bounds from now in its local time zone.
// The month bucket is a fixed-width window of monthDays days, not a
// calendar month.
func WindowsAt(now time.Time, monthDays int) Windows {
	if monthDays <= 0 {
		monthDays = DefaultMonthWindowDays
	}

	year, month, day := now.Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, now.Location())

	return Windows{
		Today:    today,
		WeekAgo:  today.AddDate(0, 0, -7),
		MonthAgo: today.AddDate(0, 0, -monthDays),
	}
}

// ClickSummary holds bucketed click counts.
type ClickSummary struct {
	Total     int `json:"total_clicks"`
	Today     int `json:"clicks_today"`
	ThisWeek  int `json:"clicks_this_week"`
	ThisMonth int `json:"clicks_this_month"`
}

// SummarizeClicks counts click events per bucket.
func SummarizeClicks(clicks []*contracts.ClickDTO, w Windows) ClickSummary {
	s := ClickSummary{Total: len(clicks)}
	for _, c := range clicks {
		if !c.CreatedAt.Before(w.Today) {
			s.Today++
		}
		if !c.CreatedAt.Before(w.WeekAgo) {
			s.ThisWeek++
		}
		if !c.CreatedAt.Before(w.MonthAgo) {
			s.ThisMonth++
		}
	}
	return s
}

// SalesSummary holds bucketed revenue and sale counts. Revenue is in
// smallest currency units.
type SalesSummary struct {
	TotalRevenue    int64 `json:"total_revenue"`
	RevenueToday    int64 `json:"revenue_today"`
	RevenueThisWeek int64 `json:"revenue_this_week"`
	TotalSales      int   `json:"total_sales"`
	SalesToday      int   `json:"sales_today"`
}

// SummarizeSales sums sale totals and counts per bucket.
func SummarizeSales(sales []*contracts.SaleDTO, w Windows) SalesSummary {
	var s SalesSummary
	s.TotalSales = len(sales)
	for _, sale := range sales {
		s.TotalRevenue += sale.TotalPrice
		if !sale.CreatedAt.Before(w.Today) {
			s.RevenueToday += sale.TotalPrice
			s.SalesToday++
		}
		if !sale.CreatedAt.Before(w.WeekAgo) {
			s.RevenueThisWeek += sale.TotalPrice
		}
	}
	return s
}

// ProductClicks is a ranking entry: a product and its click count.
type ProductClicks struct {
	Product *contracts.ProductDTO `json:"product"`
	Clicks  int                   `json:"clicks"`
}

// TopProducts groups clicks by product, joins them to the current product
// table and returns the limit most-clicked products. Clicks whose product no
// longer exists are dropped from the ranking. Ties keep the order in which
// the products first appeared in the click log.
func TopProducts(clicks []*contracts.ClickDTO, products []*contracts.ProductDTO, limit int) []ProductClicks {
	byID := make(map[string]*contracts.ProductDTO, len(products))
	for _, p := range products {
		byID[p.ProductID] = p
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, c := range clicks {
		if c.ProductID == "" {
			continue
		}
		if counts[c.ProductID] == 0 {
			order = append(order, c.ProductID)
		}
		counts[c.ProductID]++
	}

	ranking := make([]ProductClicks, 0, len(order))
	for _, id := range order {
		product, ok := byID[id]
		if !ok {
			continue
		}
		ranking = append(ranking, ProductClicks{Product: product, Clicks: counts[id]})
	}

	sort.SliceStable(ranking, func(a, b int) bool {
		return ranking[a].Clicks > ranking[b].Clicks
	})

	if limit > 0 && len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking
}

// RecentClicks returns the n newest click rows.
func RecentClicks(clicks []*contracts.ClickDTO, n int) []*contracts.ClickDTO {
	sorted := make([]*contracts.ClickDTO, len(clicks))
	copy(sorted, clicks)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].CreatedAt.After(sorted[b].CreatedAt)
	})

	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// RecentSales returns the n newest sale rows.
func RecentSales(sales []*contracts.SaleDTO, n int) []*contracts.SaleDTO {
	sorted := make([]*contracts.SaleDTO, len(sales))
	copy(sorted, sales)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].CreatedAt.After(sorted[b].CreatedAt)
	})

	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// StockSummary holds availability counts and the low-stock watch list.
type StockSummary struct {
	InStockCount    int                     `json:"in_stock_count"`
	OutOfStockCount int                     `json:"out_of_stock_count"`
	LowStock        []*contracts.ProductDTO `json:"low_stock_products"`
}

// SummarizeStock counts availability and lists products with
// 0 < stock_count <= threshold.
func SummarizeStock(products []*contracts.ProductDTO, threshold int64) StockSummary {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}

	s := StockSummary{LowStock: make([]*contracts.ProductDTO, 0)}
	for _, p := range products {
		if p.InStock {
			s.InStockCount++
		} else {
			s.OutOfStockCount++
		}
		if p.StockCount > 0 && p.StockCount <= threshold {
			s.LowStock = append(s.LowStock, p)
		}
	}
	return s
}
