package pos

import "sort"

// MonthlyReport aggregates one calendar month's sales.
type MonthlyReport struct {
	Month string `json:"month"`
	Total int    `json:"total"`
	Count int    `json:"count"`
}

// ItemCount is an item name with the total quantity sold.
type ItemCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// SalesStats are the headline figures for the reports page.
type SalesStats struct {
	TotalRevenue  int `json:"totalRevenue"`
	TotalOrders   int `json:"totalOrders"`
	AvgOrderValue int `json:"avgOrderValue"`
}

// MonthlySales groups the ledger by the calendar month of each sale's
// timestamp. Months appear in the order they are first encountered while
// scanning the ledger; since sales are appended chronologically this is
// also calendar order in practice, but insertion order is the contract.
func (e *Engine) MonthlySales() []MonthlyReport {
	e.mu.Lock()
	defer e.mu.Unlock()

	index := make(map[string]int)
	reports := []MonthlyReport{}

	for _, sale := range e.sales {
		month := sale.Date.Format("Jan 2006")
		i, ok := index[month]
		if !ok {
			index[month] = len(reports)
			reports = append(reports, MonthlyReport{Month: month})
			i = len(reports) - 1
		}
		reports[i].Total += sale.Total
		reports[i].Count++
	}

	return reports
}

// PopularItems sums quantity sold per item name across all sales and
// returns up to limit entries, highest first. Ties keep the order the
// names were first seen in the scan.
func (e *Engine) PopularItems(limit int) []ItemCount {
	e.mu.Lock()
	defer e.mu.Unlock()

	index := make(map[string]int)
	items := []ItemCount{}

	for _, sale := range e.sales {
		for _, line := range sale.Items {
			i, ok := index[line.Name]
			if !ok {
				index[line.Name] = len(items)
				items = append(items, ItemCount{Name: line.Name})
				i = len(items) - 1
			}
			items[i].Count += line.Quantity
		}
	}

	sort.SliceStable(items, func(a, b int) bool {
		return items[a].Count > items[b].Count
	})

	if limit >= 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// Stats reduces the ledger to total revenue, order count and the rounded
// average order value (zero when there are no orders).
func (e *Engine) Stats() SalesStats {
	e.mu.Lock()
	defer e.mu.Unlock()

	stats := SalesStats{TotalOrders: len(e.sales)}
	for _, sale := range e.sales {
		stats.TotalRevenue += sale.Total
	}
	if stats.TotalOrders > 0 {
		stats.AvgOrderValue = (stats.TotalRevenue + stats.TotalOrders/2) / stats.TotalOrders
	}
	return stats
}
