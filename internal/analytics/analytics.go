// Package analytics computes aggregate revenue and segment statistics
// over generated profiles and purchases. Analyze is a pure function:
// it never mutates its inputs and returns identical output for
// identical input.
package analytics

import (
	"math"

	"consumer-behavior/internal/consumer"
)

// CategoryPerformance aggregates the transactions of one product category.
type CategoryPerformance struct {
	Category      string
	Revenue       float64
	Transactions  int
	Units         int
	AvgOrderValue float64
	RevenueShare  float64
}

// SegmentAnalysis aggregates the profiles of one consumer segment.
type SegmentAnalysis struct {
	Segment          string
	CustomerCount    int
	TotalSpending    float64
	AvgLifetimeValue float64
	AvgLoyaltyScore  float64
	CustomerShare    float64
}

// Summary is the full aggregate report. Category and segment slices are
// in first-seen order of the input, which keeps repeated runs over the
// same data byte-identical.
type Summary struct {
	TotalRevenue      float64
	TotalTransactions int
	AverageOrderValue float64
	Categories        []CategoryPerformance
	Segments          []SegmentAnalysis
}

// Analyze computes the summary. Every ratio is guarded against a zero
// denominator and comes back as 0 rather than NaN.
func Analyze(purchases []consumer.Purchase, profiles []consumer.Profile) Summary {
	var revenue float64
	type catAcc struct {
		revenue float64
		txns    int
		units   int
	}
	catStats := map[string]*catAcc{}
	var catOrder []string
	for _, p := range purchases {
		revenue += p.FinalPrice
		acc, ok := catStats[p.Category]
		if !ok {
			acc = &catAcc{}
			catStats[p.Category] = acc
			catOrder = append(catOrder, p.Category)
		}
		acc.revenue += p.FinalPrice
		acc.txns++
		acc.units += p.Quantity
	}

	s := Summary{
		TotalRevenue:      round2(revenue),
		TotalTransactions: len(purchases),
		AverageOrderValue: round2(safeDiv(revenue, float64(len(purchases)))),
	}

	for _, name := range catOrder {
		acc := catStats[name]
		s.Categories = append(s.Categories, CategoryPerformance{
			Category:      name,
			Revenue:       round2(acc.revenue),
			Transactions:  acc.txns,
			Units:         acc.units,
			AvgOrderValue: round2(safeDiv(acc.revenue, float64(acc.txns))),
			RevenueShare:  pct(acc.revenue, revenue),
		})
	}

	type segAcc struct {
		customers int
		spending  float64
		loyalty   float64
	}
	segStats := map[string]*segAcc{}
	var segOrder []string
	for _, p := range profiles {
		acc, ok := segStats[p.Segment]
		if !ok {
			acc = &segAcc{}
			segStats[p.Segment] = acc
			segOrder = append(segOrder, p.Segment)
		}
		acc.customers++
		acc.spending += p.TotalLifetimePurchases
		acc.loyalty += p.LoyaltyScore
	}
	for _, name := range segOrder {
		acc := segStats[name]
		s.Segments = append(s.Segments, SegmentAnalysis{
			Segment:          name,
			CustomerCount:    acc.customers,
			TotalSpending:    round2(acc.spending),
			AvgLifetimeValue: round2(safeDiv(acc.spending, float64(acc.customers))),
			AvgLoyaltyScore:  round2(safeDiv(acc.loyalty, float64(acc.customers))),
			CustomerShare:    pct(float64(acc.customers), float64(len(profiles))),
		})
	}
	return s
}

// TopCategoryByRevenue returns the highest-revenue category; ties go to
// the later entry in first-seen order. Empty string when no purchases.
func (s Summary) TopCategoryByRevenue() string {
	best := ""
	bestRevenue := math.Inf(-1)
	for _, c := range s.Categories {
		if c.Revenue >= bestRevenue {
			best = c.Category
			bestRevenue = c.Revenue
		}
	}
	return best
}

// MostValuableSegment returns the segment with the highest average
// lifetime value; ties go to the later entry. Empty when no profiles.
func (s Summary) MostValuableSegment() string {
	best := ""
	bestLTV := math.Inf(-1)
	for _, seg := range s.Segments {
		if seg.AvgLifetimeValue >= bestLTV {
			best = seg.Segment
			bestLTV = seg.AvgLifetimeValue
		}
	}
	return best
}

// pct converts a fraction to a percentage with two preserved decimals.
func pct(part, whole float64) float64 {
	return math.Round(safeDiv(part, whole)*10000) / 100
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
