// Package export serializes the generated collections: the three CSV
// files with their fixed column headers, and a SQLite database holding
// the same profile and purchase tables.
package export

import (
	"strconv"

	"consumer-behavior/internal/analytics"
	"consumer-behavior/internal/consumer"
	"consumer-behavior/internal/csvio"
)

// ProfileHeaders is the column order of consumer_profiles.csv.
var ProfileHeaders = []string{
	"Consumer_ID", "Segment", "Age", "Region", "Country",
	"Annual_Spending_Capacity", "Loyalty_Score", "Price_Sensitivity",
	"Preferred_Categories", "Purchase_Frequency", "Registration_Date",
	"Total_Lifetime_Purchases", "Average_Order_Value", "Last_Purchase_Date",
}

// PurchaseHeaders is the column order of purchase_history.csv.
var PurchaseHeaders = []string{
	"Transaction_ID", "Consumer_ID", "Product_Name", "Category",
	"Age_Group", "Complexity", "Build_Time", "Quantity", "Unit_Price",
	"Total_Original_Price", "Discount_Applied_Percent", "Final_Price",
	"Purchase_Date", "Purchase_Month", "Purchase_Year", "Season",
	"Purchase_Channel", "Payment_Method", "Shipping_Cost",
	"Customer_Satisfaction", "Review_Score",
}

// SummaryHeaders is the column order of analytics_summary.csv.
var SummaryHeaders = []string{"Metric", "Value"}

// WriteProfiles writes consumer_profiles.csv.
func WriteProfiles(path string, profiles []consumer.Profile) error {
	records := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		records = append(records, profileRecord(p))
	}
	return csvio.Write(path, ProfileHeaders, records)
}

func profileRecord(p consumer.Profile) []string {
	return []string{
		p.ConsumerID,
		p.Segment,
		strconv.Itoa(p.Age),
		p.Region,
		p.Country,
		strconv.Itoa(p.SpendingCapacity),
		fmtFloat(p.LoyaltyScore),
		p.PriceSensitivity,
		p.PreferredCategories,
		p.PurchaseFrequency,
		p.RegistrationDate,
		fmtFloat(p.TotalLifetimePurchases),
		fmtFloat(p.AverageOrderValue),
		p.LastPurchaseDate,
	}
}

// WritePurchases writes purchase_history.csv.
func WritePurchases(path string, purchases []consumer.Purchase) error {
	records := make([][]string, 0, len(purchases))
	for _, p := range purchases {
		records = append(records, purchaseRecord(p))
	}
	return csvio.Write(path, PurchaseHeaders, records)
}

func purchaseRecord(p consumer.Purchase) []string {
	return []string{
		p.TransactionID,
		p.ConsumerID,
		p.ProductName,
		p.Category,
		p.AgeGroup,
		p.Complexity,
		p.BuildTime,
		strconv.Itoa(p.Quantity),
		fmtFloat(p.UnitPrice),
		fmtFloat(p.TotalOriginalPrice),
		strconv.Itoa(p.DiscountPercent),
		fmtFloat(p.FinalPrice),
		p.PurchaseDate,
		strconv.Itoa(p.PurchaseMonth),
		strconv.Itoa(p.PurchaseYear),
		p.Season,
		p.Channel,
		p.PaymentMethod,
		strconv.Itoa(p.ShippingCost),
		fmtFloat(p.Satisfaction),
		strconv.Itoa(p.ReviewScore),
	}
}

// WriteSummary writes analytics_summary.csv: the headline metrics plus
// the top category and most valuable segment selectors.
func WriteSummary(path string, s analytics.Summary) error {
	records := [][]string{
		{"Total Revenue", fmtFloat(s.TotalRevenue)},
		{"Total Transactions", strconv.Itoa(s.TotalTransactions)},
		{"Average Order Value", fmtFloat(s.AverageOrderValue)},
		{"Top Category by Revenue", s.TopCategoryByRevenue()},
		{"Most Valuable Segment", s.MostValuableSegment()},
	}
	return csvio.Write(path, SummaryHeaders, records)
}

// fmtFloat renders a float the way the CSV consumers expect: no
// exponent, no trailing zeros (0.85 not 0.850000, 0 not 0.00).
func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
