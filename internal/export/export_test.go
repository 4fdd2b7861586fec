package export

import (
	"database/sql"
	"path/filepath"
	"testing"

	"consumer-behavior/internal/analytics"
	"consumer-behavior/internal/consumer"
	"consumer-behavior/internal/csvio"
)

func sampleProfile() consumer.Profile {
	return consumer.Profile{
		ConsumerID:             "LEGO_000001",
		Segment:                "Adult Collectors",
		Age:                    34,
		Region:                 "Europe",
		Country:                "Germany",
		SpendingCapacity:       512,
		LoyaltyScore:           0.85,
		PriceSensitivity:       "low",
		PreferredCategories:    "architecture, technic, starwars",
		PurchaseFrequency:      "monthly",
		RegistrationDate:       "2021-03-14",
		TotalLifetimePurchases: 1234.56,
		AverageOrderValue:      123.46,
		LastPurchaseDate:       "2024-11-02",
	}
}

func TestWriteProfilesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "consumer_profiles.csv")
	fresh := consumer.Profile{ConsumerID: "LEGO_000002", Segment: "Parents", Age: 40}
	if err := WriteProfiles(path, []consumer.Profile{sampleProfile(), fresh}); err != nil {
		t.Fatalf("write: %v", err)
	}

	headers, rows, err := csvio.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(headers) != len(ProfileHeaders) || headers[0] != "Consumer_ID" {
		t.Fatalf("headers = %v", headers)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	r := rows[0]
	if r["Loyalty_Score"] != "0.85" {
		t.Fatalf("loyalty = %q, want 0.85", r["Loyalty_Score"])
	}
	if r["Preferred_Categories"] != "architecture, technic, starwars" {
		t.Fatalf("categories = %q", r["Preferred_Categories"])
	}
	if r["Total_Lifetime_Purchases"] != "1234.56" {
		t.Fatalf("lifetime = %q", r["Total_Lifetime_Purchases"])
	}
	if rows[1]["Total_Lifetime_Purchases"] != "0" {
		t.Fatalf("fresh profile lifetime = %q, want 0", rows[1]["Total_Lifetime_Purchases"])
	}
	if rows[1]["Last_Purchase_Date"] != "" {
		t.Fatalf("fresh profile last purchase = %q, want empty", rows[1]["Last_Purchase_Date"])
	}
}

func TestWritePurchases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "purchase_history.csv")
	p := consumer.Purchase{
		TransactionID:      "TXN_00000001",
		ConsumerID:         "LEGO_000001",
		ProductName:        "Millennium Falcon",
		Category:           "starwars",
		Quantity:           2,
		UnitPrice:          849.99,
		TotalOriginalPrice: 1699.98,
		DiscountPercent:    25,
		FinalPrice:         1274.99,
		PurchaseDate:       "2024-12-01",
		PurchaseMonth:      12,
		PurchaseYear:       2024,
		Season:             "holiday",
		Channel:            "online",
		PaymentMethod:      "paypal",
		Satisfaction:       4.5,
		ReviewScore:        5,
	}
	if err := WritePurchases(path, []consumer.Purchase{p}); err != nil {
		t.Fatalf("write: %v", err)
	}
	headers, rows, err := csvio.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(headers) != len(PurchaseHeaders) {
		t.Fatalf("expected %d columns, got %d", len(PurchaseHeaders), len(headers))
	}
	r := rows[0]
	if r["Discount_Applied_Percent"] != "25" {
		t.Fatalf("discount = %q", r["Discount_Applied_Percent"])
	}
	if r["Final_Price"] != "1274.99" {
		t.Fatalf("final price = %q", r["Final_Price"])
	}
	if r["Customer_Satisfaction"] != "4.5" {
		t.Fatalf("satisfaction = %q", r["Customer_Satisfaction"])
	}
}

func TestWriteSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analytics_summary.csv")
	s := analytics.Analyze(
		[]consumer.Purchase{{Category: "technic", FinalPrice: 300}, {Category: "city", FinalPrice: 100}},
		[]consumer.Profile{{ConsumerID: "LEGO_000001", Segment: "Parents", TotalLifetimePurchases: 400}},
	)
	if err := WriteSummary(path, s); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, rows, err := csvio.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected 5 metric rows, got %d", len(rows))
	}
	metrics := map[string]string{}
	for _, r := range rows {
		metrics[r["Metric"]] = r["Value"]
	}
	if metrics["Total Revenue"] != "400" {
		t.Fatalf("total revenue = %q", metrics["Total Revenue"])
	}
	if metrics["Top Category by Revenue"] != "technic" {
		t.Fatalf("top category = %q", metrics["Top Category by Revenue"])
	}
	if metrics["Most Valuable Segment"] != "Parents" {
		t.Fatalf("most valuable segment = %q", metrics["Most Valuable Segment"])
	}
}

func TestWriteSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "consumer_behavior.sqlite")
	fresh := consumer.Profile{ConsumerID: "LEGO_000002", Segment: "Parents"}
	purchases := []consumer.Purchase{
		{TransactionID: "TXN_00000001", ConsumerID: "LEGO_000001", Category: "technic", FinalPrice: 99.99},
		{TransactionID: "TXN_00000002", ConsumerID: "LEGO_000001", Category: "city", FinalPrice: 49.99},
	}
	if err := WriteSQLite(path, []consumer.Profile{sampleProfile(), fresh}, purchases); err != nil {
		t.Fatalf("write sqlite: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM consumer_profiles`).Scan(&n); err != nil {
		t.Fatalf("count profiles: %v", err)
	}
	if n != 2 {
		t.Fatalf("profile rows = %d, want 2", n)
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM purchase_history WHERE consumer_id = 'LEGO_000001'`).Scan(&n); err != nil {
		t.Fatalf("count purchases: %v", err)
	}
	if n != 2 {
		t.Fatalf("purchase rows = %d, want 2", n)
	}

	var last sql.NullString
	if err := db.QueryRow(`SELECT last_purchase_date FROM consumer_profiles WHERE consumer_id = 'LEGO_000002'`).Scan(&last); err != nil {
		t.Fatalf("select last purchase: %v", err)
	}
	if last.Valid {
		t.Fatalf("fresh profile last_purchase_date = %q, want NULL", last.String)
	}

	var loyalty float64
	if err := db.QueryRow(`SELECT loyalty_score FROM consumer_profiles WHERE segment = 'Adult Collectors'`).Scan(&loyalty); err != nil {
		t.Fatalf("select by segment index: %v", err)
	}
	if loyalty != 0.85 {
		t.Fatalf("loyalty = %v, want 0.85", loyalty)
	}
}
