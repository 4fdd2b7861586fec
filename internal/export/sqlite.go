package export

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	"consumer-behavior/internal/consumer"
)

// WriteSQLite writes the profiles and purchases into a fresh SQLite
// database with typed columns and lookup indexes. Any existing file at
// path is replaced.
func WriteSQLite(path string, profiles []consumer.Profile, purchases []consumer.Purchase) error {
	_ = os.Remove(path)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := writeProfileTable(db, profiles); err != nil {
		return fmt.Errorf("write consumer_profiles: %w", err)
	}
	if err := writePurchaseTable(db, purchases); err != nil {
		return fmt.Errorf("write purchase_history: %w", err)
	}
	return nil
}

func writeProfileTable(db *sql.DB, profiles []consumer.Profile) error {
	if _, err := db.Exec(`CREATE TABLE "consumer_profiles" (
		"consumer_id" TEXT PRIMARY KEY,
		"segment" TEXT,
		"age" INTEGER,
		"region" TEXT,
		"country" TEXT,
		"annual_spending_capacity" INTEGER,
		"loyalty_score" REAL,
		"price_sensitivity" TEXT,
		"preferred_categories" TEXT,
		"purchase_frequency" TEXT,
		"registration_date" TEXT,
		"total_lifetime_purchases" REAL,
		"average_order_value" REAL,
		"last_purchase_date" TEXT
	)`); err != nil {
		return err
	}
	stmt, err := db.Prepare(`INSERT INTO "consumer_profiles" VALUES (` + placeholders(14) + `)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, p := range profiles {
		last := any(nil)
		if p.LastPurchaseDate != "" {
			last = p.LastPurchaseDate
		}
		if _, err := stmt.Exec(
			p.ConsumerID, p.Segment, p.Age, p.Region, p.Country,
			p.SpendingCapacity, p.LoyaltyScore, p.PriceSensitivity,
			p.PreferredCategories, p.PurchaseFrequency, p.RegistrationDate,
			p.TotalLifetimePurchases, p.AverageOrderValue, last,
		); err != nil {
			return err
		}
	}
	for _, idx := range []string{
		`CREATE INDEX idx_consumer_profiles_segment ON consumer_profiles(segment)`,
		`CREATE INDEX idx_consumer_profiles_region ON consumer_profiles(region)`,
	} {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}
	return nil
}

func writePurchaseTable(db *sql.DB, purchases []consumer.Purchase) error {
	if _, err := db.Exec(`CREATE TABLE "purchase_history" (
		"transaction_id" TEXT PRIMARY KEY,
		"consumer_id" TEXT,
		"product_name" TEXT,
		"category" TEXT,
		"age_group" TEXT,
		"complexity" TEXT,
		"build_time" TEXT,
		"quantity" INTEGER,
		"unit_price" REAL,
		"total_original_price" REAL,
		"discount_applied_percent" INTEGER,
		"final_price" REAL,
		"purchase_date" TEXT,
		"purchase_month" INTEGER,
		"purchase_year" INTEGER,
		"season" TEXT,
		"purchase_channel" TEXT,
		"payment_method" TEXT,
		"shipping_cost" INTEGER,
		"customer_satisfaction" REAL,
		"review_score" INTEGER
	)`); err != nil {
		return err
	}
	stmt, err := db.Prepare(`INSERT INTO "purchase_history" VALUES (` + placeholders(21) + `)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, p := range purchases {
		if _, err := stmt.Exec(
			p.TransactionID, p.ConsumerID, p.ProductName, p.Category,
			p.AgeGroup, p.Complexity, p.BuildTime, p.Quantity, p.UnitPrice,
			p.TotalOriginalPrice, p.DiscountPercent, p.FinalPrice,
			p.PurchaseDate, p.PurchaseMonth, p.PurchaseYear, p.Season,
			p.Channel, p.PaymentMethod, p.ShippingCost, p.Satisfaction,
			p.ReviewScore,
		); err != nil {
			return err
		}
	}
	for _, idx := range []string{
		`CREATE INDEX idx_purchase_history_consumer ON purchase_history(consumer_id)`,
		`CREATE INDEX idx_purchase_history_category ON purchase_history(category)`,
	} {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}
	return nil
}

func placeholders(n int) string {
	return strings.TrimRight(strings.Repeat("?,", n), ",")
}
