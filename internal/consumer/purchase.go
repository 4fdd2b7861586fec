package consumer

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"consumer-behavior/internal/catalog"
)

var (
	purchaseStart = time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)
	purchaseEnd   = time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)

	paymentMethods = []string{"credit_card", "debit_card", "paypal", "apple_pay", "google_pay", "bank_transfer"}
)

// Purchase is one recorded transaction with a snapshot of the product
// fields at purchase time. Immutable once created.
type Purchase struct {
	TransactionID      string
	ConsumerID         string
	ProductName        string
	Category           string
	AgeGroup           string
	Complexity         string
	BuildTime          string
	Quantity           int
	UnitPrice          float64
	TotalOriginalPrice float64
	DiscountPercent    int
	FinalPrice         float64
	PurchaseDate       string
	PurchaseMonth      int
	PurchaseYear       int
	Season             string
	Channel            string
	PaymentMethod      string
	ShippingCost       int
	Satisfaction       float64
	ReviewScore        int
}

// SeasonForMonth maps a calendar month to the sales season used for
// seasonal discounts: {11,12,1} holiday, {8,9} backtoschool,
// {3,4,5} birthday, {6} graduation, everything else regular.
func SeasonForMonth(month time.Month) string {
	switch {
	case month >= time.November || month <= time.January:
		return "holiday"
	case month == time.August || month == time.September:
		return "backtoschool"
	case month >= time.March && month <= time.May:
		return "birthday"
	case month == time.June:
		return "graduation"
	default:
		return "regular"
	}
}

// GeneratePurchases attempts m transactions against read-only profile
// snapshots. Attempts abandoned by the purchase-probability gate still
// consume their transaction id, so the result can be shorter than m.
// Profiles are not mutated here; fold the result back with ApplyPurchases.
func GeneratePurchases(rng *rand.Rand, tables catalog.Tables, profiles []Profile, m int) []Purchase {
	if len(profiles) == 0 || m <= 0 {
		return nil
	}
	all := tables.AllProducts()
	if len(all) == 0 {
		return nil
	}

	purchases := make([]Purchase, 0, m)
	for i := 0; i < m; i++ {
		c := profiles[rng.Intn(len(profiles))]

		pool := tables.ProductsIn(splitCategories(c.PreferredCategories))
		if len(pool) == 0 {
			pool = all
		}
		product := pool[rng.Intn(len(pool))]

		probability := 1.0
		if c.PriceSensitivity == "high" && product.Price > 100 {
			probability = 0.3
		} else if c.PriceSensitivity == "medium" && product.Price > 200 {
			probability = 0.6
		}
		if rng.Float64() > probability {
			continue
		}

		date := randomDate(rng, purchaseStart, purchaseEnd)
		season := SeasonForMonth(date.Month())

		// The segment table carries a per-season multiplier; the
		// original pipeline looks it up without applying it to price
		// or probability, and that no-op is reproduced here.
		if seg, ok := tables.SegmentByName(c.Segment); ok {
			_ = seg.SeasonalMultiplier(season)
		}

		quantity := 1
		if rng.Float64() < 0.15 {
			quantity = 2 + rng.Intn(3)
		}

		discount := 0.0
		if c.LoyaltyScore > 0.8 {
			discount += 0.1
		}
		if season == "holiday" {
			discount += 0.15
		}
		discount = math.Min(discount, 0.25)

		original := product.Price * float64(quantity)
		final := original * (1 - discount)

		channel := "retail_store"
		if rng.Float64() < 0.7 {
			channel = "online"
		}
		shipping := 0
		if rng.Float64() < 0.3 {
			shipping = int(math.Round(rng.Float64()*15 + 5))
		}

		purchases = append(purchases, Purchase{
			TransactionID:      fmt.Sprintf("TXN_%08d", i+1),
			ConsumerID:         c.ConsumerID,
			ProductName:        product.Name,
			Category:           product.Category,
			AgeGroup:           product.AgeGroup,
			Complexity:         product.Complexity,
			BuildTime:          product.BuildTime,
			Quantity:           quantity,
			UnitPrice:          product.Price,
			TotalOriginalPrice: round2(original),
			DiscountPercent:    int(math.Round(discount * 100)),
			FinalPrice:         round2(final),
			PurchaseDate:       date.Format(DateLayout),
			PurchaseMonth:      int(date.Month()),
			PurchaseYear:       date.Year(),
			Season:             season,
			Channel:            channel,
			PaymentMethod:      paymentMethods[rng.Intn(len(paymentMethods))],
			ShippingCost:       shipping,
			Satisfaction:       round1(4 + rng.Float64()),
			ReviewScore:        4 + rng.Intn(2),
		})
	}
	return purchases
}

// ApplyPurchases folds recorded transactions back into the profiles:
// lifetime spend accumulates in transaction order, the last purchase
// date tracks the most recently folded transaction, and the average
// order value becomes the mean of the consumer's final totals.
func ApplyPurchases(profiles []Profile, purchases []Purchase) {
	byID := make(map[string]int, len(profiles))
	for i := range profiles {
		byID[profiles[i].ConsumerID] = i
	}
	counts := make(map[string]int, len(profiles))
	sums := make(map[string]float64, len(profiles))
	for _, p := range purchases {
		i, ok := byID[p.ConsumerID]
		if !ok {
			continue
		}
		sums[p.ConsumerID] += p.FinalPrice
		counts[p.ConsumerID]++
		profiles[i].LastPurchaseDate = p.PurchaseDate
	}
	for id, i := range byID {
		n := counts[id]
		if n == 0 {
			continue
		}
		profiles[i].TotalLifetimePurchases = round2(sums[id])
		profiles[i].AverageOrderValue = round2(sums[id] / float64(n))
	}
}

func splitCategories(joined string) []string {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
