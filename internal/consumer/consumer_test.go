package consumer

import (
	"math"
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"time"

	"consumer-behavior/internal/catalog"
)

func TestGenerateProfiles(t *testing.T) {
	tables := catalog.Default()
	rng := rand.New(rand.NewSource(42))
	profiles := GenerateProfiles(rng, tables, 200)
	if len(profiles) != 200 {
		t.Fatalf("expected 200 profiles, got %d", len(profiles))
	}

	countryRegion := map[string]string{}
	for _, l := range tables.Locations {
		for _, c := range l.Countries {
			countryRegion[c] = l.Region
		}
	}

	for i, p := range profiles {
		if want := "LEGO_"; !strings.HasPrefix(p.ConsumerID, want) || len(p.ConsumerID) != 11 {
			t.Fatalf("profile %d: bad consumer id %q", i, p.ConsumerID)
		}
		seg, ok := tables.SegmentByName(p.Segment)
		if !ok {
			t.Fatalf("profile %d: unknown segment %q", i, p.Segment)
		}
		if p.Age < seg.AgeMin || p.Age > seg.AgeMax {
			t.Fatalf("profile %d: age %d outside segment range [%d,%d]", i, p.Age, seg.AgeMin, seg.AgeMax)
		}
		if math.Abs(p.LoyaltyScore-seg.LoyaltyScore) > 0.105 {
			t.Fatalf("profile %d: loyalty %v too far from baseline %v", i, p.LoyaltyScore, seg.LoyaltyScore)
		}
		lo := int(math.Floor(seg.AvgSpending * 0.7))
		hi := int(math.Floor(seg.AvgSpending * 1.3))
		if p.SpendingCapacity < lo || p.SpendingCapacity > hi {
			t.Fatalf("profile %d: capacity %d outside [%d,%d]", i, p.SpendingCapacity, lo, hi)
		}
		if countryRegion[p.Country] != p.Region {
			t.Fatalf("profile %d: country %q not in region %q", i, p.Country, p.Region)
		}
		reg, err := time.Parse(DateLayout, p.RegistrationDate)
		if err != nil {
			t.Fatalf("profile %d: bad registration date %q: %v", i, p.RegistrationDate, err)
		}
		if reg.Year() < 2020 || reg.Year() > 2024 {
			t.Fatalf("profile %d: registration year %d out of range", i, reg.Year())
		}
		if p.TotalLifetimePurchases != 0 || p.AverageOrderValue != 0 || p.LastPurchaseDate != "" {
			t.Fatalf("profile %d: financial history should start zeroed", i)
		}
	}
}

func TestGenerateProfilesNonPositive(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if got := GenerateProfiles(rng, catalog.Default(), 0); len(got) != 0 {
		t.Fatalf("expected no profiles for n=0, got %d", len(got))
	}
	if got := GenerateProfiles(rng, catalog.Default(), -5); len(got) != 0 {
		t.Fatalf("expected no profiles for n=-5, got %d", len(got))
	}
}

func TestGenerateDeterministic(t *testing.T) {
	tables := catalog.Default()
	run := func() ([]Profile, []Purchase) {
		rng := rand.New(rand.NewSource(7))
		profiles := GenerateProfiles(rng, tables, 50)
		purchases := GeneratePurchases(rng, tables, profiles, 200)
		return profiles, purchases
	}
	p1, t1 := run()
	p2, t2 := run()
	if !reflect.DeepEqual(p1, p2) {
		t.Fatal("profiles differ across runs with the same seed")
	}
	if !reflect.DeepEqual(t1, t2) {
		t.Fatal("purchases differ across runs with the same seed")
	}
}

func TestSeasonForMonth(t *testing.T) {
	cases := map[time.Month]string{
		time.January:   "holiday",
		time.February:  "regular",
		time.March:     "birthday",
		time.April:     "birthday",
		time.May:       "birthday",
		time.June:      "graduation",
		time.July:      "regular",
		time.August:    "backtoschool",
		time.September: "backtoschool",
		time.October:   "regular",
		time.November:  "holiday",
		time.December:  "holiday",
	}
	for month, want := range cases {
		if got := SeasonForMonth(month); got != want {
			t.Errorf("SeasonForMonth(%v) = %q, want %q", month, got, want)
		}
	}
}

func TestGeneratePurchases(t *testing.T) {
	tables := catalog.Default()
	rng := rand.New(rand.NewSource(99))
	profiles := GenerateProfiles(rng, tables, 100)
	purchases := GeneratePurchases(rng, tables, profiles, 1000)
	if len(purchases) == 0 {
		t.Fatal("expected some recorded purchases")
	}
	if len(purchases) > 1000 {
		t.Fatalf("recorded %d purchases for 1000 attempts", len(purchases))
	}

	ids := map[string]struct{}{}
	for _, p := range profiles {
		ids[p.ConsumerID] = struct{}{}
	}
	channels := map[string]bool{"online": true, "retail_store": true}
	methods := map[string]bool{}
	for _, m := range paymentMethods {
		methods[m] = true
	}

	for i, p := range purchases {
		if _, ok := ids[p.ConsumerID]; !ok {
			t.Fatalf("purchase %d: unknown consumer %q", i, p.ConsumerID)
		}
		if p.Quantity < 1 || p.Quantity > 4 {
			t.Fatalf("purchase %d: quantity %d out of range", i, p.Quantity)
		}
		if p.DiscountPercent < 0 || p.DiscountPercent > 25 {
			t.Fatalf("purchase %d: discount %d%% out of range", i, p.DiscountPercent)
		}
		if p.FinalPrice > p.TotalOriginalPrice {
			t.Fatalf("purchase %d: final %v above original %v", i, p.FinalPrice, p.TotalOriginalPrice)
		}
		date, err := time.Parse(DateLayout, p.PurchaseDate)
		if err != nil {
			t.Fatalf("purchase %d: bad date %q: %v", i, p.PurchaseDate, err)
		}
		if date.Year() < 2022 || date.Year() > 2024 {
			t.Fatalf("purchase %d: year %d out of range", i, date.Year())
		}
		if p.Season != SeasonForMonth(date.Month()) {
			t.Fatalf("purchase %d: season %q does not match month %v", i, p.Season, date.Month())
		}
		if !channels[p.Channel] {
			t.Fatalf("purchase %d: unknown channel %q", i, p.Channel)
		}
		if !methods[p.PaymentMethod] {
			t.Fatalf("purchase %d: unknown payment method %q", i, p.PaymentMethod)
		}
		if p.ShippingCost != 0 && (p.ShippingCost < 5 || p.ShippingCost > 20) {
			t.Fatalf("purchase %d: shipping %d out of range", i, p.ShippingCost)
		}
		if p.Satisfaction < 4 || p.Satisfaction > 5 {
			t.Fatalf("purchase %d: satisfaction %v out of range", i, p.Satisfaction)
		}
		if p.ReviewScore != 4 && p.ReviewScore != 5 {
			t.Fatalf("purchase %d: review score %d out of range", i, p.ReviewScore)
		}
	}
}

func TestGeneratePurchasesPriceSensitivityGate(t *testing.T) {
	tables := catalog.Default()
	rng := rand.New(rand.NewSource(3))
	profiles := GenerateProfiles(rng, tables, 500)
	purchases := GeneratePurchases(rng, tables, profiles, 5000)
	if len(purchases) >= 5000 {
		t.Fatal("expected some attempts to be abandoned")
	}
}

func TestApplyPurchases(t *testing.T) {
	profiles := []Profile{
		{ConsumerID: "LEGO_000001"},
		{ConsumerID: "LEGO_000002"},
	}
	purchases := []Purchase{
		{ConsumerID: "LEGO_000001", FinalPrice: 100.50, PurchaseDate: "2023-01-15"},
		{ConsumerID: "LEGO_000001", FinalPrice: 49.50, PurchaseDate: "2024-06-01"},
		{ConsumerID: "LEGO_999999", FinalPrice: 10, PurchaseDate: "2024-01-01"},
	}
	ApplyPurchases(profiles, purchases)

	if got := profiles[0].TotalLifetimePurchases; got != 150 {
		t.Fatalf("lifetime purchases = %v, want 150", got)
	}
	if got := profiles[0].AverageOrderValue; got != 75 {
		t.Fatalf("average order value = %v, want 75", got)
	}
	if got := profiles[0].LastPurchaseDate; got != "2024-06-01" {
		t.Fatalf("last purchase date = %q, want 2024-06-01", got)
	}
	if profiles[1].TotalLifetimePurchases != 0 || profiles[1].LastPurchaseDate != "" {
		t.Fatal("consumer without purchases should stay zeroed")
	}
}
