package analytics

import (
	"math"
	"reflect"
	"testing"

	"consumer-behavior/internal/consumer"
)

func TestAnalyzeTotals(t *testing.T) {
	purchases := []consumer.Purchase{
		{ConsumerID: "LEGO_000001", Category: "technic", FinalPrice: 100, Quantity: 1},
		{ConsumerID: "LEGO_000001", Category: "technic", FinalPrice: 200, Quantity: 2},
		{ConsumerID: "LEGO_000002", Category: "city", FinalPrice: 100, Quantity: 1},
	}
	profiles := []consumer.Profile{
		{ConsumerID: "LEGO_000001", Segment: "Parents", TotalLifetimePurchases: 300, LoyaltyScore: 0.7},
		{ConsumerID: "LEGO_000002", Segment: "Gift Buyers", TotalLifetimePurchases: 100, LoyaltyScore: 0.5},
	}

	s := Analyze(purchases, profiles)
	if s.TotalRevenue != 400 {
		t.Fatalf("total revenue = %v, want 400", s.TotalRevenue)
	}
	if s.TotalTransactions != 3 {
		t.Fatalf("total transactions = %d, want 3", s.TotalTransactions)
	}
	if got := s.AverageOrderValue; math.Abs(got-133.33) > 0.001 {
		t.Fatalf("average order value = %v, want 133.33", got)
	}

	if len(s.Categories) != 2 || s.Categories[0].Category != "technic" || s.Categories[1].Category != "city" {
		t.Fatalf("categories not in first-seen order: %+v", s.Categories)
	}
	technic := s.Categories[0]
	if technic.Revenue != 300 || technic.Transactions != 2 || technic.Units != 3 {
		t.Fatalf("technic aggregate wrong: %+v", technic)
	}
	if technic.RevenueShare != 75 {
		t.Fatalf("technic revenue share = %v, want 75", technic.RevenueShare)
	}

	var catRevenue float64
	for _, c := range s.Categories {
		catRevenue += c.Revenue
	}
	if math.Abs(catRevenue-s.TotalRevenue) > 0.01 {
		t.Fatalf("category revenue %v does not sum to total %v", catRevenue, s.TotalRevenue)
	}

	var customers int
	for _, seg := range s.Segments {
		customers += seg.CustomerCount
	}
	if customers != len(profiles) {
		t.Fatalf("segment customers %d, want %d", customers, len(profiles))
	}
	parents := s.Segments[0]
	if parents.Segment != "Parents" || parents.AvgLifetimeValue != 300 || parents.CustomerShare != 50 {
		t.Fatalf("parents aggregate wrong: %+v", parents)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	s := Analyze(nil, nil)
	if s.TotalRevenue != 0 || s.TotalTransactions != 0 || s.AverageOrderValue != 0 {
		t.Fatalf("empty input should produce zero totals: %+v", s)
	}
	if s.TopCategoryByRevenue() != "" {
		t.Fatal("top category of empty summary should be empty")
	}
	if s.MostValuableSegment() != "" {
		t.Fatal("most valuable segment of empty summary should be empty")
	}
}

func TestAnalyzePure(t *testing.T) {
	purchases := []consumer.Purchase{{ConsumerID: "LEGO_000001", Category: "city", FinalPrice: 10}}
	profiles := []consumer.Profile{{ConsumerID: "LEGO_000001", Segment: "Parents"}}
	before := Analyze(purchases, profiles)
	after := Analyze(purchases, profiles)
	if !reflect.DeepEqual(before, after) {
		t.Fatal("Analyze is not stable over identical input")
	}
}

func TestTopCategoryTieGoesToLater(t *testing.T) {
	purchases := []consumer.Purchase{
		{Category: "city", FinalPrice: 100},
		{Category: "technic", FinalPrice: 100},
	}
	s := Analyze(purchases, nil)
	if got := s.TopCategoryByRevenue(); got != "technic" {
		t.Fatalf("tie should go to the later category, got %q", got)
	}
}

func TestMostValuableSegmentTieGoesToLater(t *testing.T) {
	profiles := []consumer.Profile{
		{ConsumerID: "a", Segment: "Parents", TotalLifetimePurchases: 100},
		{ConsumerID: "b", Segment: "Gift Buyers", TotalLifetimePurchases: 100},
	}
	s := Analyze(nil, profiles)
	if got := s.MostValuableSegment(); got != "Gift Buyers" {
		t.Fatalf("tie should go to the later segment, got %q", got)
	}
}
