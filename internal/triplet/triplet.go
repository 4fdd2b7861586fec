// Package triplet flattens consumer profile rows into normalized
// (subject, predicate, object) fact records with confidence, source and
// type metadata, and derives classification and aggregate facts.
package triplet

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Fact type buckets.
const (
	TypeDemographic  = "demographic"
	TypeGeographic   = "geographic"
	TypeBehavioral   = "behavioral"
	TypeFinancial    = "financial"
	TypePreference   = "preference"
	TypeTemporal     = "temporal"
	TypeAnalytical   = "analytical"
	TypeStatistical  = "statistical"
	TypeRelationship = "relationship"
)

const profileSource = "consumer_profiles"

// Headers is the column order of the triplet CSV.
var Headers = []string{"Subject", "Predicate", "Object", "Confidence", "Source", "Type"}

// Triplet is one immutable fact record.
type Triplet struct {
	Subject    string
	Predicate  string
	Object     string
	Confidence float64
	Source     string
	Type       string
}

// Record renders the triplet as a CSV record in Headers order.
func (t Triplet) Record() []string {
	return []string{
		t.Subject, t.Predicate, t.Object,
		strconv.FormatFloat(t.Confidence, 'f', -1, 64),
		t.Source, t.Type,
	}
}

// FromProfile extracts the facts of a single profile row as loaded from
// consumer_profiles.csv. A missing or non-numeric loyalty score, age or
// spending capacity is a format error that fails the run.
func FromProfile(row map[string]string) ([]Triplet, error) {
	id := row["Consumer_ID"]
	if id == "" {
		return nil, fmt.Errorf("profile row has no Consumer_ID")
	}

	loyalty, err := parseField(id, "Loyalty_Score", row)
	if err != nil {
		return nil, err
	}
	ageF, err := parseField(id, "Age", row)
	if err != nil {
		return nil, err
	}
	age := int(ageF)
	capacity, err := parseField(id, "Annual_Spending_Capacity", row)
	if err != nil {
		return nil, err
	}

	ts := []Triplet{
		{id, "hasSegment", row["Segment"], 1.0, profileSource, TypeDemographic},
		{id, "hasAge", row["Age"], 1.0, profileSource, TypeDemographic},
		{id, "livesIn", row["Country"], 1.0, profileSource, TypeGeographic},
		{id, "belongsToRegion", row["Region"], 1.0, profileSource, TypeGeographic},
		{id, "hasLoyaltyScore", row["Loyalty_Score"], 1.0, profileSource, TypeBehavioral},
		{id, "hasPriceSensitivity", row["Price_Sensitivity"], 1.0, profileSource, TypeBehavioral},
		{id, "purchasesWithFrequency", row["Purchase_Frequency"], 1.0, profileSource, TypeBehavioral},
		{id, "hasSpendingCapacity", row["Annual_Spending_Capacity"], 1.0, profileSource, TypeFinancial},
	}

	if v := row["Average_Order_Value"]; v != "" {
		aov, err := parseField(id, "Average_Order_Value", row)
		if err != nil {
			return nil, err
		}
		if aov > 0 {
			ts = append(ts, Triplet{id, "hasAverageOrderValue", v, 1.0, profileSource, TypeFinancial})
		}
	}
	if v := row["Total_Lifetime_Purchases"]; v != "" {
		ltv, err := parseField(id, "Total_Lifetime_Purchases", row)
		if err != nil {
			return nil, err
		}
		if ltv > 0 {
			ts = append(ts, Triplet{id, "hasLifetimeValue", v, 1.0, profileSource, TypeFinancial})
		}
	}

	for _, cat := range strings.Split(row["Preferred_Categories"], ",") {
		if cat = strings.TrimSpace(cat); cat != "" {
			ts = append(ts, Triplet{id, "prefers", cat, 0.8, profileSource, TypePreference})
		}
	}

	if reg := row["Registration_Date"]; reg != "" {
		datePart := strings.SplitN(reg, " ", 2)[0]
		d, err := time.Parse("2006-01-02", datePart)
		if err != nil {
			return nil, fmt.Errorf("profile %s: bad Registration_Date %q: %w", id, reg, err)
		}
		ts = append(ts,
			Triplet{id, "registeredIn", strconv.Itoa(d.Year()), 1.0, profileSource, TypeTemporal},
			Triplet{id, "registeredOn", datePart, 1.0, profileSource, TypeTemporal},
		)
	}
	if last := row["Last_Purchase_Date"]; last != "" && last != "null" {
		ts = append(ts, Triplet{id, "lastPurchasedOn", last, 1.0, profileSource, TypeTemporal})
	}

	ts = append(ts,
		Triplet{id, "isClassifiedAs", loyaltyTier(loyalty), 0.9, profileSource, TypeAnalytical},
		Triplet{id, "belongsToAgeGroup", ageBracket(age), 0.95, profileSource, TypeAnalytical},
		Triplet{id, "isClassifiedAs", spendTier(capacity), 0.85, profileSource, TypeAnalytical},
	)
	return ts, nil
}

// FromProfiles extracts per-profile facts in input order, then appends
// the aggregate facts: customer counts and ConsumerBase membership per
// first-seen segment and region, then segment-region and country-region
// relationship facts for every profile.
func FromProfiles(rows []map[string]string) ([]Triplet, error) {
	var all []Triplet
	segmentCounts := map[string]int{}
	regionCounts := map[string]int{}
	var segmentOrder, regionOrder []string

	for _, row := range rows {
		ts, err := FromProfile(row)
		if err != nil {
			return nil, err
		}
		all = append(all, ts...)

		if seg := row["Segment"]; seg != "" {
			if _, seen := segmentCounts[seg]; !seen {
				segmentOrder = append(segmentOrder, seg)
			}
			segmentCounts[seg]++
		}
		if reg := row["Region"]; reg != "" {
			if _, seen := regionCounts[reg]; !seen {
				regionOrder = append(regionOrder, reg)
			}
			regionCounts[reg]++
		}
	}

	for _, seg := range segmentOrder {
		all = append(all,
			Triplet{seg, "hasCustomerCount", strconv.Itoa(segmentCounts[seg]), 1.0, profileSource, TypeStatistical},
			Triplet{"ConsumerBase", "includesSegment", seg, 1.0, profileSource, TypeStatistical},
		)
	}
	for _, reg := range regionOrder {
		all = append(all,
			Triplet{reg, "hasCustomerCount", strconv.Itoa(regionCounts[reg]), 1.0, profileSource, TypeStatistical},
			Triplet{"ConsumerBase", "includesRegion", reg, 1.0, profileSource, TypeStatistical},
		)
	}

	for _, row := range rows {
		all = append(all,
			Triplet{row["Segment"], "isFoundIn", row["Region"], 0.7, profileSource, TypeRelationship},
			Triplet{row["Country"], "belongsToRegion", row["Region"], 1.0, profileSource, TypeRelationship},
		)
	}
	return all, nil
}

func loyaltyTier(score float64) string {
	switch {
	case score >= 0.8:
		return "HighLoyaltyCustomer"
	case score >= 0.6:
		return "MediumLoyaltyCustomer"
	default:
		return "LowLoyaltyCustomer"
	}
}

func ageBracket(age int) string {
	switch {
	case age < 18:
		return "Minor"
	case age < 25:
		return "YoungAdult"
	case age < 35:
		return "Millennial"
	case age < 50:
		return "GenX"
	case age < 65:
		return "BabyBoomer"
	default:
		return "Senior"
	}
}

func spendTier(capacity float64) string {
	switch {
	case capacity >= 500:
		return "HighSpender"
	case capacity >= 300:
		return "MediumSpender"
	default:
		return "LowSpender"
	}
}

func parseField(id, field string, row map[string]string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(row[field]), 64)
	if err != nil {
		return 0, fmt.Errorf("profile %s: bad %s %q: %w", id, field, row[field], err)
	}
	return v, nil
}
