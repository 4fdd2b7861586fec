// Package consumer generates synthetic consumer profiles and purchase
// transactions from the catalog tables. All randomness comes from an
// injected *rand.Rand so runs are reproducible under a fixed seed.
package consumer

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"consumer-behavior/internal/catalog"
)

// DateLayout is the wire format for every date field in the pipeline.
const DateLayout = "2006-01-02"

var (
	registrationStart = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	registrationEnd   = time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// Profile is one synthetic consumer. The financial-history fields start
// zeroed and are filled in by ApplyPurchases once transactions exist.
type Profile struct {
	ConsumerID             string
	Segment                string
	Age                    int
	Region                 string
	Country                string
	SpendingCapacity       int
	LoyaltyScore           float64
	PriceSensitivity       string
	PreferredCategories    string
	PurchaseFrequency      string
	RegistrationDate       string
	TotalLifetimePurchases float64
	AverageOrderValue      float64
	LastPurchaseDate       string
}

// GenerateProfiles produces n profiles by sampling segment and location
// uniformly at random. n <= 0 yields an empty slice.
func GenerateProfiles(rng *rand.Rand, tables catalog.Tables, n int) []Profile {
	if n <= 0 {
		return nil
	}
	profiles := make([]Profile, 0, n)
	for i := 0; i < n; i++ {
		seg := tables.Segments[rng.Intn(len(tables.Segments))]
		loc := tables.Locations[rng.Intn(len(tables.Locations))]
		country := loc.Countries[rng.Intn(len(loc.Countries))]

		// Loyalty noise is +/-0.1 around the segment baseline and is
		// deliberately not clamped to [0,1]; extreme draws can fall
		// slightly outside the nominal range.
		loyalty := round2(seg.LoyaltyScore + (rng.Float64()-0.5)*0.2)

		profiles = append(profiles, Profile{
			ConsumerID:          fmt.Sprintf("LEGO_%06d", i+1),
			Segment:             seg.Name,
			Age:                 seg.AgeMin + rng.Intn(seg.AgeMax-seg.AgeMin+1),
			Region:              loc.Region,
			Country:             country,
			SpendingCapacity:    int(math.Floor(seg.AvgSpending * (0.7 + rng.Float64()*0.6))),
			LoyaltyScore:        loyalty,
			PriceSensitivity:    seg.PriceSensitivity,
			PreferredCategories: strings.Join(seg.PreferredCategories, ", "),
			PurchaseFrequency:   seg.PurchaseFrequency,
			RegistrationDate:    randomDate(rng, registrationStart, registrationEnd).Format(DateLayout),
		})
	}
	return profiles
}

func randomDate(rng *rand.Rand, start, end time.Time) time.Time {
	span := end.Unix() - start.Unix()
	if span <= 0 {
		return start
	}
	return time.Unix(start.Unix()+rng.Int63n(span), 0).UTC()
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round1(v float64) float64 { return math.Round(v*10) / 10 }
