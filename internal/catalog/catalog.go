// Package catalog holds the static reference tables the generators sample
// from: the product catalog, the consumer segment definitions, and the
// geographic regions. The built-in tables can be overridden by a YAML file.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Product is one catalog entry. Category is the key of the owning
// category group.
type Product struct {
	Name       string  `yaml:"name"`
	Price      float64 `yaml:"price"`
	AgeGroup   string  `yaml:"age_group"`
	Complexity string  `yaml:"complexity"`
	BuildTime  string  `yaml:"build_time"`
	Category   string  `yaml:"-"`
}

// Category groups the products sold under one catalog key.
type Category struct {
	Name     string    `yaml:"name"`
	Products []Product `yaml:"products"`
}

// Segment describes one consumer segment and its behavior parameters.
type Segment struct {
	Name                string             `yaml:"name"`
	AgeMin              int                `yaml:"age_min"`
	AgeMax              int                `yaml:"age_max"`
	AvgSpending         float64            `yaml:"avg_spending"`
	PreferredCategories []string           `yaml:"preferred_categories"`
	PurchaseFrequency   string             `yaml:"purchase_frequency"`
	Seasonality         map[string]float64 `yaml:"seasonality"`
	LoyaltyScore        float64            `yaml:"loyalty_score"`
	PriceSensitivity    string             `yaml:"price_sensitivity"`
}

// SeasonalMultiplier returns the segment's multiplier for a season,
// defaulting to 1.0 when the season is not listed.
func (s Segment) SeasonalMultiplier(season string) float64 {
	if m, ok := s.Seasonality[season]; ok {
		return m
	}
	return 1.0
}

// Location is a geographic sales region.
type Location struct {
	Region     string   `yaml:"region"`
	Countries  []string `yaml:"countries"`
	MarketSize float64  `yaml:"market_size"`
}

// Tables is the full reference data set. Category and segment order is
// significant: generators sample by index and exports preserve it.
type Tables struct {
	Categories []Category `yaml:"categories"`
	Segments   []Segment  `yaml:"segments"`
	Locations  []Location `yaml:"locations"`
}

// Load returns the built-in tables, or the tables parsed from the YAML
// file at path when it exists. A missing file is not an error; a
// malformed one is.
func Load(path string) (Tables, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Tables{}, fmt.Errorf("read catalog file: %w", err)
	}
	var t Tables
	if err := yaml.Unmarshal(b, &t); err != nil {
		return Tables{}, fmt.Errorf("parse catalog file %s: %w", path, err)
	}
	for ci := range t.Categories {
		for pi := range t.Categories[ci].Products {
			t.Categories[ci].Products[pi].Category = t.Categories[ci].Name
		}
	}
	if err := t.Validate(); err != nil {
		return Tables{}, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return t, nil
}

// Validate checks the cross-references between tables.
func (t Tables) Validate() error {
	if len(t.Categories) == 0 {
		return fmt.Errorf("no product categories defined")
	}
	if len(t.Segments) == 0 {
		return fmt.Errorf("no consumer segments defined")
	}
	if len(t.Locations) == 0 {
		return fmt.Errorf("no locations defined")
	}
	known := make(map[string]struct{}, len(t.Categories))
	for _, c := range t.Categories {
		if len(c.Products) == 0 {
			return fmt.Errorf("category %q has no products", c.Name)
		}
		known[c.Name] = struct{}{}
	}
	for _, s := range t.Segments {
		if s.AgeMin > s.AgeMax {
			return fmt.Errorf("segment %q has inverted age range [%d,%d]", s.Name, s.AgeMin, s.AgeMax)
		}
		for _, pc := range s.PreferredCategories {
			if _, ok := known[pc]; !ok {
				return fmt.Errorf("segment %q prefers unknown category %q", s.Name, pc)
			}
		}
	}
	for _, l := range t.Locations {
		if len(l.Countries) == 0 {
			return fmt.Errorf("location %q has no countries", l.Region)
		}
	}
	return nil
}

// AllProducts flattens the catalog in category order with Category set
// on each product.
func (t Tables) AllProducts() []Product {
	var out []Product
	for _, c := range t.Categories {
		out = append(out, c.Products...)
	}
	return out
}

// ProductsIn returns the products whose category is in the given list,
// preserving catalog order.
func (t Tables) ProductsIn(categories []string) []Product {
	want := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		want[c] = struct{}{}
	}
	var out []Product
	for _, c := range t.Categories {
		if _, ok := want[c.Name]; ok {
			out = append(out, c.Products...)
		}
	}
	return out
}

// CategoryNames returns the catalog category keys in order.
func (t Tables) CategoryNames() []string {
	out := make([]string, 0, len(t.Categories))
	for _, c := range t.Categories {
		out = append(out, c.Name)
	}
	return out
}

// SegmentNames returns the segment names in table order.
func (t Tables) SegmentNames() []string {
	out := make([]string, 0, len(t.Segments))
	for _, s := range t.Segments {
		out = append(out, s.Name)
	}
	return out
}

// RegionNames returns the region names in table order.
func (t Tables) RegionNames() []string {
	out := make([]string, 0, len(t.Locations))
	for _, l := range t.Locations {
		out = append(out, l.Region)
	}
	return out
}

// CountryNames returns every country across all locations in order.
func (t Tables) CountryNames() []string {
	var out []string
	for _, l := range t.Locations {
		out = append(out, l.Countries...)
	}
	return out
}

// SegmentByName looks a segment up by name.
func (t Tables) SegmentByName(name string) (Segment, bool) {
	for _, s := range t.Segments {
		if s.Name == name {
			return s, true
		}
	}
	return Segment{}, false
}
