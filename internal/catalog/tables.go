package catalog

// Default returns the built-in reference tables. Prices and segment
// parameters mirror the published LEGO catalog snapshot the pipeline
// was seeded from. Callers get a fresh value each time; nothing here
// is shared mutable state.
func Default() Tables {
	return Tables{
		Categories: []Category{
			{Name: "architecture", Products: withCategory("architecture", []Product{
				{Name: "Eiffel Tower", Price: 629.99, AgeGroup: "18+", Complexity: "high", BuildTime: "8-12 hours"},
				{Name: "Statue of Liberty", Price: 99.99, AgeGroup: "16+", Complexity: "medium", BuildTime: "4-6 hours"},
				{Name: "Tokyo Skyline", Price: 59.99, AgeGroup: "12+", Complexity: "medium", BuildTime: "2-4 hours"},
				{Name: "Great Wall of China", Price: 49.99, AgeGroup: "12+", Complexity: "medium", BuildTime: "2-3 hours"},
			})},
			{Name: "ninjago", Products: withCategory("ninjago", []Product{
				{Name: "NINJAGO City Workshops", Price: 249.99, AgeGroup: "14+", Complexity: "high", BuildTime: "6-8 hours"},
				{Name: "Dragon Stone Shrine", Price: 119.99, AgeGroup: "13+", Complexity: "medium", BuildTime: "3-5 hours"},
				{Name: "Arc Dragon of Focus", Price: 99.99, AgeGroup: "9+", Complexity: "medium", BuildTime: "2-4 hours"},
				{Name: "Thunderfang Dragon of Chaos", Price: 74.99, AgeGroup: "8+", Complexity: "medium", BuildTime: "2-3 hours"},
				{Name: "Lloyd's Green Forest Dragon", Price: 19.99, AgeGroup: "6+", Complexity: "low", BuildTime: "1-2 hours"},
			})},
			{Name: "starwars", Products: withCategory("starwars", []Product{
				{Name: "Millennium Falcon", Price: 849.99, AgeGroup: "16+", Complexity: "high", BuildTime: "10-15 hours"},
				{Name: "Imperial Star Destroyer", Price: 699.99, AgeGroup: "16+", Complexity: "high", BuildTime: "8-12 hours"},
				{Name: "X-Wing Starfighter", Price: 49.99, AgeGroup: "9+", Complexity: "medium", BuildTime: "2-3 hours"},
				{Name: "Baby Yoda", Price: 79.99, AgeGroup: "10+", Complexity: "medium", BuildTime: "2-4 hours"},
			})},
			{Name: "harrypotter", Products: withCategory("harrypotter", []Product{
				{Name: "Hogwarts Castle", Price: 469.99, AgeGroup: "16+", Complexity: "high", BuildTime: "8-12 hours"},
				{Name: "Diagon Alley", Price: 399.99, AgeGroup: "16+", Complexity: "high", BuildTime: "6-10 hours"},
				{Name: "Dobby the House-Elf", Price: 29.99, AgeGroup: "8+", Complexity: "low", BuildTime: "1-2 hours"},
				{Name: "Hogwarts Express", Price: 89.99, AgeGroup: "8+", Complexity: "medium", BuildTime: "2-4 hours"},
			})},
			{Name: "technic", Products: withCategory("technic", []Product{
				{Name: "McLaren P1", Price: 449.99, AgeGroup: "18+", Complexity: "high", BuildTime: "8-12 hours"},
				{Name: "Liebherr Excavator", Price: 479.99, AgeGroup: "11+", Complexity: "high", BuildTime: "6-10 hours"},
				{Name: "Ducati Panigale V4 R", Price: 69.99, AgeGroup: "10+", Complexity: "medium", BuildTime: "2-4 hours"},
			})},
			{Name: "creator", Products: withCategory("creator", []Product{
				{Name: "Deep Sea Creatures", Price: 79.99, AgeGroup: "7+", Complexity: "medium", BuildTime: "2-4 hours"},
				{Name: "Cyber Drone", Price: 39.99, AgeGroup: "8+", Complexity: "medium", BuildTime: "1-3 hours"},
				{Name: "Supersonic Jet", Price: 99.99, AgeGroup: "9+", Complexity: "medium", BuildTime: "3-5 hours"},
			})},
			{Name: "friends", Products: withCategory("friends", []Product{
				{Name: "Heartlake City School", Price: 79.99, AgeGroup: "6+", Complexity: "medium", BuildTime: "2-4 hours"},
				{Name: "Emma's Art Studio", Price: 29.99, AgeGroup: "6+", Complexity: "low", BuildTime: "1-2 hours"},
				{Name: "Olivia's Space Academy", Price: 99.99, AgeGroup: "8+", Complexity: "medium", BuildTime: "3-5 hours"},
			})},
			{Name: "city", Products: withCategory("city", []Product{
				{Name: "Police Station", Price: 89.99, AgeGroup: "5+", Complexity: "medium", BuildTime: "2-4 hours"},
				{Name: "Fire Station", Price: 119.99, AgeGroup: "6+", Complexity: "medium", BuildTime: "3-5 hours"},
				{Name: "Airport Passenger Terminal", Price: 129.99, AgeGroup: "6+", Complexity: "medium", BuildTime: "3-6 hours"},
			})},
		},
		Segments: []Segment{
			{
				Name: "Adult Collectors", AgeMin: 25, AgeMax: 65, AvgSpending: 450,
				PreferredCategories: []string{"architecture", "technic", "starwars"},
				PurchaseFrequency:   "monthly",
				Seasonality:         map[string]float64{"holiday": 1.8, "birthday": 1.2, "regular": 1.0},
				LoyaltyScore:        0.85, PriceSensitivity: "low",
			},
			{
				Name: "Parents", AgeMin: 28, AgeMax: 50, AvgSpending: 180,
				PreferredCategories: []string{"city", "friends", "creator", "ninjago"},
				PurchaseFrequency:   "quarterly",
				Seasonality:         map[string]float64{"holiday": 2.5, "birthday": 2.0, "backtoschool": 1.3, "regular": 0.8},
				LoyaltyScore:        0.72, PriceSensitivity: "medium",
			},
			{
				Name: "Teens and Young Adults", AgeMin: 13, AgeMax: 24, AvgSpending: 120,
				PreferredCategories: []string{"starwars", "ninjago", "harrypotter", "technic"},
				PurchaseFrequency:   "biannually",
				Seasonality:         map[string]float64{"holiday": 1.5, "birthday": 1.8, "regular": 0.9},
				LoyaltyScore:        0.65, PriceSensitivity: "high",
			},
			{
				Name: "Gift Buyers", AgeMin: 25, AgeMax: 70, AvgSpending: 95,
				PreferredCategories: []string{"friends", "city", "creator", "harrypotter"},
				PurchaseFrequency:   "seasonally",
				Seasonality:         map[string]float64{"holiday": 3.2, "birthday": 2.8, "graduation": 1.5, "regular": 0.3},
				LoyaltyScore:        0.45, PriceSensitivity: "medium",
			},
			{
				Name: "Serious Builders", AgeMin: 18, AgeMax: 55, AvgSpending: 650,
				PreferredCategories: []string{"architecture", "technic", "starwars"},
				PurchaseFrequency:   "monthly",
				Seasonality:         map[string]float64{"holiday": 1.4, "newrelease": 2.1, "regular": 1.0},
				LoyaltyScore:        0.92, PriceSensitivity: "low",
			},
		},
		Locations: []Location{
			{Region: "North America", Countries: []string{"USA", "Canada", "Mexico"}, MarketSize: 0.35},
			{Region: "Europe", Countries: []string{"Germany", "UK", "France", "Italy", "Spain", "Netherlands"}, MarketSize: 0.28},
			{Region: "Asia Pacific", Countries: []string{"Japan", "Australia", "South Korea", "Singapore"}, MarketSize: 0.22},
			{Region: "Emerging Markets", Countries: []string{"Brazil", "India", "China", "Russia"}, MarketSize: 0.15},
		},
	}
}

func withCategory(name string, ps []Product) []Product {
	for i := range ps {
		ps[i].Category = name
	}
	return ps
}
