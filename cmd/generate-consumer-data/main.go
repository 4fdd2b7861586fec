// Command generate-consumer-data produces the synthetic consumer data
// set: profiles, purchase history, and the aggregate analytics summary,
// exported as CSV files plus a SQLite database.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"consumer-behavior/internal/analytics"
	"consumer-behavior/internal/catalog"
	"consumer-behavior/internal/config"
	"consumer-behavior/internal/consumer"
	"consumer-behavior/internal/export"
	"consumer-behavior/internal/logging"
)

func main() {
	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		fatalf("load config: %v", err)
	}

	profileCount := flag.Int("profiles", cfg.ProfileCount, "Number of consumer profiles to generate")
	transactionCount := flag.Int("transactions", cfg.TransactionCount, "Number of purchase attempts")
	seed := flag.Int64("seed", cfg.Seed, "Random seed (0 = derive from clock)")
	outDir := flag.String("out-dir", cfg.OutputDir, "Output directory")
	catalogFile := flag.String("catalog", cfg.CatalogFile, "Optional YAML file overriding the built-in catalog tables")
	sqlitePath := flag.String("sqlite", "", `SQLite output path (default <out-dir>/consumer_behavior.sqlite, "none" disables)`)
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	logger, err := logging.New(*verbose)
	if err != nil {
		fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	tables, err := catalog.Load(*catalogFile)
	if err != nil {
		fatalf("load catalog: %v", err)
	}
	if err := tables.Validate(); err != nil {
		fatalf("validate catalog: %v", err)
	}

	runSeed := *seed
	if runSeed == 0 {
		runSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(runSeed))
	runID := uuid.NewString()

	logger.Info("generating consumer profiles",
		zap.String("run", runID), zap.Int("count", *profileCount), zap.Int64("seed", runSeed))
	profiles := consumer.GenerateProfiles(rng, tables, *profileCount)

	logger.Info("generating purchase history", zap.Int("attempts", *transactionCount))
	purchases := consumer.GeneratePurchases(rng, tables, profiles, *transactionCount)
	consumer.ApplyPurchases(profiles, purchases)
	logger.Info("recorded transactions",
		zap.Int("recorded", len(purchases)),
		zap.Int("abandoned", *transactionCount-len(purchases)))

	summary := analytics.Analyze(purchases, profiles)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fatalf("mkdir %s: %v", *outDir, err)
	}
	profilesCSV := filepath.Join(*outDir, "consumer_profiles.csv")
	purchasesCSV := filepath.Join(*outDir, "purchase_history.csv")
	summaryCSV := filepath.Join(*outDir, "analytics_summary.csv")

	logger.Info("exporting CSV files", zap.String("dir", *outDir))
	if err := export.WriteProfiles(profilesCSV, profiles); err != nil {
		fatalf("write profiles csv: %v", err)
	}
	if err := export.WritePurchases(purchasesCSV, purchases); err != nil {
		fatalf("write purchases csv: %v", err)
	}
	if err := export.WriteSummary(summaryCSV, summary); err != nil {
		fatalf("write analytics csv: %v", err)
	}

	dbPath := *sqlitePath
	if dbPath == "" {
		dbPath = filepath.Join(*outDir, "consumer_behavior.sqlite")
	}
	if dbPath != "none" {
		logger.Info("exporting SQLite database", zap.String("path", dbPath))
		if err := export.WriteSQLite(dbPath, profiles, purchases); err != nil {
			fatalf("write sqlite: %v", err)
		}
	}

	fmt.Printf("Run: %s (seed %d)\n", runID, runSeed)
	fmt.Printf("Consumers: %d\n", len(profiles))
	fmt.Printf("Transactions: %d\n", summary.TotalTransactions)
	fmt.Printf("Total revenue: %.2f\n", summary.TotalRevenue)
	fmt.Printf("Average order value: %.2f\n", summary.AverageOrderValue)
	fmt.Printf("CSV: %s, %s, %s\n", profilesCSV, purchasesCSV, summaryCSV)
	if dbPath != "none" {
		fmt.Printf("SQLite: %s\n", dbPath)
	}

	fmt.Println("Top categories by revenue:")
	cats := append([]analytics.CategoryPerformance(nil), summary.Categories...)
	sort.SliceStable(cats, func(i, j int) bool { return cats[i].Revenue > cats[j].Revenue })
	for i := 0; i < len(cats) && i < 5; i++ {
		fmt.Printf("  %s: %.2f (%.2f%%)\n", cats[i].Category, cats[i].Revenue, cats[i].RevenueShare)
	}

	fmt.Println("Segments by average lifetime value:")
	segs := append([]analytics.SegmentAnalysis(nil), summary.Segments...)
	sort.SliceStable(segs, func(i, j int) bool { return segs[i].AvgLifetimeValue > segs[j].AvgLifetimeValue })
	for _, s := range segs {
		fmt.Printf("  %s: %d customers, %.2f avg LTV\n", s.Segment, s.CustomerCount, s.AvgLifetimeValue)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
