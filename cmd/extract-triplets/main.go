// Command extract-triplets reads an exported consumer profile CSV and
// rewrites each profile as subject-predicate-object triplets suitable
// for knowledge-graph loading.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"consumer-behavior/internal/csvio"
	"consumer-behavior/internal/logging"
	"consumer-behavior/internal/triplet"
)

func main() {
	input := flag.String("input", "consumer_profiles.csv", "Consumer profile CSV to read")
	output := flag.String("output", "consumer_profile_triplets.csv", "Triplet CSV to write")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	logger, err := logging.New(*verbose)
	if err != nil {
		fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	_, rows, err := csvio.Load(*input)
	if err != nil {
		fatalf("read %s: %v", *input, err)
	}
	logger.Info("loaded profiles", zap.String("input", *input), zap.Int("rows", len(rows)))

	triplets, err := triplet.FromProfiles(rows)
	if err != nil {
		fatalf("extract triplets: %v", err)
	}

	records := make([][]string, 0, len(triplets))
	for _, t := range triplets {
		records = append(records, t.Record())
	}
	if err := csvio.Write(*output, triplet.Headers, records); err != nil {
		fatalf("write %s: %v", *output, err)
	}
	logger.Info("wrote triplets", zap.String("output", *output), zap.Int("count", len(triplets)))

	patterns := triplet.AnalyzePatterns(triplets)
	fmt.Printf("Profiles: %d\n", len(rows))
	fmt.Printf("Triplets: %d\n", patterns.Total)
	fmt.Println("Top predicates:")
	for i, p := range patterns.Predicates {
		if i >= 10 {
			break
		}
		fmt.Printf("  %s: %d\n", p.Key, p.Count)
	}
	fmt.Println("Type distribution:")
	for _, t := range patterns.Types {
		share := 0.0
		if patterns.Total > 0 {
			share = float64(t.Count) * 100 / float64(patterns.Total)
		}
		fmt.Printf("  %s: %d (%.1f%%)\n", t.Key, t.Count, share)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
