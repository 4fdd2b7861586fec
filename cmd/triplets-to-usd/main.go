// Command triplets-to-usd converts an extracted triplet CSV into a 3D
// network scene in USD ASCII format, plus a JSON metadata sidecar.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"consumer-behavior/internal/catalog"
	"consumer-behavior/internal/csvio"
	"consumer-behavior/internal/logging"
	"consumer-behavior/internal/scene"
)

func main() {
	input := flag.String("input", "consumer_profile_triplets.csv", "Triplet CSV to read")
	output := flag.String("output", "consumer_triplets_network.usda", "USD scene file to write")
	metadataPath := flag.String("metadata", "", "Metadata JSON path (default derived from -output)")
	sampleEvery := flag.Int("sample-every", 50, "Keep every Nth triplet regardless of type")
	seed := flag.Int64("seed", 0, "Random seed for node layout (0 = derive from clock)")
	catalogFile := flag.String("catalog", "", "Optional YAML file overriding the built-in catalog tables")
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

	runSeed := *seed
	if runSeed == 0 {
		runSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(runSeed))
	conv := scene.NewConverter(rng, scene.NewClassifier(tables))

	total := 0
	kept := 0
	err = csvio.ForEach(*input, func(index int, row map[string]string) error {
		total++
		if !scene.ShouldVisualize(index, *sampleEvery, row["Type"]) {
			return nil
		}
		confidence, err := strconv.ParseFloat(row["Confidence"], 64)
		if err != nil {
			return fmt.Errorf("row %d: parse confidence %q: %w", index, row["Confidence"], err)
		}
		conv.AddRelationship(row["Subject"], row["Predicate"], row["Object"], confidence)
		kept++
		return nil
	})
	if err != nil {
		fatalf("read %s: %v", *input, err)
	}
	logger.Info("sampled triplets",
		zap.Int("total", total), zap.Int("visualized", kept),
		zap.Int("nodes", len(conv.Nodes())), zap.Int64("seed", runSeed))

	if err := os.WriteFile(*output, []byte(conv.USD()), 0o644); err != nil {
		fatalf("write %s: %v", *output, err)
	}

	runID := uuid.NewString()
	meta := conv.BuildMetadata(runID, total, time.Now().UTC())
	metaOut := *metadataPath
	if metaOut == "" {
		metaOut = strings.TrimSuffix(*output, ".usda") + "_metadata.json"
	}
	raw, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		fatalf("encode metadata: %v", err)
	}
	if err := os.WriteFile(metaOut, raw, 0o644); err != nil {
		fatalf("write %s: %v", metaOut, err)
	}

	fmt.Printf("Run: %s\n", runID)
	fmt.Printf("Triplets: %d read, %d visualized\n", total, kept)
	fmt.Printf("Nodes: %d (%s)\n", len(conv.Nodes()), strings.Join(conv.NodeTypes(), ", "))
	fmt.Printf("Scene: %s\n", *output)
	fmt.Printf("Metadata: %s\n", metaOut)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
