// Command countries-to-csv converts a scraped country JSON dump into a
// CSV table. When the input file is absent it falls back to the bundled
// country data set.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"consumer-behavior/internal/countries"
)

func main() {
	input := flag.String("input", "scraped-countries.json", "Country JSON to read")
	output := flag.String("output", "countries-data.csv", "CSV file to write")
	flag.Parse()

	cs, err := countries.Load(*input)
	if err != nil {
		fatalf("read %s: %v", *input, err)
	}
	if err := countries.WriteCSV(*output, cs); err != nil {
		fatalf("write %s: %v", *output, err)
	}

	fmt.Printf("Converted %d countries to %s\n", len(cs), *output)
	fmt.Println("Preview:")
	f, err := os.Open(*output)
	if err != nil {
		fatalf("open %s: %v", *output, err)
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for i := 0; i < 6 && sc.Scan(); i++ {
		fmt.Println("  " + sc.Text())
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
