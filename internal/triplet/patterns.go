package triplet

import "sort"

// PatternAnalysis summarizes the shape of an extracted triplet set.
type PatternAnalysis struct {
	Total      int
	Predicates []KeyCount
	Types      []KeyCount
}

// KeyCount is a distribution entry sorted by descending count.
type KeyCount struct {
	Key   string
	Count int
}

// AnalyzePatterns computes predicate and type distributions, sorted by
// descending count with key order as the tie-break.
func AnalyzePatterns(ts []Triplet) PatternAnalysis {
	preds := map[string]int{}
	types := map[string]int{}
	for _, t := range ts {
		preds[t.Predicate]++
		types[t.Type]++
	}
	return PatternAnalysis{
		Total:      len(ts),
		Predicates: sortedCounts(preds),
		Types:      sortedCounts(types),
	}
}

func sortedCounts(m map[string]int) []KeyCount {
	out := make([]KeyCount, 0, len(m))
	for k, n := range m {
		out = append(out, KeyCount{Key: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}
