package scene

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"consumer-behavior/internal/catalog"
)

func newTestConverter() *Converter {
	return NewConverter(rand.New(rand.NewSource(1)), NewClassifier(catalog.Default()))
}

func TestTypeOf(t *testing.T) {
	c := NewClassifier(catalog.Default())
	cases := []struct {
		label string
		want  NodeType
	}{
		{"LEGO_000001", NodeConsumer},
		{"Adult Collectors", NodeSegment},
		{"Europe", NodeRegion},
		{"Germany", NodeCountry},
		{"technic", NodeCategory},
		{"HighLoyaltyCustomer", NodeAttribute},
		{"2021", NodeAttribute},
	}
	for _, tc := range cases {
		if got := c.TypeOf(tc.label); got != tc.want {
			t.Errorf("TypeOf(%q) = %q, want %q", tc.label, got, tc.want)
		}
	}
}

func TestNodeDedup(t *testing.T) {
	cv := newTestConverter()
	cv.AddRelationship("LEGO_000001", "hasSegment", "Adult Collectors", 1.0)
	cv.AddRelationship("LEGO_000001", "livesIn", "Germany", 1.0)
	cv.AddRelationship("LEGO_000002", "hasSegment", "Adult Collectors", 1.0)
	cv.AddRelationship("LEGO_000002", "livesIn", "Germany", 1.0)
	cv.AddRelationship("LEGO_000001", "prefers", "technic", 0.8)
	cv.AddRelationship("LEGO_000002", "prefers", "technic", 0.8)

	nodes := cv.Nodes()
	if len(nodes) != 5 {
		t.Fatalf("expected 5 distinct nodes, got %d", len(nodes))
	}
	if len(cv.Relationships()) != 6 {
		t.Fatalf("expected 6 relationships, got %d", len(cv.Relationships()))
	}
	if nodes[0].Label != "LEGO_000001" || nodes[0].ID != 0 {
		t.Fatalf("first node = %+v", nodes[0])
	}
	if nodes[1].Label != "Adult Collectors" || nodes[1].Type != NodeSegment {
		t.Fatalf("second node = %+v", nodes[1])
	}

	// repeated labels keep their original node and position
	rels := cv.Relationships()
	if rels[0].ObjectID != rels[2].ObjectID {
		t.Fatal("shared object should resolve to the same node")
	}
	if rels[0].ObjectPos != rels[2].ObjectPos {
		t.Fatal("shared object should keep its position")
	}
}

func TestNodeAppearance(t *testing.T) {
	cv := newTestConverter()
	cv.AddRelationship("LEGO_000001", "hasSegment", "Adult Collectors", 1.0)
	nodes := cv.Nodes()

	consumer := nodes[0]
	if consumer.Size != 0.05 {
		t.Fatalf("consumer size = %v", consumer.Size)
	}
	if consumer.Color != [3]float64{0.2, 0.6, 1.0} {
		t.Fatalf("consumer color = %v", consumer.Color)
	}
	if consumer.Position[0] < -10 || consumer.Position[0] > 10 {
		t.Fatalf("consumer x = %v out of band", consumer.Position[0])
	}

	segment := nodes[1]
	if segment.Size != 0.15 {
		t.Fatalf("segment size = %v", segment.Size)
	}
	if segment.Color != [3]float64{0.8, 0.2, 0.2} {
		t.Fatalf("segment color = %v", segment.Color)
	}
	if segment.Position[1] < 5 || segment.Position[1] > 8 {
		t.Fatalf("segment y = %v out of band", segment.Position[1])
	}
}

func TestShouldVisualize(t *testing.T) {
	cases := []struct {
		index       int
		sampleEvery int
		tripletType string
		want        bool
	}{
		{0, 50, "financial", true},
		{50, 50, "financial", true},
		{49, 50, "financial", false},
		{7, 50, "demographic", true},
		{7, 50, "geographic", true},
		{7, 50, "behavioral", true},
		{7, 50, "statistical", false},
		{7, 0, "financial", false},
		{3, 1, "financial", true},
	}
	for _, c := range cases {
		if got := ShouldVisualize(c.index, c.sampleEvery, c.tripletType); got != c.want {
			t.Errorf("ShouldVisualize(%d, %d, %q) = %v, want %v", c.index, c.sampleEvery, c.tripletType, got, c.want)
		}
	}
}

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Adult Collectors", "Adult_Collectors"},
		{"LEGO_000001", "LEGO_000001"},
		{"2021", "_2021"},
		{"café & bar", "caf____bar"},
	}
	for _, c := range cases {
		if got := SanitizeName(c.in); got != c.want {
			t.Errorf("SanitizeName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
	if got := SanitizeName(strings.Repeat("x", 80)); len(got) != 50 {
		t.Errorf("long name not capped: %d chars", len(got))
	}
}

func TestUSDOutput(t *testing.T) {
	cv := newTestConverter()
	cv.AddRelationship("LEGO_000001", "hasSegment", "Adult Collectors", 1.0)
	cv.AddRelationship("LEGO_000001", "livesIn", "Germany", 0.5)

	out := cv.USD()
	if !strings.HasPrefix(out, "#usda 1.0") {
		t.Fatal("missing usda header")
	}
	if got := strings.Count(out, "def Sphere"); got != 3 {
		t.Fatalf("sphere count = %d, want 3", got)
	}
	if got := strings.Count(out, "def Cylinder"); got != 2 {
		t.Fatalf("cylinder count = %d, want 2", got)
	}
	if !strings.Contains(out, `def Sphere "Node_0_LEGO_000001"`) {
		t.Fatal("missing consumer node prim")
	}
	if !strings.Contains(out, `custom string predicate = "hasSegment"`) {
		t.Fatal("missing predicate attribute")
	}
	// confidence above 0.8 is clamped for opacity but kept as metadata
	if !strings.Contains(out, "float inputs:opacity = 0.8") {
		t.Fatal("opacity not clamped to 0.8")
	}
	if !strings.Contains(out, `custom float confidence = 1`) {
		t.Fatal("confidence metadata missing")
	}
	if !strings.Contains(out, "custom int totalNodes = 3") {
		t.Fatal("metadata node count wrong")
	}
	if !strings.Contains(out, "custom int totalRelationships = 2") {
		t.Fatal("metadata relationship count wrong")
	}
}

func TestBuildMetadata(t *testing.T) {
	cv := newTestConverter()
	cv.AddRelationship("LEGO_000001", "hasSegment", "Adult Collectors", 1.0)
	now := time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC)

	meta := cv.BuildMetadata("run-123", 5000, now)
	if meta.RunID != "run-123" || meta.TotalTriplets != 5000 {
		t.Fatalf("metadata = %+v", meta)
	}
	if meta.VisualizedRelationships != 1 || meta.Nodes != 2 {
		t.Fatalf("counts = %+v", meta)
	}
	if len(meta.NodeTypes) != 2 || meta.NodeTypes[0] != "consumer" || meta.NodeTypes[1] != "segment" {
		t.Fatalf("node types = %v", meta.NodeTypes)
	}
	if meta.Created != "2025-01-02T03:04:05Z" {
		t.Fatalf("created = %q", meta.Created)
	}
}
