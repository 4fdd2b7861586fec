// Package scene converts triplet records into a static USD scene
// description: one sphere per distinct subject/object value, one
// cylinder per visualized relationship.
package scene

import (
	"math/rand"

	"consumer-behavior/internal/catalog"
)

// NodeType classifies a node for positioning, color and size.
type NodeType string

const (
	NodeConsumer  NodeType = "consumer"
	NodeSegment   NodeType = "segment"
	NodeRegion    NodeType = "region"
	NodeCountry   NodeType = "country"
	NodeCategory  NodeType = "category"
	NodeAttribute NodeType = "attribute"
)

// Node is the presentational 3D stand-in for a distinct triplet value.
// Positions are sampled fresh each run; nothing about them is stable
// across runs.
type Node struct {
	ID       int
	Label    string
	Type     NodeType
	Position [3]float64
	Color    [3]float64
	Size     float64
}

// Relationship links two registered nodes with the fact's predicate.
type Relationship struct {
	SubjectID  int
	ObjectID   int
	Predicate  string
	Confidence float64
	SubjectPos [3]float64
	ObjectPos  [3]float64
}

// Classifier resolves a node's type from the catalog tables instead of
// re-deriving it from string shape: exact membership for segments,
// regions, categories and countries, the consumer id prefix for
// consumers, attribute for everything else.
type Classifier struct {
	segments   map[string]struct{}
	regions    map[string]struct{}
	categories map[string]struct{}
	countries  map[string]struct{}
}

// NewClassifier builds the membership sets from the tables.
func NewClassifier(t catalog.Tables) Classifier {
	return Classifier{
		segments:   toSet(t.SegmentNames()),
		regions:    toSet(t.RegionNames()),
		categories: toSet(t.CategoryNames()),
		countries:  toSet(t.CountryNames()),
	}
}

const consumerIDPrefix = "LEGO_"

// TypeOf classifies a triplet subject/object label.
func (c Classifier) TypeOf(label string) NodeType {
	if len(label) >= len(consumerIDPrefix) && label[:len(consumerIDPrefix)] == consumerIDPrefix {
		return NodeConsumer
	}
	if _, ok := c.segments[label]; ok {
		return NodeSegment
	}
	if _, ok := c.regions[label]; ok {
		return NodeRegion
	}
	if _, ok := c.categories[label]; ok {
		return NodeCategory
	}
	if _, ok := c.countries[label]; ok {
		return NodeCountry
	}
	return NodeAttribute
}

func toSet(vals []string) map[string]struct{} {
	s := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// Converter accumulates nodes and relationships. Node registration is
// first-seen wins: a label already registered keeps its node.
type Converter struct {
	rng        *rand.Rand
	classifier Classifier
	nodes      map[string]*Node
	order      []string
	rels       []Relationship
}

// NewConverter returns an empty converter drawing positions from rng.
func NewConverter(rng *rand.Rand, classifier Classifier) *Converter {
	return &Converter{
		rng:        rng,
		classifier: classifier,
		nodes:      make(map[string]*Node),
	}
}

// AddRelationship registers both endpoint nodes (if new) and records
// the relationship between them.
func (cv *Converter) AddRelationship(subject, predicate, object string, confidence float64) {
	s := cv.addNode(subject)
	o := cv.addNode(object)
	cv.rels = append(cv.rels, Relationship{
		SubjectID:  s.ID,
		ObjectID:   o.ID,
		Predicate:  predicate,
		Confidence: confidence,
		SubjectPos: s.Position,
		ObjectPos:  o.Position,
	})
}

func (cv *Converter) addNode(label string) *Node {
	if n, ok := cv.nodes[label]; ok {
		return n
	}
	typ := cv.classifier.TypeOf(label)
	n := &Node{
		ID:       len(cv.order),
		Label:    label,
		Type:     typ,
		Position: cv.samplePosition(typ),
		Color:    colorFor(label),
		Size:     sizeFor(typ),
	}
	cv.nodes[label] = n
	cv.order = append(cv.order, label)
	return n
}

// Nodes returns the registered nodes in first-seen order.
func (cv *Converter) Nodes() []*Node {
	out := make([]*Node, 0, len(cv.order))
	for _, label := range cv.order {
		out = append(out, cv.nodes[label])
	}
	return out
}

// Relationships returns the recorded relationships in insertion order.
func (cv *Converter) Relationships() []Relationship { return cv.rels }

// NodeTypes returns the distinct node types in first-seen order.
func (cv *Converter) NodeTypes() []string {
	seen := map[NodeType]struct{}{}
	var out []string
	for _, label := range cv.order {
		t := cv.nodes[label].Type
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, string(t))
	}
	return out
}

// Predicates returns the distinct relationship predicates in first-seen
// order.
func (cv *Converter) Predicates() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, r := range cv.rels {
		if _, ok := seen[r.Predicate]; ok {
			continue
		}
		seen[r.Predicate] = struct{}{}
		out = append(out, r.Predicate)
	}
	return out
}

// Each node type lives in its own region of the scene: consumers spread
// wide at ground level, segments and regions float above, countries and
// categories sit below.
func (cv *Converter) samplePosition(t NodeType) [3]float64 {
	u := func() float64 { return cv.rng.Float64() }
	switch t {
	case NodeConsumer:
		return [3]float64{(u() - 0.5) * 20, (u() - 0.5) * 5, (u() - 0.5) * 20}
	case NodeSegment:
		return [3]float64{(u() - 0.5) * 8, 5 + u()*3, (u() - 0.5) * 8}
	case NodeRegion:
		return [3]float64{(u() - 0.5) * 6, 8 + u()*2, (u() - 0.5) * 6}
	case NodeCountry:
		return [3]float64{(u() - 0.5) * 12, -2 + u()*2, (u() - 0.5) * 12}
	case NodeCategory:
		return [3]float64{(u() - 0.5) * 10, -5 + u()*2, (u() - 0.5) * 10}
	default:
		return [3]float64{(u() - 0.5) * 15, (u() - 0.5) * 2, (u() - 0.5) * 15}
	}
}

var colorPrefixes = []struct {
	prefix string
	rgb    [3]float64
}{
	{"LEGO", [3]float64{0.2, 0.6, 1.0}},
	{"Adult", [3]float64{0.8, 0.2, 0.2}},
	{"Gift", [3]float64{0.8, 0.2, 0.2}},
	{"Serious", [3]float64{0.8, 0.2, 0.2}},
	{"Teens", [3]float64{0.8, 0.2, 0.2}},
	{"Parents", [3]float64{0.8, 0.2, 0.2}},
	{"North", [3]float64{0.2, 0.8, 0.2}},
	{"Europe", [3]float64{0.2, 0.8, 0.2}},
	{"Asia", [3]float64{0.2, 0.8, 0.2}},
	{"Emerging", [3]float64{0.2, 0.8, 0.2}},
}

var defaultColor = [3]float64{0.7, 0.7, 0.7}

func colorFor(label string) [3]float64 {
	for _, c := range colorPrefixes {
		if len(label) >= len(c.prefix) && label[:len(c.prefix)] == c.prefix {
			return c.rgb
		}
	}
	return defaultColor
}

func sizeFor(t NodeType) float64 {
	switch t {
	case NodeConsumer:
		return 0.05
	case NodeSegment:
		return 0.15
	case NodeRegion:
		return 0.12
	case NodeCountry:
		return 0.08
	case NodeCategory:
		return 0.10
	default:
		return 0.06
	}
}

// ShouldVisualize is the selection policy for which triplet records
// become rendered relationships: every sampleEvery-th record by stream
// order, plus every demographic, geographic or behavioral fact. The
// stride keeps the rendered set bounded regardless of input size.
func ShouldVisualize(index, sampleEvery int, tripletType string) bool {
	if sampleEvery > 0 && index%sampleEvery == 0 {
		return true
	}
	switch tripletType {
	case "demographic", "geographic", "behavioral":
		return true
	}
	return false
}
