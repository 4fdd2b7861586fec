package scene

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Metadata is the JSON sidecar written next to the USD file.
type Metadata struct {
	Title                   string   `json:"title"`
	Description             string   `json:"description"`
	RunID                   string   `json:"runId"`
	TotalTriplets           int      `json:"totalTriplets"`
	VisualizedRelationships int      `json:"visualizedRelationships"`
	Nodes                   int      `json:"nodes"`
	NodeTypes               []string `json:"nodeTypes"`
	Predicates              []string `json:"predicates"`
	Generator               string   `json:"generator"`
	Created                 string   `json:"created"`
	Format                  string   `json:"format"`
	Software                string   `json:"software"`
}

const generatorName = "Consumer Behavior Analysis Framework"

// BuildMetadata fills the sidecar from the converter state.
func (cv *Converter) BuildMetadata(runID string, totalTriplets int, now time.Time) Metadata {
	return Metadata{
		Title:                   "Consumer Profile Triplets Network",
		Description:             "3D visualization of consumer behavior relationships extracted from LEGO customer data",
		RunID:                   runID,
		TotalTriplets:           totalTriplets,
		VisualizedRelationships: len(cv.rels),
		Nodes:                   len(cv.order),
		NodeTypes:               cv.NodeTypes(),
		Predicates:              cv.Predicates(),
		Generator:               generatorName,
		Created:                 now.UTC().Format(time.RFC3339),
		Format:                  "USD (Universal Scene Description)",
		Software:                "Compatible with USD-enabled 3D software (Blender, Maya, Houdini, etc.)",
	}
}

// USD renders the scene description: the node and relationship scopes,
// a fixed lighting and camera rig, and a metadata prim with summary
// counts.
func (cv *Converter) USD() string {
	var b strings.Builder
	b.WriteString(`#usda 1.0
(
    defaultPrim = "TripletNetwork"
    upAxis = "Y"
)

def Xform "TripletNetwork"
{
    def Scope "Nodes"
    {
`)
	cv.writeNodes(&b)
	b.WriteString(`
    }

    def Scope "Relationships"
    {
`)
	cv.writeRelationships(&b)
	b.WriteString(`
    }

    def Scope "Lighting"
    {
        def DomeLight "DomeLight"
        {
            float intensity = 1.0
        }

        def DistantLight "KeyLight"
        {
            float intensity = 3.0
            float3 xformOp:rotateXYZ = (45, 45, 0)
            uniform token[] xformOpOrder = ["xformOp:rotateXYZ"]
        }
    }

    def Camera "Camera"
    {
        double3 xformOp:translate = (25, 15, 25)
        float3 xformOp:rotateXYZ = (-15, 45, 0)
        uniform token[] xformOpOrder = ["xformOp:translate", "xformOp:rotateXYZ"]

        float focalLength = 50
        float focusDistance = 30
    }
}

def "Metadata"
{
`)
	fmt.Fprintf(&b, "    custom string description = %q\n", "Consumer Profile Triplets Network Visualization")
	fmt.Fprintf(&b, "    custom int totalNodes = %d\n", len(cv.order))
	fmt.Fprintf(&b, "    custom int totalRelationships = %d\n", len(cv.rels))
	b.WriteString(`    custom string[] nodeTypes = ["consumer", "segment", "region", "country", "category", "attribute"]
`)
	fmt.Fprintf(&b, "    custom string generator = %q\n", generatorName)
	b.WriteString(`    custom string version = "1.0"
}
`)
	return b.String()
}

func (cv *Converter) writeNodes(b *strings.Builder) {
	for _, label := range cv.order {
		n := cv.nodes[label]
		safe := SanitizeName(n.Label)
		prim := fmt.Sprintf("Node_%d_%s", n.ID, safe)
		size := trimFloat(n.Size)

		fmt.Fprintf(b, "\n        def Sphere %q\n        {\n", prim)
		fmt.Fprintf(b, "            double3 xformOp:translate = (%.3f, %.3f, %.3f)\n",
			n.Position[0], n.Position[1], n.Position[2])
		fmt.Fprintf(b, "            double3 xformOp:scale = (%s, %s, %s)\n", size, size, size)
		b.WriteString("            uniform token[] xformOpOrder = [\"xformOp:translate\", \"xformOp:scale\"]\n\n")
		b.WriteString("            def Material \"NodeMaterial\"\n            {\n")
		fmt.Fprintf(b, "                token outputs:surface.connect = </TripletNetwork/Nodes/%s/NodeMaterial/PBRShader.outputs:surface>\n\n", prim)
		b.WriteString("                def Shader \"PBRShader\"\n                {\n")
		b.WriteString("                    uniform token info:id = \"UsdPreviewSurface\"\n")
		fmt.Fprintf(b, "                    color3f inputs:diffuseColor = (%s, %s, %s)\n",
			trimFloat(n.Color[0]), trimFloat(n.Color[1]), trimFloat(n.Color[2]))
		b.WriteString("                    float inputs:metallic = 0.1\n")
		b.WriteString("                    float inputs:roughness = 0.4\n")
		b.WriteString("                    token outputs:surface\n                }\n            }\n\n")
		fmt.Fprintf(b, "            rel material:binding = </TripletNetwork/Nodes/%s/NodeMaterial>\n\n", prim)
		fmt.Fprintf(b, "            custom string nodeLabel = %q\n", n.Label)
		fmt.Fprintf(b, "            custom string nodeType = %q\n", string(n.Type))
		fmt.Fprintf(b, "            custom int nodeId = %d\n        }", n.ID)
	}
}

func (cv *Converter) writeRelationships(b *strings.Builder) {
	for i, r := range cv.rels {
		mid := [3]float64{
			(r.SubjectPos[0] + r.ObjectPos[0]) / 2,
			(r.SubjectPos[1] + r.ObjectPos[1]) / 2,
			(r.SubjectPos[2] + r.ObjectPos[2]) / 2,
		}
		dx := r.ObjectPos[0] - r.SubjectPos[0]
		dy := r.ObjectPos[1] - r.SubjectPos[1]
		dz := r.ObjectPos[2] - r.SubjectPos[2]
		distance := math.Sqrt(dx*dx + dy*dy + dz*dz)
		alpha := math.Min(r.Confidence, 0.8)

		prim := fmt.Sprintf("Relationship_%d", i)
		fmt.Fprintf(b, "\n        def Cylinder %q\n        {\n", prim)
		fmt.Fprintf(b, "            double3 xformOp:translate = (%.3f, %.3f, %.3f)\n", mid[0], mid[1], mid[2])
		fmt.Fprintf(b, "            double3 xformOp:scale = (0.02, %.3f, 0.02)\n", distance/2)
		b.WriteString("            uniform token[] xformOpOrder = [\"xformOp:translate\", \"xformOp:scale\"]\n\n")
		b.WriteString("            def Material \"RelationshipMaterial\"\n            {\n")
		fmt.Fprintf(b, "                token outputs:surface.connect = </TripletNetwork/Relationships/%s/RelationshipMaterial/PBRShader.outputs:surface>\n\n", prim)
		b.WriteString("                def Shader \"PBRShader\"\n                {\n")
		b.WriteString("                    uniform token info:id = \"UsdPreviewSurface\"\n")
		b.WriteString("                    color3f inputs:diffuseColor = (0.6, 0.6, 0.6)\n")
		fmt.Fprintf(b, "                    float inputs:opacity = %s\n", trimFloat(alpha))
		b.WriteString("                    float inputs:metallic = 0.8\n")
		b.WriteString("                    float inputs:roughness = 0.2\n")
		b.WriteString("                    token outputs:surface\n                }\n            }\n\n")
		fmt.Fprintf(b, "            rel material:binding = </TripletNetwork/Relationships/%s/RelationshipMaterial>\n\n", prim)
		fmt.Fprintf(b, "            custom string predicate = %q\n", r.Predicate)
		fmt.Fprintf(b, "            custom float confidence = %s\n", trimFloat(r.Confidence))
		fmt.Fprintf(b, "            custom int subjectNodeId = %d\n", r.SubjectID)
		fmt.Fprintf(b, "            custom int objectNodeId = %d\n        }", r.ObjectID)
	}
}

var (
	usdUnsafe     = regexp.MustCompile(`[^a-zA-Z0-9_]`)
	usdLeadsDigit = regexp.MustCompile(`^\d`)
)

// SanitizeName turns an arbitrary label into a valid USD prim name
// fragment: alphanumerics and underscores only, no leading digit,
// capped at 50 characters.
func SanitizeName(name string) string {
	s := usdUnsafe.ReplaceAllString(name, "_")
	if usdLeadsDigit.MatchString(s) {
		s = "_" + s
	}
	if len(s) > 50 {
		s = s[:50]
	}
	return s
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
