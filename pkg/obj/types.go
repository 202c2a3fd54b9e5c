// Package obj parses Wavefront OBJ and MTL assets into indexed triangle
// meshes with tangent-space attributes, level-of-detail variants and
// per-material texture map lists.
package obj

import (
	stdmath "math"

	"github.com/Faultbox/objloader/pkg/math"
)

// Flag selects optional processing stages.
type Flag uint8

const (
	None              Flag = 0
	CalculateTangents Flag = 1 << 0
	JoinIdentical     Flag = 1 << 1
	CombineMeshes     Flag = 1 << 2
	Lods              Flag = 1 << 3
)

// Has reports whether all bits of other are set in f.
func (f Flag) Has(other Flag) bool {
	return f&other == other
}

// quantScale maps a float component to its quantized integer form used
// for vertex identity. 1e5 collapses near-duplicates within 1e-5 while
// keeping distinct vertices apart.
const quantScale = 100000

// Quantize returns round(v * 1e5) as the canonical integer form of a
// vertex component.
func Quantize(v float32) int32 {
	return int32(stdmath.Round(float64(v) * quantScale))
}

// Vertex is a single mesh vertex. Tangent W stores the ±1 handedness
// that reconstructs the bitangent as cross(Normal, Tangent) * W.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	TexCoord math.Vec2
	Tangent  math.Vec4
}

// quantKey is the twelve quantized components of a vertex, the identity
// used by deduplication.
type quantKey [12]int32

func (v Vertex) key() quantKey {
	return quantKey{
		Quantize(v.Position.X), Quantize(v.Position.Y), Quantize(v.Position.Z),
		Quantize(v.Normal.X), Quantize(v.Normal.Y), Quantize(v.Normal.Z),
		Quantize(v.TexCoord.X), Quantize(v.TexCoord.Y),
		Quantize(v.Tangent.X), Quantize(v.Tangent.Y), Quantize(v.Tangent.Z), Quantize(v.Tangent.W),
	}
}

// Hash combines the quantized components with a golden-ratio mix.
func (v Vertex) Hash() uint32 {
	var h uint32
	for _, q := range v.key() {
		h ^= uint32(q) + 0x9e3779b9 + (h << 6) + (h >> 2)
	}
	return h
}

// ApproxEqual reports componentwise equality within 1e-6.
func (v Vertex) ApproxEqual(other Vertex) bool {
	const eps = 1e-6
	abs := func(f float32) float32 {
		if f < 0 {
			return -f
		}
		return f
	}
	diff := [12]float32{
		v.Position.X - other.Position.X, v.Position.Y - other.Position.Y, v.Position.Z - other.Position.Z,
		v.Normal.X - other.Normal.X, v.Normal.Y - other.Normal.Y, v.Normal.Z - other.Normal.Z,
		v.TexCoord.X - other.TexCoord.X, v.TexCoord.Y - other.TexCoord.Y,
		v.Tangent.X - other.Tangent.X, v.Tangent.Y - other.Tangent.Y, v.Tangent.Z - other.Tangent.Z,
		v.Tangent.W - other.Tangent.W,
	}
	for _, d := range diff {
		if abs(d) >= eps {
			return false
		}
	}
	return true
}

// Less orders vertices lexicographically over their quantized components.
func (v Vertex) Less(other Vertex) bool {
	a, b := v.key(), other.key()
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Mesh is one `o` block of an OBJ file after assembly: a flat vertex
// list and an index list forming consecutive triangles.
type Mesh struct {
	Name       string
	Material   string
	LODLevel   uint32
	MeshNumber int

	Vertices []Vertex
	Indices  []uint32
}

// TriangleCount returns the number of triangles addressed by the index list.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Material holds the texture map filenames referenced by one newmtl
// block. IsTiled is set when any UV range observed for the material
// exceeds 1.0 in either axis.
type Material struct {
	Name     string
	Diffuse  []string
	Specular []string
	Normal   []string
	Height   []string
	IsTiled  bool
}

// Model is the result of one load: per-LOD meshes and materials, the
// optional combined meshes, and the originating path.
type Model struct {
	Meshes    map[uint32][]Mesh
	Materials map[uint32][]Material
	Combined  []Mesh
	Path      string
}

// LOD returns the meshes at the given level, or nil.
func (m *Model) LOD(level uint32) []Mesh {
	return m.Meshes[level]
}

// TotalVertexCount returns the vertex count summed over every LOD.
func (m *Model) TotalVertexCount() int {
	total := 0
	for _, meshes := range m.Meshes {
		for i := range meshes {
			total += len(meshes[i].Vertices)
		}
	}
	return total
}

// TotalTriangleCount returns the triangle count summed over every LOD.
func (m *Model) TotalTriangleCount() int {
	total := 0
	for _, meshes := range m.Meshes {
		for i := range meshes {
			total += meshes[i].TriangleCount()
		}
	}
	return total
}
