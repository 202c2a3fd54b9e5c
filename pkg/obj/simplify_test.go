package obj

import (
	"fmt"
	"strings"
	"testing"
)

// gridObj builds an n x n subdivided plane as OBJ text.
func gridObj(n int) string {
	var b strings.Builder
	b.WriteString("o Grid\n")
	for y := 0; y <= n; y++ {
		for x := 0; x <= n; x++ {
			fmt.Fprintf(&b, "v %d %d 0\n", x, y)
		}
	}
	stride := n + 1
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			i := y*stride + x + 1 // 1-based
			fmt.Fprintf(&b, "f %d %d %d\n", i, i+1, i+stride)
			fmt.Fprintf(&b, "f %d %d %d\n", i+1, i+stride+1, i+stride)
		}
	}
	return b.String()
}

func gridMesh(t *testing.T, n int) []Mesh {
	t.Helper()
	s := parseFixture(t, gridObj(n))
	meshes := s.Meshes[0]
	ConstructVertices(s, meshes)
	JoinIdenticalVertices(meshes)
	return meshes
}

func TestSimplifyReducesTriangles(t *testing.T) {
	meshes := gridMesh(t, 8)
	before := meshes[0].TriangleCount()

	out := SimplifyMesh(&meshes[0], 0.25)

	after := out.TriangleCount()
	if after == 0 {
		t.Fatal("simplification produced no triangles")
	}
	if after >= before {
		t.Errorf("triangles = %d, want < %d", after, before)
	}

	for _, idx := range out.Indices {
		if int(idx) >= len(out.Vertices) {
			t.Fatalf("index %d out of range (%d vertices)", idx, len(out.Vertices))
		}
	}
}

func TestSimplifyKeepsMetadata(t *testing.T) {
	meshes := gridMesh(t, 4)
	meshes[0].Material = "stone"

	out := SimplifyMesh(&meshes[0], 0.5)

	if out.Name != "Grid" || out.Material != "stone" {
		t.Errorf("metadata = %q/%q", out.Name, out.Material)
	}
}

func TestGenerateLOD(t *testing.T) {
	meshes := gridMesh(t, 8)
	model := &Model{Meshes: map[uint32][]Mesh{0: meshes}}

	if !model.GenerateLOD(0, 1, 0.25) {
		t.Fatal("GenerateLOD returned false")
	}

	lod1 := model.LOD(1)
	if len(lod1) != 1 {
		t.Fatalf("lod1 meshes = %d, want 1", len(lod1))
	}
	if lod1[0].LODLevel != 1 {
		t.Errorf("LODLevel = %d, want 1", lod1[0].LODLevel)
	}
	if lod1[0].TriangleCount() >= meshes[0].TriangleCount() {
		t.Errorf("lod1 triangles = %d, want fewer than %d",
			lod1[0].TriangleCount(), meshes[0].TriangleCount())
	}
}

func TestGenerateLODMissingSource(t *testing.T) {
	model := &Model{}
	if model.GenerateLOD(0, 1, 0.5) {
		t.Error("GenerateLOD should fail without source meshes")
	}
}
