package obj

import (
	"testing"

	"github.com/Faultbox/objloader/pkg/math"
)

func twoMeshState(t *testing.T) *State {
	t.Helper()
	s := parseFixture(t, `o First
usemtl stone
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
o Second
v 0 0 1
v 1 0 1
v 0 1 1
v 1 1 1
f 4 5 6
f 5 7 6
`)
	s.Plan = []File{{ObjPath: "test.obj", LODLevel: 0}}
	ConstructVertices(s, s.Meshes[0])
	JoinIdenticalVertices(s.Meshes[0])
	return s
}

func TestCombineMeshes(t *testing.T) {
	s := twoMeshState(t)
	CombineMeshes(s)

	if len(s.Combined) != 1 {
		t.Fatalf("combined = %d, want 1", len(s.Combined))
	}
	c := s.Combined[0]

	lod := s.Meshes[0]
	wantIndices, wantVertices := 0, 0
	for i := range lod {
		wantIndices += len(lod[i].Indices)
		wantVertices += len(lod[i].Vertices)
	}

	if len(c.Indices) != wantIndices {
		t.Errorf("combined indices = %d, want %d", len(c.Indices), wantIndices)
	}
	if len(c.Vertices) != wantVertices {
		t.Errorf("combined vertices = %d, want %d", len(c.Vertices), wantVertices)
	}

	for _, idx := range c.Indices {
		if int(idx) >= len(c.Vertices) {
			t.Fatalf("index %d out of range (%d vertices)", idx, len(c.Vertices))
		}
	}

	// metadata comes from the first mesh
	if c.Name != lod[0].Name || c.Material != lod[0].Material {
		t.Errorf("metadata = %q/%q, want from first mesh", c.Name, c.Material)
	}

	// the second mesh's triangles must reference its own vertices
	base := uint32(len(lod[0].Vertices))
	secondStart := len(lod[0].Indices)
	for i, idx := range c.Indices[secondStart:] {
		if idx != lod[1].Indices[i]+base {
			t.Fatalf("offset wrong at %d: %d != %d+%d", i, idx, lod[1].Indices[i], base)
		}
	}
}

func TestCombinePreservesGeometry(t *testing.T) {
	s := twoMeshState(t)
	lod := s.Meshes[0]
	CombineMeshes(s)
	c := s.Combined[0]

	// every source triangle must appear verbatim in the combined mesh
	var source []math.Vec3
	for m := range lod {
		for _, idx := range lod[m].Indices {
			source = append(source, lod[m].Vertices[idx].Position)
		}
	}

	for i, idx := range c.Indices {
		if c.Vertices[idx].Position != source[i] {
			t.Fatalf("corner %d: %+v != %+v", i, c.Vertices[idx].Position, source[i])
		}
	}
}

func TestCombinePerLod(t *testing.T) {
	s := NewState("test.obj", None)
	s.Plan = []File{
		{ObjPath: "a.obj", LODLevel: 0},
		{ObjPath: "a_lod1.obj", LODLevel: 1},
	}

	for _, lod := range []uint32{0, 1} {
		if err := ParseObj(s, []byte("o M\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), lod); err != nil {
			t.Fatalf("ParseObj lod %d: %v", lod, err)
		}
		ConstructVertices(s, s.Meshes[lod])
	}

	CombineMeshes(s)

	if len(s.Combined) != 2 {
		t.Fatalf("combined = %d, want one per LOD", len(s.Combined))
	}
	if s.Combined[0].LODLevel != 0 || s.Combined[1].LODLevel != 1 {
		t.Errorf("combined lod levels = %d, %d", s.Combined[0].LODLevel, s.Combined[1].LODLevel)
	}
}
