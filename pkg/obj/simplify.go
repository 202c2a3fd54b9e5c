package obj

import "github.com/fogleman/simplify"

// SimplifyMesh returns a decimated copy of the mesh holding roughly
// factor (0..1] of its triangles. Decimation works on positions only:
// texture coordinates are dropped and normals are rebuilt flat per
// face, which is acceptable for the distant geometry synthesized LODs
// are meant for. The result is deduplicated and indexed.
func SimplifyMesh(m *Mesh, factor float64) Mesh {
	tris := make([]*simplify.Triangle, 0, m.TriangleCount())
	for i := 0; i+2 < len(m.Indices); i += 3 {
		p0 := m.Vertices[m.Indices[i]].Position
		p1 := m.Vertices[m.Indices[i+1]].Position
		p2 := m.Vertices[m.Indices[i+2]].Position
		tris = append(tris, simplify.NewTriangle(
			simplify.Vector{X: float64(p0.X), Y: float64(p0.Y), Z: float64(p0.Z)},
			simplify.Vector{X: float64(p1.X), Y: float64(p1.Y), Z: float64(p1.Z)},
			simplify.Vector{X: float64(p2.X), Y: float64(p2.Y), Z: float64(p2.Z)},
		))
	}

	decimated := simplify.NewMesh(tris).Simplify(factor)

	out := Mesh{
		Name:       m.Name,
		Material:   m.Material,
		LODLevel:   m.LODLevel,
		MeshNumber: m.MeshNumber,
	}
	out.Vertices = make([]Vertex, 0, len(decimated.Triangles)*3)
	out.Indices = make([]uint32, 0, len(decimated.Triangles)*3)

	for _, t := range decimated.Triangles {
		corners := [3]simplify.Vector{t.V1, t.V2, t.V3}
		n := t.Normal()

		for _, c := range corners {
			v := Vertex{}
			v.Position.X = float32(c.X)
			v.Position.Y = float32(c.Y)
			v.Position.Z = float32(c.Z)
			v.Normal.X = float32(n.X)
			v.Normal.Y = float32(n.Y)
			v.Normal.Z = float32(n.Z)
			out.Indices = append(out.Indices, uint32(len(out.Vertices)))
			out.Vertices = append(out.Vertices, v)
		}
	}

	single := []Mesh{out}
	JoinIdenticalVertices(single)
	return single[0]
}

// GenerateLOD synthesizes a LOD level by decimating every mesh of
// srcLevel and storing the results at dstLevel. Existing meshes at
// dstLevel are replaced.
func (m *Model) GenerateLOD(srcLevel, dstLevel uint32, factor float64) bool {
	src := m.LOD(srcLevel)
	if len(src) == 0 {
		return false
	}

	out := make([]Mesh, 0, len(src))
	for i := range src {
		lod := SimplifyMesh(&src[i], factor)
		lod.LODLevel = dstLevel
		out = append(out, lod)
	}

	if m.Meshes == nil {
		m.Meshes = make(map[uint32][]Mesh)
	}
	m.Meshes[dstLevel] = out
	return true
}
