package obj

// ConstructVertices expands each object's face-index triples into a
// flat triangle soup: one vertex per corner, sequential indices. Real
// topology is recovered later by JoinIdenticalVertices; a caller that
// skips it receives the soup as-is.
//
// Corners referencing a texcoord or normal slot the file never supplied
// read as zero.
func ConstructVertices(s *State, meshes []Mesh) {
	for a := range s.temp {
		if a >= len(meshes) {
			break
		}
		tm := &s.temp[a]

		meshes[a].Vertices = make([]Vertex, 0, len(tm.Faces))
		meshes[a].Indices = make([]uint32, 0, len(tm.Faces))

		for i, f := range tm.Faces {
			var v Vertex
			if int(f[0]) < len(tm.Positions) {
				v.Position = tm.Positions[f[0]]
			}
			if int(f[1]) < len(tm.TexCoords) {
				v.TexCoord = tm.TexCoords[f[1]]
			}
			if int(f[2]) < len(tm.Normals) {
				v.Normal = tm.Normals[f[2]]
			}

			meshes[a].Vertices = append(meshes[a].Vertices, v)
			meshes[a].Indices = append(meshes[a].Indices, uint32(i))
		}
	}
}
