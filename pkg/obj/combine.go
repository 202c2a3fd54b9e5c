package obj

// CombineMeshes concatenates each LOD's meshes into a single
// draw-call-friendly mesh: vertices appended verbatim, indices offset
// by the running base-vertex count. Metadata comes from the LOD's first
// mesh. LODs are visited in plan order.
func CombineMeshes(s *State) {
	for _, f := range s.Plan {
		lod := s.Meshes[f.LODLevel]
		if len(lod) == 0 {
			continue
		}

		combined := Mesh{
			Name:       lod[0].Name,
			Material:   lod[0].Material,
			MeshNumber: lod[0].MeshNumber,
			LODLevel:   lod[0].LODLevel,
		}

		totalVertices, totalIndices := 0, 0
		for i := range lod {
			totalVertices += len(lod[i].Vertices)
			totalIndices += len(lod[i].Indices)
		}
		combined.Vertices = make([]Vertex, 0, totalVertices)
		combined.Indices = make([]uint32, 0, totalIndices)

		baseVertex := uint32(0)
		for i := range lod {
			for _, idx := range lod[i].Indices {
				combined.Indices = append(combined.Indices, idx+baseVertex)
			}
			combined.Vertices = append(combined.Vertices, lod[i].Vertices...)
			baseVertex += uint32(len(lod[i].Vertices))
		}

		s.Combined = append(s.Combined, combined)
	}
}
