package obj

// JoinIdenticalVertices collapses vertices that agree on every
// component after quantization. The index list is rewritten in place
// order, so triangle orientation survives; the first occurrence of each
// equivalence class keeps its original unquantized values.
func JoinIdenticalVertices(meshes []Mesh) {
	type slot struct {
		key   quantKey
		index uint32
	}

	for m := range meshes {
		mesh := &meshes[m]
		if len(mesh.Vertices) == 0 {
			continue
		}

		buckets := make(map[uint32][]slot, len(mesh.Vertices))
		newVertices := make([]Vertex, 0, len(mesh.Vertices))
		newIndices := make([]uint32, 0, len(mesh.Indices))

		for _, idx := range mesh.Indices {
			v := mesh.Vertices[idx]
			k := v.key()
			h := v.Hash()

			reused := false
			for _, s := range buckets[h] {
				if s.key == k {
					newIndices = append(newIndices, s.index)
					reused = true
					break
				}
			}
			if reused {
				continue
			}

			next := uint32(len(newVertices))
			newVertices = append(newVertices, v)
			buckets[h] = append(buckets[h], slot{key: k, index: next})
			newIndices = append(newIndices, next)
		}

		mesh.Vertices = newVertices
		mesh.Indices = newIndices
	}
}
