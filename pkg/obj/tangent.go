package obj

import "github.com/Faultbox/objloader/pkg/math"

// tangentEps is the magnitude below which an accumulated tangent or a
// per-triangle contribution counts as degenerate.
const tangentEps = 1e-10

// CalcTangentSpace computes per-vertex tangents for every mesh. Each
// triangle's tangent and bitangent are weighted by its area and
// accumulated on its three vertices; after the sweep each tangent is
// Gram-Schmidt reorthogonalized against the vertex normal and the
// handedness recovered from the accumulated bitangent lands in W.
//
// Bitangents are not stored; consumers reconstruct them as
// cross(N, T) * W.
func CalcTangentSpace(meshes []Mesh) {
	for m := range meshes {
		mesh := &meshes[m]
		bitangents := make([]math.Vec3, len(mesh.Vertices))

		for i := 0; i+2 < len(mesh.Indices); i += 3 {
			i0, i1, i2 := mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2]
			v0 := &mesh.Vertices[i0]
			v1 := &mesh.Vertices[i1]
			v2 := &mesh.Vertices[i2]

			e1 := v1.Position.Sub(v0.Position)
			e2 := v2.Position.Sub(v0.Position)
			d1 := v1.TexCoord.Sub(v0.TexCoord)
			d2 := v2.TexCoord.Sub(v0.TexCoord)

			denom := d1.X*d2.Y - d2.X*d1.Y
			if denom == 0 {
				continue
			}
			f := 1 / denom

			tangent := e1.Scale(d2.Y * f).Sub(e2.Scale(d1.Y * f))
			bitangent := e2.Scale(d1.X * f).Sub(e1.Scale(d2.X * f))

			if !tangent.IsFinite() || !bitangent.IsFinite() ||
				tangent.Length() < tangentEps || bitangent.Length() < tangentEps {
				continue
			}

			area := e1.Cross(e2).Length() / 2

			tw := tangent.Scale(area)
			bw := bitangent.Scale(area)

			v0.Tangent = v0.Tangent.Add(math.FromVec3(tw, 0))
			v1.Tangent = v1.Tangent.Add(math.FromVec3(tw, 0))
			v2.Tangent = v2.Tangent.Add(math.FromVec3(tw, 0))
			bitangents[i0] = bitangents[i0].Add(bw)
			bitangents[i1] = bitangents[i1].Add(bw)
			bitangents[i2] = bitangents[i2].Add(bw)
		}

		for i := range mesh.Vertices {
			v := &mesh.Vertices[i]
			n := v.Normal
			acc := v.Tangent.XYZ()

			var t math.Vec3
			if acc.Length() > tangentEps {
				// Gram-Schmidt orthogonalize against the normal
				t = acc.Sub(n.Scale(n.Dot(acc))).Normalize()
			} else {
				t = math.Vec3{X: 1}
			}

			handedness := float32(1)
			if n.Cross(t).Dot(bitangents[i]) < 0 {
				handedness = -1
			}

			v.Tangent = math.FromVec3(t, handedness)
		}
	}
}
