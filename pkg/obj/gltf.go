package obj

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/qmuntal/gltf"
)

const gltfVersion = "2.0"

// ExportGLTF builds a glTF 2.0 document from one LOD of the model.
// Every mesh becomes a node with indexed POSITION / NORMAL /
// TEXCOORD_0 / TANGENT attributes; materials are emitted by name and
// referenced from the primitives.
func ExportGLTF(model *Model, lodLevel uint32) (*gltf.Document, error) {
	meshes := model.LOD(lodLevel)
	if len(meshes) == 0 {
		return nil, fmt.Errorf("obj: no meshes at lod %d", lodLevel)
	}

	doc := &gltf.Document{}
	doc.Asset.Version = gltfVersion
	scene := uint32(0)
	doc.Scene = &scene
	doc.Scenes = append(doc.Scenes, &gltf.Scene{})
	doc.Buffers = append(doc.Buffers, &gltf.Buffer{})

	materialIndex := buildGltfMaterials(doc, model.Materials[lodLevel])

	for i := range meshes {
		if err := buildGltfMesh(doc, &meshes[i], materialIndex); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// EncodeGLB serializes the document as binary glTF with the buffer
// embedded as the BIN chunk.
func EncodeGLB(doc *gltf.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := gltf.NewEncoder(&buf)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildGltfMaterials(doc *gltf.Document, materials []Material) map[string]uint32 {
	index := make(map[string]uint32, len(materials))
	for i := range materials {
		m := &materials[i]
		gm := &gltf.Material{
			Name:        m.Name,
			DoubleSided: false,
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: &[4]float32{1, 1, 1, 1},
			},
		}
		index[m.Name] = uint32(len(doc.Materials))
		doc.Materials = append(doc.Materials, gm)
	}
	return index
}

func buildGltfMesh(doc *gltf.Document, mesh *Mesh, materialIndex map[string]uint32) error {
	buffer := doc.Buffers[0]
	var buf bytes.Buffer

	appendView := func(data any) (uint32, error) {
		start := buf.Len()
		if err := binary.Write(&buf, binary.LittleEndian, data); err != nil {
			return 0, err
		}
		view := &gltf.BufferView{
			Buffer:     0,
			ByteOffset: buffer.ByteLength + uint32(start),
			ByteLength: uint32(buf.Len() - start),
		}
		idx := uint32(len(doc.BufferViews))
		doc.BufferViews = append(doc.BufferViews, view)
		return idx, nil
	}

	positions := make([][3]float32, len(mesh.Vertices))
	normals := make([][3]float32, len(mesh.Vertices))
	texCoords := make([][2]float32, len(mesh.Vertices))
	tangents := make([][4]float32, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		positions[i] = [3]float32{v.Position.X, v.Position.Y, v.Position.Z}
		normals[i] = [3]float32{v.Normal.X, v.Normal.Y, v.Normal.Z}
		texCoords[i] = [2]float32{v.TexCoord.X, v.TexCoord.Y}
		tangents[i] = [4]float32{v.Tangent.X, v.Tangent.Y, v.Tangent.Z, v.Tangent.W}
	}

	indexView, err := appendView(mesh.Indices)
	if err != nil {
		return err
	}
	posView, err := appendView(positions)
	if err != nil {
		return err
	}
	normalView, err := appendView(normals)
	if err != nil {
		return err
	}
	texView, err := appendView(texCoords)
	if err != nil {
		return err
	}
	tangentView, err := appendView(tangents)
	if err != nil {
		return err
	}

	buffer.ByteLength += uint32(buf.Len())
	buffer.Data = append(buffer.Data, buf.Bytes()...)

	minPos, maxPos := positionBounds(positions)

	addAccessor := func(view uint32, componentType gltf.ComponentType, accessorType gltf.AccessorType, count uint32) uint32 {
		acc := &gltf.Accessor{
			BufferView:    &view,
			ComponentType: componentType,
			Type:          accessorType,
			Count:         count,
		}
		idx := uint32(len(doc.Accessors))
		doc.Accessors = append(doc.Accessors, acc)
		return idx
	}

	indexAcc := addAccessor(indexView, gltf.ComponentUint, gltf.AccessorScalar, uint32(len(mesh.Indices)))
	posAcc := addAccessor(posView, gltf.ComponentFloat, gltf.AccessorVec3, uint32(len(positions)))
	doc.Accessors[posAcc].Min = minPos
	doc.Accessors[posAcc].Max = maxPos
	normalAcc := addAccessor(normalView, gltf.ComponentFloat, gltf.AccessorVec3, uint32(len(normals)))
	texAcc := addAccessor(texView, gltf.ComponentFloat, gltf.AccessorVec2, uint32(len(texCoords)))
	tangentAcc := addAccessor(tangentView, gltf.ComponentFloat, gltf.AccessorVec4, uint32(len(tangents)))

	primitive := &gltf.Primitive{
		Mode:    gltf.PrimitiveTriangles,
		Indices: &indexAcc,
		Attributes: gltf.Attribute{
			"POSITION":   posAcc,
			"NORMAL":     normalAcc,
			"TEXCOORD_0": texAcc,
			"TANGENT":    tangentAcc,
		},
	}
	if mi, ok := materialIndex[mesh.Material]; ok {
		m := mi
		primitive.Material = &m
	}

	gm := &gltf.Mesh{
		Name:       mesh.Name,
		Primitives: []*gltf.Primitive{primitive},
	}
	meshIdx := uint32(len(doc.Meshes))
	doc.Meshes = append(doc.Meshes, gm)

	node := &gltf.Node{Name: mesh.Name, Mesh: &meshIdx}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)))
	doc.Nodes = append(doc.Nodes, node)

	return nil
}

func positionBounds(positions [][3]float32) (minPos, maxPos []float32) {
	if len(positions) == 0 {
		return nil, nil
	}
	minPos = []float32{positions[0][0], positions[0][1], positions[0][2]}
	maxPos = []float32{positions[0][0], positions[0][1], positions[0][2]}
	for _, p := range positions[1:] {
		for c := 0; c < 3; c++ {
			if p[c] < minPos[c] {
				minPos[c] = p[c]
			}
			if p[c] > maxPos[c] {
				maxPos[c] = p[c]
			}
		}
	}
	return minPos, maxPos
}
