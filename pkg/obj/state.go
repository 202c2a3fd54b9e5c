package obj

import "github.com/Faultbox/objloader/pkg/math"

// File is one entry of the load plan: the OBJ and sibling MTL paths for
// a single LOD level. MtlLib records the mtllib name seen while parsing.
type File struct {
	ObjPath  string
	MtlPath  string
	LODLevel uint32
	MtlLib   string
}

// faceIndex is one corner of a face: 0-based, object-rebased indices
// into the temp position / texcoord / normal arrays.
type faceIndex [3]uint32

// TempMesh is per-object parser scratch, discarded once vertices are
// assembled.
type TempMesh struct {
	Positions []math.Vec3
	TexCoords []math.Vec2
	Normals   []math.Vec3
	Faces     []faceIndex
}

// State carries everything a single load owns: the plan, per-LOD mesh
// and material vectors, combined meshes and the transient parse scratch.
// A State belongs to exactly one load; it is never shared.
type State struct {
	Flags Flag
	Path  string

	Plan      []File
	Meshes    map[uint32][]Mesh
	Materials map[uint32][]Material
	Combined  []Mesh

	temp []TempMesh
}

// NewState creates the owned state for one load of path.
func NewState(path string, flags Flag) *State {
	return &State{
		Flags:     flags,
		Path:      path,
		Meshes:    make(map[uint32][]Mesh),
		Materials: make(map[uint32][]Material),
	}
}

// Model moves the processed containers out of the state.
func (s *State) Model() *Model {
	return &Model{
		Meshes:    s.Meshes,
		Materials: s.Materials,
		Combined:  s.Combined,
		Path:      s.Path,
	}
}
