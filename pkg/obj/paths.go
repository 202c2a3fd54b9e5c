package obj

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// maxLodLevels bounds the dense plan so a stray huge suffix cannot
// allocate an absurd number of empty slots.
const maxLodLevels = 256

// CachePaths resolves the load plan for the state's path: the base OBJ
// with its sibling MTL at LOD 0 and, when the Lods flag is set, every
// `<stem>_lod<k>` sibling in the same directory. The resulting plan is
// dense and ordered by LOD level; slots with no discovered file keep
// empty paths.
//
// The base MTL path is derived even when the file does not exist; the
// reader reports the miss later.
func CachePaths(s *State) error {
	dir := filepath.Dir(s.Path)
	base := filepath.Base(s.Path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	found := map[uint32]File{
		0: {
			ObjPath:  s.Path,
			MtlPath:  filepath.Join(dir, stem+".mtl"),
			LODLevel: 0,
		},
	}
	maxLevel := uint32(0)

	if s.Flags.Has(Lods) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return &PlanError{Path: s.Path, Err: err}
		}

		prefix := stem + "_lod"
		for _, entry := range entries {
			if !entry.Type().IsRegular() {
				continue
			}

			name := entry.Name()
			ext := filepath.Ext(name)
			entryStem := strings.TrimSuffix(name, ext)

			if !strings.HasPrefix(entryStem, prefix) {
				continue
			}

			// the suffix after "_lod" must be a plain decimal level
			level, err := strconv.ParseUint(entryStem[len(prefix):], 10, 32)
			if err != nil || level >= maxLodLevels {
				continue
			}
			k := uint32(level)

			f := found[k]
			f.LODLevel = k
			switch ext {
			case ".obj":
				f.ObjPath = filepath.Join(dir, name)
			case ".mtl":
				f.MtlPath = filepath.Join(dir, name)
			default:
				continue
			}
			found[k] = f

			if k > maxLevel {
				maxLevel = k
			}
		}
	}

	s.Plan = make([]File, maxLevel+1)
	for k := uint32(0); k <= maxLevel; k++ {
		f, ok := found[k]
		if !ok {
			f = File{LODLevel: k}
		}
		s.Plan[k] = f
	}

	return nil
}
