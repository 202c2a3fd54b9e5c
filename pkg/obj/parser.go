package obj

import (
	"bytes"
	"strconv"

	"github.com/Faultbox/objloader/pkg/math"
)

// reserveHint is the first-pass line census for one `o` block, used to
// preallocate the temp arrays before the second pass.
type reserveHint struct {
	v, vt, vn, f int
}

// uvTracker accumulates the texture-coordinate range observed since the
// last usemtl (or object start) to detect tiled materials.
type uvTracker struct {
	min, max math.Vec2
	count    int
}

func (t *uvTracker) observe(tc math.Vec2) {
	if t.count == 0 {
		t.min, t.max = tc, tc
	} else {
		t.min = t.min.Min(tc)
		t.max = t.max.Max(tc)
	}
	t.count++
}

func (t *uvTracker) reset() {
	*t = uvTracker{}
}

// ParseObj walks buf twice: a census pass that sizes the per-object
// temp arrays, then the parse pass proper. Parsed meshes are appended
// to the state's container for lodLevel; raw vertex data lands in the
// temp arrays for the assembler.
//
// Face indices are rebased from OBJ's global 1-based numbering to
// per-object 0-based numbering by carrying the highest raw index seen
// in prior objects.
func ParseObj(s *State, buf []byte, lodLevel uint32) error {
	s.temp = s.temp[:0]

	// --- first pass: census ---
	var hints []reserveHint
	open := func() {
		hints = append(hints, reserveHint{})
	}
	for pos := 0; pos < len(buf); {
		line, _, next := scanLine(buf, pos)
		pos = next

		if len(line) == 0 || line[0] == '#' {
			continue
		}

		switch {
		case hasPrefix(line, "o "):
			open()
		case hasPrefix(line, "vt"):
			if len(hints) == 0 {
				open()
			}
			hints[len(hints)-1].vt++
		case hasPrefix(line, "vn"):
			if len(hints) == 0 {
				open()
			}
			hints[len(hints)-1].vn++
		case hasPrefix(line, "v "):
			if len(hints) == 0 {
				open()
			}
			hints[len(hints)-1].v++
		case hasPrefix(line, "f "):
			if len(hints) == 0 {
				open()
			}
			hints[len(hints)-1].f++
		}
	}

	if cap(s.temp) < len(hints) {
		s.temp = make([]TempMesh, 0, len(hints))
	}
	meshes := s.Meshes[lodLevel]

	// --- second pass: parse ---
	meshCount := -1
	var offset, maxSeen [3]uint32
	var uv uvTracker
	activeMaterial := ""

	openMesh := func(name string) {
		meshCount++
		tm := TempMesh{}
		if meshCount < len(hints) {
			h := hints[meshCount]
			tm.Positions = make([]math.Vec3, 0, h.v)
			tm.TexCoords = make([]math.Vec2, 0, h.vt)
			tm.Normals = make([]math.Vec3, 0, h.vn)
			tm.Faces = make([]faceIndex, 0, h.f*3)
		}
		s.temp = append(s.temp, tm)
		meshes = append(meshes, Mesh{Name: name, MeshNumber: meshCount, LODLevel: lodLevel})
		offset = maxSeen // carry forward for the new object's rebase
	}

	for pos := 0; pos < len(buf); {
		line, lineStart, next := scanLine(buf, pos)
		pos = next

		if len(line) == 0 || line[0] == '#' {
			continue
		}

		switch {
		case hasPrefix(line, "o "):
			s.finishMaterialWindow(lodLevel, activeMaterial, &uv)
			openMesh(string(bytes.TrimSpace(line[2:])))

		case hasPrefix(line, "vt"):
			if meshCount < 0 {
				openMesh("")
			}
			x, i, err := parseFloat(line, 2)
			if err != nil {
				return &ParseError{Path: s.Path, Offset: lineStart, Reason: "invalid float in vt"}
			}
			y, _, err := parseFloat(line, i)
			if err != nil {
				return &ParseError{Path: s.Path, Offset: lineStart, Reason: "invalid float in vt"}
			}
			tc := math.Vec2{X: x, Y: 1 - y} // flip uv v axis
			s.temp[meshCount].TexCoords = append(s.temp[meshCount].TexCoords, tc)
			uv.observe(tc)

		case hasPrefix(line, "vn"):
			if meshCount < 0 {
				openMesh("")
			}
			v, err := parseVec3(line, 2)
			if err != nil {
				return &ParseError{Path: s.Path, Offset: lineStart, Reason: "invalid float in vn"}
			}
			s.temp[meshCount].Normals = append(s.temp[meshCount].Normals, v)

		case hasPrefix(line, "v "):
			if meshCount < 0 {
				openMesh("")
			}
			v, err := parseVec3(line, 1)
			if err != nil {
				return &ParseError{Path: s.Path, Offset: lineStart, Reason: "invalid float in v"}
			}
			s.temp[meshCount].Positions = append(s.temp[meshCount].Positions, v)

		case hasPrefix(line, "mtllib "):
			if int(lodLevel) < len(s.Plan) {
				s.Plan[lodLevel].MtlLib = string(bytes.TrimSpace(line[7:]))
			}

		case hasPrefix(line, "usemtl"):
			s.finishMaterialWindow(lodLevel, activeMaterial, &uv)
			name := ""
			if len(line) > 7 {
				name = string(bytes.TrimSpace(line[7:]))
			}
			if meshCount >= 0 {
				meshes[meshCount].Material = name
			}
			activeMaterial = name

		case hasPrefix(line, "f "):
			if meshCount < 0 {
				openMesh("")
			}
			if err := s.parseFace(line, lineStart, meshCount, &offset, &maxSeen); err != nil {
				return err
			}
		}
	}

	s.finishMaterialWindow(lodLevel, activeMaterial, &uv)
	s.Meshes[lodLevel] = meshes
	return nil
}

// parseFace reads up to four V[/T[/N]] corners and appends the
// triangulated result: one triangle for three corners, two for a quad
// split along the (0,2) diagonal.
func (s *State) parseFace(line []byte, lineStart, meshCount int, offset, maxSeen *[3]uint32) error {
	rest := line[2:]
	i := 0

	var corners [4]faceIndex
	n := 0

	for n < 4 {
		for i < len(rest) && (rest[i] == ' ' || rest[i] == '\t') {
			i++
		}
		if i >= len(rest) {
			break
		}

		v, adv, ok := parseIndex(rest[i:])
		if !ok {
			return &ParseError{Path: s.Path, Offset: lineStart, Reason: "malformed face specifier"}
		}
		i += adv

		var t, nn uint32
		if i < len(rest) && rest[i] == '/' {
			i++
			t, adv, _ = parseIndex(rest[i:]) // empty slot stays 0
			i += adv
			if i < len(rest) && rest[i] == '/' {
				i++
				nn, adv, _ = parseIndex(rest[i:])
				i += adv
			}
		}

		raw := [3]uint32{v, t, nn}
		var rebased faceIndex
		for c := 0; c < 3; c++ {
			if raw[c] > maxSeen[c] {
				maxSeen[c] = raw[c]
			}
			if raw[c] == 0 {
				rebased[c] = 0 // unspecified slot
			} else {
				rebased[c] = raw[c] - 1 - offset[c]
			}
		}
		corners[n] = rebased
		n++
	}

	if n < 3 {
		return &ParseError{Path: s.Path, Offset: lineStart, Reason: "truncated face"}
	}

	faces := s.temp[meshCount].Faces
	faces = append(faces, corners[0], corners[1], corners[2])
	if n == 4 {
		faces = append(faces, corners[0], corners[2], corners[3])
	}
	s.temp[meshCount].Faces = faces
	return nil
}

// finishMaterialWindow closes the current uv-range window and marks the
// active material as tiled when the observed range exceeds 1 on either
// axis.
func (s *State) finishMaterialWindow(lodLevel uint32, name string, uv *uvTracker) {
	defer uv.reset()

	if name == "" || uv.count == 0 {
		return
	}

	materials := s.Materials[lodLevel]
	for i := range materials {
		if materials[i].Name != name {
			continue
		}
		r := uv.max.Sub(uv.min)
		if r.X > 1 || r.Y > 1 {
			materials[i].IsTiled = true
		}
		return
	}
}

// scanLine returns the next line (without terminators), its byte
// offset, and the position of the following line. Handles LF and CRLF.
func scanLine(buf []byte, pos int) (line []byte, lineStart, next int) {
	lineStart = pos
	for pos < len(buf) && buf[pos] != '\n' && buf[pos] != '\r' {
		pos++
	}
	line = buf[lineStart:pos]
	for pos < len(buf) && (buf[pos] == '\n' || buf[pos] == '\r') {
		pos++
	}
	return line, lineStart, pos
}

func hasPrefix(line []byte, prefix string) bool {
	return len(line) >= len(prefix) && string(line[:len(prefix)]) == prefix
}

// parseFloat reads the next whitespace-delimited token from line
// starting at i and parses it as a float. Standard decimal and exponent
// forms are accepted, independent of locale.
func parseFloat(line []byte, i int) (float32, int, error) {
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	start := i
	for i < len(line) && line[i] != ' ' && line[i] != '\t' {
		i++
	}

	f, err := strconv.ParseFloat(string(line[start:i]), 32)
	if err != nil {
		return 0, i, err
	}
	return float32(f), i, nil
}

func parseVec3(line []byte, i int) (math.Vec3, error) {
	x, i, err := parseFloat(line, i)
	if err != nil {
		return math.Vec3{}, err
	}
	y, i, err := parseFloat(line, i)
	if err != nil {
		return math.Vec3{}, err
	}
	z, _, err := parseFloat(line, i)
	if err != nil {
		return math.Vec3{}, err
	}
	return math.Vec3{X: x, Y: y, Z: z}, nil
}

// parseIndex reads a leading decimal integer. ok is false when no
// digits are present.
func parseIndex(b []byte) (val uint32, adv int, ok bool) {
	for adv < len(b) && b[adv] >= '0' && b[adv] <= '9' {
		val = val*10 + uint32(b[adv]-'0')
		adv++
	}
	return val, adv, adv > 0
}
