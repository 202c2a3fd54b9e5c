package obj

// ParseMtl walks buf twice: a census pass counting newmtl blocks to
// size the output, then the parse pass. Only texture-map directives are
// honored; everything else in the file is ignored. Leading whitespace
// on a line is tolerated.
func ParseMtl(s *State, buf []byte, lodLevel uint32) {
	// --- first pass: census ---
	materialCount := 0
	for pos := 0; pos < len(buf); {
		prefix, _, next := scanDirective(buf, pos)
		pos = next
		if prefix == "newmtl" {
			materialCount++
		}
	}

	materials := s.Materials[lodLevel]
	if cap(materials)-len(materials) < materialCount {
		grown := make([]Material, len(materials), len(materials)+materialCount)
		copy(grown, materials)
		materials = grown
	}

	// --- second pass: parse ---
	current := -1
	for pos := 0; pos < len(buf); {
		prefix, value, next := scanDirective(buf, pos)
		pos = next

		if prefix == "" || prefix[0] == '#' {
			continue
		}

		if prefix == "newmtl" {
			materials = append(materials, Material{Name: value})
			current = len(materials) - 1
			continue
		}
		if current < 0 {
			continue
		}

		switch prefix {
		case "map_Kd":
			materials[current].Diffuse = append(materials[current].Diffuse, value)
		case "map_Ks", "map_Ns":
			materials[current].Specular = append(materials[current].Specular, value)
		case "map_Bump", "bump":
			materials[current].Normal = append(materials[current].Normal, value)
		case "disp":
			materials[current].Height = append(materials[current].Height, value)
		}
	}

	s.Materials[lodLevel] = materials
}

// scanDirective reads one line as a whitespace-separated directive and
// its first value token, skipping leading whitespace.
func scanDirective(buf []byte, pos int) (prefix, value string, next int) {
	for pos < len(buf) && (buf[pos] == ' ' || buf[pos] == '\t') {
		pos++
	}
	start := pos
	for pos < len(buf) && buf[pos] != ' ' && buf[pos] != '\t' && buf[pos] != '\n' && buf[pos] != '\r' {
		pos++
	}
	prefix = string(buf[start:pos])

	for pos < len(buf) && (buf[pos] == ' ' || buf[pos] == '\t') {
		pos++
	}
	start = pos
	for pos < len(buf) && buf[pos] != ' ' && buf[pos] != '\t' && buf[pos] != '\n' && buf[pos] != '\r' {
		pos++
	}
	value = string(buf[start:pos])

	for pos < len(buf) && buf[pos] != '\n' {
		pos++
	}
	if pos < len(buf) {
		pos++
	}
	return prefix, value, pos
}
