package terrain

import "math"

// BuildChunkMesh creates the mesh for one size×size chunk at chunk coordinate
// (chunkX, chunkZ), sampling the field at (res+1)² vertices. Heights come
// from the shared field so chunk seams always match. Normals are
// area-averaged from adjacent triangles for smooth shading.
func BuildChunkMesh(f *Field, chunkX, chunkZ int, size float64, res int) *Mesh {
	vertexCount := (res + 1) * (res + 1)

	mesh := &Mesh{
		Positions: make([][3]float32, 0, vertexCount),
		Normals:   make([][3]float32, vertexCount),
		UVs:       make([][2]float32, 0, vertexCount),
		Indices:   make([]uint32, 0, res*res*6),
	}

	bounds := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}

	originX := float64(chunkX) * size
	originZ := float64(chunkZ) * size
	step := size / float64(res)

	for z := 0; z <= res; z++ {
		for x := 0; x <= res; x++ {
			localX := float64(x) * step
			localZ := float64(z) * step
			y := f.SampleHeight(originX+localX, originZ+localZ)

			pos := [3]float32{float32(localX), float32(y), float32(localZ)}
			mesh.Positions = append(mesh.Positions, pos)
			mesh.UVs = append(mesh.UVs, [2]float32{
				float32(x) / float32(res),
				float32(z) / float32(res),
			})
			updateBounds(&bounds, pos)
		}
	}

	// Two triangles per grid cell
	for z := 0; z < res; z++ {
		for x := 0; x < res; x++ {
			tl := uint32(z*(res+1) + x)
			tr := tl + 1
			bl := uint32((z+1)*(res+1) + x)
			br := bl + 1

			mesh.Indices = append(mesh.Indices, tl, bl, tr)
			mesh.Indices = append(mesh.Indices, tr, bl, br)
		}
	}

	smoothNormals(mesh)
	mesh.Bounds = bounds

	return mesh
}

// smoothNormals averages face normals into each shared vertex.
func smoothNormals(mesh *Mesh) {
	sums := make([][3]float32, len(mesh.Positions))

	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		i0 := mesh.Indices[i]
		i1 := mesh.Indices[i+1]
		i2 := mesh.Indices[i+2]

		v0 := mesh.Positions[i0]
		v1 := mesh.Positions[i1]
		v2 := mesh.Positions[i2]

		edge1 := [3]float32{v1[0] - v0[0], v1[1] - v0[1], v1[2] - v0[2]}
		edge2 := [3]float32{v2[0] - v0[0], v2[1] - v0[1], v2[2] - v0[2]}
		n := cross(edge1, edge2)

		for _, idx := range [3]uint32{i0, i1, i2} {
			sums[idx][0] += n[0]
			sums[idx][1] += n[1]
			sums[idx][2] += n[2]
		}
	}

	for i := range sums {
		mesh.Normals[i] = normalize(sums[i])
	}
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize(v [3]float32) [3]float32 {
	length := float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
	if length == 0 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{v[0] / length, v[1] / length, v[2] / length}
}
