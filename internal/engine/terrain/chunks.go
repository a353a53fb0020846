package terrain

import "math"

// ChunkManager keeps a square of chunk meshes loaded around a focus point,
// building new chunks as the focus moves and unloading chunks that fall
// outside the keep radius so memory stays bounded during long sessions.
type ChunkManager struct {
	field  *Field
	size   float64
	res    int
	radius int
	loaded map[[2]int]*Chunk
}

// NewChunkManager creates a chunk manager over the given field.
// radius is in chunks: a radius of 2 keeps a 5x5 grid loaded.
func NewChunkManager(field *Field, size float64, res, radius int) *ChunkManager {
	return &ChunkManager{
		field:  field,
		size:   size,
		res:    res,
		radius: radius,
		loaded: make(map[[2]int]*Chunk),
	}
}

// EnsureAround loads all chunks within the radius of the world position
// (x, z) and unloads chunks farther than radius+1. Returns how many chunks
// were added and removed.
func (m *ChunkManager) EnsureAround(x, z float64) (added, removed int) {
	cx := int(math.Floor(x / m.size))
	cz := int(math.Floor(z / m.size))

	for dz := -m.radius; dz <= m.radius; dz++ {
		for dx := -m.radius; dx <= m.radius; dx++ {
			key := [2]int{cx + dx, cz + dz}
			if _, ok := m.loaded[key]; ok {
				continue
			}
			m.loaded[key] = &Chunk{
				X:    key[0],
				Z:    key[1],
				Mesh: BuildChunkMesh(m.field, key[0], key[1], m.size, m.res),
			}
			added++
		}
	}

	// Keep one ring of slack so walking along a chunk border doesn't thrash
	for key := range m.loaded {
		if chebyshev(key[0]-cx, key[1]-cz) > m.radius+1 {
			delete(m.loaded, key)
			removed++
		}
	}

	return added, removed
}

// At returns the loaded chunk at the given chunk coordinate.
func (m *ChunkManager) At(cx, cz int) (*Chunk, bool) {
	c, ok := m.loaded[[2]int{cx, cz}]
	return c, ok
}

// Loaded returns all currently loaded chunks.
func (m *ChunkManager) Loaded() []*Chunk {
	chunks := make([]*Chunk, 0, len(m.loaded))
	for _, c := range m.loaded {
		chunks = append(chunks, c)
	}
	return chunks
}

// Count returns the number of loaded chunks.
func (m *ChunkManager) Count() int {
	return len(m.loaded)
}

// ChunkSize returns the world-unit size of one chunk.
func (m *ChunkManager) ChunkSize() float64 {
	return m.size
}

func chebyshev(dx, dz int) int {
	if dx < 0 {
		dx = -dx
	}
	if dz < 0 {
		dz = -dz
	}
	if dx > dz {
		return dx
	}
	return dz
}
