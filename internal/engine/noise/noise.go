// Package noise provides deterministic gradient noise for terrain generation.
package noise

import "math"

// Generator produces seeded, deterministic 2D noise. The same seed and
// coordinates always yield the same value, so terrain can be regenerated
// identically across runs.
type Generator struct {
	seed int64
}

// New creates a noise generator with the given seed.
func New(seed int64) *Generator {
	return &Generator{seed: seed}
}

// Seed returns the generator seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Perlin2D generates 2D Perlin noise in roughly [-1, 1].
func (g *Generator) Perlin2D(x, y float64) float64 {
	// Grid cell corners
	x0 := math.Floor(x)
	x1 := x0 + 1.0
	y0 := math.Floor(y)
	y1 := y0 + 1.0

	// Interpolation factors with quintic smoothing
	sx := smoothstep(x - x0)
	sy := smoothstep(y - y0)

	// Corner gradients
	g00 := gradient2D(hash(int(x0), int(y0), int(g.seed)))
	g10 := gradient2D(hash(int(x1), int(y0), int(g.seed)))
	g01 := gradient2D(hash(int(x0), int(y1), int(g.seed)))
	g11 := gradient2D(hash(int(x1), int(y1), int(g.seed)))

	// Dot products with distance vectors
	dp00 := g00[0]*(x-x0) + g00[1]*(y-y0)
	dp10 := g10[0]*(x-x1) + g10[1]*(y-y0)
	dp01 := g01[0]*(x-x0) + g01[1]*(y-y1)
	dp11 := g11[0]*(x-x1) + g11[1]*(y-y1)

	v0 := lerp(dp00, dp10, sx)
	v1 := lerp(dp01, dp11, sx)

	return lerp(v0, v1, sy)
}

// FBM2D generates fractal Brownian motion noise: octaves of Perlin2D summed
// with the given lacunarity (frequency step) and gain (amplitude step),
// normalized back to roughly [-1, 1].
func (g *Generator) FBM2D(x, y float64, octaves int, lacunarity, gain float64) float64 {
	result := 0.0
	amplitude := 1.0
	frequency := 1.0
	max := 0.0

	for i := 0; i < octaves; i++ {
		oct := Generator{seed: g.seed + int64(i)}
		result += oct.Perlin2D(x*frequency, y*frequency) * amplitude
		max += amplitude
		amplitude *= gain
		frequency *= lacunarity
	}

	return result / max
}

// Offset returns a generator derived from this one, for decorrelated layers.
func (g *Generator) Offset(delta int64) *Generator {
	return &Generator{seed: g.seed + delta}
}

// hash combines coordinates and seed into a well-mixed integer.
func hash(x, y, seed int) int {
	h := seed + x*374761393 + y*668265263
	h = (h ^ (h >> 13)) * 1274126177
	return h ^ (h >> 16)
}

// gradient2D picks one of eight unit-ish gradients from a hash.
func gradient2D(hash int) [2]float64 {
	switch hash & 7 {
	case 0:
		return [2]float64{1, 0}
	case 1:
		return [2]float64{-1, 0}
	case 2:
		return [2]float64{0, 1}
	case 3:
		return [2]float64{0, -1}
	case 4:
		return [2]float64{1, 1}
	case 5:
		return [2]float64{-1, 1}
	case 6:
		return [2]float64{1, -1}
	default:
		return [2]float64{-1, -1}
	}
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// smoothstep applies the improved Perlin fade curve: 6t^5 - 15t^4 + 10t^3.
func smoothstep(t float64) float64 {
	return t * t * t * (t*(t*6.0-15.0) + 10.0)
}
