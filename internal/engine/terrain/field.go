package terrain

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/hexlab-games/hillslinger/internal/engine/noise"
)

// Noise layer offsets keep the three octave layers decorrelated while staying
// reproducible from a single seed.
const (
	detailSeedOffset   = 42
	tertiarySeedOffset = 123
)

// Field is an immutable heightfield over a bounded (x, z) domain.
// It is generated once at startup and is read-only afterwards, so it is safe
// to share without synchronization.
type Field struct {
	heights  []float64
	cols     int
	rows     int
	minX     float64
	minZ     float64
	cellSize float64
}

// Generate builds a heightfield from layered gradient noise: a main layer for
// rolling hills plus detail and tertiary layers for medium and small features,
// finished with a power curve that sharpens hills and flattens valleys.
func Generate(p Params) *Field {
	main := noise.New(p.Seed)
	detail := main.Offset(detailSeedOffset)
	tertiary := main.Offset(tertiarySeedOffset)

	cols := int(math.Round(2*p.HalfExtent/p.CellSize)) + 1
	rows := cols

	f := &Field{
		heights:  make([]float64, cols*rows),
		cols:     cols,
		rows:     rows,
		minX:     -p.HalfExtent,
		minZ:     -p.HalfExtent,
		cellSize: p.CellSize,
	}

	for row := 0; row < rows; row++ {
		z := f.minZ + float64(row)*p.CellSize
		for col := 0; col < cols; col++ {
			x := f.minX + float64(col)*p.CellSize
			f.heights[row*cols+col] = heightAt(main, detail, tertiary, x, z, p)
		}
	}

	return f
}

// Flat builds a constant-height field, mostly for tests and sandboxing.
func Flat(height, halfExtent, cellSize float64) *Field {
	cols := int(math.Round(2*halfExtent/cellSize)) + 1
	f := &Field{
		heights:  make([]float64, cols*cols),
		cols:     cols,
		rows:     cols,
		minX:     -halfExtent,
		minZ:     -halfExtent,
		cellSize: cellSize,
	}
	for i := range f.heights {
		f.heights[i] = height
	}
	return f
}

// heightAt combines the three noise layers and applies the height curve.
func heightAt(main, detail, tertiary *noise.Generator, x, z float64, p Params) float64 {
	combined := main.Perlin2D(x/p.MainScale, z/p.MainScale)
	combined += detail.Perlin2D(x/p.DetailScale, z/p.DetailScale) * p.DetailWeight
	combined += tertiary.Perlin2D(x/p.TertiaryScale, z/p.TertiaryScale) * p.TertiaryWeight

	// Normalize to [0,1], apply the curve, rescale to [-1,1]
	curve := (combined + 1.0) * 0.5
	if curve < 0 {
		curve = 0
	}
	curved := math.Pow(curve, p.CurveExponent)*2.0 - 1.0

	return curved * p.HeightScale
}

// SampleHeight returns the bilinearly interpolated height at (x, z).
// Out-of-range coordinates clamp to the nearest valid cell; sampling never
// fails.
func (f *Field) SampleHeight(x, z float64) float64 {
	gx := (x - f.minX) / f.cellSize
	gz := (z - f.minZ) / f.cellSize

	gx = clamp(gx, 0, float64(f.cols-1))
	gz = clamp(gz, 0, float64(f.rows-1))

	c0 := int(gx)
	r0 := int(gz)
	c1 := c0 + 1
	r1 := r0 + 1
	if c1 > f.cols-1 {
		c1 = f.cols - 1
	}
	if r1 > f.rows-1 {
		r1 = f.rows - 1
	}

	fx := gx - float64(c0)
	fz := gz - float64(r0)

	h00 := f.heights[r0*f.cols+c0]
	h10 := f.heights[r0*f.cols+c1]
	h01 := f.heights[r1*f.cols+c0]
	h11 := f.heights[r1*f.cols+c1]

	south := h00*(1-fx) + h10*fx
	north := h01*(1-fx) + h11*fx
	return south*(1-fz) + north*fz
}

// SampleNormal estimates the unit surface normal at (x, z) from central
// finite differences of neighboring height samples.
func (f *Field) SampleNormal(x, z float64) mgl64.Vec3 {
	d := f.cellSize
	hxn := f.SampleHeight(x-d, z)
	hxp := f.SampleHeight(x+d, z)
	hzn := f.SampleHeight(x, z-d)
	hzp := f.SampleHeight(x, z+d)

	n := mgl64.Vec3{(hxn - hxp) / (2 * d), 1, (hzn - hzp) / (2 * d)}
	return n.Normalize()
}

// Sample returns the height and normal at (x, z).
func (f *Field) Sample(x, z float64) HeightSample {
	return HeightSample{
		Height: f.SampleHeight(x, z),
		Normal: f.SampleNormal(x, z),
	}
}

// Gradient returns the downhill direction at (x, z) on the XZ plane. Its
// magnitude grows with slope steepness; flat ground yields a zero vector.
func (f *Field) Gradient(x, z float64) mgl64.Vec3 {
	d := f.cellSize
	hxn := f.SampleHeight(x-d, z)
	hxp := f.SampleHeight(x+d, z)
	hzn := f.SampleHeight(x, z-d)
	hzp := f.SampleHeight(x, z+d)

	return mgl64.Vec3{(hxn - hxp) / (2 * d), 0, (hzn - hzp) / (2 * d)}
}

// Bounds returns the (x, z) domain covered by the field.
func (f *Field) Bounds() (minX, minZ, maxX, maxZ float64) {
	return f.minX, f.minZ,
		f.minX + float64(f.cols-1)*f.cellSize,
		f.minZ + float64(f.rows-1)*f.cellSize
}

// CellSize returns the grid spacing in world units.
func (f *Field) CellSize() float64 {
	return f.cellSize
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
