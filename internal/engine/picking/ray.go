// Package picking casts rays against the terrain heightfield, used for
// resolving the ground point the player is aiming at.
package picking

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// HeightField is the surface rays are cast against.
type HeightField interface {
	SampleHeight(x, z float64) float64
}

// Ray is a half-line in world space. Dir must be normalized.
type Ray struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3
}

// NewRay builds a ray from origin toward target.
func NewRay(origin, target mgl64.Vec3) Ray {
	return Ray{Origin: origin, Dir: target.Sub(origin).Normalize()}
}

// IntersectPlaneY intersects the ray with the horizontal plane y = planeY.
// Used as a fallback when the heightfield march finds no hit.
func (r Ray) IntersectPlaneY(planeY float64) (mgl64.Vec3, bool) {
	if math.Abs(r.Dir.Y()) < 1e-6 {
		return mgl64.Vec3{}, false
	}
	t := (planeY - r.Origin.Y()) / r.Dir.Y()
	if t < 0 {
		return mgl64.Vec3{}, false
	}
	return r.Origin.Add(r.Dir.Mul(t)), true
}

// MarchHeightfield walks the ray in fixed steps until it passes below the
// terrain surface, then bisects the final step for a tighter hit point.
// Returns the surface point, with its Y set to the sampled terrain height.
func (r Ray) MarchHeightfield(f HeightField, maxDist, step float64) (mgl64.Vec3, bool) {
	if step <= 0 || maxDist <= 0 {
		return mgl64.Vec3{}, false
	}

	prev := 0.0
	for t := step; t <= maxDist; t += step {
		p := r.Origin.Add(r.Dir.Mul(t))
		if p.Y() <= f.SampleHeight(p.X(), p.Z()) {
			lo, hi := prev, t
			for i := 0; i < 12; i++ {
				mid := (lo + hi) / 2
				q := r.Origin.Add(r.Dir.Mul(mid))
				if q.Y() <= f.SampleHeight(q.X(), q.Z()) {
					hi = mid
				} else {
					lo = mid
				}
			}
			hit := r.Origin.Add(r.Dir.Mul(hi))
			hit[1] = f.SampleHeight(hit.X(), hit.Z())
			return hit, true
		}
		prev = t
	}
	return mgl64.Vec3{}, false
}
