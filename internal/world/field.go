package world

import "math/rand"

const (
	// DefaultHalfWidth is the half-width of the default square field.
	DefaultHalfWidth = 25.0

	// GroundHeight is the height at which roaming entities stand.
	GroundHeight = 0.75

	// PlayerHeight is the height of the player's centre.
	PlayerHeight = 1.0
)

// Field is the square exploration area centred on the origin.
type Field struct {
	HalfWidth float64
}

// NewField creates a field with the given half-width.
func NewField(halfWidth float64) Field {
	return Field{HalfWidth: halfWidth}
}

// Contains returns true if the point lies on the field (inclusive edges).
func (f Field) Contains(p Vec3) bool {
	return p.X >= -f.HalfWidth && p.X <= f.HalfWidth &&
		p.Z >= -f.HalfWidth && p.Z <= f.HalfWidth
}

// Clamp returns p moved onto the field. Height is left untouched.
func (f Field) Clamp(p Vec3) Vec3 {
	p.X = clamp(p.X, -f.HalfWidth, f.HalfWidth)
	p.Z = clamp(p.Z, -f.HalfWidth, f.HalfWidth)
	return p
}

// RandomPoint returns a point drawn uniformly from the square of the given
// half-width centred on the origin, at height y.
func RandomPoint(rng *rand.Rand, halfWidth, y float64) Vec3 {
	return Vec3{
		X: (rng.Float64() - 0.5) * 2 * halfWidth,
		Y: y,
		Z: (rng.Float64() - 0.5) * 2 * halfWidth,
	}
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
