package lumen

import "math"

// minLightDistance guards the falloff division against a light sitting on
// the surface point.
const minLightDistance = 1e-4

// PointLight emits in all directions from Position, attenuating with
// distance up to Range.
type PointLight struct {
	// Color is the light color.
	Color Color
	// Intensity is the emitted power before attenuation.
	Intensity float64
	// Range cuts the light to zero beyond this distance. Zero means no cutoff.
	Range float64
	// Decay is the falloff exponent applied to distance. Defaults to 2
	// (inverse-square).
	Decay float64
	// Position is the light location in world space.
	Position Vec3
}

// NewPointLight creates a point light with the given color and intensity,
// inverse-square decay, and no range cutoff.
func NewPointLight(c Color, intensity float64) *PointLight {
	return &PointLight{
		Color:     c,
		Intensity: intensity,
		Decay:     2,
	}
}

// attenuation returns the light power reaching a point at distance d.
func (l *PointLight) attenuation(d float64) float64 {
	if l.Range > 0 && d >= l.Range {
		return 0
	}
	return l.Intensity / math.Pow(math.Max(d, minLightDistance), l.Decay)
}

// Shade returns the diffuse (Lambert) contribution of the light on a surface
// at point with the given unit normal and base color. The result is additive
// on top of any ambient term and is not clamped.
func (l *PointLight) Shade(point, normal Vec3, base Color) Color {
	toLight := l.Position.Sub(point)
	d := toLight.Norm()

	lambert := normal.Dot(toLight.Normalize())
	if lambert <= 0 {
		return Color{}
	}

	return base.Mul(l.Color).Scale(lambert * l.attenuation(d))
}
