package raster

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SphereRadius is the radius of the single scene sphere.
const SphereRadius = float32(0.5)

// missColor is returned for rays that do not hit the sphere.
var missColor = mgl32.Vec4{0, 0, 0, 1}

// Intersect tests ray against the sphere of SphereRadius placed at sphereOrigin.
// The sphere offset is folded into the ray origin, so the quadratic is always solved
// for a sphere at the origin and the returned Hit is in that local frame.
//
// Only the near root is reported. A ray starting inside the sphere therefore yields a
// hit with negative T behind its origin. A zero-length direction never hits.
func Intersect(ray Ray, sphereOrigin mgl32.Vec3) (Hit, bool) {
	origin := ray.Origin.Sub(sphereOrigin)
	dir := ray.Direction

	a := dir.Dot(dir)
	if a == 0 {
		return Hit{}, false
	}
	b := 2 * origin.Dot(dir)
	c := origin.Dot(origin) - SphereRadius*SphereRadius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Hit{}, false
	}

	// The far root (-b + sqrt) / 2a is never used.
	t := (-b - float32(math.Sqrt(float64(discriminant)))) / (2 * a)

	point := origin.Add(dir.Mul(t))
	return Hit{
		T:      t,
		Point:  point,
		Normal: point.Normalize(),
	}, true
}

// TraceRay shades one primary ray: Lambert diffuse from a directional light, no
// clamping. Back-facing points produce negative channels; Render clamps later.
// Alpha is always 1.
func TraceRay(ray Ray, albedo mgl32.Vec4, lightDir, sphereOrigin mgl32.Vec3) mgl32.Vec4 {
	hit, ok := Intersect(ray, sphereOrigin)
	if !ok {
		return missColor
	}

	d := lightDir.Normalize().Mul(-1).Dot(hit.Normal)
	rgb := albedo.Vec3().Mul(d)
	return rgb.Vec4(1)
}
