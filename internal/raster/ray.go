package raster

import "github.com/go-gl/mathgl/mgl32"

// Ray is a half-line from Origin along Direction. Direction need not be unit length.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Hit describes a ray/sphere intersection in the sphere's local frame, where the
// sphere is centered at the origin.
type Hit struct {
	T      float32
	Point  mgl32.Vec3
	Normal mgl32.Vec3
}
