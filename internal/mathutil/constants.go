package mathutil

import "github.com/go-gl/mathgl/mgl32"

// World basis shared by the camera controller and the view matrix.
var (
	// WorldUp is the fixed up axis used for yaw, vertical movement and lookAt.
	WorldUp = mgl32.Vec3{0, 1, 0}

	// WorldForward is the initial viewing direction (right-handed, looking down -Z).
	WorldForward = mgl32.Vec3{0, 0, -1}
)
