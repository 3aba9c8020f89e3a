package game

import "github.com/go-gl/mathgl/mgl64"

type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
}

// Follow places the camera at a fixed offset from target, looking at it.
func Follow(target, offset mgl64.Vec3) Camera {
	return Camera{Position: target.Add(offset), Target: target}
}
