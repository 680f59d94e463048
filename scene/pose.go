package scene

import "github.com/chewxy/math32"

// Pose is a compact similarity transform: translation, a yaw rotation about
// the up axis, and a uniform scale. It covers what level layout and gameplay
// attachment need without pulling in a matrix stack.
type Pose struct {
	X     float32 `json:"x"`
	Y     float32 `json:"y"`
	Z     float32 `json:"z"`
	Yaw   float32 `json:"yaw"`
	Scale float32 `json:"scale"`
}

// Identity returns the pose that composes as a no-op.
func Identity() Pose {
	return Pose{Scale: 1}
}

// Compose applies child on top of the parent pose p and returns the
// resulting world pose: the child's position is rotated by the parent's yaw,
// scaled by the parent's scale, and offset by the parent's position; yaw
// adds, scale multiplies. Positive yaw turns +X toward -Z (right-handed,
// Y up).
func (p Pose) Compose(child Pose) Pose {
	s := math32.Sin(p.Yaw)
	c := math32.Cos(p.Yaw)
	return Pose{
		X:     p.X + p.Scale*(c*child.X+s*child.Z),
		Y:     p.Y + p.Scale*child.Y,
		Z:     p.Z + p.Scale*(-s*child.X+c*child.Z),
		Yaw:   p.Yaw + child.Yaw,
		Scale: p.Scale * child.Scale,
	}
}
