package scene

import (
	"math"

	"github.com/gogpu/glscene"
)

// Camera and projection parameters shared by every sample.
const (
	FieldOfView    = math.Pi / 4 // vertical, radians
	ZNear          = 0.1
	ZFar           = 100.0
	CameraDistance = 6.0
)

// State is the per-session scene state, advanced between frames.
type State struct {
	// Rotation is the accumulated angle in radians. It only grows.
	Rotation float32
}

// Motion returns the rotation appended to the model-view matrix for angle.
type Motion func(angle float32) glscene.Mat4

// Spin rotates about the Z axis.
func Spin(angle float32) glscene.Mat4 {
	return glscene.Rotation(angle, glscene.V3(0, 0, 1))
}

// Tumble rotates about (0.5, 0, 1), then about Y at 0.7 times the rate.
func Tumble(angle float32) glscene.Mat4 {
	return glscene.Rotation(angle, glscene.V3(0.5, 0, 1)).
		Rotate(angle*0.7, glscene.V3(0, 1, 0))
}

// FrameDescriptor holds the matrices for one frame.
type FrameDescriptor struct {
	Projection glscene.Mat4
	ModelView  glscene.Mat4
}

// Describe computes the frame matrices for a width x height viewport at
// the given angle. A nil motion leaves the model static.
func Describe(width, height, angle float32, motion Motion) FrameDescriptor {
	mv := glscene.Identity().Translate(glscene.V3(0, 0, -CameraDistance))
	if motion != nil {
		mv = mv.Mul(motion(angle))
	}
	return FrameDescriptor{
		Projection: glscene.Perspective(FieldOfView, width/height, ZNear, ZFar),
		ModelView:  mv,
	}
}
