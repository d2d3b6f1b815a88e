package components

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// ParticleComponent represents a single live particle owned by an emitter.
// It stores the runtime state the particle system integrates every tick and
// the renderer reads every frame.
//
// Velocities are per tick, not per second: the demo runs on a fixed tick and
// a particle moves by (VelocityX, VelocityY) on each update.
//
// This is a pure data component - it contains no methods.
type ParticleComponent struct {
	// Position (屏幕坐标, y 轴向下)
	X float64
	Y float64

	// Velocity (速度, 像素/tick)
	VelocityX float64
	VelocityY float64

	// Rotation (旋转, 角度)
	Rotation      float64 // Current rotation angle in degrees
	RotationSpeed float64 // Rotation speed in degrees per tick

	// Scale (缩放倍数)
	Scale float64 // Scale multiplier (1.0 = texture size)

	// Transparency (透明度, 0-1)
	Alpha float64

	// Lifecycle (生命周期, 秒)
	Age      float64 // Time this particle has been alive (seconds)
	Lifetime float64 // Particle is reaped once Age >= Lifetime

	// Fade: Alpha 在生命周期内从 1 过渡到 0
	Fade      bool
	FadeCurve string // Interpolation mode ("Linear", "EaseIn", ...)

	// Rendering properties
	Image    *ebiten.Image // Particle texture
	Additive bool          // Use additive blending when rendering
}
