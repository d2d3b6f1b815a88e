// Package particle provides the value types shared by particle configuration
// and the particle runtime: numeric ranges, keyframe curves and launch
// velocity distributions.
//
// Values are expressed per simulation tick (pixels/tick, degrees/tick) so an
// emitter behaves the same regardless of how long a frame actually took.
package particle

import (
	"fmt"
	"math/rand"
)

// VelocityKind 速度分布类型
type VelocityKind string

const (
	// VelocityDisc 速度在半径为 Radius 的圆内均匀分布
	VelocityDisc VelocityKind = "disc"
	// VelocityBox X/Y 分量各自在区间内独立均匀分布
	VelocityBox VelocityKind = "box"
)

// Velocity describes how a particle's initial velocity is drawn.
type Velocity struct {
	Kind   VelocityKind `yaml:"kind"`
	Radius float64      `yaml:"radius,omitempty"` // disc only
	X      Range        `yaml:"x,omitempty"`      // box only
	Y      Range        `yaml:"y,omitempty"`      // box only
}

// Disc 返回圆形分布
func Disc(radius float64) Velocity {
	return Velocity{Kind: VelocityDisc, Radius: radius}
}

// Box 返回矩形分布
func Box(x, y Range) Velocity {
	return Velocity{Kind: VelocityBox, X: x, Y: y}
}

// Sample draws one velocity (pixels/tick).
func (v Velocity) Sample(rng *rand.Rand) (vx, vy float64) {
	switch v.Kind {
	case VelocityDisc:
		return RandomInDisc(rng, v.Radius)
	case VelocityBox:
		return v.X.Sample(rng), v.Y.Sample(rng)
	}
	return 0, 0
}

// Validate 检查分布参数
func (v Velocity) Validate() error {
	switch v.Kind {
	case VelocityDisc:
		if v.Radius < 0 {
			return fmt.Errorf("disc radius must be >= 0, got %v", v.Radius)
		}
	case VelocityBox:
		if v.X.Min > v.X.Max || v.Y.Min > v.Y.Max {
			return fmt.Errorf("box range inverted: x=%s y=%s", v.X, v.Y)
		}
	default:
		return fmt.Errorf("unknown velocity kind %q", v.Kind)
	}
	return nil
}
