package components

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/emitterdemo/internal/particle"
)

// ParticleSpec 描述发射器生成粒子时使用的模板
//
// 每个发射器持有一份 ParticleSpec 副本，生成粒子时对其中的区间取样。
// Image 为共享贴图，多个发射器可以引用同一张。
type ParticleSpec struct {
	Image           *ebiten.Image
	Velocity        particle.Velocity // 像素/tick
	Lifetime        particle.Range    // 秒
	Scale           float64
	AngularVelocity float64 // 度/tick
	Fade            bool
	FadeCurve       string
	Additive        bool
}
