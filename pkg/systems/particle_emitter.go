package systems

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/emitterdemo/pkg/components"
)

// Emitter is anything the particle scene can update, draw and reap.
type Emitter interface {
	// Update advances the emitter by one tick.
	Update()
	// Draw renders the emitter. It must not change simulation state.
	Draw(screen *ebiten.Image)
	// IsExhausted reports that the emitter will never emit again and owns no
	// live particles.
	IsExhausted() bool
	Position() (x, y float64)
	SetPosition(x, y float64)
	ParticleCount() int
}

// ParticleEmitter spawns particles from a ParticleSpec at the pace chosen by
// its EmitController.
//
// 每次 Update:
//  1. 询问 controller 本 tick 需要发射的数量并生成粒子
//  2. 推进全部粒子（包括刚生成的）一个 tick
//  3. 移除过期粒子
type ParticleEmitter struct {
	state      components.EmitterComponent
	spec       components.ParticleSpec
	controller EmitController
	particles  *ParticleSystem
	renderer   *RenderSystem
}

// NewParticleEmitter creates an emitter at (x, y).
// A nil ParticleSystem or RenderSystem is replaced by a default one.
func NewParticleEmitter(x, y float64, controller EmitController, spec components.ParticleSpec,
	ps *ParticleSystem, rs *RenderSystem) *ParticleEmitter {
	if ps == nil {
		ps = NewParticleSystem(nil, DefaultTickSeconds)
	}
	if rs == nil {
		rs = NewRenderSystem()
	}
	return &ParticleEmitter{
		state:      components.EmitterComponent{X: x, Y: y},
		spec:       spec,
		controller: controller,
		particles:  ps,
		renderer:   rs,
	}
}

// Prime asks the controller for its zero-time emission and spawns those
// particles without advancing them. A burst primed this way is visible
// before its first Update.
func (e *ParticleEmitter) Prime() {
	e.emit(e.controller.HowMany(0, len(e.state.Particles)))
}

// Update implements Emitter.
func (e *ParticleEmitter) Update() {
	dt := e.particles.TickSeconds()
	e.emit(e.controller.HowMany(dt, len(e.state.Particles)))
	e.particles.UpdateParticles(&e.state)
}

func (e *ParticleEmitter) emit(n int) {
	for i := 0; i < n; i++ {
		e.particles.Spawn(&e.state, &e.spec)
	}
}

// Draw implements Emitter.
func (e *ParticleEmitter) Draw(screen *ebiten.Image) {
	e.renderer.DrawParticles(screen, e.state.Particles)
}

// IsExhausted implements Emitter.
func (e *ParticleEmitter) IsExhausted() bool {
	return e.controller.IsComplete() && len(e.state.Particles) == 0
}

// Position implements Emitter.
func (e *ParticleEmitter) Position() (x, y float64) {
	return e.state.X, e.state.Y
}

// SetPosition implements Emitter. Live particles keep their positions.
func (e *ParticleEmitter) SetPosition(x, y float64) {
	e.state.X = x
	e.state.Y = y
}

// ParticleCount implements Emitter.
func (e *ParticleEmitter) ParticleCount() int {
	return len(e.state.Particles)
}

// Particles 返回发射器当前拥有的粒子（只读）
func (e *ParticleEmitter) Particles() []*components.ParticleComponent {
	return e.state.Particles
}

// TotalLaunched 返回累计发射的粒子数
func (e *ParticleEmitter) TotalLaunched() int {
	return e.state.TotalLaunched
}

// ReapExhausted returns the emitters that are not exhausted, in their
// original order. The input slice is not modified.
func ReapExhausted(emitters []Emitter) []Emitter {
	survivors := make([]Emitter, 0, len(emitters))
	for _, e := range emitters {
		if !e.IsExhausted() {
			survivors = append(survivors, e)
		}
	}
	return survivors
}
