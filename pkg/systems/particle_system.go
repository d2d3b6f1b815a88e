package systems

import (
	"math/rand"

	particlePkg "github.com/gonewx/emitterdemo/internal/particle"
	"github.com/gonewx/emitterdemo/pkg/components"
)

// DefaultTickSeconds 默认 tick 时长（60 TPS）
const DefaultTickSeconds = 1.0 / 60.0

// fadeKeyframes Alpha 从 1 线性（或按曲线）过渡到 0
var fadeKeyframes = []particlePkg.Keyframe{
	{Time: 0, Value: 1},
	{Time: 1, Value: 0},
}

// ParticleSystem spawns particles from a ParticleSpec and advances them by one
// fixed tick at a time.
//
// Each tick a particle:
//  1. moves by its velocity and spins by its rotation speed
//  2. ages by one tick
//  3. recomputes Alpha from its age when fading
//
// Particles whose age reached their lifetime are dropped from the emitter.
type ParticleSystem struct {
	rng         *rand.Rand
	tickSeconds float64
}

// NewParticleSystem creates a ParticleSystem.
// A nil rng uses the shared math/rand source; tickSeconds <= 0 uses 1/60.
func NewParticleSystem(rng *rand.Rand, tickSeconds float64) *ParticleSystem {
	if tickSeconds <= 0 {
		tickSeconds = DefaultTickSeconds
	}
	return &ParticleSystem{
		rng:         rng,
		tickSeconds: tickSeconds,
	}
}

// TickSeconds 返回一个 tick 的时长（秒）
func (ps *ParticleSystem) TickSeconds() float64 {
	return ps.tickSeconds
}

// Spawn 按 spec 在 (x, y) 生成一个粒子并加入发射器
func (ps *ParticleSystem) Spawn(emitter *components.EmitterComponent, spec *components.ParticleSpec) *components.ParticleComponent {
	vx, vy := spec.Velocity.Sample(ps.rng)
	p := &components.ParticleComponent{
		X:             emitter.X,
		Y:             emitter.Y,
		VelocityX:     vx,
		VelocityY:     vy,
		RotationSpeed: spec.AngularVelocity,
		Scale:         spec.Scale,
		Alpha:         1.0,
		Lifetime:      spec.Lifetime.Sample(ps.rng),
		Fade:          spec.Fade,
		FadeCurve:     spec.FadeCurve,
		Image:         spec.Image,
		Additive:      spec.Additive,
	}
	emitter.Particles = append(emitter.Particles, p)
	emitter.TotalLaunched++
	return p
}

// UpdateParticles advances every particle of the emitter by one tick and
// removes the expired ones.
func (ps *ParticleSystem) UpdateParticles(emitter *components.EmitterComponent) {
	for _, p := range emitter.Particles {
		ps.updateParticle(p)
	}
	ps.cleanupExpiredParticles(emitter)
}

func (ps *ParticleSystem) updateParticle(p *components.ParticleComponent) {
	p.X += p.VelocityX
	p.Y += p.VelocityY
	p.Rotation += p.RotationSpeed

	p.Age += ps.tickSeconds

	if p.Fade && p.Age <= p.Lifetime {
		t := 1.0
		if p.Lifetime > 0 {
			t = p.Age / p.Lifetime
		}
		p.Alpha = particlePkg.EvaluateKeyframes(fadeKeyframes, t, p.FadeCurve)
	}
}

// IsParticleExpired 粒子寿命是否已耗尽
func IsParticleExpired(p *components.ParticleComponent) bool {
	return p.Age >= p.Lifetime
}

// cleanupExpiredParticles 移除已过期的粒子，保留存活粒子的原有顺序
func (ps *ParticleSystem) cleanupExpiredParticles(emitter *components.EmitterComponent) {
	alive := emitter.Particles[:0]
	for _, p := range emitter.Particles {
		if !IsParticleExpired(p) {
			alive = append(alive, p)
		}
	}
	// 清理尾部引用，便于 GC 回收
	for i := len(alive); i < len(emitter.Particles); i++ {
		emitter.Particles[i] = nil
	}
	emitter.Particles = alive
}
