package components

// EmitterComponent holds the runtime state of one particle emitter: where it
// is, the particles it currently owns and how many it has launched.
//
// Particles are kept in spawn order; the renderer draws them in that order.
type EmitterComponent struct {
	// Emitter position (发射器位置，新粒子在此生成)
	X float64
	Y float64

	// Particle tracking (粒子追踪)
	Particles     []*ParticleComponent
	TotalLaunched int // Total number of particles spawned so far
}
