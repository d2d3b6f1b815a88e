package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/emitterdemo/pkg/components"
)

// maxQuadsPerBatch 单次 DrawTriangles 的四边形上限（索引为 uint16）
const maxQuadsPerBatch = math.MaxUint16 / 4

// additiveBlend 加法混合模式（用于发光效果）
var additiveBlend = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorOne,
	BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
	BlendOperationRGB:           ebiten.BlendOperationAdd,
	BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
	BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
	BlendOperationAlpha:         ebiten.BlendOperationAdd,
}

// RenderSystem draws particles as textured quads.
//
// Consecutive particles sharing a texture and blend mode are drawn with a
// single DrawTriangles call. Batches never reorder particles, so the draw
// order always matches the slice order.
//
// The vertex and index buffers are reused between frames; a RenderSystem must
// only be used from the game loop goroutine.
type RenderSystem struct {
	particleVertices []ebiten.Vertex
	particleIndices  []uint16
}

// NewRenderSystem creates a RenderSystem.
func NewRenderSystem() *RenderSystem {
	return &RenderSystem{
		particleVertices: make([]ebiten.Vertex, 0, 256),
		particleIndices:  make([]uint16, 0, 384),
	}
}

// DrawParticles 按顺序绘制粒子，不修改粒子状态
func (s *RenderSystem) DrawParticles(screen *ebiten.Image, particles []*components.ParticleComponent) {
	start := 0
	for start < len(particles) {
		// 找出与 particles[start] 共享贴图和混合模式的连续区间
		first := particles[start]
		end := start + 1
		for end < len(particles) && end-start < maxQuadsPerBatch &&
			particles[end].Image == first.Image && particles[end].Additive == first.Additive {
			end++
		}
		s.drawBatch(screen, particles[start:end])
		start = end
	}
}

func (s *RenderSystem) drawBatch(screen *ebiten.Image, batch []*components.ParticleComponent) {
	image := batch[0].Image
	if image == nil {
		return
	}

	// 重置顶点数组（保留容量，避免内存分配）
	s.particleVertices = s.particleVertices[:0]
	s.particleIndices = s.particleIndices[:0]

	for _, p := range batch {
		baseIndex := uint16(len(s.particleVertices))
		s.particleVertices = AppendParticleVertices(s.particleVertices, p)

		// 两个三角形：左上、右上、左下 / 右上、右下、左下
		s.particleIndices = append(s.particleIndices,
			baseIndex+0, baseIndex+1, baseIndex+2,
			baseIndex+1, baseIndex+3, baseIndex+2,
		)
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	if batch[0].Additive {
		op.Blend = additiveBlend
	}

	screen.DrawTriangles(s.particleVertices, s.particleIndices, image, op)
}

// AppendParticleVertices appends the four corners of the particle's quad to
// dst: top-left, top-right, bottom-left, bottom-right.
//
// The quad is centred on the particle position, rotated by Rotation degrees
// and scaled by Scale. Vertex colour is white with the particle's alpha.
// A particle without an image appends nothing.
func AppendParticleVertices(dst []ebiten.Vertex, p *components.ParticleComponent) []ebiten.Vertex {
	if p.Image == nil {
		return dst
	}

	bounds := p.Image.Bounds()
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())

	srcX0 := float32(bounds.Min.X)
	srcY0 := float32(bounds.Min.Y)
	srcX1 := float32(bounds.Max.X)
	srcY1 := float32(bounds.Max.Y)

	// 中心对齐的四个角
	corners := [4][2]float64{
		{-w / 2, -h / 2},
		{w / 2, -h / 2},
		{-w / 2, h / 2},
		{w / 2, h / 2},
	}
	srcs := [4][2]float32{
		{srcX0, srcY0},
		{srcX1, srcY0},
		{srcX0, srcY1},
		{srcX1, srcY1},
	}

	radians := p.Rotation * math.Pi / 180.0
	cosTheta := math.Cos(radians)
	sinTheta := math.Sin(radians)
	alpha := float32(p.Alpha)

	for i, corner := range corners {
		// 先旋转，再缩放，最后平移到粒子位置
		rotatedX := corner[0]*cosTheta - corner[1]*sinTheta
		rotatedY := corner[0]*sinTheta + corner[1]*cosTheta

		dst = append(dst, ebiten.Vertex{
			DstX:   float32(p.X + rotatedX*p.Scale),
			DstY:   float32(p.Y + rotatedY*p.Scale),
			SrcX:   srcs[i][0],
			SrcY:   srcs[i][1],
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: alpha,
		})
	}
	return dst
}
