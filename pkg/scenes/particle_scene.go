package scenes

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/emitterdemo/pkg/components"
	"github.com/gonewx/emitterdemo/pkg/config"
	"github.com/gonewx/emitterdemo/pkg/game"
	"github.com/gonewx/emitterdemo/pkg/systems"
	"github.com/gonewx/emitterdemo/pkg/utils"
)

// ParticleScene 粒子演示场景
//
// 场景持有三类发射器：
//   - fountain: 按固定间隔发射，绕窗口中心做圆周运动
//   - cursor: 维持固定粒子数，跟随指针
//   - burst: 每次主键按下时生成，一次性发射，粒子全部消失后被移除
//
// 发射器按加入顺序更新和绘制。
type ParticleScene struct {
	cfg   *config.DemoConfig
	audio *game.AudioManager // 可为 nil

	particleSystem *systems.ParticleSystem
	renderSystem   *systems.RenderSystem

	emitters []systems.Emitter
	fountain *systems.ParticleEmitter
	cursor   *systems.ParticleEmitter

	burstSpec components.ParticleSpec

	// timer 已完成的 Update 次数，驱动喷泉轨道
	timer int
}

// NewParticleScene 创建粒子演示场景
//
// 参数:
//   - rm: 资源管理器，用于加载/注册贴图
//   - am: 音频管理器（可为 nil）
//   - cfg: 演示配置
//   - rng: 随机源（为 nil 时使用全局随机源）
//
// 返回:
//   - error: 贴图加载失败
func NewParticleScene(rm *game.ResourceManager, am *game.AudioManager, cfg *config.DemoConfig, rng *rand.Rand) (*ParticleScene, error) {
	textures, err := loadTextures(rm, cfg.Textures)
	if err != nil {
		return nil, fmt.Errorf("failed to load particle textures: %w", err)
	}

	s := &ParticleScene{
		cfg:            cfg,
		audio:          am,
		particleSystem: systems.NewParticleSystem(rng, cfg.TickSeconds()),
		renderSystem:   systems.NewRenderSystem(),
		burstSpec:      newParticleSpec(cfg.Burst.Particle, textures),
	}

	fx, fy := s.FountainPosition(0)
	s.fountain = systems.NewParticleEmitter(fx, fy,
		newFountainController(cfg.Fountain),
		newParticleSpec(cfg.Fountain.Particle, textures),
		s.particleSystem, s.renderSystem)

	cx, cy := cfg.Center()
	s.cursor = systems.NewParticleEmitter(cx, cy,
		systems.NewEmitMaintainCount(cfg.Cursor.Count),
		newParticleSpec(cfg.Cursor.Particle, textures),
		s.particleSystem, s.renderSystem)

	s.emitters = []systems.Emitter{s.fountain, s.cursor}

	log.Printf("[ParticleScene] Initialized: fountain at (%.0f, %.0f), cursor at (%.0f, %.0f)", fx, fy, cx, cy)
	return s, nil
}

// newFountainController 根据配置选择喷泉的发射控制器
func newFountainController(cfg config.FountainConfig) systems.EmitController {
	switch cfg.Controller {
	case config.ControllerIntervalCount:
		return systems.NewEmitIntervalWithCount(cfg.Interval, cfg.Count)
	case config.ControllerIntervalTime:
		return systems.NewEmitIntervalWithTime(cfg.Interval, cfg.Duration)
	}
	return systems.NewEmitInterval(cfg.Interval)
}

// loadTextures 加载图片贴图并生成两张柔边贴图
func loadTextures(rm *game.ResourceManager, cfg config.TexturesConfig) (map[string]*ebiten.Image, error) {
	item, err := rm.LoadImage(cfg.Item.Path)
	if err != nil {
		return nil, err
	}

	circle := rm.RegisterImage(config.TextureCircle, utils.MakeSoftCircle(
		cfg.Circle.Size, cfg.Circle.Color.RGBA, cfg.Circle.CenterAlpha, cfg.Circle.OuterAlpha))
	square := rm.RegisterImage(config.TextureSquare, utils.MakeSoftSquare(
		cfg.Square.Size, cfg.Square.Color.RGBA, cfg.Square.CenterAlpha, cfg.Square.OuterAlpha))

	return map[string]*ebiten.Image{
		config.TextureItem:   item,
		config.TextureCircle: circle,
		config.TextureSquare: square,
	}, nil
}

func newParticleSpec(p config.ParticleConfig, textures map[string]*ebiten.Image) components.ParticleSpec {
	return components.ParticleSpec{
		Image:           textures[p.Texture],
		Velocity:        p.Velocity,
		Lifetime:        p.Lifetime,
		Scale:           p.Scale,
		AngularVelocity: p.AngularVelocity,
		Fade:            p.Fade,
		FadeCurve:       p.FadeCurve,
		Additive:        p.Additive,
	}
}

// SpawnBurst 在 (x, y) 创建一次性爆发发射器，调用方负责加入场景
//
// 返回的发射器已经预先生成了全部粒子，在第一次 Update 之前绘制也可见。
func (s *ParticleScene) SpawnBurst(x, y float64) systems.Emitter {
	burst := systems.NewParticleEmitter(x, y,
		systems.NewEmitBurst(s.cfg.Burst.Count),
		s.burstSpec,
		s.particleSystem, s.renderSystem)
	burst.Prime()
	return burst
}

// Update 推进一个 tick
//
// deltaTime 被忽略：模拟按固定 tick 推进，tick 时长由配置的 TPS 决定。
func (s *ParticleScene) Update(deltaTime float64) {
	for _, e := range s.emitters {
		e.Update()
	}

	before := len(s.emitters)
	s.emitters = systems.ReapExhausted(s.emitters)
	if reaped := before - len(s.emitters); reaped > 0 {
		log.Printf("[ParticleScene] Reaped %d exhausted emitter(s), %d remain", reaped, len(s.emitters))
	}

	s.timer++
	s.fountain.SetPosition(s.FountainPosition(s.timer))
}

// FountainPosition 第 t 帧时喷泉的位置：center + R*(cos(k*t), sin(k*t))
func (s *ParticleScene) FountainPosition(t int) (x, y float64) {
	cx, cy := s.cfg.Center()
	orbit := s.cfg.Fountain.Orbit
	angle := orbit.Rate * float64(t)
	return cx + orbit.Radius*math.Cos(angle), cy + orbit.Radius*math.Sin(angle)
}

// Draw 清屏后按加入顺序绘制所有发射器，不修改模拟状态
func (s *ParticleScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.cfg.Window.Background.RGBA)
	for _, e := range s.emitters {
		e.Draw(screen)
	}
}

// OnPointerMove 鼠标云跟随指针
func (s *ParticleScene) OnPointerMove(x, y, dx, dy float64) {
	s.cursor.SetPosition(x, y)
}

// OnPointerPress 主键（鼠标左键或触摸）在按下位置产生爆发
func (s *ParticleScene) OnPointerPress(x, y float64, button ebiten.MouseButton, mods utils.Modifiers) {
	if button != ebiten.MouseButtonLeft {
		return
	}
	s.emitters = append(s.emitters, s.SpawnBurst(x, y))
	s.audio.PlayBurst()
	log.Printf("[ParticleScene] Burst at (%.0f, %.0f), %d emitters active", x, y, len(s.emitters))
}

// Emitters 返回当前活动的发射器（按绘制顺序）
func (s *ParticleScene) Emitters() []systems.Emitter {
	return s.emitters
}

// Fountain 返回喷泉发射器
func (s *ParticleScene) Fountain() systems.Emitter {
	return s.fountain
}

// Cursor 返回跟随指针的发射器
func (s *ParticleScene) Cursor() systems.Emitter {
	return s.cursor
}

// Timer 返回已完成的 Update 次数
func (s *ParticleScene) Timer() int {
	return s.timer
}

// EmitterCount 实现 game.Stats
func (s *ParticleScene) EmitterCount() int {
	return len(s.emitters)
}

// ParticleCount 实现 game.Stats
func (s *ParticleScene) ParticleCount() int {
	n := 0
	for _, e := range s.emitters {
		n += e.ParticleCount()
	}
	return n
}
