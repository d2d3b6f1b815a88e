package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/emitterdemo/internal/particle"
	"github.com/gonewx/emitterdemo/pkg/embedded"
)

// DefaultConfigPath 内嵌配置文件路径
const DefaultConfigPath = "data/demo.yaml"

// 默认窗口参数
const (
	DefaultWindowWidth  = 600
	DefaultWindowHeight = 600
	DefaultWindowTitle  = "Particles!"
	DefaultTPS          = 60
)

// 纹理名称，ParticleConfig.Texture 引用这些名称
const (
	TextureItem   = "item"
	TextureCircle = "circle"
	TextureSquare = "square"
)

// 喷泉发射控制器类型
const (
	ControllerInterval      = "interval"      // 无限持续
	ControllerIntervalCount = "intervalCount" // 发射 count 个后停止
	ControllerIntervalTime  = "intervalTime"  // 持续 duration 秒后停止
)

// ErrInvalidConfig 所有校验错误都包装此错误
var ErrInvalidConfig = errors.New("invalid demo config")

// DemoConfig 粒子演示配置
//
// 配置文件位置: data/demo.yaml（编译时嵌入，可通过 --config 覆盖）
// 未出现在 yaml 中的字段保留 DefaultDemoConfig 的值。
type DemoConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Seed     int64          `yaml:"seed"` // 0 表示使用当前时间
	Textures TexturesConfig `yaml:"textures"`
	Fountain FountainConfig `yaml:"fountain"`
	Cursor   CursorConfig   `yaml:"cursor"`
	Burst    BurstConfig    `yaml:"burst"`
	Audio    AudioConfig    `yaml:"audio"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Background Color  `yaml:"background"`
	TPS        int    `yaml:"tps"` // 每秒 tick 数，同时决定粒子寿命的换算
}

// TexturesConfig 三种粒子贴图
type TexturesConfig struct {
	Item   ImageTextureConfig `yaml:"item"`
	Circle SoftTextureConfig  `yaml:"circle"`
	Square SoftTextureConfig  `yaml:"square"`
}

// ImageTextureConfig 来自图片文件的贴图
type ImageTextureConfig struct {
	Path string `yaml:"path"`
}

// SoftTextureConfig 程序生成的柔边贴图（中心到边缘 alpha 线性过渡）
type SoftTextureConfig struct {
	Size        int   `yaml:"size"`
	Color       Color `yaml:"color"`
	CenterAlpha uint8 `yaml:"centerAlpha"`
	OuterAlpha  uint8 `yaml:"outerAlpha"`
}

// ParticleConfig 单个粒子的生成参数
type ParticleConfig struct {
	Texture         string            `yaml:"texture"`
	Velocity        particle.Velocity `yaml:"velocity"` // 像素/tick
	Lifetime        particle.Range    `yaml:"lifetime"` // 秒
	Scale           float64           `yaml:"scale"`
	AngularVelocity float64           `yaml:"angularVelocity"` // 度/tick
	Fade            bool              `yaml:"fade"`
	FadeCurve       string            `yaml:"fadeCurve"` // 插值模式，默认 Linear
	Additive        bool              `yaml:"additive"`  // 加法混合
}

// FountainConfig 绕窗口中心旋转、按固定间隔发射的喷泉
//
// Controller 为空或 "interval" 时喷泉一直发射；限量/限时的喷泉
// 停止发射且粒子全部消失后会像爆发一样被移除。
type FountainConfig struct {
	Interval   float64        `yaml:"interval"` // 秒
	Controller string         `yaml:"controller"`
	Count      int            `yaml:"count"`    // intervalCount 使用
	Duration   float64        `yaml:"duration"` // intervalTime 使用，秒
	Orbit      OrbitConfig    `yaml:"orbit"`
	Particle   ParticleConfig `yaml:"particle"`
}

// OrbitConfig 喷泉轨道：center + Radius*(cos(Rate*t), sin(Rate*t))，t 为帧数
type OrbitConfig struct {
	Radius float64 `yaml:"radius"`
	Rate   float64 `yaml:"rate"`
}

// CursorConfig 跟随鼠标、维持固定粒子数的发射器
type CursorConfig struct {
	Count    int            `yaml:"count"`
	Particle ParticleConfig `yaml:"particle"`
}

// BurstConfig 点击产生的一次性爆发
type BurstConfig struct {
	Count    int            `yaml:"count"`
	Particle ParticleConfig `yaml:"particle"`
}

// AudioConfig 爆发音效
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`     // 0.0 ~ 1.0
	Frequency  float64 `yaml:"frequency"`  // Hz
	DurationMs int     `yaml:"durationMs"` // 毫秒
}

// DefaultDemoConfig 返回默认配置
func DefaultDemoConfig() *DemoConfig {
	return &DemoConfig{
		Window: WindowConfig{
			Width:      DefaultWindowWidth,
			Height:     DefaultWindowHeight,
			Title:      DefaultWindowTitle,
			Background: RGB(0x1b, 0x1b, 0x1b),
			TPS:        DefaultTPS,
		},
		Textures: TexturesConfig{
			Item: ImageTextureConfig{Path: "assets/images/items/platformPack_item001.png"},
			Circle: SoftTextureConfig{
				Size:        20,
				Color:       RGB(0xff, 0x00, 0x00),
				CenterAlpha: 255,
				OuterAlpha:  0,
			},
			Square: SoftTextureConfig{
				Size:        50,
				Color:       RGB(0x00, 0xff, 0x00),
				CenterAlpha: 200,
				OuterAlpha:  150,
			},
		},
		Fountain: FountainConfig{
			Interval:   0.01,
			Controller: ControllerInterval,
			Orbit:    OrbitConfig{Radius: 100, Rate: 0.05},
			Particle: ParticleConfig{
				Texture:  TextureItem,
				Velocity: particle.Disc(4.5),
				Lifetime: particle.Fixed(1.0),
				Scale:    0.5,
				Fade:     true,
			},
		},
		Cursor: CursorConfig{
			Count: 30,
			Particle: ParticleConfig{
				Texture:  TextureCircle,
				Velocity: particle.Box(particle.Range{Min: -1, Max: 1}, particle.Range{Min: -1, Max: 1}),
				Lifetime: particle.Range{Min: 0, Max: 1},
				Scale:    1,
			},
		},
		Burst: BurstConfig{
			Count: 100,
			Particle: ParticleConfig{
				Texture:         TextureSquare,
				Velocity:        particle.Disc(10),
				Lifetime:        particle.Fixed(3),
				Scale:           0.5,
				AngularVelocity: 10,
				Fade:            true,
			},
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.4,
			Frequency:  660,
			DurationMs: 120,
		},
	}
}

// ParseDemoConfig 解析 yaml，缺省字段使用默认值，然后校验
func ParseDemoConfig(data []byte) (*DemoConfig, error) {
	cfg := DefaultDemoConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse demo config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDemoConfig 加载演示配置
//
// 路径优先在内嵌资源中查找（如 "data/demo.yaml"），找不到时从磁盘读取。
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *DemoConfig: 加载并校验后的配置
//   - error: 读取、解析或校验失败
func LoadDemoConfig(path string) (*DemoConfig, error) {
	var (
		data []byte
		err  error
	)
	if embedded.Exists(path) {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read demo config %s: %w", path, err)
	}

	cfg, err := ParseDemoConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
func (c *DemoConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d",
			ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidConfig, c.Window.TPS)
	}

	if c.Textures.Item.Path == "" {
		return fmt.Errorf("%w: textures.item.path is empty", ErrInvalidConfig)
	}
	for name, tex := range map[string]SoftTextureConfig{
		TextureCircle: c.Textures.Circle,
		TextureSquare: c.Textures.Square,
	} {
		if tex.Size <= 0 {
			return fmt.Errorf("%w: textures.%s.size must be positive, got %d", ErrInvalidConfig, name, tex.Size)
		}
	}

	if c.Fountain.Interval <= 0 {
		return fmt.Errorf("%w: fountain.interval must be positive, got %v", ErrInvalidConfig, c.Fountain.Interval)
	}
	switch c.Fountain.Controller {
	case "", ControllerInterval:
	case ControllerIntervalCount:
		if c.Fountain.Count <= 0 {
			return fmt.Errorf("%w: fountain.count must be positive for %s, got %d",
				ErrInvalidConfig, ControllerIntervalCount, c.Fountain.Count)
		}
	case ControllerIntervalTime:
		if c.Fountain.Duration <= 0 {
			return fmt.Errorf("%w: fountain.duration must be positive for %s, got %v",
				ErrInvalidConfig, ControllerIntervalTime, c.Fountain.Duration)
		}
	default:
		return fmt.Errorf("%w: unknown fountain.controller %q", ErrInvalidConfig, c.Fountain.Controller)
	}
	if c.Cursor.Count < 0 {
		return fmt.Errorf("%w: cursor.count must be >= 0, got %d", ErrInvalidConfig, c.Cursor.Count)
	}
	if c.Burst.Count <= 0 {
		return fmt.Errorf("%w: burst.count must be positive, got %d", ErrInvalidConfig, c.Burst.Count)
	}

	for name, p := range map[string]ParticleConfig{
		"fountain": c.Fountain.Particle,
		"cursor":   c.Cursor.Particle,
		"burst":    c.Burst.Particle,
	} {
		if err := p.validate(); err != nil {
			return fmt.Errorf("%w: %s.particle: %v", ErrInvalidConfig, name, err)
		}
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be within [0, 1], got %v", ErrInvalidConfig, c.Audio.Volume)
	}
	if c.Audio.Enabled && (c.Audio.Frequency <= 0 || c.Audio.DurationMs <= 0) {
		return fmt.Errorf("%w: audio frequency and duration must be positive", ErrInvalidConfig)
	}
	return nil
}

func (p ParticleConfig) validate() error {
	switch p.Texture {
	case TextureItem, TextureCircle, TextureSquare:
	default:
		return fmt.Errorf("unknown texture %q", p.Texture)
	}
	if err := p.Velocity.Validate(); err != nil {
		return err
	}
	if p.Lifetime.Min < 0 || p.Lifetime.Min > p.Lifetime.Max {
		return fmt.Errorf("lifetime range invalid: %s", p.Lifetime)
	}
	if p.Lifetime.Max <= 0 {
		return fmt.Errorf("lifetime upper bound must be positive, got %s", p.Lifetime)
	}
	if p.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", p.Scale)
	}
	return nil
}

// TickSeconds 一个 tick 的时长（秒）
func (c *DemoConfig) TickSeconds() float64 {
	return 1.0 / float64(c.Window.TPS)
}

// Center 窗口中心坐标
func (c *DemoConfig) Center() (x, y float64) {
	return float64(c.Window.Width) / 2, float64(c.Window.Height) / 2
}
