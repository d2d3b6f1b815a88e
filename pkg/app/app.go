// Package app 提供演示应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/emitterdemo/pkg/config"
	"github.com/gonewx/emitterdemo/pkg/game"
	"github.com/gonewx/emitterdemo/pkg/scenes"
	"github.com/gonewx/emitterdemo/pkg/utils"
)

// AppName gdata 存储使用的应用名
const AppName = "emitterdemo"

// volumeStep -/= 键每次调整的音量
const volumeStep = 0.1

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 演示配置路径，为空时使用内嵌的 data/demo.yaml
	ConfigPath string
	// Seed 随机种子，非 0 时覆盖配置文件中的 seed
	Seed int64
	// Mute 本次运行静音（不修改保存的设置）
	Mute bool
	// Debug 启动时显示 HUD（移动端总是显示）
	Debug bool
}

// App 是演示应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	demoConfig      *config.DemoConfig
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	audioManager    *game.AudioManager
	pointer         *utils.PointerTracker
	showHUD         bool
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化演示应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.DefaultConfigPath
	}
	demoConfig, err := config.LoadDemoConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("演示配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载演示配置: %s", configPath)

	seed := demoConfig.Seed
	if cfg.Seed != 0 {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)

	// 音频上下文每个进程只能创建一次
	audioContext := audio.CurrentContext()
	if audioContext == nil {
		audioContext = audio.NewContext(game.AudioSampleRate)
	}

	settingsManager := game.NewSettingsManager(game.OpenSettingsStorage(AppName))
	audioManager := game.NewAudioManager(audioContext, settingsManager, demoConfig.Audio)
	if cfg.Mute {
		audioManager.SetEnabled(false)
		log.Printf("[App] Sound muted for this session")
	}
	log.Printf("[App] AudioManager initialized (enabled=%v)", audioManager.IsEnabled())

	resourceManager := game.NewResourceManager()
	scene, err := scenes.NewParticleScene(resourceManager, audioManager, demoConfig, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("场景初始化失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	return &App{
		demoConfig:      demoConfig,
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		audioManager:    audioManager,
		pointer:         utils.NewPointerTracker(),
		showHUD:         cfg.Debug || utils.IsMobile() || settingsManager.GetSettings().ShowHUD,
		verbose:         cfg.Verbose,
	}, nil
}

// Update 更新演示逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.demoConfig.Window.Width, a.demoConfig.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		a.ToggleHUD()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.ToggleSound()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		a.AdjustVolume(-volumeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		a.AdjustVolume(volumeStep)
	}

	a.sceneManager.DispatchPointer(a.pointer.Poll())
	a.sceneManager.Update(a.demoConfig.TickSeconds())
	return nil
}

// ToggleHUD 切换统计信息显示并保存
func (a *App) ToggleHUD() {
	a.showHUD = !a.showHUD
	a.settingsManager.SetShowHUD(a.showHUD)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// ToggleSound 切换音效开关并保存
func (a *App) ToggleSound() {
	enabled := !a.settingsManager.GetSettings().SoundEnabled
	a.settingsManager.SetSoundEnabled(enabled)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	log.Printf("[App] Sound enabled: %v", enabled)
}

// AdjustVolume 调整音效音量并保存，结果限制在 0.0 ~ 1.0
func (a *App) AdjustVolume(delta float64) {
	a.settingsManager.SetSoundVolume(a.settingsManager.GetSettings().SoundVolume + delta)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	log.Printf("[App] Sound volume: %.1f", a.settingsManager.GetSettings().SoundVolume)
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
	if a.showHUD {
		ebitenutil.DebugPrintAt(screen, a.HUDText(), 8, 8)
	}
}

// HUDText 返回 HUD 文本
func (a *App) HUDText() string {
	emitters, particles := 0, 0
	if stats, ok := a.sceneManager.GetCurrentScene().(game.Stats); ok {
		emitters = stats.EmitterCount()
		particles = stats.ParticleCount()
	}

	sound := "on"
	if !a.audioManager.IsEnabled() || !a.settingsManager.GetSettings().SoundEnabled {
		sound = "off"
	}
	return fmt.Sprintf("Emitters: %d\nParticles: %d\nTPS: %0.1f  FPS: %0.1f\nSound: %s (M)  Volume: %.0f%% (-/=)",
		emitters, particles, ebiten.ActualTPS(), ebiten.ActualFPS(), sound,
		a.settingsManager.GetSettings().SoundVolume*100)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时 letterbox 使用背景色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(a.demoConfig.Window.Background.RGBA)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.demoConfig.Window.Width, a.demoConfig.Window.Height
}

// DemoConfig 返回加载后的演示配置
func (a *App) DemoConfig() *config.DemoConfig {
	return a.demoConfig
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsHUDVisible 返回 HUD 是否显示
func (a *App) IsHUDVisible() bool {
	return a.showHUD
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
