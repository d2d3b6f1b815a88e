package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/gonewx/emitterdemo/internal/particle"
)

// TestLoadDemoConfig_BundledFile 测试加载仓库内的 data/demo.yaml
func TestLoadDemoConfig_BundledFile(t *testing.T) {
	cfg, err := LoadDemoConfig("../../data/demo.yaml")
	if err != nil {
		t.Fatalf("Failed to load demo.yaml: %v", err)
	}

	if cfg.Window.Width != 600 || cfg.Window.Height != 600 {
		t.Errorf("Expected 600x600 window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "Particles!" {
		t.Errorf("Expected title 'Particles!', got '%s'", cfg.Window.Title)
	}
	if cfg.Window.Background != RGB(0x1b, 0x1b, 0x1b) {
		t.Errorf("Expected background #1b1b1b, got %s", cfg.Window.Background)
	}

	// 喷泉
	if cfg.Fountain.Interval != 0.01 {
		t.Errorf("Expected fountain interval 0.01, got %v", cfg.Fountain.Interval)
	}
	if cfg.Fountain.Particle.Velocity != particle.Disc(4.5) {
		t.Errorf("Expected fountain disc velocity 4.5, got %+v", cfg.Fountain.Particle.Velocity)
	}

	// 鼠标云
	if cfg.Cursor.Count != 30 {
		t.Errorf("Expected cursor count 30, got %d", cfg.Cursor.Count)
	}
	if cfg.Cursor.Particle.Lifetime != (particle.Range{Min: 0, Max: 1}) {
		t.Errorf("Expected cursor lifetime [0 1], got %s", cfg.Cursor.Particle.Lifetime)
	}

	// 爆发
	if cfg.Burst.Count != 100 {
		t.Errorf("Expected burst count 100, got %d", cfg.Burst.Count)
	}
	if cfg.Burst.Particle.AngularVelocity != 10 {
		t.Errorf("Expected burst angular velocity 10, got %v", cfg.Burst.Particle.AngularVelocity)
	}
	if cfg.Textures.Square.Color != RGB(0, 0xff, 0) {
		t.Errorf("Expected square color lime, got %s", cfg.Textures.Square.Color)
	}
}

func TestLoadDemoConfig_MissingFile(t *testing.T) {
	_, err := LoadDemoConfig("does/not/exist.yaml")
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !strings.Contains(err.Error(), "does/not/exist.yaml") {
		t.Errorf("Error should mention the path, got: %v", err)
	}
}

// TestParseDemoConfig_PartialOverride 未写出的字段保留默认值
func TestParseDemoConfig_PartialOverride(t *testing.T) {
	cfg, err := ParseDemoConfig([]byte("seed: 7\nburst:\n  count: 5\n"))
	if err != nil {
		t.Fatalf("ParseDemoConfig failed: %v", err)
	}
	if cfg.Seed != 7 {
		t.Errorf("Expected seed 7, got %d", cfg.Seed)
	}
	if cfg.Burst.Count != 5 {
		t.Errorf("Expected burst count 5, got %d", cfg.Burst.Count)
	}
	if cfg.Burst.Particle.Texture != TextureSquare {
		t.Errorf("Expected default burst texture, got %q", cfg.Burst.Particle.Texture)
	}
	if cfg.Cursor.Count != 30 {
		t.Errorf("Expected default cursor count 30, got %d", cfg.Cursor.Count)
	}
}

func TestParseDemoConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"零宽窗口", "window:\n  width: 0\n"},
		{"负 tps", "window:\n  tps: -1\n"},
		{"零间隔", "fountain:\n  interval: 0\n"},
		{"负鼠标数量", "cursor:\n  count: -3\n"},
		{"零爆发数量", "burst:\n  count: 0\n"},
		{"未知贴图", "burst:\n  particle:\n    texture: hexagon\n"},
		{"寿命倒置", "cursor:\n  particle:\n    lifetime: \"[2 1]\"\n"},
		{"零缩放", "fountain:\n  particle:\n    scale: 0\n"},
		{"音量越界", "audio:\n  volume: 1.5\n"},
		{"零贴图尺寸", "textures:\n  circle:\n    size: 0\n"},
		{"未知速度分布", "burst:\n  particle:\n    velocity:\n      kind: spiral\n"},
		{"未知控制器", "fountain:\n  controller: pulse\n"},
		{"限量缺少数量", "fountain:\n  controller: intervalCount\n"},
		{"限时缺少时长", "fountain:\n  controller: intervalTime\n  duration: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDemoConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestParseDemoConfig_MalformedYAML(t *testing.T) {
	_, err := ParseDemoConfig([]byte("window: [unclosed"))
	if err == nil {
		t.Fatal("Expected parse error")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Error("Syntax errors should not be reported as ErrInvalidConfig")
	}
}

func TestParseDemoConfig_AudioDisabledSkipsFrequencyCheck(t *testing.T) {
	cfg, err := ParseDemoConfig([]byte("audio:\n  enabled: false\n  frequency: 0\n"))
	if err != nil {
		t.Fatalf("Disabled audio should not require frequency: %v", err)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled")
	}
}

func TestDemoConfig_Helpers(t *testing.T) {
	cfg := DefaultDemoConfig()
	if got := cfg.TickSeconds(); got != 1.0/60 {
		t.Errorf("TickSeconds() = %v, want 1/60", got)
	}
	x, y := cfg.Center()
	if x != 300 || y != 300 {
		t.Errorf("Center() = (%v, %v), want (300, 300)", x, y)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

func TestParseDemoConfig_FountainController(t *testing.T) {
	cfg, err := ParseDemoConfig([]byte("fountain:\n  controller: intervalCount\n  count: 25\n"))
	if err != nil {
		t.Fatalf("ParseDemoConfig failed: %v", err)
	}
	if cfg.Fountain.Controller != ControllerIntervalCount || cfg.Fountain.Count != 25 {
		t.Errorf("Expected intervalCount/25, got %s/%d", cfg.Fountain.Controller, cfg.Fountain.Count)
	}
	// 未修改的字段保留默认值
	if cfg.Fountain.Interval != 0.01 {
		t.Errorf("Expected default interval 0.01, got %v", cfg.Fountain.Interval)
	}

	cfg, err = ParseDemoConfig([]byte("fountain:\n  controller: intervalTime\n  duration: 2.5\n"))
	if err != nil {
		t.Fatalf("ParseDemoConfig failed: %v", err)
	}
	if cfg.Fountain.Duration != 2.5 {
		t.Errorf("Expected duration 2.5, got %v", cfg.Fountain.Duration)
	}

	if DefaultDemoConfig().Fountain.Controller != ControllerInterval {
		t.Errorf("Expected default controller %q", ControllerInterval)
	}
}
