// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Modifiers 按下指针时的修饰键状态
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has 是否包含指定修饰键
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod != 0
}

// trackedButtons 会产生按下事件的鼠标按键
var trackedButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// PointerSample 某一帧的原始指针状态
// 同时支持鼠标和触摸输入，触摸按下视为鼠标左键
type PointerSample struct {
	X, Y        int
	JustPressed []ebiten.MouseButton
	Mods        Modifiers
}

// PointerPress 一次指针按下事件
type PointerPress struct {
	X, Y   float64
	Button ebiten.MouseButton
	Mods   Modifiers
}

// PointerEvents 一帧内产生的指针事件
type PointerEvents struct {
	Moved        bool
	X, Y, DX, DY float64
	Presses      []PointerPress
}

// PointerTracker 将逐帧轮询的指针状态转换为移动/按下事件
//
// 第一帧只记录位置，不产生移动事件；之后位置变化时产生一次移动事件，
// 带有相对上一帧的位移。
type PointerTracker struct {
	lastX, lastY int
	initialized  bool
}

// NewPointerTracker 创建指针跟踪器
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

// Poll 读取当前帧的鼠标/触摸状态并返回事件
// 必须在 ebiten 的 Update 中调用
func (pt *PointerTracker) Poll() PointerEvents {
	return pt.Process(CurrentPointerSample())
}

// Process 根据一帧的指针状态计算事件
func (pt *PointerTracker) Process(s PointerSample) PointerEvents {
	var ev PointerEvents

	if !pt.initialized {
		pt.initialized = true
	} else if s.X != pt.lastX || s.Y != pt.lastY {
		ev.Moved = true
		ev.X, ev.Y = float64(s.X), float64(s.Y)
		ev.DX, ev.DY = float64(s.X-pt.lastX), float64(s.Y-pt.lastY)
	}
	pt.lastX, pt.lastY = s.X, s.Y

	for _, b := range s.JustPressed {
		ev.Presses = append(ev.Presses, PointerPress{
			X:      float64(s.X),
			Y:      float64(s.Y),
			Button: b,
			Mods:   s.Mods,
		})
	}
	return ev
}

// CurrentPointerSample 获取当前帧的指针状态
// 优先检测触摸（移动设备），其次鼠标（桌面设备）
func CurrentPointerSample() PointerSample {
	s := PointerSample{Mods: CurrentModifiers()}

	// 首先检查触摸输入
	if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
		s.X, s.Y = ebiten.TouchPosition(touchIDs[0])
		s.JustPressed = append(s.JustPressed, ebiten.MouseButtonLeft)
		return s
	}
	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		s.X, s.Y = ebiten.TouchPosition(touchIDs[0])
		return s
	}

	// 其次检查鼠标输入
	s.X, s.Y = ebiten.CursorPosition()
	for _, b := range trackedButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			s.JustPressed = append(s.JustPressed, b)
		}
	}
	return s
}

// CurrentModifiers 读取修饰键状态
func CurrentModifiers() Modifiers {
	var m Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= ModMeta
	}
	return m
}
