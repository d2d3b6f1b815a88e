package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/emitterdemo/pkg/utils"
)

// Scene represents a screen of the application with its own update and
// rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// PointerHandler 是一个可选接口，场景实现后会收到指针事件
//
// 事件在同一帧的 Update 之前派发
type PointerHandler interface {
	// OnPointerMove 指针移动到 (x, y)，(dx, dy) 为相对上一帧的位移
	OnPointerMove(x, y, dx, dy float64)
	// OnPointerPress 指针在 (x, y) 按下；触摸按下以 MouseButtonLeft 上报
	OnPointerPress(x, y float64, button ebiten.MouseButton, mods utils.Modifiers)
}

// Stats 是一个可选接口，场景实现后调试信息会显示其统计数据
type Stats interface {
	EmitterCount() int
	ParticleCount() int
}
