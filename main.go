// Command emitterdemo 粒子发射器演示
//
// 一个绕窗口中心旋转的喷泉、一团跟随鼠标的粒子云，点击左键产生一次爆发。
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose         输出详细日志
//	--config <path>   使用指定的配置文件（默认使用内嵌的 data/demo.yaml）
//	--seed <n>        随机种子（0 = 使用配置文件或当前时间）
//	--mute            本次运行静音
//	--debug           启动时显示 HUD
//
// Controls:
//
//	Left Click   - 在光标位置产生爆发
//	F3           - 显示/隐藏 HUD
//	M            - 开关音效（保存到设置）
//	- / =        - 降低/提高音量（保存到设置）
//	F11          - 切换全屏
//	Q/Escape     - 退出
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/gonewx/emitterdemo/pkg/app"
	"github.com/gonewx/emitterdemo/pkg/embedded"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	configFlag  = flag.String("config", "", "Path to a demo config yaml (default: embedded data/demo.yaml)")
	seedFlag    = flag.Int64("seed", 0, "Random seed (0 = config or current time)")
	muteFlag    = flag.Bool("mute", false, "Disable sound for this session")
	debugFlag   = flag.Bool("debug", false, "Show the HUD on startup")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（必须在任何资源加载之前）
	embedded.Init(assetsFS, dataFS)

	demo, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		Seed:       *seedFlag,
		Mute:       *muteFlag,
		Debug:      *debugFlag,
	})
	if err != nil {
		fatal(err)
	}

	window := demo.DemoConfig().Window
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetTPS(window.TPS)

	if err := ebiten.RunGame(demo); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(err)
	}
}

// fatal 输出错误并弹出对话框后退出
// 非 verbose 模式下日志被丢弃，所以同时写 stderr
func fatal(err error) {
	log.Printf("[Main] %v", err)
	fmt.Fprintf(os.Stderr, "emitterdemo: %v\n", err)
	if dialogErr := zenity.Error(err.Error(), zenity.Title("Particles!"), zenity.ErrorIcon); dialogErr != nil {
		log.Printf("[Main] Failed to show error dialog: %v", dialogErr)
	}
	os.Exit(1)
}
