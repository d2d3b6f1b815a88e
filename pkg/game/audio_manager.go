package game

import (
	"log"
	"time"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/gonewx/emitterdemo/pkg/config"
)

// AudioSampleRate 音频上下文采样率
const AudioSampleRate = 48000

// maxActiveCues 同时播放的音效上限，超出时跳过新的播放
const maxActiveCues = 8

// AudioManager 音频管理器
// 职责：
//   - 在初始化时合成爆发音效（PCM 数据只生成一次）
//   - 播放音效时应用 SettingsManager 中的开关和音量
//   - 没有音频上下文时静默降级
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager // 可为 nil（使用默认设置）
	burstPCM        []byte
	enabled         bool
	active          []*audio.Player // 正在播放的音效，防止播放中被回收
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，为 nil 时所有播放都被跳过
//   - sm: SettingsManager 实例（可为 nil）
//   - cfg: 爆发音效配置
func NewAudioManager(ctx *audio.Context, sm *SettingsManager, cfg config.AudioConfig) *AudioManager {
	am := &AudioManager{
		context:         ctx,
		settingsManager: sm,
		enabled:         cfg.Enabled && ctx != nil,
	}
	if am.enabled {
		sr := beep.SampleRate(ctx.SampleRate())
		duration := time.Duration(cfg.DurationMs) * time.Millisecond
		am.burstPCM = SynthesizeCue(sr, cfg.Frequency, duration, cfg.Volume)
		log.Printf("[AudioManager] Burst cue synthesized: %.0f Hz, %v, %d bytes", cfg.Frequency, duration, len(am.burstPCM))
	}
	return am
}

// SetEnabled 开关全部音效（不影响保存的设置）
func (am *AudioManager) SetEnabled(enabled bool) {
	if am == nil {
		return
	}
	am.enabled = enabled && am.context != nil && len(am.burstPCM) > 0
}

// IsEnabled 返回音效是否可以播放
func (am *AudioManager) IsEnabled() bool {
	return am != nil && am.enabled
}

// PlayBurst 播放爆发音效
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlayBurst() bool {
	if am == nil || !am.enabled {
		return false
	}

	volume := 1.0
	if am.settingsManager != nil {
		settings := am.settingsManager.GetSettings()
		if !settings.SoundEnabled {
			return false
		}
		volume = settings.SoundVolume
	}

	am.pruneFinished()
	if len(am.active) >= maxActiveCues {
		return false
	}

	player := am.context.NewPlayerFromBytes(am.burstPCM)
	player.SetVolume(volume)
	player.Play()
	am.active = append(am.active, player)
	return true
}

// pruneFinished 释放已经播放完毕的播放器
func (am *AudioManager) pruneFinished() {
	playing := am.active[:0]
	for _, p := range am.active {
		if p.IsPlaying() {
			playing = append(playing, p)
		} else {
			p.Close()
		}
	}
	for i := len(playing); i < len(am.active); i++ {
		am.active[i] = nil
	}
	am.active = playing
}
