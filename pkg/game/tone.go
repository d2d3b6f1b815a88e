package game

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
)

// ToneGenerator 生成带指数衰减包络的正弦音
type ToneGenerator struct {
	sr    beep.SampleRate
	freq  float64
	decay float64 // 包络衰减速率（1/秒）
	pos   int
}

// NewToneGenerator creates a decaying sine tone generator.
// decay 越大衰减越快
func NewToneGenerator(sr beep.SampleRate, freq, decay float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq, decay: decay}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := math.Exp(-t*g.decay) * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// SynthesizeCue renders a short decaying tone into 16-bit little-endian
// stereo PCM, the format ebiten's audio players consume.
//
// volume ∈ [0, 1] scales the amplitude; 0 produces silence.
func SynthesizeCue(sr beep.SampleRate, freq float64, duration time.Duration, volume float64) []byte {
	total := sr.N(duration)
	if total <= 0 {
		return nil
	}

	// 衰减到结尾约为 1%
	decay := math.Log(100) / duration.Seconds()
	var streamer beep.Streamer = beep.Take(total, NewToneGenerator(sr, freq, decay))
	streamer = &effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   math.Log2(math.Max(volume, 1e-6)),
		Silent:   volume <= 0,
	}

	pcm := make([]byte, 0, total*4)
	buf := make([][2]float64, 512)
	for {
		n, ok := streamer.Stream(buf)
		for _, s := range buf[:n] {
			l := int16(clampSample(s[0]) * math.MaxInt16)
			r := int16(clampSample(s[1]) * math.MaxInt16)
			pcm = binary.LittleEndian.AppendUint16(pcm, uint16(l))
			pcm = binary.LittleEndian.AppendUint16(pcm, uint16(r))
		}
		if !ok || n == 0 {
			break
		}
	}
	return pcm
}

func clampSample(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
