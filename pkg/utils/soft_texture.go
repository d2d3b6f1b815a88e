package utils

import (
	"image"
	"image/color"
	"math"
)

// MakeSoftCircle 生成一张柔边圆形贴图
//
// 贴图为 size×size，圆心 alpha 为 centerAlpha，向外线性过渡到圆边的
// outerAlpha，圆外完全透明。RGB 取自 c，c 的 alpha 被忽略。
func MakeSoftCircle(size int, c color.RGBA, centerAlpha, outerAlpha uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	if size <= 0 {
		return img
	}

	radius := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			// 以像素中心计算到圆心的归一化距离
			dx := float64(x) + 0.5 - radius
			dy := float64(y) + 0.5 - radius
			d := math.Hypot(dx, dy) / radius
			if d > 1 {
				continue
			}
			img.SetNRGBA(x, y, color.NRGBA{
				R: c.R, G: c.G, B: c.B,
				A: lerpAlpha(centerAlpha, outerAlpha, d),
			})
		}
	}
	return img
}

// MakeSoftSquare 生成一张柔边方形贴图
//
// 最外一圈像素 alpha 为 outerAlpha，逐圈向内线性过渡，中心为 centerAlpha。
func MakeSoftSquare(size int, c color.RGBA, centerAlpha, outerAlpha uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	if size <= 0 {
		return img
	}

	half := size / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			// ring: 到最近边的距离（0 为最外圈）
			ring := min(x, y, size-1-x, size-1-y)
			t := 1.0
			if half > 0 {
				t = math.Min(1, float64(ring)/float64(half))
			}
			img.SetNRGBA(x, y, color.NRGBA{
				R: c.R, G: c.G, B: c.B,
				A: lerpAlpha(outerAlpha, centerAlpha, t),
			})
		}
	}
	return img
}

// lerpAlpha 在 a 与 b 之间线性插值，t ∈ [0, 1]
func lerpAlpha(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}
