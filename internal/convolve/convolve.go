// Package convolve implements the Spatial Convolver (spec §4.5): 2-D
// real-kernel convolution with clamped edge addressing, premultiplied
// alpha weighting, and gamma renormalization.
//
// The per-pixel arithmetic is grounded on the teacher's
// internal/dsp/alpha_proc.go (premultiply scale computation, the
// alpha==0/alpha==255 fast paths generalized to floating-point gamma
// weighting) and internal/dsp/filter.go (edge-aware neighbor
// addressing). The row-banded fan-out is grounded on
// internal/lossy/encode_parallel.go's atomic row-claiming pattern.
package convolve

import (
	"image"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/deepteams/imagefx/internal/kernel"
	"github.com/deepteams/imagefx/internal/pixel"
	"github.com/deepteams/imagefx/internal/quantum"
)

// Run applies k to src with the given alpha-weighting policy,
// producing a new *pixel.FloatImage of the same dimensions.
func Run(src image.Image, k kernel.Kernel, alphaFlag bool) *pixel.FloatImage {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	gray := pixel.IsGray(src)
	hasAlpha := pixel.HasAlpha(src)
	hasIndex := pixel.IsFourInk(src)
	dst := pixel.NewFloatImage(w, h, gray, hasAlpha, hasIndex)

	colorChannels := []pixel.ChannelSelector{pixel.Red, pixel.Green, pixel.Blue}
	if gray {
		colorChannels = []pixel.ChannelSelector{pixel.Gray}
	}

	c := &convolver{
		src: src, k: k, alphaFlag: alphaFlag,
		colorChannels: colorChannels,
		hasAlpha:      hasAlpha, hasIndex: hasIndex,
		w: w, h: h, dst: dst,
	}

	var nextRow atomic.Int32
	var wg sync.WaitGroup
	workers := runtime.NumCPU()
	if workers > h {
		workers = h
	}
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				y := int(nextRow.Add(1)) - 1
				if y >= h {
					return
				}
				c.row(y)
			}
		}()
	}
	wg.Wait()
	return dst
}

type convolver struct {
	src           image.Image
	k             kernel.Kernel
	alphaFlag     bool
	colorChannels []pixel.ChannelSelector
	hasAlpha      bool
	hasIndex      bool
	w, h          int
	dst           *pixel.FloatImage
}

// row computes every output pixel in row y, per spec §4.5's contract:
//
//	sum_c = sum_ij K[i,j] * alpha(s) * src_c(s)          s = clamp(x+i-cx, y+j-cy)
//	sum_a = sum_ij K[i,j] * src_a(s)                     (hasAlpha)
//	gamma = sum_ij K[i,j] * alpha(s)                     (alphaFlag)
//	      = sum_ij K[i,j]                                (!alphaFlag)
//	out_c = |gamma| <= epsilon ? sum_c : sum_c / gamma
func (c *convolver) row(y int) {
	halfW, halfH := c.k.W/2, c.k.H/2
	rowFast := y >= halfH && y < c.h-halfH

	gammaConst := c.k.Sum()
	if absf(gammaConst) <= quantum.Epsilon {
		gammaConst = 0
	}

	for x := 0; x < c.w; x++ {
		colFast := rowFast && x >= halfW && x < c.w-halfW

		var sumC [3]float64
		var sumGray, sumAlpha, gamma float64

		for j := 0; j < c.k.H; j++ {
			sy := y + j - halfH
			for i := 0; i < c.k.W; i++ {
				sx := x + i - halfW
				if !colFast {
					sx = clampInt(sx, 0, c.w-1)
					sy = clampInt(sy, 0, c.h-1)
				}
				weight := c.k.At(i, j)

				alpha := 1.0
				if c.alphaFlag && c.hasAlpha {
					alpha = pixel.AlphaOf(c.src, sx, sy)
				}
				if c.alphaFlag {
					gamma += weight * alpha
				}
				if c.hasAlpha {
					sumAlpha += weight * pixel.Sample(c.src, pixel.Opacity, sx, sy)
				}
				if len(c.colorChannels) == 1 {
					sumGray += weight * alpha * pixel.Sample(c.src, pixel.Gray, sx, sy)
				} else {
					for ci, sel := range c.colorChannels {
						sumC[ci] += weight * alpha * pixel.Sample(c.src, sel, sx, sy)
					}
				}
			}
		}

		if !c.alphaFlag {
			gamma = gammaConst
		} else if absf(gamma) <= quantum.Epsilon {
			gamma = 0
		}

		if len(c.colorChannels) == 1 {
			c.dst.SetSample(pixel.Gray, x, y, quantum.Clamp(quantum.Denormalize(divGamma(sumGray, gamma))))
		} else {
			for ci, sel := range c.colorChannels {
				c.dst.SetSample(sel, x, y, quantum.Clamp(quantum.Denormalize(divGamma(sumC[ci], gamma))))
			}
		}
		if c.hasAlpha {
			out := sumAlpha
			if !c.alphaFlag {
				out = pixel.Sample(c.src, pixel.Opacity, x, y)
			}
			c.dst.SetSample(pixel.Opacity, x, y, quantum.Clamp(quantum.Denormalize(out)))
		}
		if c.hasIndex {
			c.dst.SetSample(pixel.Index, x, y, quantum.Clamp(quantum.Denormalize(pixel.Sample(c.src, pixel.Index, x, y))))
		}
	}
}

// divGamma applies the near-zero guard of spec §4.5: a (near-)zero
// gamma leaves the unnormalized sum in place rather than dividing.
func divGamma(sum, gamma float64) float64 {
	if gamma == 0 {
		return sum
	}
	return sum / gamma
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
