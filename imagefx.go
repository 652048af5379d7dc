package imagefx

import (
	"context"
	"fmt"
	"image"

	"github.com/deepteams/imagefx/internal/convolve"
	"github.com/deepteams/imagefx/internal/dispatch"
	"github.com/deepteams/imagefx/internal/errs"
	"github.com/deepteams/imagefx/internal/kernel"
)

// Kernel re-exports internal/kernel's convolution kernel type so
// callers outside this module can hold and construct values of it
// without reaching into an internal package.
type Kernel = kernel.Kernel

// ForwardTransform computes the 2-D discrete Fourier transform of
// every color channel present in src, packaging the result as a
// magnitude/phase image pair (modulus true) or a real/imaginary image
// pair (modulus false). src is padded to an even square if it is not
// already one; the padded region reads as zero.
func ForwardTransform(src image.Image, modulus bool) (mag, phase image.Image, err error) {
	m, p, err := dispatch.Forward(context.Background(), src, modulus)
	if err != nil {
		return nil, nil, err
	}
	return m, p, nil
}

// InverseTransform reconstructs a spatial image from a magnitude/phase
// (or real/imaginary) image pair produced by ForwardTransform. mag and
// phase must share the same even-square dimensions and channel set.
// The returned image has the same dimensions as mag and phase; callers
// that padded an odd or non-square source before calling
// ForwardTransform are responsible for cropping the result back down.
func InverseTransform(mag, phase image.Image, modulus bool) (image.Image, error) {
	if mag == nil || phase == nil {
		return nil, fmt.Errorf("imagefx: inverse transform requires both magnitude and phase images: %w", errs.ErrShapeError)
	}
	b := mag.Bounds()
	dst, err := dispatch.Inverse(context.Background(), mag, phase, modulus, b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	return dst, nil
}

// Convolve applies k to src, a spatial 2-D convolution with
// clamped-edge neighbor addressing. When alphaFlag is true and src
// carries an alpha channel, each sample is weighted by its
// premultiplied alpha before accumulation and the per-pixel kernel
// weight sum (gamma) is itself alpha-weighted; otherwise gamma is the
// kernel's own weight sum. A near-zero gamma leaves the unnormalized
// sum in place rather than dividing by it.
func Convolve(src image.Image, k Kernel, alphaFlag bool) (image.Image, error) {
	if err := kernel.Validate(k); err != nil {
		return nil, err
	}
	return convolve.Run(src, k, alphaFlag), nil
}

// KernelFromString parses a kernel written as rows separated by ';'
// and values separated by whitespace or commas, e.g.
// "1,2,1; 2,4,2; 1,2,1". Both resulting dimensions must be odd.
func KernelFromString(text string) (Kernel, error) {
	return kernel.FromString(text)
}
