package pixel

import (
	"image"
	"image/color"

	"github.com/deepteams/imagefx/internal/quantum"
)

// FloatImage is the high-precision (float64) pixel buffer the
// spectral transform writes into and reads back from. Standard
// library color types cap out at 16 bits per component; spec §4.4
// requires the output image pair's depth to be "promoted to at least
// 32 bits per component", so the transform core uses FloatImage as
// its canonical representation and only narrows to a stdlib
// color.Color for callers that walk the image.Image interface
// directly (e.g. via At).
//
// Samples are stored in raw quantum units, [0, quantum.QuantumMax].
type FloatImage struct {
	W, H int

	// Gray is true when this image carries a single luminance plane
	// (the Gray selector) rather than independent Red/Green/Blue
	// planes.
	Gray bool
	// HasAlpha is true when this image carries an Opacity plane.
	HasAlpha bool
	// HasIndex is true when this image carries a four-ink Index plane.
	HasIndex bool

	planes map[ChannelSelector][]float64
}

// NewFloatImage allocates a FloatImage with the given dimensions and
// channel set. Every plane starts zeroed.
func NewFloatImage(w, h int, gray, hasAlpha, hasIndex bool) *FloatImage {
	fi := &FloatImage{W: w, H: h, Gray: gray, HasAlpha: hasAlpha, HasIndex: hasIndex}
	fi.planes = make(map[ChannelSelector][]float64)
	if gray {
		fi.planes[Gray] = make([]float64, w*h)
	} else {
		fi.planes[Red] = make([]float64, w*h)
		fi.planes[Green] = make([]float64, w*h)
		fi.planes[Blue] = make([]float64, w*h)
	}
	if hasAlpha {
		fi.planes[Opacity] = make([]float64, w*h)
	}
	if hasIndex {
		fi.planes[Index] = make([]float64, w*h)
	}
	return fi
}

// HasChannel reports whether sel has a backing plane in fi.
func (fi *FloatImage) HasChannel(sel ChannelSelector) bool {
	_, ok := fi.planes[sel]
	return ok
}

// FloatSample implements FloatSampler: it returns the raw quantum
// value (not normalized) at (x, y) for the given channel.
func (fi *FloatImage) FloatSample(sel ChannelSelector, x, y int) float64 {
	p, ok := fi.planes[sel]
	if !ok {
		if sel == Opacity {
			return float64(quantum.QuantumMax) // fully opaque by default when absent
		}
		return 0
	}
	return p[y*fi.W+x]
}

// SetSample writes v (a raw quantum value, already clamped by the
// caller) into the selected channel's plane at (x, y). Channels are
// written by exactly one goroutine each during a transform, so no
// locking is required here (spec §5's "channels write into disjoint
// cells" invariant).
func (fi *FloatImage) SetSample(sel ChannelSelector, x, y int, v float64) {
	p, ok := fi.planes[sel]
	if !ok {
		return
	}
	p[y*fi.W+x] = v
}

func (fi *FloatImage) Bounds() image.Rectangle { return image.Rect(0, 0, fi.W, fi.H) }

func (fi *FloatImage) ColorModel() color.Model {
	if fi.HasIndex {
		return color.CMYKModel
	}
	return color.NRGBA64Model
}

// At narrows a FloatImage sample to a standard library color, losing
// precision beyond 16 bits per component. Used only when a FloatImage
// is handed to code that walks image.Image generically; internal
// consumers use FloatSample directly.
func (fi *FloatImage) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= fi.W || y >= fi.H {
		return color.NRGBA64{}
	}
	to16 := func(v float64) uint16 {
		if v < 0 {
			v = 0
		}
		if v > quantum.QuantumMax {
			v = quantum.QuantumMax
		}
		return uint16(v)
	}
	if fi.Gray {
		g := to16(fi.FloatSample(Gray, x, y))
		a := uint16(quantum.QuantumMax)
		if fi.HasAlpha {
			a = to16(fi.FloatSample(Opacity, x, y))
		}
		return color.NRGBA64{R: g, G: g, B: g, A: a}
	}
	if fi.HasIndex {
		return color.CMYK{
			C: uint8(to16(fi.FloatSample(Red, x, y)) >> 8),
			M: uint8(to16(fi.FloatSample(Green, x, y)) >> 8),
			Y: uint8(to16(fi.FloatSample(Blue, x, y)) >> 8),
			K: uint8(to16(fi.FloatSample(Index, x, y)) >> 8),
		}
	}
	a := uint16(quantum.QuantumMax)
	if fi.HasAlpha {
		a = to16(fi.FloatSample(Opacity, x, y))
	}
	return color.NRGBA64{
		R: to16(fi.FloatSample(Red, x, y)),
		G: to16(fi.FloatSample(Green, x, y)),
		B: to16(fi.FloatSample(Blue, x, y)),
		A: a,
	}
}
