// Package pixel adapts the abstract "Image" / "ChannelSelector" /
// "quantum" data model of the transform core onto the standard
// library's image.Image and image/color types.
//
// Channels are addressed by passing a ChannelSelector on every call to
// Sample (and to FloatImage.SetSample); Sample resolves the selector
// per pixel, so no accessor is bound once per channel outside the
// per-pixel loop.
package pixel

import (
	"image"
	"image/color"

	"github.com/deepteams/imagefx/internal/quantum"
)

// ChannelSelector names which component of a pixel to read or write.
type ChannelSelector int

const (
	Red ChannelSelector = iota
	Green
	Blue
	Opacity
	Index
	Gray
)

func (c ChannelSelector) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	case Opacity:
		return "Opacity"
	case Index:
		return "Index"
	case Gray:
		return "Gray"
	default:
		return "Unknown"
	}
}

// FloatSampler is implemented by images that can hand back a quantum
// sample at full (float64) precision. FloatImage (float_image.go) is the only
// in-module implementer; any image.Image that doesn't implement it
// falls back to the 16-bit precision of color.Color.RGBA().
type FloatSampler interface {
	FloatSample(sel ChannelSelector, x, y int) float64
}

// Sample reads the selected channel of img at (x, y) as a quantum
// normalized to [0, 1]. Coordinates outside img's bounds read as 0,
// implementing the implicit zero-padding spec §4.2 step 1 requires.
func Sample(img image.Image, sel ChannelSelector, x, y int) float64 {
	b := img.Bounds()
	p := image.Pt(x, y).Add(b.Min)
	if !p.In(b) {
		return 0
	}
	if fs, ok := img.(FloatSampler); ok {
		return quantum.Normalize(fs.FloatSample(sel, p.X, p.Y))
	}
	return sampleColor(img.At(p.X, p.Y), sel)
}

func sampleColor(c color.Color, sel ChannelSelector) float64 {
	if cmyk, ok := c.(color.CMYK); ok && sel == Index {
		return float64(cmyk.K) / 0xff
	}
	r, g, b, a := nonPremultiplied(c)
	switch sel {
	case Red, Gray:
		return float64(r) / 0xffff
	case Green:
		return float64(g) / 0xffff
	case Blue:
		return float64(b) / 0xffff
	case Opacity:
		return float64(a) / 0xffff
	default:
		return 0
	}
}

// nonPremultiplied returns r, g, b, a with r/g/b independent of a.
// color.Color.RGBA() always returns alpha-premultiplied components
// (the image/color convention); spec §4.5 applies its own explicit
// alpha weighting during convolution, so channel reads here must hand
// back raw, independent components or that weighting would be applied
// twice.
func nonPremultiplied(c color.Color) (r, g, b, a uint32) {
	switch v := c.(type) {
	case color.NRGBA:
		return uint32(v.R) * 0x101, uint32(v.G) * 0x101, uint32(v.B) * 0x101, uint32(v.A) * 0x101
	case color.NRGBA64:
		return uint32(v.R), uint32(v.G), uint32(v.B), uint32(v.A)
	}
	pr, pg, pb, a := c.RGBA()
	if a == 0 {
		return 0, 0, 0, 0
	}
	r = pr * 0xffff / a
	g = pg * 0xffff / a
	b = pb * 0xffff / a
	if r > 0xffff {
		r = 0xffff
	}
	if g > 0xffff {
		g = 0xffff
	}
	if b > 0xffff {
		b = 0xffff
	}
	return r, g, b, a
}

// HasAlpha reports whether img carries a meaningful, independently
// addressable opacity channel.
func HasAlpha(img image.Image) bool {
	if fi, ok := img.(*FloatImage); ok {
		return fi.HasAlpha
	}
	switch img.ColorModel() {
	case color.NRGBAModel, color.NRGBA64Model, color.RGBAModel, color.RGBA64Model,
		color.AlphaModel, color.Alpha16Model:
		return true
	}
	return false
}

// IsGray reports whether img's color model is single-channel
// grayscale (spec §4.4's "Gray means all three color channels read
// the same value").
func IsGray(img image.Image) bool {
	if fi, ok := img.(*FloatImage); ok {
		return fi.Gray
	}
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return true
	}
	return false
}

// IsFourInk reports whether img carries a four-ink (CMYK-style) Index
// channel.
func IsFourInk(img image.Image) bool {
	if fi, ok := img.(*FloatImage); ok {
		return fi.HasIndex
	}
	return img.ColorModel() == color.CMYKModel
}

// SelectChannels implements spec §4.4's channel-selection rule.
func SelectChannels(img image.Image) []ChannelSelector {
	var sel []ChannelSelector
	if IsGray(img) {
		sel = append(sel, Gray)
	} else {
		sel = append(sel, Red, Green, Blue)
	}
	if HasAlpha(img) {
		sel = append(sel, Opacity)
	}
	if IsFourInk(img) {
		sel = append(sel, Index)
	}
	return sel
}

// AlphaOf returns the opacity sample for img at (x,y) in [0,1], or 1
// (fully opaque) if img has no alpha channel.
func AlphaOf(img image.Image, x, y int) float64 {
	if !HasAlpha(img) {
		return 1
	}
	if fi, ok := img.(*FloatImage); ok {
		return quantum.Normalize(fi.FloatSample(Opacity, x, y))
	}
	b := img.Bounds()
	p := image.Pt(x, y).Add(b.Min)
	if !p.In(b) {
		return 0
	}
	_, _, _, a := img.At(p.X, p.Y).RGBA()
	return float64(a) / 0xffff
}
