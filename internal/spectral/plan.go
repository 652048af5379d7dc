// Package spectral implements the frequency-domain transform core:
// the spectral packager (quadrant swap, cyclic roll, phase sign
// correction) and the per-channel forward/inverse transformer that
// drives a single color channel through the external FFT backend.
package spectral

import (
	"fmt"

	"github.com/deepteams/imagefx/internal/errs"
	"github.com/deepteams/imagefx/internal/pixel"
)

// Plan is the immutable record spec §3 calls SpectralPlan: it
// describes a single-channel transform job. A Plan is created per
// channel and discarded once that channel's transform completes.
type Plan struct {
	Width, Height int
	Center        int // number of complex columns in the half-spectrum
	Channel       pixel.ChannelSelector
	Modulus       bool // true: magnitude/phase; false: real/imaginary
}

// NewPlan validates and constructs a Plan. side must already be the
// padded, even, square side chosen by the dispatcher (spec §4.4's
// padding decision); NewPlan only verifies the invariants, it does
// not compute the padding itself.
func NewPlan(side int, channel pixel.ChannelSelector, modulus bool) (Plan, error) {
	if side <= 0 || side%2 != 0 {
		return Plan{}, fmt.Errorf("imagefx: spectral: invalid plan side %d: %w", side, errs.ErrImageModelError)
	}
	return Plan{
		Width:   side,
		Height:  side,
		Center:  side/2 + 1,
		Channel: channel,
		Modulus: modulus,
	}, nil
}
