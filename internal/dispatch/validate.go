package dispatch

import (
	"fmt"
	"image"

	"github.com/deepteams/imagefx/internal/errs"
	"github.com/deepteams/imagefx/internal/pixel"
)

// validateShapes implements spec §7's ErrShapeError condition for the
// inverse transform: magnitude and phase must describe the same
// square, even side and the same channel set. Per spec §7 ("inverse
// transform received only one of magnitude/phase"), a nil image is
// itself a shape error rather than something dereferenced and left to
// panic.
func validateShapes(mag, phase image.Image) error {
	if mag == nil || phase == nil {
		return fmt.Errorf("imagefx: dispatch: inverse transform requires both magnitude and phase images: %w", errs.ErrShapeError)
	}
	mb, pb := mag.Bounds(), phase.Bounds()
	if mb.Dx() != mb.Dy() || mb.Dx()%2 != 0 {
		return fmt.Errorf("imagefx: dispatch: magnitude image %v is not an even square: %w", mb, errs.ErrShapeError)
	}
	if mb != pb {
		return fmt.Errorf("imagefx: dispatch: magnitude %v and phase %v sizes differ: %w", mb, pb, errs.ErrShapeError)
	}
	if pixel.IsGray(mag) != pixel.IsGray(phase) ||
		pixel.HasAlpha(mag) != pixel.HasAlpha(phase) ||
		pixel.IsFourInk(mag) != pixel.IsFourInk(phase) {
		return fmt.Errorf("imagefx: dispatch: magnitude and phase channel sets differ: %w", errs.ErrShapeError)
	}
	return nil
}

// validatePlan implements SPEC_FULL.md's eager pre-flight check: it
// validates the padded side once, before any per-channel goroutine
// starts and before the output image pair is allocated, so a bad side
// fails fast instead of leaving a partially allocated output behind.
// Every channel of a single dispatch shares the same side, so one
// check here covers all of them; spectral.NewPlan's own per-channel
// validation then becomes unreachable in practice but stays in place
// as that package's own invariant guard.
func validatePlan(side int) error {
	if side <= 0 || side%2 != 0 {
		return fmt.Errorf("imagefx: dispatch: invalid transform side %d: %w", side, errs.ErrImageModelError)
	}
	return nil
}
