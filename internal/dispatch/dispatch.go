// Package dispatch implements the Channel Dispatcher (spec §4.4): it
// decides the padded transform side, selects which channels a source
// image's color model requires, fans the selected channels out to
// independent goroutines, and assembles (or tears down) the output
// image pair.
package dispatch

import (
	"context"
	"fmt"
	"image"

	"golang.org/x/sync/errgroup"

	"github.com/deepteams/imagefx/internal/logx"
	"github.com/deepteams/imagefx/internal/pixel"
	"github.com/deepteams/imagefx/internal/spectral"
)

// PaddedSide implements spec §4.4's padding decision: if the input
// isn't square, or either dimension is odd, the side is
// max(columns, rows) rounded up to even; otherwise it is the input's
// own (even) side.
func PaddedSide(bounds image.Rectangle) int {
	cols, rows := bounds.Dx(), bounds.Dy()
	if cols == rows && cols%2 == 0 {
		return cols
	}
	side := cols
	if rows > side {
		side = rows
	}
	if side%2 != 0 {
		side++
	}
	return side
}

// Forward runs spec §4.4/§4.2 end to end: it pads, selects channels,
// fans each channel's Forward transform out to its own goroutine, and
// assembles the magnitude/phase image pair. On the first channel
// failure, the partially built pair is discarded and the error is
// returned; spec's "logical-and... first-seen failure" reduction is
// exactly errgroup.Group's behavior.
func Forward(ctx context.Context, src image.Image, modulus bool) (mag, phase *pixel.FloatImage, err error) {
	side := PaddedSide(src.Bounds())
	if err := validatePlan(side); err != nil {
		return nil, nil, err
	}
	channels := pixel.SelectChannels(src)

	logx.Log.Debug().Int("side", side).Int("channels", len(channels)).Msg("forward: dispatch")

	gray := pixel.IsGray(src)
	hasAlpha := pixel.HasAlpha(src)
	hasIndex := pixel.IsFourInk(src)

	// Output image pair is allocated and appended to the operation
	// before any channel starts (spec §4.4 "Output assembly"), so
	// channels only ever write into disjoint, pre-existing planes.
	mag = pixel.NewFloatImage(side, side, gray, hasAlpha, hasIndex)
	phase = pixel.NewFloatImage(side, side, gray, hasAlpha, hasIndex)

	g, gctx := errgroup.WithContext(ctx)
	for _, ch := range channels {
		ch := ch
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			plan, err := spectral.NewPlan(side, ch, modulus)
			if err != nil {
				return err
			}
			if err := spectral.Forward(plan, src, mag, phase); err != nil {
				return fmt.Errorf("imagefx: dispatch: channel %s: %w", ch, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return mag, phase, nil
}

// Inverse runs spec §4.4/§4.3 end to end for the inverse direction.
// mag and phase must share the same channel set and dimensions
// (validateShapes returns ErrShapeError otherwise); dst is created at
// the (dstW,dstH) extent the caller requests, and only that extent of
// each channel's side x side reconstruction is written into it.
func Inverse(ctx context.Context, mag, phase image.Image, modulus bool, dstW, dstH int) (*pixel.FloatImage, error) {
	if err := validateShapes(mag, phase); err != nil {
		return nil, err
	}

	side := mag.Bounds().Dx()
	if err := validatePlan(side); err != nil {
		return nil, err
	}
	channels := pixel.SelectChannels(mag)

	logx.Log.Debug().Int("side", side).Int("channels", len(channels)).Msg("inverse: dispatch")

	gray := pixel.IsGray(mag)
	hasAlpha := pixel.HasAlpha(mag)
	hasIndex := pixel.IsFourInk(mag)

	dst := pixel.NewFloatImage(dstW, dstH, gray, hasAlpha, hasIndex)

	g, gctx := errgroup.WithContext(ctx)
	for _, ch := range channels {
		ch := ch
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			plan, err := spectral.NewPlan(side, ch, modulus)
			if err != nil {
				return err
			}
			if err := spectral.Inverse(plan, mag, phase, dst, dstW, dstH); err != nil {
				return fmt.Errorf("imagefx: dispatch: channel %s: %w", ch, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dst, nil
}
