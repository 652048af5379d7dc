package spectral

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/deepteams/imagefx/internal/errs"
)

// backendMu serializes access to the FFT backend's plan creation,
// execution and destruction, matching spec §5's description of the
// standard real-FFT dependency's non-reentrant planner. gonum's
// fourier.FFT/CmplxFFT types allocate their internal plan in NewFFT
// and are not documented safe for concurrent use from multiple
// goroutines against the same backing arrays, so every call into this
// file holds backendMu for the full plan-create/execute/destroy
// sequence (never across buffer allocation or pixel-cache access,
// which spec §5 explicitly excludes from the critical section).
var backendMu sync.Mutex

// forwardFFT2D computes the 2-D real-to-complex transform of a
// height x width row-major real buffer, writing the height x center
// half-spectrum into dst (center = width/2+1). This composes gonum's
// 1-D real FFT (rows) with its 1-D complex FFT (columns), the
// standard separable construction for a 2-D real FFT, matching the
// "unnormalized 2-D real-to-complex ... transform on a contiguous
// row-major buffer" the spec assumes as an external dependency.
func forwardFFT2D(src []float64, width, height, center int, dst []complex128) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("imagefx: spectral: fft forward panic: %v: %w", r, errs.ErrDependencyFailure)
		}
	}()

	column := make([]complex128, height)

	backendMu.Lock()
	defer backendMu.Unlock()

	rowFFT := fourier.NewFFT(width)
	colFFT := fourier.NewCmplxFFT(height)

	// Row pass: real-to-complex FFT of each row into dst.
	for y := 0; y < height; y++ {
		row := src[y*width : (y+1)*width]
		out := rowFFT.Coefficients(dst[y*center:(y+1)*center], row)
		copy(dst[y*center:(y+1)*center], out)
	}

	// Column pass: complex-to-complex FFT of each column in place.
	for k := 0; k < center; k++ {
		for y := 0; y < height; y++ {
			column[y] = dst[y*center+k]
		}
		colFFT.Coefficients(column, column)
		for y := 0; y < height; y++ {
			dst[y*center+k] = column[y]
		}
	}
	return nil
}

// inverseFFT2D computes the 2-D complex-to-real transform of a
// height x center half-spectrum complex buffer, writing the
// height x width real buffer into dst. This is the inverse
// composition of forwardFFT2D: inverse complex FFT down columns,
// then inverse real FFT across rows. Per spec §6/§3, the backend
// performs no normalization; internal/spectral applies its own
// 1/width^2 convention on the forward side only.
func inverseFFT2D(src []complex128, width, height, center int, dst []float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("imagefx: spectral: fft inverse panic: %v: %w", r, errs.ErrDependencyFailure)
		}
	}()

	work := make([]complex128, height*center)
	copy(work, src)
	column := make([]complex128, height)

	backendMu.Lock()
	defer backendMu.Unlock()

	rowFFT := fourier.NewFFT(width)
	colFFT := fourier.NewCmplxFFT(height)

	for k := 0; k < center; k++ {
		for y := 0; y < height; y++ {
			column[y] = work[y*center+k]
		}
		colFFT.Sequence(column, column)
		for y := 0; y < height; y++ {
			work[y*center+k] = column[y]
		}
	}

	for y := 0; y < height; y++ {
		rowFFT.Sequence(dst[y*width:(y+1)*width], work[y*center:(y+1)*center])
	}
	return nil
}
