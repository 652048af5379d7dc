// Package errs defines the sentinel errors shared by every component of
// the transform core, so callers can use errors.Is regardless of which
// package ultimately produced the failure.
package errs

import "errors"

var (
	// ErrResourceExhausted reports a buffer or image allocation failure.
	ErrResourceExhausted = errors.New("imagefx: resource exhausted")
	// ErrDependencyMissing reports that the FFT backend is unavailable
	// at build time.
	ErrDependencyMissing = errors.New("imagefx: fft backend missing")
	// ErrDependencyFailure reports that the FFT backend failed to plan
	// or execute a transform.
	ErrDependencyFailure = errors.New("imagefx: fft backend failure")
	// ErrCacheFailure reports a pixel read or write failure.
	ErrCacheFailure = errors.New("imagefx: pixel cache failure")
	// ErrShapeError reports mismatched or incomplete spectral input,
	// e.g. an inverse transform given only one of magnitude/phase.
	ErrShapeError = errors.New("imagefx: shape error")
	// ErrImageModelError reports an invalid kernel or color model.
	ErrImageModelError = errors.New("imagefx: image model error")
)
