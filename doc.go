// Package imagefx provides a frequency-domain image transform core:
// forward and inverse 2-D discrete Fourier transforms packaged as
// magnitude/phase (or real/imaginary) image pairs, and a spatial 2-D
// convolution operator with alpha-aware gamma renormalization.
//
// The package mirrors ImageMagick's fourier.c and convolve.c in
// behavior: every color channel present in a source image (grayscale,
// RGB, CMYK, each optionally with an alpha/opacity plane) is
// transformed independently and reassembled into the output image
// pair, or reconstructed into a single spatial image on the inverse
// path.
//
// Basic usage, forward transform:
//
//	mag, phase, err := imagefx.ForwardTransform(src, true)
//
// Basic usage, inverse transform:
//
//	recon, err := imagefx.InverseTransform(mag, phase, true)
//
// Basic usage, convolution:
//
//	k, err := imagefx.KernelFromString("1,2,1; 2,4,2; 1,2,1")
//	out, err := imagefx.Convolve(src, k, true)
package imagefx
