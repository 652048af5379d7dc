// Package kernel implements the convolution Kernel type and its text
// parser (spec §6's KernelFromString), the one external collaborator
// spec.md names without specifying an implementation ("out of spec
// depth").
package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/deepteams/imagefx/internal/errs"
)

// Kernel is a rectangular array of real weights, W x H, with both W
// and H odd (spec §3's Kernel data model). The anchor is the
// geometric center.
type Kernel struct {
	W, H    int
	Weights []float64 // row-major, length W*H
}

// At returns the weight at (x, y).
func (k Kernel) At(x, y int) float64 {
	return k.Weights[y*k.W+x]
}

// Sum returns the sum of all weights (gamma when alpha-flag is off).
func (k Kernel) Sum() float64 {
	var s float64
	for _, w := range k.Weights {
		s += w
	}
	return s
}

// Normalize returns a copy of k scaled so its weights sum to 1,
// matching the original's kernel-preset convention of normalizing
// named kernels by their weight sum. If the sum is exactly zero, k is
// returned unscaled, since renormalizing a zero-sum kernel (e.g. an
// edge-detection kernel) would divide by zero.
func (k Kernel) Normalize() Kernel {
	sum := k.Sum()
	if sum == 0 {
		return k
	}
	out := Kernel{W: k.W, H: k.H, Weights: make([]float64, len(k.Weights))}
	for i, w := range k.Weights {
		out.Weights[i] = w / sum
	}
	return out
}

// Validate checks k against spec §3's Kernel invariant (W and H odd)
// and spec §7's ErrImageModelError condition ("convolution received an
// empty or non-odd-dimensioned kernel"). FromString already enforces
// this while parsing; Validate lets Convolve enforce the same rule
// against a Kernel a caller built directly (e.g. a struct literal),
// which bypasses the parser entirely.
func Validate(k Kernel) error {
	if k.W <= 0 || k.H <= 0 || len(k.Weights) == 0 {
		return fmt.Errorf("imagefx: kernel: empty kernel: %w", errs.ErrImageModelError)
	}
	if k.W%2 == 0 || k.H%2 == 0 {
		return fmt.Errorf("imagefx: kernel: dimensions %dx%d must be odd: %w", k.W, k.H, errs.ErrImageModelError)
	}
	if len(k.Weights) != k.W*k.H {
		return fmt.Errorf("imagefx: kernel: weights length %d does not match %dx%d: %w", len(k.Weights), k.W, k.H, errs.ErrImageModelError)
	}
	return nil
}

// FromString parses a kernel written as rows separated by ';' and
// values separated by whitespace or commas (spec §6). Every row must
// have the same width, and both the resulting width and height must
// be odd.
func FromString(text string) (Kernel, error) {
	rawRows := strings.Split(strings.TrimSpace(text), ";")
	var rows [][]float64
	for _, raw := range rawRows {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		fields := strings.FieldsFunc(raw, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		})
		row := make([]float64, 0, len(fields))
		for _, f := range fields {
			if f == "" {
				continue
			}
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return Kernel{}, fmt.Errorf("imagefx: kernel: invalid weight %q: %w", f, errs.ErrImageModelError)
			}
			row = append(row, v)
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}

	if len(rows) == 0 {
		return Kernel{}, fmt.Errorf("imagefx: kernel: empty kernel: %w", errs.ErrImageModelError)
	}
	h := len(rows)
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return Kernel{}, fmt.Errorf("imagefx: kernel: ragged rows (%d vs %d): %w", len(row), w, errs.ErrImageModelError)
		}
	}
	weights := make([]float64, 0, w*h)
	for _, row := range rows {
		weights = append(weights, row...)
	}
	k := Kernel{W: w, H: h, Weights: weights}
	if err := Validate(k); err != nil {
		return Kernel{}, err
	}
	return k, nil
}
