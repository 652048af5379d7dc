package kernel

import (
	"errors"
	"testing"

	"github.com/deepteams/imagefx/internal/errs"
)

func TestFromString_Box3x3(t *testing.T) {
	k, err := FromString("1,1,1; 1,1,1; 1,1,1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k.W != 3 || k.H != 3 {
		t.Fatalf("dims = %dx%d, want 3x3", k.W, k.H)
	}
	if k.Sum() != 9 {
		t.Fatalf("sum = %v, want 9", k.Sum())
	}
	if k.At(1, 1) != 1 {
		t.Fatalf("center = %v, want 1", k.At(1, 1))
	}
}

func TestFromString_Whitespace(t *testing.T) {
	k, err := FromString("  1 2 1 ;\n2 4 2\n; 1 2 1  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k.W != 3 || k.H != 3 {
		t.Fatalf("dims = %dx%d, want 3x3", k.W, k.H)
	}
	if k.Sum() != 16 {
		t.Fatalf("sum = %v, want 16", k.Sum())
	}
}

func TestFromString_EvenDimensionsRejected(t *testing.T) {
	_, err := FromString("1,1; 1,1")
	if !errors.Is(err, errs.ErrImageModelError) {
		t.Fatalf("expected ErrImageModelError, got %v", err)
	}
}

func TestFromString_RaggedRowsRejected(t *testing.T) {
	_, err := FromString("1,1,1; 1,1")
	if !errors.Is(err, errs.ErrImageModelError) {
		t.Fatalf("expected ErrImageModelError, got %v", err)
	}
}

func TestFromString_EmptyRejected(t *testing.T) {
	_, err := FromString("   ")
	if !errors.Is(err, errs.ErrImageModelError) {
		t.Fatalf("expected ErrImageModelError, got %v", err)
	}
}

func TestFromString_InvalidWeightRejected(t *testing.T) {
	_, err := FromString("1,x,1; 1,1,1; 1,1,1")
	if !errors.Is(err, errs.ErrImageModelError) {
		t.Fatalf("expected ErrImageModelError, got %v", err)
	}
}

func TestNormalize(t *testing.T) {
	k, err := FromString("1,1,1; 1,1,1; 1,1,1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n := k.Normalize()
	if got := n.Sum(); got < 0.999 || got > 1.001 {
		t.Fatalf("normalized sum = %v, want ~1", got)
	}
}

func TestNormalize_ZeroSumUnscaled(t *testing.T) {
	k := Kernel{W: 3, H: 1, Weights: []float64{-1, 0, 1}}
	n := k.Normalize()
	if n.Sum() != 0 {
		t.Fatalf("sum = %v, want 0", n.Sum())
	}
	if n.Weights[0] != -1 || n.Weights[2] != 1 {
		t.Fatalf("zero-sum kernel should be returned unscaled, got %v", n.Weights)
	}
}

func TestValidate_RejectsEvenDimensions(t *testing.T) {
	err := Validate(Kernel{W: 2, H: 1, Weights: []float64{0.5, 0.5}})
	if !errors.Is(err, errs.ErrImageModelError) {
		t.Fatalf("expected ErrImageModelError, got %v", err)
	}
}

func TestValidate_RejectsEmpty(t *testing.T) {
	if !errors.Is(Validate(Kernel{}), errs.ErrImageModelError) {
		t.Fatalf("expected ErrImageModelError for empty kernel")
	}
}

func TestValidate_AcceptsWellFormedKernel(t *testing.T) {
	k := Kernel{W: 3, H: 1, Weights: []float64{1, 1, 1}}
	if err := Validate(k); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
