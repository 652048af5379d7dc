package dispatch

import (
	"errors"
	"image"
	"testing"

	"github.com/deepteams/imagefx/internal/errs"
)

func TestValidateShapes_NilImageIsShapeError(t *testing.T) {
	mag := image.NewGray(image.Rect(0, 0, 4, 4))

	if err := validateShapes(nil, mag); !errors.Is(err, errs.ErrShapeError) {
		t.Fatalf("expected ErrShapeError for nil magnitude, got %v", err)
	}
	if err := validateShapes(mag, nil); !errors.Is(err, errs.ErrShapeError) {
		t.Fatalf("expected ErrShapeError for nil phase, got %v", err)
	}
	if err := validateShapes(nil, nil); !errors.Is(err, errs.ErrShapeError) {
		t.Fatalf("expected ErrShapeError for both nil, got %v", err)
	}
}

func TestValidateShapes_SizeMismatch(t *testing.T) {
	mag := image.NewGray(image.Rect(0, 0, 4, 4))
	phase := image.NewGray(image.Rect(0, 0, 6, 6))
	if err := validateShapes(mag, phase); !errors.Is(err, errs.ErrShapeError) {
		t.Fatalf("expected ErrShapeError for mismatched sizes, got %v", err)
	}
}

func TestValidatePlan_RejectsOddOrZeroSide(t *testing.T) {
	for _, side := range []int{0, -2, 3, 5} {
		if err := validatePlan(side); !errors.Is(err, errs.ErrImageModelError) {
			t.Fatalf("side %d: expected ErrImageModelError, got %v", side, err)
		}
	}
}

func TestValidatePlan_AcceptsEvenSide(t *testing.T) {
	if err := validatePlan(8); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
