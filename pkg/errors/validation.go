package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateRadii checks the free-drag and saturation radii of the tension
// mapping. Both must be finite and positive, and the outer radius must
// exceed the inner one so the tension band has width.
func ValidateRadii(inner, outer float64) error {
	if !finite(inner) || inner <= 0 {
		return New(ErrCodeInvalidConfig, "inner radius must be a positive number, got %v", inner)
	}
	if !finite(outer) || outer <= 0 {
		return New(ErrCodeInvalidConfig, "outer radius must be a positive number, got %v", outer)
	}
	if outer <= inner {
		return New(ErrCodeInvalidConfig, "outer radius %v must exceed inner radius %v", outer, inner)
	}
	return nil
}

// ValidateTension checks the tension factor, which must lie in [0,1).
func ValidateTension(factor float64) error {
	if !finite(factor) || factor < 0 || factor >= 1 {
		return New(ErrCodeInvalidConfig, "tension factor must be in [0,1), got %v", factor)
	}
	return nil
}

// ValidateAffordance checks the threshold tolerance. It must be
// non-negative and smaller than the tension band, or the threshold would
// fire inside the free-drag zone.
func ValidateAffordance(affordance, inner, outer float64) error {
	if !finite(affordance) || affordance < 0 {
		return New(ErrCodeInvalidConfig, "affordance must be a non-negative number, got %v", affordance)
	}
	if affordance >= outer-inner {
		return New(ErrCodeInvalidConfig, "affordance %v must be smaller than the tension band %v", affordance, outer-inner)
	}
	return nil
}

// ValidatePath validates a user-supplied file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
