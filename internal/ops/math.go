package ops

import (
	"fmt"
	"math"
	"strconv"

	"github.com/b-rodrigues/cronista"
)

// asFloat coerces the usual numeric shapes (and numeric strings, which
// is what CLI input arrives as) to float64.
func asFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("want a number, got %q", n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("want a number, got %T", v)
	}
}

func numOp(name, desc string, fn func(float64) (float64, error)) Op {
	return &funcOp{name: name, desc: desc, fn: func(v any) (any, error) {
		x, err := asFloat(v)
		if err != nil {
			return nil, err
		}
		return fn(x)
	}}
}

// Sqrt returns the square-root operation. Like its R counterpart it
// does not error on a negative input: it warns and produces NaN, so
// the failure only surfaces under StrictWarnings and above.
func Sqrt() Op {
	return numOp("sqrt", "square root; warns and yields NaN for negative input", func(x float64) (float64, error) {
		if x < 0 {
			cronista.Warnf("NaNs produced: sqrt of %g", x)
			return math.NaN(), nil
		}
		return math.Sqrt(x), nil
	})
}

// Exp returns the exponential operation.
func Exp() Op {
	return numOp("exp", "e raised to the input", func(x float64) (float64, error) {
		return math.Exp(x), nil
	})
}

// Log returns the natural-logarithm operation, warning on non-positive
// input the way Sqrt warns on negatives.
func Log() Op {
	return numOp("log", "natural logarithm; warns for non-positive input", func(x float64) (float64, error) {
		if x <= 0 {
			cronista.Warnf("NaNs produced: log of %g", x)
			return math.NaN(), nil
		}
		return math.Log(x), nil
	})
}

// Square returns the squaring operation.
func Square() Op {
	return numOp("square", "input multiplied by itself", func(x float64) (float64, error) {
		return x * x, nil
	})
}

// Abs returns the absolute-value operation.
func Abs() Op {
	return numOp("abs", "absolute value", func(x float64) (float64, error) {
		return math.Abs(x), nil
	})
}

// Inverse returns the reciprocal operation. Zero input is a hard
// error, failing the step at every strictness level.
func Inverse() Op {
	return numOp("inverse", "reciprocal; errors on zero", func(x float64) (float64, error) {
		if x == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		return 1 / x, nil
	})
}

// Mean returns the arithmetic-mean operation. A scalar is treated as a
// one-element sequence, so the mean of a scalar is the scalar.
func Mean() Op {
	return &funcOp{name: "mean", desc: "arithmetic mean of a sequence (scalar passes through)", fn: func(v any) (any, error) {
		switch seq := v.(type) {
		case []float64:
			if len(seq) == 0 {
				return nil, fmt.Errorf("mean of empty sequence")
			}
			var sum float64
			for _, x := range seq {
				sum += x
			}
			return sum / float64(len(seq)), nil
		case []any:
			if len(seq) == 0 {
				return nil, fmt.Errorf("mean of empty sequence")
			}
			var sum float64
			for _, el := range seq {
				x, err := asFloat(el)
				if err != nil {
					return nil, err
				}
				sum += x
			}
			return sum / float64(len(seq)), nil
		default:
			x, err := asFloat(v)
			if err != nil {
				return nil, err
			}
			return x, nil
		}
	}}
}
