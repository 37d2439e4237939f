package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// Default tolerances for AllClose, matching the conventional defaults of
// element-wise approximate comparison (absolute 1e-8, relative 1e-5).
const (
	allCloseAbsTol = 1e-8
	allCloseRelTol = 1e-5
)

// AllClose reports whether two tensors have the same shape and all elements
// approximately equal within the default absolute-or-relative tolerance.
//
// The tolerance is deliberately not configurable: this is a yes/no
// equivalence check, not a metric.
func AllClose(a, b *RawTensor) bool {
	if !a.Shape().Equal(b.Shape()) {
		return false
	}
	if a.DType() != b.DType() {
		return false
	}

	switch a.DType() {
	case Float32:
		av, bv := a.AsFloat32(), b.AsFloat32()
		for i := range av {
			if !scalar.EqualWithinAbsOrRel(float64(av[i]), float64(bv[i]), allCloseAbsTol, allCloseRelTol) {
				return false
			}
		}
	case Float64:
		av, bv := a.AsFloat64(), b.AsFloat64()
		for i := range av {
			if !scalar.EqualWithinAbsOrRel(av[i], bv[i], allCloseAbsTol, allCloseRelTol) {
				return false
			}
		}
	default:
		panic(fmt.Sprintf("allclose: unsupported dtype %s", a.DType()))
	}

	return true
}

// AllClose reports whether t and other are element-wise approximately equal.
func (t *Tensor[T, B]) AllClose(other *Tensor[T, B]) bool {
	return AllClose(t.raw, other.raw)
}
