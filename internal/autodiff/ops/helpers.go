package ops

import (
	"fmt"

	"github.com/thermograd/thermograd/internal/tensor"
)

// scalarFor converts a float64 constant to the dynamic scalar type matching
// the given dtype, for passing to backend scalar operations.
func scalarFor(dtype tensor.DataType, v float64) any {
	switch dtype {
	case tensor.Float32:
		return float32(v)
	case tensor.Float64:
		return v
	default:
		panic(fmt.Sprintf("scalarFor: unsupported dtype %s", dtype))
	}
}

// negate returns -x through the backend, so the result stays on the tape.
func negate(x *tensor.RawTensor, backend tensor.Backend) *tensor.RawTensor {
	return backend.MulScalar(x, scalarFor(x.DType(), -1))
}

// reduceToShape reduces a gradient to match the target (forward input) shape
// after a broadcast forward op.
//
// Gradient reduction must itself be differentiable, so it is expressed in
// backend calls. The supported cases are the ones this library's forward ops
// produce: shapes already equal, where the same node is returned rather than
// a clone so the graph chain stays intact, and a scalar target (total sum).
// Arbitrary partial broadcasts are not supported.
func reduceToShape(grad *tensor.RawTensor, targetShape tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	if grad.Shape().Equal(targetShape) {
		return grad
	}
	if len(targetShape) == 0 {
		return backend.Sum(grad)
	}
	panic(fmt.Sprintf("reduceToShape: unsupported gradient reduction %v -> %v (only same-shape and scalar targets)",
		grad.Shape(), targetShape))
}
