package tensor

import "fmt"

// Stack concatenates tensors of identical shape along a new leading axis.
//
// The result is a plain data tensor: stacking is presentation, not part of
// any computation graph.
//
// Example:
//
//	a := tensor.Full[float64](Shape{3}, 1, backend)
//	b := tensor.Full[float64](Shape{3}, 2, backend)
//	s := tensor.Stack([]*Tensor[float64, B]{a, b}) // Shape: [2, 3]
func Stack[T DType, B Backend](tensors []*Tensor[T, B]) *Tensor[T, B] {
	if len(tensors) == 0 {
		panic("stack: need at least one tensor")
	}

	for i, t := range tensors {
		if t == nil {
			panic(fmt.Sprintf("stack: tensor %d is nil", i))
		}
	}

	first := tensors[0]
	for _, t := range tensors[1:] {
		if !t.Shape().Equal(first.Shape()) {
			panic(fmt.Sprintf("stack: shape mismatch: %v vs %v", t.Shape(), first.Shape()))
		}
	}

	outShape := append(Shape{len(tensors)}, first.Shape()...)
	out := Zeros[T, B](outShape, first.backend)

	data := out.Data()
	n := first.NumElements()
	for i, t := range tensors {
		copy(data[i*n:(i+1)*n], t.Data())
	}
	return out
}
