package tensor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float64](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return Full[T, B](shape, 1, b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float64](Shape{3, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Arange creates a 1D tensor with values spaced by step in the half-open
// interval [start, stop). The number of elements is ceil((stop-start)/step).
//
// Example:
//
//	t := tensor.Arange[float64](298.15, 373.15, 15, backend)
//	// [298.15, 313.15, 328.15, 343.15, 358.15]
func Arange[T DType, B Backend](start, stop, step T, b B) *Tensor[T, B] {
	if step == 0 {
		panic("arange: step must be non-zero")
	}

	n := int(math.Ceil(float64(stop-start) / float64(step)))
	if n <= 0 {
		panic(fmt.Sprintf("arange: empty range [%v, %v) with step %v", start, stop, step))
	}

	t := Zeros[T, B](Shape{n}, b)
	data := t.Data()
	for i := range data {
		data[i] = start + T(i)*step
	}
	return t
}

// Linspace creates a 1D tensor with num evenly spaced values over the
// closed interval [start, stop]. With num == 1 the result is just [start].
//
// Example:
//
//	t := tensor.Linspace[float64](1.27e-3, 2.59e-3, 5, backend)
func Linspace[T DType, B Backend](start, stop T, num int, b B) *Tensor[T, B] {
	if num < 1 {
		panic(fmt.Sprintf("linspace: need at least 1 point, got %d", num))
	}
	if num == 1 {
		return Full[T, B](Shape{1}, start, b)
	}

	span := make([]float64, num)
	floats.Span(span, float64(start), float64(stop))

	t := Zeros[T, B](Shape{num}, b)
	data := t.Data()
	for i, v := range span {
		data[i] = T(v)
	}
	return t
}
