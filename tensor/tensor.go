// Copyright 2026 Thermograd Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/thermograd/thermograd/internal/tensor"
)

// Type aliases for the public API.

// DType is a constraint for tensor data types.
// Supported types: float32, float64.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU Device = tensor.CPU
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3} represents a 2D tensor with dimensions 2×3.
type Shape = tensor.Shape

// RawTensor is the low-level, dtype-erased tensor representation.
// The autodiff driver identifies computation-graph nodes by *RawTensor
// pointer.
type RawTensor = tensor.RawTensor

// NewRaw creates a new RawTensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// BroadcastShapes implements NumPy-style broadcasting rules, returning the
// broadcast shape, whether broadcasting is needed, and an error if the
// shapes are incompatible.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}

// Tensor is a generic type-safe tensor.
//
// T is the data type (float32 or float64).
// B is the backend implementation.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float64](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float64](tensor.Shape{2, 3}, backend)
//	z := x.Add(y)
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// New creates a Tensor from a RawTensor and backend.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}

// Creation functions

// Zeros creates a tensor filled with zeros.
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T, B](shape, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Ones[T, B](shape, b)
}

// Full creates a tensor filled with a specific value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	return tensor.Full[T, B](shape, value, b)
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// Arange creates a 1D tensor with values spaced by step in [start, stop).
//
// Example:
//
//	t := tensor.Arange[float64](298.15, 373.15, 15, backend)
//	// [298.15, 313.15, 328.15, 343.15, 358.15]
func Arange[T DType, B Backend](start, stop, step T, b B) *Tensor[T, B] {
	return tensor.Arange[T, B](start, stop, step, b)
}

// Linspace creates a 1D tensor with num evenly spaced values over the
// closed interval [start, stop].
//
// Example:
//
//	t := tensor.Linspace[float64](1.27e-3, 2.59e-3, 5, backend)
func Linspace[T DType, B Backend](start, stop T, num int, b B) *Tensor[T, B] {
	return tensor.Linspace[T, B](start, stop, num, b)
}

// Stack concatenates tensors of identical shape along a new leading axis.
func Stack[T DType, B Backend](tensors []*Tensor[T, B]) *Tensor[T, B] {
	return tensor.Stack[T, B](tensors)
}

// AllClose reports whether two tensors have the same shape and all elements
// approximately equal within the default absolute-or-relative tolerance.
func AllClose(a, b *RawTensor) bool {
	return tensor.AllClose(a, b)
}
