// Copyright 2026 Thermograd Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// It wraps any tensor.Backend with a gradient tape that records operations
// during the forward pass, then walks them in reverse to compute gradients.
// With CreateGraph the backward walk is itself recorded, so the returned
// gradients are differentiable and second-order derivatives come from a
// second Grad call.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//
//	x, _ := tensor.FromSlice([]float64{3}, tensor.Shape{1}, backend)
//	y := x.Mul(x) // y = x²
//
//	grads, _ := autodiff.Grad(y, []*tensor.RawTensor{x.Raw()}, backend, autodiff.GradOpts{})
//	// grads[0] holds dy/dx = 2x = 6
package autodiff

import (
	"github.com/thermograd/thermograd/internal/autodiff"
	"github.com/thermograd/thermograd/internal/tensor"
)

// Backend wraps a tensor backend and adds automatic differentiation.
type Backend[B tensor.Backend] = autodiff.AutodiffBackend[B]

// GradientTape records operations for reverse-mode differentiation.
type GradientTape = autodiff.GradientTape

// BackwardCapable is satisfied by backends that carry a gradient tape.
type BackwardCapable = autodiff.BackwardCapable

// GradOpts controls a Grad call.
type GradOpts = autodiff.GradOpts

// New creates an autodiff backend wrapping the given backend.
func New[B tensor.Backend](backend B) *Backend[B] {
	return autodiff.New(backend)
}

// NewGradientTape creates an empty gradient tape.
func NewGradientTape() *GradientTape {
	return autodiff.NewGradientTape()
}

// Grad computes the gradients of output with respect to each of inputs.
// See GradOpts for graph retention, higher-order differentiation, and
// unused-input handling.
func Grad[T tensor.DType, B BackwardCapable](
	output *tensor.Tensor[T, B],
	inputs []*tensor.RawTensor,
	backend B,
	opts GradOpts,
) ([]*tensor.RawTensor, error) {
	return autodiff.Grad(output, inputs, backend, opts)
}

// Backward computes first-order gradients for every tensor reachable from t
// and returns the full gradient map.
func Backward[T tensor.DType, B BackwardCapable](t *tensor.Tensor[T, B], backend B) map[*tensor.RawTensor]*tensor.RawTensor {
	return autodiff.Backward(t, backend)
}
