// Copyright 2026 Thermograd Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensor operations for thermograd.
//
// # Overview
//
// Tensors are the fundamental data structure in thermograd. This package
// provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - NumPy-style broadcasting
//   - Backend abstraction, so the same code runs on a plain numeric backend
//     and on a differentiable one
//
// # Basic Usage
//
//	import (
//	    "github.com/thermograd/thermograd/backend/cpu"
//	    "github.com/thermograd/thermograd/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    temp := tensor.Arange[float64](298.15, 373.15, 15, backend)
//	    vol := tensor.Linspace[float64](1.27e-3, 2.59e-3, temp.NumElements(), backend)
//
//	    ratio := temp.Div(vol)
//	    _ = ratio
//	}
//
// # Supported Data Types
//
// The DType constraint admits float32 and float64. All operations are real
// arithmetic; there are no integer or boolean tensors.
package tensor
