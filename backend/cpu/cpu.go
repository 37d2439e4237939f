// Copyright 2026 Thermograd Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU backend.
package cpu

import (
	internalcpu "github.com/thermograd/thermograd/internal/backend/cpu"
	"github.com/thermograd/thermograd/tensor"
)

// Backend represents the CPU backend implementation.
//
// Every operation allocates a fresh result tensor; inputs are never modified
// in place, which the autodiff decorator depends on for graph retention.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/thermograd/thermograd/backend/cpu"
//	    "github.com/thermograd/thermograd/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float64](tensor.Shape{2, 3}, backend)
//	    _ = x
//	}
func New() *Backend {
	return internalcpu.New()
}
