// Copyright 2026 Thermograd Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/thermograd/thermograd/internal/backend/cpu"
	"github.com/thermograd/thermograd/tensor"
)

// TestBackendInterface verifies that cpu.CPUBackend implements tensor.Backend.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend = (*cpu.CPUBackend)(nil)
}

// TestRawTensorAPI verifies the RawTensor type alias exposes the expected API.
func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float64, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if !raw.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", raw.Shape())
	}
	if raw.DType() != tensor.Float64 {
		t.Errorf("DType() = %v, want Float64", raw.DType())
	}
	if raw.Device() != tensor.CPU {
		t.Errorf("Device() = %v, want CPU", raw.Device())
	}
	if raw.NumElements() != 6 {
		t.Errorf("NumElements() = %d, want 6", raw.NumElements())
	}
	if raw.ByteSize() != 6*8 {
		t.Errorf("ByteSize() = %d, want %d", raw.ByteSize(), 6*8)
	}

	clone := raw.Clone()
	if clone == nil {
		t.Fatal("Clone() returned nil")
	}
	if clone == raw {
		t.Error("Clone() should return a distinct tensor")
	}
}

// TestTensorAPI exercises creation and arithmetic through the public facade.
func TestTensorAPI(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	y := x.MulScalar(2).AddScalar(1)
	want := []float64{3, 5, 7}
	for i, v := range y.Data() {
		if v != want[i] {
			t.Errorf("element %d = %v, want %v", i, v, want[i])
		}
	}

	z := tensor.Linspace[float64](0, 1, 3, backend)
	if z.NumElements() != 3 {
		t.Errorf("Linspace length = %d, want 3", z.NumElements())
	}
}
