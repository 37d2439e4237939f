package tensor_test

import (
	"testing"

	"github.com/thermograd/thermograd/internal/backend/cpu"
	"github.com/thermograd/thermograd/internal/tensor"
)

func TestFromSlice(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	if err != nil {
		t.Fatalf("FromSlice error: %v", err)
	}

	if !x.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("shape = %v, want [2 3]", x.Shape())
	}
	if x.DType() != tensor.Float64 {
		t.Errorf("dtype = %v, want Float64", x.DType())
	}
	if x.At(1, 2) != 6 {
		t.Errorf("At(1, 2) = %v, want 6", x.At(1, 2))
	}
}

func TestFromSlice_LengthMismatch(t *testing.T) {
	backend := cpu.New()
	_, err := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{2, 2}, backend)
	if err == nil {
		t.Error("FromSlice should reject mismatched data length")
	}
}

func TestTensor_Item(t *testing.T) {
	backend := cpu.New()
	x, _ := tensor.FromSlice([]float64{42}, tensor.Shape{}, backend)

	if x.Item() != 42 {
		t.Errorf("Item() = %v, want 42", x.Item())
	}
}

func TestTensor_Item_AfterSum(t *testing.T) {
	backend := cpu.New()
	x, _ := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3}, backend)

	if got := x.Sum().Item(); got != 6 {
		t.Errorf("Sum().Item() = %v, want 6", got)
	}
}

func TestTensor_Item_NonScalarPanics(t *testing.T) {
	backend := cpu.New()
	x, _ := tensor.FromSlice([]float64{42}, tensor.Shape{1}, backend)

	defer func() {
		if recover() == nil {
			t.Error("Item() on a non-scalar tensor should panic")
		}
	}()
	x.Item()
}

func TestTensor_Set(t *testing.T) {
	backend := cpu.New()
	x := tensor.Zeros[float64](tensor.Shape{2, 2}, backend)
	x.Set(7, 1, 0)

	if x.At(1, 0) != 7 {
		t.Errorf("At(1, 0) = %v after Set, want 7", x.At(1, 0))
	}
	if x.At(0, 0) != 0 {
		t.Errorf("At(0, 0) = %v, want 0", x.At(0, 0))
	}
}

func TestTensor_Detach(t *testing.T) {
	backend := cpu.New()
	x, _ := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2}, backend)
	d := x.Detach()

	if d.Raw() == x.Raw() {
		t.Error("Detach() should not share the raw tensor")
	}

	d.Data()[0] = 99
	if x.Data()[0] != 1 {
		t.Error("Detach() should deep-copy the data")
	}
}

func TestStack(t *testing.T) {
	backend := cpu.New()
	a, _ := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3}, backend)
	b, _ := tensor.FromSlice([]float64{4, 5, 6}, tensor.Shape{3}, backend)

	s := tensor.Stack([]*tensor.Tensor[float64, *cpu.CPUBackend]{a, b})

	if !s.Shape().Equal(tensor.Shape{2, 3}) {
		t.Fatalf("Stack shape = %v, want [2 3]", s.Shape())
	}
	want := []float64{1, 2, 3, 4, 5, 6}
	for i, v := range s.Data() {
		if v != want[i] {
			t.Errorf("Stack element %d = %v, want %v", i, v, want[i])
		}
	}
}

func TestStack_NilFirstTensorPanics(t *testing.T) {
	backend := cpu.New()
	b := tensor.Zeros[float64](tensor.Shape{3}, backend)

	defer func() {
		if recover() == nil {
			t.Error("Stack with a nil first tensor should panic")
		}
	}()
	tensor.Stack([]*tensor.Tensor[float64, *cpu.CPUBackend]{nil, b})
}

func TestStack_ShapeMismatchPanics(t *testing.T) {
	backend := cpu.New()
	a := tensor.Zeros[float64](tensor.Shape{3}, backend)
	b := tensor.Zeros[float64](tensor.Shape{4}, backend)

	defer func() {
		if recover() == nil {
			t.Error("Stack with mismatched shapes should panic")
		}
	}()
	tensor.Stack([]*tensor.Tensor[float64, *cpu.CPUBackend]{a, b})
}

func TestAllClose(t *testing.T) {
	backend := cpu.New()
	a, _ := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3}, backend)
	b, _ := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3}, backend)

	if !a.AllClose(b) {
		t.Error("identical tensors should be all-close")
	}
}

func TestAllClose_WithinTolerance(t *testing.T) {
	backend := cpu.New()
	a, _ := tensor.FromSlice([]float64{1e6}, tensor.Shape{1}, backend)
	b, _ := tensor.FromSlice([]float64{1e6 + 1}, tensor.Shape{1}, backend)

	// Relative difference 1e-6, inside the 1e-5 relative tolerance.
	if !a.AllClose(b) {
		t.Error("values within relative tolerance should be all-close")
	}
}

func TestAllClose_OutsideTolerance(t *testing.T) {
	backend := cpu.New()
	a, _ := tensor.FromSlice([]float64{1}, tensor.Shape{1}, backend)
	b, _ := tensor.FromSlice([]float64{1.001}, tensor.Shape{1}, backend)

	if a.AllClose(b) {
		t.Error("values outside tolerance should not be all-close")
	}
}

func TestAllClose_ShapeMismatch(t *testing.T) {
	backend := cpu.New()
	a := tensor.Zeros[float64](tensor.Shape{3}, backend)
	b := tensor.Zeros[float64](tensor.Shape{4}, backend)

	if tensor.AllClose(a.Raw(), b.Raw()) {
		t.Error("tensors of different shape should not be all-close")
	}
}
