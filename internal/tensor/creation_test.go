package tensor_test

import (
	"math"
	"testing"

	"github.com/thermograd/thermograd/internal/backend/cpu"
	"github.com/thermograd/thermograd/internal/tensor"
)

func TestZeros(t *testing.T) {
	backend := cpu.New()
	z := tensor.Zeros[float64](tensor.Shape{2, 3}, backend)

	if !z.Shape().Equal(tensor.Shape{2, 3}) {
		t.Fatalf("Zeros shape = %v, want [2 3]", z.Shape())
	}
	for i, v := range z.Data() {
		if v != 0 {
			t.Errorf("Zeros element %d = %v, want 0", i, v)
		}
	}
}

func TestOnes(t *testing.T) {
	backend := cpu.New()
	o := tensor.Ones[float32](tensor.Shape{4}, backend)

	for i, v := range o.Data() {
		if v != 1 {
			t.Errorf("Ones element %d = %v, want 1", i, v)
		}
	}
	if o.DType() != tensor.Float32 {
		t.Errorf("Ones dtype = %v, want Float32", o.DType())
	}
}

func TestFull(t *testing.T) {
	backend := cpu.New()
	f := tensor.Full[float64](tensor.Shape{3}, 3.14, backend)

	for i, v := range f.Data() {
		if v != 3.14 {
			t.Errorf("Full element %d = %v, want 3.14", i, v)
		}
	}
}

func TestArange(t *testing.T) {
	backend := cpu.New()
	a := tensor.Arange[float64](298.15, 373.15, 15, backend)

	want := []float64{298.15, 313.15, 328.15, 343.15, 358.15}
	if a.NumElements() != len(want) {
		t.Fatalf("Arange length = %d, want %d", a.NumElements(), len(want))
	}
	for i, v := range a.Data() {
		if math.Abs(v-want[i]) > 1e-12 {
			t.Errorf("Arange element %d = %v, want %v", i, v, want[i])
		}
	}
}

func TestArange_ExcludesStop(t *testing.T) {
	backend := cpu.New()
	a := tensor.Arange[float64](0, 10, 5, backend)

	if a.NumElements() != 2 {
		t.Fatalf("Arange(0, 10, 5) length = %d, want 2", a.NumElements())
	}
	data := a.Data()
	if data[0] != 0 || data[1] != 5 {
		t.Errorf("Arange(0, 10, 5) = %v, want [0 5]", data)
	}
}

func TestArange_ZeroStepPanics(t *testing.T) {
	backend := cpu.New()
	defer func() {
		if recover() == nil {
			t.Error("Arange with zero step should panic")
		}
	}()
	tensor.Arange[float64](0, 10, 0, backend)
}

func TestArange_EmptyRangePanics(t *testing.T) {
	backend := cpu.New()
	defer func() {
		if recover() == nil {
			t.Error("Arange with empty range should panic")
		}
	}()
	tensor.Arange[float64](10, 0, 1, backend)
}

func TestLinspace(t *testing.T) {
	backend := cpu.New()
	l := tensor.Linspace[float64](1.27e-3, 2.59e-3, 5, backend)

	data := l.Data()
	if len(data) != 5 {
		t.Fatalf("Linspace length = %d, want 5", len(data))
	}
	if math.Abs(data[0]-1.27e-3) > 1e-15 {
		t.Errorf("Linspace first = %v, want 1.27e-3", data[0])
	}
	if math.Abs(data[4]-2.59e-3) > 1e-15 {
		t.Errorf("Linspace last = %v, want 2.59e-3", data[4])
	}

	// Even spacing between consecutive points.
	step := data[1] - data[0]
	for i := 1; i < len(data)-1; i++ {
		if math.Abs((data[i+1]-data[i])-step) > 1e-12 {
			t.Errorf("Linspace spacing at %d = %v, want %v", i, data[i+1]-data[i], step)
		}
	}
}

func TestLinspace_SinglePoint(t *testing.T) {
	backend := cpu.New()
	l := tensor.Linspace[float64](3.5, 9, 1, backend)

	if l.NumElements() != 1 {
		t.Fatalf("Linspace length = %d, want 1", l.NumElements())
	}
	if got := l.Data()[0]; got != 3.5 {
		t.Errorf("Linspace single point = %v, want 3.5", got)
	}
}

func TestLinspace_NoPointsPanics(t *testing.T) {
	backend := cpu.New()
	defer func() {
		if recover() == nil {
			t.Error("Linspace with num < 1 should panic")
		}
	}()
	tensor.Linspace[float64](0, 1, 0, backend)
}
