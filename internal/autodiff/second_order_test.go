package autodiff_test

import (
	"math"
	"testing"

	"github.com/thermograd/thermograd/internal/autodiff"
	"github.com/thermograd/thermograd/internal/backend/cpu"
	"github.com/thermograd/thermograd/internal/tensor"
)

// secondDerivative differentiates f twice with respect to x at the given
// point, using two chained Grad calls with CreateGraph.
func secondDerivative(
	t *testing.T,
	f func(x *tensor.Tensor[float64, *cpuAutodiff]) *tensor.Tensor[float64, *cpuAutodiff],
	at float64,
) float64 {
	t.Helper()

	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	x, err := tensor.FromSlice([]float64{at}, tensor.Shape{1}, backend)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}

	inputs := []*tensor.RawTensor{x.Raw()}

	first, err := autodiff.Grad(f(x), inputs, backend, autodiff.GradOpts{
		RetainGraph: true,
		CreateGraph: true,
	})
	if err != nil {
		t.Fatalf("first Grad: %v", err)
	}

	g := tensor.New[float64](first[0], backend)
	second, err := autodiff.Grad(g, inputs, backend, autodiff.GradOpts{RetainGraph: true})
	if err != nil {
		t.Fatalf("second Grad: %v", err)
	}

	return second[0].AsFloat64()[0]
}

func TestSecondOrder_Cubic(t *testing.T) {
	// f = x³, f'' = 6x
	got := secondDerivative(t,
		func(x *tensor.Tensor[float64, *cpuAutodiff]) *tensor.Tensor[float64, *cpuAutodiff] {
			return x.Pow(3)
		}, 2)

	if math.Abs(got-12) > 1e-10 {
		t.Errorf("d²(x³)/dx² at x=2 = %v, want 12", got)
	}
}

func TestSecondOrder_Reciprocal(t *testing.T) {
	// f = 1/x, f'' = 2/x³
	got := secondDerivative(t,
		func(x *tensor.Tensor[float64, *cpuAutodiff]) *tensor.Tensor[float64, *cpuAutodiff] {
			return x.Pow(-1)
		}, 2)

	if math.Abs(got-0.25) > 1e-10 {
		t.Errorf("d²(1/x)/dx² at x=2 = %v, want 0.25", got)
	}
}

func TestSecondOrder_Sqrt(t *testing.T) {
	// f = √x, f'' = -1/(4·x^1.5)
	got := secondDerivative(t,
		func(x *tensor.Tensor[float64, *cpuAutodiff]) *tensor.Tensor[float64, *cpuAutodiff] {
			return x.Sqrt()
		}, 4)

	if math.Abs(got-(-1.0/32)) > 1e-10 {
		t.Errorf("d²(√x)/dx² at x=4 = %v, want -1/32", got)
	}
}

func TestSecondOrder_Product(t *testing.T) {
	// f = x·x·x expressed with Mul only, f'' = 6x
	got := secondDerivative(t,
		func(x *tensor.Tensor[float64, *cpuAutodiff]) *tensor.Tensor[float64, *cpuAutodiff] {
			return x.Mul(x).Mul(x)
		}, 3)

	if math.Abs(got-18) > 1e-10 {
		t.Errorf("d²(x³)/dx² at x=3 = %v, want 18", got)
	}
}

func TestSecondOrder_MixedPartial(t *testing.T) {
	// f = x·y², ∂²f/∂y∂x = 2y
	const atX, atY = 3.0, 5.0

	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	x, _ := tensor.FromSlice([]float64{atX}, tensor.Shape{1}, backend)
	y, _ := tensor.FromSlice([]float64{atY}, tensor.Shape{1}, backend)
	f := x.Mul(y).Mul(y)

	inputs := []*tensor.RawTensor{x.Raw(), y.Raw()}

	first, err := autodiff.Grad(f, inputs, backend, autodiff.GradOpts{
		RetainGraph: true,
		CreateGraph: true,
	})
	if err != nil {
		t.Fatalf("first Grad: %v", err)
	}

	dfdx := tensor.New[float64](first[0], backend)
	second, err := autodiff.Grad(dfdx, inputs, backend, autodiff.GradOpts{
		RetainGraph: true,
		AllowUnused: true,
	})
	if err != nil {
		t.Fatalf("second Grad: %v", err)
	}

	got := second[1].AsFloat64()[0]
	if math.Abs(got-2*atY) > 1e-10 {
		t.Errorf("∂²(x·y²)/∂y∂x = %v, want %v", got, 2*atY)
	}
}

func TestSecondOrder_Vector(t *testing.T) {
	// f = Σx⁴ over a vector, element-wise f'' = 12x²
	points := []float64{1, 2, 3}

	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	x, _ := tensor.FromSlice(points, tensor.Shape{len(points)}, backend)
	f := x.Pow(4).Sum()

	inputs := []*tensor.RawTensor{x.Raw()}

	first, err := autodiff.Grad(f, inputs, backend, autodiff.GradOpts{
		RetainGraph: true,
		CreateGraph: true,
	})
	if err != nil {
		t.Fatalf("first Grad: %v", err)
	}

	g := tensor.New[float64](first[0], backend).Sum()
	second, err := autodiff.Grad(g, inputs, backend, autodiff.GradOpts{RetainGraph: true})
	if err != nil {
		t.Fatalf("second Grad: %v", err)
	}

	for i, v := range second[0].AsFloat64() {
		want := 12 * points[i] * points[i]
		if math.Abs(v-want) > 1e-8 {
			t.Errorf("d²(Σx⁴)/dx² element %d = %v, want %v", i, v, want)
		}
	}
}

func TestSecondOrder_AgreesWithFiniteDifferenceOfGradient(t *testing.T) {
	// Cross-check d²f/dx² for f = x²·√x against a finite difference of the
	// analytic first derivative f' = 2.5·x^1.5.
	const at = 2.0

	got := secondDerivative(t,
		func(x *tensor.Tensor[float64, *cpuAutodiff]) *tensor.Tensor[float64, *cpuAutodiff] {
			return x.Mul(x).Mul(x.Sqrt())
		}, at)

	fprime := func(v float64) float64 { return 2.5 * math.Pow(v, 1.5) }
	want := centralDiff(fprime, at, 1e-6)

	if math.Abs(got-want) > 1e-4 {
		t.Errorf("d²(x²√x)/dx² = %v, finite difference of f' = %v", got, want)
	}
}
