package autodiff

import (
	"fmt"

	"github.com/thermograd/thermograd/internal/tensor"
)

// BackwardCapable is an interface for backends that support backward passes.
// AutodiffBackend implements this interface.
type BackwardCapable interface {
	tensor.Backend
	// GetTape returns the gradient tape for backward computation.
	GetTape() *GradientTape
}

// GetTape returns the gradient tape (implements BackwardCapable).
func (b *AutodiffBackend[B]) GetTape() *GradientTape {
	return b.tape
}

// GradOpts controls a Grad call.
type GradOpts struct {
	// RetainGraph keeps the tape after the walk, so further Grad calls can
	// differentiate through the same graph. When false the tape is cleared.
	RetainGraph bool

	// CreateGraph records the backward computation itself, making the
	// returned gradients differentiable in turn. Required for second-order
	// derivatives.
	CreateGraph bool

	// AllowUnused reports an input that is not part of output's computation
	// graph as a nil gradient instead of an error.
	AllowUnused bool
}

// Grad computes the gradients of output with respect to each of inputs.
//
// The output is seeded with ones, so for a 0-D output this is the usual
// gradient of a scalar. The returned slice is aligned with inputs; with
// AllowUnused an input disconnected from the graph yields a nil entry, a
// structurally-zero derivative, rather than an error.
//
// Second-order derivatives chain naturally:
//
//	first, _ := Grad(p.Sum(), inputs, backend, GradOpts{RetainGraph: true, CreateGraph: true})
//	dT := tensor.New[float64](first[0], backend)
//	second, _ := Grad(dT.Sum(), inputs, backend, GradOpts{RetainGraph: true, CreateGraph: true, AllowUnused: true})
func Grad[T tensor.DType, B BackwardCapable](
	output *tensor.Tensor[T, B],
	inputs []*tensor.RawTensor,
	backend B,
	opts GradOpts,
) ([]*tensor.RawTensor, error) {
	tape := backend.GetTape()

	if tape.NumOps() == 0 {
		return nil, fmt.Errorf("grad: no operations recorded (did you forget to call Tape().StartRecording()?)")
	}

	seed, err := onesLike(output.Raw())
	if err != nil {
		return nil, fmt.Errorf("grad: failed to create output gradient: %w", err)
	}

	grads := tape.Backward(output.Raw(), seed, backend, opts.CreateGraph)

	results := make([]*tensor.RawTensor, len(inputs))
	for i, input := range inputs {
		grad, ok := grads[input]
		if !ok {
			if !opts.AllowUnused {
				return nil, fmt.Errorf("grad: input %d is not part of the computation graph (set AllowUnused to tolerate structurally-zero derivatives)", i)
			}
			continue // nil marks the unused input
		}
		results[i] = grad
	}

	if !opts.RetainGraph {
		tape.Clear()
	}

	return results, nil
}

// Backward computes first-order gradients for every tensor reachable from t,
// seeded with ones. It is the low-level companion to Grad: the full gradient
// map instead of an input-aligned slice, and a panic instead of an error when
// nothing was recorded.
func Backward[T tensor.DType, B BackwardCapable](t *tensor.Tensor[T, B], backend B) map[*tensor.RawTensor]*tensor.RawTensor {
	tape := backend.GetTape()

	if tape.NumOps() == 0 {
		panic("backward: no operations recorded (did you forget to call Tape().StartRecording()?)")
	}

	seed, err := onesLike(t.Raw())
	if err != nil {
		panic(fmt.Sprintf("backward: failed to create output gradient: %v", err))
	}

	return tape.Backward(t.Raw(), seed, backend, false)
}

// onesLike creates a detached all-ones tensor with the shape and dtype of r.
func onesLike(r *tensor.RawTensor) (*tensor.RawTensor, error) {
	seed, err := tensor.NewRaw(r.Shape(), r.DType(), r.Device())
	if err != nil {
		return nil, err
	}

	switch r.DType() {
	case tensor.Float32:
		data := seed.AsFloat32()
		for i := range data {
			data[i] = 1
		}
	case tensor.Float64:
		data := seed.AsFloat64()
		for i := range data {
			data[i] = 1
		}
	default:
		return nil, fmt.Errorf("unsupported dtype %s", r.DType())
	}

	return seed, nil
}
