package autodiff

import (
	"github.com/thermograd/thermograd/internal/autodiff/ops"
	"github.com/thermograd/thermograd/internal/tensor"
)

// GradientTape records operations during the forward pass and computes
// gradients during the backward pass using reverse-mode automatic
// differentiation.
//
// The tape is process-scoped state owned by the autodiff backend: built up
// while evaluating, retained across chained derivative calls, released by
// Clear or at process exit.
type GradientTape struct {
	operations []ops.Operation // Recorded operations (in execution order)
	recording  bool            // Whether tape is currently recording
}

// NewGradientTape creates a new gradient tape.
func NewGradientTape() *GradientTape {
	return &GradientTape{
		operations: make([]ops.Operation, 0, 64),
		recording:  false,
	}
}

// StartRecording enables operation recording.
func (t *GradientTape) StartRecording() {
	t.recording = true
}

// StopRecording disables operation recording.
func (t *GradientTape) StopRecording() {
	t.recording = false
}

// IsRecording returns true if the tape is currently recording operations.
func (t *GradientTape) IsRecording() bool {
	return t.recording
}

// Record adds an operation to the tape.
// Only records if the tape is currently recording.
func (t *GradientTape) Record(op ops.Operation) {
	if t.recording {
		t.operations = append(t.operations, op)
	}
}

// Clear resets the tape, removing all recorded operations.
// Recording state is preserved.
func (t *GradientTape) Clear() {
	t.operations = t.operations[:0]
}

// NumOps returns the number of recorded operations.
func (t *GradientTape) NumOps() int {
	return len(t.operations)
}

// Backward computes gradients of root with respect to every tensor on the
// tape, seeded with the given output gradient.
//
// Algorithm:
//  1. Seed the root tensor with the output gradient
//  2. Walk operations in reverse order
//  3. For each operation whose output has a gradient, compute input
//     gradients via the chain rule
//  4. Accumulate gradients when the same tensor feeds multiple operations
//
// With createGraph the tape keeps recording while gradients are computed, so
// every backward operation lands on the tape too: the returned gradients are
// then graph nodes, and a later Backward over the grown tape yields
// second-order derivatives. Without createGraph, recording is suspended for
// the duration of the walk.
//
// Returns a map from RawTensor to its accumulated gradient. Tensors not
// connected to root are simply absent from the map.
func (t *GradientTape) Backward(
	root *tensor.RawTensor,
	outputGrad *tensor.RawTensor,
	backend tensor.Backend,
	createGraph bool,
) map[*tensor.RawTensor]*tensor.RawTensor {
	grads := make(map[*tensor.RawTensor]*tensor.RawTensor)
	if len(t.operations) == 0 {
		return grads
	}

	if !createGraph {
		wasRecording := t.recording
		t.recording = false
		defer func() {
			t.recording = wasRecording
		}()
	}

	grads[root] = outputGrad

	// Snapshot: with createGraph the walk itself appends to t.operations,
	// and those new entries must not be revisited in this pass.
	recorded := t.operations

	for i := len(recorded) - 1; i >= 0; i-- {
		op := recorded[i]

		opOutputGrad, hasGrad := grads[op.Output()]
		if !hasGrad {
			continue
		}

		inputGrads := op.Backward(opOutputGrad, backend)
		t.accumulate(op, inputGrads, grads, backend)
	}

	return grads
}

// accumulate merges input gradients into the gradient map.
func (t *GradientTape) accumulate(
	op ops.Operation,
	inputGrads []*tensor.RawTensor,
	grads map[*tensor.RawTensor]*tensor.RawTensor,
	backend tensor.Backend,
) {
	inputs := op.Inputs()
	for j, input := range inputs {
		if j >= len(inputGrads) {
			break
		}
		inputGrad := inputGrads[j]
		if inputGrad == nil {
			continue
		}
		if existing, ok := grads[input]; ok {
			grads[input] = backend.Add(existing, inputGrad)
		} else {
			grads[input] = inputGrad
		}
	}
}
