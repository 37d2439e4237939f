// Package ops defines the differentiable operations recorded on the
// gradient tape.
//
// Each operation stores its input and output tensors from the forward pass
// and knows how to turn a gradient flowing into its output into gradients for
// its inputs. Backward implementations are expressed exclusively through
// backend calls (or return existing graph nodes unchanged): when the tape
// keeps recording during a backward walk, the gradients themselves become
// graph nodes and can be differentiated a second time.
package ops

import "github.com/thermograd/thermograd/internal/tensor"

// Operation represents a differentiable operation in the computation graph.
type Operation interface {
	// Backward computes gradients for inputs given the output gradient.
	// Returns a slice of gradients corresponding to each input tensor.
	Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor

	// Inputs returns the input tensors for this operation.
	Inputs() []*tensor.RawTensor

	// Output returns the output tensor produced by this operation.
	Output() *tensor.RawTensor
}
