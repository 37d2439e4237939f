package ops

import "github.com/thermograd/thermograd/internal/tensor"

// ExpandOp represents a broadcast to a larger shape: output = expand(x).
//
// Backward pass: gradients over the broadcast copies accumulate back into
// the source, which for the supported reductions means summing.
type ExpandOp struct {
	input  *tensor.RawTensor // x
	output *tensor.RawTensor // x broadcast to the target shape
}

// NewExpandOp creates a new ExpandOp.
func NewExpandOp(input, output *tensor.RawTensor) *ExpandOp {
	return &ExpandOp{
		input:  input,
		output: output,
	}
}

// Backward computes the input gradient for the broadcast.
func (op *ExpandOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{reduceToShape(outputGrad, op.input.Shape(), backend)}
}

// Inputs returns the input tensor [x].
func (op *ExpandOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the broadcast output tensor.
func (op *ExpandOp) Output() *tensor.RawTensor {
	return op.output
}
