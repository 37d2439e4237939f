package ops

import "github.com/thermograd/thermograd/internal/tensor"

// SumOp represents the total-sum reduction: output = sum(x), a 0-D scalar.
//
// Backward pass: every element contributes with weight 1, so the scalar
// output gradient is broadcast back to the input shape.
type SumOp struct {
	input  *tensor.RawTensor // x
	output *tensor.RawTensor // sum(x), shape {}
}

// NewSumOp creates a new SumOp.
func NewSumOp(input, output *tensor.RawTensor) *SumOp {
	return &SumOp{
		input:  input,
		output: output,
	}
}

// Backward computes the input gradient for the sum reduction.
func (op *SumOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Expand(outputGrad, op.input.Shape())}
}

// Inputs returns the input tensor [x].
func (op *SumOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the 0-D output tensor sum(x).
func (op *SumOp) Output() *tensor.RawTensor {
	return op.output
}
