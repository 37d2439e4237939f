package ops

import "github.com/thermograd/thermograd/internal/tensor"

// PowOp represents the power operation with a constant real exponent:
// output = x^p.
//
// Backward pass:
//   - d(x^p)/dx = p * x^(p-1)
//   - grad_x = outputGrad * p * x^(p-1)
type PowOp struct {
	input    *tensor.RawTensor // x
	output   *tensor.RawTensor // x^p
	exponent float64
}

// NewPowOp creates a new PowOp.
func NewPowOp(x, output *tensor.RawTensor, exponent float64) *PowOp {
	return &PowOp{
		input:    x,
		output:   output,
		exponent: exponent,
	}
}

// Backward computes the input gradient for the power operation.
func (op *PowOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	x := op.input

	// grad_x = outputGrad * x^(p-1) * p
	grad := backend.Mul(outputGrad, backend.Pow(x, op.exponent-1))
	grad = backend.MulScalar(grad, scalarFor(x.DType(), op.exponent))

	return []*tensor.RawTensor{grad}
}

// Inputs returns the input tensor [x].
func (op *PowOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor x^p.
func (op *PowOp) Output() *tensor.RawTensor {
	return op.output
}
