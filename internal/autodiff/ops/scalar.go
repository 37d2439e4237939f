package ops

import "github.com/thermograd/thermograd/internal/tensor"

// Scalar operations. The scalar is a constant, not a graph node, so only the
// tensor input receives a gradient.

// AddScalarOp represents output = x + s for a constant s.
//
// Backward pass: d(x+s)/dx = 1, so grad_x = outputGrad.
type AddScalarOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
	scalar any
}

// NewAddScalarOp creates a new AddScalarOp.
func NewAddScalarOp(x, output *tensor.RawTensor, scalar any) *AddScalarOp {
	return &AddScalarOp{input: x, output: output, scalar: scalar}
}

// Backward computes the input gradient for scalar addition.
func (op *AddScalarOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{outputGrad}
}

// Inputs returns the input tensor [x].
func (op *AddScalarOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor x + s.
func (op *AddScalarOp) Output() *tensor.RawTensor {
	return op.output
}

// SubScalarOp represents output = x - s for a constant s.
//
// Backward pass: d(x-s)/dx = 1, so grad_x = outputGrad.
type SubScalarOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
	scalar any
}

// NewSubScalarOp creates a new SubScalarOp.
func NewSubScalarOp(x, output *tensor.RawTensor, scalar any) *SubScalarOp {
	return &SubScalarOp{input: x, output: output, scalar: scalar}
}

// Backward computes the input gradient for scalar subtraction.
func (op *SubScalarOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{outputGrad}
}

// Inputs returns the input tensor [x].
func (op *SubScalarOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor x - s.
func (op *SubScalarOp) Output() *tensor.RawTensor {
	return op.output
}

// MulScalarOp represents output = x * s for a constant s.
//
// Backward pass: d(x*s)/dx = s, so grad_x = outputGrad * s.
type MulScalarOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
	scalar any
}

// NewMulScalarOp creates a new MulScalarOp.
func NewMulScalarOp(x, output *tensor.RawTensor, scalar any) *MulScalarOp {
	return &MulScalarOp{input: x, output: output, scalar: scalar}
}

// Backward computes the input gradient for scalar multiplication.
func (op *MulScalarOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.MulScalar(outputGrad, op.scalar)}
}

// Inputs returns the input tensor [x].
func (op *MulScalarOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor x * s.
func (op *MulScalarOp) Output() *tensor.RawTensor {
	return op.output
}

// DivScalarOp represents output = x / s for a constant s.
//
// Backward pass: d(x/s)/dx = 1/s, so grad_x = outputGrad / s.
type DivScalarOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
	scalar any
}

// NewDivScalarOp creates a new DivScalarOp.
func NewDivScalarOp(x, output *tensor.RawTensor, scalar any) *DivScalarOp {
	return &DivScalarOp{input: x, output: output, scalar: scalar}
}

// Backward computes the input gradient for scalar division.
func (op *DivScalarOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.DivScalar(outputGrad, op.scalar)}
}

// Inputs returns the input tensor [x].
func (op *DivScalarOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor x / s.
func (op *DivScalarOp) Output() *tensor.RawTensor {
	return op.output
}
