// Package cpu implements the pure Go CPU backend.
package cpu

import (
	"fmt"

	"github.com/thermograd/thermograd/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
//
// Every operation allocates a fresh result tensor. The autodiff decorator
// relies on inputs staying intact across the whole run, so there is no
// inplace fast path.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("add", a, b,
		func(x, y float32) float32 { return x + y },
		func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("sub", a, b,
		func(x, y float32) float32 { return x - y },
		func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("mul", a, b,
		func(x, y float32) float32 { return x * y },
		func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division with broadcasting.
// Division by zero follows IEEE 754 (±Inf/NaN), it is not trapped.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("div", a, b,
		func(x, y float32) float32 { return x / y },
		func(x, y float64) float64 { return x / y })
}

// binary applies an element-wise binary operation with broadcasting.
func (cpu *CPUBackend) binary(
	name string,
	a, b *tensor.RawTensor,
	f32 func(x, y float32) float32,
	f64 func(x, y float64) float64,
) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", name, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	if !needsBroadcast && a.Shape().Equal(b.Shape()) {
		switch a.DType() {
		case tensor.Float32:
			av, bv, dst := a.AsFloat32(), b.AsFloat32(), result.AsFloat32()
			for i := range dst {
				dst[i] = f32(av[i], bv[i])
			}
		case tensor.Float64:
			av, bv, dst := a.AsFloat64(), b.AsFloat64(), result.AsFloat64()
			for i := range dst {
				dst[i] = f64(av[i], bv[i])
			}
		default:
			panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
		}
		return result
	}

	// Broadcast path
	switch a.DType() {
	case tensor.Float32:
		av, bv, dst := a.AsFloat32(), b.AsFloat32(), result.AsFloat32()
		aStrides := broadcastStrides(a.Shape(), outShape)
		bStrides := broadcastStrides(b.Shape(), outShape)
		outStrides := outShape.ComputeStrides()
		for i := range dst {
			dst[i] = f32(av[broadcastIndex(i, outStrides, aStrides)], bv[broadcastIndex(i, outStrides, bStrides)])
		}
	case tensor.Float64:
		av, bv, dst := a.AsFloat64(), b.AsFloat64(), result.AsFloat64()
		aStrides := broadcastStrides(a.Shape(), outShape)
		bStrides := broadcastStrides(b.Shape(), outShape)
		outStrides := outShape.ComputeStrides()
		for i := range dst {
			dst[i] = f64(av[broadcastIndex(i, outStrides, aStrides)], bv[broadcastIndex(i, outStrides, bStrides)])
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
	}

	return result
}

// broadcastStrides computes the strides of shape when broadcast to outShape:
// size-1 (or missing) dimensions get stride 0.
func broadcastStrides(shape, outShape tensor.Shape) []int {
	srcStrides := shape.ComputeStrides()
	strides := make([]int, len(outShape))
	offset := len(outShape) - len(shape)
	for i := range outShape {
		if i < offset {
			strides[i] = 0
			continue
		}
		if shape[i-offset] == 1 {
			strides[i] = 0
		} else {
			strides[i] = srcStrides[i-offset]
		}
	}
	return strides
}

// broadcastIndex maps a flat output index to the flat input index under the
// given broadcast strides.
func broadcastIndex(flat int, outStrides, srcStrides []int) int {
	idx := 0
	for d := range outStrides {
		coord := flat / outStrides[d]
		flat %= outStrides[d]
		idx += coord * srcStrides[d]
	}
	return idx
}
