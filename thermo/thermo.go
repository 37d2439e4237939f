// Copyright 2026 Thermograd Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package thermo evaluates a cubic equation of state and its closed-form
// derivatives over tensors.
//
// The pressure model is
//
//	P = R·T/(v−b) − a/(√T·v·(v+b))
//
// with temperature T in kelvin, molar volume v in m³/mol, and pressure P in
// pascal. Functions are generic over the backend, so the same expression runs
// on a plain CPU backend for numeric evaluation and on an autodiff backend
// for gradients.
package thermo

import (
	"github.com/thermograd/thermograd/tensor"
)

// Equation-of-state constants for the worked gas.
const (
	// GasConstant is the universal gas constant R in J/(mol·K).
	GasConstant = 8.314

	// AttractionA is the attraction parameter a.
	AttractionA = 29.08

	// CovolumeB is the molar covolume b in m³/mol.
	CovolumeB = 8.09e-5
)

// Pressure evaluates P = R·T/(v−b) − a/(√T·v·(v+b)) element-wise.
//
// temp and vol must have the same shape. Every element of vol must exceed
// CovolumeB; the repulsion term is singular at v = b and the expression does
// not guard against it.
func Pressure[T tensor.DType, B tensor.Backend](temp, vol *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	repulsion := temp.MulScalar(GasConstant).Div(vol.SubScalar(CovolumeB))
	attraction := temp.Sqrt().Mul(vol).Mul(vol.AddScalar(CovolumeB)).Pow(-1).MulScalar(AttractionA)
	return repulsion.Sub(attraction)
}

// DPressureDT evaluates the closed-form partial derivative
//
//	∂P/∂T = R/(v−b) + a/(2·T^1.5·v·(v+b))
//
// It is the symbolic reference the autodiff gradient is checked against.
func DPressureDT[T tensor.DType, B tensor.Backend](temp, vol *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	repulsion := vol.SubScalar(CovolumeB).Pow(-1).MulScalar(GasConstant)
	attraction := temp.Pow(1.5).Mul(vol).Mul(vol.AddScalar(CovolumeB)).Pow(-1).MulScalar(AttractionA / 2)
	return repulsion.Add(attraction)
}

// DPressureDV evaluates the closed-form partial derivative
//
//	∂P/∂v = −R·T/(v−b)² + a·(2v+b)/(√T·v²·(v+b)²)
//
// It is the symbolic reference the autodiff gradient is checked against.
func DPressureDV[T tensor.DType, B tensor.Backend](temp, vol *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	repulsion := temp.MulScalar(-GasConstant).Mul(vol.SubScalar(CovolumeB).Pow(-2))
	numerator := vol.MulScalar(2).AddScalar(CovolumeB).MulScalar(AttractionA)
	denominator := temp.Sqrt().Mul(vol.Pow(2)).Mul(vol.AddScalar(CovolumeB).Pow(2))
	return repulsion.Add(numerator.Div(denominator))
}

// SweepGrid returns the worked sample grid: temperatures from 298.15 K up to
// (but excluding) 373.15 K in 15 K steps, and as many molar volumes evenly
// spaced over [1.27e-3, 2.59e-3] m³/mol.
func SweepGrid[T tensor.DType, B tensor.Backend](b B) (temp, vol *tensor.Tensor[T, B]) {
	temp = tensor.Arange[T](298.15, 373.15, 15, b)
	vol = tensor.Linspace[T](1.27e-3, 2.59e-3, temp.NumElements(), b)
	return temp, vol
}
