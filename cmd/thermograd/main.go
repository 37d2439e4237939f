// Copyright 2026 Thermograd Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package main runs the equation-of-state differentiation demo.
//
// It evaluates the pressure sweep on a plain CPU backend, repeats it on the
// autodiff backend, and prints the pressures, the first-order derivatives
// with their symbolic cross-checks, and the stacked second-order derivatives.
// Results go to stdout; progress logging goes to stderr.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/thermograd/thermograd/autodiff"
	"github.com/thermograd/thermograd/backend/cpu"
	"github.com/thermograd/thermograd/tensor"
	"github.com/thermograd/thermograd/thermo"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("thermograd %s\n", version)
		return
	}

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	// Numeric baseline on the plain CPU backend.
	numeric := cpu.New()
	baseTemp, baseVol := thermo.SweepGrid[float64](numeric)
	basePressure := thermo.Pressure(baseTemp, baseVol)
	fmt.Println(formatVector(basePressure.Data()))

	// Same expression, recording backend.
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	temp, vol := thermo.SweepGrid[float64](backend)
	pressure := thermo.Pressure(temp, vol)
	fmt.Println(formatVector(pressure.Data()))
	fmt.Println(tensor.AllClose(pressure.Raw(), basePressure.Raw()))

	log.WithField("ops", backend.Tape().NumOps()).Info("forward pass recorded")

	inputs := []*tensor.RawTensor{temp.Raw(), vol.Raw()}
	first, err := autodiff.Grad(pressure.Sum(), inputs, backend, autodiff.GradOpts{
		RetainGraph: true,
		CreateGraph: true,
		AllowUnused: true,
	})
	if err != nil {
		log.WithError(err).Fatal("first-order gradient failed")
	}

	dPdT := tensor.New[float64](first[0], backend)
	dPdV := tensor.New[float64](first[1], backend)
	fmt.Println("dP/dT:", formatVector(dPdT.Data()))
	fmt.Println("dP/dv:", formatVector(dPdV.Data()))

	// Cross-check against the closed-form derivatives.
	fmt.Println(tensor.AllClose(first[0], thermo.DPressureDT(baseTemp, baseVol).Raw()))
	fmt.Println(tensor.AllClose(first[1], thermo.DPressureDV(baseTemp, baseVol).Raw()))

	// Second order: differentiate each first derivative with respect to both
	// inputs again.
	for _, d := range []*tensor.Tensor[float64, *autodiff.Backend[*cpu.Backend]]{dPdT, dPdV} {
		second, err := autodiff.Grad(d.Sum(), inputs, backend, autodiff.GradOpts{
			RetainGraph: true,
			CreateGraph: true,
			AllowUnused: true,
		})
		if err != nil {
			log.WithError(err).Fatal("second-order gradient failed")
		}
		stacked := tensor.Stack([]*tensor.Tensor[float64, *autodiff.Backend[*cpu.Backend]]{
			tensor.New[float64](second[0], backend),
			tensor.New[float64](second[1], backend),
		})
		fmt.Println(formatMatrix(stacked))
	}

	log.WithField("ops", backend.Tape().NumOps()).Info("done")
}

// formatVector renders a numeric slice as a bracketed row.
func formatVector(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', 8, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// formatMatrix renders a 2-D tensor row by row.
func formatMatrix[B tensor.Backend](t *tensor.Tensor[float64, B]) string {
	shape := t.Shape()
	if len(shape) != 2 {
		return formatVector(t.Data())
	}

	data := t.Data()
	rows := make([]string, shape[0])
	for i := range rows {
		rows[i] = formatVector(data[i*shape[1] : (i+1)*shape[1]])
	}
	return "[" + strings.Join(rows, "\n ") + "]"
}
