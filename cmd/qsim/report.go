// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/katalvlaran/lvqsim/history"
	"github.com/katalvlaran/lvqsim/sampler"
	"github.com/katalvlaran/lvqsim/state"
)

// report is the printable outcome of one circuit.
type report struct {
	Name          string             `json:"name,omitempty"`
	Qubits        int                `json:"qubits,omitempty"`
	Ops           []string           `json:"ops,omitempty"`
	Amplitudes    [][2]float64       `json:"amplitudes,omitempty"`
	Probabilities map[string]float64 `json:"probabilities,omitempty"`
	Counts        sampler.Counts     `json:"counts,omitempty"`
	Error         string             `json:"error,omitempty"`

	ket string
}

func newReport(name string, log *history.Log, vec *state.Vector, counts sampler.Counts) report {
	r := report{
		Name:          name,
		Qubits:        vec.NumQubits(),
		Probabilities: make(map[string]float64),
		Counts:        counts,
		ket:           vec.String(),
	}
	if log != nil {
		for _, op := range log.Ops() {
			r.Ops = append(r.Ops, op.String())
		}
	}
	for _, a := range vec.Amplitudes() {
		r.Amplitudes = append(r.Amplitudes, [2]float64{real(a), imag(a)})
	}
	for i, p := range vec.Probabilities() {
		if p > 0 {
			r.Probabilities[state.Label(i, r.Qubits)] = p
		}
	}

	return r
}

// writeText prints the gate sequence, final state, probabilities and counts.
func (r *report) writeText(w io.Writer) error {
	var b strings.Builder
	if r.Name != "" {
		fmt.Fprintf(&b, "== %s ==\n", r.Name)
	}
	if r.Error != "" {
		fmt.Fprintf(&b, "error: %s\n\n", r.Error)
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString("Gate sequence:\n")
	if len(r.Ops) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, op := range r.Ops {
		fmt.Fprintf(&b, "  %s\n", op)
	}

	fmt.Fprintf(&b, "\nFinal state (%d qubits):\n  %s\n", r.Qubits, r.ket)

	b.WriteString("\nProbabilities:\n")
	for _, label := range sortedLabels(r.Probabilities) {
		fmt.Fprintf(&b, "  %s  %.6f\n", label, r.Probabilities[label])
	}

	if r.Counts != nil {
		fmt.Fprintf(&b, "\nMeasurement (%d shots):\n", r.Counts.Total())
		for _, label := range r.Counts.Keys() {
			fmt.Fprintf(&b, "  %s  %d\n", label, r.Counts[label])
		}
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())

	return err
}

func sortedLabels(m map[string]float64) []string {
	labels := make([]string, 0, len(m))
	for k := range m {
		labels = append(labels, k)
	}
	sort.Strings(labels)

	return labels
}
