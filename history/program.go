// SPDX-License-Identifier: MIT

package history

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvqsim/gates"
	"github.com/katalvlaran/lvqsim/state"
)

// Program is a YAML document describing one circuit run:
//
//	qubits: 2
//	shots: 1024
//	seed: 7
//	ops:
//	  - {gate: H, target: 0}
//	  - {gate: CX, control: 0, target: 1}
//
// Shots and Seed are optional; zero Shots means "use the caller's default".
type Program struct {
	Name   string `yaml:"name,omitempty"`
	Qubits int    `yaml:"qubits" validate:"required,min=1"`
	Shots  int    `yaml:"shots,omitempty" validate:"gte=0"`
	Seed   *int64 `yaml:"seed,omitempty"`
	Ops    []Op   `yaml:"ops" validate:"dive"`
}

var programValidate *validator.Validate

func init() {
	programValidate = validator.New()

	// opname accepts catalogue symbols and aliases plus cx/cnot.
	_ = programValidate.RegisterValidation("opname", validateOpName)
}

func validateOpName(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if isCX(s) {
		return true
	}
	_, err := gates.Parse(s)

	return err == nil
}

// Validate checks struct tags, the qubit ceiling and each op's operand shape.
func (p *Program) Validate() error {
	if err := programValidate.Struct(p); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidProgram)
	}
	if p.Qubits > state.MaxQubits {
		return fmt.Errorf("qubits %d > %d: %w", p.Qubits, state.MaxQubits, ErrInvalidProgram)
	}
	for i, op := range p.Ops {
		if err := op.Validate(); err != nil {
			return fmt.Errorf("op %d: %w: %w", i, ErrInvalidProgram, err)
		}
	}

	return nil
}

// Log returns the program's operations as a Log.
func (p *Program) Log() (*Log, error) {
	return NewLog(p.Ops...)
}

// DecodeProgram reads one YAML Program from r, rejecting unknown keys,
// and validates it.
func DecodeProgram(r io.Reader) (*Program, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Program
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("history: decode: %v: %w", err, ErrInvalidProgram)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}

	return &p, nil
}

// LoadProgram reads and decodes the Program at path.
func LoadProgram(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("history: read %s: %w", path, err)
	}
	p, err := DecodeProgram(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = path
	}

	return p, nil
}

// Encode writes p as YAML.
func (p *Program) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("history: encode: %w", err)
	}

	return enc.Close()
}
