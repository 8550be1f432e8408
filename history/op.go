// SPDX-License-Identifier: MIT

package history

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvqsim/circuit"
	"github.com/katalvlaran/lvqsim/gates"
)

// CX is the Op.Gate symbol of controlled-NOT.
const CX = "CX"

// Op is one recorded operation. Single-qubit gates leave Control nil;
// CX requires it.
type Op struct {
	Gate    string `yaml:"gate" json:"gate" validate:"required,opname"`
	Target  int    `yaml:"target" json:"target" validate:"gte=0"`
	Control *int   `yaml:"control,omitempty" json:"control,omitempty" validate:"omitempty,gte=0"`
}

// GateOp returns the Op for a catalogue gate on target.
func GateOp(name gates.Name, target int) Op {
	return Op{Gate: name.String(), Target: target}
}

// CXOp returns the Op for CX(control, target).
func CXOp(control, target int) Op {
	return Op{Gate: CX, Target: target, Control: &control}
}

// IsCX reports whether op is a controlled-NOT.
func (op Op) IsCX() bool { return isCX(op.Gate) }

func isCX(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cx", "cnot":
		return true
	}

	return false
}

// Validate checks the operand shape: a known symbol, non-negative indices,
// Control present exactly for CX. Qubit bounds are the circuit's concern.
func (op Op) Validate() error {
	if op.IsCX() {
		if op.Control == nil {
			return fmt.Errorf("%q without control: %w", op.Gate, ErrMalformedOp)
		}
		if *op.Control < 0 || op.Target < 0 {
			return fmt.Errorf("%s: negative qubit: %w", op, ErrMalformedOp)
		}

		return nil
	}
	if _, err := gates.Parse(op.Gate); err != nil {
		return fmt.Errorf("%q: %w", op.Gate, ErrUnknownOp)
	}
	if op.Control != nil {
		return fmt.Errorf("%q takes no control: %w", op.Gate, ErrMalformedOp)
	}
	if op.Target < 0 {
		return fmt.Errorf("%s: negative qubit: %w", op, ErrMalformedOp)
	}

	return nil
}

// String renders "H q0" or "CX q0,q1" using the canonical symbol, so
// aliases such as "hadamard" print as "H". Unknown symbols print upper-cased.
func (op Op) String() string {
	if op.IsCX() && op.Control != nil {
		return fmt.Sprintf("%s q%d,q%d", CX, *op.Control, op.Target)
	}
	sym := strings.ToUpper(op.Gate)
	if name, err := gates.Parse(op.Gate); err == nil {
		sym = name.String()
	}

	return fmt.Sprintf("%s q%d", sym, op.Target)
}

// Apply executes op on c.
func (op Op) Apply(c *circuit.Circuit) error {
	if err := op.Validate(); err != nil {
		return err
	}
	if op.IsCX() {
		return c.ApplyCX(*op.Control, op.Target)
	}
	name, err := gates.Parse(op.Gate)
	if err != nil {
		return err
	}

	return c.ApplyGate(name, op.Target)
}

// ParseOp parses "<gate>:<target>" or "cx:<control>:<target>" into a
// normalised Op (catalogue symbol or "CX").
//
// Errors:
//   - ErrUnknownOp for an unrecognised symbol.
//   - ErrMalformedOp for a wrong operand count or a non-integer operand.
func ParseOp(text string) (Op, error) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	sym := parts[0]

	if isCX(sym) {
		if len(parts) != 3 {
			return Op{}, fmt.Errorf("ParseOp(%q): want cx:<control>:<target>: %w", text, ErrMalformedOp)
		}
		ctl, err := parseQubit(parts[1])
		if err != nil {
			return Op{}, fmt.Errorf("ParseOp(%q): %w", text, err)
		}
		tgt, err := parseQubit(parts[2])
		if err != nil {
			return Op{}, fmt.Errorf("ParseOp(%q): %w", text, err)
		}

		return CXOp(ctl, tgt), nil
	}

	name, err := gates.Parse(sym)
	if err != nil {
		return Op{}, fmt.Errorf("ParseOp(%q): %w", text, ErrUnknownOp)
	}
	if len(parts) != 2 {
		return Op{}, fmt.Errorf("ParseOp(%q): want <gate>:<target>: %w", text, ErrMalformedOp)
	}
	tgt, err := parseQubit(parts[1])
	if err != nil {
		return Op{}, fmt.Errorf("ParseOp(%q): %w", text, err)
	}

	return GateOp(name, tgt), nil
}

func parseQubit(s string) (int, error) {
	q, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || q < 0 {
		return 0, fmt.Errorf("qubit %q: %w", s, ErrMalformedOp)
	}

	return q, nil
}
