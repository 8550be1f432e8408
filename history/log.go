// SPDX-License-Identifier: MIT

package history

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvqsim/circuit"
	"github.com/katalvlaran/lvqsim/gates"
)

// Log is an ordered record of operations. The zero value is empty and ready.
type Log struct {
	ops []Op
}

// NewLog returns a log holding a copy of ops after validating each one.
func NewLog(ops ...Op) (*Log, error) {
	l := &Log{}
	for i, op := range ops {
		if err := l.Append(op); err != nil {
			return nil, fmt.Errorf("history: op %d: %w", i, err)
		}
	}

	return l, nil
}

// Append validates op and records it.
func (l *Log) Append(op Op) error {
	if err := op.Validate(); err != nil {
		return err
	}
	if op.Control != nil {
		ctl := *op.Control
		op.Control = &ctl
	}
	l.ops = append(l.ops, op)

	return nil
}

// Gate records a catalogue gate on target.
func (l *Log) Gate(name gates.Name, target int) {
	l.ops = append(l.ops, GateOp(name, target))
}

// CX records CX(control, target).
func (l *Log) CX(control, target int) {
	l.ops = append(l.ops, CXOp(control, target))
}

// Ops returns a copy of the recorded operations.
func (l *Log) Ops() []Op {
	out := make([]Op, len(l.ops))
	copy(out, l.ops)

	return out
}

// Len returns the number of recorded operations.
func (l *Log) Len() int { return len(l.ops) }

// String lists one operation per line.
func (l *Log) String() string {
	var b strings.Builder
	for i, op := range l.ops {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(op.String())
	}

	return b.String()
}

// Replay applies every recorded operation to c in order and stops at the
// first failure. The returned error names the failing step; operations
// before it stay applied.
func Replay(c *circuit.Circuit, l *Log) error {
	for i, op := range l.ops {
		if err := op.Apply(c); err != nil {
			return fmt.Errorf("history: step %d (%s): %w", i, op, err)
		}
	}

	return nil
}
