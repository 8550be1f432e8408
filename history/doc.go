// Package history records the sequence of operations applied to a circuit
// and replays it.
//
// A Log is the front end's view of a circuit: the CLI fills it from --op
// flags or a YAML Program and prints it alongside the final state. The core
// circuit keeps no history of its own.
//
// Text enters only through ParseOp and the YAML decoder, and every gate
// symbol is resolved by gates.Parse against a fixed alias table.
//
// Op text grammar (case-insensitive):
//
//	<gate>:<target>          H:0, x:2, pauli-z:1
//	cx:<control>:<target>    CX:0:1, cnot:2:0
package history
