// SPDX-License-Identifier: MIT

package gates

import "errors"

// ErrUnknownGate is returned when a Name is outside the catalogue or a text
// token does not match any known alias.
var ErrUnknownGate = errors.New("gates: unknown gate")
