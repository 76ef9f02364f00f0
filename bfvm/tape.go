package bfvm

import (
	"fmt"
	"slices"
)

const DefaultTapeLength = 30000

type TapePolicy uint8

const (
	// FixedTape has a length fixed at start; moving off either end faults.
	FixedTape TapePolicy = iota
	// GrowableTape starts with one cell and grows rightwards on demand.
	GrowableTape
)

func (p TapePolicy) String() string {
	switch p {
	case FixedTape:
		return "fixed"
	case GrowableTape:
		return "growable"
	}
	return fmt.Sprintf("TapePolicy(%d)", p)
}

func ParseTapePolicy(str string) (TapePolicy, error) {
	switch str {
	case "", "fixed":
		return FixedTape, nil
	case "growable":
		return GrowableTape, nil
	}
	return 0, fmt.Errorf("%w: unknown tape policy %q", ErrInvalidConfig, str)
}

type Tape struct {
	cells  []byte
	policy TapePolicy
}

func newTape(policy TapePolicy, length int) *Tape {
	if policy == GrowableTape {
		length = 1
	}
	return &Tape{
		cells:  make([]byte, length),
		policy: policy,
	}
}

func (t *Tape) Len() int {
	return len(t.cells)
}

func (t *Tape) Get(i int) byte {
	return t.cells[i]
}

func (t *Tape) Set(i int, v byte) {
	t.cells[i] = v
}

func (t *Tape) Cells() []byte {
	return slices.Clone(t.cells)
}

// right returns the pointer after moving one cell right, growing the tape if
// the policy allows it.
func (t *Tape) right(ptr int) (int, error) {
	next := ptr + 1
	if next < len(t.cells) {
		return next, nil
	}
	if t.policy == GrowableTape {
		t.cells = append(t.cells, 0)
		return next, nil
	}
	return ptr, fmt.Errorf("%w: %d >= %d", ErrPointerOutOfRange, next, len(t.cells))
}

func (t *Tape) left(ptr int) (int, error) {
	if ptr == 0 {
		return ptr, fmt.Errorf("%w: -1 < 0", ErrPointerOutOfRange)
	}
	return ptr - 1, nil
}
