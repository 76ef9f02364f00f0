package bfvm

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnbalancedBrackets = errors.New("unbalanced brackets")
	ErrPointerOutOfRange  = errors.New("pointer out of range")
	ErrInvalidIOValue     = errors.New("invalid io value")
	ErrInvalidConfig      = errors.New("invalid config")
)

// PosError attaches the failing token to an error.
type PosError struct {
	Err         error
	Index       int
	Offset      int
	Instruction Instruction
}

func (p PosError) Error() string {
	return fmt.Sprintf("%s at token %d (offset %d, %q)",
		p.Err.Error(), p.Index, p.Offset, rune(p.Instruction))
}

func (p PosError) Unwrap() error {
	return p.Err
}

func withPos(err error, index int, token Token) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(PosError); ok {
		return err
	}
	return PosError{
		Err:         err,
		Index:       index,
		Offset:      token.Offset,
		Instruction: token.Instruction,
	}
}
