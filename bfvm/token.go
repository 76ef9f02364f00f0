package bfvm

import (
	"fmt"
	"iter"
	"unicode/utf8"
)

type Instruction byte

const (
	MoveRight Instruction = '>'
	MoveLeft  Instruction = '<'
	Increment Instruction = '+'
	Decrement Instruction = '-'
	Output    Instruction = '.'
	Input     Instruction = ','
	LoopStart Instruction = '['
	LoopEnd   Instruction = ']'
)

func (i Instruction) Valid() bool {
	switch i {
	case MoveRight, MoveLeft, Increment, Decrement,
		Output, Input, LoopStart, LoopEnd:
		return true
	}
	return false
}

func (i Instruction) String() string {
	return string(rune(i))
}

type Token struct {
	Offset      int
	Instruction Instruction
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%s", t.Offset, t.Instruction)
}

// Tokens yields the instructions of source in order. Offsets count characters,
// not bytes. A '#' starts a comment that runs up to and including the next
// newline.
func Tokens(source string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		comment := false
		offset := -1
		for _, r := range source {
			offset++
			if comment {
				if r == '\n' {
					comment = false
				}
				continue
			}
			if r == '#' {
				comment = true
				continue
			}
			if r >= utf8.RuneSelf {
				continue
			}
			if inst := Instruction(r); inst.Valid() {
				if !yield(Token{
					Offset:      offset,
					Instruction: inst,
				}) {
					return
				}
			}
		}
	}
}

func Tokenize(source string) ([]Token, error) {
	if !utf8.ValidString(source) {
		return nil, fmt.Errorf("%w: source is not valid utf-8", ErrInvalidInput)
	}
	var tokens []Token
	for token := range Tokens(source) {
		tokens = append(tokens, token)
	}
	return tokens, nil
}
