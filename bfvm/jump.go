package bfvm

import "fmt"

// JumpTable maps each bracket token index to the index of its partner.
type JumpTable map[int]int

func (j JumpTable) Partner(index int) (int, bool) {
	partner, ok := j[index]
	return partner, ok
}

func MatchBrackets(tokens []Token) (JumpTable, error) {
	table := make(JumpTable)
	var stack []int
	for i, token := range tokens {
		switch token.Instruction {

		case LoopStart:
			stack = append(stack, i)

		case LoopEnd:
			if len(stack) == 0 {
				return nil, withPos(
					fmt.Errorf("%w: unmatched '%s'", ErrUnbalancedBrackets, LoopEnd),
					i, token,
				)
			}
			start := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			table[start] = i
			table[i] = start

		}
	}
	if len(stack) > 0 {
		i := stack[len(stack)-1]
		return nil, withPos(
			fmt.Errorf("%w: unmatched '%s'", ErrUnbalancedBrackets, LoopStart),
			i, tokens[i],
		)
	}
	return table, nil
}
