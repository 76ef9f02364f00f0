package bfvm

import (
	"errors"
	"strings"
	"testing"
)

func TestMatchBracketsSymmetric(t *testing.T) {
	for _, source := range []string{
		"",
		"[]",
		"[[]]",
		"[][]",
		"+[>[-]<[[>]+]]-[.]",
		strings.Repeat("[", 100) + strings.Repeat("]", 100),
	} {
		tokens, err := Tokenize(source)
		if err != nil {
			t.Fatal(err)
		}
		table, err := MatchBrackets(tokens)
		if err != nil {
			t.Fatalf("%q: %v", source, err)
		}
		brackets := 0
		for i, token := range tokens {
			partner, ok := table.Partner(i)
			switch token.Instruction {
			case LoopStart, LoopEnd:
				brackets++
				if !ok {
					t.Fatalf("%q: no partner for %d", source, i)
				}
				if table[partner] != i {
					t.Fatalf("%q: not symmetric at %d", source, i)
				}
				if token.Instruction == LoopStart && tokens[partner].Instruction != LoopEnd {
					t.Fatalf("%q: bad partner for %d", source, i)
				}
			default:
				if ok {
					t.Fatalf("%q: unexpected partner for %d", source, i)
				}
			}
		}
		if len(table) != brackets {
			t.Fatalf("%q: got %d entries", source, len(table))
		}
	}
}

func TestMatchBracketsNested(t *testing.T) {
	tokens, _ := Tokenize("[[][]]")
	table, err := MatchBrackets(tokens)
	if err != nil {
		t.Fatal(err)
	}
	expected := JumpTable{
		0: 5, 5: 0,
		1: 2, 2: 1,
		3: 4, 4: 3,
	}
	for k, v := range expected {
		if table[k] != v {
			t.Fatalf("got %v", table)
		}
	}
}

func TestMatchBracketsUnbalanced(t *testing.T) {
	tests := []struct {
		source string
		index  int
		offset int
		inst   Instruction
	}{
		{"[", 0, 0, LoopStart},
		{"]", 0, 0, LoopEnd},
		{"+[[-]", 1, 1, LoopStart},
		{"[]  ]", 2, 4, LoopEnd},
		{"][", 0, 0, LoopEnd},
	}
	for _, test := range tests {
		tokens, _ := Tokenize(test.source)
		_, err := MatchBrackets(tokens)
		if !errors.Is(err, ErrUnbalancedBrackets) {
			t.Fatalf("%q: got %v", test.source, err)
		}
		var posErr PosError
		if !errors.As(err, &posErr) {
			t.Fatalf("%q: got %T", test.source, err)
		}
		if posErr.Index != test.index || posErr.Offset != test.offset || posErr.Instruction != test.inst {
			t.Fatalf("%q: got %+v", test.source, posErr)
		}
		if !strings.Contains(err.Error(), "unmatched '"+test.inst.String()+"'") {
			t.Fatalf("%q: got %v", test.source, err)
		}
	}
}
