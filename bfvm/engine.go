package bfvm

import (
	"fmt"
	"maps"
	"slices"
)

type State uint8

const (
	Idle State = iota
	Running
	Halted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Halted:
		return "halted"
	}
	return fmt.Sprintf("State(%d)", s)
}

// Step describes the instruction just executed. Cursor is the instruction
// cursor after the instruction took effect, so it points at the partner
// bracket after a jump.
type Step struct {
	Cursor      int
	Pointer     int
	Offset      int
	Instruction Instruction
}

type Engine struct {
	tokens []Token
	jumps  JumpTable
	config *config
	reader ByteReader
	writer ByteWriter

	state   State
	tape    *Tape
	pointer int
	cursor  int
}

func New(source string, options ...Option) (*Engine, error) {
	config, err := newConfig(options)
	if err != nil {
		return nil, err
	}
	tokens, err := Tokenize(source)
	if err != nil {
		return nil, err
	}
	jumps, err := MatchBrackets(tokens)
	if err != nil {
		return nil, err
	}
	return &Engine{
		tokens: tokens,
		jumps:  jumps,
		config: config,
		reader: config.reader,
		writer: config.writer,
		cursor: -1,
	}, nil
}

// Start resets the tape and cursors. It does nothing while running.
func (e *Engine) Start() {
	if e.state == Running {
		return
	}
	e.tape = newTape(e.config.policy, e.config.tapeLength)
	e.pointer = 0
	e.cursor = -1
	e.state = Running
	e.config.logger.Debug("engine started",
		"tokens", len(e.tokens),
		"policy", e.config.policy,
		"tape", e.tape.Len(),
	)
}

// Stop discards the tape. A new Start is required to execute again.
func (e *Engine) Stop() {
	if e.state == Idle {
		return
	}
	e.state = Idle
	e.tape = nil
	e.pointer = 0
	e.cursor = -1
	e.config.logger.Debug("engine stopped")
}

// Step executes one instruction. ok is false once the program has ended or
// the engine is not running.
func (e *Engine) Step() (step Step, ok bool, err error) {
	if e.state != Running {
		return
	}

	e.cursor++
	if e.cursor >= len(e.tokens) {
		e.cursor = len(e.tokens)
		e.state = Halted
		e.config.logger.Debug("engine halted", "pointer", e.pointer)
		return
	}

	index := e.cursor
	token := e.tokens[index]
	if err := e.exec(index, token); err != nil {
		e.state = Halted
		err = withPos(err, index, token)
		e.config.logger.Debug("engine fault", "error", err)
		return step, false, err
	}

	return Step{
		Cursor:      e.cursor,
		Pointer:     e.pointer,
		Offset:      token.Offset,
		Instruction: token.Instruction,
	}, true, nil
}

func (e *Engine) exec(index int, token Token) (err error) {
	switch token.Instruction {

	case MoveRight:
		e.pointer, err = e.tape.right(e.pointer)

	case MoveLeft:
		e.pointer, err = e.tape.left(e.pointer)

	case Increment:
		e.tape.Set(e.pointer, e.tape.Get(e.pointer)+1)

	case Decrement:
		e.tape.Set(e.pointer, e.tape.Get(e.pointer)-1)

	case Input:
		v, set, err := e.input()
		if err != nil {
			return err
		}
		if set {
			e.tape.Set(e.pointer, v)
		}

	case Output:
		if err := e.writer.WriteByte(e.tape.Get(e.pointer)); err != nil {
			return fmt.Errorf("write: %w", err)
		}

	case LoopStart:
		if e.tape.Get(e.pointer) == 0 {
			e.cursor = e.jumps[index]
		}

	case LoopEnd:
		if e.tape.Get(e.pointer) != 0 {
			e.cursor = e.jumps[index]
		}

	}
	return
}

func (e *Engine) State() State {
	return e.state
}

func (e *Engine) Pointer() int {
	return e.pointer
}

// Cursor returns the index of the last executed token, -1 before the first
// step and the token count after the program ended.
func (e *Engine) Cursor() int {
	return e.cursor
}

// Cells returns a copy of the tape, or nil when the engine holds none.
func (e *Engine) Cells() []byte {
	if e.tape == nil {
		return nil
	}
	return e.tape.Cells()
}

func (e *Engine) Tokens() []Token {
	return slices.Clone(e.tokens)
}

func (e *Engine) Jumps() JumpTable {
	return maps.Clone(e.jumps)
}

func (e *Engine) Policy() TapePolicy {
	return e.config.policy
}
