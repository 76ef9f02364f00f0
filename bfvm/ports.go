package bfvm

import (
	"errors"
	"fmt"
	"io"
)

// ByteReader blocks until a byte is available. io.EOF marks the end of input.
type ByteReader interface {
	ReadByte() (byte, error)
}

type ByteWriter interface {
	WriteByte(c byte) error
}

var (
	_ ByteReader = io.ByteReader(nil)
	_ ByteWriter = io.ByteWriter(nil)
)

// ReadFunc adapts a function returning an integer. Values outside [0, 255] are
// reported as ErrInvalidIOValue.
type ReadFunc func() (int, error)

var _ ByteReader = ReadFunc(nil)

func (r ReadFunc) ReadByte() (byte, error) {
	v, err := r()
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 255 {
		return 0, fmt.Errorf("%w: %d not in [0, 255]", ErrInvalidIOValue, v)
	}
	return byte(v), nil
}

type WriteFunc func(c byte) error

var _ ByteWriter = WriteFunc(nil)

func (w WriteFunc) WriteByte(c byte) error {
	return w(c)
}

// EOFMode selects what ',' does when the read port reports io.EOF.
type EOFMode uint8

const (
	EOFFail EOFMode = iota
	EOFZero
	EOFKeep
)

func (m EOFMode) String() string {
	switch m {
	case EOFFail:
		return "fail"
	case EOFZero:
		return "zero"
	case EOFKeep:
		return "keep"
	}
	return fmt.Sprintf("EOFMode(%d)", m)
}

func ParseEOFMode(str string) (EOFMode, error) {
	switch str {
	case "", "fail":
		return EOFFail, nil
	case "zero":
		return EOFZero, nil
	case "keep":
		return EOFKeep, nil
	}
	return 0, fmt.Errorf("%w: unknown eof mode %q", ErrInvalidConfig, str)
}

// input reads one value for the current cell. The second return is false when
// the cell should keep its value.
func (e *Engine) input() (byte, bool, error) {
	b, err := e.reader.ReadByte()
	if err == nil {
		return b, true, nil
	}
	if errors.Is(err, io.EOF) {
		switch e.config.eof {
		case EOFZero:
			return 0, true, nil
		case EOFKeep:
			return 0, false, nil
		}
	}
	return 0, false, fmt.Errorf("read: %w", err)
}
