package ports

import (
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

var ErrInterrupted = errors.New("interrupted")

const (
	keyInterrupt = 0x03
	keyEOF       = 0x04
)

// Terminal reads single keypresses. When the file is a terminal each read
// switches it to raw mode, so there is no echo and no line buffering.
type Terminal struct {
	file   *os.File
	reader *Reader
}

func NewTerminal(file *os.File) *Terminal {
	return &Terminal{
		file:   file,
		reader: NewReader(file),
	}
}

func (t *Terminal) IsTerminal() bool {
	return term.IsTerminal(int(t.file.Fd()))
}

func (t *Terminal) ReadByte() (byte, error) {
	fd := int(t.file.Fd())
	if !term.IsTerminal(fd) {
		return t.reader.ReadByte()
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return 0, err
	}
	defer term.Restore(fd, state)

	b, err := t.reader.ReadByte()
	if err != nil {
		return 0, err
	}
	switch b {
	case keyInterrupt:
		return 0, ErrInterrupted
	case keyEOF:
		return 0, io.EOF
	}
	return b, nil
}
