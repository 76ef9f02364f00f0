package ports

import (
	"io"
	"os"
)

type Reader struct {
	r   io.Reader
	buf [1]byte
}

func NewReader(r io.Reader) *Reader {
	return &Reader{
		r: r,
	}
}

func (r *Reader) ReadByte() (byte, error) {
	if br, ok := r.r.(io.ByteReader); ok {
		return br.ReadByte()
	}
	if _, err := io.ReadFull(r.r, r.buf[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		return 0, err
	}
	return r.buf[0], nil
}

// Writer writes one byte per call and flushes sinks that buffer.
type Writer struct {
	w   io.Writer
	buf [1]byte
}

type flusher interface {
	Flush() error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w: w,
	}
}

func (w *Writer) WriteByte(c byte) error {
	w.buf[0] = c
	if _, err := w.w.Write(w.buf[:]); err != nil {
		return err
	}
	if f, ok := w.w.(flusher); ok {
		return f.Flush()
	}
	return nil
}

func Stdin() *Terminal {
	return NewTerminal(os.Stdin)
}

func Stdout() *Writer {
	return NewWriter(os.Stdout)
}
