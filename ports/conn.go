package ports

import (
	"bufio"
	"context"
	"net"

	"github.com/reusee/taibf/nets"
)

// Conn serves as both read and write port over a network connection.
type Conn struct {
	conn   net.Conn
	reader *bufio.Reader
}

func NewConn(conn net.Conn) *Conn {
	return &Conn{
		conn:   conn,
		reader: bufio.NewReader(conn),
	}
}

func Dial(ctx context.Context, dialer nets.Dialer, addr string) (*Conn, error) {
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	return NewConn(conn), nil
}

func (c *Conn) ReadByte() (byte, error) {
	return c.reader.ReadByte()
}

func (c *Conn) WriteByte(b byte) error {
	_, err := c.conn.Write([]byte{b})
	return err
}

func (c *Conn) Close() error {
	return c.conn.Close()
}
