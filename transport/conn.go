package transport

import (
	"time"

	"github.com/pkg/errors"
)

var (
	ErrConnClosed       = errors.New("connection is closed")
	ErrDeadLineExceeded = errors.New("deadline exceeded")
)

// Conn is a byte stream to a peer.
//
// Read returns io.EOF once the peer closed its side and every byte it sent was read.
// Reads and writes fail with [ErrDeadLineExceeded] once the matching deadline passed,
// and with [ErrConnClosed] after Close.
type Conn interface {
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
	Close() error

	LocalAddr() Addr
	RemoteAddr() Addr

	// A zero time clears the deadline.
	SetReadDeadLine(t time.Time)
	SetWriteDeadLine(t time.Time)
}

// BufferedConn is a [Conn] whose writes complete as long as the peer's
// receive buffer has room.
type BufferedConn interface {
	Conn

	ReadBufSize() uint
	WriteBufSize() uint
}

type Addr interface {
	String() string
}
