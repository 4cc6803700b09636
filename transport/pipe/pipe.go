// Package pipe provides in-memory [transport.Conn] pairs.
package pipe

import (
	"bytes"
	"io"
	"sync"
	"time"

	"http-message/transport"

	"github.com/benbjohnson/clock"
)

type Addr struct {
	Name string
}

func (a Addr) String() string { return a.Name }

// See:
// - https://github.com/golang/go/issues/24205
// - https://github.com/golang/go/issues/34502
type conn struct {
	addr Addr

	buf *bytes.Buffer // protected by in.

	in, out  sync.Cond
	serialMu sync.Mutex // For serialized write operations.

	_closed  bool
	closedMu sync.Mutex

	rdeadLine, wdeadLine *deadline

	// the opposite end.
	counterpart *conn
}

var _ transport.BufferedConn = (*conn)(nil)

// Pipe creates a pair of connected conns. Writes are asynchronous as long as the
// receiving end has room in its buffer of bufSize bytes, so bufSize MUST be more than 0.
//
// Closing one end lets the other one drain what was already sent, then read io.EOF.
func Pipe(name1, name2 string, clock clock.Clock, bufSize uint) (c1, c2 transport.BufferedConn) {
	if bufSize == 0 {
		panic("buffer size cannot be 0")
	}

	p1, p2 := newConn(name1, clock, bufSize), newConn(name2, clock, bufSize)
	p1.counterpart, p2.counterpart = p2, p1
	return p1, p2
}

func newConn(name string, clock clock.Clock, bufSize uint) *conn {
	c := &conn{
		buf:       bytes.NewBuffer(make([]byte, 0, bufSize)),
		rdeadLine: newDeadLine(clock),
		wdeadLine: newDeadLine(clock),
		addr:      Addr{Name: name},
	}
	c.in.L, c.out.L = &sync.Mutex{}, &sync.Mutex{}
	return c
}

func (c *conn) ReadBufSize() uint          { return uint(c.buf.Cap()) }
func (c *conn) WriteBufSize() uint         { return uint(c.counterpart.buf.Cap()) }
func (c *conn) LocalAddr() transport.Addr  { return c.addr }
func (c *conn) RemoteAddr() transport.Addr { return c.counterpart.addr }

func (c *conn) Close() error {
	c.closedMu.Lock()
	c._closed = true
	c.closedMu.Unlock()

	c.wakeReader()
	c.wakeWriter()
	c.counterpart.wakeReader()
	c.counterpart.wakeWriter()
	return nil
}

func (c *conn) Read(b []byte) (n int, err error) {
	defer func() {
		if err != nil {
			return
		}
		// If buffer was full and counterpart was waiting,
		// we must notify them that it is now available to write.
		c.counterpart.out.L.Lock()
		c.counterpart.notifyWrite()
		c.counterpart.out.L.Unlock()
	}()

	c.in.L.Lock()
	defer c.in.L.Unlock()

	for {
		// We must check for deadline first.
		if c.rdeadLine.exceeded() {
			return 0, transport.ErrDeadLineExceeded
		}

		if c.closed() {
			return 0, transport.ErrConnClosed
		}

		if c.buf.Len() > 0 {
			return c.buf.Read(b)
		}

		// Everything the peer sent was consumed.
		if c.counterpart.closed() {
			return 0, io.EOF
		}

		// Wait until one of conditions is satisfied.
		c.in.Wait()
	}
}

func (c *conn) Write(b []byte) (n int, err error) {
	// Serialize write operations to prevent interleaving write.
	c.serialMu.Lock()
	defer c.serialMu.Unlock()

	c.out.L.Lock()
	defer c.out.L.Unlock()

	// Ensure all the bytes are sent.
	nn := 0
	for once := true; once || len(b) > 0; once = false {
		if c.wdeadLine.exceeded() {
			return nn, transport.ErrDeadLineExceeded
		}

		if c.closed() || c.counterpart.closed() {
			return nn, transport.ErrConnClosed
		}

		// It might race with counterpart's read. So acquire lock.
		c.counterpart.in.L.Lock()

		// We don't want counterpart's buffer to grow.
		remain := c.counterpart.buf.Cap() - c.counterpart.buf.Len()

		if canWrite := min(len(b), remain); canWrite > 0 {
			// If counterpart's buffer was empty, and its read was waiting,
			// We signal them to start reading. Since we hold its read lock, read will start after write.
			c.counterpart.notifyRead()

			c.counterpart.buf.Write(b[:canWrite])
			b = b[canWrite:]
			nn += canWrite

			c.counterpart.in.L.Unlock()
			continue
		}

		c.counterpart.in.L.Unlock()
		c.out.Wait()
	}

	return nn, nil
}

func (c *conn) closed() bool {
	c.closedMu.Lock()
	defer c.closedMu.Unlock()

	return c._closed
}

// notifyRead's caller already holds lock. So no need to hold it in here.
func (c *conn) notifyRead()  { c.in.Signal() }
func (c *conn) notifyWrite() { c.out.Signal() }

// wakeReader and wakeWriter take the lock, so a waiter between its checks
// and Wait can not miss the wake up.
func (c *conn) wakeReader() {
	c.in.L.Lock()
	defer c.in.L.Unlock()
	c.in.Broadcast()
}

func (c *conn) wakeWriter() {
	c.out.L.Lock()
	defer c.out.L.Unlock()
	c.out.Broadcast()
}

func (c *conn) SetReadDeadLine(t time.Time)  { c.rdeadLine.set(t, c.wakeReader) }
func (c *conn) SetWriteDeadLine(t time.Time) { c.wdeadLine.set(t, c.wakeWriter) }

func newDeadLine(clock clock.Clock) *deadline { return &deadline{clock: clock} }

type deadline struct {
	clock clock.Clock
	m     sync.Mutex

	timer *clock.Timer
	t     time.Time
}

func (d *deadline) set(t time.Time, onExceed func()) {
	d.m.Lock()
	defer d.m.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	d.t = t

	// onExceed runs without holding m: waiters check the deadline under their own lock.
	if !t.IsZero() {
		d.timer = d.clock.AfterFunc(d.clock.Until(t), onExceed)
	}
}

func (d *deadline) exceeded() bool {
	d.m.Lock()
	defer d.m.Unlock()

	if d.t.IsZero() {
		return false
	}

	return d.clock.Until(d.t) <= 0
}
