// Package exchange reads and writes single HTTP messages over a [transport.Conn].
//
// It is the caller side of package http: it applies deadlines and size limits,
// picks the body length from Content-Length and logs what happened.
// Connection lifecycle and concurrency stay with whoever owns the Conn.
package exchange

import (
	"io"
	"log/slog"
	"math"

	"http-message/application/http"
	"http-message/application/http/status"
	iolib "http-message/lib/io"
	"http-message/transport"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
)

var (
	ErrHeaderTooLarge  = errors.New("header block exceeds limit")
	ErrContentTooLarge = errors.New("content length exceeds limit")
)

// Conn is not safe for concurrent use.
//
// A read that ran out of time can be retried with a fresh deadline. Bytes of an
// incomplete line are kept, but lines already consumed are not, so a retry only makes
// sense when the timeout hit before the start line was complete.
// After any other read failure the Conn must be closed.
type Conn struct {
	con transport.Conn

	limit *iolib.LimitedReader
	r     *iolib.LineReader

	clock  clock.Clock
	logger *slog.Logger

	opts Options
}

func NewConn(con transport.Conn, clock clock.Clock, logger *slog.Logger, opts Options) *Conn {
	limit := iolib.LimitReader(con, math.MaxUint)

	return &Conn{
		con:    con,
		limit:  limit,
		r:      iolib.NewLineReader(limit),
		clock:  clock,
		logger: logger.With("remote", con.RemoteAddr().String()),
		opts:   opts,
	}
}

// ReadRequest reads a request. When it carries Content-Length, the body is read too.
func (c *Conn) ReadRequest() (*http.Request, error) {
	c.beginRead()

	req, err := http.ParseRequest(c.r)
	if err != nil {
		return nil, c.readFailed(err, "reading request")
	}

	body, err := c.readBody(req)
	if err != nil {
		return nil, c.readFailed(err, "reading request body")
	}
	if body != nil {
		req = req.WithBody(body)
	}

	c.logger.Debug("request read", "request", req)

	return req, nil
}

// ReadResponse reads a response. When it carries Content-Length, the body is read too.
func (c *Conn) ReadResponse() (*http.Response, error) {
	c.beginRead()

	res, err := http.ParseResponse(c.r)
	if err != nil {
		return nil, c.readFailed(err, "reading response")
	}

	body, err := c.readBody(res)
	if err != nil {
		return nil, c.readFailed(err, "reading response body")
	}
	if body != nil {
		res = res.WithBody(body)
	}

	c.logger.Debug("response read", "response", res)

	return res, nil
}

func (c *Conn) WriteRequest(req *http.Request) error {
	if err := c.write(req); err != nil {
		return errors.Wrap(err, "writing request")
	}

	c.logger.Debug("request written", "request", req)
	return nil
}

func (c *Conn) WriteResponse(res *http.Response) error {
	if err := c.write(res); err != nil {
		return errors.Wrap(err, "writing response")
	}

	c.logger.Debug("response written", "response", res)
	return nil
}

// WriteError answers a request that could not be read with a plain text response.
func (c *Conn) WriteError(cause error) error {
	s := errorStatus(cause)
	content := s.Phrase() + "\n"

	msg := http.NewResponseBuilder(s).
		Field("Content-Type", "text/plain; charset=utf-8").
		Fields(http.ContentLength(len(content))).
		Field("Connection", "close").
		BodyString(content).
		Bytes()

	if err := c.write(rawMessage(msg)); err != nil {
		return errors.Wrap(err, "writing error response")
	}

	c.logger.Info("error response written", "status", s.Code(), "cause", cause)
	return nil
}

func (c *Conn) Close() error { return c.con.Close() }

func (c *Conn) beginRead() {
	if errors.Is(c.r.Err(), transport.ErrDeadLineExceeded) {
		c.r.ClearErr()
	}

	if c.opts.MaxHeaderLen > 0 {
		c.limit.Reset(c.opts.MaxHeaderLen)
	} else {
		c.limit.Reset(math.MaxUint)
	}

	if c.opts.ReadTimeout > 0 {
		c.con.SetReadDeadLine(c.clock.Now().Add(c.opts.ReadTimeout))
	} else {
		c.con.SetReadDeadLine(zeroTime)
	}
}

type fieldGetter interface {
	Field(name string) (http.Field, bool)
}

// readBody reads a body only if Content-Length says how long it is.
func (c *Conn) readBody(m fieldGetter) (*http.Body, error) {
	f, ok := m.Field("Content-Length")
	if !ok {
		return nil, nil
	}

	n, err := f.UintValue()
	if err != nil {
		return nil, err
	}

	if c.opts.MaxContentLen > 0 && n > uint64(c.opts.MaxContentLen) {
		return nil, ErrContentTooLarge
	}

	c.limit.Reset(math.MaxUint)

	return http.ParseBody(c.r, n)
}

func (c *Conn) readFailed(err error, msg string) error {
	if c.limit.Exceeded() {
		err = ErrHeaderTooLarge
	}

	switch {
	case errors.Is(err, http.ErrIO):
		c.logger.Error("connection failed while reading", "error", err, "cause", c.r.Err())
	case errors.Is(err, http.ErrUnexpectedEOF):
		c.logger.Debug("stream ended before message was complete")
	default:
		c.logger.Warn("malformed message", "error", err)
	}

	return errors.Wrap(err, msg)
}

func (c *Conn) write(w io.WriterTo) error {
	if c.opts.WriteTimeout > 0 {
		c.con.SetWriteDeadLine(c.clock.Now().Add(c.opts.WriteTimeout))
	} else {
		c.con.SetWriteDeadLine(zeroTime)
	}

	if _, err := w.WriteTo(c.con); err != nil {
		c.logger.Error("connection failed while writing", "error", err)
		return err
	}

	return nil
}

func errorStatus(err error) status.Status {
	switch {
	case errors.Is(err, ErrHeaderTooLarge):
		return status.RequestHeaderFieldsTooLarge
	case errors.Is(err, ErrContentTooLarge):
		return status.PayloadTooLarge
	default:
		return http.StatusOf(err)
	}
}
