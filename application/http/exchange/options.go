package exchange

import "time"

type Options struct {
	// ReadTimeout bounds reading one whole message, body included.
	// Zero means no deadline.
	ReadTimeout time.Duration

	// WriteTimeout bounds writing one whole message.
	// Zero means no deadline.
	WriteTimeout time.Duration

	// MaxHeaderLen limits the bytes of the start line and header block.
	// Zero means no limit.
	//
	// Reference: https://datatracker.ietf.org/doc/html/rfc9112#section-3-5
	MaxHeaderLen uint

	// MaxContentLen limits the Content-Length a message may declare.
	// Zero means no limit.
	MaxContentLen uint
}

var DefaultOptions = Options{
	ReadTimeout:   30 * time.Second,
	WriteTimeout:  30 * time.Second,
	MaxHeaderLen:  8 << 10,
	MaxContentLen: 10 << 20,
}
