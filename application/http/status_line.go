package http

import (
	"bytes"
	"strconv"

	"http-message/application/http/status"
)

// StatusLine is the start line of a response.
//
//	status-line = HTTP-version SP status-code SP [ reason-phrase ]
//
// Reference: https://datatracker.ietf.org/doc/html/rfc9112#section-4
type StatusLine struct {
	version Version
	status  status.Status

	// Reason phrase as received. It is never validated nor written back.
	wireReason string
}

// NewStatusLine creates an HTTP/1.1 status line.
func NewStatusLine(s status.Status) StatusLine {
	return StatusLine{version: HTTP11, status: s, wireReason: s.Phrase()}
}

// ParseStatusLine parses a status line.
// The code must be a registered three digit code. The reason phrase may hold spaces
// and is accepted whatever it says.
func ParseStatusLine(line []byte) (StatusLine, error) {
	parts := bytes.SplitN(line, []byte{SP}, 3)
	if len(parts) < 3 {
		return StatusLine{}, ErrInvalidResponse
	}

	ver, err := ParseVersion(parts[0])
	if err != nil {
		return StatusLine{}, err
	}

	s, err := parseStatusCode(parts[1])
	if err != nil {
		return StatusLine{}, err
	}

	return StatusLine{version: ver, status: s, wireReason: string(parts[2])}, nil
}

func parseStatusCode(b []byte) (status.Status, error) {
	// status-code = 3DIGIT
	if len(b) != 3 {
		return status.Status{}, ErrInvalidStatus
	}

	code, err := strconv.ParseUint(string(b), 10, 16)
	if err != nil {
		return status.Status{}, ErrInvalidStatus
	}

	s, ok := status.FromCode(uint16(code))
	if !ok {
		return status.Status{}, ErrInvalidStatus
	}

	return s, nil
}

func (l StatusLine) Version() Version      { return l.version }
func (l StatusLine) Status() status.Status { return l.status }

// WireReason returns the reason phrase that was received.
// Use Status().Phrase() for the canonical one.
func (l StatusLine) WireReason() string { return l.wireReason }

// WithVersion returns a copy of l using ver.
func (l StatusLine) WithVersion(ver Version) StatusLine {
	l.version = ver
	return l
}

// Text renders the line with the canonical reason phrase.
func (l StatusLine) Text() []byte {
	buf := bytes.NewBuffer(nil)
	buf.Write(l.version.Text())
	buf.WriteByte(SP)
	buf.WriteString(strconv.FormatUint(uint64(l.status.Code()), 10))
	buf.WriteByte(SP)
	buf.WriteString(l.status.Phrase())
	return buf.Bytes()
}

func (l StatusLine) String() string { return string(l.Text()) }
