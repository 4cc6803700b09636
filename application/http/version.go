package http

import (
	"github.com/indigo-web/utils/uf"
)

const (
	versionPrefix = "HTTP/"
	versionLen    = len("HTTP/1.1")
)

// Version is an HTTP version with single digit major and minor numbers.
// The zero value is HTTP/0.0.
type Version struct {
	major, minor uint8
}

var (
	HTTP10 = Version{1, 0}
	HTTP11 = Version{1, 1}
)

// NewVersion creates a version. Numbers above 9 can not be represented on the wire
// and fail with [ErrInvalidVersion].
func NewVersion(major, minor uint) (Version, error) {
	if major > 9 || minor > 9 {
		return Version{}, ErrInvalidVersion
	}
	return Version{uint8(major), uint8(minor)}, nil
}

// ParseVersion parses http version text(e.g. "HTTP/1.1") into [Version].
// Reference: https://datatracker.ietf.org/doc/html/rfc9112#section-2.3
func ParseVersion(b []byte) (Version, error) {
	if len(b) != versionLen || uf.B2S(b[:len(versionPrefix)]) != versionPrefix {
		return Version{}, ErrInvalidVersion
	}

	major, dot, minor := b[5], b[6], b[7]
	if dot != '.' || !isDigit(major) || !isDigit(minor) {
		return Version{}, ErrInvalidVersion
	}

	return Version{major - '0', minor - '0'}, nil
}

func (ver Version) Major() uint8 { return ver.major }
func (ver Version) Minor() uint8 { return ver.minor }

func (ver Version) Text() []byte {
	return []byte{'H', 'T', 'T', 'P', '/', '0' + ver.major, '.', '0' + ver.minor}
}

func (ver Version) String() string { return string(ver.Text()) }
