// Package http implements the HTTP/1.1 message model:
// parsing wire bytes into requests and responses, and serializing them back.
//
// Parsing is strict. The first malformed element aborts the parse and one of the
// [ParseError] sentinels is returned. Obsolete line folding is rejected.
//
// The package never owns a connection. Callers hand it a [LineReader] to parse from
// and an [io.Writer] to serialize into, and decide the body length themselves.
//
// Reference:
//
// - https://datatracker.ietf.org/doc/html/rfc9110
//
// - https://datatracker.ietf.org/doc/html/rfc9112
package http
