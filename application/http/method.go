package http

import (
	"github.com/indigo-web/utils/uf"
)

// Method is one of the standard request methods. Extension methods are not supported,
// and values outside the set below can not be created.
// The zero value is not a method.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-9
type Method struct {
	name string
}

var (
	MethodGet     = Method{"GET"}
	MethodHead    = Method{"HEAD"}
	MethodPost    = Method{"POST"}
	MethodPut     = Method{"PUT"}
	MethodDelete  = Method{"DELETE"}
	MethodTrace   = Method{"TRACE"}
	MethodOptions = Method{"OPTIONS"}
	MethodConnect = Method{"CONNECT"}
	MethodPatch   = Method{"PATCH"} // Reference: https://datatracker.ietf.org/doc/html/rfc5789
)

var methods = map[string]Method{
	"GET":     MethodGet,
	"HEAD":    MethodHead,
	"POST":    MethodPost,
	"PUT":     MethodPut,
	"DELETE":  MethodDelete,
	"TRACE":   MethodTrace,
	"OPTIONS": MethodOptions,
	"CONNECT": MethodConnect,
	"PATCH":   MethodPatch,
}

// ParseMethod matches token against the known methods. The match is case-sensitive.
func ParseMethod(token []byte) (Method, error) {
	m, ok := methods[uf.B2S(token)]
	if !ok {
		return Method{}, ErrInvalidMethod
	}
	return m, nil
}

// Methods returns all the supported methods.
func Methods() []Method {
	return []Method{
		MethodGet, MethodHead, MethodPost, MethodPut, MethodDelete,
		MethodTrace, MethodOptions, MethodConnect, MethodPatch,
	}
}

func (m Method) IsZero() bool { return m.name == "" }

func (m Method) String() string { return m.name }
