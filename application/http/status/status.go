// Package status is the closed registry of HTTP status codes.
//
// Every registered [Status] is bound to one numeric code and one canonical reason phrase.
// Codes that are not registered here can not be represented.
package status

import (
	"slices"
	"strconv"
)

type Status struct {
	code   uint16
	phrase string
}

// Informational 1xx
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-15.2
var (
	Continue           = add(100, "Continue")
	SwitchingProtocols = add(101, "Switching Protocols")
	Processing         = add(102, "Processing")
	EarlyHints         = add(103, "Early Hints")
)

// Successful 2xx
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-15.3
var (
	OK                          = add(200, "OK")
	Created                     = add(201, "Created")
	Accepted                    = add(202, "Accepted")
	NonAuthoritativeInformation = add(203, "Non-Authoritative Information")
	NoContent                   = add(204, "No Content")
	ResetContent                = add(205, "Reset Content")
	PartialContent              = add(206, "Partial Content")
	MultiStatus                 = add(207, "Multi-Status")
	AlreadyReported             = add(208, "Already Reported")
	IMUsed                      = add(226, "IM Used")
)

// Redirection 3xx
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-15.4
var (
	MultipleChoices   = add(300, "Multiple Choices")
	MovedPermanently  = add(301, "Moved Permanently")
	Found             = add(302, "Found")
	SeeOther          = add(303, "See Other")
	NotModified       = add(304, "Not Modified")
	UseProxy          = add(305, "Use Proxy")
	SwitchProxy       = add(306, "Switch Proxy") // Unused since RFC 7231.
	TemporaryRedirect = add(307, "Temporary Redirect")
	PermanentRedirect = add(308, "Permanent Redirect")
)

// Client Error 4xx
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-15.5
var (
	BadRequest                  = add(400, "Bad Request")
	Unauthorized                = add(401, "Unauthorized")
	PaymentRequired             = add(402, "Payment Required")
	Forbidden                   = add(403, "Forbidden")
	NotFound                    = add(404, "Not Found")
	MethodNotAllowed            = add(405, "Method Not Allowed")
	NotAcceptable               = add(406, "Not Acceptable")
	ProxyAuthenticationRequired = add(407, "Proxy Authentication Required")
	RequestTimeout              = add(408, "Request Timeout")
	Conflict                    = add(409, "Conflict")
	Gone                        = add(410, "Gone")
	LengthRequired              = add(411, "Length Required")
	PreconditionFailed          = add(412, "Precondition Failed")
	PayloadTooLarge             = add(413, "Payload Too Large")
	URITooLong                  = add(414, "URI Too Long")
	UnsupportedMediaType        = add(415, "Unsupported Media Type")
	RangeNotSatisfiable         = add(416, "Range Not Satisfiable")
	ExpectationFailed           = add(417, "Expectation Failed")
	ImATeapot                   = add(418, "I'm a teapot")
	MisdirectedRequest          = add(421, "Misdirected Request")
	UnprocessableEntity         = add(422, "Unprocessable Entity")
	Locked                      = add(423, "Locked")
	FailedDependency            = add(424, "Failed Dependency")
	UpgradeRequired             = add(426, "Upgrade Required")
	PreconditionRequired        = add(428, "Precondition Required")
	TooManyRequests             = add(429, "Too Many Requests")
	RequestHeaderFieldsTooLarge = add(431, "Request Header Fields Too Large")
	UnavailableForLegalReasons  = add(451, "Unavailable For Legal Reasons")
)

// Server Error 5xx
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-15.6
var (
	InternalServerError           = add(500, "Internal Server Error")
	NotImplemented                = add(501, "Not Implemented")
	BadGateway                    = add(502, "Bad Gateway")
	ServiceUnavailable            = add(503, "Service Unavailable")
	GatewayTimeout                = add(504, "Gateway Timeout")
	HTTPVersionNotSupported       = add(505, "HTTP Version Not Supported")
	VariantAlsoNegotiates         = add(506, "Variant Also Negotiates")
	InsufficientStorage           = add(507, "Insufficient Storage")
	LoopDetected                  = add(508, "Loop Detected")
	NotExtended                   = add(510, "Not Extended")
	NetworkAuthenticationRequired = add(511, "Network Authentication Required")
)

var sm = make(map[uint16]Status)

func add(code uint16, phrase string) Status {
	s := Status{code: code, phrase: phrase}
	sm[code] = s
	return s
}

// FromCode looks up the registered status of code.
func FromCode(code uint16) (status Status, ok bool) {
	status, ok = sm[code]
	return
}

// All returns every registered status ordered by code.
func All() []Status {
	all := make([]Status, 0, len(sm))
	for _, s := range sm {
		all = append(all, s)
	}
	slices.SortFunc(all, func(a, b Status) int { return int(a.code) - int(b.code) })
	return all
}

func (s Status) Code() uint16 { return s.code }

// Phrase returns the canonical reason phrase.
func (s Status) Phrase() string { return s.phrase }

// Class returns the first digit of the code, e.g. 4 for client errors.
func (s Status) Class() int { return int(s.code / 100) }

// IsZero reports whether s is the zero value, which is not a registered status.
func (s Status) IsZero() bool { return s.code == 0 }

func (s Status) String() string {
	return strconv.FormatUint(uint64(s.code), 10) + " " + s.phrase
}
