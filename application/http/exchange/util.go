package exchange

import (
	"io"
	"time"
)

var zeroTime time.Time

type rawMessage []byte

func (m rawMessage) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(m)
	return int64(n), err
}
