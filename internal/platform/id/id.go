package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// Generator creates opaque identifiers.
type Generator interface {
	New() string
}

const base36Len = 9

var base36Max = new(big.Int).Exp(big.NewInt(36), big.NewInt(base36Len), nil)

// SessionID produces identifiers of the form session_<unix-ms>_<random>.
// Uniqueness is good enough for a single local user; it is not
// cryptographically strong and does not need to be.
type SessionID struct{}

func (SessionID) New() string {
	n, err := rand.Int(rand.Reader, base36Max)
	if err != nil {
		n = big.NewInt(time.Now().UnixNano())
	}
	suffix := n.Text(36)
	for len(suffix) < base36Len {
		suffix = "0" + suffix
	}
	return fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), suffix)
}
