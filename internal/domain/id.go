package domain

import (
	"crypto/rand"
	"math/big"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID returns a 9-character base36 identifier. Uniqueness is probabilistic;
// no collision detection is performed at this layer.
func NewID() string {
	return NewToken(9)
}

// NewToken returns n random base36 characters, used for subdomain suffixes
// and simulated provider resource ids.
func NewToken(n int) string {
	buf := make([]byte, n)
	max := big.NewInt(int64(len(idAlphabet)))
	for i := range buf {
		v, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing is unrecoverable for id generation
			panic(err)
		}
		buf[i] = idAlphabet[v.Int64()]
	}
	return string(buf)
}
