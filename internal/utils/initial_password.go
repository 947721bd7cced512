package utils

import (
	"crypto/rand"
	"math/big"
)

// passwordAlphabet skips 0/O, 1/I/l and similar lookalikes so an
// initial password survives being read out loud.
const passwordAlphabet = "abcdefghjkmnpqrstuvwxyzABCDEFGHJKMNPQRSTUVWXYZ23456789"

const defaultPasswordLength = 12

// RandomPassword returns an initial password for accounts created by
// the timetable import. A non-positive length falls back to the
// default.
func RandomPassword(n int) (string, error) {
	if n <= 0 {
		n = defaultPasswordLength
	}
	max := big.NewInt(int64(len(passwordAlphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = passwordAlphabet[idx.Int64()]
	}
	return string(out), nil
}
