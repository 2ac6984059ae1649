package game

import "math/rand"

// Codes are uppercase so they survive being read aloud or scribbled on a
// napkin; lookups normalize to uppercase before hitting storage.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// DefaultCodeLength gives 36^8 possibilities, plenty of headroom against
// collisions for a short shareable code.
const DefaultCodeLength = 8

func newGameCode(length int) string {
	if length <= 0 {
		length = DefaultCodeLength
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(b)
}
