// Package assign computes self-avoiding Secret Santa pairings. It is pure:
// no persistence, transport, or email knowledge.
package assign

import "math/rand"

// maxShuffleAttempts bounds the randomized phase. The chance of a uniform
// shuffle containing a fixed point is ~1-1/e per attempt, so exhausting the
// budget is pathological, but it must terminate deterministically either way.
const maxShuffleAttempts = 100

// Receivers returns a permutation perm such that perm[i] is the index of
// the receiver assigned to giver i. No giver is ever mapped to their own
// email. The input order is the roster's insertion order and must have at
// least two entries; the caller enforces the business minimum of three.
//
// Up to maxShuffleAttempts uniform shuffles are tried; the first one with
// no self-match wins. If the budget runs out, a cyclic rotation by one is
// used as a deterministic fallback (rotation by any non-zero offset < n has
// no fixed point when emails are unique), escalating to rotation by two if
// a self-match is still detected.
func Receivers(emails []string) []int {
	n := len(emails)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	for attempt := 0; attempt < maxShuffleAttempts; attempt++ {
		rand.Shuffle(n, func(i, j int) {
			perm[i], perm[j] = perm[j], perm[i]
		})
		if selfFree(emails, perm) {
			return perm
		}
	}

	perm = rotation(n, 1)
	if !selfFree(emails, perm) {
		perm = rotation(n, 2)
	}
	return perm
}

// selfFree reports whether no giver is paired with their own email.
func selfFree(emails []string, perm []int) bool {
	for i, j := range perm {
		if emails[i] == emails[j] {
			return false
		}
	}
	return true
}

// rotation maps giver i to receiver (i+offset) mod n.
func rotation(n, offset int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = (i + offset) % n
	}
	return perm
}
